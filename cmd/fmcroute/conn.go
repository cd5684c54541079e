package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/fmc-tools/fmcroute/pkg/asa"
	"github.com/fmc-tools/fmcroute/pkg/fmc"
	"github.com/fmc-tools/fmcroute/pkg/util"
)

// connectFMC builds an authenticated client from flags, environment, and
// prompts. The token obtained here is reused for every subsequent call.
func connectFMC(ctx context.Context) (*fmc.Client, error) {
	if fmcHost == "" {
		return nil, fmt.Errorf("FMC host required: use -H <host>, FMC_HOST, or settings")
	}

	username := os.Getenv("FMC_USERNAME")
	password := os.Getenv("FMC_PASSWORD")
	var err error
	if username == "" {
		username, err = promptLine(fmt.Sprintf("FMC username for %s: ", fmcHost))
		if err != nil {
			return nil, err
		}
	}
	if password == "" {
		password, err = promptPassword(fmt.Sprintf("FMC password for %s@%s: ", username, fmcHost))
		if err != nil {
			return nil, err
		}
	}

	var opts []fmc.Option
	if insecureTLS {
		opts = append(opts, fmc.WithInsecureTLS())
	}
	client := fmc.NewClient(fmcHost, opts...)

	util.Infof("logging in to FMC at %s...", fmcHost)
	if err := client.Login(ctx, username, password); err != nil {
		return nil, err
	}
	return client, nil
}

// openRouteSource returns a reader over the ASA route directives: a local
// export file, or the live configuration fetched over SSH when asaHost is
// set.
func openRouteSource(routesFile, asaHost, asaUser string) (io.ReadCloser, error) {
	if asaHost != "" {
		if asaUser == "" {
			asaUser = "admin"
		}
		pass, err := promptPassword(fmt.Sprintf("ASA password for %s@%s: ", asaUser, asaHost))
		if err != nil {
			return nil, err
		}
		util.Infof("fetching route configuration from %s...", asaHost)
		config, err := asa.FetchConfig(asaHost, asaUser, pass)
		if err != nil {
			return nil, fmt.Errorf("fetching ASA configuration: %w", err)
		}
		return io.NopCloser(strings.NewReader(config)), nil
	}

	if routesFile == "" {
		return nil, fmt.Errorf("routes file required: pass it as an argument or set routes-file in settings")
	}
	f, err := os.Open(routesFile)
	if err != nil {
		return nil, fmt.Errorf("opening routes file: %w", err)
	}
	return f, nil
}

func promptLine(prompt string) (string, error) {
	fmt.Fprint(os.Stderr, prompt)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("reading input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

func promptPassword(prompt string) (string, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return "", fmt.Errorf("no password in environment and stdin is not a terminal")
	}
	fmt.Fprint(os.Stderr, prompt)
	pass, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("reading password: %w", err)
	}
	return string(pass), nil
}

// confirm asks an explicit yes/no question; anything but "yes" declines.
func confirm(prompt string) bool {
	answer, err := promptLine(prompt + " (yes/no): ")
	if err != nil {
		return false
	}
	return strings.EqualFold(answer, "yes")
}
