package asa

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/ssh"
)

// routeCommand lists only the static route directives, keeping the fetched
// output small on devices with large configurations.
const routeCommand = "show running-config route"

// FetchConfig connects to an ASA over SSH and returns the device's static
// route configuration as text, suitable for NewScanner. The SSH session is
// created per call (stateless).
func FetchConfig(host, user, pass string) (string, error) {
	config := &ssh.ClientConfig{
		User: user,
		Auth: []ssh.AuthMethod{
			ssh.Password(pass),
		},
		// Migration source devices are reached by address from an
		// operator-attended run; host keys are not verified.
		HostKeyCallback: ssh.InsecureIgnoreHostKey(),
		Timeout:         15 * time.Second,
	}

	if !strings.Contains(host, ":") {
		host += ":22"
	}
	client, err := ssh.Dial("tcp", host, config)
	if err != nil {
		return "", fmt.Errorf("SSH dial %s: %w", host, err)
	}
	defer client.Close()

	session, err := client.NewSession()
	if err != nil {
		return "", fmt.Errorf("SSH session: %w", err)
	}
	defer session.Close()

	output, err := session.CombinedOutput(routeCommand)
	if err != nil {
		return "", fmt.Errorf("running %q: %w", routeCommand, err)
	}
	return string(output), nil
}
