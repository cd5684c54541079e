// Package asa extracts static route directives from ASA configuration
// exports. Only lines of the form
//
//	route <interface> <network> <netmask> <gateway> <metric>
//
// are recognized; everything else in the export is skipped.
package asa

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

// RouteIntent is one parsed route directive. Netmask may be empty when the
// source omitted it; consumers treat an absent mask as host-typed.
type RouteIntent struct {
	Interface string
	Network   string
	Netmask   string
	Gateway   string
	Metric    int
}

// Scanner yields route intents from a configuration export, one syntactically
// valid line at a time. Single pass, not restartable.
type Scanner struct {
	s      *bufio.Scanner
	intent RouteIntent
}

// NewScanner creates a scanner over a configuration export.
func NewScanner(r io.Reader) *Scanner {
	return &Scanner{s: bufio.NewScanner(r)}
}

// Scan advances to the next valid route line. It returns false at EOF or on
// a read error (see Err).
func (sc *Scanner) Scan() bool {
	for sc.s.Scan() {
		intent, ok := parseLine(sc.s.Text())
		if !ok {
			continue
		}
		sc.intent = intent
		return true
	}
	return false
}

// Intent returns the route parsed by the last successful Scan.
func (sc *Scanner) Intent() RouteIntent {
	return sc.intent
}

// Err returns the first read error encountered, if any.
func (sc *Scanner) Err() error {
	return sc.s.Err()
}

// parseLine recognizes a route directive: exactly six whitespace-separated
// tokens, the first being the literal "route", the last an integer metric.
// Anything else is not a route line.
func parseLine(line string) (RouteIntent, bool) {
	fields := strings.Fields(strings.TrimSpace(line))
	if len(fields) != 6 || fields[0] != "route" {
		return RouteIntent{}, false
	}
	metric, err := strconv.Atoi(fields[5])
	if err != nil {
		return RouteIntent{}, false
	}
	return RouteIntent{
		Interface: fields[1],
		Network:   fields[2],
		Netmask:   fields[3],
		Gateway:   fields[4],
		Metric:    metric,
	}, true
}
