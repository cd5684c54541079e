// Package profile loads YAML migration profiles. A profile pins the inputs
// of one migration run (controller, target device, route source) so the run
// is repeatable and reviewable before execution.
package profile

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Profile describes one migration run.
//
//	fmc_host: fmc.example.net
//	device: ftd-branch-01
//	routes_file: exports/branch01-routes.txt
//	# or fetch live over SSH instead of a file:
//	asa_host: 198.51.100.1
//	asa_user: admin
//	object_limit: 1000
//	insecure: true
type Profile struct {
	FMCHost     string `yaml:"fmc_host"`
	Device      string `yaml:"device"`
	RoutesFile  string `yaml:"routes_file,omitempty"`
	ASAHost     string `yaml:"asa_host,omitempty"`
	ASAUser     string `yaml:"asa_user,omitempty"`
	ObjectLimit int    `yaml:"object_limit,omitempty"`
	Insecure    bool   `yaml:"insecure,omitempty"`
	KeepGoing   bool   `yaml:"keep_going,omitempty"`
}

// Load reads and validates a profile file.
func Load(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading profile: %w", err)
	}

	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parsing profile %s: %w", path, err)
	}
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("profile %s: %w", path, err)
	}
	return &p, nil
}

// Validate checks cross-field consistency.
func (p *Profile) Validate() error {
	if p.FMCHost == "" {
		return fmt.Errorf("fmc_host is required")
	}
	if p.Device == "" {
		return fmt.Errorf("device is required")
	}
	if p.RoutesFile != "" && p.ASAHost != "" {
		return fmt.Errorf("routes_file and asa_host are mutually exclusive")
	}
	if p.RoutesFile == "" && p.ASAHost == "" {
		return fmt.Errorf("one of routes_file or asa_host is required")
	}
	if p.ObjectLimit < 0 {
		return fmt.Errorf("object_limit must be positive")
	}
	return nil
}
