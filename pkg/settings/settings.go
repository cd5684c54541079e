// Package settings manages persistent user settings for the fmcroute CLI.
package settings

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/fmc-tools/fmcroute/pkg/catalog"
)

// Settings holds persistent user preferences. Credentials never live here;
// they come from the environment or an interactive prompt.
type Settings struct {
	// DefaultHost is the FMC host to use when --host is not specified
	DefaultHost string `json:"default_host,omitempty"`

	// DefaultDevice is the FTD device name used when --device is not specified
	DefaultDevice string `json:"default_device,omitempty"`

	// RoutesFile is the default ASA routes export path
	RoutesFile string `json:"routes_file,omitempty"`

	// ObjectLimit caps the single object listing fetch per object type
	ObjectLimit int `json:"object_limit,omitempty"`
}

// DefaultSettingsPath returns the default path for the settings file
func DefaultSettingsPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "fmcroute_settings.json"
	}
	return filepath.Join(home, ".fmcroute", "settings.json")
}

// Load reads settings from the default location
func Load() (*Settings, error) {
	return LoadFrom(DefaultSettingsPath())
}

// LoadFrom reads settings from a specific path
func LoadFrom(path string) (*Settings, error) {
	s := &Settings{}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Return empty settings if file doesn't exist
			return s, nil
		}
		return nil, err
	}

	if err := json.Unmarshal(data, s); err != nil {
		return nil, err
	}

	return s, nil
}

// Save writes settings to the default location
func (s *Settings) Save() error {
	return s.SaveTo(DefaultSettingsPath())
}

// SaveTo writes settings to a specific path
func (s *Settings) SaveTo(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// GetObjectLimit returns the object listing limit (with fallback)
func (s *Settings) GetObjectLimit() int {
	if s.ObjectLimit > 0 {
		return s.ObjectLimit
	}
	return catalog.DefaultLimit
}

// Clear resets all settings to defaults
func (s *Settings) Clear() {
	*s = Settings{}
}
