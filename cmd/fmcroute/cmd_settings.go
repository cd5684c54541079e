package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/fmc-tools/fmcroute/pkg/cli"
	"github.com/fmc-tools/fmcroute/pkg/settings"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage persistent settings",
	Long: `Manage persistent settings stored in ~/.fmcroute/settings.json.

Settings provide defaults for context flags:
  - host:        FMC host used when -H is not specified
  - device:      FTD device name used when -d is not specified
  - routes-file: Default ASA routes export path
  - limit:       Object listing fetch limit

Credentials are never stored; use FMC_USERNAME/FMC_PASSWORD or the prompt.

Examples:
  fmcroute settings show
  fmcroute settings set host fmc.example.net
  fmcroute settings set device ftd-branch-01
  fmcroute settings clear`,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := settings.Load()
		if err != nil {
			return fmt.Errorf("loading settings: %w", err)
		}

		fmt.Printf("Settings file: %s\n\n", settings.DefaultSettingsPath())

		t := cli.NewTable("SETTING", "VALUE")

		printSetting := func(name, value string) {
			if value == "" {
				value = "(not set)"
			}
			t.Row(name, value)
		}

		printSetting("host", s.DefaultHost)
		printSetting("device", s.DefaultDevice)
		printSetting("routes-file", s.RoutesFile)
		limit := ""
		if s.ObjectLimit > 0 {
			limit = strconv.Itoa(s.ObjectLimit)
		}
		printSetting("limit", limit)

		t.Flush()
		return nil
	},
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <setting> <value>",
	Short: "Set a setting value",
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		setting := args[0]
		value := args[1]

		s, err := settings.Load()
		if err != nil {
			s = &settings.Settings{}
		}

		switch setting {
		case "host":
			s.DefaultHost = value
			fmt.Printf("Default FMC host set to: %s\n", value)
		case "device":
			s.DefaultDevice = value
			fmt.Printf("Default device set to: %s\n", value)
		case "routes-file":
			s.RoutesFile = value
			fmt.Printf("Default routes file set to: %s\n", value)
		case "limit":
			limit, err := strconv.Atoi(value)
			if err != nil || limit <= 0 {
				return fmt.Errorf("limit must be a positive integer, got %q", value)
			}
			s.ObjectLimit = limit
			fmt.Printf("Object listing limit set to: %d\n", limit)
		default:
			return fmt.Errorf("unknown setting: %s (valid: host, device, routes-file, limit)", setting)
		}

		if err := s.Save(); err != nil {
			return fmt.Errorf("saving settings: %w", err)
		}
		return nil
	},
}

var settingsClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Clear all settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		s := &settings.Settings{}
		s.Clear()
		if err := s.Save(); err != nil {
			return fmt.Errorf("saving settings: %w", err)
		}
		fmt.Println("Settings cleared.")
		return nil
	},
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	settingsCmd.AddCommand(settingsClearCmd)
}
