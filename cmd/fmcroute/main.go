// fmcroute - ASA to FMC static route migration tool
//
// Migrates static IPv4 routes from an ASA configuration export into an
// FMC-managed FTD device. Routes reference pre-existing FMC network and
// host objects by value match; nothing is created and nothing is diffed.
// The tool only appends routes that resolve cleanly.
//
//	fmcroute check  -d ftd-branch-01 asa-routes.txt    # preflight: resolve only
//	fmcroute migrate -d ftd-branch-01 asa-routes.txt   # preview payloads (dry-run)
//	fmcroute migrate -d ftd-branch-01 asa-routes.txt -x # deploy (asks for confirmation)
//
// Credentials come from the environment (FMC_USERNAME, FMC_PASSWORD; a .env
// file in the working directory is honored) or an interactive prompt.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/fmc-tools/fmcroute/pkg/audit"
	"github.com/fmc-tools/fmcroute/pkg/settings"
	"github.com/fmc-tools/fmcroute/pkg/util"
	"github.com/fmc-tools/fmcroute/pkg/version"
)

var (
	// Global context flags
	fmcHost    string // -H, --host
	deviceName string // -d, --device

	// Global option flags
	insecureTLS bool
	verbose     bool
	jsonOutput  bool

	// Global state
	userSettings *settings.Settings
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:               "fmcroute",
	Short:             "ASA to FMC static route migration tool",
	SilenceUsage:      true,
	SilenceErrors:     true,
	CompletionOptions: cobra.CompletionOptions{HiddenDefaultCmd: true},
	Long: `fmcroute migrates static IPv4 routes from an ASA configuration export
into an FMC-managed FTD device.

Every network and gateway referenced by a route must already exist as an
FMC object with a matching value; the batch is rejected as a whole when any
reference is missing. Deployment previews by default; use -x to execute.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if isSettingsOrHelp(cmd) {
			return nil
		}

		// A .env in the working directory supplies FMC_* variables;
		// absence is not an error.
		_ = godotenv.Load()

		var err error
		userSettings, err = settings.Load()
		if err != nil {
			util.Warnf("could not load settings: %v", err)
			userSettings = &settings.Settings{}
		}

		// Apply defaults: flag > environment > settings
		if fmcHost == "" {
			fmcHost = os.Getenv("FMC_HOST")
		}
		if fmcHost == "" {
			fmcHost = userSettings.DefaultHost
		}
		if deviceName == "" {
			deviceName = userSettings.DefaultDevice
		}
		if os.Getenv("FMC_INSECURE") == "true" {
			insecureTLS = true
		}

		if verbose {
			util.SetLogLevel("debug")
		} else {
			util.SetLogLevel("info")
		}

		initAuditLogger()
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&fmcHost, "host", "H", "", "FMC hostname or IP (or FMC_HOST env)")
	rootCmd.PersistentFlags().StringVarP(&deviceName, "device", "d", "", "Target FTD device name as registered in FMC")
	rootCmd.PersistentFlags().BoolVar(&insecureTLS, "insecure", false, "Skip FMC TLS certificate verification")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")

	for _, cmd := range []*cobra.Command{objectsCmd, devicesCmd, auditCmd} {
		cmd.Flags().BoolVar(&jsonOutput, "json", false, "JSON output")
	}

	rootCmd.AddGroup(
		&cobra.Group{ID: "migration", Title: "Migration:"},
		&cobra.Group{ID: "query", Title: "Inspection:"},
		&cobra.Group{ID: "meta", Title: "Configuration & Meta:"},
	)

	for _, cmd := range []*cobra.Command{migrateCmd, checkCmd} {
		cmd.GroupID = "migration"
		rootCmd.AddCommand(cmd)
	}
	for _, cmd := range []*cobra.Command{objectsCmd, devicesCmd} {
		cmd.GroupID = "query"
		rootCmd.AddCommand(cmd)
	}
	for _, cmd := range []*cobra.Command{settingsCmd, auditCmd, versionCmd} {
		cmd.GroupID = "meta"
		rootCmd.AddCommand(cmd)
	}
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("fmcroute %s\n", version.Info())
	},
}

// isSettingsOrHelp checks whether cmd (or any ancestor) is a settings, help,
// or version command, which run without FMC context.
func isSettingsOrHelp(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		switch c.Name() {
		case "help", "version", "settings":
			return true
		}
	}
	return false
}

func initAuditLogger() {
	home, err := os.UserHomeDir()
	if err != nil {
		util.Warnf("could not initialize audit logging: %v", err)
		return
	}
	auditLogger, err := audit.NewFileLogger(filepath.Join(home, ".fmcroute", "audit.log"), audit.RotationConfig{
		MaxSize:    10 * 1024 * 1024, // 10MB
		MaxBackups: 10,
	})
	if err != nil {
		util.Warnf("could not initialize audit logging: %v", err)
		return
	}
	audit.SetDefaultLogger(auditLogger)
}
