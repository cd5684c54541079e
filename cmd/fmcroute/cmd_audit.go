package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/fmc-tools/fmcroute/pkg/audit"
	"github.com/fmc-tools/fmcroute/pkg/cli"
)

var (
	auditLast     string
	auditLimit    int
	auditFailures bool
)

var auditCmd = &cobra.Command{
	Use:   "audit",
	Short: "View deployment audit log",
	Long: `View the audit log of route deployments.

Every deployed route and every run is recorded with timestamp, user,
device, route details, and success/failure status.

Examples:
  fmcroute audit -d ftd-branch-01
  fmcroute audit --last 24h
  fmcroute audit --failed`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// The persistent -d flag doubles as the device filter here.
		filter := audit.Filter{
			Device:      deviceName,
			Limit:       auditLimit,
			FailureOnly: auditFailures,
		}

		if auditLast != "" {
			duration, err := time.ParseDuration(auditLast)
			if err != nil {
				return fmt.Errorf("invalid duration: %s", auditLast)
			}
			filter.StartTime = time.Now().Add(-duration)
		}

		events, err := audit.Query(filter)
		if err != nil {
			return fmt.Errorf("querying audit log: %w", err)
		}

		if jsonOutput {
			return json.NewEncoder(os.Stdout).Encode(events)
		}

		if len(events) == 0 {
			fmt.Println("No audit events found")
			return nil
		}

		t := cli.NewTable("TIMESTAMP", "USER", "DEVICE", "OPERATION", "ROUTE", "STATUS")
		for _, event := range events {
			status := cli.Green("ok")
			if !event.Success {
				status = cli.Red("failed")
			}

			route := ""
			if event.Operation == audit.OpDeployRoute {
				route = fmt.Sprintf("%s via %s", event.Network, event.Gateway)
			} else if event.Attempted > 0 || event.Deployed > 0 {
				route = fmt.Sprintf("%d/%d deployed", event.Deployed, event.Attempted)
			}

			t.Row(
				event.Timestamp.Format("2006-01-02 15:04:05"),
				event.User,
				event.Device,
				event.Operation,
				route,
				status,
			)
		}
		t.Flush()
		return nil
	},
}

func init() {
	auditCmd.Flags().StringVar(&auditLast, "last", "", "Show events from last duration (e.g., 24h)")
	auditCmd.Flags().IntVar(&auditLimit, "limit", 100, "Maximum events to show")
	auditCmd.Flags().BoolVar(&auditFailures, "failed", false, "Show only failed operations")
}
