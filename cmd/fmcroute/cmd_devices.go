package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fmc-tools/fmcroute/pkg/cli"
)

var devicesCmd = &cobra.Command{
	Use:   "devices",
	Short: "List FTD devices registered with the FMC",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		client, err := connectFMC(ctx)
		if err != nil {
			return err
		}

		devices, err := client.ListDevices(ctx)
		if err != nil {
			return fmt.Errorf("listing devices: %w", err)
		}

		if jsonOutput {
			return json.NewEncoder(os.Stdout).Encode(devices)
		}

		t := cli.NewTable("NAME", "MODEL", "ID")
		for _, d := range devices {
			t.Row(d.Name, d.Model, d.ID)
		}
		t.Flush()
		return nil
	},
}
