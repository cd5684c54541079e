package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fmc-tools/fmcroute/pkg/cli"
	"github.com/fmc-tools/fmcroute/pkg/fmc"
)

var objectsCmd = &cobra.Command{
	Use:   "objects [networks|hosts]",
	Short: "List FMC network and host objects",
	Long: `List the FMC object inventory that routes resolve against. Useful for
checking what values exist before a migration.

Examples:
  fmcroute objects            # both kinds
  fmcroute objects networks
  fmcroute objects hosts --json`,
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{"networks", "hosts"},
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		client, err := connectFMC(ctx)
		if err != nil {
			return err
		}

		kind := ""
		if len(args) > 0 {
			kind = args[0]
		}
		limit := objectLimit
		if limit == 0 {
			limit = userSettings.GetObjectLimit()
		}

		var objects []fmc.Object
		if kind == "" || kind == "networks" {
			networks, err := client.ListNetworkObjects(ctx, limit)
			if err != nil {
				return fmt.Errorf("listing network objects: %w", err)
			}
			objects = append(objects, networks...)
		}
		if kind == "" || kind == "hosts" {
			hosts, err := client.ListHostObjects(ctx, limit)
			if err != nil {
				return fmt.Errorf("listing host objects: %w", err)
			}
			objects = append(objects, hosts...)
		}

		if jsonOutput {
			return json.NewEncoder(os.Stdout).Encode(objects)
		}

		t := cli.NewTable("NAME", "TYPE", "VALUE", "ID")
		for _, obj := range objects {
			t.Row(obj.Name, obj.Type, obj.Value, obj.ID)
		}
		t.Flush()
		fmt.Printf("\n%d objects\n", len(objects))
		return nil
	},
}

func init() {
	objectsCmd.Flags().IntVar(&objectLimit, "limit", 0, "Object listing fetch limit (default 1000)")
}
