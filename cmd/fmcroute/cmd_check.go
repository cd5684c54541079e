package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fmc-tools/fmcroute/pkg/cli"
	"github.com/fmc-tools/fmcroute/pkg/util"
)

var checkCmd = &cobra.Command{
	Use:   "check [routes-file]",
	Short: "Preflight: resolve routes against FMC without deploying",
	Long: `Parse the route input and resolve every referenced network and gateway
against the FMC object catalog, reporting what a migration would deploy.
Nothing is written to the device.

Exits non-zero when any referenced object is missing, listing each one so
it can be provisioned in FMC before the real run.

Examples:
  fmcroute check -d ftd-branch-01 exports/branch01-routes.txt
  fmcroute check --from-asa 198.51.100.1 -d ftd-branch-01`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		if err := applyProfile(args); err != nil {
			return err
		}

		client, err := connectFMC(ctx)
		if err != nil {
			return err
		}
		device, err := findDevice(ctx, client)
		if err != nil {
			return err
		}

		routes, err := buildRoutes(ctx, client, args)
		if err != nil {
			var missErr *util.MissingObjectsError
			if errors.As(err, &missErr) {
				fmt.Println(cli.Red("The following objects were not found in FMC:"))
				for _, d := range missErr.Descriptors {
					fmt.Printf("  - %s\n", d)
				}
				fmt.Println("\nCreate these objects in FMC before migrating.")
				return fmt.Errorf("preflight failed: %d objects missing", len(missErr.Descriptors))
			}
			return err
		}

		if len(routes) == 0 {
			fmt.Println("No routes found in input.")
			return nil
		}

		fmt.Printf("All references resolved. %d routes ready for %s:\n\n", len(routes), device.Name)
		printRoutes(routes)
		fmt.Println("\n" + cli.Green("Preflight passed."))
		return nil
	},
}

func init() {
	addSourceFlags(checkCmd)
}
