package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/fmc-tools/fmcroute/pkg/asa"
	"github.com/fmc-tools/fmcroute/pkg/audit"
	"github.com/fmc-tools/fmcroute/pkg/catalog"
	"github.com/fmc-tools/fmcroute/pkg/cli"
	"github.com/fmc-tools/fmcroute/pkg/fmc"
	"github.com/fmc-tools/fmcroute/pkg/migrate"
	"github.com/fmc-tools/fmcroute/pkg/profile"
	"github.com/fmc-tools/fmcroute/pkg/util"
)

var (
	executeMode bool
	assumeYes   bool
	keepGoing   bool
	profilePath string
	fromASA     string
	asaUser     string
	objectLimit int
)

var migrateCmd = &cobra.Command{
	Use:   "migrate [routes-file]",
	Short: "Migrate ASA static routes to an FTD device",
	Long: `Parse ASA route directives, resolve every referenced network and gateway
against the FMC object catalog, and deploy the resulting static routes to
the target device.

The batch is all-or-nothing: if any referenced object is missing from FMC,
nothing is deployed and the missing objects are listed for remediation.

Dry-run by default: the built payloads are printed but not deployed.
With -x, deployment starts after an explicit yes/no confirmation and stops
at the first failure (already-deployed routes are not rolled back).

Examples:
  fmcroute migrate -d ftd-branch-01 exports/branch01-routes.txt
  fmcroute migrate -d ftd-branch-01 exports/branch01-routes.txt -x
  fmcroute migrate --from-asa 198.51.100.1 -d ftd-branch-01 -x
  fmcroute migrate --profile runs/branch01.yaml -x --yes`,
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

		util.Infof("looking up device %s...", deviceName)
		device, err := findDevice(ctx, client)
		if err != nil {
			return err
		}

		routes, err := buildRoutes(ctx, client, args)
		if err != nil {
			return err
		}
		if len(routes) == 0 {
			fmt.Println("No routes found in input; nothing to do.")
			return nil
		}

		fmt.Printf("Prepared %d routes for %s:\n\n", len(routes), device.Name)
		printRoutes(routes)

		if !executeMode {
			fmt.Println("\n" + cli.Yellow("DRY-RUN: No routes deployed. Use -x to execute."))
			return nil
		}

		if !assumeYes {
			if !confirm(fmt.Sprintf("\nReady to deploy %d routes to %s. Proceed?", len(routes), device.Name)) {
				fmt.Println("Deployment cancelled.")
				return nil
			}
		}

		start := time.Now()
		deployer := migrate.NewDeployer(client, device.ID)
		deployer.DeviceName = device.Name
		deployer.KeepGoing = keepGoing

		report, err := deployer.Deploy(ctx, routes)
		auditSummary(device.Name, report, time.Since(start), err)
		if err != nil {
			printDeployFailure(err)
			return err
		}

		fmt.Println("\n" + cli.Green(fmt.Sprintf("Route deployment complete: %d routes deployed.", report.Deployed)))
		return nil
	},
}

func init() {
	migrateCmd.Flags().BoolVarP(&executeMode, "execute", "x", false, "Deploy routes (default is dry-run)")
	migrateCmd.Flags().BoolVar(&assumeYes, "yes", false, "Skip the confirmation prompt (for scripted runs)")
	migrateCmd.Flags().BoolVar(&keepGoing, "keep-going", false, "Continue past deployment failures and report them all")
	addSourceFlags(migrateCmd)
}

// addSourceFlags registers the route-source and catalog flags shared by
// migrate and check.
func addSourceFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&profilePath, "profile", "", "YAML migration profile")
	cmd.Flags().StringVar(&fromASA, "from-asa", "", "Fetch route config over SSH from this ASA instead of a file")
	cmd.Flags().StringVar(&asaUser, "asa-user", "", "SSH username for --from-asa (default admin)")
	cmd.Flags().IntVar(&objectLimit, "limit", 0, "Object listing fetch limit (default 1000)")
}

// applyProfile folds a YAML profile into the run configuration.
// Precedence: explicit flags > profile > settings.
func applyProfile(args []string) error {
	if profilePath == "" {
		return nil
	}
	p, err := profile.Load(profilePath)
	if err != nil {
		return err
	}
	if fmcHost == "" {
		fmcHost = p.FMCHost
	}
	if deviceName == "" {
		deviceName = p.Device
	}
	if fromASA == "" {
		fromASA = p.ASAHost
	}
	if asaUser == "" {
		asaUser = p.ASAUser
	}
	if objectLimit == 0 {
		objectLimit = p.ObjectLimit
	}
	if len(args) == 0 && fromASA == "" && userSettings.RoutesFile == "" {
		userSettings.RoutesFile = p.RoutesFile
	}
	if p.Insecure {
		insecureTLS = true
	}
	if p.KeepGoing {
		keepGoing = true
	}
	return nil
}

func findDevice(ctx context.Context, client *fmc.Client) (fmc.Device, error) {
	if deviceName == "" {
		return fmc.Device{}, fmt.Errorf("device required: use -d <device> flag")
	}
	return client.FindDevice(ctx, deviceName)
}

// buildRoutes runs the front half of the pipeline: load the object catalog,
// scan the route source, resolve and build payloads.
func buildRoutes(ctx context.Context, client *fmc.Client, args []string) ([]fmc.StaticRoute, error) {
	cat := catalog.New()
	limit := objectLimit
	if limit == 0 {
		limit = userSettings.GetObjectLimit()
	}
	if err := cat.Load(ctx, client, limit); err != nil {
		// A partial catalog is usable; unresolved references will
		// surface as missing objects below.
		util.Warnf("%v", err)
	}

	routesFile := userSettings.RoutesFile
	if len(args) > 0 {
		routesFile = args[0]
	}
	source, err := openRouteSource(routesFile, fromASA, asaUser)
	if err != nil {
		return nil, err
	}
	defer source.Close()

	util.Info("parsing routes and matching objects...")
	return migrate.Build(asa.NewScanner(source), &migrate.Resolver{Catalog: cat})
}

func printRoutes(routes []fmc.StaticRoute) {
	t := cli.NewTable("#", "INTERFACE", "NETWORK", "GATEWAY", "METRIC")
	for i, r := range routes {
		t.Row(
			fmt.Sprintf("%d", i+1),
			r.InterfaceName,
			r.SelectedNetworks[0].Name,
			r.Gateway.Object.Name,
			fmt.Sprintf("%d", r.MetricValue),
		)
	}
	t.Flush()
}

// printDeployFailure dumps the failing payload so the operator can see
// exactly what FMC rejected.
func printDeployFailure(err error) {
	var dErr *util.DeployError
	if !errors.As(err, &dErr) {
		return
	}
	fmt.Println("\n" + cli.Red(fmt.Sprintf("Deployment stopped at route %d/%d.", dErr.Index, dErr.Total)))
	fmt.Println("Failed route details:")
	fmt.Println(dErr.Payload)
}

func auditSummary(device string, report migrate.Report, elapsed time.Duration, err error) {
	event := audit.NewEvent(device, audit.OpRunSummary).
		WithCounts(report.Deployed, report.Attempted).
		WithDuration(elapsed)
	if err != nil {
		event.WithError(err)
	} else {
		event.WithSuccess()
	}
	audit.Log(event)
}
