package migrate

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/fmc-tools/fmcroute/pkg/audit"
	"github.com/fmc-tools/fmcroute/pkg/fmc"
	"github.com/fmc-tools/fmcroute/pkg/util"
)

// Poster submits one static route to a device. *fmc.Client satisfies this.
type Poster interface {
	CreateStaticRoute(ctx context.Context, deviceID string, route fmc.StaticRoute) error
}

// Report summarizes a deployment run.
type Report struct {
	Attempted int
	Deployed  int
	Failed    []*util.DeployError
}

// Deployer submits built routes sequentially, in input order, pausing
// briefly after every PauseEvery-th submission to stay under the API's rate
// limits. By default the first failure aborts the remaining batch with no
// rollback of already-applied routes; KeepGoing continues past failures and
// reports them all at the end.
type Deployer struct {
	Poster     Poster
	DeviceID   string
	DeviceName string
	PauseEvery int
	Pause      time.Duration
	KeepGoing  bool

	// sleep is swappable in tests.
	sleep func(time.Duration)
}

// NewDeployer creates a deployer with the default pacing (1s after every
// 10th submission).
func NewDeployer(p Poster, deviceID string) *Deployer {
	return &Deployer{
		Poster:     p,
		DeviceID:   deviceID,
		PauseEvery: 10,
		Pause:      time.Second,
		sleep:      time.Sleep,
	}
}

// Deploy posts the routes one at a time. Earlier routes in the source file
// are applied first, and diagnostics reference a stable 1-based index.
func (d *Deployer) Deploy(ctx context.Context, routes []fmc.StaticRoute) (Report, error) {
	total := len(routes)
	rep := Report{}
	util.Infof("deploying %d routes...", total)

	for i, route := range routes {
		rep.Attempted++
		err := d.Poster.CreateStaticRoute(ctx, d.DeviceID, route)
		d.auditRoute(route, err)
		if err != nil {
			dErr := &util.DeployError{
				Index:   i + 1,
				Total:   total,
				Network: networkName(route),
				Payload: payloadJSON(route),
				Err:     err,
			}
			if !d.KeepGoing {
				util.Errorf("deployment failed at route %d/%d, aborting remaining batch", i+1, total)
				rep.Failed = append(rep.Failed, dErr)
				return rep, dErr
			}
			util.Errorf("route %d/%d failed: %v (continuing)", i+1, total, err)
			rep.Failed = append(rep.Failed, dErr)
		} else {
			rep.Deployed++
			util.Infof("[%d/%d] deployed route to %s", i+1, total, networkName(route))
		}

		if d.PauseEvery > 0 && (i+1)%d.PauseEvery == 0 {
			d.sleep(d.Pause)
		}
	}

	if len(rep.Failed) > 0 {
		return rep, fmt.Errorf("%d of %d routes failed: %w", len(rep.Failed), total, util.ErrDeployFailed)
	}
	return rep, nil
}

func (d *Deployer) auditRoute(route fmc.StaticRoute, err error) {
	event := audit.NewEvent(d.DeviceName, audit.OpDeployRoute).
		WithRoute(networkName(route), route.Gateway.Object.Name, route.InterfaceName, route.MetricValue)
	if err != nil {
		event.WithError(err)
	} else {
		event.WithSuccess()
	}
	audit.Log(event)
}

func networkName(route fmc.StaticRoute) string {
	if len(route.SelectedNetworks) == 0 {
		return "?"
	}
	return route.SelectedNetworks[0].Name
}

func payloadJSON(route fmc.StaticRoute) string {
	data, err := json.MarshalIndent(route, "", "  ")
	if err != nil {
		return fmt.Sprintf("%+v", route)
	}
	return string(data)
}
