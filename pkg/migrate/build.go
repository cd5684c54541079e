package migrate

import (
	"fmt"
	"sort"

	"github.com/fmc-tools/fmcroute/pkg/asa"
	"github.com/fmc-tools/fmcroute/pkg/fmc"
	"github.com/fmc-tools/fmcroute/pkg/util"
)

// Build drives the scanner and resolver across the entire input before
// producing any output. If any reference failed to resolve, the whole batch
// is rejected with a MissingObjectsError listing every distinct miss, and
// no payloads are returned.
func Build(sc *asa.Scanner, r *Resolver) ([]fmc.StaticRoute, error) {
	var routes []fmc.StaticRoute
	missing := make(map[string]struct{})

	for sc.Scan() {
		intent := sc.Intent()
		resolved, miss := r.Resolve(intent)
		if miss != nil {
			util.Warnf("no existing object found for %s", miss.Descriptor())
			missing[miss.Descriptor()] = struct{}{}
			continue
		}
		util.Debugf("prepared route: %s/%s via %s", intent.Network, intent.Netmask, intent.Gateway)
		routes = append(routes, Payload(resolved))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading route input: %w", err)
	}

	if len(missing) > 0 {
		descriptors := make([]string, 0, len(missing))
		for d := range missing {
			descriptors = append(descriptors, d)
		}
		sort.Strings(descriptors)
		return nil, util.NewMissingObjectsError(descriptors...)
	}
	return routes, nil
}

// Payload assembles the wire-ready route object for a resolved route.
func Payload(r ResolvedRoute) fmc.StaticRoute {
	return fmc.StaticRoute{
		InterfaceName: r.Interface,
		SelectedNetworks: []fmc.ObjectRef{{
			Type: r.Network.Type,
			ID:   r.Network.ID,
			Name: r.Network.Name,
		}},
		Gateway: fmc.Gateway{Object: fmc.ObjectRef{
			Type: r.Gateway.Type,
			ID:   r.Gateway.ID,
			Name: r.Gateway.Name,
		}},
		MetricValue: r.Metric,
		Type:        "IPv4StaticRoute",
		IsTunneled:  false,
	}
}
