// Package migrate implements the route migration pipeline: resolving parsed
// route intents against the object catalog, assembling FMC route payloads,
// and deploying them to the target device.
package migrate

import (
	"github.com/fmc-tools/fmcroute/pkg/asa"
	"github.com/fmc-tools/fmcroute/pkg/catalog"
	"github.com/fmc-tools/fmcroute/pkg/util"
)

// MissingKind identifies which reference of a route failed to resolve.
type MissingKind string

const (
	MissingGateway MissingKind = "Gateway"
	MissingNetwork MissingKind = "Network"
)

// MissingRef records one unresolved object reference.
type MissingRef struct {
	Kind  MissingKind
	Value string
}

// Descriptor returns the human-readable form used in reports, e.g.
// "Gateway: 10.1.1.1" or "Network: 10.1.1.0/255.255.255.0".
func (m MissingRef) Descriptor() string {
	return string(m.Kind) + ": " + m.Value
}

// ResolvedRoute is a route intent whose network and gateway both matched
// catalog entries.
type ResolvedRoute struct {
	Interface string
	Network   catalog.Entry
	Gateway   catalog.Entry
	Metric    int
}

// Resolver binds route intents to catalog entries. It never creates
// objects: the operator is expected to provision them in FMC ahead of the
// migration.
type Resolver struct {
	Catalog *catalog.Catalog
}

// Resolve looks up the intent's gateway and network. The gateway is always a
// single address and is resolved against the host partition; a miss
// short-circuits the line. The network is host-typed iff its mask is the
// all-ones mask or absent, network-typed otherwise. Resolution is
// all-or-nothing: a partially resolved intent yields only a MissingRef.
func (r *Resolver) Resolve(intent asa.RouteIntent) (ResolvedRoute, *MissingRef) {
	gw, ok := r.Catalog.LookupHost(intent.Gateway)
	if !ok {
		return ResolvedRoute{}, &MissingRef{Kind: MissingGateway, Value: intent.Gateway}
	}

	var network catalog.Entry
	if util.IsHostMask(intent.Netmask) {
		network, ok = r.Catalog.LookupHost(intent.Network)
	} else {
		network, ok = r.Catalog.LookupNetwork(intent.Network)
	}
	if !ok {
		return ResolvedRoute{}, &MissingRef{Kind: MissingNetwork, Value: intent.Network + "/" + intent.Netmask}
	}

	return ResolvedRoute{
		Interface: intent.Interface,
		Network:   network,
		Gateway:   gw,
		Metric:    intent.Metric,
	}, nil
}
