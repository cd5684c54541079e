// Package catalog indexes the FMC object inventory by address value.
// Routes reference objects by identifier, so every network and gateway
// address in the input must match a pre-existing object's value exactly.
package catalog

import (
	"context"
	"fmt"

	"github.com/fmc-tools/fmcroute/pkg/fmc"
	"github.com/fmc-tools/fmcroute/pkg/util"
)

// DefaultLimit bounds the single object listing fetch per object type.
// Inventories larger than this are out of scope for a one-shot migration.
const DefaultLimit = 1000

// Entry is one catalog object. Immutable after load.
type Entry struct {
	Name  string
	ID    string
	Type  string
	Value string
}

// Lister is the slice of the FMC client the catalog needs.
type Lister interface {
	ListNetworkObjects(ctx context.Context, limit int) ([]fmc.Object, error)
	ListHostObjects(ctx context.Context, limit int) ([]fmc.Object, error)
}

// Catalog holds the network and host object partitions, each keyed by the
// object's literal value string. No normalization is applied: lookups hit
// only when the queried address matches the stored value byte for byte.
type Catalog struct {
	networks map[string]Entry
	hosts    map[string]Entry
}

// New returns an empty catalog.
func New() *Catalog {
	return &Catalog{
		networks: make(map[string]Entry),
		hosts:    make(map[string]Entry),
	}
}

// Load fetches all network objects and all host objects in one bounded call
// each and indexes them by value. Duplicate values follow last-seen-wins
// (the index is a replacing map). A failed fetch leaves that partition as it
// was and is reported in the returned error; the catalog remains usable with
// whatever did load, so the caller may treat the error as non-fatal.
func (c *Catalog) Load(ctx context.Context, src Lister, limit int) error {
	if limit <= 0 {
		limit = DefaultLimit
	}

	var loadErr error

	util.Info("fetching existing network objects...")
	networks, err := src.ListNetworkObjects(ctx, limit)
	if err != nil {
		loadErr = fmt.Errorf("%w: networks: %v", util.ErrCatalogLoad, err)
	}
	for _, obj := range networks {
		util.Debugf("found network object: %s = %s", obj.Name, obj.Value)
		c.networks[obj.Value] = entryFrom(obj)
	}

	util.Info("fetching existing host objects...")
	hosts, err := src.ListHostObjects(ctx, limit)
	if err != nil {
		hostErr := fmt.Errorf("%w: hosts: %v", util.ErrCatalogLoad, err)
		if loadErr == nil {
			loadErr = hostErr
		} else {
			loadErr = fmt.Errorf("%v; %v", loadErr, hostErr)
		}
	}
	for _, obj := range hosts {
		util.Debugf("found host object: %s = %s", obj.Name, obj.Value)
		c.hosts[obj.Value] = entryFrom(obj)
	}

	util.Infof("object catalog loaded: %d networks, %d hosts", len(c.networks), len(c.hosts))
	return loadErr
}

// LookupNetwork finds a network object by its exact value string.
func (c *Catalog) LookupNetwork(value string) (Entry, bool) {
	e, ok := c.networks[value]
	return e, ok
}

// LookupHost finds a host object by its exact value string.
func (c *Catalog) LookupHost(value string) (Entry, bool) {
	e, ok := c.hosts[value]
	return e, ok
}

// Counts returns the number of indexed network and host objects.
func (c *Catalog) Counts() (networks, hosts int) {
	return len(c.networks), len(c.hosts)
}

func entryFrom(obj fmc.Object) Entry {
	return Entry{
		Name:  obj.Name,
		ID:    obj.ID,
		Type:  obj.Type,
		Value: obj.Value,
	}
}
