package migrate

import (
	"context"
	"testing"

	"github.com/fmc-tools/fmcroute/pkg/asa"
	"github.com/fmc-tools/fmcroute/pkg/catalog"
	"github.com/fmc-tools/fmcroute/pkg/fmc"
)

type staticLister struct {
	networks []fmc.Object
	hosts    []fmc.Object
}

func (s *staticLister) ListNetworkObjects(ctx context.Context, limit int) ([]fmc.Object, error) {
	return s.networks, nil
}

func (s *staticLister) ListHostObjects(ctx context.Context, limit int) ([]fmc.Object, error) {
	return s.hosts, nil
}

// testCatalog builds a loaded catalog for resolver/builder tests.
func testCatalog(t *testing.T, networks, hosts []fmc.Object) *catalog.Catalog {
	t.Helper()
	c := catalog.New()
	if err := c.Load(context.Background(), &staticLister{networks: networks, hosts: hosts}, 100); err != nil {
		t.Fatalf("loading test catalog: %v", err)
	}
	return c
}

func TestResolve_NetworkClassification(t *testing.T) {
	cat := testCatalog(t,
		[]fmc.Object{{ID: "N1", Name: "net-101", Type: "Network", Value: "10.1.1.0"}},
		[]fmc.Object{
			{ID: "H1", Name: "gw-111", Type: "Host", Value: "10.1.1.1"},
			{ID: "H2", Name: "host-202", Type: "Host", Value: "10.2.0.2"},
		},
	)
	r := &Resolver{Catalog: cat}

	tests := []struct {
		name     string
		netmask  string
		network  string
		wantID   string
		wantMiss bool
	}{
		{"host mask resolves in host partition", "255.255.255.255", "10.2.0.2", "H2", false},
		{"absent mask resolves in host partition", "", "10.2.0.2", "H2", false},
		{"/24 mask resolves in network partition", "255.255.255.0", "10.1.1.0", "N1", false},
		{"/16 mask resolves in network partition", "255.255.0.0", "10.1.1.0", "N1", false},
		{"default route mask resolves in network partition", "0.0.0.0", "10.1.1.0", "N1", false},
		{"host mask does not search network partition", "255.255.255.255", "10.1.1.0", "", true},
		{"network mask does not search host partition", "255.255.255.0", "10.2.0.2", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			intent := asa.RouteIntent{
				Interface: "inside",
				Network:   tt.network,
				Netmask:   tt.netmask,
				Gateway:   "10.1.1.1",
				Metric:    1,
			}
			resolved, miss := r.Resolve(intent)
			if (miss != nil) != tt.wantMiss {
				t.Fatalf("Resolve() miss = %v, wantMiss %v", miss, tt.wantMiss)
			}
			if !tt.wantMiss && resolved.Network.ID != tt.wantID {
				t.Errorf("resolved network ID = %q, want %q", resolved.Network.ID, tt.wantID)
			}
		})
	}
}

func TestResolve_GatewayAlwaysHost(t *testing.T) {
	// A gateway address that only exists as a network object must not
	// resolve: gateways are single addresses.
	cat := testCatalog(t,
		[]fmc.Object{{ID: "N1", Name: "net-x", Type: "Network", Value: "192.0.2.1"}},
		nil,
	)
	r := &Resolver{Catalog: cat}

	_, miss := r.Resolve(asa.RouteIntent{
		Interface: "outside",
		Network:   "192.0.2.1",
		Netmask:   "255.255.255.0",
		Gateway:   "192.0.2.1",
		Metric:    1,
	})
	if miss == nil {
		t.Fatal("gateway should only resolve against the host partition")
	}
	if miss.Kind != MissingGateway {
		t.Errorf("miss kind = %q, want Gateway", miss.Kind)
	}
}

func TestResolve_GatewayCheckedFirst(t *testing.T) {
	// When both references are missing, the gateway miss is reported;
	// resolution short-circuits per line.
	cat := testCatalog(t, nil, nil)
	r := &Resolver{Catalog: cat}

	_, miss := r.Resolve(asa.RouteIntent{
		Interface: "inside",
		Network:   "10.9.9.0",
		Netmask:   "255.255.255.0",
		Gateway:   "10.9.9.1",
		Metric:    1,
	})
	if miss == nil || miss.Kind != MissingGateway {
		t.Errorf("miss = %+v, want gateway miss first", miss)
	}
	if miss.Descriptor() != "Gateway: 10.9.9.1" {
		t.Errorf("Descriptor() = %q", miss.Descriptor())
	}
}

func TestResolve_MissingNetworkDescriptor(t *testing.T) {
	cat := testCatalog(t, nil,
		[]fmc.Object{{ID: "H1", Name: "gw-111", Type: "Host", Value: "10.1.1.1"}},
	)
	r := &Resolver{Catalog: cat}

	_, miss := r.Resolve(asa.RouteIntent{
		Interface: "inside",
		Network:   "10.1.1.0",
		Netmask:   "255.255.255.0",
		Gateway:   "10.1.1.1",
		Metric:    1,
	})
	if miss == nil {
		t.Fatal("expected network miss")
	}
	if got := miss.Descriptor(); got != "Network: 10.1.1.0/255.255.255.0" {
		t.Errorf("Descriptor() = %q", got)
	}
}

func TestResolve_Idempotent(t *testing.T) {
	cat := testCatalog(t,
		[]fmc.Object{{ID: "N1", Name: "net-101", Type: "Network", Value: "10.1.1.0"}},
		[]fmc.Object{{ID: "H1", Name: "gw-111", Type: "Host", Value: "10.1.1.1"}},
	)
	r := &Resolver{Catalog: cat}
	intent := asa.RouteIntent{
		Interface: "inside",
		Network:   "10.1.1.0",
		Netmask:   "255.255.255.0",
		Gateway:   "10.1.1.1",
		Metric:    1,
	}

	first, miss1 := r.Resolve(intent)
	second, miss2 := r.Resolve(intent)
	if miss1 != nil || miss2 != nil {
		t.Fatalf("unexpected miss: %v %v", miss1, miss2)
	}
	if first != second {
		t.Errorf("resolution not idempotent: %+v vs %+v", first, second)
	}
}
