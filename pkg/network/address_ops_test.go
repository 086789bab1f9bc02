package network

import (
	"errors"
	"testing"

	"github.com/ifplan-network/ifplan/internal/testutil"

	"github.com/ifplan-network/ifplan/pkg/model"
	"github.com/ifplan-network/ifplan/pkg/util"
)

func TestSetStaticConfig_RoundTrip(t *testing.T) {
	m := newTestModel()
	m.NewLink(testutil.Eth(2, "eth0"))

	err := m.SetStaticConfig("eth0", 4, model.StaticConfig{
		Addresses:     []string{"10.0.2.15/24"},
		Gateway:       "10.0.2.2",
		Nameservers:   []string{"10.0.2.3"},
		SearchDomains: []string{"lab.example"},
	})
	if err != nil {
		t.Fatal(err)
	}

	dev, _ := m.Get("eth0")
	a := dev.Config.Addressing()
	if a.DHCP4 {
		t.Error("static config should switch DHCPv4 off")
	}
	if len(a.Addresses) != 1 || a.Addresses[0] != "10.0.2.15/24" {
		t.Errorf("addresses = %v", a.Addresses)
	}
	if a.Gateway4 != "10.0.2.2" {
		t.Errorf("gateway4 = %q", a.Gateway4)
	}
	if len(a.Nameservers.Addresses) != 1 || a.Nameservers.Addresses[0] != "10.0.2.3" {
		t.Errorf("nameservers = %v", a.Nameservers.Addresses)
	}
	if len(a.Nameservers.Search) != 1 || a.Nameservers.Search[0] != "lab.example" {
		t.Errorf("search = %v", a.Nameservers.Search)
	}
}

func TestSetStaticConfig_OtherVersionUndisturbed(t *testing.T) {
	m := newTestModel()
	m.NewLink(testutil.Eth(2, "eth0"))

	if err := m.SetStaticConfig("eth0", 6, model.StaticConfig{
		Addresses: []string{"fd00::2/64"},
		Gateway:   "fd00::1",
	}); err != nil {
		t.Fatal(err)
	}
	if err := m.SetStaticConfig("eth0", 4, model.StaticConfig{
		Addresses: []string{"10.0.2.15/24"},
		Gateway:   "10.0.2.2",
	}); err != nil {
		t.Fatal(err)
	}

	dev, _ := m.Get("eth0")
	a := dev.Config.Addressing()
	if len(a.Addresses) != 2 {
		t.Fatalf("addresses = %v, both families should be present", a.Addresses)
	}
	if a.Gateway6 != "fd00::1" {
		t.Errorf("gateway6 = %q, IPv6 settings should survive an IPv4 change", a.Gateway6)
	}
}

func TestSetStaticConfig_Validation(t *testing.T) {
	m := newTestModel()
	m.NewLink(testutil.Eth(2, "eth0"))

	tests := []struct {
		name    string
		version int
		cfg     model.StaticConfig
	}{
		{"bad version", 5, model.StaticConfig{}},
		{"address without prefix", 4, model.StaticConfig{Addresses: []string{"10.0.2.15"}}},
		{"address wrong family", 4, model.StaticConfig{Addresses: []string{"fd00::2/64"}}},
		{"gateway wrong family", 4, model.StaticConfig{Gateway: "fd00::1"}},
		{"nameserver not an ip", 4, model.StaticConfig{Nameservers: []string{"dns.example"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := m.SetStaticConfig("eth0", tt.version, tt.cfg)
			if !errors.Is(err, util.ErrValidationFailed) {
				t.Errorf("err = %v, want a validation failure", err)
			}
		})
	}
}

func TestSetStaticConfig_UnknownDevice(t *testing.T) {
	m := newTestModel()
	err := m.SetStaticConfig("eth9", 4, model.StaticConfig{})
	if !errors.Is(err, util.ErrNotFound) {
		t.Errorf("err = %v, want not-found", err)
	}
}

func TestEnableDHCP(t *testing.T) {
	m := newTestModel()
	m.NewLink(testutil.Eth(2, "eth0"))

	if err := m.EnableDHCP("eth0", 4); err != nil {
		t.Fatal(err)
	}
	dev, _ := m.Get("eth0")
	a := dev.Config.Addressing()
	if !a.DHCP4 {
		t.Error("DHCP4 should be on")
	}
	if a.DHCP6 {
		t.Error("DHCP6 should be untouched")
	}
}

func TestDisableNetwork_VersionScoped(t *testing.T) {
	m := newTestModel()
	m.NewLink(testutil.Eth(2, "eth0"))

	if err := m.SetStaticConfig("eth0", 4, model.StaticConfig{
		Addresses:   []string{"10.0.2.15/24"},
		Gateway:     "10.0.2.2",
		Nameservers: []string{"10.0.2.3"},
	}); err != nil {
		t.Fatal(err)
	}
	if err := m.SetStaticConfig("eth0", 6, model.StaticConfig{
		Addresses:     []string{"fd00::2/64"},
		Gateway:       "fd00::1",
		Nameservers:   []string{"fd00::3"},
		SearchDomains: []string{"lab.example"},
	}); err != nil {
		t.Fatal(err)
	}
	if err := m.SetRoutes("eth0", 4, []model.Route{{To: "192.168.0.0/16", Via: "10.0.2.1"}}); err != nil {
		t.Fatal(err)
	}
	if err := m.SetRoutes("eth0", 6, []model.Route{{To: "fd01::/48", Via: "fd00::1"}}); err != nil {
		t.Fatal(err)
	}

	if err := m.DisableNetwork("eth0", 4); err != nil {
		t.Fatal(err)
	}

	dev, _ := m.Get("eth0")
	a := dev.Config.Addressing()
	if len(a.Addresses) != 1 || a.Addresses[0] != "fd00::2/64" {
		t.Errorf("addresses = %v, only the IPv6 one should remain", a.Addresses)
	}
	if a.Gateway4 != "" {
		t.Errorf("gateway4 = %q, want cleared", a.Gateway4)
	}
	if a.Gateway6 != "fd00::1" {
		t.Errorf("gateway6 = %q, want untouched", a.Gateway6)
	}
	if len(a.Routes) != 1 || a.Routes[0].Via != "fd00::1" {
		t.Errorf("routes = %v, only the IPv6-via route should remain", a.Routes)
	}
	if len(a.Nameservers.Addresses) != 1 || a.Nameservers.Addresses[0] != "fd00::3" {
		t.Errorf("nameservers = %v", a.Nameservers.Addresses)
	}
	if len(a.Nameservers.Search) != 1 {
		t.Error("search domains should stay while an IPv6 nameserver remains")
	}

	if err := m.DisableNetwork("eth0", 6); err != nil {
		t.Fatal(err)
	}
	if len(a.Nameservers.Search) != 0 {
		t.Error("search domains should go when the last nameserver goes")
	}
}

func TestDisableNetwork_ClearsDHCPState(t *testing.T) {
	m := newTestModel()
	m.NewLink(testutil.Eth(2, "eth0"))
	if err := m.EnableDHCP("eth0", 4); err != nil {
		t.Fatal(err)
	}
	if err := m.SetDHCPState("eth0", 4, model.DHCPConfigured); err != nil {
		t.Fatal(err)
	}

	if err := m.DisableNetwork("eth0", 4); err != nil {
		t.Fatal(err)
	}
	dev, _ := m.Get("eth0")
	if dev.Config.Addressing().DHCP4 {
		t.Error("DHCP4 should be off")
	}
	if dev.DHCPState(4) != "" {
		t.Error("tracked DHCP state should be cleared")
	}
}

func TestRemoveRoutes_KeysOffViaFamily(t *testing.T) {
	m := newTestModel()
	m.NewLink(testutil.Eth(2, "eth0"))

	if err := m.SetRoutes("eth0", 4, []model.Route{{To: "192.168.0.0/16", Via: "10.0.2.1"}}); err != nil {
		t.Fatal(err)
	}
	if err := m.SetRoutes("eth0", 6, []model.Route{{To: "fd01::/48", Via: "fd00::1"}}); err != nil {
		t.Fatal(err)
	}

	if err := m.RemoveRoutes("eth0", 4); err != nil {
		t.Fatal(err)
	}
	dev, _ := m.Get("eth0")
	routes := dev.Config.Addressing().Routes
	if len(routes) != 1 || routes[0].Via != "fd00::1" {
		t.Errorf("routes = %v, the route with an IPv6 via should survive", routes)
	}
}

func TestSetRoutes_ViaMustMatchVersion(t *testing.T) {
	m := newTestModel()
	m.NewLink(testutil.Eth(2, "eth0"))

	err := m.SetRoutes("eth0", 4, []model.Route{{To: "192.168.0.0/16", Via: "fd00::1"}})
	if !errors.Is(err, util.ErrValidationFailed) {
		t.Errorf("err = %v, want a validation failure", err)
	}
}

func TestSetDHCPState(t *testing.T) {
	m := newTestModel()
	m.NewLink(testutil.Eth(2, "eth0"))

	if err := m.SetDHCPState("eth0", 4, model.DHCPPending); err != nil {
		t.Fatal(err)
	}
	dev, _ := m.Get("eth0")
	if got := dev.DHCPState(4); got != model.DHCPPending {
		t.Errorf("state = %q, want pending", got)
	}

	if err := m.SetDHCPState("eth0", 4, "negotiating"); !errors.Is(err, util.ErrValidationFailed) {
		t.Errorf("unknown state: err = %v, want a validation failure", err)
	}

	if err := m.SetDHCPState("eth0", 4, ""); err != nil {
		t.Fatal(err)
	}
	if dev.DHCPState(4) != "" {
		t.Error("empty state should clear tracking")
	}
}

func TestOpsOnDeletedDeviceRevive(t *testing.T) {
	// a config operation on a live-only device expresses intent to manage it
	m := newTestModel()
	m.NewLink(testutil.Eth(2, "eth0"))
	dev, _ := m.Get("eth0")
	dev.Config = nil

	if err := m.EnableDHCP("eth0", 4); err != nil {
		t.Fatal(err)
	}
	if dev.Config == nil {
		t.Fatal("operation should re-create the configuration")
	}
	if !dev.Config.Addressing().DHCP4 {
		t.Error("DHCP4 should be on")
	}
}
