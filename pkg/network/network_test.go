package network

import (
	"reflect"
	"testing"

	"github.com/ifplan-network/ifplan/internal/testutil"

	"github.com/ifplan-network/ifplan/pkg/model"
	"github.com/ifplan-network/ifplan/pkg/netplan"
)

func TestList_SortedAndFiltered(t *testing.T) {
	m := newTestModel()
	m.NewLink(testutil.Eth(4, "eth2"))
	m.NewLink(testutil.Eth(2, "eth0"))
	m.NewLink(testutil.Eth(3, "eth1"))

	dev, _ := m.Get("eth1")
	dev.Config = nil

	got := m.List(false)
	if len(got) != 2 || got[0].Name != "eth0" || got[1].Name != "eth2" {
		names := make([]string, len(got))
		for i, d := range got {
			names[i] = d.Name
		}
		t.Errorf("List(false) = %v, want [eth0 eth2]", names)
	}

	if len(m.List(true)) != 3 {
		t.Error("List(true) should include the unconfigured device")
	}
}

func TestUpsert(t *testing.T) {
	m := newTestModel()

	dev := m.Upsert("eth0", model.KindEthernet)
	if dev == nil || dev.Config == nil {
		t.Fatal("Upsert must create the device with an empty config")
	}
	if _, ok := dev.Config.(*model.EthernetConfig); !ok {
		t.Errorf("config type = %T, want *model.EthernetConfig", dev.Config)
	}

	again := m.Upsert("eth0", model.KindBond)
	if again != dev {
		t.Error("Upsert on an existing name must return the existing entity")
	}
	if again.Kind != model.KindEthernet {
		t.Errorf("kind = %s, an existing entity must not be re-typed", again.Kind)
	}
}

func TestRemove(t *testing.T) {
	m := newTestModel()
	m.Upsert("eth0", model.KindEthernet)

	m.Remove("eth0")
	if _, err := m.Get("eth0"); err == nil {
		t.Error("removed entity should be gone")
	}

	m.Remove("eth9") // absent name is a no-op
}

func TestIsUsed(t *testing.T) {
	m := newTestModel()
	m.NewLink(testutil.Eth(2, "eth0"))
	m.NewLink(testutil.Eth(3, "eth1"))
	if _, err := m.AddOrUpdateBond("", "bond0", model.BondConfig{
		Interfaces: []string{"eth0"}, Mode: "balance-rr",
	}); err != nil {
		t.Fatal(err)
	}
	if _, err := m.AddVLAN("bond0", 10); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		want bool
	}{
		{"eth0", true},  // bond member
		{"bond0", true}, // vlan parent
		{"eth1", false},
		{"bond0.10", false},
		{"eth9", false}, // unknown names are simply unused
	}
	for _, tt := range tests {
		if got := m.IsUsed(tt.name); got != tt.want {
			t.Errorf("IsUsed(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestRenderedConfigPaths(t *testing.T) {
	m := newTestModel()
	got := m.RenderedConfigPaths("/target")
	want := netplan.ConfigPaths("/target")
	if !reflect.DeepEqual(got, want) {
		t.Errorf("RenderedConfigPaths = %v, want %v", got, want)
	}
}

func TestAdoptConfig(t *testing.T) {
	m := newTestModel()
	m.AdoptConfig(map[string]model.DeviceConfig{
		"eth0":  &model.EthernetConfig{},
		"bond0": &model.BondConfig{Mode: "balance-rr", Interfaces: []string{"eth0"}},
	})

	dev, err := m.Get("bond0")
	if err != nil {
		t.Fatal("adopted config should be manageable immediately")
	}
	if dev.Kind != model.KindBond {
		t.Errorf("kind = %s, want bond", dev.Kind)
	}
	if dev.Info != nil {
		t.Error("adoption creates config-only entities")
	}
}

func TestAdoptConfig_KeepsExisting(t *testing.T) {
	m := newTestModel()
	m.NewLink(testutil.Eth(2, "eth0"))
	if err := m.EnableDHCP("eth0", 4); err != nil {
		t.Fatal(err)
	}

	m.AdoptConfig(map[string]model.DeviceConfig{"eth0": &model.EthernetConfig{}})

	dev, _ := m.Get("eth0")
	if !dev.Config.Addressing().DHCP4 {
		t.Error("adoption must not overwrite an existing entity")
	}
}

func TestGetSummary(t *testing.T) {
	m := newTestModel()
	m.NewLink(testutil.Eth(2, "eth0",
		testutil.WithAddr("10.0.2.15/24", 4, model.SourceDHCP)))
	if err := m.EnableDHCP("eth0", 4); err != nil {
		t.Fatal(err)
	}
	if err := m.SetDHCPState("eth0", 4, model.DHCPConfigured); err != nil {
		t.Fatal(err)
	}
	if _, err := m.AddOrUpdateBond("", "bond0", model.BondConfig{
		Interfaces: []string{"eth0"}, Mode: "active-backup",
	}); err != nil {
		t.Fatal(err)
	}

	s, err := m.GetSummary("eth0")
	if err != nil {
		t.Fatal(err)
	}
	if !s.Present || !s.IsConnected {
		t.Errorf("presence flags wrong: %+v", s)
	}
	if !s.IsBondSlave || !s.IsUsed {
		t.Error("bond membership not reflected")
	}
	if !s.IPv4.DHCPEnabled || s.IPv4.DHCPState != model.DHCPConfigured {
		t.Errorf("ipv4 = %+v", s.IPv4)
	}
	if len(s.IPv4.LiveAddresses) != 1 || s.IPv4.LiveAddresses[0] != "10.0.2.15/24" {
		t.Errorf("live addresses = %v", s.IPv4.LiveAddresses)
	}

	b, err := m.GetSummary("bond0")
	if err != nil {
		t.Fatal(err)
	}
	if b.Bond == nil || b.Bond.Mode != "active-backup" {
		t.Errorf("bond status = %+v", b.Bond)
	}
	if b.Present {
		t.Error("config-only bond is not present")
	}
}
