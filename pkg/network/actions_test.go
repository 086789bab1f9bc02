package network

import (
	"reflect"
	"testing"

	"github.com/ifplan-network/ifplan/internal/testutil"

	"github.com/ifplan-network/ifplan/pkg/model"
)

func TestCapabilities(t *testing.T) {
	m := newTestModel()
	m.NewLink(testutil.Eth(2, "eth0"))
	m.NewLink(testutil.Eth(3, "eth1"))
	m.NewLink(testutil.Wlan(4, "wlan0"))
	if _, err := m.AddOrUpdateBond("", "bond0", model.BondConfig{
		Interfaces: []string{"eth1"}, Mode: "balance-rr",
	}); err != nil {
		t.Fatal(err)
	}
	if _, err := m.AddVLAN("eth0", 100); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		device string
		want   []model.Action
	}{
		{"eth0", []model.Action{
			// vlan parent: still gets more vlans, cannot be deleted (physical)
			model.ActionInfo, model.ActionEditIPv4, model.ActionEditIPv6, model.ActionAddVLAN,
		}},
		{"eth1", []model.Action{
			// bond slave: no vlans on top, not deletable
			model.ActionInfo, model.ActionEditIPv4, model.ActionEditIPv6,
		}},
		{"wlan0", []model.Action{
			model.ActionInfo, model.ActionEditWLAN, model.ActionEditIPv4, model.ActionEditIPv6, model.ActionAddVLAN,
		}},
		{"bond0", []model.Action{
			model.ActionInfo, model.ActionEditIPv4, model.ActionEditIPv6,
			model.ActionEditBond, model.ActionAddVLAN, model.ActionDelete,
		}},
		{"eth0.100", []model.Action{
			// vlans never stack, deletable while unused
			model.ActionInfo, model.ActionEditIPv4, model.ActionEditIPv6, model.ActionDelete,
		}},
	}

	for _, tt := range tests {
		t.Run(tt.device, func(t *testing.T) {
			got, err := m.EnabledActions(tt.device)
			if err != nil {
				t.Fatal(err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("actions = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCapabilities_UsedVirtualNotDeletable(t *testing.T) {
	m := newTestModel()
	m.NewLink(testutil.Eth(2, "eth0"))
	if _, err := m.AddOrUpdateBond("", "bond0", model.BondConfig{
		Interfaces: []string{"eth0"}, Mode: "balance-rr",
	}); err != nil {
		t.Fatal(err)
	}
	if _, err := m.AddVLAN("bond0", 10); err != nil {
		t.Fatal(err)
	}

	actions, err := m.EnabledActions("bond0")
	if err != nil {
		t.Fatal(err)
	}
	for _, a := range actions {
		if a == model.ActionDelete {
			t.Error("bond with a vlan on top must not offer delete")
		}
	}
}
