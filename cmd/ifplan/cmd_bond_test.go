package main

import (
	"reflect"
	"testing"

	"github.com/ifplan-network/ifplan/internal/testutil"

	"github.com/ifplan-network/ifplan/pkg/model"
	"github.com/ifplan-network/ifplan/pkg/network"
)

func setupBondModel(t *testing.T) {
	t.Helper()
	mdl = network.NewModel("ifplan", testutil.QuietLogger())
	mdl.NewLink(testutil.Eth(2, "eth0"))
	mdl.NewLink(testutil.Eth(3, "eth1"))
	if _, err := mdl.AddOrUpdateBond("", "bond0", model.BondConfig{
		Interfaces:     []string{"eth0"},
		Mode:           "802.3ad",
		XmitHashPolicy: "layer3+4",
		LACPRate:       "fast",
	}); err != nil {
		t.Fatal(err)
	}
}

func TestUpdatedBondConfig_NoFlagsKeepsEverything(t *testing.T) {
	setupBondModel(t)

	cfg, err := updatedBondConfig("bond0", func(string) bool { return false })
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(cfg.Interfaces, []string{"eth0"}) {
		t.Errorf("members = %v, must survive an update with no flags", cfg.Interfaces)
	}
	if cfg.Mode != "802.3ad" || cfg.XmitHashPolicy != "layer3+4" || cfg.LACPRate != "fast" {
		t.Errorf("parameters clobbered: %+v", cfg)
	}
}

func TestUpdatedBondConfig_RenameOnlyUpdate(t *testing.T) {
	setupBondModel(t)

	// what "bond update bond0 --rename-to bond1" sends: no other flag changed
	cfg, err := updatedBondConfig("bond0", func(flag string) bool { return flag == "rename-to" })
	if err != nil {
		t.Fatal(err)
	}
	if _, err := mdl.AddOrUpdateBond("bond0", "bond1", cfg); err != nil {
		t.Fatal(err)
	}

	dev, err := mdl.Get("bond1")
	if err != nil {
		t.Fatal(err)
	}
	got := dev.Config.(*model.BondConfig)
	if !reflect.DeepEqual(got.Interfaces, []string{"eth0"}) {
		t.Errorf("members = %v, a rename-only update must keep them", got.Interfaces)
	}
	if got.Mode != "802.3ad" || got.LACPRate != "fast" {
		t.Errorf("mode/lacp-rate = %q/%q, a rename-only update must keep them", got.Mode, got.LACPRate)
	}
}

func TestUpdatedBondConfig_ChangedFlagsOverride(t *testing.T) {
	setupBondModel(t)
	bondMode = "active-backup"
	bondMembers = []string{"eth0", "eth1"}
	t.Cleanup(func() {
		bondMode = "balance-rr"
		bondMembers = nil
	})

	cfg, err := updatedBondConfig("bond0", func(flag string) bool {
		return flag == "mode" || flag == "members"
	})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Mode != "active-backup" {
		t.Errorf("mode = %q, the given flag must win", cfg.Mode)
	}
	if !reflect.DeepEqual(cfg.Interfaces, []string{"eth0", "eth1"}) {
		t.Errorf("members = %v, the given flag must win", cfg.Interfaces)
	}
	if cfg.LACPRate != "fast" {
		t.Errorf("lacp-rate = %q, untouched parameters must survive", cfg.LACPRate)
	}
}

func TestUpdatedBondConfig_UnknownBond(t *testing.T) {
	mdl = network.NewModel("ifplan", testutil.QuietLogger())
	if _, err := updatedBondConfig("bond9", func(string) bool { return false }); err == nil {
		t.Error("unknown bond should surface a lookup error before any update")
	}
}
