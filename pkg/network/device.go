package network

import (
	"github.com/ifplan-network/ifplan/pkg/model"
)

// Device is one registry entity: a network interface, real or virtual.
// A device always has at least one of Info and Config; an entity with
// neither is removed from the registry.
type Device struct {
	Name string
	Kind model.Kind

	// Info is the kernel-reported state, present only while the prober
	// reports the link as existing.
	Info *model.LiveInfo

	// Config is the desired configuration; nil means the device is present
	// physically but carries no configuration (and is excluded from normal
	// listings).
	Config model.DeviceConfig

	// DisabledReason, when set, explains why the device cannot be managed.
	DisabledReason string

	dhcpState map[int]model.DHCPState
}

// IsVirtual reports whether the device exists by configuration rather than
// hardware.
func (d *Device) IsVirtual() bool {
	return d.Kind.IsVirtual()
}

// HasIncompleteConfig reports whether the device's configuration is too
// incomplete to render cleanly. Only WLAN devices qualify: a wifi entry
// without an access point is rejected by the apply tool.
func (d *Device) HasIncompleteConfig() bool {
	if d.Kind != model.KindWLAN {
		return false
	}
	cfg, ok := d.Config.(*model.WLANConfig)
	if !ok || cfg == nil {
		return true
	}
	return cfg.AP == nil || cfg.AP.SSID == ""
}

// DHCPState returns the tracked negotiation state for one IP version, or ""
// if DHCP is not active for that version.
func (d *Device) DHCPState(version int) model.DHCPState {
	return d.dhcpState[version]
}

// usedBy returns the names of devices that reference name as a bond member
// or vlan parent, sorted by the caller's iteration order.
func usedBy(name string, all []*Device) []string {
	var users []string
	for _, dev := range all {
		switch cfg := dev.Config.(type) {
		case *model.BondConfig:
			for _, member := range cfg.Interfaces {
				if member == name {
					users = append(users, dev.Name)
				}
			}
		case *model.VLANConfig:
			if cfg.Link == name {
				users = append(users, dev.Name)
			}
		}
	}
	return users
}

// isBondSlave reports whether name appears in any bond's member list.
func isBondSlave(name string, all []*Device) bool {
	for _, dev := range all {
		if cfg, ok := dev.Config.(*model.BondConfig); ok {
			for _, member := range cfg.Interfaces {
				if member == name {
					return true
				}
			}
		}
	}
	return false
}

// allLocked returns every entity including logically deleted ones. Lock held
// by caller.
func (m *Model) allLocked() []*Device {
	out := make([]*Device, 0, len(m.devices))
	for _, dev := range m.devices {
		out = append(out, dev)
	}
	return out
}

// IsUsed reports whether any bond or vlan references the named device.
func (m *Model) IsUsed(name string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(usedBy(name, m.allLocked())) > 0
}
