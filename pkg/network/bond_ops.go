package network

import (
	"fmt"

	"github.com/ifplan-network/ifplan/pkg/model"
	"github.com/ifplan-network/ifplan/pkg/util"
)

// AddOrUpdateBond creates a bond, or updates (possibly renaming) the bond
// named by existingName when it is non-empty.
//
// Bond parameters are normalized, not validated: xmit-hash-policy is kept
// only for modes that hash (balance-xor, 802.3ad, balance-tlb) and lacp-rate
// only for 802.3ad; unsupported combinations are silently dropped.
//
// Renaming a bond whose link is currently live leaves a stub entity under
// the old name carrying the live info and no configuration, so a render
// cycle can signal teardown of the old link to the apply mechanism.
func (m *Model) AddOrUpdateBond(existingName, name string, cfg model.BondConfig) (*Device, error) {
	if !model.ValidBondMode(cfg.Mode) {
		return nil, util.NewValidationError(fmt.Sprintf("unknown bond mode %q", cfg.Mode))
	}
	cfg.Normalize()

	m.mu.Lock()
	defer m.mu.Unlock()

	all := m.allLocked()
	for _, member := range cfg.Interfaces {
		if _, ok := m.devices[member]; !ok {
			return nil, util.NewNotFoundError("bond member", member)
		}
		if owner := owningBond(member, all); owner != "" && owner != existingName {
			return nil, util.NewPreconditionError("add-or-update-bond", name,
				"member must not belong to another bond",
				fmt.Sprintf("%s is a member of %s", member, owner))
		}
	}

	if existingName == "" {
		if _, ok := m.devices[name]; ok {
			return nil, util.NewConflictError("device", name)
		}
		dev := &Device{Name: name, Kind: model.KindBond, Config: &cfg}
		m.devices[name] = dev
		m.log.WithField("device", name).Infof("Created bond (mode %s, members %v)", cfg.Mode, cfg.Interfaces)
		return dev, nil
	}

	dev, err := m.requireDevice(existingName)
	if err != nil {
		return nil, err
	}
	if dev.Kind != model.KindBond {
		return nil, util.NewPreconditionError("add-or-update-bond", existingName,
			"device must be a bond", string(dev.Kind))
	}

	if name != existingName {
		if _, ok := m.devices[name]; ok {
			return nil, util.NewConflictError("device", name)
		}
		delete(m.devices, existingName)
		if dev.Info != nil {
			// Preserve the old identity so the renderer can see that the old
			// virtual link still exists and must be torn down.
			m.devices[existingName] = &Device{
				Name: existingName,
				Kind: dev.Kind,
				Info: dev.Info,
			}
			dev.Info = nil
		}
		dev.Name = name
		m.devices[name] = dev
	}

	// Addressing survives a bond edit; only bond-specific fields change.
	if existing, ok := dev.Config.(*model.BondConfig); ok {
		cfg.Addr = existing.Addr
	}
	dev.Config = &cfg

	m.log.WithField("device", name).Infof("Updated bond (mode %s, members %v)", cfg.Mode, cfg.Interfaces)
	return dev, nil
}

// owningBond returns the name of the bond that claims member, or "".
func owningBond(member string, all []*Device) string {
	for _, dev := range all {
		if cfg, ok := dev.Config.(*model.BondConfig); ok {
			for _, iface := range cfg.Interfaces {
				if iface == member {
					return dev.Name
				}
			}
		}
	}
	return ""
}
