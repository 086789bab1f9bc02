package network

import (
	"github.com/ifplan-network/ifplan/pkg/model"
)

// Capabilities computes which management actions are currently valid for a
// device, given the full registry snapshot. It is a pure function: no state
// is captured, everything derives from dev and all.
func Capabilities(dev *Device, all []*Device) model.ActionSet {
	return model.ActionSet{
		model.ActionInfo:     true,
		model.ActionEditIPv4: true,
		model.ActionEditIPv6: true,
		model.ActionEditWLAN: dev.Kind == model.KindWLAN,
		model.ActionEditBond: dev.Kind == model.KindBond,
		model.ActionAddVLAN:  dev.Kind != model.KindVLAN && !isBondSlave(dev.Name, all),
		model.ActionDelete:   dev.IsVirtual() && len(usedBy(dev.Name, all)) == 0,
	}
}

// EnabledActions returns the valid actions for one device by name.
func (m *Model) EnabledActions(name string) ([]model.Action, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	dev, err := m.getLocked(name)
	if err != nil {
		return nil, err
	}
	return Capabilities(dev, m.allLocked()).Enabled(), nil
}
