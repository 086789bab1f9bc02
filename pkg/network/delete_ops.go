package network

import (
	"strings"

	"github.com/ifplan-network/ifplan/pkg/util"
)

// DeleteLink logically deletes a virtual device: its configuration is
// cleared, and the entity is removed entirely once no live link remains.
// Physical devices cannot be deleted, only reconfigured or disabled, and a
// device referenced by a bond or vlan must be released first.
func (m *Model) DeleteLink(name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	dev, err := m.requireDevice(name)
	if err != nil {
		return err
	}
	if !dev.IsVirtual() {
		return util.NewPreconditionError("delete-link", name,
			"only virtual devices can be deleted", string(dev.Kind))
	}
	if users := usedBy(name, m.allLocked()); len(users) > 0 {
		return util.NewPreconditionError("delete-link", name,
			"device is in use", "referenced by "+strings.Join(users, ", "))
	}

	dev.Config = nil
	if dev.Info == nil {
		delete(m.devices, name)
	}
	m.log.WithField("device", name).Info("Deleted virtual device")
	return nil
}
