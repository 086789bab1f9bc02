package network

import (
	"fmt"

	"github.com/ifplan-network/ifplan/pkg/model"
	"github.com/ifplan-network/ifplan/pkg/util"
)

// AddVLAN creates a vlan device on top of parent. The new device is named
// deterministically as "<parent>.<id>".
func (m *Model) AddVLAN(parent string, id int) (*Device, error) {
	if id < 1 || id > 4094 {
		return nil, util.NewValidationError(fmt.Sprintf("invalid VLAN ID: %d (must be 1-4094)", id))
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, err := m.requireDevice(parent); err != nil {
		return nil, err
	}
	name := fmt.Sprintf("%s.%d", parent, id)
	if _, ok := m.devices[name]; ok {
		return nil, util.NewConflictError("device", name)
	}

	dev := &Device{
		Name:   name,
		Kind:   model.KindVLAN,
		Config: &model.VLANConfig{Link: parent, ID: id},
	}
	m.devices[name] = dev

	m.log.WithField("device", name).Infof("Created VLAN %d on %s", id, parent)
	return dev, nil
}
