package network

import (
	"github.com/ifplan-network/ifplan/pkg/model"
	"github.com/ifplan-network/ifplan/pkg/util"
)

// SetWLAN replaces the configured access point of a wireless device. An
// empty SSID clears it. At most one access point is modeled.
func (m *Model) SetWLAN(name, ssid, psk string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	dev, err := m.requireDevice(name)
	if err != nil {
		return err
	}
	if dev.Kind != model.KindWLAN {
		return util.NewPreconditionError("set-wlan", name,
			"device must be wireless", string(dev.Kind))
	}

	cfg, ok := ensureConfig(dev).(*model.WLANConfig)
	if !ok {
		cfg = &model.WLANConfig{}
		dev.Config = cfg
	}
	if ssid == "" {
		cfg.AP = nil
		m.log.WithField("device", name).Info("Cleared access point")
		return nil
	}
	cfg.AP = &model.AccessPoint{SSID: ssid, PSK: psk}
	m.log.WithField("device", name).Infof("Set access point %q", ssid)
	return nil
}
