package network

import (
	"github.com/ifplan-network/ifplan/pkg/model"
	"github.com/ifplan-network/ifplan/pkg/util"
)

// GetSummary returns the full read model of one device.
func (m *Model) GetSummary(name string) (model.DeviceSummary, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	dev, err := m.getLocked(name)
	if err != nil {
		return model.DeviceSummary{}, err
	}
	return m.summaryLocked(dev), nil
}

// ListSummaries returns summaries for every listed device, sorted by name.
func (m *Model) ListSummaries(includeDeleted bool) []model.DeviceSummary {
	m.mu.RLock()
	defer m.mu.RUnlock()
	devs := m.listLocked(includeDeleted)
	out := make([]model.DeviceSummary, 0, len(devs))
	for _, dev := range devs {
		out = append(out, m.summaryLocked(dev))
	}
	return out
}

func (m *Model) summaryLocked(dev *Device) model.DeviceSummary {
	all := m.allLocked()
	s := model.DeviceSummary{
		Name:           dev.Name,
		Kind:           dev.Kind,
		Present:        dev.Info != nil,
		IsVirtual:      dev.IsVirtual(),
		IsUsed:         len(usedBy(dev.Name, all)) > 0,
		IsBondSlave:    isBondSlave(dev.Name, all),
		HasConfig:      dev.Config != nil,
		DisabledReason: dev.DisabledReason,
		IPv4:           m.versionStatus(dev, 4),
		IPv6:           m.versionStatus(dev, 6),
		EnabledActions: Capabilities(dev, all).Enabled(),
	}
	if dev.Info != nil {
		s.IsConnected = dev.Info.IsConnected
		s.HWAddr = dev.Info.HWAddr
		s.Vendor = dev.Info.Vendor
		s.Model = dev.Info.Model
	}

	switch cfg := dev.Config.(type) {
	case *model.BondConfig:
		s.Bond = &model.BondStatus{
			Mode:           cfg.Mode,
			XmitHashPolicy: cfg.XmitHashPolicy,
			LACPRate:       cfg.LACPRate,
			Interfaces:     append([]string(nil), cfg.Interfaces...),
		}
	case *model.VLANConfig:
		s.VLAN = &model.VLANStatus{Link: cfg.Link, ID: cfg.ID}
	case *model.WLANConfig:
		w := &model.WLANStatus{}
		if cfg.AP != nil {
			w.SSID = cfg.AP.SSID
			w.PSKSet = cfg.AP.PSK != ""
		}
		s.WLAN = w
	}
	if dev.Kind == model.KindWLAN && dev.Info != nil {
		if s.WLAN == nil {
			s.WLAN = &model.WLANStatus{}
		}
		s.WLAN.ScanState = dev.Info.ScanState
		s.WLAN.VisibleSSIDs = append([]string(nil), dev.Info.VisibleSSIDs...)
	}
	return s
}

func (m *Model) versionStatus(dev *Device, version int) model.VersionStatus {
	vs := model.VersionStatus{DHCPState: dev.DHCPState(version)}
	if dev.Config != nil {
		a := dev.Config.Addressing()
		if version == 4 {
			vs.DHCPEnabled = a.DHCP4
			vs.Gateway = a.Gateway4
		} else {
			vs.DHCPEnabled = a.DHCP6
			vs.Gateway = a.Gateway6
		}
		vs.StaticAddresses = util.FilterByVersion(a.Addresses, version, false)
	}
	if dev.Info != nil {
		vs.LiveAddresses = dev.Info.AddressesForVersion(version, model.SourceDHCP)
	}
	return vs
}
