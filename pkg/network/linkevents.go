package network

import (
	"github.com/ifplan-network/ifplan/pkg/model"
)

// Link event reconciliation. Events arrive strictly sequentially from the
// prober; anomalies are logged and dropped, never surfaced to the event
// source.

// NewLink handles a link appearing in the kernel. Returns the affected
// device, or nil when the event was filtered or dropped.
func (m *Model) NewLink(info *model.LiveInfo) *Device {
	m.mu.Lock()
	defer m.mu.Unlock()

	if model.Ignored(info.Type) {
		m.log.Debugf("ignoring link %s of type %s", info.Name, info.Type)
		return nil
	}
	kind, ok := model.KindFromString(info.Type)
	if !ok {
		m.log.Debugf("ignoring link %s of unhandled type %s", info.Name, info.Type)
		return nil
	}
	if info.IsVirtual && kind != model.KindBond && kind != model.KindVLAN && kind != model.KindWLAN {
		m.log.Debugf("ignoring unsupported virtual link %s (%s)", info.Name, info.Type)
		return nil
	}

	if dev, ok := m.devices[info.Name]; ok {
		if dev.Info != nil {
			m.log.Warnf("duplicate new-link for %s (index %d), already tracking index %d; ignoring",
				info.Name, info.Index, dev.Info.Index)
			return nil
		}
		dev.Info = info
		m.log.Debugf("link %s (index %d) attached to configured device", info.Name, info.Index)
		return dev
	}

	cfg := m.parsed[info.Name]
	if cfg != nil && cfg.Kind() != kind {
		m.log.Warnf("on-disk config for %s is a %s entry but the link is %s; ignoring it",
			info.Name, cfg.Kind(), kind)
		cfg = nil
	}
	// A virtual device must be created by a configuration operation or an
	// on-disk document before its link may appear. WLAN is exempt: some
	// drivers report wireless links as virtual.
	if info.IsVirtual && kind != model.KindWLAN && cfg == nil {
		m.log.Debugf("dropping unconfigured virtual link %s", info.Name)
		return nil
	}
	if cfg == nil {
		cfg = model.NewConfig(kind)
	}
	dev := &Device{Name: info.Name, Kind: kind, Info: info, Config: cfg}
	m.devices[info.Name] = dev
	m.log.Debugf("new %s device %s (index %d)", kind, info.Name, info.Index)
	return dev
}

// UpdateLink handles a change to a live link, identified by kernel index.
// The returned device is the hook for notification fan-out; nil when the
// index is unknown.
func (m *Model) UpdateLink(index int) *Device {
	return m.UpdateLinkInfo(index, nil)
}

// UpdateLinkInfo is UpdateLink with a refreshed snapshot from the prober.
// The device keeps its index identity; the rest of the live state is
// replaced when info is non-nil.
func (m *Model) UpdateLinkInfo(index int, info *model.LiveInfo) *Device {
	m.mu.Lock()
	defer m.mu.Unlock()

	dev := m.byIndexLocked(index)
	if dev == nil {
		m.log.Warnf("update-link for unknown index %d; ignoring", index)
		return nil
	}
	if info != nil {
		info.Index = index
		dev.Info = info
	}
	return dev
}

// DelLink handles a link disappearing from the kernel, identified by index
// rather than name: the device may have been renamed in configuration since
// it was last seen.
func (m *Model) DelLink(index int) {
	m.mu.Lock()
	defer m.mu.Unlock()

	dev := m.byIndexLocked(index)
	if dev == nil {
		m.log.Warnf("del-link for unknown index %d; ignoring", index)
		return
	}
	dev.Info = nil
	if dev.IsVirtual() {
		// A configured virtual device survives physical disappearance; its
		// hardware does not need to exist.
		if dev.Config == nil {
			delete(m.devices, dev.Name)
		}
		return
	}
	// Physical disappearance is authoritative.
	delete(m.devices, dev.Name)
}

func (m *Model) byIndexLocked(index int) *Device {
	for _, dev := range m.devices {
		if dev.Info != nil && dev.Info.Index == index {
			return dev
		}
	}
	return nil
}
