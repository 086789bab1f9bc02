package network

import (
	"fmt"

	"github.com/ifplan-network/ifplan/pkg/model"
	"github.com/ifplan-network/ifplan/pkg/util"
)

func checkVersion(version int) error {
	if version != 4 && version != 6 {
		return util.NewValidationError(fmt.Sprintf("IP version must be 4 or 6, got %d", version))
	}
	return nil
}

// ensureConfig gives a device an empty configuration of its kind if it has
// none. Configuration operations on a live-only device express intent to
// manage it.
func ensureConfig(dev *Device) model.DeviceConfig {
	if dev.Config == nil {
		dev.Config = model.NewConfig(dev.Kind)
	}
	return dev.Config
}

// SetStaticConfig replaces the static addressing of one IP version: its
// addresses, gateway, nameservers and search domains. The other version's
// settings are not disturbed. DHCP for the version is switched off.
func (m *Model) SetStaticConfig(name string, version int, cfg model.StaticConfig) error {
	if err := checkVersion(version); err != nil {
		return err
	}
	for _, addr := range cfg.Addresses {
		if err := util.ValidateCIDR(addr, version); err != nil {
			return util.NewValidationError(err.Error())
		}
	}
	if cfg.Gateway != "" {
		if err := util.ValidateIP(cfg.Gateway, version); err != nil {
			return util.NewValidationError(err.Error())
		}
	}
	for _, ns := range cfg.Nameservers {
		if err := util.ValidateIP(ns, version); err != nil {
			return util.NewValidationError(err.Error())
		}
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	dev, err := m.requireDevice(name)
	if err != nil {
		return err
	}

	a := ensureConfig(dev).Addressing()
	setDHCP(a, version, false)
	a.Addresses = append(util.ExcludeVersion(a.Addresses, version), cfg.Addresses...)
	setGateway(a, version, cfg.Gateway)
	a.Nameservers.Addresses = append(
		util.ExcludeVersion(a.Nameservers.Addresses, version), cfg.Nameservers...)
	a.Nameservers.Search = append([]string(nil), cfg.SearchDomains...)
	delete(dev.dhcpState, version)

	m.log.WithField("device", name).Infof("Set static IPv%d config (%d addresses)", version, len(cfg.Addresses))
	return nil
}

// EnableDHCP turns on DHCP for one IP version.
func (m *Model) EnableDHCP(name string, version int) error {
	if err := checkVersion(version); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	dev, err := m.requireDevice(name)
	if err != nil {
		return err
	}
	setDHCP(ensureConfig(dev).Addressing(), version, true)
	m.log.WithField("device", name).Infof("Enabled DHCPv%d", version)
	return nil
}

// DisableNetwork fully resets one IP version on a device: DHCP flag, static
// addresses, gateway, routes (keyed by the family of their via nexthop),
// that family's nameserver addresses, and any tracked DHCP state.
func (m *Model) DisableNetwork(name string, version int) error {
	if err := checkVersion(version); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	dev, err := m.requireDevice(name)
	if err != nil {
		return err
	}
	if dev.Config == nil {
		return nil
	}

	a := dev.Config.Addressing()
	setDHCP(a, version, false)
	a.Addresses = util.ExcludeVersion(a.Addresses, version)
	setGateway(a, version, "")
	a.Routes = routesExcludingVersion(a.Routes, version)
	a.Nameservers.Addresses = util.ExcludeVersion(a.Nameservers.Addresses, version)
	if len(a.Nameservers.Addresses) == 0 {
		// search domains are not family-scoped; they go when the last
		// nameserver of either family goes
		a.Nameservers.Search = nil
	}
	delete(dev.dhcpState, version)

	m.log.WithField("device", name).Infof("Disabled IPv%d networking", version)
	return nil
}

// SetRoutes replaces the routes of one IP version. Routes are keyed by the
// family of their via nexthop, not of their destination.
func (m *Model) SetRoutes(name string, version int, routes []model.Route) error {
	if err := checkVersion(version); err != nil {
		return err
	}
	for _, r := range routes {
		if err := util.ValidateIP(r.Via, version); err != nil {
			return util.NewValidationError(err.Error())
		}
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	dev, err := m.requireDevice(name)
	if err != nil {
		return err
	}
	a := ensureConfig(dev).Addressing()
	a.Routes = append(routesExcludingVersion(a.Routes, version), routes...)
	m.log.WithField("device", name).Infof("Set %d IPv%d route(s)", len(routes), version)
	return nil
}

// RemoveRoutes drops every route whose via nexthop belongs to the given IP
// version.
func (m *Model) RemoveRoutes(name string, version int) error {
	if err := checkVersion(version); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	dev, err := m.requireDevice(name)
	if err != nil {
		return err
	}
	if dev.Config == nil {
		return nil
	}
	a := dev.Config.Addressing()
	a.Routes = routesExcludingVersion(a.Routes, version)
	return nil
}

// SetDHCPState records the negotiation state reported by the external DHCP
// collaborator. An empty state clears tracking for the version.
func (m *Model) SetDHCPState(name string, version int, state model.DHCPState) error {
	if err := checkVersion(version); err != nil {
		return err
	}
	if state != "" && !model.ValidDHCPState(state) {
		return util.NewValidationError(fmt.Sprintf("unknown DHCP state %q", state))
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	dev, err := m.requireDevice(name)
	if err != nil {
		return err
	}
	if state == "" {
		delete(dev.dhcpState, version)
		return nil
	}
	if dev.dhcpState == nil {
		dev.dhcpState = make(map[int]model.DHCPState)
	}
	dev.dhcpState[version] = state
	return nil
}

// SetDisabledReason records why a device cannot currently be managed.
func (m *Model) SetDisabledReason(name, reason string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	dev, err := m.requireDevice(name)
	if err != nil {
		return err
	}
	dev.DisabledReason = reason
	return nil
}

func setDHCP(a *model.Addressing, version int, on bool) {
	if version == 4 {
		a.DHCP4 = on
	} else {
		a.DHCP6 = on
	}
}

func setGateway(a *model.Addressing, version int, gw string) {
	if version == 4 {
		a.Gateway4 = gw
	} else {
		a.Gateway6 = gw
	}
}

func routesExcludingVersion(routes []model.Route, version int) []model.Route {
	var out []model.Route
	for _, r := range routes {
		if util.IPVersion(r.Via) != version {
			out = append(out, r)
		}
	}
	return out
}
