package network

import (
	"sort"

	"github.com/ifplan-network/ifplan/pkg/model"
	"github.com/ifplan-network/ifplan/pkg/netplan"
)

// Mapping between the internal configuration model and the netplan wire
// structs. The live entity state is never the wire shape; these two
// functions are the only crossing point.

func sectionFor(kind model.Kind) string {
	switch kind {
	case model.KindWLAN:
		return "wifis"
	case model.KindBond:
		return "bonds"
	case model.KindVLAN:
		return "vlans"
	default:
		return "ethernets"
	}
}

func toWire(cfg model.DeviceConfig) *netplan.Device {
	w := &netplan.Device{}
	a := cfg.Addressing()
	w.DHCP4 = a.DHCP4
	w.DHCP6 = a.DHCP6
	w.Addresses = append([]string(nil), a.Addresses...)
	w.Gateway4 = a.Gateway4
	w.Gateway6 = a.Gateway6
	if len(a.Nameservers.Addresses) > 0 || len(a.Nameservers.Search) > 0 {
		w.Nameservers = &netplan.Nameservers{
			Addresses: append([]string(nil), a.Nameservers.Addresses...),
			Search:    append([]string(nil), a.Nameservers.Search...),
		}
	}
	for _, r := range a.Routes {
		w.Routes = append(w.Routes, netplan.Route{To: r.To, Via: r.Via, Metric: r.Metric})
	}

	switch c := cfg.(type) {
	case *model.BondConfig:
		w.Interfaces = append([]string(nil), c.Interfaces...)
		if c.Mode != "" {
			w.Parameters = &netplan.BondParameters{
				Mode:           c.Mode,
				XmitHashPolicy: c.XmitHashPolicy,
				LACPRate:       c.LACPRate,
			}
		}
	case *model.VLANConfig:
		w.Link = c.Link
		w.ID = c.ID
	case *model.WLANConfig:
		if c.AP != nil && c.AP.SSID != "" {
			w.AccessPoints = map[string]*netplan.AccessPoint{
				c.AP.SSID: {Password: c.AP.PSK},
			}
		}
	}
	return w
}

func fromWire(kind model.Kind, w *netplan.Device) model.DeviceConfig {
	a := model.Addressing{
		DHCP4:     w.DHCP4,
		DHCP6:     w.DHCP6,
		Addresses: append([]string(nil), w.Addresses...),
		Gateway4:  w.Gateway4,
		Gateway6:  w.Gateway6,
	}
	if w.Nameservers != nil {
		a.Nameservers.Addresses = append([]string(nil), w.Nameservers.Addresses...)
		a.Nameservers.Search = append([]string(nil), w.Nameservers.Search...)
	}
	for _, r := range w.Routes {
		a.Routes = append(a.Routes, model.Route{To: r.To, Via: r.Via, Metric: r.Metric})
	}

	switch kind {
	case model.KindBond:
		cfg := &model.BondConfig{
			Addr:       a,
			Interfaces: append([]string(nil), w.Interfaces...),
		}
		if w.Parameters != nil {
			cfg.Mode = w.Parameters.Mode
			cfg.XmitHashPolicy = w.Parameters.XmitHashPolicy
			cfg.LACPRate = w.Parameters.LACPRate
		}
		return cfg
	case model.KindVLAN:
		return &model.VLANConfig{Addr: a, Link: w.Link, ID: w.ID}
	case model.KindWLAN:
		cfg := &model.WLANConfig{Addr: a}
		// the wire format is a map but at most one entry is meaningful;
		// take the lexically first for determinism
		if len(w.AccessPoints) > 0 {
			ssids := make([]string, 0, len(w.AccessPoints))
			for ssid := range w.AccessPoints {
				ssids = append(ssids, ssid)
			}
			sort.Strings(ssids)
			cfg.AP = &model.AccessPoint{SSID: ssids[0], PSK: w.AccessPoints[ssids[0]].Password}
		}
		return cfg
	default:
		return &model.EthernetConfig{Addr: a}
	}
}

// ImportDocument converts a parsed declarative document into the per-device
// config mapping the reconciler consumes via LoadConfig.
func ImportDocument(doc *netplan.Document) map[string]model.DeviceConfig {
	out := make(map[string]model.DeviceConfig)
	sections := map[model.Kind]map[string]*netplan.Device{
		model.KindEthernet: doc.Network.Ethernets,
		model.KindWLAN:     doc.Network.Wifis,
		model.KindBond:     doc.Network.Bonds,
		model.KindVLAN:     doc.Network.Vlans,
	}
	for kind, section := range sections {
		for name, dev := range section {
			if dev == nil {
				dev = &netplan.Device{}
			}
			out[name] = fromWire(kind, dev)
		}
	}
	return out
}
