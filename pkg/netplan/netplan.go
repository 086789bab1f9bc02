// Package netplan owns the netplan-shaped wire format: the document structs,
// parsing of existing documents on disk, and rendering of the output
// artifact. The engine's internal model never carries yaml tags; mapping
// between the two lives with the renderer.
package netplan

// Document is a complete netplan-shaped configuration document.
type Document struct {
	Network Network `yaml:"network"`
}

// Network is the single top-level section.
type Network struct {
	Version   int                 `yaml:"version"`
	Ethernets map[string]*Device  `yaml:"ethernets,omitempty"`
	Wifis     map[string]*Device  `yaml:"wifis,omitempty"`
	Bonds     map[string]*Device  `yaml:"bonds,omitempty"`
	Vlans     map[string]*Device  `yaml:"vlans,omitempty"`
}

// Device is one device entry. Which fields are meaningful depends on the
// section it appears under; netplan itself rejects misplaced keys.
type Device struct {
	DHCP4       bool         `yaml:"dhcp4,omitempty"`
	DHCP6       bool         `yaml:"dhcp6,omitempty"`
	Addresses   []string     `yaml:"addresses,omitempty"`
	Gateway4    string       `yaml:"gateway4,omitempty"`
	Gateway6    string       `yaml:"gateway6,omitempty"`
	Nameservers *Nameservers `yaml:"nameservers,omitempty"`
	Routes      []Route      `yaml:"routes,omitempty"`

	// bonds
	Interfaces []string        `yaml:"interfaces,omitempty"`
	Parameters *BondParameters `yaml:"parameters,omitempty"`

	// vlans
	Link string `yaml:"link,omitempty"`
	ID   int    `yaml:"id,omitempty"`

	// wifis
	AccessPoints map[string]*AccessPoint `yaml:"access-points,omitempty"`
}

// Nameservers is the nameservers sub-section.
type Nameservers struct {
	Addresses []string `yaml:"addresses,omitempty"`
	Search    []string `yaml:"search,omitempty"`
}

// Route is one entry of a routes list.
type Route struct {
	To     string `yaml:"to"`
	Via    string `yaml:"via"`
	Metric int    `yaml:"metric,omitempty"`
}

// BondParameters is the parameters sub-section of a bond.
type BondParameters struct {
	Mode           string `yaml:"mode,omitempty"`
	XmitHashPolicy string `yaml:"transmit-hash-policy,omitempty"`
	LACPRate       string `yaml:"lacp-rate,omitempty"`
}

// AccessPoint is one entry of a wifi access-points map.
type AccessPoint struct {
	Password string `yaml:"password,omitempty"`
}

// NewDocument returns an empty version-2 document.
func NewDocument() *Document {
	return &Document{Network: Network{Version: 2}}
}

// Section returns the map for one device section, creating it on demand.
func (d *Document) Section(name string) map[string]*Device {
	switch name {
	case "ethernets":
		if d.Network.Ethernets == nil {
			d.Network.Ethernets = map[string]*Device{}
		}
		return d.Network.Ethernets
	case "wifis":
		if d.Network.Wifis == nil {
			d.Network.Wifis = map[string]*Device{}
		}
		return d.Network.Wifis
	case "bonds":
		if d.Network.Bonds == nil {
			d.Network.Bonds = map[string]*Device{}
		}
		return d.Network.Bonds
	case "vlans":
		if d.Network.Vlans == nil {
			d.Network.Vlans = map[string]*Device{}
		}
		return d.Network.Vlans
	}
	return nil
}

// SectionNames lists the device sections this package understands.
var SectionNames = []string{"ethernets", "wifis", "bonds", "vlans"}
