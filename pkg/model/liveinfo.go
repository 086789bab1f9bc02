package model

// AddressSource records how an address got onto a link.
type AddressSource string

const (
	SourceStatic AddressSource = "static"
	SourceDHCP   AddressSource = "dhcp"
)

// Address is one address currently present on a live link.
type Address struct {
	Address string        `json:"address"` // CIDR notation
	Family  int           `json:"family"`  // 4 or 6
	Scope   string        `json:"scope"`   // global, link, host
	Source  AddressSource `json:"source"`
}

// LiveInfo is a snapshot of kernel-reported state for one link, as delivered
// by the prober. A device without LiveInfo is configured but not currently
// present.
type LiveInfo struct {
	Index       int       `json:"index"`
	Name        string    `json:"name"`
	Type        string    `json:"type"` // raw prober type string
	IsVirtual   bool      `json:"is_virtual"`
	IsConnected bool      `json:"is_connected"`
	HWAddr      string    `json:"hwaddr"`
	Vendor      string    `json:"vendor,omitempty"`
	Model       string    `json:"model,omitempty"`
	Addresses   []Address `json:"addresses,omitempty"`

	// WLAN only
	ScanState    string   `json:"scan_state,omitempty"`
	VisibleSSIDs []string `json:"visible_ssids,omitempty"`
}

// AddressesForVersion returns the live addresses of one family, optionally
// restricted to a source.
func (li *LiveInfo) AddressesForVersion(version int, source AddressSource) []string {
	var out []string
	for _, a := range li.Addresses {
		if a.Family != version {
			continue
		}
		if source != "" && a.Source != source {
			continue
		}
		out = append(out, a.Address)
	}
	return out
}
