package model

// Route is one static route. Removal by IP version keys off the family of
// Via, not of To.
type Route struct {
	To     string `json:"to"`
	Via    string `json:"via"`
	Metric int    `json:"metric,omitempty"`
}

// Nameservers holds DNS configuration. Addresses may mix families; Search is
// not family-scoped.
type Nameservers struct {
	Addresses []string `json:"addresses,omitempty"`
	Search    []string `json:"search,omitempty"`
}

// Addressing is the addressing state shared by every device kind.
// Addresses holds CIDRs of both families; per-version operations filter by
// family.
type Addressing struct {
	DHCP4       bool        `json:"dhcp4,omitempty"`
	DHCP6       bool        `json:"dhcp6,omitempty"`
	Addresses   []string    `json:"addresses,omitempty"`
	Gateway4    string      `json:"gateway4,omitempty"`
	Gateway6    string      `json:"gateway6,omitempty"`
	Nameservers Nameservers `json:"nameservers,omitempty"`
	Routes      []Route     `json:"routes,omitempty"`
}

// DeviceConfig is the desired configuration of one device. Exactly one
// concrete type exists per device kind.
type DeviceConfig interface {
	Kind() Kind
	// Addressing returns the mutable shared addressing state.
	Addressing() *Addressing
}

// EthernetConfig configures a physical ethernet device.
type EthernetConfig struct {
	Addr Addressing `json:"addressing"`
}

func (c *EthernetConfig) Kind() Kind              { return KindEthernet }
func (c *EthernetConfig) Addressing() *Addressing { return &c.Addr }

// AccessPoint is the single configured WLAN access point.
type AccessPoint struct {
	SSID string `json:"ssid"`
	PSK  string `json:"psk,omitempty"`
}

// WLANConfig configures a wireless device. At most one access point is
// modeled.
type WLANConfig struct {
	Addr Addressing   `json:"addressing"`
	AP   *AccessPoint `json:"access_point,omitempty"`
}

func (c *WLANConfig) Kind() Kind              { return KindWLAN }
func (c *WLANConfig) Addressing() *Addressing { return &c.Addr }

// Bond modes and the parameter combinations they support.
var (
	BondModes = []string{
		"balance-rr", "active-backup", "balance-xor", "broadcast",
		"802.3ad", "balance-tlb", "balance-alb",
	}
	xmitHashPolicyModes = map[string]bool{
		"balance-xor": true,
		"802.3ad":     true,
		"balance-tlb": true,
	}
	lacpRateModes = map[string]bool{
		"802.3ad": true,
	}
)

// ValidBondMode reports whether mode is a recognized bond mode.
func ValidBondMode(mode string) bool {
	for _, m := range BondModes {
		if m == mode {
			return true
		}
	}
	return false
}

// BondConfig configures a bond device.
type BondConfig struct {
	Addr           Addressing `json:"addressing"`
	Interfaces     []string   `json:"interfaces"`
	Mode           string     `json:"mode"`
	XmitHashPolicy string     `json:"xmit_hash_policy,omitempty"`
	LACPRate       string     `json:"lacp_rate,omitempty"`
}

func (c *BondConfig) Kind() Kind              { return KindBond }
func (c *BondConfig) Addressing() *Addressing { return &c.Addr }

// Normalize drops bond parameters the configured mode does not support.
// This is a normalization rule, not a validation failure.
func (c *BondConfig) Normalize() {
	if !xmitHashPolicyModes[c.Mode] {
		c.XmitHashPolicy = ""
	}
	if !lacpRateModes[c.Mode] {
		c.LACPRate = ""
	}
}

// VLANConfig configures a vlan device on top of a parent link.
type VLANConfig struct {
	Addr Addressing `json:"addressing"`
	Link string     `json:"link"`
	ID   int        `json:"id"`
}

func (c *VLANConfig) Kind() Kind              { return KindVLAN }
func (c *VLANConfig) Addressing() *Addressing { return &c.Addr }

// NewConfig returns an empty configuration of the given kind.
func NewConfig(kind Kind) DeviceConfig {
	switch kind {
	case KindWLAN:
		return &WLANConfig{}
	case KindBond:
		return &BondConfig{}
	case KindVLAN:
		return &VLANConfig{}
	default:
		return &EthernetConfig{}
	}
}

// StaticConfig is the per-version input to a static addressing change.
type StaticConfig struct {
	Addresses     []string `json:"addresses"`
	Gateway       string   `json:"gateway,omitempty"`
	Nameservers   []string `json:"nameservers,omitempty"`
	SearchDomains []string `json:"search_domains,omitempty"`
}
