package model

// VersionStatus summarizes addressing for a single IP version of a device.
type VersionStatus struct {
	DHCPEnabled     bool      `json:"dhcp_enabled"`
	DHCPState       DHCPState `json:"dhcp_state,omitempty"`
	StaticAddresses []string  `json:"static_addresses,omitempty"`
	LiveAddresses   []string  `json:"live_addresses,omitempty"` // dhcp-sourced, from the kernel
	Gateway         string    `json:"gateway,omitempty"`
}

// BondStatus is the bond-specific part of a device summary.
type BondStatus struct {
	Mode           string   `json:"mode"`
	XmitHashPolicy string   `json:"xmit_hash_policy,omitempty"`
	LACPRate       string   `json:"lacp_rate,omitempty"`
	Interfaces     []string `json:"interfaces"`
}

// VLANStatus is the vlan-specific part of a device summary.
type VLANStatus struct {
	Link string `json:"link"`
	ID   int    `json:"id"`
}

// WLANStatus is the wlan-specific part of a device summary.
type WLANStatus struct {
	SSID         string   `json:"ssid,omitempty"`
	PSKSet       bool     `json:"psk_set"`
	ScanState    string   `json:"scan_state,omitempty"`
	VisibleSSIDs []string `json:"visible_ssids,omitempty"`
}

// DeviceSummary is the full read model of one device: stored fields plus
// everything derived from them. It is what list operations return.
type DeviceSummary struct {
	Name           string        `json:"name"`
	Kind           Kind          `json:"kind"`
	Present        bool          `json:"present"` // live in the kernel right now
	IsConnected    bool          `json:"is_connected"`
	IsVirtual      bool          `json:"is_virtual"`
	IsUsed         bool          `json:"is_used"`
	IsBondSlave    bool          `json:"is_bond_slave"`
	HasConfig      bool          `json:"has_config"`
	HWAddr         string        `json:"hwaddr,omitempty"`
	Vendor         string        `json:"vendor,omitempty"`
	Model          string        `json:"model,omitempty"`
	DisabledReason string        `json:"disabled_reason,omitempty"`
	IPv4           VersionStatus `json:"ipv4"`
	IPv6           VersionStatus `json:"ipv6"`
	Bond           *BondStatus   `json:"bond,omitempty"`
	VLAN           *VLANStatus   `json:"vlan,omitempty"`
	WLAN           *WLANStatus   `json:"wlan,omitempty"`
	EnabledActions []Action      `json:"enabled_actions"`
}
