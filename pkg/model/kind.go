// Package model defines the domain models for interface configuration.
package model

// Kind identifies the type of a network device.
type Kind string

const (
	KindEthernet Kind = "eth"
	KindWLAN     Kind = "wlan"
	KindBond     Kind = "bond"
	KindVLAN     Kind = "vlan"
)

// ignoredKinds are link types reported by the prober that never become
// registry entities.
var ignoredKinds = map[string]bool{
	"lo":      true,
	"bridge":  true,
	"tun":     true,
	"tap":     true,
	"dummy":   true,
	"sit":     true,
	"can":     true,
	"unknown": true,
}

// KindFromString maps a prober-reported link type to a Kind.
// ok is false for types that are filtered at ingestion.
func KindFromString(s string) (Kind, bool) {
	switch Kind(s) {
	case KindEthernet, KindWLAN, KindBond, KindVLAN:
		return Kind(s), true
	}
	return "", false
}

// Ignored reports whether a prober-reported link type is in the ignored set.
func Ignored(s string) bool {
	return ignoredKinds[s]
}

// IsVirtual reports whether devices of this kind exist by configuration
// rather than hardware.
func (k Kind) IsVirtual() bool {
	return k == KindBond || k == KindVLAN
}
