package model

// DHCPState tracks negotiation progress for one IP version, as reported by
// the external DHCP collaborator. The engine only records it.
type DHCPState string

const (
	DHCPPending     DHCPState = "pending"
	DHCPTimedOut    DHCPState = "timed-out"
	DHCPReconfigure DHCPState = "reconfigure"
	DHCPConfigured  DHCPState = "configured"
)

// ValidDHCPState reports whether s is a recognized state.
func ValidDHCPState(s DHCPState) bool {
	switch s {
	case DHCPPending, DHCPTimedOut, DHCPReconfigure, DHCPConfigured:
		return true
	}
	return false
}
