package model

// Action is a management operation a UI or API layer may offer on a device.
type Action string

const (
	ActionInfo     Action = "info"
	ActionEditWLAN Action = "edit-wlan"
	ActionEditIPv4 Action = "edit-ipv4"
	ActionEditIPv6 Action = "edit-ipv6"
	ActionEditBond Action = "edit-bond"
	ActionAddVLAN  Action = "add-vlan"
	ActionDelete   Action = "delete"
)

// AllActions lists every action in display order.
var AllActions = []Action{
	ActionInfo, ActionEditWLAN, ActionEditIPv4, ActionEditIPv6,
	ActionEditBond, ActionAddVLAN, ActionDelete,
}

// ActionSet is the set of actions currently valid for a device.
type ActionSet map[Action]bool

// Enabled returns the members of the set in display order.
func (s ActionSet) Enabled() []Action {
	var out []Action
	for _, a := range AllActions {
		if s[a] {
			out = append(out, a)
		}
	}
	return out
}
