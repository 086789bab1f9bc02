// Package probe consumes link-state events from the out-of-process prober.
// The prober publishes JSON events on a Redis channel and mirrors the
// current link set under ifplan:link:* keys; this package replays the
// snapshot and then applies events to the model strictly in arrival order.
package probe

import (
	"encoding/json"
	"fmt"

	"github.com/ifplan-network/ifplan/pkg/model"
)

// Event types on the wire.
const (
	EventNewLink    = "new-link"
	EventUpdateLink = "update-link"
	EventDelLink    = "del-link"
	EventDHCPState  = "dhcp-state"
)

// Event is one prober notification.
type Event struct {
	Type  string          `json:"type"`
	Index int             `json:"index"`
	Link  *model.LiveInfo `json:"link,omitempty"` // new-link, update-link
	DHCP  *DHCPUpdate     `json:"dhcp,omitempty"` // dhcp-state
}

// DHCPUpdate reports negotiation progress from the DHCP collaborator.
type DHCPUpdate struct {
	Device  string          `json:"device"`
	Version int             `json:"version"`
	State   model.DHCPState `json:"state"`
}

// DecodeEvent parses one wire event and checks its shape.
func DecodeEvent(data []byte) (*Event, error) {
	var ev Event
	if err := json.Unmarshal(data, &ev); err != nil {
		return nil, fmt.Errorf("decoding event: %w", err)
	}
	switch ev.Type {
	case EventNewLink:
		if ev.Link == nil {
			return nil, fmt.Errorf("new-link event without link snapshot")
		}
	case EventUpdateLink, EventDelLink:
		// kernel interface indexes start at 1
		if ev.Index == 0 {
			return nil, fmt.Errorf("%s event without index", ev.Type)
		}
	case EventDHCPState:
		if ev.DHCP == nil {
			return nil, fmt.Errorf("dhcp-state event without payload")
		}
	default:
		return nil, fmt.Errorf("unknown event type %q", ev.Type)
	}
	return &ev, nil
}
