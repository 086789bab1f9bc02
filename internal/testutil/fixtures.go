// Package testutil provides fixtures shared by package tests.
package testutil

import (
	"io"

	"github.com/sirupsen/logrus"

	"github.com/ifplan-network/ifplan/pkg/model"
)

// QuietLogger returns a logger entry that discards everything. Tests that
// assert on log output swap in their own hook.
func QuietLogger() *logrus.Entry {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return logrus.NewEntry(l)
}

// LinkOption mutates a LiveInfo fixture.
type LinkOption func(*model.LiveInfo)

// Eth returns a live-info snapshot for a plain ethernet link.
func Eth(index int, name string, opts ...LinkOption) *model.LiveInfo {
	info := &model.LiveInfo{
		Index:       index,
		Name:        name,
		Type:        "eth",
		IsConnected: true,
		HWAddr:      "52:54:00:12:34:56",
		Vendor:      "Intel Corporation",
		Model:       "82574L",
	}
	for _, opt := range opts {
		opt(info)
	}
	return info
}

// Wlan returns a live-info snapshot for a wireless link.
func Wlan(index int, name string, opts ...LinkOption) *model.LiveInfo {
	info := &model.LiveInfo{
		Index:        index,
		Name:         name,
		Type:         "wlan",
		IsConnected:  false,
		HWAddr:       "dc:a6:32:01:02:03",
		ScanState:    "idle",
		VisibleSSIDs: []string{"home", "guest"},
	}
	for _, opt := range opts {
		opt(info)
	}
	return info
}

// Virtual returns a live-info snapshot for a virtual link of the given type.
func Virtual(index int, name, typ string, opts ...LinkOption) *model.LiveInfo {
	info := &model.LiveInfo{
		Index:     index,
		Name:      name,
		Type:      typ,
		IsVirtual: true,
	}
	for _, opt := range opts {
		opt(info)
	}
	return info
}

// WithAddr adds an address to the snapshot.
func WithAddr(cidr string, family int, source model.AddressSource) LinkOption {
	return func(info *model.LiveInfo) {
		info.Addresses = append(info.Addresses, model.Address{
			Address: cidr,
			Family:  family,
			Scope:   "global",
			Source:  source,
		})
	}
}

// Disconnected marks the link as having no carrier.
func Disconnected() LinkOption {
	return func(info *model.LiveInfo) {
		info.IsConnected = false
	}
}
