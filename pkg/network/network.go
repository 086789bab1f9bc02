// Package network implements the interface configuration reconciliation
// engine: a registry of network devices, the link-event reconciler that keeps
// it in sync with the kernel, configuration operations, and the renderer
// that derives a netplan-shaped document from registry state.
//
// The registry is mutated only under the Model's write lock; every operation
// runs to completion before another can observe its effects. Rendering and
// queries take the read lock and therefore see a consistent snapshot.
package network

import (
	"sort"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/ifplan-network/ifplan/pkg/model"
	"github.com/ifplan-network/ifplan/pkg/util"
)

// Model is the top-level object owning the device registry.
type Model struct {
	mu      sync.RWMutex
	project string
	log     *logrus.Entry

	devices map[string]*Device

	// parsed holds per-device configs from declarative documents found on
	// disk, consumed when a matching link first appears.
	parsed map[string]model.DeviceConfig
}

// NewModel creates an empty model. project names the owning tool in rendered
// output; log is the sink for reconciler anomalies and render warnings.
func NewModel(project string, log *logrus.Entry) *Model {
	return &Model{
		project: project,
		log:     log,
		devices: make(map[string]*Device),
		parsed:  make(map[string]model.DeviceConfig),
	}
}

// Project returns the project name stamped into rendered output.
func (m *Model) Project() string {
	return m.project
}

// Upsert returns the device with the given name, creating it with an empty
// configuration if it does not exist.
func (m *Model) Upsert(name string, kind model.Kind) *Device {
	m.mu.Lock()
	defer m.mu.Unlock()
	if dev, ok := m.devices[name]; ok {
		return dev
	}
	dev := &Device{Name: name, Kind: kind, Config: model.NewConfig(kind)}
	m.devices[name] = dev
	return dev
}

// Get returns the device with the given name.
func (m *Model) Get(name string) (*Device, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.getLocked(name)
}

func (m *Model) getLocked(name string) (*Device, error) {
	dev, ok := m.devices[name]
	if !ok {
		return nil, util.NewNotFoundError("device", name)
	}
	return dev, nil
}

// List returns devices sorted by name. Devices without configuration
// (logically deleted, or live-only stubs) are excluded unless includeDeleted
// is set.
func (m *Model) List(includeDeleted bool) []*Device {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.listLocked(includeDeleted)
}

func (m *Model) listLocked(includeDeleted bool) []*Device {
	names := make([]string, 0, len(m.devices))
	for name := range m.devices {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]*Device, 0, len(names))
	for _, name := range names {
		dev := m.devices[name]
		if dev.Config == nil && !includeDeleted {
			continue
		}
		out = append(out, dev)
	}
	return out
}

// Remove deletes a registry entry. The caller must already have ensured no
// other device references it.
func (m *Model) Remove(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.devices, name)
}

// LoadConfig stores per-device configs parsed from an existing declarative
// document. They are attached to devices as their links are first sighted.
func (m *Model) LoadConfig(configs map[string]model.DeviceConfig) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for name, cfg := range configs {
		m.parsed[name] = cfg
	}
}

// AdoptConfig creates registry entities for per-device configs right away,
// without waiting for their links to be sighted. Used when the engine is
// driven without a prober: every configured device becomes manageable
// immediately. Existing entities keep their state.
func (m *Model) AdoptConfig(configs map[string]model.DeviceConfig) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for name, cfg := range configs {
		if _, ok := m.devices[name]; ok {
			continue
		}
		m.devices[name] = &Device{Name: name, Kind: cfg.Kind(), Config: cfg}
	}
}

// requireDevice returns the named device, which must exist. Lock held by
// caller.
func (m *Model) requireDevice(name string) (*Device, error) {
	return m.getLocked(name)
}
