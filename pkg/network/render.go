package network

import (
	"github.com/ifplan-network/ifplan/pkg/netplan"
)

// RenderConfig derives the declarative configuration document from the
// current registry state. It is a pure function of the registry snapshot and
// the project name: two calls with no intervening mutation produce equal
// documents.
//
// Per-device rules, in order:
//  1. a device with no configuration that nothing references is skipped;
//  2. a device with an incomplete configuration is skipped, unless another
//     device references it, in which case it is rendered anyway under a
//     warning (the apply tool will likely reject the document, but dropping
//     a referenced device would silently break the referencing devices);
//  3. otherwise its configuration is included verbatim under its kind's
//     section.
func (m *Model) RenderConfig() *netplan.Document {
	m.mu.RLock()
	defer m.mu.RUnlock()

	doc := netplan.NewDocument()
	all := m.allLocked()
	for _, dev := range m.listLocked(true) {
		used := len(usedBy(dev.Name, all)) > 0
		if dev.Config == nil && !used {
			continue
		}
		if dev.HasIncompleteConfig() {
			if !used {
				continue
			}
			m.log.Warnf("device %s has an incomplete config but is referenced by other devices; rendering it anyway", dev.Name)
		}
		section := doc.Section(sectionFor(dev.Kind))
		if dev.Config == nil {
			// referenced stub: keep the name resolvable
			section[dev.Name] = &netplan.Device{}
			continue
		}
		section[dev.Name] = toWire(dev.Config)
	}
	return doc
}

// Stringify renders the document for the model's project.
func (m *Model) Stringify() (string, error) {
	return m.RenderConfig().Stringify(m.project)
}

// RenderedConfigPaths returns the files a full render cycle writes under
// root.
func (m *Model) RenderedConfigPaths(root string) []string {
	return netplan.ConfigPaths(root)
}
