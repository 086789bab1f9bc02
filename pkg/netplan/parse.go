package netplan

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"
)

// configDir is where netplan documents live under a target root.
const configDir = "etc/netplan"

// Load reads every *.yaml under <root>/etc/netplan in lexical order and
// merges them into one document. Later files override earlier ones per
// device entry, which is how netplan itself resolves its config directory.
// A missing directory yields an empty document.
func Load(root string) (*Document, error) {
	dir := filepath.Join(root, configDir)
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return NewDocument(), nil
		}
		return nil, fmt.Errorf("reading %s: %w", dir, err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".yaml" {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)

	merged := NewDocument()
	for _, name := range names {
		path := filepath.Join(dir, name)
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
		doc, err := Parse(data)
		if err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
		merge(merged, doc)
	}
	return merged, nil
}

// Parse unmarshals one document.
func Parse(data []byte) (*Document, error) {
	doc := NewDocument()
	if err := yaml.Unmarshal(data, doc); err != nil {
		return nil, err
	}
	if doc.Network.Version == 0 {
		doc.Network.Version = 2
	}
	return doc, nil
}

func merge(dst, src *Document) {
	for _, section := range SectionNames {
		from := src.Section(section)
		if len(from) == 0 {
			continue
		}
		to := dst.Section(section)
		for name, dev := range from {
			to[name] = dev
		}
	}
}
