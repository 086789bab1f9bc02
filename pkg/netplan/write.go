package netplan

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	// RenderedConfigPath is where a render cycle writes the document,
	// relative to the target root.
	RenderedConfigPath = "etc/netplan/00-installer-config.yaml"

	// CloudInitDisablePath is the companion stub that keeps cloud-init from
	// fighting over network configuration on the target.
	CloudInitDisablePath = "etc/cloud/cloud.cfg.d/00-installer-disable-cloudinit-networking.cfg"

	// CloudInitDisableContent is the stub's exact content.
	CloudInitDisableContent = "network: {config: disabled}\n"
)

// Stringify renders the document as YAML with a header comment naming the
// owning project. yaml.v3 emits map keys in sorted order, so output is
// byte-stable for equal documents.
func (d *Document) Stringify(project string) (string, error) {
	body, err := yaml.Marshal(d)
	if err != nil {
		return "", err
	}
	header := fmt.Sprintf("# This is the network config written by '%s'\n", project)
	return header + string(body), nil
}

// ConfigPaths returns the absolute paths a full render cycle writes under
// root.
func ConfigPaths(root string) []string {
	return []string{
		filepath.Join(root, RenderedConfigPath),
		filepath.Join(root, CloudInitDisablePath),
	}
}

// Write writes the rendered document and the cloud-init disable stub under
// root, creating directories as needed.
func (d *Document) Write(root, project string) error {
	text, err := d.Stringify(project)
	if err != nil {
		return err
	}
	files := map[string]string{
		filepath.Join(root, RenderedConfigPath):   text,
		filepath.Join(root, CloudInitDisablePath): CloudInitDisableContent,
	}
	for path, content := range files {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return fmt.Errorf("creating %s: %w", filepath.Dir(path), err)
		}
		if err := os.WriteFile(path, []byte(content), 0600); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
	}
	return nil
}
