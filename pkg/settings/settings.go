// Package settings manages persistent user settings for the ifplan CLI.
package settings

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Settings holds persistent user preferences
type Settings struct {
	// Root is the target filesystem root rendered artifacts are written
	// under and existing netplan documents are read from ("" means "/")
	Root string `json:"root,omitempty"`

	// RedisAddr is the address of the Redis instance the prober publishes
	// link events to
	RedisAddr string `json:"redis_addr,omitempty"`

	// Project overrides the project name stamped into rendered documents
	Project string `json:"project,omitempty"`
}

// DefaultSettingsPath returns the default path for the settings file
func DefaultSettingsPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "ifplan_settings.json"
	}
	return filepath.Join(home, ".ifplan", "settings.json")
}

// Load reads settings from the default location
func Load() (*Settings, error) {
	return LoadFrom(DefaultSettingsPath())
}

// LoadFrom reads settings from a specific path
func LoadFrom(path string) (*Settings, error) {
	s := &Settings{}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Return empty settings if file doesn't exist
			return s, nil
		}
		return nil, err
	}

	if err := json.Unmarshal(data, s); err != nil {
		return nil, err
	}

	return s, nil
}

// Save writes settings to the default location
func (s *Settings) Save() error {
	return s.SaveTo(DefaultSettingsPath())
}

// SaveTo writes settings to a specific path
func (s *Settings) SaveTo(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// GetRoot returns the target root (with fallback)
func (s *Settings) GetRoot() string {
	if s.Root != "" {
		return s.Root
	}
	return "/"
}

// GetRedisAddr returns the prober Redis address (with fallback)
func (s *Settings) GetRedisAddr() string {
	if s.RedisAddr != "" {
		return s.RedisAddr
	}
	return "localhost:6379"
}

// GetProject returns the project name (with fallback)
func (s *Settings) GetProject() string {
	if s.Project != "" {
		return s.Project
	}
	return "ifplan"
}

// Clear resets all settings to defaults
func (s *Settings) Clear() {
	*s = Settings{}
}
