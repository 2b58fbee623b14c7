package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/runoshun/glissue/internal/domain"
	"gopkg.in/yaml.v3"
)

// Ensure Manager implements domain.ConfigManager.
var _ domain.ConfigManager = (*Manager)(nil)

const tomlHeader = `# glissue configuration
#
# Each [profiles.<name>] table is a GitLab instance with its credentials.
# Select one with "glissue --config <name>"; without --config the profile
# named by default is used. timeout is in seconds.

`

// Manager manages the configuration file.
type Manager struct {
	path string
}

// NewManager creates a new Manager for the file the loader reads.
func NewManager(loader *Loader) *Manager {
	return &Manager{path: loader.Path()}
}

// NewManagerWithPath creates a new Manager for the given file.
// This is useful for testing.
func NewManagerWithPath(path string) *Manager {
	return &Manager{path: path}
}

// GetConfigInfo returns information about the config file.
func (m *Manager) GetConfigInfo() domain.ConfigInfo {
	content, err := os.ReadFile(m.path)
	if err != nil {
		return domain.ConfigInfo{
			Path:   m.path,
			Exists: false,
		}
	}
	return domain.ConfigInfo{
		Path:    m.path,
		Content: string(content),
		Exists:  true,
	}
}

// InitConfig creates the config file holding the given profile as default.
func (m *Manager) InitConfig(profile domain.Profile) error {
	if m.path == "" {
		return fmt.Errorf("config directory not available")
	}
	if profile.URL == "" {
		return domain.ErrEmptyURL
	}

	// Check if file already exists
	if _, err := os.Stat(m.path); err == nil {
		return domain.ErrConfigExists
	}

	if err := os.MkdirAll(filepath.Dir(m.path), 0o700); err != nil {
		return err
	}

	cfg := domain.NewDefaultConfig()
	cfg.Default = profile.Name
	cfg.Profiles[profile.Name] = profile

	var content []byte
	if isYAML(m.path) {
		data, err := yaml.Marshal(newFile(cfg))
		if err != nil {
			return fmt.Errorf("render config: %w", err)
		}
		content = data
	} else {
		// The encoder quotes profile names and string values as TOML requires.
		data, err := RenderTOML(cfg)
		if err != nil {
			return err
		}
		content = []byte(tomlHeader + data)
	}

	// Tokens live in this file, so keep it private to the owner.
	return os.WriteFile(m.path, content, 0o600)
}
