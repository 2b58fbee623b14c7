package domain

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// Configuration file and directory names.
const (
	AppDirName         = "glissue"
	ConfigFileName     = "config.toml"
	ConfigYAMLFileName = "config.yaml"
	ConfigYMLFileName  = "config.yml"
	ConfigPathEnv      = "GLISSUE_CONFIG"
	LogFileName        = "glissue.log"
)

// DefaultTimeout bounds every remote call when a profile sets none.
const DefaultTimeout = 30 * time.Second

// Config represents the application configuration.
// Fields are ordered to minimize memory padding.
type Config struct {
	Profiles map[string]Profile
	Default  string
	Log      LogConfig
	Warnings []string
}

// Profile is a named tracker endpoint with its credentials.
// Fields are ordered to minimize memory padding.
type Profile struct {
	Name         string
	URL          string
	PrivateToken string
	Timeout      time.Duration
	SSLVerify    bool
}

// LogConfig holds logging settings from [log] section.
type LogConfig struct {
	Level string // Log level: debug, info, warn, error
}

// NewDefaultConfig returns a Config with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Profiles: make(map[string]Profile),
		Log:      LogConfig{Level: "info"},
	}
}

// NewProfile returns a profile with default timeout and TLS verification.
func NewProfile(name, url string) Profile {
	return Profile{
		Name:      name,
		URL:       url,
		Timeout:   DefaultTimeout,
		SSLVerify: true,
	}
}

// ProfileNames returns the configured profile names in sorted order.
func (c *Config) ProfileNames() []string {
	names := make([]string, 0, len(c.Profiles))
	for name := range c.Profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ResolveProfile returns the named profile, or the default one when name is empty.
// Without a configured default, a single profile is the default.
func (c *Config) ResolveProfile(name string) (Profile, error) {
	if name == "" {
		name = c.Default
	}
	if name == "" {
		if len(c.Profiles) == 1 {
			for _, p := range c.Profiles {
				return p, nil
			}
		}
		return Profile{}, ErrNoDefaultProfile
	}

	p, ok := c.Profiles[name]
	if !ok {
		return Profile{}, fmt.Errorf("%w: %s", ErrProfileNotFound, name)
	}
	if p.URL == "" {
		return Profile{}, fmt.Errorf("profile %s: %w", name, ErrEmptyURL)
	}
	return p, nil
}

// Masked returns a copy of the config with every private token masked.
func (c *Config) Masked() *Config {
	masked := *c
	masked.Profiles = make(map[string]Profile, len(c.Profiles))
	for name, p := range c.Profiles {
		p.PrivateToken = MaskToken(p.PrivateToken)
		masked.Profiles[name] = p
	}
	masked.Warnings = append([]string(nil), c.Warnings...)
	return &masked
}

// MaskToken hides all but the last four characters of a token.
func MaskToken(token string) string {
	if token == "" {
		return ""
	}
	if len(token) <= 4 {
		return strings.Repeat("*", len(token))
	}
	return strings.Repeat("*", len(token)-4) + token[len(token)-4:]
}

// GlobalConfigDir returns the application config directory.
// configHome is typically XDG_CONFIG_HOME or ~/.config (resolved by caller).
func GlobalConfigDir(configHome string) string {
	return filepath.Join(configHome, AppDirName)
}

// GlobalConfigPath returns the default config file path.
// configHome is typically XDG_CONFIG_HOME or ~/.config (resolved by caller).
func GlobalConfigPath(configHome string) string {
	return filepath.Join(GlobalConfigDir(configHome), ConfigFileName)
}

// LogPath returns the path of the log file under the config directory.
func LogPath(configDir string) string {
	return filepath.Join(configDir, "logs", LogFileName)
}
