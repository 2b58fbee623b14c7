// Package config provides configuration loading functionality.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"github.com/runoshun/glissue/internal/domain"
	"gopkg.in/yaml.v3"
)

// Ensure Loader implements domain.ConfigLoader.
var _ domain.ConfigLoader = (*Loader)(nil)

// Loader loads configuration from a TOML or YAML file.
type Loader struct {
	path string // Resolved config file path
}

// NewLoader creates a new Loader.
// GLISSUE_CONFIG overrides the file; otherwise the first existing of
// config.toml, config.yaml and config.yml in the global directory is used.
func NewLoader() *Loader {
	return &Loader{path: resolvePath(os.Getenv(domain.ConfigPathEnv), defaultGlobalConfigDir())}
}

// NewLoaderWithPath creates a new Loader reading the given file.
// This is useful for testing.
func NewLoaderWithPath(path string) *Loader {
	return &Loader{path: path}
}

// defaultGlobalConfigDir returns the default global config directory.
func defaultGlobalConfigDir() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return domain.GlobalConfigDir(configHome)
}

// resolvePath picks the config file path from an explicit override or the config directory.
func resolvePath(override, dir string) string {
	if override != "" {
		return override
	}
	if dir == "" {
		return ""
	}
	for _, name := range []string{domain.ConfigFileName, domain.ConfigYAMLFileName, domain.ConfigYMLFileName} {
		candidate := filepath.Join(dir, name)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}
	return filepath.Join(dir, domain.ConfigFileName)
}

// Path returns the config file path.
func (l *Loader) Path() string {
	return l.path
}

// Dir returns the directory holding the config file.
func (l *Loader) Dir() string {
	if l.path == "" {
		return ""
	}
	return filepath.Dir(l.path)
}

// Load reads and parses the config file.
func (l *Loader) Load() (*domain.Config, error) {
	if l.path == "" {
		return nil, domain.ErrConfigNotFound
	}

	data, err := os.ReadFile(l.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", domain.ErrConfigNotFound, l.path)
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	var raw map[string]any
	if isYAML(l.path) {
		err = yaml.Unmarshal(data, &raw)
	} else {
		err = toml.Unmarshal(data, &raw)
	}
	if err != nil {
		return nil, fmt.Errorf("parse config %s: %w", l.path, err)
	}

	return convertRawToDomainConfig(raw), nil
}

func isYAML(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}

// convertRawToDomainConfig converts the raw map to domain config and collects warnings.
func convertRawToDomainConfig(raw map[string]any) *domain.Config {
	res := domain.NewDefaultConfig()
	var warnings []string

	for section, value := range raw {
		switch section {
		case "default":
			if s, ok := value.(string); ok {
				res.Default = s
			} else {
				warnings = append(warnings, "default must be a string")
			}
		case "profiles":
			m, ok := value.(map[string]any)
			if !ok {
				warnings = append(warnings, "[profiles] must be a table")
				continue
			}
			for name, def := range m {
				pm, ok := def.(map[string]any)
				if !ok {
					warnings = append(warnings, fmt.Sprintf("[profiles.%s] must be a table", name))
					continue
				}
				p, profileWarnings := parseProfile(name, pm)
				res.Profiles[name] = p
				warnings = append(warnings, profileWarnings...)
			}
		case "log":
			if m, ok := value.(map[string]any); ok {
				for k, v := range m {
					if k == "level" {
						if s, ok := v.(string); ok {
							res.Log.Level = s
						} else {
							warnings = append(warnings, "invalid value in [log]: level")
						}
						continue
					}
					warnings = append(warnings, fmt.Sprintf("unknown key in [log]: %s", k))
				}
			}
		default:
			warnings = append(warnings, fmt.Sprintf("unknown key: %s", section))
		}
	}

	sort.Strings(warnings)
	res.Warnings = warnings
	return res
}

// parseProfile builds a profile from its raw section. Unknown keys and values
// of the wrong type are reported as warnings and leave the defaults in place.
func parseProfile(name string, m map[string]any) (domain.Profile, []string) {
	p := domain.NewProfile(name, "")
	var unknown, invalid []string

	for k, v := range m {
		ok := true
		switch k {
		case "url":
			p.URL, ok = v.(string)
		case "private_token":
			p.PrivateToken, ok = v.(string)
		case "timeout":
			var d time.Duration
			if d, ok = toSeconds(v); ok {
				p.Timeout = d
			}
		case "ssl_verify":
			var b bool
			if b, ok = v.(bool); ok {
				p.SSLVerify = b
			}
		default:
			unknown = append(unknown, k)
		}
		if !ok {
			invalid = append(invalid, k)
		}
	}

	warnings := make([]string, 0, len(unknown)+len(invalid))
	for _, k := range unknown {
		warnings = append(warnings, fmt.Sprintf("unknown key in [profiles.%s]: %s", name, k))
	}
	for _, k := range invalid {
		warnings = append(warnings, fmt.Sprintf("invalid value in [profiles.%s]: %s", name, k))
	}
	return p, warnings
}

// toSeconds converts a TOML or YAML number of seconds into a duration.
func toSeconds(v any) (time.Duration, bool) {
	switch n := v.(type) {
	case int64:
		return time.Duration(n) * time.Second, n > 0
	case int:
		return time.Duration(n) * time.Second, n > 0
	case float64:
		return time.Duration(n * float64(time.Second)), n > 0
	default:
		return 0, false
	}
}
