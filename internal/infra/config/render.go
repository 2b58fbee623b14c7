package config

import (
	"fmt"
	"time"

	"github.com/pelletier/go-toml/v2"
	"github.com/runoshun/glissue/internal/domain"
)

// file mirrors the on-disk layout shared by the TOML and YAML formats.
type file struct {
	Profiles map[string]fileProfile `toml:"profiles" yaml:"profiles"`
	Default  string                 `toml:"default,omitempty" yaml:"default,omitempty"`
	Log      fileLog                `toml:"log" yaml:"log"`
}

type fileProfile struct {
	URL          string `toml:"url" yaml:"url"`
	PrivateToken string `toml:"private_token" yaml:"private_token"`
	Timeout      int64  `toml:"timeout" yaml:"timeout"`
	SSLVerify    bool   `toml:"ssl_verify" yaml:"ssl_verify"`
}

type fileLog struct {
	Level string `toml:"level" yaml:"level"`
}

func newFile(cfg *domain.Config) file {
	f := file{
		Default:  cfg.Default,
		Profiles: make(map[string]fileProfile, len(cfg.Profiles)),
		Log:      fileLog{Level: cfg.Log.Level},
	}
	for name, p := range cfg.Profiles {
		timeout := p.Timeout
		if timeout <= 0 {
			timeout = domain.DefaultTimeout
		}
		f.Profiles[name] = fileProfile{
			URL:          p.URL,
			PrivateToken: p.PrivateToken,
			Timeout:      int64(timeout / time.Second),
			SSLVerify:    p.SSLVerify,
		}
	}
	return f
}

// RenderTOML renders cfg in the config file format.
func RenderTOML(cfg *domain.Config) (string, error) {
	data, err := toml.Marshal(newFile(cfg))
	if err != nil {
		return "", fmt.Errorf("render config: %w", err)
	}
	return string(data), nil
}
