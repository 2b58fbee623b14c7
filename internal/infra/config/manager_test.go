package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/runoshun/glissue/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_GetConfigInfo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	m := NewManagerWithPath(path)

	info := m.GetConfigInfo()
	assert.Equal(t, path, info.Path)
	assert.False(t, info.Exists)

	writeFile(t, path, "default = \"x\"\n")
	info = m.GetConfigInfo()
	assert.True(t, info.Exists)
	assert.Equal(t, "default = \"x\"\n", info.Content)
}

func TestManager_InitConfig_RoundTrip(t *testing.T) {
	for _, name := range []string{"config.toml", "config.yaml"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "nested", name)
			p := domain.NewProfile("work", "https://gitlab.example.com")
			p.PrivateToken = "glpat-secret"
			p.Timeout = 12 * time.Second

			require.NoError(t, NewManagerWithPath(path).InitConfig(p))

			stat, err := os.Stat(path)
			require.NoError(t, err)
			assert.Equal(t, os.FileMode(0o600), stat.Mode().Perm())

			cfg, err := NewLoaderWithPath(path).Load()
			require.NoError(t, err)
			assert.Empty(t, cfg.Warnings)
			assert.Equal(t, "work", cfg.Default)

			got, err := cfg.ResolveProfile("")
			require.NoError(t, err)
			assert.Equal(t, p, got)
		})
	}
}

func TestManager_InitConfig_QuotesNamesAndValues(t *testing.T) {
	tests := []struct {
		name    string
		profile string
		url     string
		token   string
	}{
		{name: "dotted name", profile: "gitlab.com", url: "https://gitlab.com", token: "glpat-1"},
		{name: "name with space", profile: "my work", url: "https://gitlab.work.example", token: "glpat-2"},
		{name: "quote and backslash", profile: "work", url: `https://gitlab.example.com/"a\b"`, token: `glpat-"x\y`},
	}

	for _, tt := range tests {
		for _, file := range []string{"config.toml", "config.yaml"} {
			t.Run(tt.name+"/"+file, func(t *testing.T) {
				path := filepath.Join(t.TempDir(), file)
				p := domain.NewProfile(tt.profile, tt.url)
				p.PrivateToken = tt.token

				require.NoError(t, NewManagerWithPath(path).InitConfig(p))

				cfg, err := NewLoaderWithPath(path).Load()
				require.NoError(t, err)
				assert.Empty(t, cfg.Warnings)
				assert.Equal(t, []string{tt.profile}, cfg.ProfileNames())

				got, err := cfg.ResolveProfile("")
				require.NoError(t, err)
				assert.Equal(t, tt.profile, got.Name)
				assert.Equal(t, tt.url, got.URL)
				assert.Equal(t, tt.token, got.PrivateToken)
			})
		}
	}
}

func TestManager_InitConfig_Exists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	writeFile(t, path, "")

	err := NewManagerWithPath(path).InitConfig(domain.NewProfile("work", "https://gitlab.com"))
	assert.ErrorIs(t, err, domain.ErrConfigExists)
}

func TestManager_InitConfig_EmptyURL(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	err := NewManagerWithPath(path).InitConfig(domain.NewProfile("work", ""))
	assert.ErrorIs(t, err, domain.ErrEmptyURL)
	assert.NoFileExists(t, path)
}

func TestNewManager_SharesLoaderPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	m := NewManager(NewLoaderWithPath(path))
	assert.Equal(t, path, m.GetConfigInfo().Path)
}
