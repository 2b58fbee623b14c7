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

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o700))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestLoader_Load_TOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	writeFile(t, path, `
default = "work"

[profiles.work]
url = "https://gitlab.work.example"
private_token = "glpat-work"
timeout = 10
ssl_verify = false

[profiles.home]
url = "https://gitlab.com"
private_token = "glpat-home"

[log]
level = "debug"
`)

	cfg, err := NewLoaderWithPath(path).Load()
	require.NoError(t, err)

	assert.Equal(t, "work", cfg.Default)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Empty(t, cfg.Warnings)
	require.Len(t, cfg.Profiles, 2)

	work := cfg.Profiles["work"]
	assert.Equal(t, "work", work.Name)
	assert.Equal(t, "https://gitlab.work.example", work.URL)
	assert.Equal(t, "glpat-work", work.PrivateToken)
	assert.Equal(t, 10*time.Second, work.Timeout)
	assert.False(t, work.SSLVerify)

	home := cfg.Profiles["home"]
	assert.Equal(t, domain.DefaultTimeout, home.Timeout)
	assert.True(t, home.SSLVerify)
}

func TestLoader_Load_YAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	writeFile(t, path, `
default: home
profiles:
  home:
    url: https://gitlab.com
    private_token: glpat-home
    timeout: 5
`)

	cfg, err := NewLoaderWithPath(path).Load()
	require.NoError(t, err)

	assert.Equal(t, "home", cfg.Default)
	assert.Equal(t, "info", cfg.Log.Level)
	home := cfg.Profiles["home"]
	assert.Equal(t, "https://gitlab.com", home.URL)
	assert.Equal(t, 5*time.Second, home.Timeout)
}

func TestLoader_Load_Warnings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	writeFile(t, path, `
colour = "blue"

[profiles.work]
url = "https://gitlab.example"
token = "typo"

[log]
format = "json"
`)

	cfg, err := NewLoaderWithPath(path).Load()
	require.NoError(t, err)
	assert.Equal(t, []string{
		"unknown key in [log]: format",
		"unknown key in [profiles.work]: token",
		"unknown key: colour",
	}, cfg.Warnings)
}

func TestLoader_Load_InvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	writeFile(t, path, `
[profiles.work]
url = 123
private_token = "glpat-ok"
timeout = -5
ssl_verify = "no"

[log]
level = 3
`)

	cfg, err := NewLoaderWithPath(path).Load()
	require.NoError(t, err)
	assert.Equal(t, []string{
		"invalid value in [log]: level",
		"invalid value in [profiles.work]: ssl_verify",
		"invalid value in [profiles.work]: timeout",
		"invalid value in [profiles.work]: url",
	}, cfg.Warnings)

	p := cfg.Profiles["work"]
	assert.Empty(t, p.URL)
	assert.Equal(t, "glpat-ok", p.PrivateToken)
	assert.Equal(t, domain.DefaultTimeout, p.Timeout)
	assert.True(t, p.SSLVerify)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoader_Load_NotFound(t *testing.T) {
	_, err := NewLoaderWithPath(filepath.Join(t.TempDir(), "missing.toml")).Load()
	assert.ErrorIs(t, err, domain.ErrConfigNotFound)

	_, err = NewLoaderWithPath("").Load()
	assert.ErrorIs(t, err, domain.ErrConfigNotFound)
}

func TestLoader_Load_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	writeFile(t, path, "default = [")

	_, err := NewLoaderWithPath(path).Load()
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrConfigNotFound)
}

func TestResolvePath(t *testing.T) {
	t.Run("override wins", func(t *testing.T) {
		assert.Equal(t, "/tmp/custom.toml", resolvePath("/tmp/custom.toml", t.TempDir()))
	})

	t.Run("defaults to config.toml", func(t *testing.T) {
		dir := t.TempDir()
		assert.Equal(t, filepath.Join(dir, "config.toml"), resolvePath("", dir))
	})

	t.Run("finds yaml", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, filepath.Join(dir, "config.yml"), "default: x\n")
		assert.Equal(t, filepath.Join(dir, "config.yml"), resolvePath("", dir))
	})

	t.Run("toml preferred over yaml", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, filepath.Join(dir, "config.yaml"), "default: x\n")
		writeFile(t, filepath.Join(dir, "config.toml"), "default = \"x\"\n")
		assert.Equal(t, filepath.Join(dir, "config.toml"), resolvePath("", dir))
	})
}

func TestNewLoader_UsesEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "env.toml")
	t.Setenv(domain.ConfigPathEnv, path)

	l := NewLoader()
	assert.Equal(t, path, l.Path())
	assert.Equal(t, filepath.Dir(path), l.Dir())
}

func TestNewLoader_UsesXDGConfigHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv(domain.ConfigPathEnv, "")
	t.Setenv("XDG_CONFIG_HOME", home)

	l := NewLoader()
	assert.Equal(t, domain.GlobalConfigPath(home), l.Path())
}
