package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/runoshun/glissue/internal/app"
	"github.com/runoshun/glissue/internal/domain"
	"github.com/runoshun/glissue/internal/infra/config"
	"github.com/runoshun/glissue/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newConfigTestContainer creates an app.Container with real config infrastructure
// bound to a temporary config file.
func newConfigTestContainer(t *testing.T) (*app.Container, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	loader := config.NewLoaderWithPath(path)
	c := app.NewWithDeps(loader, config.NewManager(loader), testutil.NewMockConsole(), &testutil.MockLogger{}, nil)
	return c, path
}

func runConfigCommand(t *testing.T, c *app.Container, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand(c, "test")
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(append([]string{"config"}, args...))
	err := cmd.Execute()
	return buf.String(), err
}

func TestConfigCommand_NoSubcommand_ShowsHelp(t *testing.T) {
	c, _ := newConfigTestContainer(t)

	output, err := runConfigCommand(t, c)

	require.NoError(t, err)
	assert.Contains(t, output, "Available Commands:")
	assert.Contains(t, output, "show")
	assert.Contains(t, output, "init")
}

func TestConfigShow_NotFound(t *testing.T) {
	c, path := newConfigTestContainer(t)

	output, err := runConfigCommand(t, c, "show")

	require.NoError(t, err)
	assert.Contains(t, output, "- "+path+" (not found)")
}

func TestConfigInit_ThenShow(t *testing.T) {
	c, path := newConfigTestContainer(t)

	output, err := runConfigCommand(t, c, "init", "--profile", "work", "--url", "https://gitlab.example.com", "--token", "glpat-abcdwxyz")
	require.NoError(t, err)
	assert.Equal(t, "Created config file: "+path+"\n", output)

	stat, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), stat.Mode().Perm())

	output, err = runConfigCommand(t, c, "show")
	require.NoError(t, err)
	assert.Contains(t, output, "[Loaded from]\n- "+path+"\n")
	assert.Contains(t, output, "[Effective Config]")
	assert.Contains(t, output, "https://gitlab.example.com")
	assert.Contains(t, output, "wxyz")
	assert.NotContains(t, output, "glpat-abcdwxyz")
}

func TestConfigShow_Profile(t *testing.T) {
	c, path := newConfigTestContainer(t)
	require.NoError(t, os.WriteFile(path, []byte(`
default = "work"

[profiles.work]
url = "https://gitlab.work.example"

[profiles.home]
url = "https://gitlab.com"
`), 0o600))

	output, err := runConfigCommand(t, c, "show", "--profile", "home")
	require.NoError(t, err)
	assert.Contains(t, output, "https://gitlab.com")
	assert.NotContains(t, output, "gitlab.work.example")

	_, err = runConfigCommand(t, c, "show", "--profile", "nope")
	assert.ErrorIs(t, err, domain.ErrProfileNotFound)
}

func TestConfigInit_Errors(t *testing.T) {
	t.Run("requires url", func(t *testing.T) {
		c, _ := newConfigTestContainer(t)
		_, err := runConfigCommand(t, c, "init")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "required flag")
	})

	t.Run("refuses to overwrite", func(t *testing.T) {
		c, path := newConfigTestContainer(t)
		require.NoError(t, os.WriteFile(path, []byte("default = \"x\"\n"), 0o600))

		_, err := runConfigCommand(t, c, "init", "--url", "https://gitlab.com")
		assert.ErrorIs(t, err, domain.ErrConfigExists)
	})
}
