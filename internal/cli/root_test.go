package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/runoshun/glissue/internal/app"
	"github.com/runoshun/glissue/internal/domain"
	"github.com/runoshun/glissue/internal/testutil"
	"github.com/runoshun/glissue/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type rootFixture struct {
	container *app.Container
	tracker   *testutil.MockTracker
	console   *testutil.MockConsole
	loader    *testutil.MockConfigLoader
	profile   *domain.Profile
}

func newRootFixture(inputs ...string) *rootFixture {
	f := &rootFixture{
		tracker: testutil.NewMockTracker(),
		console: testutil.NewMockConsole(inputs...),
		loader:  testutil.NewMockConfigLoader(),
	}
	f.loader.Config.Default = "work"
	f.loader.Config.Profiles["work"] = domain.NewProfile("work", "https://gitlab.example.com")
	f.container = app.NewWithDeps(f.loader, testutil.NewMockConfigManager(), f.console, &testutil.MockLogger{},
		func(p domain.Profile, _ domain.Logger) (domain.Tracker, error) {
			f.profile = &p
			return f.tracker, nil
		})
	return f
}

func (f *rootFixture) execute(args ...string) (string, error) {
	cmd := NewRootCommand(f.container, "test")
	var stderr bytes.Buffer
	cmd.SetErr(&stderr)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return stderr.String(), err
}

func TestRootCommand_CreatesIssues(t *testing.T) {
	f := newRootFixture("Fix bug", "", "")

	_, err := f.execute("-p", "42", "-m", "3")
	require.NoError(t, err)

	assert.Equal(t, "work", f.profile.Name)
	require.Len(t, f.tracker.Created, 1)
	assert.Equal(t, "Fix bug", f.tracker.Created[0].Title)

	output := f.console.Output.String()
	assert.Contains(t, output, "Creating issues in project 'demo' with milestone '3' for user Alice\n"+usecase.TitlePrompt)
	assert.Contains(t, output, "Created issue #1 successfully")
}

func TestRootCommand_SelectsProfile(t *testing.T) {
	f := newRootFixture()
	f.loader.Config.Profiles["home"] = domain.NewProfile("home", "https://gitlab.com")

	_, err := f.execute("--config", "home", "--project", "group/demo", "--milestone", "3")
	require.NoError(t, err)
	assert.Equal(t, "home", f.profile.Name)
}

func TestRootCommand_RequiresFlags(t *testing.T) {
	for _, args := range [][]string{{}, {"-p", "42"}, {"-m", "3"}} {
		f := newRootFixture()
		_, err := f.execute(args...)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "required flag")
		assert.Empty(t, f.tracker.Calls)
	}
}

func TestRootCommand_BootstrapFailures(t *testing.T) {
	t.Run("not a member", func(t *testing.T) {
		f := newRootFixture("ignored")
		f.tracker.MembershipErr = domain.ErrNotMember

		_, err := f.execute("-p", "42", "-m", "3")
		assert.ErrorIs(t, err, domain.ErrNotMember)
		assert.Empty(t, f.console.Prompts)
	})

	t.Run("wrong milestone", func(t *testing.T) {
		f := newRootFixture("ignored")
		f.tracker.Milestones = nil

		_, err := f.execute("-p", "42", "-m", "99")
		assert.ErrorIs(t, err, domain.ErrConfiguration)
		assert.Empty(t, f.console.Prompts)
	})

	t.Run("two milestones", func(t *testing.T) {
		f := newRootFixture("ignored")
		f.tracker.Milestones = append(f.tracker.Milestones, domain.Milestone{ID: 104, IID: 3, Title: "v1.0-dup"})

		_, err := f.execute("-p", "42", "-m", "3")
		assert.ErrorIs(t, err, domain.ErrConfiguration)
		assert.ErrorIs(t, err, domain.ErrMilestoneAmbiguous)
		assert.Empty(t, f.console.Prompts)
	})

	t.Run("missing config", func(t *testing.T) {
		f := newRootFixture()
		f.loader.LoadErr = domain.ErrConfigNotFound

		_, err := f.execute("-p", "42", "-m", "3")
		assert.ErrorIs(t, err, domain.ErrAuth)
	})
}

func TestRootCommand_PrintsConfigWarnings(t *testing.T) {
	f := newRootFixture()
	f.loader.Config.Warnings = []string{"unknown key: colour"}

	stderr, err := f.execute("-p", "42", "-m", "3")
	require.NoError(t, err)
	assert.Equal(t, "Warning: unknown key: colour\n", stderr)
}

func TestRootCommand_Interrupted(t *testing.T) {
	f := newRootFixture("T")
	f.console.ExhaustedErr = context.Canceled

	_, err := f.execute("-p", "42", "-m", "3")
	assert.ErrorIs(t, err, context.Canceled)
}
