// Package app provides the dependency injection container for the application.
package app

import (
	"fmt"
	"path/filepath"

	"github.com/runoshun/glissue/internal/domain"
	"github.com/runoshun/glissue/internal/infra/config"
	"github.com/runoshun/glissue/internal/infra/console"
	"github.com/runoshun/glissue/internal/infra/gitlab"
	"github.com/runoshun/glissue/internal/infra/logging"
	"github.com/runoshun/glissue/internal/usecase"
)

// TrackerFactory builds a tracker bound to one profile.
type TrackerFactory func(p domain.Profile, logger domain.Logger) (domain.Tracker, error)

// Config holds the application configuration paths.
type Config struct {
	ConfigDir  string // Directory holding the config file and logs
	ConfigPath string // Path to the config file
}

// Container provides dependency injection for the application.
// It holds all port implementations and provides factory methods for use cases.
type Container struct {
	// Ports (interfaces bound to implementations)
	ConfigLoader  domain.ConfigLoader
	ConfigManager domain.ConfigManager
	Console       domain.Console
	Logger        domain.Logger

	// NewTracker is resolved lazily because the profile comes from flags.
	NewTracker TrackerFactory

	closer func() error

	// Configuration
	Config Config
}

// New creates a new Container bound to the process stdio and the global config file.
func New() *Container {
	loader := config.NewLoader()

	// Config errors are reported by the commands that need the config.
	level := "info"
	if cfg, err := loader.Load(); err == nil {
		level = cfg.Log.Level
	}
	logger := logging.New(loader.Dir(), logging.ParseLevel(level))

	return &Container{
		ConfigLoader:  loader,
		ConfigManager: config.NewManager(loader),
		Console:       console.NewStdio(),
		Logger:        logger,
		NewTracker:    newGitLabTracker,
		closer:        logger.Close,
		Config: Config{
			ConfigDir:  loader.Dir(),
			ConfigPath: loader.Path(),
		},
	}
}

// NewWithDeps creates a new Container with custom dependencies for testing.
func NewWithDeps(loader domain.ConfigLoader, manager domain.ConfigManager, con domain.Console, logger domain.Logger, newTracker TrackerFactory) *Container {
	var configDir string
	if path := loader.Path(); path != "" {
		configDir = filepath.Dir(path)
	}
	return &Container{
		ConfigLoader:  loader,
		ConfigManager: manager,
		Console:       con,
		Logger:        logger,
		NewTracker:    newTracker,
		Config: Config{
			ConfigDir:  configDir,
			ConfigPath: loader.Path(),
		},
	}
}

func newGitLabTracker(p domain.Profile, logger domain.Logger) (domain.Tracker, error) {
	client, err := gitlab.NewClient(p, logger)
	if err != nil {
		return nil, err
	}
	return client, nil
}

// Close releases resources held by the container.
func (c *Container) Close() error {
	if c.closer == nil {
		return nil
	}
	return c.closer()
}

// Tracker builds the tracker for the named profile, or the default profile
// when name is empty. A missing config or unresolvable profile is an
// authentication failure since no credentials can be presented.
func (c *Container) Tracker(profileName string) (domain.Tracker, error) {
	cfg, err := c.ConfigLoader.Load()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrAuth, err)
	}
	p, err := cfg.ResolveProfile(profileName)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrAuth, err)
	}
	c.Logger.Debug("app", fmt.Sprintf("using profile %s (%s)", p.Name, p.URL))
	return c.NewTracker(p, c.Logger)
}

// UseCase factory methods

// StartSessionUseCase returns a new StartSession use case.
func (c *Container) StartSessionUseCase(tracker domain.Tracker) *usecase.StartSession {
	return usecase.NewStartSession(tracker, c.Logger)
}

// CreateIssueUseCase returns a new CreateIssue use case.
func (c *Container) CreateIssueUseCase(tracker domain.Tracker) *usecase.CreateIssue {
	return usecase.NewCreateIssue(tracker, c.Logger)
}

// IssueEntryUseCase returns a new IssueEntry use case.
func (c *Container) IssueEntryUseCase(tracker domain.Tracker) *usecase.IssueEntry {
	return usecase.NewIssueEntry(tracker, c.Console, c.CreateIssueUseCase(tracker), c.Logger)
}

// ShowConfigUseCase returns a new ShowConfig use case.
func (c *Container) ShowConfigUseCase() *usecase.ShowConfig {
	return usecase.NewShowConfig(c.ConfigManager, c.ConfigLoader)
}

// InitConfigUseCase returns a new InitConfig use case.
func (c *Container) InitConfigUseCase() *usecase.InitConfig {
	return usecase.NewInitConfig(c.ConfigManager)
}

// ShowLogsUseCase returns a new ShowLogs use case.
func (c *Container) ShowLogsUseCase() *usecase.ShowLogs {
	return usecase.NewShowLogs(c.Config.ConfigDir)
}
