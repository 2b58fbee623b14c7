package domain

import (
	"context"
)

// Tracker is the remote issue tracker.
// Implementations translate transport failures into the domain errors
// documented on each method.
type Tracker interface {
	// Authenticate verifies the credentials and returns the authenticated user ID.
	// Returns ErrAuth when the credentials are rejected.
	Authenticate(ctx context.Context) (int, error)

	// GetUser retrieves a user by ID.
	GetUser(ctx context.Context, id int) (*User, error)

	// GetProject retrieves a project by numeric ID or full path.
	// Returns ErrNotFound when the project does not resolve.
	GetProject(ctx context.Context, ref string) (*Project, error)

	// GetMembership retrieves the user's membership on a project.
	// Returns ErrNotMember when the user is not a member.
	GetMembership(ctx context.Context, projectID, userID int) (*Membership, error)

	// ListMilestones lists the project milestones whose iid matches.
	ListMilestones(ctx context.Context, projectID int, iid string) ([]Milestone, error)

	// ListProjectLabels lists the labels defined on the project itself.
	ListProjectLabels(ctx context.Context, projectID int) ([]Label, error)

	// CreateIssue creates an issue in the project.
	CreateIssue(ctx context.Context, projectID int, opts CreateIssueOptions) (*Issue, error)
}

// Console is the operator's line-oriented terminal.
type Console interface {
	// ReadLine prints prompt and returns the next input line without its line ending.
	// Returns ErrInputClosed once input is exhausted and ctx.Err() when ctx is done.
	ReadLine(ctx context.Context, prompt string) (string, error)

	// Print writes text as-is.
	Print(text string)

	// Success writes a line reporting a completed action.
	Success(text string)

	// Warn writes a line reporting a recoverable problem.
	Warn(text string)
}

// ConfigLoader loads configuration from files.
type ConfigLoader interface {
	// Load reads the configuration file.
	// Returns ErrConfigNotFound when no file exists.
	Load() (*Config, error)

	// Path returns the path of the configuration file that Load reads.
	Path() string
}

// ConfigManager manages the configuration file.
type ConfigManager interface {
	// GetConfigInfo returns information about the configuration file.
	GetConfigInfo() ConfigInfo

	// InitConfig writes a new configuration file holding one profile.
	// Returns ErrConfigExists when the file already exists.
	InitConfig(profile Profile) error
}

// ConfigInfo describes a configuration file on disk.
type ConfigInfo struct {
	Path    string
	Content string
	Exists  bool
}

// Logger records diagnostics outside the interactive transcript.
type Logger interface {
	Debug(category, msg string)
	Info(category, msg string)
	Warn(category, msg string)
	Error(category, msg string)
}
