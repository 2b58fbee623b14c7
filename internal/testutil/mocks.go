// Package testutil provides shared test utilities and mock implementations.
package testutil

import (
	"context"
	"fmt"
	"strings"

	"github.com/runoshun/glissue/internal/domain"
)

// MockTracker is a test double for domain.Tracker.
// Fields are ordered to minimize memory padding.
type MockTracker struct {
	User          *domain.User
	Project       *domain.Project
	AuthErr       error
	GetUserErr    error
	GetProjectErr error
	MembershipErr error
	MilestonesErr error
	LabelsErr     error
	Milestones    []domain.Milestone
	Labels        []domain.Label
	// CreateErrs is consumed one entry per CreateIssue call; nil entries succeed.
	CreateErrs []error
	Created    []domain.CreateIssueOptions
	Calls      []string
	NextIID    int
}

// NewMockTracker creates a MockTracker for a member user with one matching milestone.
func NewMockTracker() *MockTracker {
	return &MockTracker{
		User:       &domain.User{ID: 7, Username: "alice", Name: "Alice"},
		Project:    &domain.Project{ID: 42, Name: "demo", PathWithNamespace: "group/demo"},
		Milestones: []domain.Milestone{{ID: 103, IID: 3, Title: "v1.0", State: "active"}},
		NextIID:    1,
	}
}

// Ensure MockTracker implements domain.Tracker interface.
var _ domain.Tracker = (*MockTracker)(nil)

// Authenticate returns the configured user ID or error.
func (m *MockTracker) Authenticate(_ context.Context) (int, error) {
	m.Calls = append(m.Calls, "Authenticate")
	if m.AuthErr != nil {
		return 0, m.AuthErr
	}
	return m.User.ID, nil
}

// GetUser returns the configured user.
func (m *MockTracker) GetUser(_ context.Context, _ int) (*domain.User, error) {
	m.Calls = append(m.Calls, "GetUser")
	if m.GetUserErr != nil {
		return nil, m.GetUserErr
	}
	return m.User, nil
}

// GetProject returns the configured project.
func (m *MockTracker) GetProject(_ context.Context, _ string) (*domain.Project, error) {
	m.Calls = append(m.Calls, "GetProject")
	if m.GetProjectErr != nil {
		return nil, m.GetProjectErr
	}
	return m.Project, nil
}

// GetMembership returns a developer membership or the configured error.
func (m *MockTracker) GetMembership(_ context.Context, _, userID int) (*domain.Membership, error) {
	m.Calls = append(m.Calls, "GetMembership")
	if m.MembershipErr != nil {
		return nil, m.MembershipErr
	}
	return &domain.Membership{UserID: userID, AccessLevel: 30}, nil
}

// ListMilestones returns the configured milestones.
func (m *MockTracker) ListMilestones(_ context.Context, _ int, _ string) ([]domain.Milestone, error) {
	m.Calls = append(m.Calls, "ListMilestones")
	if m.MilestonesErr != nil {
		return nil, m.MilestonesErr
	}
	return m.Milestones, nil
}

// ListProjectLabels returns the configured labels.
func (m *MockTracker) ListProjectLabels(_ context.Context, _ int) ([]domain.Label, error) {
	m.Calls = append(m.Calls, "ListProjectLabels")
	if m.LabelsErr != nil {
		return nil, m.LabelsErr
	}
	return m.Labels, nil
}

// CreateIssue records the request and returns the next queued error or a new issue.
func (m *MockTracker) CreateIssue(_ context.Context, projectID int, opts domain.CreateIssueOptions) (*domain.Issue, error) {
	m.Calls = append(m.Calls, "CreateIssue")
	if len(m.CreateErrs) > 0 {
		err := m.CreateErrs[0]
		m.CreateErrs = m.CreateErrs[1:]
		if err != nil {
			return nil, err
		}
	}
	m.Created = append(m.Created, opts)
	iid := m.NextIID
	m.NextIID++
	return &domain.Issue{
		ID:     1000 + iid,
		IID:    iid,
		Title:  opts.Title,
		WebURL: fmt.Sprintf("https://gitlab.example/projects/%d/issues/%d", projectID, iid),
	}, nil
}

// MockConsole is a test double for domain.Console.
// It answers prompts from Inputs in order and records the transcript.
type MockConsole struct {
	// ExhaustedErr is returned once Inputs run out (default domain.ErrInputClosed).
	ExhaustedErr error
	Inputs       []string
	Prompts      []string
	Output       strings.Builder
}

// NewMockConsole creates a MockConsole answering with the given lines.
func NewMockConsole(inputs ...string) *MockConsole {
	return &MockConsole{Inputs: inputs}
}

// Ensure MockConsole implements domain.Console interface.
var _ domain.Console = (*MockConsole)(nil)

// ReadLine records the prompt and returns the next input line.
func (m *MockConsole) ReadLine(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	m.Prompts = append(m.Prompts, prompt)
	m.Output.WriteString(prompt)
	if len(m.Inputs) == 0 {
		if m.ExhaustedErr != nil {
			return "", m.ExhaustedErr
		}
		return "", domain.ErrInputClosed
	}
	line := m.Inputs[0]
	m.Inputs = m.Inputs[1:]
	return line, nil
}

// Print records text.
func (m *MockConsole) Print(text string) {
	m.Output.WriteString(text)
}

// Success records text as a line.
func (m *MockConsole) Success(text string) {
	m.Output.WriteString(text + "\n")
}

// Warn records text as a line.
func (m *MockConsole) Warn(text string) {
	m.Output.WriteString(text + "\n")
}

// MockConfigLoader is a test double for domain.ConfigLoader.
type MockConfigLoader struct {
	Config   *domain.Config
	LoadErr  error
	FilePath string
}

// NewMockConfigLoader creates a new MockConfigLoader with default config.
func NewMockConfigLoader() *MockConfigLoader {
	return &MockConfigLoader{
		Config:   domain.NewDefaultConfig(),
		FilePath: "/home/test/.config/glissue/config.toml",
	}
}

// Ensure MockConfigLoader implements domain.ConfigLoader interface.
var _ domain.ConfigLoader = (*MockConfigLoader)(nil)

// Load returns the configured config or error.
func (m *MockConfigLoader) Load() (*domain.Config, error) {
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	return m.Config, nil
}

// Path returns the configured path.
func (m *MockConfigLoader) Path() string {
	return m.FilePath
}

// MockConfigManager is a test double for domain.ConfigManager.
// Fields are ordered to minimize memory padding.
type MockConfigManager struct {
	InitErr    error
	Written    *domain.Profile
	ConfigInfo domain.ConfigInfo
	InitCalled bool
}

// NewMockConfigManager creates a new MockConfigManager.
func NewMockConfigManager() *MockConfigManager {
	return &MockConfigManager{
		ConfigInfo: domain.ConfigInfo{
			Path:   "/home/test/.config/glissue/config.toml",
			Exists: false,
		},
	}
}

// Ensure MockConfigManager implements domain.ConfigManager interface.
var _ domain.ConfigManager = (*MockConfigManager)(nil)

// GetConfigInfo returns the configured config info.
func (m *MockConfigManager) GetConfigInfo() domain.ConfigInfo {
	return m.ConfigInfo
}

// InitConfig records the call and returns configured error.
func (m *MockConfigManager) InitConfig(profile domain.Profile) error {
	m.InitCalled = true
	if m.InitErr != nil {
		return m.InitErr
	}
	m.Written = &profile
	return nil
}

// MockLogger is a test double for domain.Logger that records entries.
type MockLogger struct {
	Entries []string
}

// Ensure MockLogger implements domain.Logger interface.
var _ domain.Logger = (*MockLogger)(nil)

func (m *MockLogger) record(level, category, msg string) {
	m.Entries = append(m.Entries, fmt.Sprintf("[%s] [%s] %s", level, category, msg))
}

// Debug records a debug entry.
func (m *MockLogger) Debug(category, msg string) { m.record("DEBUG", category, msg) }

// Info records an info entry.
func (m *MockLogger) Info(category, msg string) { m.record("INFO", category, msg) }

// Warn records a warn entry.
func (m *MockLogger) Warn(category, msg string) { m.record("WARN", category, msg) }

// Error records an error entry.
func (m *MockLogger) Error(category, msg string) { m.record("ERROR", category, msg) }
