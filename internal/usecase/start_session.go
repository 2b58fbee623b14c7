// Package usecase contains application use cases.
package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/runoshun/glissue/internal/domain"
)

// StartSessionInput contains the parameters for resolving a session.
type StartSessionInput struct {
	ProjectRef   string // Numeric project ID or group/project path (required)
	MilestoneIID string // Project-scoped milestone iid (required)
}

// StartSessionOutput contains the resolved session.
type StartSessionOutput struct {
	Session *domain.Session
}

// StartSession authenticates the operator and resolves the project and milestone
// issues will be created in.
type StartSession struct {
	tracker domain.Tracker
	logger  domain.Logger
}

// NewStartSession creates a new StartSession use case.
func NewStartSession(tracker domain.Tracker, logger domain.Logger) *StartSession {
	return &StartSession{
		tracker: tracker,
		logger:  logger,
	}
}

// Execute resolves the session. Every failure is fatal for the caller.
func (uc *StartSession) Execute(ctx context.Context, in StartSessionInput) (*StartSessionOutput, error) {
	userID, err := uc.tracker.Authenticate(ctx)
	if err != nil {
		return nil, fmt.Errorf("authenticate: %w", err)
	}

	user, err := uc.tracker.GetUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get current user: %w", err)
	}

	project, err := uc.tracker.GetProject(ctx, in.ProjectRef)
	if err != nil {
		return nil, fmt.Errorf("get project: %w", err)
	}

	if _, err := uc.tracker.GetMembership(ctx, project.ID, user.ID); err != nil {
		if errors.Is(err, domain.ErrNotMember) {
			return nil, domain.ErrNotMember
		}
		return nil, fmt.Errorf("check membership: %w", err)
	}

	milestones, err := uc.tracker.ListMilestones(ctx, project.ID, in.MilestoneIID)
	if err != nil {
		return nil, fmt.Errorf("list milestones: %w", err)
	}
	switch len(milestones) {
	case 0:
		return nil, fmt.Errorf("%w: %w: %s", domain.ErrConfiguration, domain.ErrMilestoneNotFound, in.MilestoneIID)
	case 1:
	default:
		return nil, fmt.Errorf("%w: %w: %s", domain.ErrConfiguration, domain.ErrMilestoneAmbiguous, in.MilestoneIID)
	}

	session := &domain.Session{
		User:      user,
		Project:   project,
		Milestone: &milestones[0],
	}
	uc.logger.Info("session", fmt.Sprintf("user %s in project %s, milestone %d (%s)",
		user.Username, project.PathWithNamespace, milestones[0].IID, milestones[0].Title))

	return &StartSessionOutput{Session: session}, nil
}
