package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/runoshun/glissue/internal/domain"
)

// errNoSession is returned when a use case runs without a resolved session.
var errNoSession = errors.New("session not started")

// CreateIssueInput contains the parameters for submitting a draft.
type CreateIssueInput struct {
	Session *domain.Session
	Draft   domain.DraftIssue
}

// CreateIssueOutput contains the created issue.
type CreateIssueOutput struct {
	Issue *domain.Issue
}

// CreateIssue submits a draft issue to the session's project and milestone.
type CreateIssue struct {
	tracker domain.Tracker
	logger  domain.Logger
}

// NewCreateIssue creates a new CreateIssue use case.
func NewCreateIssue(tracker domain.Tracker, logger domain.Logger) *CreateIssue {
	return &CreateIssue{
		tracker: tracker,
		logger:  logger,
	}
}

// Execute creates the issue. Errors are returned as reported by the tracker.
func (uc *CreateIssue) Execute(ctx context.Context, in CreateIssueInput) (*CreateIssueOutput, error) {
	s := in.Session
	if s == nil || s.Project == nil || s.Milestone == nil {
		return nil, errNoSession
	}

	issue, err := uc.tracker.CreateIssue(ctx, s.Project.ID, domain.CreateIssueOptions{
		Title:       in.Draft.Title,
		Description: in.Draft.Description,
		Labels:      in.Draft.LabelNames(),
		MilestoneID: s.Milestone.ID,
	})
	if err != nil {
		uc.logger.Warn("issue", fmt.Sprintf("create %q failed: %v", in.Draft.Title, err))
		return nil, err
	}

	uc.logger.Info("issue", fmt.Sprintf("created #%d %q", issue.IID, issue.Title))
	return &CreateIssueOutput{Issue: issue}, nil
}
