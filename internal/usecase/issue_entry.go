package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/runoshun/glissue/internal/domain"
)

// Prompts and messages shown by the issue entry loop.
const (
	TitlePrompt       = "Title: "
	DescriptionPrompt = "Description: "
	LabelsPrompt      = "List of label ids (comma separated): "
	ConfirmPrompt     = "Create issue [y]/n: "
	RetryPrompt       = "Retry [y]/n: "

	InvalidLabelsMessage = "Please input a valid comma separated list of the above specified label-ids"
	InvalidAnswerMessage = "Please input a valid value"
)

// continuationPrompt aligns continuation lines with the description prompt.
var continuationPrompt = strings.Repeat(" ", len(DescriptionPrompt))

// IssueEntryInput contains the parameters for the entry loop.
type IssueEntryInput struct {
	Session *domain.Session
}

// IssueEntryOutput summarizes a finished entry loop.
type IssueEntryOutput struct {
	Created   int // Issues created
	Discarded int // Drafts rejected at confirmation or after a failed submission
}

// IssueEntry repeatedly collects draft issues from the console, previews
// them and submits the confirmed ones.
type IssueEntry struct {
	tracker     domain.Tracker
	console     domain.Console
	createIssue *CreateIssue
	logger      domain.Logger
}

// NewIssueEntry creates a new IssueEntry use case.
func NewIssueEntry(tracker domain.Tracker, console domain.Console, createIssue *CreateIssue, logger domain.Logger) *IssueEntry {
	return &IssueEntry{
		tracker:     tracker,
		console:     console,
		createIssue: createIssue,
		logger:      logger,
	}
}

// Execute runs the loop until input is closed or ctx is done.
// Closed input ends the loop normally; cancellation returns ctx.Err().
func (uc *IssueEntry) Execute(ctx context.Context, in IssueEntryInput) (*IssueEntryOutput, error) {
	s := in.Session
	if s == nil || s.Project == nil || s.Milestone == nil {
		return nil, errNoSession
	}

	labels, err := uc.tracker.ListProjectLabels(ctx, s.Project.ID)
	if err != nil {
		return nil, fmt.Errorf("list labels: %w", err)
	}
	uc.logger.Debug("entry", fmt.Sprintf("%d project labels available", len(labels)))

	out := &IssueEntryOutput{}
	for {
		err := uc.round(ctx, s, labels, out)
		if errors.Is(err, domain.ErrInputClosed) {
			uc.logger.Info("entry", fmt.Sprintf("input closed: %d created, %d discarded", out.Created, out.Discarded))
			return out, nil
		}
		if err != nil {
			return nil, err
		}
	}
}

// round collects, previews and submits one draft.
func (uc *IssueEntry) round(ctx context.Context, s *domain.Session, labels []domain.Label, out *IssueEntryOutput) error {
	title, err := uc.console.ReadLine(ctx, TitlePrompt)
	if err != nil {
		return err
	}

	description, err := uc.readDescription(ctx)
	if err != nil {
		return err
	}

	selected := []domain.Label{}
	if len(labels) > 0 {
		selected, err = uc.readLabels(ctx, labels)
		if err != nil {
			return err
		}
	}

	draft := domain.DraftIssue{
		Title:       title,
		Description: description,
		Labels:      selected,
	}
	uc.console.Print(domain.RenderPreview(draft) + "\n")

	ok, err := uc.askYesNo(ctx, ConfirmPrompt)
	if err != nil {
		return err
	}
	if !ok {
		out.Discarded++
		return nil
	}

	for {
		res, err := uc.createIssue.Execute(ctx, CreateIssueInput{Session: s, Draft: draft})
		if err == nil {
			uc.console.Success(createdMessage(res.Issue))
			uc.console.Print("\n")
			out.Created++
			return nil
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		uc.console.Warn("Failed to create issue: " + err.Error())
		retry, err := uc.askYesNo(ctx, RetryPrompt)
		if err != nil {
			return err
		}
		if !retry {
			out.Discarded++
			return nil
		}
	}
}

// readDescription reads the description, following continuation lines.
func (uc *IssueEntry) readDescription(ctx context.Context) (string, error) {
	line, err := uc.console.ReadLine(ctx, DescriptionPrompt)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	for {
		line = strings.TrimSpace(line)
		// Continuation lines already follow text, so a lone marker there continues too.
		if !domain.ContinueDescription(sb.String() + line) {
			sb.WriteString(line)
			return sb.String(), nil
		}
		sb.WriteString(domain.StripContinuation(line))
		sb.WriteString("\n")

		line, err = uc.console.ReadLine(ctx, continuationPrompt)
		if err != nil {
			return "", err
		}
	}
}

// readLabels prints the label menu once and prompts until the selection is valid.
func (uc *IssueEntry) readLabels(ctx context.Context, labels []domain.Label) ([]domain.Label, error) {
	uc.console.Print("Labels: " + domain.FormatLabelChoices(labels) + "\n")
	for {
		input, err := uc.console.ReadLine(ctx, LabelsPrompt)
		if err != nil {
			return nil, err
		}
		selected, err := domain.ParseLabelSelection(input, labels)
		if err == nil {
			return selected, nil
		}
		uc.logger.Debug("entry", err.Error())
		uc.console.Print(InvalidLabelsMessage + "\n")
	}
}

// askYesNo prompts until the answer is yes or no.
func (uc *IssueEntry) askYesNo(ctx context.Context, prompt string) (bool, error) {
	for {
		answer, err := uc.console.ReadLine(ctx, prompt)
		if err != nil {
			return false, err
		}
		ok, err := domain.ParseYesNo(answer)
		if err == nil {
			return ok, nil
		}
		uc.console.Print(InvalidAnswerMessage + "\n")
	}
}

func createdMessage(issue *domain.Issue) string {
	msg := fmt.Sprintf("Created issue #%d successfully", issue.IID)
	if issue.WebURL != "" {
		msg += ": " + issue.WebURL
	}
	return msg
}
