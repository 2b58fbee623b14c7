package domain

import "strings"

// Issue represents an issue created on the tracker.
// Fields are ordered to minimize memory padding.
type Issue struct {
	Title  string
	WebURL string
	ID     int
	IID    int
}

// DraftIssue is the unsaved issue collected from one prompt round.
// It is discarded after submission or rejection.
// Fields are ordered to minimize memory padding.
type DraftIssue struct {
	Title       string
	Description string
	Labels      []Label
}

// LabelNames returns the names of the selected labels in selection order.
// The result is never nil so an empty selection is sent as an empty list.
func (d DraftIssue) LabelNames() []string {
	names := make([]string, 0, len(d.Labels))
	for _, l := range d.Labels {
		names = append(names, l.Name)
	}
	return names
}

// CreateIssueOptions holds the fields sent to the tracker when creating an issue.
// Fields are ordered to minimize memory padding.
type CreateIssueOptions struct {
	Title       string
	Description string
	Labels      []string
	MilestoneID int
}

// DescriptionContinuation is the marker that continues a description onto the next line.
const DescriptionContinuation = '\\'

// ContinueDescription reports whether the description text read so far,
// ending with the latest trimmed line, asks for another line.
// A description consisting of a lone marker is taken literally.
func ContinueDescription(text string) bool {
	return len(text) > 1 && text[len(text)-1] == DescriptionContinuation
}

// StripContinuation removes one trailing continuation marker from a line.
// The marker is dropped, not kept in the description text.
func StripContinuation(line string) string {
	if n := len(line); n > 0 && line[n-1] == DescriptionContinuation {
		return line[:n-1]
	}
	return line
}

// ParseYesNo interprets a yes/no answer. Empty input means yes.
// Any answer other than y or n (case-insensitive) returns ErrInvalidAnswer.
func ParseYesNo(answer string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "", "y":
		return true, nil
	case "n":
		return false, nil
	default:
		return false, ErrInvalidAnswer
	}
}
