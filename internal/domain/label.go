package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Label is a project-scoped label offered for selection.
// Index is the position in the fetched list and is what the operator types.
// Fields are ordered to minimize memory padding.
type Label struct {
	Name  string
	ID    int
	Index int
}

// IndexLabels assigns list positions to labels in their fetched order.
func IndexLabels(labels []Label) []Label {
	indexed := make([]Label, len(labels))
	for i, l := range labels {
		l.Index = i
		indexed[i] = l
	}
	return indexed
}

// FormatLabelChoices renders the label menu as "0: bug, 1: feature".
func FormatLabelChoices(labels []Label) string {
	parts := make([]string, 0, len(labels))
	for i, l := range labels {
		parts = append(parts, fmt.Sprintf("%d: %s", i, l.Name))
	}
	return strings.Join(parts, ", ")
}

// ParseLabelSelection resolves a comma-separated list of label indices.
// Empty input selects nothing. The selection keeps input order.
// A token that is not an integer or is out of range rejects the whole input.
func ParseLabelSelection(input string, labels []Label) ([]Label, error) {
	if input == "" {
		return []Label{}, nil
	}

	tokens := strings.Split(input, ",")
	selected := make([]Label, 0, len(tokens))
	for _, token := range tokens {
		idx, err := strconv.Atoi(strings.TrimSpace(token))
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not a label id", ErrInvalidSelection, token)
		}
		if idx < 0 || idx >= len(labels) {
			return nil, fmt.Errorf("%w: %d is out of range", ErrInvalidSelection, idx)
		}
		selected = append(selected, labels[idx])
	}
	return selected, nil
}
