package domain

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// MinPreviewWidth is the narrowest a preview box is rendered.
const MinPreviewWidth = 40

// PreviewWidth returns the width of the preview box for a draft:
// the widest of MinPreviewWidth, the title and every description line.
func PreviewWidth(title, description string) int {
	width := max(MinPreviewWidth, runewidth.StringWidth(title))
	for _, line := range descriptionLines(description) {
		width = max(width, runewidth.StringWidth(line))
	}
	return width
}

// RenderPreview renders the draft as a centered title, the description
// between two dash separators, and the wrapped label names.
// The description line is omitted when the description is empty.
func RenderPreview(d DraftIssue) string {
	width := PreviewWidth(d.Title, d.Description)
	separator := strings.Repeat("-", width)

	var sb strings.Builder
	sb.WriteString(strings.Repeat(" ", (width-runewidth.StringWidth(d.Title))/2))
	sb.WriteString(d.Title)
	sb.WriteString("\n")
	sb.WriteString(separator)
	sb.WriteString("\n")
	if d.Description != "" {
		sb.WriteString(d.Description)
		sb.WriteString("\n")
	}
	sb.WriteString(separator)
	sb.WriteString("\n")
	if len(d.Labels) > 0 {
		sb.WriteString(WrapLabelNames(d.LabelNames(), width))
	}
	return sb.String()
}

// WrapLabelNames joins names with ", " and fills lines greedily up to width.
// A name is moved to a new line when it, together with its trailing comma,
// would push the current line past width. A name that does not fit on an
// empty line is emitted unbroken.
func WrapLabelNames(names []string, width int) string {
	var lines []string
	var current string
	for i, name := range names {
		token := name
		if i < len(names)-1 {
			token += ","
		}
		switch {
		case current == "":
			current = token
		case runewidth.StringWidth(current)+1+runewidth.StringWidth(token) > width:
			lines = append(lines, current)
			current = token
		default:
			current += " " + token
		}
	}
	if current != "" {
		lines = append(lines, current)
	}
	return strings.Join(lines, "\n")
}

// descriptionLines splits a description the way the preview measures it.
func descriptionLines(description string) []string {
	if description == "" {
		return nil
	}
	return strings.Split(strings.ReplaceAll(description, "\r\n", "\n"), "\n")
}
