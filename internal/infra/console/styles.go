package console

import "github.com/charmbracelet/lipgloss"

// Colors defines the color palette for console reports.
var Colors = struct {
	Success lipgloss.Color
	Warning lipgloss.Color
}{
	Success: lipgloss.Color("#00B894"), // Green
	Warning: lipgloss.Color("#FDCB6E"), // Yellow
}

// Styles holds the styles used by the console.
type Styles struct {
	Success lipgloss.Style
	Warn    lipgloss.Style
}

// NewStyles creates styles bound to the renderer so color is only
// emitted when the renderer's output supports it.
func NewStyles(r *lipgloss.Renderer) Styles {
	return Styles{
		Success: r.NewStyle().Foreground(Colors.Success).Bold(true),
		Warn:    r.NewStyle().Foreground(Colors.Warning),
	}
}
