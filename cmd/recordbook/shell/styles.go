package shell

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color palette
var (
	accent      = lipgloss.Color("#8BC34A") // Lime Green
	destructive = lipgloss.Color("#e53935") // Red
	warning     = lipgloss.Color("#FFC107") // Yellow
	muted       = lipgloss.Color("#7a8699")
)

// separator frames the prompt the same way on every turn.
var separator = strings.Repeat("*", 10)

// Styles holds the console styles, bound to the renderer of one writer so
// output to a pipe or a buffer carries no escape codes.
type Styles struct {
	Title   lipgloss.Style
	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
	Muted   lipgloss.Style
	Key     lipgloss.Style
}

// NewStyles builds styles for out.
func NewStyles(out io.Writer) Styles {
	r := lipgloss.NewRenderer(out)
	return Styles{
		Title:   r.NewStyle().Bold(true).Foreground(accent),
		Success: r.NewStyle().Foreground(accent),
		Error:   r.NewStyle().Foreground(destructive),
		Warning: r.NewStyle().Foreground(warning),
		Muted:   r.NewStyle().Foreground(muted),
		Key:     r.NewStyle().Bold(true).Width(16),
	}
}
