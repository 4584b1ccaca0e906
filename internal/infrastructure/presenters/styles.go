package presenters

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Color palette shared by every console section.
const (
	ColorPrimary   = lipgloss.Color("#7C3AED")
	ColorMuted     = lipgloss.Color("#6B7280")
	ColorSuccess   = lipgloss.Color("#10B981")
	ColorError     = lipgloss.Color("#EF4444")
	ColorWarning   = lipgloss.Color("#F59E0B")
	ColorHighlight = lipgloss.Color("#3B82F6")
)

// styles are bound to the renderer of the output writer, so color is only
// emitted when that writer is a terminal.
type styles struct {
	title     lipgloss.Style
	muted     lipgloss.Style
	success   lipgloss.Style
	errorText lipgloss.Style
	warning   lipgloss.Style
	highlight lipgloss.Style
	label     lipgloss.Style
}

func newStyles(out io.Writer) styles {
	renderer := lipgloss.NewRenderer(out)
	return styles{
		title:     renderer.NewStyle().Bold(true).Foreground(ColorPrimary),
		muted:     renderer.NewStyle().Foreground(ColorMuted),
		success:   renderer.NewStyle().Foreground(ColorSuccess),
		errorText: renderer.NewStyle().Bold(true).Foreground(ColorError),
		warning:   renderer.NewStyle().Bold(true).Foreground(ColorWarning),
		highlight: renderer.NewStyle().Foreground(ColorHighlight),
		label:     renderer.NewStyle().Bold(true),
	}
}
