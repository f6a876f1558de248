package cmd

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Colors
var (
	colorPrimary = lipgloss.Color("#7C3AED")
	colorSuccess = lipgloss.Color("#10B981")
	colorAccent  = lipgloss.Color("#F59E0B")
	colorError   = lipgloss.Color("#EF4444")
	colorMuted   = lipgloss.Color("#6B7280")
)

// styles are bound to one output so color is dropped when it is not a
// terminal.
type styles struct {
	title  lipgloss.Style
	eln    lipgloss.Style
	dir    lipgloss.Style
	link   lipgloss.Style
	ok     lipgloss.Style
	muted  lipgloss.Style
	prompt lipgloss.Style
	err    lipgloss.Style
}

func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)
	return styles{
		title: r.NewStyle().
			Bold(true).
			Foreground(colorPrimary),
		eln: r.NewStyle().
			Foreground(colorAccent).
			Width(4).
			Align(lipgloss.Right),
		dir: r.NewStyle().
			Bold(true).
			Foreground(colorPrimary),
		link:   r.NewStyle().Foreground(colorSuccess).Italic(true),
		ok:     r.NewStyle().Foreground(colorSuccess),
		muted:  r.NewStyle().Foreground(colorMuted),
		prompt: r.NewStyle().Bold(true),
		err:    r.NewStyle().Foreground(colorError),
	}
}
