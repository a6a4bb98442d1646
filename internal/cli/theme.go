package cli

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

// theme styles pretty output. Styles are bound to the output writer, so
// anything that is not a terminal gets plain text.
type theme struct {
	Title lipgloss.Style
	OK    lipgloss.Style
	Fail  lipgloss.Style
	Warn  lipgloss.Style
	Faint lipgloss.Style
}

func newTheme(w io.Writer) theme {
	r := lipgloss.NewRenderer(w)
	return theme{
		Title: r.NewStyle().Bold(true),
		OK:    r.NewStyle().Foreground(lipgloss.Color("2")),
		Fail:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("1")),
		Warn:  r.NewStyle().Foreground(lipgloss.Color("3")),
		Faint: r.NewStyle().Faint(true),
	}
}
