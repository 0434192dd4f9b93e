// Package report renders formatter output for terminals: diagnostics,
// unified diffs and heading outlines.
package report

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Styles holds the lipgloss styles used by the renderers. Colour is only
// emitted when the renderer's output is a terminal.
type Styles struct {
	Path    lipgloss.Style
	LineNo  lipgloss.Style
	Message lipgloss.Style
	Excerpt lipgloss.Style
	Summary lipgloss.Style
	Heading lipgloss.Style
	Muted   lipgloss.Style

	DiffAdd    lipgloss.Style
	DiffRemove lipgloss.Style
	DiffHunk   lipgloss.Style
	DiffHeader lipgloss.Style
}

// NewStyles creates styles bound to a renderer for w.
func NewStyles(w io.Writer) *Styles {
	r := lipgloss.NewRenderer(w)
	return &Styles{
		Path:    r.NewStyle().Bold(true),
		LineNo:  r.NewStyle().Foreground(lipgloss.Color("3")),
		Message: r.NewStyle().Foreground(lipgloss.Color("1")),
		Excerpt: r.NewStyle().Foreground(lipgloss.Color("8")),
		Summary: r.NewStyle().Bold(true),
		Heading: r.NewStyle().Bold(true).Foreground(lipgloss.Color("4")),
		Muted:   r.NewStyle().Foreground(lipgloss.Color("8")),

		DiffAdd:    r.NewStyle().Foreground(lipgloss.Color("2")),
		DiffRemove: r.NewStyle().Foreground(lipgloss.Color("1")),
		DiffHunk:   r.NewStyle().Foreground(lipgloss.Color("6")),
		DiffHeader: r.NewStyle().Bold(true),
	}
}
