// Package render prints news records with per-field terminal styling
package render

import (
	"io"
	"strings"

	"newsfeed/models"

	"github.com/charmbracelet/lipgloss"
)

// ANSI color indexes, matching the classic 16 color palette
const (
	colorRed    = "1"
	colorYellow = "3"
	colorBlue   = "4"
)

// Printer writes one block of styled lines per record.
// Styling is dropped automatically when w is not a color capable terminal.
type Printer struct {
	w           io.Writer
	Title       lipgloss.Style
	Description lipgloss.Style
	Link        lipgloss.Style
}

func New(w io.Writer) *Printer {
	r := lipgloss.NewRenderer(w)
	base := r.NewStyle().TabWidth(lipgloss.NoTabConversion)

	return &Printer{
		w: w,
		Title: base.
			Bold(true).
			Foreground(lipgloss.Color(colorRed)),
		Description: base.
			Italic(true).
			Foreground(lipgloss.Color(colorYellow)),
		Link: base.
			Italic(true).
			Foreground(lipgloss.Color(colorBlue)),
	}
}

// Render prints the title, description and link followed by a blank line
func (p *Printer) Render(record models.Record) error {
	var b strings.Builder
	b.WriteString(Paint(p.Title, record.Title))
	b.WriteByte('\n')
	b.WriteString(Paint(p.Description, record.Description))
	b.WriteByte('\n')
	b.WriteString(Paint(p.Link, record.Link))
	b.WriteString("\n\n")

	_, err := io.WriteString(p.w, b.String())
	return err
}

// Paint styles every line of text on its own so lipgloss never pads
// multiline values to a common width.
func Paint(style lipgloss.Style, text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = style.Render(line)
	}
	return strings.Join(lines, "\n")
}
