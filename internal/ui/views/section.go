package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// SectionRenderer handles rendering of section headers
type SectionRenderer struct {
	styles *Styles
}

// NewSectionRenderer creates a new section renderer
func NewSectionRenderer(styles *Styles) *SectionRenderer {
	return &SectionRenderer{
		styles: styles,
	}
}

// RenderSection renders a header line. count is shown when non-negative.
func (s *SectionRenderer) RenderSection(title string, count int, width int) string {
	line := s.styles.Section.Render(title)
	if count >= 0 {
		line += s.styles.Dim.Render(fmt.Sprintf(" (%d)", count))
	}
	if width > 0 {
		if rest := width - lipgloss.Width(line) - 1; rest > 0 {
			line += " " + s.styles.Dim.Render(strings.Repeat("─", rest))
		}
	}
	return line
}
