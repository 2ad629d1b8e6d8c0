package views

import (
	"github.com/charmbracelet/lipgloss"
)

// PopupRenderer handles popup/modal rendering
type PopupRenderer struct {
	styles *Styles
}

// NewPopupRenderer creates a new popup renderer
func NewPopupRenderer(styles *Styles) *PopupRenderer {
	return &PopupRenderer{
		styles: styles,
	}
}

// RenderPopup centers content in a box over a width x height area
func (pr *PopupRenderer) RenderPopup(content string, width, height int) string {
	box := pr.styles.PopupBox
	if width > 8 && lipgloss.Width(content) > width-8 {
		box = box.Width(width - 8)
	}
	styled := box.Render(content)
	if width <= 0 || height <= 0 {
		return styled
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, styled)
}
