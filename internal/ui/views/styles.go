package views

import (
	"github.com/charmbracelet/lipgloss"

	"cinegrip/internal/domain"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title         lipgloss.Style
	Dim           lipgloss.Style
	Status        lipgloss.Style
	Help          lipgloss.Style
	Main          lipgloss.Style
	Section       lipgloss.Style
	Label         lipgloss.Style
	Tagline       lipgloss.Style
	Prompt        lipgloss.Style
	Panel         lipgloss.Style
	Highlight     lipgloss.Style
	HighlightBg   lipgloss.Style
	Rating        lipgloss.Style
	StatusError   lipgloss.Style
	StatusLoading lipgloss.Style
	PopupBox      lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")),
		Dim:     lipgloss.NewStyle().Faint(true),
		Status:  lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Help:    lipgloss.NewStyle().Faint(true),
		Main:    lipgloss.NewStyle(),
		Section: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		Label:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Tagline: lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("252")),
		Prompt:  lipgloss.NewStyle().Foreground(lipgloss.Color("99")).Bold(true),
		Panel:   lipgloss.NewStyle().Background(lipgloss.Color("235")),
		Highlight:     lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		HighlightBg:   lipgloss.NewStyle().Background(lipgloss.Color("238")),
		Rating:        lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
		StatusError:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		StatusLoading: lipgloss.NewStyle().Foreground(lipgloss.Color("241")), // gray
		PopupBox: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			Padding(1, 2).
			BorderForeground(lipgloss.Color("241")),
	}
}

// GetKindColor returns the color used for the kind badge of an entry
func GetKindColor(kind domain.Kind) string {
	switch kind {
	case domain.KindMovie:
		return "78" // green
	case domain.KindTV:
		return "33" // blue
	case domain.KindPerson:
		return "214" // yellow
	default:
		return "241"
	}
}
