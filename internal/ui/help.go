package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/noborus/ov/oviewer"
)

// HelpRenderer handles help content rendering
type HelpRenderer struct{}

// NewHelpRenderer creates a new help renderer
func NewHelpRenderer() *HelpRenderer {
	return &HelpRenderer{}
}

type helpSection struct {
	title string
	rows  [][2]string
}

var helpSections = []helpSection{
	{"Search", [][2]string{
		{"/", "Focus the search box"},
		{"↑/↓", "Pick a suggestion; up from the first returns to the text"},
		{"enter", "Open the picked suggestion, or list every result for the text"},
		{"ctrl+u", "Clear the search box"},
		{"esc", "Leave the search box"},
		{"click", "Pick a suggestion; click elsewhere to hide them"},
	}},
	{"Browse", [][2]string{
		{"↑/↓, j/k", "Move through the list"},
		{"PgUp/PgDn", "Page up/down"},
		{"g/G", "Go to top/bottom"},
		{"enter", "Open the highlighted entry"},
		{"b", "Back"},
		{"h", "Home (this week's trending)"},
		{"r", "Reload"},
		{"o", "Read overview or biography in the pager"},
	}},
	{"Lists", [][2]string{
		{"1", "Trending"},
		{"2", "Popular"},
		{"3", "Movies"},
		{"4", "TV shows"},
		{"5", "Popular people"},
		{"t", "Switch media type (trending, popular)"},
		{"w", "Switch between today and this week (trending)"},
		{"c", "Next category (movies, TV shows)"},
		{"f", "Next genre (movies, TV shows)"},
	}},
	{"Other", [][2]string{
		{"?", "Toggle this help"},
		{"q", "Quit"},
	}},
}

// RenderHelpContent renders the help information
func (r *HelpRenderer) RenderHelpContent() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99")).
		MarginBottom(1)

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39"))

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("220")).
		Width(12)

	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	var help strings.Builder
	help.WriteString(titleStyle.Render("cinegrip Help"))
	help.WriteString("\n")

	for i, section := range helpSections {
		if i > 0 {
			help.WriteString("\n\n")
		}
		help.WriteString(sectionStyle.Render(section.title))
		for _, row := range section.rows {
			help.WriteString(fmt.Sprintf("\n  %s%s", keyStyle.Render(row[0]), descStyle.Render(row[1])))
		}
	}

	return help.String()
}

// PagerOps shows long text in the ov pager
type PagerOps struct {
	program *tea.Program // reference to Bubble Tea program for terminal management
}

// NewPagerOps creates a new pager instance
func NewPagerOps() *PagerOps {
	return &PagerOps{}
}

// SetProgram sets the program reference for terminal management
func (p *PagerOps) SetProgram(program *tea.Program) {
	p.program = program
}

// Show hands the terminal to ov until the user quits it
func (p *PagerOps) Show(content string) error {
	if p.program == nil {
		return fmt.Errorf("program not set")
	}

	// Release terminal control to run ov
	if err := p.program.ReleaseTerminal(); err != nil {
		return err
	}

	// Ensure terminal is restored even if ov fails
	defer func() {
		// Small delay to ensure ov has fully exited before restoring terminal
		time.Sleep(100 * time.Millisecond)
		_ = p.program.RestoreTerminal()
	}()

	root, err := oviewer.NewRoot(strings.NewReader(content))
	if err != nil {
		return err
	}

	// Configure ov to not write on exit (to avoid messing with our screen)
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}
