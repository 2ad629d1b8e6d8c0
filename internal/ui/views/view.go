package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"cinegrip/internal/domain"
	"cinegrip/internal/ui/services/pointer"
)

// SearchView is the search box and its suggestion panel
type SearchView struct {
	Input       string // rendered text input
	Focused     bool
	Query       string
	Visible     bool
	InFlight    bool
	Err         error
	Suggestions []domain.Suggestion
	Highlight   int // -1 when no row is highlighted
}

// ScreenView is the body of the current route
type ScreenView struct {
	Heading string
	Intro   string // detail block shown above the list
	Loading bool
	Err     error
	Items   []Item
	Cursor  int
	From    int
	To      int
	Empty   string // shown when Items is empty
}

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width    int
	Height   int
	Search   SearchView
	Screen   ScreenView
	Spinner  string
	Status   string
	Help     string
	ShowHelp bool
	HelpText string
}

// Layout records where the interactive parts ended up on screen
type Layout struct {
	Input    pointer.Rect
	Panel    pointer.Rect
	RowsTop  int // y of the first suggestion row
	Rows     int // number of suggestion rows
	BodyTop  int
}

// Bounds is the area owned by the search controller
func (l Layout) Bounds() pointer.Rect {
	return l.Input.Union(l.Panel)
}

// SuggestionAt maps a screen cell to a suggestion index
func (l Layout) SuggestionAt(x, y int) (int, bool) {
	if l.Rows == 0 || !l.Panel.Contains(x, y) {
		return 0, false
	}
	i := y - l.RowsTop
	if i < 0 || i >= l.Rows {
		return 0, false
	}
	return i, true
}

// Renderer handles all view rendering
type Renderer struct {
	styles        *Styles
	itemRender    *ItemRenderer
	sectionRender *SectionRenderer
	popupRender   *PopupRenderer
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:        styles,
		itemRender:    NewItemRenderer(styles),
		sectionRender: NewSectionRenderer(styles),
		popupRender:   NewPopupRenderer(styles),
	}
}

// Styles returns the renderer's styles
func (r *Renderer) Styles() *Styles {
	return r.styles
}

// Render produces the complete view and its layout
func (r *Renderer) Render(state ViewState) (string, Layout) {
	termWidth := state.Width
	if termWidth <= 0 {
		termWidth = 80
	}

	if state.ShowHelp {
		return r.popupRender.RenderPopup(state.HelpText, termWidth, state.Height), Layout{}
	}

	var lines []string
	var layout Layout

	lines = append(lines, r.renderTitle(state, termWidth))

	input := state.Search.Input
	if !state.Search.Focused && state.Search.Query == "" {
		input = r.styles.Dim.Render("Press / to search movies, TV shows and people")
	}
	layout.Input = pointer.Rect{X: 0, Y: len(lines), Width: lipgloss.Width(input), Height: 1}
	lines = append(lines, input)

	panel := r.renderPanel(state.Search, termWidth)
	if len(panel) > 0 {
		width := 0
		for _, row := range panel {
			width = max(width, lipgloss.Width(row))
		}
		layout.RowsTop = len(lines)
		layout.Rows = len(state.Search.Suggestions)
		layout.Panel = pointer.Rect{X: 0, Y: len(lines), Width: width, Height: len(panel)}
		for _, row := range panel {
			lines = append(lines, r.styles.Panel.Render(row))
		}
	}

	lines = append(lines, "")
	layout.BodyTop = len(lines)
	lines = append(lines, r.renderScreen(state.Screen, termWidth))

	content := strings.Join(lines, "\n")

	if state.Help != "" {
		currentLines := strings.Count(content, "\n") + 1
		availableLines := state.Height
		if availableLines <= 0 {
			availableLines = 24
		}
		if padding := availableLines - currentLines - 1; padding > 0 {
			content += strings.Repeat("\n", padding)
		}
		content += "\n" + r.styles.Help.Render(state.Help)
	}

	style := r.styles.Main
	if state.Height > 0 {
		style = style.MaxHeight(state.Height)
	}
	return style.Render(content), layout
}

func (r *Renderer) renderTitle(state ViewState, termWidth int) string {
	logo := r.styles.Title.Render("cinegrip")

	var indicators []string
	if state.Search.InFlight {
		indicators = append(indicators, fmt.Sprintf("%s Searching", state.Spinner))
	}
	if state.Screen.Loading {
		indicators = append(indicators, fmt.Sprintf("%s Loading", state.Spinner))
	}

	right := ""
	if len(indicators) > 0 {
		right = r.styles.StatusLoading.Render(strings.Join(indicators, " | "))
	}
	if state.Status != "" {
		status := r.styles.Status.Render(state.Status)
		if right != "" {
			right = right + "  " + status
		} else {
			right = status
		}
	}
	if right == "" {
		return logo
	}

	padding := termWidth - lipgloss.Width(logo) - lipgloss.Width(right)
	if padding > 0 {
		return logo + strings.Repeat(" ", padding) + right
	}
	return logo + "  " + right
}

func (r *Renderer) renderPanel(s SearchView, width int) []string {
	if !s.Visible {
		return nil
	}

	var rows []string
	for i, sug := range s.Suggestions {
		rows = append(rows, r.itemRender.RenderItem(ItemFromSuggestion(sug), i == s.Highlight, strings.TrimSpace(s.Query), width))
	}
	if len(s.Suggestions) == 0 && s.Err == nil {
		rows = append(rows, r.styles.Dim.Render(fmt.Sprintf("  No results for %q", strings.TrimSpace(s.Query))))
	}
	if s.Err != nil {
		rows = append(rows, r.styles.StatusError.Render("  Search failed, keep typing to retry"))
	}
	return rows
}

func (r *Renderer) renderScreen(s ScreenView, width int) string {
	var b strings.Builder

	if s.Intro != "" {
		b.WriteString(s.Intro)
		b.WriteString("\n\n")
	}

	switch {
	case s.Err != nil:
		b.WriteString(r.styles.StatusError.Render("Error: " + s.Err.Error()))
		return b.String()
	case s.Loading && len(s.Items) == 0 && s.Intro == "":
		b.WriteString(r.styles.Dim.Render("Loading..."))
		return b.String()
	}

	if s.Heading != "" {
		b.WriteString(r.sectionRender.RenderSection(s.Heading, len(s.Items), width))
		b.WriteString("\n")
	}

	if len(s.Items) == 0 {
		if s.Empty != "" {
			b.WriteString(r.styles.Dim.Render(s.Empty))
		}
		return b.String()
	}

	from, to := max(s.From, 0), min(s.To, len(s.Items))
	if to <= from {
		to = len(s.Items)
	}
	var rows []string
	if from > 0 {
		rows = append(rows, r.styles.Dim.Render("  ↑ more"))
	}
	for i := from; i < to; i++ {
		rows = append(rows, r.itemRender.RenderItem(s.Items[i], i == s.Cursor, "", width))
	}
	if to < len(s.Items) {
		rows = append(rows, r.styles.Dim.Render("  ↓ more"))
	}
	b.WriteString(strings.Join(rows, "\n"))
	return b.String()
}
