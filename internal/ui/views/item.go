package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"cinegrip/internal/domain"
)

// Item is one selectable row: a suggestion, a search result, a trending
// entry or a credit
type Item struct {
	Kind   domain.Kind
	Title  string
	Year   string
	Label  string  // genre, department or role
	Rating float64 // 0 when unknown
}

// ItemFromSuggestion converts a suggestion to a row
func ItemFromSuggestion(s domain.Suggestion) Item {
	return Item{Kind: s.Kind, Title: s.DisplayName, Year: s.Year(), Label: s.ClassificationLabel}
}

// ItemFromTrending converts a trending entry to a row
func ItemFromTrending(t domain.TrendingItem) Item {
	year := ""
	if len(t.Date) >= 4 {
		year = t.Date[:4]
	}
	return Item{Kind: t.Kind, Title: t.Title, Year: year, Rating: t.Rating}
}

// ItemFromWork converts a similar title or credit to a row
func ItemFromWork(w domain.WorkRef) Item {
	year := ""
	if len(w.Date) >= 4 {
		year = w.Date[:4]
	}
	return Item{Kind: w.Kind, Title: w.Title, Year: year, Label: w.Role}
}

// ItemRenderer handles rendering of list rows
type ItemRenderer struct {
	styles *Styles
}

// NewItemRenderer creates a new item renderer
func NewItemRenderer(styles *Styles) *ItemRenderer {
	return &ItemRenderer{
		styles: styles,
	}
}

// RenderItem renders a row. Text matching query is highlighted and the
// line is cut to width when width is positive.
func (r *ItemRenderer) RenderItem(item Item, isSelected bool, query string, width int) string {
	bgColor := ""
	if isSelected {
		bgColor = "238"
	}
	base := lipgloss.NewStyle()
	if bgColor != "" {
		base = base.Background(lipgloss.Color(bgColor))
	}

	var parts []string

	cursor := "  "
	if isSelected {
		cursor = "▸ "
	}
	parts = append(parts, base.Render(cursor))

	badge := base.Foreground(lipgloss.Color(GetKindColor(item.Kind))).Render(kindBadge(item.Kind))
	parts = append(parts, badge, base.Render(" "))

	title := truncate(item.Title, 60)
	if query != "" && strings.Contains(strings.ToLower(title), strings.ToLower(query)) {
		parts = append(parts, highlightMatch(title, query, base.Foreground(lipgloss.Color("226")), base))
	} else {
		parts = append(parts, base.Render(title))
	}

	if item.Year != "" {
		parts = append(parts, base.Faint(true).Render(fmt.Sprintf(" (%s)", item.Year)))
	}
	if item.Rating > 0 {
		parts = append(parts, base.Foreground(lipgloss.Color("220")).Render(fmt.Sprintf(" ★ %.1f", item.Rating)))
	}
	if item.Label != "" {
		parts = append(parts, base.Foreground(lipgloss.Color("245")).Render(" · "+item.Label))
	}

	line := strings.Join(parts, "")
	if width > 0 {
		if isSelected {
			if w := lipgloss.Width(line); w < width {
				line += base.Render(strings.Repeat(" ", width-w))
			}
		}
		line = lipgloss.NewStyle().MaxWidth(width).Render(line)
	}
	return line
}

func kindBadge(kind domain.Kind) string {
	switch kind {
	case domain.KindMovie:
		return "[M]"
	case domain.KindTV:
		return "[T]"
	case domain.KindPerson:
		return "[P]"
	default:
		return "[?]"
	}
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}

// highlightMatch highlights matching text within a string
func highlightMatch(text, query string, highlightStyle, normalStyle lipgloss.Style) string {
	lowerText := strings.ToLower(text)
	lowerQuery := strings.ToLower(query)

	index := strings.Index(lowerText, lowerQuery)
	if index == -1 || len(lowerText) != len(text) {
		return normalStyle.Render(text)
	}

	before := text[:index]
	match := text[index : index+len(query)]
	after := text[index+len(query):]

	var result []string
	if before != "" {
		result = append(result, normalStyle.Render(before))
	}
	result = append(result, highlightStyle.Render(match))
	if after != "" {
		result = append(result, normalStyle.Render(after))
	}

	return strings.Join(result, "")
}
