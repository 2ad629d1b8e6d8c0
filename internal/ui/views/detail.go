package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"cinegrip/internal/domain"
)

// maxOverviewLines bounds the overview shown inline; the rest is in the pager
const maxOverviewLines = 6

// RenderWork renders the header block of a movie or TV detail screen
func (r *Renderer) RenderWork(w *domain.WorkDetails, width int) string {
	if w == nil {
		return ""
	}

	var b strings.Builder
	title := r.styles.Title.Render(w.Title)
	if len(w.Date) >= 4 {
		title += r.styles.Dim.Render(fmt.Sprintf(" (%s)", w.Date[:4]))
	}
	b.WriteString(title)
	b.WriteString("\n")

	if w.Tagline != "" {
		b.WriteString(r.styles.Tagline.Render(w.Tagline))
		b.WriteString("\n")
	}

	var facts []string
	facts = append(facts, lipgloss.NewStyle().Foreground(lipgloss.Color(GetKindColor(w.Kind))).Render(w.Kind.Label()))
	if len(w.Genres) > 0 {
		facts = append(facts, strings.Join(w.Genres, ", "))
	}
	if w.Runtime > 0 {
		facts = append(facts, fmt.Sprintf("%dh %02dm", w.Runtime/60, w.Runtime%60))
	}
	if w.Seasons > 0 {
		facts = append(facts, fmt.Sprintf("%d seasons, %d episodes", w.Seasons, w.Episodes))
	}
	if w.Rating > 0 {
		facts = append(facts, r.styles.Rating.Render(fmt.Sprintf("★ %.1f", w.Rating))+r.styles.Dim.Render(fmt.Sprintf(" (%d votes)", w.VoteCount)))
	}
	b.WriteString(strings.Join(facts, r.styles.Dim.Render(" · ")))
	b.WriteString("\n")

	if w.Overview != "" {
		b.WriteString("\n")
		b.WriteString(r.wrapClamp(w.Overview, width, maxOverviewLines))
		b.WriteString("\n")
	}

	if len(w.Cast) > 0 {
		b.WriteString("\n")
		b.WriteString(r.styles.Label.Render("Starring "))
		var names []string
		for i, c := range w.Cast {
			if i == 6 {
				break
			}
			if c.Character != "" {
				names = append(names, fmt.Sprintf("%s as %s", c.Name, c.Character))
			} else {
				names = append(names, c.Name)
			}
		}
		b.WriteString(r.wrapClamp(strings.Join(names, ", "), width-9, 2))
		b.WriteString("\n")
	}

	if w.TrailerKey != "" {
		b.WriteString(r.styles.Label.Render("Trailer  "))
		b.WriteString("https://www.youtube.com/watch?v=" + w.TrailerKey)
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n")
}

// RenderPerson renders the header block of a person detail screen
func (r *Renderer) RenderPerson(p *domain.PersonDetails, width int) string {
	if p == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(r.styles.Title.Render(p.Name))
	b.WriteString("\n")

	var facts []string
	if p.KnownFor != "" {
		facts = append(facts, "Known for "+p.KnownFor)
	}
	if p.Birthday != "" {
		born := "Born " + p.Birthday
		if p.PlaceOfBirth != "" {
			born += " in " + p.PlaceOfBirth
		}
		facts = append(facts, born)
	}
	if p.Deathday != "" {
		facts = append(facts, "Died "+p.Deathday)
	}
	if len(facts) > 0 {
		b.WriteString(r.styles.Label.Render(strings.Join(facts, " · ")))
		b.WriteString("\n")
	}

	if p.Biography != "" {
		b.WriteString("\n")
		b.WriteString(r.wrapClamp(p.Biography, width, maxOverviewLines))
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n")
}

// RenderDocument renders a plain text document for the pager
func (r *Renderer) RenderDocument(title string, sections [][2]string) string {
	var b strings.Builder
	b.WriteString(r.styles.Title.Render(title))
	b.WriteString("\n")
	for _, s := range sections {
		if s[1] == "" {
			continue
		}
		b.WriteString("\n")
		b.WriteString(r.styles.Section.Render(s[0]))
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Width(78).Render(s[1]))
		b.WriteString("\n")
	}
	return b.String()
}

func (r *Renderer) wrapClamp(text string, width, maxLines int) string {
	if width <= 20 {
		width = 80
	}
	wrapped := lipgloss.NewStyle().Width(width).Render(text)
	lines := strings.Split(wrapped, "\n")
	if len(lines) > maxLines {
		lines = lines[:maxLines]
		lines[maxLines-1] = strings.TrimRight(lines[maxLines-1], " ") + r.styles.Dim.Render(" … (o for more)")
	}
	return strings.Join(lines, "\n")
}
