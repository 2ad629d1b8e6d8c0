package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"cinegrip/internal/domain"
	"cinegrip/internal/ui/router"
)

// switchListing shows path in place of the current listing. Leaving home
// pushes so that back returns to it.
func (m *Model) switchListing(path string) {
	if m.router.Current().Name == router.NameHome {
		m.router.GoTo(path, nil)
		return
	}
	m.router.Replace(path, nil)
}

func (m *Model) cycleType() tea.Cmd {
	r := m.router.Current()
	switch r.Name {
	case router.NameHome, router.NameTrending:
		next := domain.NextOption(domain.TrendingTypes, r.MediaType())
		m.switchListing(router.TrendingPath(next.Value, r.Window()))
	case router.NamePopular:
		next := domain.NextOption(domain.PopularTypes, r.MediaType())
		m.switchListing(router.PopularPath(domain.Kind(next.Value)))
	default:
		return m.setStatus("Only trending and popular lists switch media type")
	}
	return nil
}

func (m *Model) cycleWindow() tea.Cmd {
	r := m.router.Current()
	switch r.Name {
	case router.NameHome, router.NameTrending:
		next := domain.NextOption(domain.TrendingWindows, r.Window())
		m.switchListing(router.TrendingPath(r.MediaType(), next.Value))
	default:
		return m.setStatus("Only trending lists have a time window")
	}
	return nil
}

func (m *Model) cycleCategory() tea.Cmd {
	r := m.router.Current()
	kind := r.ListKind()
	switch r.Name {
	case router.NameMovies, router.NameTVShows:
		next := domain.NextOption(domain.Categories(kind), r.Category())
		m.switchListing(router.CategoryPath(kind, next.Value))
	case router.NameMovieGenre, router.NameTVGenre:
		// leaving the genre filter starts over at the first category
		m.switchListing(router.CategoryPath(kind, domain.Categories(kind)[0].Value))
	default:
		return m.setStatus("Categories are on the movie and TV lists")
	}
	return nil
}

func (m *Model) cycleGenre() tea.Cmd {
	r := m.router.Current()
	kind := r.ListKind()
	switch r.Name {
	case router.NameMovies, router.NameTVShows, router.NameMovieGenre, router.NameTVGenre:
	default:
		return m.setStatus("Genres are on the movie and TV lists")
	}

	genres := m.genres(kind)
	if len(genres) == 0 {
		return m.setStatus("No genres available")
	}
	next := genres[0]
	for i, g := range genres {
		if g.ID == r.GenreID() {
			next = genres[(i+1)%len(genres)]
			break
		}
	}
	m.switchListing(router.GenrePath(kind, next.ID))
	return nil
}

func (m *Model) genres(kind domain.Kind) []domain.Genre {
	if m.catalog == nil {
		return nil
	}
	return m.catalog.Genres(kind)
}
