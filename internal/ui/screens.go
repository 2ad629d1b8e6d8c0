package ui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"cinegrip/internal/domain"
	"cinegrip/internal/ui/router"
	"cinegrip/internal/ui/views"
)

// Catalog is the media metadata fetch capability behind the screens
type Catalog interface {
	Trending(ctx context.Context, mediaType, window string) ([]domain.TrendingItem, error)
	Popular(ctx context.Context, kind domain.Kind) ([]domain.TrendingItem, error)
	Category(ctx context.Context, kind domain.Kind, category string) ([]domain.TrendingItem, error)
	Discover(ctx context.Context, kind domain.Kind, genreID int) ([]domain.TrendingItem, error)
	PopularPeople(ctx context.Context) ([]domain.TrendingItem, error)
	Genres(kind domain.Kind) []domain.Genre
	SearchAll(ctx context.Context, query string, page int) ([]domain.Suggestion, error)
	MovieDetails(ctx context.Context, id string) (*domain.WorkDetails, error)
	TVDetails(ctx context.Context, id string) (*domain.WorkDetails, error)
	PersonDetails(ctx context.Context, id string) (*domain.PersonDetails, error)
}

// screen is the data loaded for the current route
type screen struct {
	route   router.Route
	loading bool
	err     error

	entries []domain.TrendingItem // listing screens
	results []domain.Suggestion
	work    *domain.WorkDetails
	person  *domain.PersonDetails
}

// targets returns what the body list rows open, in row order
func (s *screen) targets() []domain.Suggestion {
	var out []domain.Suggestion
	switch {
	case s.entries != nil:
		for _, t := range s.entries {
			out = append(out, domain.Suggestion{ID: t.ID, Kind: t.Kind, DisplayName: t.Title, PrimaryDate: t.Date})
		}
	case s.results != nil:
		out = s.results
	case s.work != nil:
		for _, w := range s.work.Similar {
			out = append(out, domain.Suggestion{ID: w.ID, Kind: w.Kind, DisplayName: w.Title, PrimaryDate: w.Date})
		}
	case s.person != nil:
		for _, w := range s.person.Credits {
			out = append(out, domain.Suggestion{ID: w.ID, Kind: w.Kind, DisplayName: w.Title, PrimaryDate: w.Date})
		}
	}
	return out
}

func (s *screen) items() []views.Item {
	var out []views.Item
	switch {
	case s.entries != nil:
		for _, t := range s.entries {
			out = append(out, views.ItemFromTrending(t))
		}
	case s.results != nil:
		for _, r := range s.results {
			out = append(out, views.ItemFromSuggestion(r))
		}
	case s.work != nil:
		for _, w := range s.work.Similar {
			out = append(out, views.ItemFromWork(w))
		}
	case s.person != nil:
		for _, w := range s.person.Credits {
			out = append(out, views.ItemFromWork(w))
		}
	}
	return out
}

func (s *screen) heading(genres func(domain.Kind) []domain.Genre) string {
	r := s.route
	switch r.Name {
	case router.NameHome:
		return "Trending this week"
	case router.NameTrending:
		label := domain.OptionLabel(domain.TrendingTypes, r.MediaType())
		if r.Window() == "day" {
			return fmt.Sprintf("Trending today · %s", label)
		}
		return fmt.Sprintf("Trending this week · %s", label)
	case router.NamePopular:
		return "Popular " + domain.OptionLabel(domain.PopularTypes, r.MediaType())
	case router.NameMovies, router.NameTVShows:
		kind := r.ListKind()
		return fmt.Sprintf("%s · %s", listLabel(kind), domain.OptionLabel(domain.Categories(kind), r.Category()))
	case router.NameMovieGenre, router.NameTVGenre:
		kind := r.ListKind()
		name := strconv.Itoa(r.GenreID())
		if genres != nil {
			for _, g := range genres(kind) {
				if g.ID == r.GenreID() {
					name = g.Name
				}
			}
		}
		return fmt.Sprintf("%s · %s", listLabel(kind), name)
	case router.NamePeople:
		return "Popular people"
	case router.NameSearch:
		return fmt.Sprintf("Results for %q", s.route.Query())
	case router.NameMovie, router.NameTV:
		return "More like this"
	case router.NamePerson:
		return "Known for"
	default:
		return ""
	}
}

func listLabel(kind domain.Kind) string {
	if kind == domain.KindTV {
		return "TV Shows"
	}
	return "Movies"
}

func (s *screen) empty() string {
	if s.route.Name == router.NameSearch {
		return "Nothing matched. Try another title or name."
	}
	return "Nothing to show."
}

// document returns the long-form text for the pager, "" when the screen has none
func (s *screen) document(r *views.Renderer) string {
	switch {
	case s.work != nil:
		w := s.work
		var cast []string
		for _, c := range w.Cast {
			if c.Character != "" {
				cast = append(cast, fmt.Sprintf("%s as %s", c.Name, c.Character))
			} else {
				cast = append(cast, c.Name)
			}
		}
		return r.RenderDocument(w.Title, [][2]string{
			{"Tagline", w.Tagline},
			{"Overview", w.Overview},
			{"Genres", strings.Join(w.Genres, ", ")},
			{"Cast", strings.Join(cast, "\n")},
		})
	case s.person != nil:
		p := s.person
		var credits []string
		for _, c := range p.Credits {
			line := c.Title
			if len(c.Date) >= 4 {
				line += " (" + c.Date[:4] + ")"
			}
			if c.Role != "" {
				line += " as " + c.Role
			}
			credits = append(credits, line)
		}
		return r.RenderDocument(p.Name, [][2]string{
			{"Biography", p.Biography},
			{"Credits", strings.Join(credits, "\n")},
		})
	default:
		return ""
	}
}

// loadCmd returns the command fetching the data of route
func loadCmd(ctx context.Context, catalog Catalog, route router.Route) tea.Cmd {
	visit := route.Visit
	switch route.Name {
	case router.NameHome, router.NameTrending:
		mediaType, window := route.MediaType(), route.Window()
		return func() tea.Msg {
			items, err := catalog.Trending(ctx, mediaType, window)
			return listLoadedMsg{visit: visit, items: items, err: err}
		}
	case router.NamePopular:
		kind := route.ListKind()
		return func() tea.Msg {
			items, err := catalog.Popular(ctx, kind)
			return listLoadedMsg{visit: visit, items: items, err: err}
		}
	case router.NameMovies, router.NameTVShows:
		kind, category := route.ListKind(), route.Category()
		return func() tea.Msg {
			items, err := catalog.Category(ctx, kind, category)
			return listLoadedMsg{visit: visit, items: items, err: err}
		}
	case router.NameMovieGenre, router.NameTVGenre:
		kind, genre := route.ListKind(), route.GenreID()
		return func() tea.Msg {
			items, err := catalog.Discover(ctx, kind, genre)
			return listLoadedMsg{visit: visit, items: items, err: err}
		}
	case router.NamePeople:
		return func() tea.Msg {
			items, err := catalog.PopularPeople(ctx)
			return listLoadedMsg{visit: visit, items: items, err: err}
		}
	case router.NameSearch:
		query := route.Query()
		return func() tea.Msg {
			results, err := catalog.SearchAll(ctx, query, 1)
			return resultsLoadedMsg{visit: visit, results: results, err: err}
		}
	case router.NameMovie, router.NameTV:
		id, kind := route.ID(), route.Kind()
		return func() tea.Msg {
			var work *domain.WorkDetails
			var err error
			if kind == domain.KindTV {
				work, err = catalog.TVDetails(ctx, id)
			} else {
				work, err = catalog.MovieDetails(ctx, id)
			}
			return workLoadedMsg{visit: visit, work: work, err: err}
		}
	case router.NamePerson:
		id := route.ID()
		return func() tea.Msg {
			person, err := catalog.PersonDetails(ctx, id)
			return personLoadedMsg{visit: visit, person: person, err: err}
		}
	default:
		return nil
	}
}
