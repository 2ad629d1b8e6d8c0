package router

import (
	"strconv"

	"cinegrip/internal/domain"
	"cinegrip/internal/search"
)

// Listing route names
const (
	NameTrending   = "trending"
	NamePopular    = "popular"
	NameMovies     = "movies"
	NameMovieGenre = "movie-genre"
	NameTVShows    = "tv-shows"
	NameTVGenre    = "tv-genre"
	NamePeople     = "people"
)

// Listing route parameters
const (
	ParamType     = "type"
	ParamWindow   = "window"
	ParamCategory = "category"
	ParamGenre    = "genre"
)

type browseRoute struct {
	name  string
	tmpl  string
	valid func(params map[string]string) bool
}

func oneOf(param string, opts []domain.Option) func(map[string]string) bool {
	return func(p map[string]string) bool {
		return domain.HasOption(opts, p[param])
	}
}

func validGenre(p map[string]string) bool {
	id, err := strconv.Atoi(p[ParamGenre])
	return err == nil && id > 0
}

var browseRoutes = []browseRoute{
	{NameTrending, "/trending/:type/:window", func(p map[string]string) bool {
		return domain.HasOption(domain.TrendingTypes, p[ParamType]) &&
			domain.HasOption(domain.TrendingWindows, p[ParamWindow])
	}},
	{NamePopular, "/popular/:type", oneOf(ParamType, domain.PopularTypes)},
	{NameMovies, "/movies/:category", oneOf(ParamCategory, domain.MovieCategories)},
	{NameMovieGenre, "/movies/genre/:genre", validGenre},
	{NameTVShows, "/tv-shows/:category", oneOf(ParamCategory, domain.TVCategories)},
	{NameTVGenre, "/tv-shows/genre/:genre", validGenre},
	{NamePeople, "/people", func(map[string]string) bool { return true }},
}

func resolveBrowse(path string) (Route, bool) {
	for _, br := range browseRoutes {
		params, ok := search.Match(br.tmpl, path)
		if ok && br.valid(params) {
			return Route{Name: br.name, Path: path, Params: params}, true
		}
	}
	return Route{}, false
}

// TrendingPath is the trending list of mediaType over window
func TrendingPath(mediaType, window string) string {
	return search.Expand("/trending/:type/:window", map[string]string{ParamType: mediaType, ParamWindow: window})
}

// PopularPath is the popular list of a work kind
func PopularPath(kind domain.Kind) string {
	return "/popular/" + string(kind)
}

// CategoryPath is a curated movie or TV list
func CategoryPath(kind domain.Kind, category string) string {
	return listPrefix(kind) + "/" + category
}

// GenrePath is the genre discover list of a work kind
func GenrePath(kind domain.Kind, genreID int) string {
	return listPrefix(kind) + "/genre/" + strconv.Itoa(genreID)
}

// PeoplePath is the popular people list
const PeoplePath = "/people"

func listPrefix(kind domain.Kind) string {
	if kind == domain.KindTV {
		return "/tv-shows"
	}
	return "/movies"
}

// IsListing reports whether the route shows a browse list. Home counts as
// the weekly trending list.
func (r Route) IsListing() bool {
	switch r.Name {
	case NameHome, NameTrending, NamePopular, NameMovies, NameMovieGenre, NameTVShows, NameTVGenre, NamePeople:
		return true
	default:
		return false
	}
}

// MediaType returns the media type of a trending or popular route. Home
// reports "all".
func (r Route) MediaType() string {
	if r.Name == NameHome {
		return "all"
	}
	return r.Params[ParamType]
}

// Window returns the time window of a trending route. Home reports "week".
func (r Route) Window() string {
	if r.Name == NameHome {
		return "week"
	}
	return r.Params[ParamWindow]
}

// Category returns the category of a movies or tv-shows route
func (r Route) Category() string {
	return r.Params[ParamCategory]
}

// GenreID returns the genre of a discover route, 0 when absent
func (r Route) GenreID() int {
	id, _ := strconv.Atoi(r.Params[ParamGenre])
	return id
}

// ListKind returns the work kind a movies, tv-shows or popular route lists
func (r Route) ListKind() domain.Kind {
	switch r.Name {
	case NameMovies, NameMovieGenre:
		return domain.KindMovie
	case NameTVShows, NameTVGenre:
		return domain.KindTV
	case NamePopular:
		return domain.Kind(r.Params[ParamType])
	case NamePeople:
		return domain.KindPerson
	default:
		return ""
	}
}
