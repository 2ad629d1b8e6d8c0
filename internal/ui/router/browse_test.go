package router

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cinegrip/internal/domain"
)

func TestResolveListings(t *testing.T) {
	r := newRouter(t)

	tests := []struct {
		path string
		name string
		kind domain.Kind
	}{
		{"/trending/all/week", NameTrending, ""},
		{"/trending/tv/day", NameTrending, ""},
		{"/popular/movie", NamePopular, domain.KindMovie},
		{"/popular/tv", NamePopular, domain.KindTV},
		{"/movies/top_rated", NameMovies, domain.KindMovie},
		{"/movies/genre/878", NameMovieGenre, domain.KindMovie},
		{"/tv-shows/airing_today", NameTVShows, domain.KindTV},
		{"/tv-shows/genre/18", NameTVGenre, domain.KindTV},
		{"/people", NamePeople, domain.KindPerson},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			route, ok := r.Resolve(tt.path)
			require.True(t, ok)
			assert.Equal(t, tt.name, route.Name)
			assert.Equal(t, tt.kind, route.ListKind())
			assert.True(t, route.IsListing())
		})
	}
}

func TestResolveRejectsUnknownFilters(t *testing.T) {
	r := newRouter(t)

	for _, path := range []string{
		"/trending/person/week",
		"/trending/all/month",
		"/popular/person",
		"/movies/airing_today",
		"/movies/details",
		"/tv-shows/now_playing",
		"/movies/genre/action",
		"/tv-shows/genre/0",
	} {
		_, ok := r.Resolve(path)
		assert.False(t, ok, path)
	}
}

func TestDetailRoutesStillWinOverListings(t *testing.T) {
	r := newRouter(t)

	route, ok := r.Resolve("/movies/details/42")
	require.True(t, ok)
	assert.Equal(t, NameMovie, route.Name)
	assert.False(t, route.IsListing())

	route, ok = r.Resolve("/people/details/287")
	require.True(t, ok)
	assert.Equal(t, NamePerson, route.Name)
}

func TestListingAccessors(t *testing.T) {
	r := newRouter(t)

	home := r.Current()
	assert.Equal(t, "all", home.MediaType())
	assert.Equal(t, "week", home.Window())

	route, _ := r.Resolve(TrendingPath("movie", "day"))
	assert.Equal(t, "movie", route.MediaType())
	assert.Equal(t, "day", route.Window())

	route, _ = r.Resolve(CategoryPath(domain.KindTV, "on_the_air"))
	assert.Equal(t, "/tv-shows/on_the_air", route.Path)
	assert.Equal(t, "on_the_air", route.Category())

	route, _ = r.Resolve(GenrePath(domain.KindMovie, 28))
	assert.Equal(t, "/movies/genre/28", route.Path)
	assert.Equal(t, 28, route.GenreID())

	assert.Equal(t, "/popular/tv", PopularPath(domain.KindTV))
}

func TestReplaceKeepsDepth(t *testing.T) {
	r := newRouter(t)

	r.GoTo(TrendingPath("all", "week"), nil)
	require.Equal(t, 2, r.Depth())
	before := r.Current().Visit

	r.Replace(TrendingPath("all", "day"), nil)
	assert.Equal(t, 2, r.Depth())
	assert.Equal(t, "day", r.Current().Window())
	assert.Greater(t, r.Current().Visit, before)

	r.Replace("/trending/all/month", nil)
	assert.Equal(t, "day", r.Current().Window(), "unknown routes are ignored")

	require.True(t, r.Back())
	assert.Equal(t, NameHome, r.Current().Name)
}
