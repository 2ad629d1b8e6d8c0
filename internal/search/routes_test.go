package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cinegrip/internal/domain"
)

func TestDetailIntent(t *testing.T) {
	rt := DefaultRoutes()

	intent, err := rt.DetailIntent(domain.Suggestion{ID: "42", Kind: domain.KindMovie})
	require.NoError(t, err)
	assert.Equal(t, "/movies/details/42", intent.Route)
	assert.Equal(t, map[string]string{ParamID: "42"}, intent.Params)

	_, err = rt.DetailIntent(domain.Suggestion{ID: "1", Kind: "collection"})
	assert.ErrorIs(t, err, ErrNoRoute)
}

func TestCustomRouteTable(t *testing.T) {
	rt := RouteTable{
		Search:  "/find/:query",
		Details: map[domain.Kind]string{domain.KindPerson: "/who/:id/profile"},
	}

	intent, err := rt.DetailIntent(domain.Suggestion{ID: "287", Kind: domain.KindPerson})
	require.NoError(t, err)
	assert.Equal(t, "/who/287/profile", intent.Route)
	assert.Equal(t, "/find/brad%20pitt", rt.SearchIntent("brad pitt").Route)

	_, err = rt.DetailIntent(domain.Suggestion{ID: "1", Kind: domain.KindMovie})
	assert.ErrorIs(t, err, ErrNoRoute)
}

func TestExpand(t *testing.T) {
	assert.Equal(t, "/a/1/b/2", Expand("/a/:x/b/:y", map[string]string{"x": "1", "y": "2"}))
	assert.Equal(t, "/a/:x", Expand("/a/:x", nil))
}

func TestMatch(t *testing.T) {
	params, ok := Match("/movies/details/:id", "/movies/details/42")
	require.True(t, ok)
	assert.Equal(t, map[string]string{"id": "42"}, params)

	params, ok = Match("/search/:query", "/search/the%20thing")
	require.True(t, ok)
	assert.Equal(t, "the%20thing", params["query"])

	_, ok = Match("/movies/details/:id", "/tv-shows/details/42")
	assert.False(t, ok)
	_, ok = Match("/movies/details/:id", "/movies/details")
	assert.False(t, ok)
	_, ok = Match("/movies/details/:id", "/movies/details/42/extra")
	assert.False(t, ok)

	params, ok = Match("/", "/")
	require.True(t, ok)
	assert.Empty(t, params)
}
