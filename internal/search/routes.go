package search

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"cinegrip/internal/domain"
)

// ErrNoRoute is returned when a suggestion kind has no detail route
var ErrNoRoute = errors.New("no route for suggestion kind")

// Route parameter names
const (
	ParamID    = "id"
	ParamQuery = "query"
)

// RouteTable maps navigation targets to route templates. Templates use
// ":name" path segments for parameters.
type RouteTable struct {
	Search  string
	Details map[domain.Kind]string
}

// DefaultRoutes returns the route table of the front-end
func DefaultRoutes() RouteTable {
	return RouteTable{
		Search: "/search/:query",
		Details: map[domain.Kind]string{
			domain.KindMovie:  "/movies/details/:id",
			domain.KindTV:     "/tv-shows/details/:id",
			domain.KindPerson: "/people/details/:id",
		},
	}
}

// SearchIntent builds the intent for a free-text search. The query must
// already be trimmed.
func (rt RouteTable) SearchIntent(query string) domain.NavigationIntent {
	params := map[string]string{ParamQuery: url.PathEscape(query)}
	return domain.NavigationIntent{Route: Expand(rt.Search, params), Params: params}
}

// DetailIntent builds the intent for opening a suggestion
func (rt RouteTable) DetailIntent(s domain.Suggestion) (domain.NavigationIntent, error) {
	tmpl, ok := rt.Details[s.Kind]
	if !ok {
		return domain.NavigationIntent{}, fmt.Errorf("%w: %q", ErrNoRoute, s.Kind)
	}
	params := map[string]string{ParamID: url.PathEscape(s.ID)}
	return domain.NavigationIntent{Route: Expand(tmpl, params), Params: params}, nil
}

// Expand substitutes ":name" segments of tmpl with params. Values are used
// as given; unknown parameters are left in place.
func Expand(tmpl string, params map[string]string) string {
	segments := strings.Split(tmpl, "/")
	for i, seg := range segments {
		if !strings.HasPrefix(seg, ":") {
			continue
		}
		if v, ok := params[seg[1:]]; ok {
			segments[i] = v
		}
	}
	return strings.Join(segments, "/")
}

// Match reports whether path fits tmpl and returns the captured parameters.
// Captured values stay encoded.
func Match(tmpl, path string) (map[string]string, bool) {
	want := strings.Split(strings.Trim(tmpl, "/"), "/")
	got := strings.Split(strings.Trim(path, "/"), "/")
	if len(want) != len(got) {
		return nil, false
	}

	params := make(map[string]string)
	for i, seg := range want {
		if strings.HasPrefix(seg, ":") {
			if got[i] == "" {
				return nil, false
			}
			params[seg[1:]] = got[i]
			continue
		}
		if seg != got[i] {
			return nil, false
		}
	}
	return params, true
}
