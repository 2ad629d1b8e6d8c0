// Package router turns route strings into screens and keeps the history
// stack used by the back key.
package router

import (
	"net/url"
	"strings"

	"github.com/sirupsen/logrus"

	"cinegrip/internal/domain"
	"cinegrip/internal/eventbus"
	"cinegrip/internal/metrics"
	"cinegrip/internal/search"
)

// Route names
const (
	NameHome   = "home"
	NameSearch = "search"
	NameMovie  = "movie"
	NameTV     = "tv"
	NamePerson = "person"
)

// HomePath is the path of the trending screen
const HomePath = "/"

// Route is one entry of the history stack
type Route struct {
	Name   string
	Path   string
	Params map[string]string
	Visit  uint64 // increases with every accepted navigation
}

// ID returns the decoded id parameter of a detail route
func (r Route) ID() string {
	return r.param(search.ParamID)
}

// Query returns the decoded query of a search route
func (r Route) Query() string {
	return r.param(search.ParamQuery)
}

// Kind returns the entity kind of a detail route, "" for other routes
func (r Route) Kind() domain.Kind {
	switch r.Name {
	case NameMovie:
		return domain.KindMovie
	case NameTV:
		return domain.KindTV
	case NamePerson:
		return domain.KindPerson
	default:
		return ""
	}
}

func (r Route) param(name string) string {
	v := r.Params[name]
	if decoded, err := url.PathUnescape(v); err == nil {
		return decoded
	}
	return v
}

// Router is the navigation capability used by the search controller
type Router struct {
	table   search.RouteTable
	stack   []Route
	visits  uint64
	bus     eventbus.EventBus
	metrics *metrics.Search
	log     *logrus.Entry
}

// New creates a router positioned on the home route. bus and m may be nil.
func New(table search.RouteTable, bus eventbus.EventBus, m *metrics.Search, log *logrus.Entry) *Router {
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	r := &Router{
		table:   table,
		bus:     bus,
		metrics: m,
		log:     log,
	}
	r.stack = []Route{r.home()}
	return r
}

func (r *Router) home() Route {
	r.visits++
	return Route{Name: NameHome, Path: HomePath, Params: map[string]string{}, Visit: r.visits}
}

// Resolve parses path against the route table
func (r *Router) Resolve(path string) (Route, bool) {
	if strings.Trim(path, "/") == "" {
		return Route{Name: NameHome, Path: HomePath, Params: map[string]string{}}, true
	}
	if params, ok := search.Match(r.table.Search, path); ok {
		return Route{Name: NameSearch, Path: path, Params: params}, true
	}
	for kind, tmpl := range r.table.Details {
		if params, ok := search.Match(tmpl, path); ok {
			return Route{Name: nameFor(kind), Path: path, Params: params}, true
		}
	}
	return resolveBrowse(path)
}

func nameFor(kind domain.Kind) string {
	switch kind {
	case domain.KindMovie:
		return NameMovie
	case domain.KindTV:
		return NameTV
	case domain.KindPerson:
		return NamePerson
	default:
		return string(kind)
	}
}

// GoTo pushes route onto the history. Params given by the caller win over
// the ones parsed from the path. Unknown routes are logged and ignored.
func (r *Router) GoTo(route string, params map[string]string) {
	resolved, ok := r.accept(route, params)
	if !ok {
		return
	}
	r.stack = append(r.stack, resolved)
	r.observe(resolved)
}

// Replace swaps the current route for route without growing the history.
// It is used when a listing filter changes. Unknown routes are ignored.
func (r *Router) Replace(route string, params map[string]string) {
	resolved, ok := r.accept(route, params)
	if !ok {
		return
	}
	r.stack[len(r.stack)-1] = resolved
	r.observe(resolved)
}

func (r *Router) accept(route string, params map[string]string) (Route, bool) {
	resolved, ok := r.Resolve(route)
	if !ok {
		r.log.WithField("route", route).Warn("ignoring navigation to unknown route")
		return Route{}, false
	}
	for k, v := range params {
		resolved.Params[k] = v
	}
	r.visits++
	resolved.Visit = r.visits
	return resolved, true
}

func (r *Router) observe(resolved Route) {
	r.log.WithFields(logrus.Fields{"route": resolved.Path, "name": resolved.Name}).Info("navigated")
	r.metrics.ObserveNavigation(resolved.Name)
	if r.bus != nil {
		r.bus.Publish(domain.NavigationRequestedEvent{
			Intent: domain.NavigationIntent{Route: resolved.Path, Params: resolved.Params},
		})
	}
}

// Home navigates to the home route
func (r *Router) Home() {
	r.GoTo(HomePath, nil)
}

// Back pops the current route. It reports false when already at the root.
func (r *Router) Back() bool {
	if len(r.stack) <= 1 {
		return false
	}
	r.stack = r.stack[:len(r.stack)-1]

	// re-entering a route counts as a new visit so its screen reloads
	r.visits++
	r.stack[len(r.stack)-1].Visit = r.visits
	return true
}

// Current returns the route on top of the history
func (r *Router) Current() Route {
	return r.stack[len(r.stack)-1]
}

// Depth returns the number of routes in the history
func (r *Router) Depth() int {
	return len(r.stack)
}
