// Package search implements the type-ahead search controller.
//
// The controller owns the query text and the suggestion panel state. Every
// keystroke restarts a debounce timer; when it fires a lookup command is
// returned to the bubbletea loop and its result is applied only if it still
// belongs to the current query.
//
// All methods must be called from the bubbletea Update loop. The only thing
// that runs elsewhere is the timer callback, which just posts a message.
package search

import (
	"context"
	"slices"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"cinegrip/internal/domain"
	"cinegrip/internal/eventbus"
	"cinegrip/internal/metrics"
	"cinegrip/internal/ui/services/pointer"
)

// PointerSource is where the controller listens for pointer presses while
// it is active
type PointerSource interface {
	Subscribe(fn pointer.Handler) func()
}

// Options configures a Controller. Zero values pick defaults.
type Options struct {
	Delay   time.Duration
	Clock   Clock
	Routes  RouteTable
	Log     *logrus.Entry
	Metrics *metrics.Search
	Bus     eventbus.EventBus
}

// Controller is the type-ahead search controller
type Controller struct {
	id     uuid.UUID
	lookup Lookup
	nav    Navigator

	delay   time.Duration
	clock   Clock
	routes  RouteTable
	log     *logrus.Entry
	metrics *metrics.Search
	bus     eventbus.EventBus

	dispatch func(tea.Msg)

	state State

	// debounce bookkeeping
	pending    Timer
	keystrokes uint64

	// lookup bookkeeping
	issued uint64
	cancel context.CancelFunc
	// results with seq at or below this were abandoned by Clear or blur
	ignoreThrough uint64

	bounds  pointer.Rect
	release func()
}

// New creates a controller that looks suggestions up with lookup and
// navigates with nav
func New(lookup Lookup, nav Navigator, opts Options) *Controller {
	c := &Controller{
		id:      uuid.New(),
		lookup:  lookup,
		nav:     nav,
		delay:   opts.Delay,
		clock:   opts.Clock,
		routes:  opts.Routes,
		log:     opts.Log,
		metrics: opts.Metrics,
		bus:     opts.Bus,
	}
	if c.delay <= 0 {
		c.delay = DefaultDelay
	}
	if c.clock == nil {
		c.clock = RealClock()
	}
	if c.routes.Search == "" && c.routes.Details == nil {
		c.routes = DefaultRoutes()
	}
	if c.log == nil {
		c.log = logrus.NewEntry(logrus.StandardLogger())
	}
	c.log = c.log.WithField("controller", c.id.String()[:8])
	return c
}

// SetDispatch sets the function used to post timer messages to the
// program, normally (*tea.Program).Send
func (c *Controller) SetDispatch(fn func(tea.Msg)) {
	c.dispatch = fn
}

// State returns a copy of the session state
func (c *Controller) State() State {
	s := c.state
	s.Suggestions = slices.Clone(c.state.Suggestions)
	return s
}

// SetQuery replaces the query and restarts the debounce window
func (c *Controller) SetQuery(text string) {
	c.state.Query = text
	c.stopTimer()

	if text == "" {
		c.ignoreThrough = c.issued
		c.hide()
		return
	}

	msg := debounceFiredMsg{controller: c.id, seq: c.keystrokes}
	dispatch, log := c.dispatch, c.log
	c.pending = c.clock.AfterFunc(c.delay, func() {
		if dispatch == nil {
			log.Warn("debounce fired with no dispatcher")
			return
		}
		dispatch(msg)
	})
}

// Submit navigates to the search results for the trimmed query. It reports
// whether a navigation happened.
func (c *Controller) Submit() bool {
	query := strings.TrimSpace(c.state.Query)
	if query == "" {
		return false
	}

	intent := c.routes.SearchIntent(query)
	c.log.WithField("route", intent.Route).Debug("search submitted")
	c.nav.GoTo(intent.Route, intent.Params)
	c.publish(domain.SearchSubmittedEvent{Query: query})
	c.Clear()
	return true
}

// SelectSuggestion navigates to the detail route of s
func (c *Controller) SelectSuggestion(s domain.Suggestion) error {
	if !c.state.Visible {
		return ErrSuggestionsHidden
	}
	if !slices.ContainsFunc(c.state.Suggestions, func(o domain.Suggestion) bool {
		return o.ID == s.ID && o.Kind == s.Kind
	}) {
		return ErrUnknownSuggestion
	}

	intent, err := c.routes.DetailIntent(s)
	if err != nil {
		return err
	}

	c.log.WithField("route", intent.Route).Debug("suggestion selected")
	c.nav.GoTo(intent.Route, intent.Params)
	c.publish(domain.SuggestionSelectedEvent{Suggestion: s})
	c.Clear()
	return nil
}

// SelectIndex selects the i-th visible suggestion
func (c *Controller) SelectIndex(i int) error {
	if !c.state.Visible {
		return ErrSuggestionsHidden
	}
	if i < 0 || i >= len(c.state.Suggestions) {
		return ErrUnknownSuggestion
	}
	return c.SelectSuggestion(c.state.Suggestions[i])
}

// Dismiss hides the suggestions and keeps the query
func (c *Controller) Dismiss() {
	c.state.Visible = false
}

// Clear empties the query and the suggestion list. A lookup already in
// flight is left to settle; its result is ignored even if the same text is
// typed again before it arrives.
func (c *Controller) Clear() {
	c.state.Query = ""
	c.stopTimer()
	c.ignoreThrough = c.issued
	c.hide()
}

// Activate starts listening for pointer presses on src. Presses outside
// Bounds dismiss the suggestions.
func (c *Controller) Activate(src PointerSource) {
	if c.release != nil {
		return
	}
	c.release = src.Subscribe(c.onPointer)
}

// Deactivate releases the pointer subscription. The pending debounce
// window and any lookup in flight are abandoned, so the panel cannot open
// while no outside press is able to close it.
func (c *Controller) Deactivate() {
	c.stopTimer()
	c.ignoreThrough = c.issued
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
	if c.release == nil {
		return
	}
	c.release()
	c.release = nil
}

// Active reports whether the controller holds a pointer subscription
func (c *Controller) Active() bool {
	return c.release != nil
}

// SetBounds records the screen area covered by the input box and the panel
func (c *Controller) SetBounds(r pointer.Rect) {
	c.bounds = r
}

// Bounds returns the last rendered area
func (c *Controller) Bounds() pointer.Rect {
	return c.bounds
}

func (c *Controller) onPointer(ev pointer.Event) {
	if c.bounds.Contains(ev.X, ev.Y) {
		return
	}
	c.Dismiss()
}

// Close stops the timer, aborts the outstanding request and releases the
// pointer subscription
func (c *Controller) Close() {
	c.Deactivate()
}

// Update consumes the controller's own messages. Other messages are ignored.
func (c *Controller) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case debounceFiredMsg:
		if msg.controller != c.id {
			return nil
		}
		return c.onDebounce(msg)
	case lookupSettledMsg:
		if msg.controller != c.id {
			return nil
		}
		c.onSettled(msg)
	}
	return nil
}

func (c *Controller) onDebounce(msg debounceFiredMsg) tea.Cmd {
	// A timer that fired while being stopped still posts its message
	if msg.seq != c.keystrokes {
		return nil
	}
	c.pending = nil
	c.keystrokes++

	query := c.state.Query
	if strings.TrimSpace(query) == "" {
		c.hide()
		return nil
	}

	if c.cancel != nil {
		c.cancel()
	}
	ctx, cancel := context.WithCancel(context.Background())
	c.cancel = cancel

	c.issued++
	seq := c.issued
	c.state.InFlight = true
	c.log.WithFields(logrus.Fields{"query": query, "seq": seq}).Debug("lookup issued")

	lookup, clock, id := c.lookup, c.clock, c.id
	start := clock.Now()
	return func() tea.Msg {
		suggestions, err := lookup.Lookup(ctx, strings.TrimSpace(query))
		return lookupSettledMsg{
			controller:  id,
			seq:         seq,
			query:       query,
			suggestions: suggestions,
			err:         err,
			took:        clock.Now().Sub(start),
		}
	}
}

func (c *Controller) onSettled(msg lookupSettledMsg) {
	fields := logrus.Fields{"query": msg.query, "seq": msg.seq}

	// Superseded by a later lookup, which still owns InFlight
	if msg.seq != c.issued {
		c.log.WithFields(fields).Debug("dropping superseded lookup result")
		c.metrics.ObserveLookup(metrics.OutcomeStale, msg.took)
		return
	}

	c.state.InFlight = false
	c.cancel = nil

	if msg.seq <= c.ignoreThrough {
		c.log.WithFields(fields).Debug("dropping abandoned lookup result")
		c.metrics.ObserveLookup(metrics.OutcomeStale, msg.took)
		return
	}

	if msg.query != c.state.Query {
		c.log.WithFields(fields).Debug("dropping stale lookup result")
		c.metrics.ObserveLookup(metrics.OutcomeStale, msg.took)
		return
	}

	if msg.err != nil {
		c.log.WithFields(fields).WithError(msg.err).Warn("lookup failed")
		c.metrics.ObserveLookup(metrics.OutcomeFailure, msg.took)
		c.state.Err = msg.err
		c.state.Visible = c.state.Visible && len(c.state.Suggestions) > 0
		c.publish(domain.LookupFailedEvent{Query: msg.query, Err: msg.err})
		return
	}

	c.log.WithFields(fields).WithField("count", len(msg.suggestions)).Debug("lookup settled")
	c.metrics.ObserveLookup(metrics.OutcomeSuccess, msg.took)
	c.state.Err = nil
	c.state.Suggestions = msg.suggestions
	c.state.Visible = true
}

func (c *Controller) hide() {
	c.state.Suggestions = nil
	c.state.Visible = false
}

func (c *Controller) stopTimer() {
	if c.pending != nil {
		c.pending.Stop()
		c.pending = nil
	}
	c.keystrokes++
}

func (c *Controller) publish(ev domain.DomainEvent) {
	if c.bus != nil {
		c.bus.Publish(ev)
	}
}
