package pointer

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
)

// Event is a pointer press in terminal cell coordinates
type Event struct {
	X, Y   int
	Button tea.MouseButton
}

// Handler receives pointer events
type Handler func(Event)

// Rect is a screen rectangle in cells
type Rect struct {
	X, Y          int
	Width, Height int
}

// Contains reports whether the cell (x, y) lies inside r
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Empty reports whether r covers no cells
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Union returns the smallest rect covering both r and o
func (r Rect) Union(o Rect) Rect {
	if r.Empty() {
		return o
	}
	if o.Empty() {
		return r
	}
	x0, y0 := min(r.X, o.X), min(r.Y, o.Y)
	x1, y1 := max(r.X+r.Width, o.X+o.Width), max(r.Y+r.Height, o.Y+o.Height)
	return Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}

type subscription struct {
	id      uuid.UUID
	handler Handler
}

// Hub fans pointer events out to the components that are currently
// interested in them. It stands in for the document: components subscribe
// while active and must release the subscription when they go inactive.
//
// Dispatch is synchronous and runs on the caller's goroutine, so handlers
// run on the UI loop.
type Hub struct {
	mu   sync.Mutex
	subs []subscription
}

// NewHub creates an empty hub
func NewHub() *Hub {
	return &Hub{}
}

// Subscribe registers a handler and returns the function that releases it.
// Calling the release function more than once is harmless.
func (h *Hub) Subscribe(fn Handler) func() {
	h.mu.Lock()
	defer h.mu.Unlock()

	id := uuid.New()
	h.subs = append(h.subs, subscription{id: id, handler: fn})

	var once sync.Once
	return func() {
		once.Do(func() { h.remove(id) })
	}
}

func (h *Hub) remove(id uuid.UUID) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for i, s := range h.subs {
		if s.id == id {
			h.subs = append(h.subs[:i:i], h.subs[i+1:]...)
			return
		}
	}
}

// Dispatch delivers ev to every subscriber in subscription order. Handlers
// may unsubscribe while being called.
func (h *Hub) Dispatch(ev Event) {
	h.mu.Lock()
	subs := make([]subscription, len(h.subs))
	copy(subs, h.subs)
	h.mu.Unlock()

	for _, s := range subs {
		s.handler(ev)
	}
}

// Len returns the number of live subscriptions
func (h *Hub) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs)
}

// FromMouse converts a bubbletea mouse message to an Event. Only presses
// count as interactions; motion, release and wheel events are ignored.
func FromMouse(msg tea.MouseMsg) (Event, bool) {
	if msg.Action != tea.MouseActionPress || tea.MouseEvent(msg).IsWheel() {
		return Event{}, false
	}
	return Event{X: msg.X, Y: msg.Y, Button: msg.Button}, true
}
