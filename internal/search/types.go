package search

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"cinegrip/internal/domain"
)

// DefaultDelay is the debounce window used when none is configured
const DefaultDelay = 300 * time.Millisecond

var (
	// ErrSuggestionsHidden is returned when selecting while the list is hidden
	ErrSuggestionsHidden = errors.New("suggestions are hidden")
	// ErrUnknownSuggestion is returned when the suggestion is not in the current list
	ErrUnknownSuggestion = errors.New("suggestion is not in the current list")
)

// Lookup is the multi-entity lookup capability
type Lookup interface {
	Lookup(ctx context.Context, query string) ([]domain.Suggestion, error)
}

// LookupFunc adapts a function to Lookup
type LookupFunc func(ctx context.Context, query string) ([]domain.Suggestion, error)

func (f LookupFunc) Lookup(ctx context.Context, query string) ([]domain.Suggestion, error) {
	return f(ctx, query)
}

// Navigator performs route transitions
type Navigator interface {
	GoTo(route string, params map[string]string)
}

// NavigatorFunc adapts a function to Navigator
type NavigatorFunc func(route string, params map[string]string)

func (f NavigatorFunc) GoTo(route string, params map[string]string) { f(route, params) }

// State is a snapshot of the search session
type State struct {
	Query       string
	InFlight    bool
	Err         error
	Suggestions []domain.Suggestion
	Visible     bool
}

// debounceFiredMsg is posted by the debounce timer
type debounceFiredMsg struct {
	controller uuid.UUID
	seq        uint64
}

// lookupSettledMsg carries a finished lookup back to the loop
type lookupSettledMsg struct {
	controller  uuid.UUID
	seq         uint64
	query       string
	suggestions []domain.Suggestion
	err         error
	took        time.Duration
}
