package ui

import (
	"cinegrip/internal/domain"
	"cinegrip/internal/eventbus"
)

// EventMsg wraps a domain event for the UI
type EventMsg struct {
	Event eventbus.DomainEvent
}

// listLoadedMsg carries the entries of a listing screen
type listLoadedMsg struct {
	visit uint64
	items []domain.TrendingItem
	err   error
}

// resultsLoadedMsg carries the results of a submitted search
type resultsLoadedMsg struct {
	visit   uint64
	results []domain.Suggestion
	err     error
}

// workLoadedMsg carries a movie or TV detail record
type workLoadedMsg struct {
	visit uint64
	work  *domain.WorkDetails
	err   error
}

// personLoadedMsg carries a person detail record
type personLoadedMsg struct {
	visit  uint64
	person *domain.PersonDetails
	err    error
}

// pagerMsg contains the result of a pager command
type pagerMsg struct {
	content string
	err     error
}

// pauseRenderingMsg signals that the pager owns the terminal
type pauseRenderingMsg struct{}

// resumeRenderingMsg signals that the pager has exited
type resumeRenderingMsg struct{}

// clearStatusMsg clears the status line
type clearStatusMsg struct {
	seq int
}
