package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventSearchSubmitted     EventType = "SearchSubmitted"
	EventSuggestionSelected  EventType = "SuggestionSelected"
	EventLookupFailed        EventType = "LookupFailed"
	EventNavigationRequested EventType = "NavigationRequested"
	EventError               EventType = "Error"
	EventConfigLoaded        EventType = "ConfigLoaded"
	EventConfigSaved         EventType = "ConfigSaved"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// SearchSubmittedEvent is emitted when free text is submitted from the search box
type SearchSubmittedEvent struct {
	Query string
}

func (e SearchSubmittedEvent) Type() EventType { return EventSearchSubmitted }

// SuggestionSelectedEvent is emitted when a suggestion is chosen
type SuggestionSelectedEvent struct {
	Suggestion Suggestion
}

func (e SuggestionSelectedEvent) Type() EventType { return EventSuggestionSelected }

// LookupFailedEvent is emitted when a suggestion lookup fails
type LookupFailedEvent struct {
	Query string
	Err   error
}

func (e LookupFailedEvent) Type() EventType { return EventLookupFailed }

// NavigationRequestedEvent is emitted whenever the router accepts a route
type NavigationRequestedEvent struct {
	Intent NavigationIntent
}

func (e NavigationRequestedEvent) Type() EventType { return EventNavigationRequested }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }
