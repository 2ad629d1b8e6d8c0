package tmdb

import (
	"errors"
	"fmt"
)

// ErrMissingCredentials is returned when neither an API key nor an access token is configured
var ErrMissingCredentials = errors.New("tmdb credentials not configured")

// LookupError describes a failed call to the metadata API: transport
// failure, non-2xx status or an undecodable body.
type LookupError struct {
	Op     string // API path without parameters, e.g. "search/multi"
	Query  string // search text, "" for id based calls
	Status int    // HTTP status, 0 when no response was received
	Err    error
}

func (e *LookupError) Error() string {
	msg := "tmdb " + e.Op
	if e.Query != "" {
		msg += fmt.Sprintf(" %q", e.Query)
	}
	if e.Status != 0 {
		msg += fmt.Sprintf(": status %d", e.Status)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *LookupError) Unwrap() error {
	return e.Err
}

// Temporary reports whether retrying later could succeed
func (e *LookupError) Temporary() bool {
	return e.Status == 0 || e.Status == 429 || e.Status >= 500
}
