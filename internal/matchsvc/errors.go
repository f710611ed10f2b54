// Package matchsvc provides the HTTP client for the remote candidate-matching service.
package matchsvc

import "fmt"

// StatusError represents a response with a non-success HTTP status. Detail
// carries the server-supplied message when the error body could be parsed;
// the message surfaces to the user verbatim, so Error returns the detail
// alone when present.
type StatusError struct {
	StatusCode int
	Detail     string
}

func (e *StatusError) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	return fmt.Sprintf("request failed with status %d", e.StatusCode)
}

// TransportError represents a request that could not complete at all.
type TransportError struct {
	URL   string
	Cause error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("request to %s failed: %v", e.URL, e.Cause)
}

func (e *TransportError) Unwrap() error {
	return e.Cause
}
