package search

import "errors"

// Error definitions for the search view.
var (
	// ErrNoSession indicates that no session was provided.
	ErrNoSession = errors.New("search session is required")
)
