package domain

// Snapshot is a consistent copy of the interactive session state.
// Slices are owned by the snapshot; callers may keep them.
type Snapshot struct {
	// Query is the current full-text search string.
	Query string

	// Results is the deduplicated result set of the last successful search.
	Results []string

	// Suggestions is the suggestion set of the last non-stale suggestion response.
	Suggestions []string

	// Draft is the document being composed for indexing.
	Draft Draft
}

// SuggestionState describes where a suggestion stream currently is.
type SuggestionState int

const (
	// SuggestionIdle means no timer is pending and no request is in flight.
	SuggestionIdle SuggestionState = iota

	// SuggestionPending means a debounce timer is waiting to fire.
	SuggestionPending

	// SuggestionInflight means a suggestion request is awaiting its response.
	SuggestionInflight
)

// String returns the string representation of the state.
func (s SuggestionState) String() string {
	switch s {
	case SuggestionIdle:
		return "idle"
	case SuggestionPending:
		return "pending"
	case SuggestionInflight:
		return "inflight"
	default:
		return "unknown"
	}
}
