package driving

import (
	"context"

	"github.com/custodia-labs/sercha-remote/internal/core/domain"
)

// SessionService holds the state of one interactive search session and
// mediates every read and write between a user surface and the remote service.
type SessionService interface {
	// SetQueryText updates the query and schedules a debounced suggestion
	// request. It never executes a search.
	SetQueryText(text string)

	// ExecuteSearch runs the current query and replaces the result set.
	// On failure the result set is kept and a failure notification is raised.
	ExecuteSearch(ctx context.Context) error

	// SetDraftID sets the identifier of the draft document.
	SetDraftID(id string)

	// SetDraftContent sets the content of the draft document.
	SetDraftContent(content string)

	// SubmitDraft indexes the draft document and raises a success or
	// failure notification.
	SubmitDraft(ctx context.Context) error

	// Snapshot returns a consistent copy of the session state.
	Snapshot() domain.Snapshot

	// SuggestionState reports the state of the suggestion stream.
	SuggestionState() domain.SuggestionState

	// Subscribe registers fn to be called after every state change.
	// The returned function removes the subscription.
	Subscribe(fn func(domain.Snapshot)) (cancel func())

	// Close cancels pending suggestion work.
	Close()
}
