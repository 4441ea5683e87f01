package driving

import "context"

// SearchService provides one-shot access to the remote search service.
type SearchService interface {
	// Query executes a full-text query and returns deduplicated results
	// in first-seen order.
	Query(ctx context.Context, text string) ([]string, error)

	// Suggest returns autocomplete suggestions for a prefix.
	// An empty prefix returns no suggestions without contacting the service.
	Suggest(ctx context.Context, prefix string) ([]string, error)

	// Index submits a document to the service.
	Index(ctx context.Context, id, content string) error
}
