package driven

import "context"

// SearchGateway issues the three remote search service operations.
// Implementations perform no caching and no retries. Failures are reported
// as *domain.TransportError or *domain.ServiceError.
type SearchGateway interface {
	// ExecuteQuery runs a full-text query. Text is sent unmodified, even when empty.
	// The returned sequence may contain duplicates.
	ExecuteQuery(ctx context.Context, text string) ([]string, error)

	// FetchSuggestions returns autocomplete suggestions for a prefix, in service order.
	FetchSuggestions(ctx context.Context, prefix string) ([]string, error)

	// SubmitDocument indexes a document. It succeeds only if the service
	// answers with a 2xx status.
	SubmitDocument(ctx context.Context, id, content string) error
}
