package services

import (
	"context"
	"fmt"

	"github.com/custodia-labs/sercha-remote/internal/core/domain"
	"github.com/custodia-labs/sercha-remote/internal/core/ports/driven"
	"github.com/custodia-labs/sercha-remote/internal/core/ports/driving"
	"github.com/custodia-labs/sercha-remote/internal/logger"
)

// Ensure SearchService implements the interface.
var _ driving.SearchService = (*SearchService)(nil)

// SearchService is the stateless facade over the remote search gateway.
// It owns result normalisation so every surface sees the same result set.
type SearchService struct {
	gateway driven.SearchGateway
}

// NewSearchService creates a new search service.
func NewSearchService(gateway driven.SearchGateway) *SearchService {
	return &SearchService{gateway: gateway}
}

// Query executes a full-text query and deduplicates the response.
func (s *SearchService) Query(ctx context.Context, text string) ([]string, error) {
	logger.Section("Query Execution")
	logger.Debug("Searching for: %q", text)

	if s.gateway == nil {
		return nil, fmt.Errorf("query: %w", domain.ErrNotConfigured)
	}

	raw, err := s.gateway.ExecuteQuery(ctx, text)
	if err != nil {
		logger.Warn("Error fetching search results: %v", err)
		return nil, err
	}

	results := Deduplicate(raw)
	logger.Debug("Search response: %d items, %d unique", len(raw), len(results))
	return results, nil
}

// Suggest fetches suggestions for a non-empty prefix.
func (s *SearchService) Suggest(ctx context.Context, prefix string) ([]string, error) {
	if prefix == "" {
		return []string{}, nil
	}
	if s.gateway == nil {
		return nil, fmt.Errorf("suggest: %w", domain.ErrNotConfigured)
	}

	logger.Debug("Fetching suggestions for: %q", prefix)
	suggestions, err := s.gateway.FetchSuggestions(ctx, prefix)
	if err != nil {
		logger.Debug("Error fetching suggestions: %v", err)
		return nil, err
	}
	if suggestions == nil {
		suggestions = []string{}
	}
	return suggestions, nil
}

// Index submits a document to the remote service.
func (s *SearchService) Index(ctx context.Context, id, content string) error {
	logger.Section("Index Document")
	logger.Debug("Indexing document %q (%d bytes)", id, len(content))

	if s.gateway == nil {
		return fmt.Errorf("index: %w", domain.ErrNotConfigured)
	}

	if err := s.gateway.SubmitDocument(ctx, id, content); err != nil {
		logger.Warn("Error indexing document %q: %v", id, err)
		return err
	}

	logger.Info("Document %q indexed", id)
	return nil
}
