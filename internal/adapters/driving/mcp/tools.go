package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/sercha-remote/internal/core/domain"
)

// SearchInput is the input schema for the search tool.
type SearchInput struct {
	Query string `json:"query" jsonschema:"the full-text query to run"`
}

// SearchOutput is the output schema for the search tool.
type SearchOutput struct {
	Results []string `json:"results"`
	Count   int      `json:"count"`
}

// SuggestInput is the input schema for the suggest tool.
type SuggestInput struct {
	Prefix string `json:"prefix" jsonschema:"the partial query to complete"`
}

// SuggestOutput is the output schema for the suggest tool.
type SuggestOutput struct {
	Suggestions []string `json:"suggestions"`
}

// IndexInput is the input schema for the index tool.
type IndexInput struct {
	DocID   string `json:"doc_id" jsonschema:"identifier of the document"`
	Content string `json:"content" jsonschema:"text content of the document"`
}

// IndexOutput is the output schema for the index tool.
type IndexOutput struct {
	DocID   string `json:"doc_id"`
	Message string `json:"message"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "search",
		Description: "Run a full-text query against the remote search service. Results are unique and in ranked order.",
	}, s.handleSearch)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "suggest",
		Description: "Get autocomplete suggestions for a partial query",
	}, s.handleSuggest)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "index",
		Description: "Submit a document to the remote search index",
	}, s.handleIndex)
}

// handleSearch handles the search tool invocation.
func (s *Server) handleSearch(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchInput,
) (*mcp.CallToolResult, SearchOutput, error) {
	results, err := s.ports.Search.Query(ctx, input.Query)
	if err != nil {
		return nil, SearchOutput{}, fmt.Errorf("%s: %w", domain.MessageSearchFailed, err)
	}

	return nil, SearchOutput{Results: results, Count: len(results)}, nil
}

// handleSuggest handles the suggest tool invocation.
func (s *Server) handleSuggest(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SuggestInput,
) (*mcp.CallToolResult, SuggestOutput, error) {
	suggestions, err := s.ports.Search.Suggest(ctx, input.Prefix)
	if err != nil {
		return nil, SuggestOutput{}, fmt.Errorf("fetching suggestions: %w", err)
	}

	return nil, SuggestOutput{Suggestions: suggestions}, nil
}

// handleIndex handles the index tool invocation.
func (s *Server) handleIndex(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input IndexInput,
) (*mcp.CallToolResult, IndexOutput, error) {
	if err := s.ports.Search.Index(ctx, input.DocID, input.Content); err != nil {
		return nil, IndexOutput{}, fmt.Errorf("%s: %w", domain.MessageIndexFailed, err)
	}

	return nil, IndexOutput{DocID: input.DocID, Message: domain.MessageIndexed}, nil
}
