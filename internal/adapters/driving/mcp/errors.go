// Package mcp provides an MCP (Model Context Protocol) server adapter for sercha-remote.
// It lets AI assistants query, autocomplete against and index into the remote
// search service.
package mcp

import "errors"

// ErrMissingSearchService is returned when the search service is not provided.
var ErrMissingSearchService = errors.New("mcp: search service is required")
