package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// uriScheme is the custom URI scheme for sercha-remote resources.
const uriScheme = "sercha-remote://"

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "settings",
		Name:        "settings",
		Description: "Effective client settings, including the search service URL",
		MIMEType:    "application/json",
	}, s.handleSettingsResource)
}

// settingsInfo is the JSON shape of the settings resource.
type settingsInfo struct {
	BaseURL              string `json:"base_url"`
	TimeoutSeconds       int    `json:"timeout_seconds"`
	MaxRequestsPerSecond int    `json:"max_requests_per_second"`
	DebounceMS           int    `json:"debounce_ms"`
	ConfigPath           string `json:"config_path,omitempty"`
}

// handleSettingsResource returns the effective settings.
func (s *Server) handleSettingsResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.Settings == nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	settings, err := s.ports.Settings.Get()
	if err != nil {
		return nil, fmt.Errorf("loading settings: %w", err)
	}

	data, err := json.MarshalIndent(settingsInfo{
		BaseURL:              settings.Service.BaseURL,
		TimeoutSeconds:       settings.Service.TimeoutSeconds,
		MaxRequestsPerSecond: settings.Service.MaxRequestsPerSecond,
		DebounceMS:           settings.Suggest.DebounceMS,
		ConfigPath:           s.ports.Settings.ConfigPath(),
	}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling settings: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
