package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/sercha-remote/internal/core/domain"
)

// Helper to create a ReadResourceRequest with the given URI.
func makeReadResourceRequest(uri string) *mcp.ReadResourceRequest {
	return &mcp.ReadResourceRequest{
		Params: &mcp.ReadResourceParams{
			URI: uri,
		},
	}
}

func TestServer_handleSettingsResource(t *testing.T) {
	ctx := context.Background()

	t.Run("returns effective settings", func(t *testing.T) {
		settings := domain.DefaultAppSettings()
		settings.Service.BaseURL = "https://search.example.com"
		server, err := NewServer(&Ports{
			Search:   &mockSearchService{},
			Settings: &mockSettingsService{settings: settings, path: "/home/u/.sercha-remote/config.toml"},
		})
		require.NoError(t, err)

		result, err := server.handleSettingsResource(ctx, makeReadResourceRequest("sercha-remote://settings"))

		require.NoError(t, err)
		require.Len(t, result.Contents, 1)
		assert.Equal(t, "application/json", result.Contents[0].MIMEType)

		var info settingsInfo
		require.NoError(t, json.Unmarshal([]byte(result.Contents[0].Text), &info))
		assert.Equal(t, "https://search.example.com", info.BaseURL)
		assert.Equal(t, domain.DefaultTimeoutSeconds, info.TimeoutSeconds)
		assert.Equal(t, domain.DefaultDebounceMS, info.DebounceMS)
		assert.Equal(t, "/home/u/.sercha-remote/config.toml", info.ConfigPath)
	})

	t.Run("not found without settings service", func(t *testing.T) {
		server, err := NewServer(&Ports{Search: &mockSearchService{}})
		require.NoError(t, err)

		_, err = server.handleSettingsResource(ctx, makeReadResourceRequest("sercha-remote://settings"))

		assert.Error(t, err)
	})

	t.Run("settings error", func(t *testing.T) {
		server, err := NewServer(&Ports{
			Search:   &mockSearchService{},
			Settings: &mockSettingsService{err: errors.New("disk gone")},
		})
		require.NoError(t, err)

		_, err = server.handleSettingsResource(ctx, makeReadResourceRequest("sercha-remote://settings"))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "disk gone")
	})
}
