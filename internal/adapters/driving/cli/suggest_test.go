package cli

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuggestCmd_Use(t *testing.T) {
	assert.Equal(t, "suggest [prefix]", suggestCmd.Use)
}

func TestSuggestCmd_PrintsInServerOrder(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	searchService = &MockSearchService{SuggestFunc: func(_ context.Context, prefix string) ([]string, error) {
		assert.Equal(t, "cat", prefix)
		return []string{"catalog", "cat", "category"}, nil
	}}

	out, err := execute("suggest", "cat")

	require.NoError(t, err)
	assert.Contains(t, out, "Suggestions:")
	assert.Regexp(t, `(?s)\[1\] catalog.*\[2\] cat\n.*\[3\] category`, out)
}

func TestSuggestCmd_Empty(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	searchService = &MockSearchService{SuggestFunc: func(context.Context, string) ([]string, error) {
		return nil, nil
	}}

	out, err := execute("suggest", "zzz")

	require.NoError(t, err)
	assert.Contains(t, out, "No suggestions")
}

func TestSuggestCmd_JSON(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	out, err := execute("suggest", "--json", "cat")

	require.NoError(t, err)
	var suggestions []string
	require.NoError(t, json.Unmarshal([]byte(out), &suggestions))
	assert.Equal(t, []string{"catalog", "catapult"}, suggestions)
}

func TestSuggestCmd_Failure(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	searchService = &MockSearchService{SuggestFunc: func(context.Context, string) ([]string, error) {
		return nil, errors.New("connection refused")
	}}

	_, err := execute("suggest", "cat")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "suggest failed")
}

func TestSuggestCmd_NotConfigured(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	searchService = nil

	_, err := execute("suggest", "cat")

	assert.ErrorContains(t, err, "search service not configured")
}
