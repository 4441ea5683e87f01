package mcp

import (
	"context"

	"github.com/custodia-labs/sercha-remote/internal/core/domain"
)

// mockSearchService is a mock implementation of driving.SearchService.
type mockSearchService struct {
	results     []string
	suggestions []string
	err         error

	indexedID      string
	indexedContent string
	indexCalls     int
}

func (m *mockSearchService) Query(_ context.Context, _ string) ([]string, error) {
	return m.results, m.err
}

func (m *mockSearchService) Suggest(_ context.Context, _ string) ([]string, error) {
	return m.suggestions, m.err
}

func (m *mockSearchService) Index(_ context.Context, id, content string) error {
	m.indexCalls++
	m.indexedID = id
	m.indexedContent = content
	return m.err
}

// mockSettingsService is a mock implementation of driving.SettingsService.
type mockSettingsService struct {
	settings *domain.AppSettings
	path     string
	err      error
}

func (m *mockSettingsService) Get() (*domain.AppSettings, error) {
	return m.settings, m.err
}

func (m *mockSettingsService) Set(_, _ string) error { return m.err }

func (m *mockSettingsService) Keys() []string { return nil }

func (m *mockSettingsService) Validate() error { return m.err }

func (m *mockSettingsService) ConfigPath() string { return m.path }
