package cli

import (
	"bytes"
	"context"
	"sync"

	"github.com/custodia-labs/sercha-remote/internal/core/domain"
	"github.com/custodia-labs/sercha-remote/internal/core/ports/driven"
	"github.com/custodia-labs/sercha-remote/internal/core/ports/driving"
)

// MockSearchService implements driving.SearchService for testing.
type MockSearchService struct {
	QueryFunc   func(ctx context.Context, text string) ([]string, error)
	SuggestFunc func(ctx context.Context, prefix string) ([]string, error)
	IndexFunc   func(ctx context.Context, id, content string) error

	mu      sync.Mutex
	indexed []domain.Draft
}

var _ driving.SearchService = (*MockSearchService)(nil)

func (m *MockSearchService) Query(ctx context.Context, text string) ([]string, error) {
	if m.QueryFunc != nil {
		return m.QueryFunc(ctx, text)
	}
	return []string{"doc one", "doc two"}, nil
}

func (m *MockSearchService) Suggest(ctx context.Context, prefix string) ([]string, error) {
	if m.SuggestFunc != nil {
		return m.SuggestFunc(ctx, prefix)
	}
	return []string{prefix + "alog", prefix + "apult"}, nil
}

func (m *MockSearchService) Index(ctx context.Context, id, content string) error {
	m.mu.Lock()
	m.indexed = append(m.indexed, domain.Draft{ID: id, Content: content})
	m.mu.Unlock()
	if m.IndexFunc != nil {
		return m.IndexFunc(ctx, id, content)
	}
	return nil
}

// Indexed returns every submitted document.
func (m *MockSearchService) Indexed() []domain.Draft {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]domain.Draft(nil), m.indexed...)
}

// MockSettingsService implements driving.SettingsService for testing.
type MockSettingsService struct {
	Settings    *domain.AppSettings
	GetErr      error
	SetFunc     func(key, value string) error
	ValidateErr error
}

var _ driving.SettingsService = (*MockSettingsService)(nil)

func (m *MockSettingsService) Get() (*domain.AppSettings, error) {
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	if m.Settings == nil {
		return domain.DefaultAppSettings(), nil
	}
	return m.Settings, nil
}

func (m *MockSettingsService) Set(key, value string) error {
	if m.SetFunc != nil {
		return m.SetFunc(key, value)
	}
	return nil
}

func (m *MockSettingsService) Keys() []string {
	return []string{domain.SettingBaseURL}
}

func (m *MockSettingsService) Validate() error { return m.ValidateErr }

func (m *MockSettingsService) ConfigPath() string { return "/home/test/.sercha-remote/config.toml" }

// setupTestServices installs mock services and resets command state.
// The returned function restores the previous services.
func setupTestServices() func() {
	oldSearch, oldSettings, oldSession := searchService, settingsService, newSession
	oldBootstrap, oldBootstrapErr := bootstrap, bootstrapErr

	searchService = &MockSearchService{}
	settingsService = &MockSettingsService{}
	newSession = func(context.Context, driven.Notifier) driving.SessionService { return nil }
	bootstrap = nil
	bootstrapErr = nil

	return func() {
		searchService, settingsService, newSession = oldSearch, oldSettings, oldSession
		bootstrap, bootstrapErr = oldBootstrap, oldBootstrapErr
		resetCommandState()
	}
}

func resetCommandState() {
	searchJSON = false
	suggestJSON = false
	tuiLogFile = ""
	verbose = false
	baseURL = ""
	rootCmd.SetArgs(nil)
	rootCmd.SetIn(nil)
	rootCmd.SetOut(nil)
	rootCmd.SetErr(nil)
}

// execute runs the root command with args and returns its combined output.
func execute(args ...string) (string, error) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()
	return buf.String(), err
}
