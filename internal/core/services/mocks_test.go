package services

import (
	"context"
	"sync"

	"github.com/custodia-labs/sercha-remote/internal/core/domain"
	"github.com/custodia-labs/sercha-remote/internal/core/ports/driven"
)

// mockGateway implements driven.SearchGateway for testing.
// Unset functions return empty results.
type mockGateway struct {
	QueryFunc   func(ctx context.Context, text string) ([]string, error)
	SuggestFunc func(ctx context.Context, prefix string) ([]string, error)
	SubmitFunc  func(ctx context.Context, id, content string) error

	mu          sync.Mutex
	queries     []string
	prefixes    []string
	submissions []domain.Draft
}

var _ driven.SearchGateway = (*mockGateway)(nil)

func (m *mockGateway) ExecuteQuery(ctx context.Context, text string) ([]string, error) {
	m.mu.Lock()
	m.queries = append(m.queries, text)
	m.mu.Unlock()
	if m.QueryFunc != nil {
		return m.QueryFunc(ctx, text)
	}
	return []string{}, nil
}

func (m *mockGateway) FetchSuggestions(ctx context.Context, prefix string) ([]string, error) {
	m.mu.Lock()
	m.prefixes = append(m.prefixes, prefix)
	m.mu.Unlock()
	if m.SuggestFunc != nil {
		return m.SuggestFunc(ctx, prefix)
	}
	return []string{}, nil
}

func (m *mockGateway) SubmitDocument(ctx context.Context, id, content string) error {
	m.mu.Lock()
	m.submissions = append(m.submissions, domain.Draft{ID: id, Content: content})
	m.mu.Unlock()
	if m.SubmitFunc != nil {
		return m.SubmitFunc(ctx, id, content)
	}
	return nil
}

func (m *mockGateway) Queries() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.queries...)
}

func (m *mockGateway) Prefixes() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.prefixes...)
}

func (m *mockGateway) Submissions() []domain.Draft {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]domain.Draft(nil), m.submissions...)
}

// recordingNotifier implements driven.Notifier and keeps every notification.
type recordingNotifier struct {
	mu            sync.Mutex
	notifications []domain.Notification
}

var _ driven.Notifier = (*recordingNotifier)(nil)

func (r *recordingNotifier) Notify(n domain.Notification) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notifications = append(r.notifications, n)
}

func (r *recordingNotifier) All() []domain.Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]domain.Notification(nil), r.notifications...)
}

// recordingTarget implements suggestionTarget without a session behind it.
type recordingTarget struct {
	mu      sync.Mutex
	current string
	applied [][]string
	cleared int
}

func (r *recordingTarget) applySuggestions(prefix string, suggestions []string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if prefix != r.current {
		return false
	}
	r.applied = append(r.applied, suggestions)
	return true
}

func (r *recordingTarget) clearSuggestions() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cleared++
}

func (r *recordingTarget) setCurrent(prefix string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.current = prefix
}

func (r *recordingTarget) Applied() [][]string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([][]string(nil), r.applied...)
}

func (r *recordingTarget) Cleared() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.cleared
}
