package services

import (
	"context"
	"sync"
	"time"

	"github.com/custodia-labs/sercha-remote/internal/core/domain"
	"github.com/custodia-labs/sercha-remote/internal/core/ports/driven"
	"github.com/custodia-labs/sercha-remote/internal/core/ports/driving"
	"github.com/custodia-labs/sercha-remote/internal/logger"
)

// Ensure Session implements the interface.
var _ driving.SessionService = (*Session)(nil)

// SessionOptions configures a Session.
type SessionOptions struct {
	// Debounce is the suggestion quiet period (default 300ms).
	Debounce time.Duration

	// ClearDraftOnSuccess empties the draft after a successful submission.
	// When false the draft is left as-is.
	ClearDraftOnSuccess bool
}

// Session is the interaction state holder for one interactive search session.
// It exclusively owns the query text, result set, suggestion set and draft
// document; every read and write goes through its lock.
//
// Query execution and indexing are neither debounced nor coalesced.
// Overlapping calls race and the last response to arrive wins.
type Session struct {
	search    driving.SearchService
	notifier  driven.Notifier
	suggester *SuggestionCoordinator

	clearDraftOnSuccess bool

	mu          sync.RWMutex
	query       string
	results     []string
	suggestions []string
	draft       domain.Draft

	listenersMu  sync.Mutex
	listeners    map[int]func(domain.Snapshot)
	nextListener int
}

// NewSession creates a session over the given search service.
// The notifier is optional. ctx bounds background suggestion requests.
func NewSession(
	ctx context.Context,
	search driving.SearchService,
	notifier driven.Notifier,
	opts SessionOptions,
) *Session {
	s := &Session{
		search:              search,
		notifier:            notifier,
		clearDraftOnSuccess: opts.ClearDraftOnSuccess,
		listeners:           make(map[int]func(domain.Snapshot)),
	}
	s.suggester = NewSuggestionCoordinator(ctx, search, s, opts.Debounce)
	return s
}

// SetQueryText updates the query text and notifies the suggestion coordinator.
func (s *Session) SetQueryText(text string) {
	s.mu.Lock()
	changed := s.query != text
	s.query = text
	s.mu.Unlock()

	if !changed {
		return
	}
	s.emit()
	s.suggester.Notify(text)
}

// ExecuteSearch runs the current query and replaces the result set.
func (s *Session) ExecuteSearch(ctx context.Context) error {
	s.mu.RLock()
	query := s.query
	s.mu.RUnlock()

	results, err := s.search.Query(ctx, query)
	if err != nil {
		logger.Error("Error fetching search results for %q: %v", query, err)
		s.notify(domain.Notification{
			Kind:    domain.NotificationSearchFailed,
			Message: domain.MessageSearchFailed,
			Err:     err,
		})
		return err
	}

	s.mu.Lock()
	s.results = results
	s.mu.Unlock()

	s.emit()
	return nil
}

// SetDraftID sets the draft document identifier.
func (s *Session) SetDraftID(id string) {
	s.mu.Lock()
	s.draft.ID = id
	s.mu.Unlock()
	s.emit()
}

// SetDraftContent sets the draft document content.
func (s *Session) SetDraftContent(content string) {
	s.mu.Lock()
	s.draft.Content = content
	s.mu.Unlock()
	s.emit()
}

// SubmitDraft indexes the current draft document. There is no retry.
func (s *Session) SubmitDraft(ctx context.Context) error {
	s.mu.RLock()
	draft := s.draft
	s.mu.RUnlock()

	if err := s.search.Index(ctx, draft.ID, draft.Content); err != nil {
		logger.Error("Error indexing document %q: %v", draft.ID, err)
		s.notify(domain.Notification{
			Kind:    domain.NotificationIndexFailed,
			Message: domain.MessageIndexFailed,
			Err:     err,
		})
		return err
	}

	if s.clearDraftOnSuccess {
		s.mu.Lock()
		if s.draft == draft {
			s.draft = domain.Draft{}
		}
		s.mu.Unlock()
		s.emit()
	}

	s.notify(domain.Notification{
		Kind:    domain.NotificationIndexed,
		Message: domain.MessageIndexed,
	})
	return nil
}

// Snapshot returns a consistent copy of the session state.
func (s *Session) Snapshot() domain.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return domain.Snapshot{
		Query:       s.query,
		Results:     append([]string(nil), s.results...),
		Suggestions: append([]string(nil), s.suggestions...),
		Draft:       s.draft,
	}
}

// SuggestionState reports the state of the suggestion stream.
func (s *Session) SuggestionState() domain.SuggestionState {
	return s.suggester.State()
}

// Subscribe registers fn to be called with a snapshot after every change.
// Listeners are called without the session lock held, from whichever
// goroutine made the change.
func (s *Session) Subscribe(fn func(domain.Snapshot)) func() {
	s.listenersMu.Lock()
	id := s.nextListener
	s.nextListener++
	s.listeners[id] = fn
	s.listenersMu.Unlock()

	return func() {
		s.listenersMu.Lock()
		delete(s.listeners, id)
		s.listenersMu.Unlock()
	}
}

// Close cancels pending suggestion work.
func (s *Session) Close() {
	s.suggester.Stop()
}

// applySuggestions replaces the suggestion set if prefix still matches the
// current query. The comparison and assignment happen under one lock so an
// out-of-order response can never overwrite suggestions for newer input.
func (s *Session) applySuggestions(prefix string, suggestions []string) bool {
	s.mu.Lock()
	if s.query != prefix {
		s.mu.Unlock()
		return false
	}
	s.suggestions = append([]string(nil), suggestions...)
	s.mu.Unlock()

	s.emit()
	return true
}

// clearSuggestions empties the suggestion set.
func (s *Session) clearSuggestions() {
	s.mu.Lock()
	hadSuggestions := len(s.suggestions) > 0
	s.suggestions = nil
	s.mu.Unlock()

	if hadSuggestions {
		s.emit()
	}
}

func (s *Session) notify(n domain.Notification) {
	if s.notifier == nil {
		return
	}
	s.notifier.Notify(n)
}

func (s *Session) emit() {
	s.listenersMu.Lock()
	if len(s.listeners) == 0 {
		s.listenersMu.Unlock()
		return
	}
	fns := make([]func(domain.Snapshot), 0, len(s.listeners))
	for _, fn := range s.listeners {
		fns = append(fns, fn)
	}
	s.listenersMu.Unlock()

	snap := s.Snapshot()
	for _, fn := range fns {
		fn(snap)
	}
}
