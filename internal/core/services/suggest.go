package services

import (
	"context"
	"sync"
	"time"

	"github.com/custodia-labs/sercha-remote/internal/core/domain"
	"github.com/custodia-labs/sercha-remote/internal/core/ports/driving"
	"github.com/custodia-labs/sercha-remote/internal/logger"
)

// DefaultDebounce is the quiet period before a suggestion request is issued.
const DefaultDebounce = 300 * time.Millisecond

// suggestionTarget receives suggestion results. applySuggestions performs
// the staleness check and reports whether the suggestions were applied.
type suggestionTarget interface {
	applySuggestions(prefix string, suggestions []string) bool
	clearSuggestions()
}

// SuggestionCoordinator turns a stream of prefix changes into a minimal set
// of suggestion requests using a trailing debounce.
//
// Every Notify cancels the pending timer and bumps a generation counter.
// A timer only issues its request if its generation is still current, so a
// superseded timer never fires a request even if it raced with Stop.
type SuggestionCoordinator struct {
	search driving.SearchService
	target suggestionTarget
	delay  time.Duration

	ctx    context.Context
	cancel context.CancelFunc

	mu         sync.Mutex
	timer      *time.Timer
	generation uint64
	inflight   int
	stopped    bool
}

// NewSuggestionCoordinator creates a coordinator that delivers results to target.
// A non-positive delay selects DefaultDebounce.
func NewSuggestionCoordinator(
	ctx context.Context,
	search driving.SearchService,
	target suggestionTarget,
	delay time.Duration,
) *SuggestionCoordinator {
	if delay <= 0 {
		delay = DefaultDebounce
	}
	ctx, cancel := context.WithCancel(ctx)
	return &SuggestionCoordinator{
		search: search,
		target: target,
		delay:  delay,
		ctx:    ctx,
		cancel: cancel,
	}
}

// Delay returns the debounce window.
func (c *SuggestionCoordinator) Delay() time.Duration {
	return c.delay
}

// Notify reports a new prefix value. An empty prefix clears suggestions
// immediately without a request; any other value (re)starts the debounce timer.
func (c *SuggestionCoordinator) Notify(prefix string) {
	c.mu.Lock()
	c.generation++
	c.stopTimerLocked()

	if prefix == "" {
		c.mu.Unlock()
		c.target.clearSuggestions()
		return
	}
	if c.stopped {
		c.mu.Unlock()
		return
	}

	gen := c.generation
	c.timer = time.AfterFunc(c.delay, func() {
		c.fire(gen, prefix)
	})
	c.mu.Unlock()
}

// fire issues the suggestion request for a timer that was not superseded.
func (c *SuggestionCoordinator) fire(gen uint64, prefix string) {
	c.mu.Lock()
	if gen != c.generation || c.stopped {
		c.mu.Unlock()
		return
	}
	c.timer = nil
	c.inflight++
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		c.inflight--
		c.mu.Unlock()
	}()

	suggestions, err := c.search.Suggest(c.ctx, prefix)
	if err != nil {
		// Suggestions are best effort; the current set stays on screen.
		logger.Debug("Suggestions for %q failed: %v", prefix, err)
		return
	}

	if !c.target.applySuggestions(prefix, suggestions) {
		logger.Debug("Discarding stale suggestions for %q", prefix)
	}
}

// State reports where the suggestion stream is. A pending timer takes
// precedence over an in-flight request since its result will supersede it.
func (c *SuggestionCoordinator) State() domain.SuggestionState {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch {
	case c.timer != nil:
		return domain.SuggestionPending
	case c.inflight > 0:
		return domain.SuggestionInflight
	default:
		return domain.SuggestionIdle
	}
}

// Stop cancels the pending timer and any in-flight request.
// Notify calls after Stop only clear suggestions.
func (c *SuggestionCoordinator) Stop() {
	c.mu.Lock()
	c.stopped = true
	c.generation++
	c.stopTimerLocked()
	c.mu.Unlock()

	c.cancel()
}

// stopTimerLocked cancels the pending timer. Caller must hold c.mu.
func (c *SuggestionCoordinator) stopTimerLocked() {
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
}
