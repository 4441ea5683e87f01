package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/sercha-remote/internal/core/domain"
)

const (
	testDebounce = 20 * time.Millisecond
	waitFor      = time.Second
	tick         = 5 * time.Millisecond
)

func newTestCoordinator(t *testing.T, gw *mockGateway, delay time.Duration) (*SuggestionCoordinator, *recordingTarget) {
	t.Helper()
	target := &recordingTarget{}
	c := NewSuggestionCoordinator(context.Background(), NewSearchService(gw), target, delay)
	t.Cleanup(c.Stop)
	return c, target
}

func TestNewSuggestionCoordinator_DefaultDelay(t *testing.T) {
	c, _ := newTestCoordinator(t, &mockGateway{}, 0)
	assert.Equal(t, DefaultDebounce, c.Delay())
	assert.Equal(t, 300*time.Millisecond, c.Delay())
}

func TestSuggestionCoordinator_CoalescesRapidInput(t *testing.T) {
	gw := &mockGateway{
		SuggestFunc: func(_ context.Context, prefix string) ([]string, error) {
			return []string{prefix + "alog"}, nil
		},
	}
	c, target := newTestCoordinator(t, gw, testDebounce)

	target.setCurrent("cat")
	for _, prefix := range []string{"c", "ca", "cat"} {
		c.Notify(prefix)
	}

	require.Eventually(t, func() bool { return len(gw.Prefixes()) == 1 }, waitFor, tick)
	assert.Never(t, func() bool { return len(gw.Prefixes()) > 1 }, 5*testDebounce, tick)
	assert.Equal(t, []string{"cat"}, gw.Prefixes())
	assert.Equal(t, [][]string{{"catalog"}}, target.Applied())
}

func TestSuggestionCoordinator_SeparatedInputIssuesEachRequest(t *testing.T) {
	gw := &mockGateway{}
	c, target := newTestCoordinator(t, gw, testDebounce)

	target.setCurrent("ca")
	c.Notify("ca")
	require.Eventually(t, func() bool { return len(gw.Prefixes()) == 1 }, waitFor, tick)

	target.setCurrent("cat")
	c.Notify("cat")
	require.Eventually(t, func() bool { return len(gw.Prefixes()) == 2 }, waitFor, tick)

	assert.Equal(t, []string{"ca", "cat"}, gw.Prefixes())
}

func TestSuggestionCoordinator_EmptyPrefixClearsWithoutRequest(t *testing.T) {
	gw := &mockGateway{}
	c, target := newTestCoordinator(t, gw, testDebounce)

	c.Notify("ca")
	c.Notify("")

	assert.Equal(t, 1, target.Cleared(), "clear happens synchronously")
	assert.Never(t, func() bool { return len(gw.Prefixes()) > 0 }, 5*testDebounce, tick)
	assert.Equal(t, domain.SuggestionIdle, c.State())
}

func TestSuggestionCoordinator_States(t *testing.T) {
	release := make(chan struct{})
	gw := &mockGateway{
		SuggestFunc: func(_ context.Context, _ string) ([]string, error) {
			<-release
			return []string{"cat"}, nil
		},
	}
	c, target := newTestCoordinator(t, gw, testDebounce)
	target.setCurrent("ca")

	assert.Equal(t, domain.SuggestionIdle, c.State())

	c.Notify("ca")
	assert.Equal(t, domain.SuggestionPending, c.State())

	require.Eventually(t, func() bool { return c.State() == domain.SuggestionInflight }, waitFor, tick)

	close(release)
	require.Eventually(t, func() bool { return c.State() == domain.SuggestionIdle }, waitFor, tick)
	assert.Equal(t, [][]string{{"cat"}}, target.Applied())
}

func TestSuggestionCoordinator_FailureLeavesTargetUntouched(t *testing.T) {
	gw := &mockGateway{
		SuggestFunc: func(_ context.Context, _ string) ([]string, error) {
			return nil, &domain.TransportError{Op: "suggest", Err: errors.New("connection refused")}
		},
	}
	c, target := newTestCoordinator(t, gw, testDebounce)
	target.setCurrent("ca")

	c.Notify("ca")

	require.Eventually(t, func() bool { return len(gw.Prefixes()) == 1 }, waitFor, tick)
	require.Eventually(t, func() bool { return c.State() == domain.SuggestionIdle }, waitFor, tick)
	assert.Empty(t, target.Applied())
	assert.Zero(t, target.Cleared())
}

func TestSuggestionCoordinator_StopCancelsPendingTimer(t *testing.T) {
	gw := &mockGateway{}
	c, _ := newTestCoordinator(t, gw, testDebounce)

	c.Notify("ca")
	c.Stop()

	assert.Equal(t, domain.SuggestionIdle, c.State())
	assert.Never(t, func() bool { return len(gw.Prefixes()) > 0 }, 5*testDebounce, tick)
}

func TestSuggestionCoordinator_NotifyAfterStop(t *testing.T) {
	gw := &mockGateway{}
	c, target := newTestCoordinator(t, gw, testDebounce)
	c.Stop()

	c.Notify("ca")
	c.Notify("")

	assert.Equal(t, domain.SuggestionIdle, c.State())
	assert.Equal(t, 1, target.Cleared())
	assert.Never(t, func() bool { return len(gw.Prefixes()) > 0 }, 5*testDebounce, tick)
}

func TestSuggestionCoordinator_StopCancelsInflightContext(t *testing.T) {
	gw := &mockGateway{
		SuggestFunc: func(ctx context.Context, _ string) ([]string, error) {
			<-ctx.Done()
			return nil, ctx.Err()
		},
	}
	c, target := newTestCoordinator(t, gw, testDebounce)
	target.setCurrent("ca")

	c.Notify("ca")
	require.Eventually(t, func() bool { return c.State() == domain.SuggestionInflight }, waitFor, tick)

	c.Stop()

	require.Eventually(t, func() bool { return c.State() == domain.SuggestionIdle }, waitFor, tick)
	assert.Empty(t, target.Applied())
}
