package remote

import (
	"context"

	"golang.org/x/time/rate"
)

// Throttle spaces out outbound requests with a token bucket.
// It only ever delays a request; it never drops or merges one.
// A nil or zero-rate Throttle lets every request through immediately.
type Throttle struct {
	bucket *rate.Limiter
}

// NewThrottle creates a throttle allowing perSecond requests per second with
// an equal burst. perSecond <= 0 disables throttling.
func NewThrottle(perSecond int) *Throttle {
	if perSecond <= 0 {
		return &Throttle{}
	}
	return &Throttle{
		bucket: rate.NewLimiter(rate.Limit(perSecond), perSecond),
	}
}

// Wait blocks until a request may be sent or ctx is done.
func (t *Throttle) Wait(ctx context.Context) error {
	if !t.Enabled() {
		return nil
	}
	return t.bucket.Wait(ctx)
}

// Enabled reports whether requests are being throttled.
func (t *Throttle) Enabled() bool {
	return t != nil && t.bucket != nil
}
