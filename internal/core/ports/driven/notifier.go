package driven

import "github.com/custodia-labs/sercha-remote/internal/core/domain"

// Notifier surfaces user-visible outcomes (search failures, index results).
// Notify must not block for long; it may be called from any goroutine.
type Notifier interface {
	Notify(n domain.Notification)
}
