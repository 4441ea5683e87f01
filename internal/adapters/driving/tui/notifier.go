package tui

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/sercha-remote/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/sercha-remote/internal/core/domain"
	"github.com/custodia-labs/sercha-remote/internal/core/ports/driven"
	"github.com/custodia-labs/sercha-remote/internal/logger"
)

// Ensure Notifier implements the driven port.
var _ driven.Notifier = (*Notifier)(nil)

// Sender delivers messages into a running program. *tea.Program satisfies it.
type Sender interface {
	Send(msg tea.Msg)
}

// Notifier forwards session notifications into the TUI as
// messages.NotificationRaised. Notifications raised while no program is
// attached are logged and dropped.
type Notifier struct {
	mu     sync.Mutex
	sender Sender
}

// NewNotifier creates a detached notifier.
func NewNotifier() *Notifier {
	return &Notifier{}
}

// Attach routes subsequent notifications to sender.
func (n *Notifier) Attach(sender Sender) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sender = sender
}

// Detach stops delivery.
func (n *Notifier) Detach() {
	n.Attach(nil)
}

// Notify implements driven.Notifier. Delivery happens on its own goroutine
// because Session calls Notify from inside command functions, and Send
// blocks until the event loop receives the message.
func (n *Notifier) Notify(notification domain.Notification) {
	n.mu.Lock()
	sender := n.sender
	n.mu.Unlock()

	if sender == nil {
		logger.Debug("tui: dropping notification %q: no program attached", notification.Message)
		return
	}
	go sender.Send(messages.NotificationRaised{Notification: notification})
}
