// Package status provides status bar components for the TUI.
package status

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/sercha-remote/internal/adapters/driving/tui/styles"
)

// State represents the current activity for display.
type State string

const (
	StateReady     State = "ready"
	StateSearching State = "searching"
	StateIndexing  State = "indexing"
	StateResults   State = "results"
	StateSuccess   State = "success"
	StateError     State = "error"
)

// Bar displays the current activity or outcome and keybinding hints.
type Bar struct {
	styles      *styles.Styles
	hints       []key.Binding
	state       State
	message     string
	resultCount int
	width       int
}

// NewBar creates a new status bar component.
func NewBar(s *styles.Styles, hints []key.Binding) *Bar {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &Bar{
		styles: s,
		hints:  hints,
		state:  StateReady,
		width:  80,
	}
}

// View renders the status bar.
func (b *Bar) View() string {
	left := b.renderLeft()
	right := b.renderRight()

	padding := b.width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 1 {
		padding = 1
	}

	return b.styles.StatusBar.Width(b.width).Render(
		left + strings.Repeat(" ", padding) + right,
	)
}

func (b *Bar) renderLeft() string {
	switch b.state {
	case StateSearching:
		return b.styles.Muted.Render("Searching...")
	case StateIndexing:
		return b.styles.Muted.Render("Indexing...")
	case StateError:
		if b.message != "" {
			return b.styles.Error.Render(b.message)
		}
		return b.styles.Error.Render("Error")
	case StateSuccess:
		return b.styles.Success.Render(b.message)
	case StateResults:
		return b.styles.Normal.Render(fmt.Sprintf("%d results", b.resultCount))
	case StateReady:
	}
	return b.styles.Muted.Render("Ready")
}

func (b *Bar) renderRight() string {
	parts := make([]string, 0, len(b.hints))
	for _, binding := range b.hints {
		h := binding.Help()
		parts = append(parts, fmt.Sprintf("%s: %s", h.Key, h.Desc))
	}
	return b.styles.Muted.Render(strings.Join(parts, " | "))
}

// SetHints replaces the keybinding hints.
func (b *Bar) SetHints(hints []key.Binding) {
	b.hints = hints
}

// SetState sets the current state.
func (b *Bar) SetState(state State) {
	b.state = state
}

// State returns the current state.
func (b *Bar) State() State {
	return b.state
}

// SetMessage sets the message shown for success and error states.
func (b *Bar) SetMessage(message string) {
	b.message = message
}

// Message returns the current message.
func (b *Bar) Message() string {
	return b.message
}

// SetResultCount sets the result count.
func (b *Bar) SetResultCount(count int) {
	b.resultCount = count
}

// ResultCount returns the current result count.
func (b *Bar) ResultCount() int {
	return b.resultCount
}

// SetWidth sets the status bar width.
func (b *Bar) SetWidth(width int) {
	b.width = width
}

// Width returns the current width.
func (b *Bar) Width() int {
	return b.width
}

// Clear resets the status bar to the ready state.
func (b *Bar) Clear() {
	b.state = StateReady
	b.message = ""
	b.resultCount = 0
}
