// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/custodia-labs/sercha-remote/internal/core/domain"
)

// StateChanged is sent when the session state changed outside Update,
// for example when a debounced suggestion response arrives.
// Views read the current state from the session when they receive it.
type StateChanged struct{}

// SearchCompleted signals that a query execution finished.
// The result set itself lives in the session.
type SearchCompleted struct {
	Err error
}

// SubmitCompleted signals that a draft submission finished.
type SubmitCompleted struct {
	Err error
}

// NotificationRaised carries a user-visible outcome from the session.
type NotificationRaised struct {
	Notification domain.Notification
}

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewMenu is the main navigation menu.
	ViewMenu ViewType = iota
	// ViewSearch is the search input, suggestions and results view.
	ViewSearch
	// ViewIndex is the document indexing form.
	ViewIndex
	// ViewSettings shows the effective settings.
	ViewSettings
	// ViewHelp is the help/keybindings view.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewMenu:
		return "menu"
	case ViewSearch:
		return "search"
	case ViewIndex:
		return "index"
	case ViewSettings:
		return "settings"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// SettingsLoaded carries the effective application settings.
type SettingsLoaded struct {
	Settings *domain.AppSettings
	Path     string
	Err      error
}

// SettingsSaved signals that a single setting was stored.
type SettingsSaved struct {
	Key string
	Err error
}

// Quit signals the application should exit.
type Quit struct{}
