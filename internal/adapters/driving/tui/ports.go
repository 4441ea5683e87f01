// Package tui provides an interactive terminal user interface for sercha-remote.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/custodia-labs/sercha-remote/internal/core/ports/driving"
)

// Ports aggregates the driving port interfaces used by the TUI.
type Ports struct {
	// Session holds the interactive query, suggestion, result and draft state.
	Session driving.SessionService

	// Settings shows and edits the configuration. Optional.
	Settings driving.SettingsService
}

// NewPorts creates a new Ports aggregate with the given services.
func NewPorts(session driving.SessionService, settings driving.SettingsService) *Ports {
	return &Ports{
		Session:  session,
		Settings: settings,
	}
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil {
		return ErrInvalidPorts
	}
	if p.Session == nil {
		return ErrMissingSessionService
	}
	return nil
}
