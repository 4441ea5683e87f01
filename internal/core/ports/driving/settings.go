package driving

import "github.com/custodia-labs/sercha-remote/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get returns the effective settings: defaults, overlaid by the config
	// file, overlaid by environment overrides.
	Get() (*domain.AppSettings, error)

	// Set stores a single setting by key after validating it.
	Set(key, value string) error

	// Keys lists the recognised setting keys.
	Keys() []string

	// Validate checks the effective settings.
	Validate() error

	// ConfigPath returns where settings are persisted.
	ConfigPath() string
}
