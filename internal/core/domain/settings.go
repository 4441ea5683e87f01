package domain

import (
	"fmt"
	"net/url"
	"strconv"
	"time"
)

// Setting keys as they appear in the config file.
const (
	SettingBaseURL             = "service.base_url"
	SettingTimeoutSeconds      = "service.timeout_seconds"
	SettingMaxRequestsPerSec   = "service.max_requests_per_second"
	SettingDebounceMS          = "suggest.debounce_ms"
	SettingClearDraftOnSuccess = "index.clear_draft_on_success"
)

// Default settings values.
const (
	DefaultBaseURL        = "http://localhost:8080"
	DefaultTimeoutSeconds = 10
	DefaultDebounceMS     = 300
)

// AppSettings holds all sercha-remote settings.
type AppSettings struct {
	Service ServiceSettings
	Suggest SuggestSettings
	Index   IndexSettings
}

// ServiceSettings configures the remote search service connection.
type ServiceSettings struct {
	// BaseURL is the search service endpoint.
	BaseURL string

	// TimeoutSeconds bounds a single HTTP exchange.
	TimeoutSeconds int

	// MaxRequestsPerSecond throttles outbound requests. 0 disables throttling.
	MaxRequestsPerSecond int
}

// Timeout returns the request timeout as a duration.
func (s ServiceSettings) Timeout() time.Duration {
	return time.Duration(s.TimeoutSeconds) * time.Second
}

// SuggestSettings configures autocomplete timing.
type SuggestSettings struct {
	// DebounceMS is the quiet period before a suggestion request is issued.
	DebounceMS int
}

// Debounce returns the debounce window as a duration.
func (s SuggestSettings) Debounce() time.Duration {
	return time.Duration(s.DebounceMS) * time.Millisecond
}

// IndexSettings configures document submission.
type IndexSettings struct {
	// ClearDraftOnSuccess empties the draft after a successful submission.
	ClearDraftOnSuccess bool
}

// DefaultAppSettings returns settings with default values.
func DefaultAppSettings() *AppSettings {
	return &AppSettings{
		Service: ServiceSettings{
			BaseURL:        DefaultBaseURL,
			TimeoutSeconds: DefaultTimeoutSeconds,
		},
		Suggest: SuggestSettings{
			DebounceMS: DefaultDebounceMS,
		},
	}
}

// Validate checks that the settings are usable.
func (s *AppSettings) Validate() error {
	u, err := url.Parse(s.Service.BaseURL)
	if err != nil {
		return fmt.Errorf("%w: service.base_url: %v", ErrInvalidSetting, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%w: service.base_url must use http or https, got %q", ErrInvalidSetting, s.Service.BaseURL)
	}
	if u.Host == "" {
		return fmt.Errorf("%w: service.base_url has no host", ErrInvalidSetting)
	}
	if s.Service.TimeoutSeconds <= 0 {
		return fmt.Errorf("%w: service.timeout_seconds must be positive", ErrInvalidSetting)
	}
	if s.Service.MaxRequestsPerSecond < 0 {
		return fmt.Errorf("%w: service.max_requests_per_second must not be negative", ErrInvalidSetting)
	}
	if s.Suggest.DebounceMS <= 0 {
		return fmt.Errorf("%w: suggest.debounce_ms must be positive", ErrInvalidSetting)
	}
	return nil
}

// Value renders the setting stored under key. It reports false for
// unrecognised keys.
func (s *AppSettings) Value(key string) (string, bool) {
	switch key {
	case SettingBaseURL:
		return s.Service.BaseURL, true
	case SettingTimeoutSeconds:
		return strconv.Itoa(s.Service.TimeoutSeconds), true
	case SettingMaxRequestsPerSec:
		return strconv.Itoa(s.Service.MaxRequestsPerSecond), true
	case SettingDebounceMS:
		return strconv.Itoa(s.Suggest.DebounceMS), true
	case SettingClearDraftOnSuccess:
		return strconv.FormatBool(s.Index.ClearDraftOnSuccess), true
	}
	return "", false
}
