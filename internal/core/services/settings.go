package services

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/custodia-labs/sercha-remote/internal/core/domain"
	"github.com/custodia-labs/sercha-remote/internal/core/ports/driven"
	"github.com/custodia-labs/sercha-remote/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	KeyBaseURL             = domain.SettingBaseURL
	KeyTimeoutSeconds      = domain.SettingTimeoutSeconds
	KeyMaxRequestsPerSec   = domain.SettingMaxRequestsPerSec
	KeyDebounceMS          = domain.SettingDebounceMS
	KeyClearDraftOnSuccess = domain.SettingClearDraftOnSuccess
)

// Environment variables that override the configured base URL, in order
// of precedence.
const (
	EnvBaseURL       = "SERCHA_REMOTE_URL"
	EnvBaseURLLegacy = "URL"
)

type settingKind int

const (
	kindString settingKind = iota
	kindInt
	kindBool
)

var settingKinds = map[string]settingKind{
	KeyBaseURL:             kindString,
	KeyTimeoutSeconds:      kindInt,
	KeyMaxRequestsPerSec:   kindInt,
	KeyDebounceMS:          kindInt,
	KeyClearDraftOnSuccess: kindBool,
}

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
	lookupEnv   func(string) (string, bool)
}

// NewSettingsService creates a new settings service reading the process environment.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{
		configStore: configStore,
		lookupEnv:   os.LookupEnv,
	}
}

// WithEnv replaces the environment lookup. Useful for testing.
func (s *SettingsService) WithEnv(lookup func(string) (string, bool)) *SettingsService {
	s.lookupEnv = lookup
	return s
}

// Get returns defaults overlaid by stored values and environment overrides.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	return s.load(true), nil
}

func (s *SettingsService) load(withEnv bool) *domain.AppSettings {
	settings := domain.DefaultAppSettings()

	if v := s.configStore.GetString(KeyBaseURL); v != "" {
		settings.Service.BaseURL = v
	}
	if _, ok := s.configStore.Get(KeyTimeoutSeconds); ok {
		settings.Service.TimeoutSeconds = s.configStore.GetInt(KeyTimeoutSeconds)
	}
	if _, ok := s.configStore.Get(KeyMaxRequestsPerSec); ok {
		settings.Service.MaxRequestsPerSecond = s.configStore.GetInt(KeyMaxRequestsPerSec)
	}
	if _, ok := s.configStore.Get(KeyDebounceMS); ok {
		settings.Suggest.DebounceMS = s.configStore.GetInt(KeyDebounceMS)
	}
	settings.Index.ClearDraftOnSuccess = s.configStore.GetBool(KeyClearDraftOnSuccess)

	if withEnv {
		if v := s.envBaseURL(); v != "" {
			settings.Service.BaseURL = v
		}
	}

	return settings
}

func (s *SettingsService) envBaseURL() string {
	if s.lookupEnv == nil {
		return ""
	}
	for _, name := range []string{EnvBaseURL, EnvBaseURLLegacy} {
		if v, ok := s.lookupEnv(name); ok && strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return ""
}

// Set parses, validates and stores a single setting.
func (s *SettingsService) Set(key, value string) error {
	kind, ok := settingKinds[key]
	if !ok {
		return fmt.Errorf("%w: %q", domain.ErrUnknownSetting, key)
	}

	var parsed any
	switch kind {
	case kindString:
		parsed = strings.TrimSpace(value)
	case kindInt:
		n, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return fmt.Errorf("%w: %s must be an integer", domain.ErrInvalidSetting, key)
		}
		parsed = n
	case kindBool:
		b, err := strconv.ParseBool(strings.TrimSpace(value))
		if err != nil {
			return fmt.Errorf("%w: %s must be true or false", domain.ErrInvalidSetting, key)
		}
		parsed = b
	}

	// Validate the stored settings as they would look after the change,
	// ignoring environment overrides.
	candidate := s.storedWith(key, parsed)
	if err := candidate.Validate(); err != nil {
		return err
	}

	if err := s.configStore.Set(key, parsed); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

func (s *SettingsService) storedWith(key string, value any) *domain.AppSettings {
	settings := s.load(false)

	switch key {
	case KeyBaseURL:
		if v := value.(string); v != "" {
			settings.Service.BaseURL = v
		} else {
			settings.Service.BaseURL = domain.DefaultBaseURL
		}
	case KeyTimeoutSeconds:
		settings.Service.TimeoutSeconds = value.(int)
	case KeyMaxRequestsPerSec:
		settings.Service.MaxRequestsPerSecond = value.(int)
	case KeyDebounceMS:
		settings.Suggest.DebounceMS = value.(int)
	case KeyClearDraftOnSuccess:
		settings.Index.ClearDraftOnSuccess = value.(bool)
	}
	return settings
}

// Keys lists the recognised setting keys in sorted order.
func (s *SettingsService) Keys() []string {
	keys := make([]string, 0, len(settingKinds))
	for k := range settingKinds {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Validate checks the effective settings.
func (s *SettingsService) Validate() error {
	settings, err := s.Get()
	if err != nil {
		return err
	}
	return settings.Validate()
}

// ConfigPath returns the configuration file path.
func (s *SettingsService) ConfigPath() string {
	return s.configStore.Path()
}
