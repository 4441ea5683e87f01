// Package cli provides the cobra command tree for sercha-remote.
// It is a driving adapter: commands call core services through driving ports.
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/sercha-remote/internal/core/domain"
	"github.com/custodia-labs/sercha-remote/internal/core/ports/driven"
	"github.com/custodia-labs/sercha-remote/internal/core/ports/driving"
	"github.com/custodia-labs/sercha-remote/internal/logger"
)

// SessionFactory creates an interactive session reporting through notifier.
// ctx bounds the session's background suggestion requests.
type SessionFactory func(ctx context.Context, notifier driven.Notifier) driving.SessionService

// Services are the core services the commands run against.
type Services struct {
	Search     driving.SearchService
	Settings   driving.SettingsService
	NewSession SessionFactory
}

// BootstrapFunc builds the services before a command runs. baseURL is the
// value of --url and is empty when the flag is not set. It may return
// partial services together with an error, for example settings without a
// search service when the configured URL is invalid.
type BootstrapFunc func(baseURL string) (*Services, error)

var (
	version = "dev"

	verbose bool
	baseURL string

	searchService   driving.SearchService
	settingsService driving.SettingsService
	newSession      SessionFactory

	bootstrap    BootstrapFunc
	bootstrapErr error
)

var rootCmd = &cobra.Command{
	Use:   "sercha-remote",
	Short: "Search, autocomplete and index against a remote document-search service",
	Long: `sercha-remote is a client for a remote document-search service.

It runs full-text queries, fetches prefix suggestions and submits documents
for indexing, from the command line, an interactive terminal UI or an MCP
server.

The service URL is taken from --url, then $SERCHA_REMOTE_URL, then $URL,
then service.base_url in ~/.sercha-remote/config.toml, and defaults to
http://localhost:8080.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "", "search service base URL (overrides config and environment)")
}

func setup(_ *cobra.Command, _ []string) error {
	logger.SetVerbose(verbose)

	if bootstrap == nil || searchService != nil {
		return nil
	}

	svcs, err := bootstrap(baseURL)
	if svcs != nil {
		SetServices(svcs)
	}
	if err != nil {
		// Keep going so that settings can still be inspected and repaired.
		bootstrapErr = err
		logger.Warn("bootstrap: %v", err)
	}
	return nil
}

// SetBootstrap registers the function that builds services on first use.
func SetBootstrap(fn BootstrapFunc) {
	bootstrap = fn
}

// SetServices installs services directly.
func SetServices(svcs *Services) {
	searchService = svcs.Search
	settingsService = svcs.Settings
	newSession = svcs.NewSession
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// notConfigured reports a missing service, including why bootstrap could
// not build it.
func notConfigured(name string) error {
	if bootstrapErr != nil {
		return fmt.Errorf("%s %w: %w", name, domain.ErrNotConfigured, bootstrapErr)
	}
	return fmt.Errorf("%s %w", name, domain.ErrNotConfigured)
}
