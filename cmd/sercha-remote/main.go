// Command sercha-remote is a client for a remote document-search service.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/custodia-labs/sercha-remote/internal/adapters/driven/config/file"
	"github.com/custodia-labs/sercha-remote/internal/adapters/driven/remote"
	"github.com/custodia-labs/sercha-remote/internal/adapters/driving/cli"
	"github.com/custodia-labs/sercha-remote/internal/core/ports/driven"
	"github.com/custodia-labs/sercha-remote/internal/core/ports/driving"
	"github.com/custodia-labs/sercha-remote/internal/core/services"
	"github.com/custodia-labs/sercha-remote/internal/logger"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	cli.SetVersion(version)
	cli.SetBootstrap(func(baseURL string) (*cli.Services, error) {
		return newServices("", baseURL)
	})

	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}

// newServices wires the config store, settings, gateway and search service.
// configDir defaults to ~/.sercha-remote. A non-empty baseURL overrides the
// configured one. When the settings are unusable the settings service is
// still returned so the configuration can be fixed.
func newServices(configDir, baseURL string) (*cli.Services, error) {
	store, err := file.NewConfigStore(configDir)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	settingsService := services.NewSettingsService(store)
	svcs := &cli.Services{Settings: settingsService}

	settings, err := settingsService.Get()
	if err != nil {
		return svcs, fmt.Errorf("load settings: %w", err)
	}
	if baseURL != "" {
		settings.Service.BaseURL = baseURL
	}
	if err := settings.Validate(); err != nil {
		return svcs, err
	}

	gateway, err := remote.NewGateway(remote.Config{
		BaseURL:              settings.Service.BaseURL,
		Timeout:              settings.Service.Timeout(),
		MaxRequestsPerSecond: settings.Service.MaxRequestsPerSecond,
	})
	if err != nil {
		return svcs, err
	}
	logger.Debug("search service: %s", gateway.BaseURL())

	search := services.NewSearchService(gateway)
	opts := services.SessionOptions{
		Debounce:            settings.Suggest.Debounce(),
		ClearDraftOnSuccess: settings.Index.ClearDraftOnSuccess,
	}

	svcs.Search = search
	svcs.NewSession = func(ctx context.Context, notifier driven.Notifier) driving.SessionService {
		return services.NewSession(ctx, search, notifier, opts)
	}
	return svcs, nil
}
