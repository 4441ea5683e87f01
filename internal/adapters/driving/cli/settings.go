package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/sercha-remote/internal/core/domain"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and change the settings stored in ~/.sercha-remote/config.toml.

Environment variables and --url override service.base_url at runtime but are
never written to the file.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Change a single setting",
	Long: fmt.Sprintf(`Validate and store a single setting.

Available keys:
  %s  search service endpoint (http or https)
  %s  per-request timeout
  %s  outbound request limit, 0 for none
  %s  pause before fetching suggestions
  %s  empty the draft after a successful submission`,
		domain.SettingBaseURL,
		domain.SettingTimeoutSeconds,
		domain.SettingMaxRequestsPerSec,
		domain.SettingDebounceMS,
		domain.SettingClearDraftOnSuccess,
	),
	Args: cobra.ExactArgs(2),
	RunE: runSettingsSet,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return notConfigured("settings")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[Service]")
	cmd.Printf("  Base URL: %s\n", settings.Service.BaseURL)
	cmd.Printf("  Timeout: %s\n", settings.Service.Timeout())
	if settings.Service.MaxRequestsPerSecond > 0 {
		cmd.Printf("  Rate limit: %d requests/s\n", settings.Service.MaxRequestsPerSecond)
	} else {
		cmd.Println("  Rate limit: none")
	}
	cmd.Println()

	cmd.Println("[Suggest]")
	cmd.Printf("  Debounce: %s\n", settings.Suggest.Debounce())
	cmd.Println()

	cmd.Println("[Index]")
	cmd.Printf("  Clear draft on success: %t\n", settings.Index.ClearDraftOnSuccess)
	cmd.Println()

	cmd.Printf("Config file: %s\n", settingsService.ConfigPath())

	if err := settingsService.Validate(); err != nil {
		cmd.Printf("Warning: %v\n", err)
	}
	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return notConfigured("settings")
	}

	key, value := args[0], args[1]
	if err := settingsService.Set(key, value); err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}

	cmd.Printf("Set %s = %s\n", key, value)
	return nil
}
