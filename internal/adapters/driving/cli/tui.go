package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/sercha-remote/internal/adapters/driving/tui"
	"github.com/custodia-labs/sercha-remote/internal/logger"
)

var tuiLogFile string

// tuiCmd represents the tui command.
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive terminal UI",
	Long: `Launch the interactive terminal user interface.

Suggestions appear while you type a query; Enter runs it. The index view
submits a document id and content to the service.

Controls:
  ↑/k, ↓/j - Navigate
  Enter    - Search / Select
  Tab      - Complete with the first suggestion / next field
  Ctrl+S   - Submit the document for indexing
  Esc      - Back
  ?        - Help
  q        - Quit (from the menu)

Logs would corrupt the screen, so they are discarded unless --log-file is set.`,
	RunE: runTUI,
}

func init() {
	tuiCmd.Flags().StringVar(&tuiLogFile, "log-file", "", "write logs to this file while the TUI runs")
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
			err = fmt.Errorf("tui panic: %v", r)
		}
	}()

	if newSession == nil {
		return notConfigured("session")
	}

	if tuiLogFile != "" {
		closer, openErr := logger.OpenFile(tuiLogFile)
		if openErr != nil {
			return fmt.Errorf("open log file: %w", openErr)
		}
		defer closer.Close()
	} else {
		logger.SetOutput(io.Discard)
	}
	defer logger.SetOutput(nil)

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	notifier := tui.NewNotifier()
	session := newSession(ctx, notifier)

	app, err := tui.NewApp(tui.NewPorts(session, settingsService))
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}
	defer session.Close()

	if err := app.WithContext(ctx).WithNotifier(notifier).Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
