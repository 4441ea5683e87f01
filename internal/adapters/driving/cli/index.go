package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/sercha-remote/internal/core/domain"
)

var indexCmd = &cobra.Command{
	Use:   "index [doc-id] [content]",
	Short: "Submit a document for indexing",
	Long: `Submits a document to the remote search service.

When content is omitted and stdin is not a terminal, the content is read
from stdin:

  sercha-remote index notes-42 "meeting notes"
  cat notes.txt | sercha-remote index notes-42`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runIndex,
}

func init() {
	rootCmd.AddCommand(indexCmd)
}

func runIndex(cmd *cobra.Command, args []string) error {
	if searchService == nil {
		return notConfigured("search")
	}

	id := args[0]
	content := ""
	if len(args) == 2 {
		content = args[1]
	} else {
		var err error
		content, err = readPiped(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("read content: %w", err)
		}
	}

	if err := searchService.Index(cmd.Context(), id, content); err != nil {
		return fmt.Errorf("%s %w", domain.MessageIndexFailed, err)
	}

	cmd.Println(domain.MessageIndexed)
	return nil
}

// readPiped reads in unless it is an interactive terminal.
func readPiped(in io.Reader) (string, error) {
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return "", nil
	}
	data, err := io.ReadAll(in)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
