package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var suggestJSON bool

var suggestCmd = &cobra.Command{
	Use:   "suggest [prefix]",
	Short: "Fetch autocomplete suggestions for a prefix",
	Long: `Asks the remote search service for completions of a prefix, in the order
the service returns them. An empty prefix returns nothing without contacting
the service.`,
	Args: cobra.ExactArgs(1),
	RunE: runSuggest,
}

func init() {
	suggestCmd.Flags().BoolVar(&suggestJSON, "json", false, "output suggestions as JSON")
	rootCmd.AddCommand(suggestCmd)
}

func runSuggest(cmd *cobra.Command, args []string) error {
	if searchService == nil {
		return notConfigured("search")
	}

	suggestions, err := searchService.Suggest(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("suggest failed: %w", err)
	}

	if suggestJSON {
		return printJSON(cmd, suggestions)
	}
	printList(cmd, "Suggestions:", "No suggestions", suggestions)
	return nil
}
