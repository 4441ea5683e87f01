package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var searchJSON bool

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Run a full-text query",
	Long: `Runs a full-text query against the remote search service and prints the
matching document contents. Duplicate results are removed, keeping the order
in which they first appear. An empty query is sent as-is.`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output results as JSON")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	if searchService == nil {
		return notConfigured("search")
	}

	results, err := searchService.Query(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if searchJSON {
		return printJSON(cmd, results)
	}
	printList(cmd, "Results:", "No results found", results)
	return nil
}

func printJSON(cmd *cobra.Command, items []string) error {
	if items == nil {
		items = []string{}
	}
	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}

// printList writes to stdout so results can be piped.
func printList(cmd *cobra.Command, title, empty string, items []string) {
	out := cmd.OutOrStdout()
	if len(items) == 0 {
		fmt.Fprintln(out, empty)
		return
	}

	fmt.Fprintln(out, title)
	fmt.Fprintln(out)
	for i, item := range items {
		fmt.Fprintf(out, "  [%d] %s\n", i+1, item)
	}
}
