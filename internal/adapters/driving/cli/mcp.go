package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/sercha-remote/internal/adapters/driving/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "MCP server commands",
	Long:  `Commands for the Model Context Protocol (MCP) server integration.`,
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long: `Start a Model Context Protocol server exposing the remote search service
to AI assistants through the search, suggest and index tools.

By default the server speaks JSON-RPC over stdio. Use --port to serve
streamable HTTP instead, for example to try it from the MCP Inspector.

Examples:
  # Stdio mode (default)
  sercha-remote mcp serve

  # HTTP mode
  sercha-remote mcp serve --port 9090

Assistant configuration:
  {
    "mcpServers": {
      "sercha-remote": {
        "command": "/path/to/sercha-remote",
        "args": ["mcp", "serve"]
      }
    }
  }`,
	RunE: runMCPServe,
}

func init() {
	mcpServeCmd.Flags().IntP("port", "p", 0, "HTTP port (0 = use stdio)")
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}

func runMCPServe(cmd *cobra.Command, _ []string) error {
	port, err := cmd.Flags().GetInt("port")
	if err != nil {
		return fmt.Errorf("getting port flag: %w", err)
	}

	if searchService == nil {
		return notConfigured("search")
	}

	server, err := mcp.NewServer(&mcp.Ports{
		Search:   searchService,
		Settings: settingsService,
	})
	if err != nil {
		return err
	}

	if port > 0 {
		addr := fmt.Sprintf(":%d", port)
		fmt.Fprintf(cmd.OutOrStdout(), "MCP server listening on http://localhost%s\n", addr)
		return server.RunHTTP(cmd.Context(), addr)
	}

	return server.Run(cmd.Context())
}
