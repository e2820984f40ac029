// ABOUTME: MCP command to start the MCP server.
// ABOUTME: Runs on stdio for integration with AI agents.

package main

import (
	"github.com/senso-ai/senso-mcp/internal/mcp"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP server",
	Long: `Start the Model Context Protocol server for AI agent integration.

Configuration for a desktop assistant host:

  {
    "mcpServers": {
      "senso": {
        "command": "senso",
        "args": ["mcp"],
        "env": {
          "SENSO_API_KEY": "tgr_..."
        }
      }
    }
  }`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireAPIKey(); err != nil {
			return err
		}
		server := mcp.NewServer(apiClient)
		return server.Serve(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
