// ABOUTME: Search command for querying the knowledge base.
// ABOUTME: Prints the remote answer and matching entries.

package main

import (
	"fmt"

	"github.com/senso-ai/senso-mcp/internal/ui"
	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search the knowledge base",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireAPIKey(); err != nil {
			return err
		}
		query := args[0]
		limit, _ := cmd.Flags().GetInt("limit")

		resp, err := apiClient.Search(cmd.Context(), query, limit)
		if err != nil {
			return fmt.Errorf("search failed: %w", err)
		}

		fmt.Print(ui.FormatSearchResults(resp, query))
		return nil
	},
}

func init() {
	searchCmd.Flags().Int("limit", 0, "max results (server default when omitted)")
	rootCmd.AddCommand(searchCmd)
}
