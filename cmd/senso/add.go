// ABOUTME: Add command for ingesting raw content into the knowledge base.
// ABOUTME: Supports inline content, file input, or stdin.

package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/senso-ai/senso-mcp/internal/senso"
	"github.com/senso-ai/senso-mcp/internal/ui"
	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Add content to the knowledge base",
	Long:  `Ingest raw text under the given title. Content can be provided via --text, --file, or stdin.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireAPIKey(); err != nil {
			return err
		}
		title := args[0]

		textFlag, _ := cmd.Flags().GetString("text")
		fileFlag, _ := cmd.Flags().GetString("file")
		summaryFlag, _ := cmd.Flags().GetString("summary")

		var text string
		switch {
		case textFlag != "":
			text = textFlag
		case fileFlag != "":
			data, err := os.ReadFile(fileFlag) //nolint:gosec // User-specified file path is expected CLI behavior
			if err != nil {
				return fmt.Errorf("failed to read file: %w", err)
			}
			text = string(data)
		default:
			data, err := io.ReadAll(os.Stdin)
			if err != nil {
				return fmt.Errorf("failed to read stdin: %w", err)
			}
			text = string(data)
		}

		if strings.TrimSpace(text) == "" {
			return fmt.Errorf("content text cannot be empty")
		}

		resp, err := apiClient.AddRawContent(cmd.Context(), senso.AddContentRequest{
			Title:   title,
			Summary: summaryFlag,
			Text:    text,
		})
		if err != nil {
			return fmt.Errorf("failed to add content: %w", err)
		}

		fmt.Println(ui.Success(fmt.Sprintf("Added content %s", resp.ID)))
		return nil
	},
}

func init() {
	addCmd.Flags().String("text", "", "content text (inline)")
	addCmd.Flags().String("file", "", "read content from file")
	addCmd.Flags().String("summary", "", "optional content summary")
	rootCmd.AddCommand(addCmd)
}
