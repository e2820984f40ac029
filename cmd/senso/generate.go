// ABOUTME: Generate command for producing content from stored knowledge.
// ABOUTME: Renders generated markdown and optionally saves it remotely.

package main

import (
	"fmt"

	"github.com/senso-ai/senso-mcp/internal/senso"
	"github.com/senso-ai/senso-mcp/internal/ui"
	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate <topic>",
	Short: "Generate content from the knowledge base",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireAPIKey(); err != nil {
			return err
		}
		topic := args[0]

		save, _ := cmd.Flags().GetBool("save")
		contentType, _ := cmd.Flags().GetString("type")
		maxResults, _ := cmd.Flags().GetInt("max-results")
		promptID, _ := cmd.Flags().GetString("prompt")
		templateID, _ := cmd.Flags().GetString("template")

		if promptID != "" {
			resp, err := apiClient.GenerateWithPrompt(cmd.Context(), senso.GeneratePromptRequest{
				PromptID:    promptID,
				ContentType: topic,
				TemplateID:  templateID,
				Save:        save,
				MaxResults:  maxResults,
			})
			if err != nil {
				return fmt.Errorf("content generation failed: %w", err)
			}
			printGenerated(resp.GeneratedText, resp.ContentID, resp.Sources, save)
			return nil
		}

		resp, err := apiClient.Generate(cmd.Context(), senso.GenerateRequest{
			ContentType:  contentType,
			Instructions: topic,
			Save:         save,
			MaxResults:   maxResults,
		})
		if err != nil {
			return fmt.Errorf("content generation failed: %w", err)
		}
		printGenerated(resp.GeneratedText, resp.ContentID, resp.Sources, save)
		return nil
	},
}

func printGenerated(text, contentID string, sources []senso.Source, saved bool) {
	fmt.Print(ui.FormatGeneratedContent(text))
	if saved && contentID != "" {
		fmt.Println(ui.Success(fmt.Sprintf("Saved as %s", contentID)))
	}
	if len(sources) > 0 {
		fmt.Print(ui.FormatSources(sources))
	}
}

func init() {
	generateCmd.Flags().Bool("save", false, "save the generated content")
	generateCmd.Flags().String("type", "text", "type of content to generate")
	generateCmd.Flags().Int("max-results", 0, "max source results to consult")
	generateCmd.Flags().String("prompt", "", "generate using a saved prompt ID")
	generateCmd.Flags().String("template", "", "format output with a saved template ID (requires --prompt)")
	rootCmd.AddCommand(generateCmd)
}
