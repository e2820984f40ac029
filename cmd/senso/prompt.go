// ABOUTME: Prompt management commands (create, list, update).
// ABOUTME: Prompts are saved generation instructions with {{variable}} slots.

package main

import (
	"fmt"

	"github.com/senso-ai/senso-mcp/internal/ui"
	"github.com/spf13/cobra"
)

var promptCmd = &cobra.Command{
	Use:   "prompt",
	Short: "Manage saved generation prompts",
}

var promptCreateCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create a new prompt",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireAPIKey(); err != nil {
			return err
		}
		text, _ := cmd.Flags().GetString("text")
		if text == "" {
			return fmt.Errorf("--text is required")
		}

		prompt, err := apiClient.CreatePrompt(cmd.Context(), args[0], text)
		if err != nil {
			return fmt.Errorf("failed to create prompt: %w", err)
		}

		fmt.Println(ui.Success(fmt.Sprintf("Created prompt %s (%s)", prompt.Name, prompt.PromptID)))
		return nil
	},
}

var promptListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved prompts",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireAPIKey(); err != nil {
			return err
		}
		limit, _ := cmd.Flags().GetInt("limit")
		offset, _ := cmd.Flags().GetInt("offset")

		prompts, err := apiClient.ListPrompts(cmd.Context(), limit, offset)
		if err != nil {
			return fmt.Errorf("failed to list prompts: %w", err)
		}
		if len(prompts) == 0 {
			fmt.Println("No prompts found.")
			return nil
		}

		fmt.Print(ui.FormatPromptList(prompts))
		return nil
	},
}

var promptUpdateCmd = &cobra.Command{
	Use:   "update <prompt-id>",
	Short: "Update an existing prompt",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireAPIKey(); err != nil {
			return err
		}
		name, _ := cmd.Flags().GetString("name")
		text, _ := cmd.Flags().GetString("text")
		if name == "" || text == "" {
			return fmt.Errorf("--name and --text are required")
		}

		prompt, err := apiClient.UpdatePrompt(cmd.Context(), args[0], name, text)
		if err != nil {
			return fmt.Errorf("failed to update prompt: %w", err)
		}

		fmt.Println(ui.Success(fmt.Sprintf("Updated prompt %s", prompt.PromptID)))
		return nil
	},
}

func init() {
	promptCreateCmd.Flags().String("text", "", "prompt text with {{variable}} slots")
	promptListCmd.Flags().Int("limit", 10, "max prompts to return")
	promptListCmd.Flags().Int("offset", 0, "prompts to skip")
	promptUpdateCmd.Flags().String("name", "", "new prompt name")
	promptUpdateCmd.Flags().String("text", "", "new prompt text")

	promptCmd.AddCommand(promptCreateCmd, promptListCmd, promptUpdateCmd)
	rootCmd.AddCommand(promptCmd)
}
