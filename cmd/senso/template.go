// ABOUTME: Template management commands (create, list, update).
// ABOUTME: Templates control the output format of generated content.

package main

import (
	"fmt"

	"github.com/senso-ai/senso-mcp/internal/ui"
	"github.com/spf13/cobra"
)

var templateCmd = &cobra.Command{
	Use:   "template",
	Short: "Manage output-formatting templates",
}

var templateCreateCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create a new template",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireAPIKey(); err != nil {
			return err
		}
		text, _ := cmd.Flags().GetString("text")
		outputType, _ := cmd.Flags().GetString("output-type")
		if text == "" {
			return fmt.Errorf("--text is required")
		}

		tmpl, err := apiClient.CreateTemplate(cmd.Context(), args[0], text, outputType)
		if err != nil {
			return fmt.Errorf("failed to create template: %w", err)
		}

		fmt.Println(ui.Success(fmt.Sprintf("Created template %s (%s, %s)", tmpl.Name, tmpl.TemplateID, tmpl.OutputType)))
		return nil
	},
}

var templateListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved templates",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireAPIKey(); err != nil {
			return err
		}
		limit, _ := cmd.Flags().GetInt("limit")
		offset, _ := cmd.Flags().GetInt("offset")

		templates, err := apiClient.ListTemplates(cmd.Context(), limit, offset)
		if err != nil {
			return fmt.Errorf("failed to list templates: %w", err)
		}
		if len(templates) == 0 {
			fmt.Println("No templates found.")
			return nil
		}

		fmt.Print(ui.FormatTemplateList(templates))
		return nil
	},
}

var templateUpdateCmd = &cobra.Command{
	Use:   "update <template-id>",
	Short: "Update an existing template",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireAPIKey(); err != nil {
			return err
		}
		name, _ := cmd.Flags().GetString("name")
		text, _ := cmd.Flags().GetString("text")
		outputType, _ := cmd.Flags().GetString("output-type")
		if name == "" || text == "" {
			return fmt.Errorf("--name and --text are required")
		}

		tmpl, err := apiClient.UpdateTemplate(cmd.Context(), args[0], name, text, outputType)
		if err != nil {
			return fmt.Errorf("failed to update template: %w", err)
		}

		fmt.Println(ui.Success(fmt.Sprintf("Updated template %s", tmpl.TemplateID)))
		return nil
	},
}

func init() {
	templateCreateCmd.Flags().String("text", "", "template text with {{variable}} slots")
	templateCreateCmd.Flags().String("output-type", "text", "output format: json or text")
	templateListCmd.Flags().Int("limit", 10, "max templates to return")
	templateListCmd.Flags().Int("offset", 0, "templates to skip")
	templateUpdateCmd.Flags().String("name", "", "new template name")
	templateUpdateCmd.Flags().String("text", "", "new template text")
	templateUpdateCmd.Flags().String("output-type", "", "output format: json or text")

	templateCmd.AddCommand(templateCreateCmd, templateListCmd, templateUpdateCmd)
	rootCmd.AddCommand(templateCmd)
}
