// ABOUTME: Config commands for storing the API key and base URL.
// ABOUTME: Writes the YAML config file read at startup.

package main

import (
	"fmt"

	"github.com/senso-ai/senso-mcp/internal/config"
	"github.com/senso-ai/senso-mcp/internal/ui"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage senso configuration",
}

var configSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Set configuration values",
	RunE: func(cmd *cobra.Command, args []string) error {
		apiKey, _ := cmd.Flags().GetString("api-key")
		baseURL, _ := cmd.Flags().GetString("base-url")
		if apiKey == "" && baseURL == "" {
			return fmt.Errorf("nothing to set - pass --api-key and/or --base-url")
		}

		if apiKey != "" {
			cfg.APIKey = apiKey
		}
		if baseURL != "" {
			cfg.BaseURL = baseURL
		}

		if err := config.SaveConfig(cfg); err != nil {
			return err
		}

		fmt.Println(ui.Success(fmt.Sprintf("Wrote %s", config.ConfigPath())))
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the active configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		base := cfg.BaseURL
		if base == "" {
			base = "(default)"
		}
		key := "(not set)"
		if cfg.IsConfigured() {
			key = "(set)"
		}

		fmt.Printf("Config file: %s\n", config.ConfigPath())
		fmt.Printf("Base URL:    %s\n", base)
		fmt.Printf("API key:     %s\n", key)
		return nil
	},
}

func init() {
	configSetCmd.Flags().String("api-key", "", "Senso API key")
	configSetCmd.Flags().String("base-url", "", "Senso API base URL")

	configCmd.AddCommand(configSetCmd, configShowCmd)
	rootCmd.AddCommand(configCmd)
}
