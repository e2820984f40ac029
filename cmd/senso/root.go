// ABOUTME: Root command wiring for the senso CLI.
// ABOUTME: Loads configuration once and builds the shared API client.

package main

import (
	"fmt"

	"github.com/senso-ai/senso-mcp/internal/config"
	"github.com/senso-ai/senso-mcp/internal/senso"
	"github.com/spf13/cobra"
)

var (
	cfg       *config.Config
	apiClient *senso.Client
)

var rootCmd = &cobra.Command{
	Use:   "senso",
	Short: "Senso knowledge base CLI and MCP server",
	Long: `senso talks to the Senso knowledge-base API: add content, search it,
and generate new content from it. The mcp subcommand serves the same
operations to AI agents over the Model Context Protocol.`,
	Version:       fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
	SilenceUsage:  true,
	SilenceErrors: false,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.LoadConfig()
		if err != nil {
			return err
		}

		apiClient = senso.NewClient(senso.Config{
			APIKey:  cfg.APIKey,
			BaseURL: cfg.BaseURL,
			Timeout: cfg.Timeout(),
		})
		return nil
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// requireAPIKey guards commands that would otherwise fail on every request.
func requireAPIKey() error {
	if !cfg.IsConfigured() {
		return fmt.Errorf("no API key configured - run 'senso config set --api-key <key>' or set %s", config.EnvAPIKey)
	}
	return nil
}
