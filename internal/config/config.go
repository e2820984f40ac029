// ABOUTME: Configuration management for the Senso CLI and MCP server.
// ABOUTME: Loads YAML config with environment variable overrides.

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	// EnvAPIKey overrides the configured API key.
	EnvAPIKey = "SENSO_API_KEY"
	// EnvBaseURL overrides the configured API base URL.
	EnvBaseURL = "SENSO_BASE_URL"
	// EnvConfigDir relocates the config directory (used by tests).
	EnvConfigDir = "SENSO_CONFIG_DIR"
)

// Config is the static process configuration, read once at startup.
type Config struct {
	APIKey         string `yaml:"api_key"`
	BaseURL        string `yaml:"base_url"`
	TimeoutSeconds int    `yaml:"timeout_seconds,omitempty"`
}

// ConfigDir returns the directory holding the config file.
func ConfigDir() string {
	if dir := os.Getenv(EnvConfigDir); dir != "" {
		return dir
	}
	base, err := os.UserConfigDir()
	if err != nil {
		home, _ := os.UserHomeDir()
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, "senso")
}

// ConfigPath returns the path of the config file.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}

func defaultConfig() *Config {
	return &Config{
		TimeoutSeconds: 30,
	}
}

// LoadConfig reads the config file if present and applies environment
// overrides. A missing file is not an error; overrides alone can make a
// usable config.
func LoadConfig() (*Config, error) {
	cfg := defaultConfig()

	data, err := os.ReadFile(ConfigPath())
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	case os.IsNotExist(err):
		// No file yet; env overrides may still configure us.
	default:
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if key := os.Getenv(EnvAPIKey); key != "" {
		cfg.APIKey = key
	}
	if base := os.Getenv(EnvBaseURL); base != "" {
		cfg.BaseURL = base
	}

	return cfg, nil
}

// SaveConfig writes cfg to the config file, creating the directory if needed.
func SaveConfig(cfg *Config) error {
	if err := os.MkdirAll(ConfigDir(), 0o700); err != nil {
		return fmt.Errorf("failed to create config dir: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(ConfigPath(), data, 0o600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// IsConfigured reports whether an API key is available.
func (c *Config) IsConfigured() bool {
	return c.APIKey != ""
}

// Timeout returns the request timeout as a duration.
func (c *Config) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return 30 * time.Second
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}
