// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via
// CLI flags or environment variables.
type Config struct {
	// AI service
	GeminiAPIKey string `json:"gemini_api_key,omitempty"` // Gemini API key
	Model        string `json:"model,omitempty"`          // Gemini model identifier

	// Data provider
	ProviderBaseURL string `json:"provider_base_url,omitempty"` // Instagram data provider base URL
	ProviderHost    string `json:"provider_host,omitempty"`     // RapidAPI host header value

	// Local state
	StoreDir string `json:"store_dir,omitempty"` // Directory for the local key-value store

	// Behavior
	Verbose bool `json:"verbose,omitempty"` // Print detailed debug information
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// FromEnv fills unset fields from the process environment. Environment
// values never override explicit config-file values.
func (c *Config) FromEnv() {
	if c.GeminiAPIKey == "" {
		c.GeminiAPIKey = os.Getenv("GEMINI_API_KEY")
	}
	if c.Model == "" {
		c.Model = os.Getenv("INSTAGROWTH_MODEL")
	}
	if c.ProviderBaseURL == "" {
		c.ProviderBaseURL = os.Getenv("INSTAGROWTH_PROVIDER_URL")
	}
	if c.ProviderHost == "" {
		c.ProviderHost = os.Getenv("INSTAGROWTH_PROVIDER_HOST")
	}
	if c.StoreDir == "" {
		c.StoreDir = os.Getenv("INSTAGROWTH_STORE_DIR")
	}
}

// Validate checks that the configuration has valid values.
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	if c.StoreDir != "" {
		if info, err := os.Stat(c.StoreDir); err == nil && !info.IsDir() {
			return fmt.Errorf("config error: store_dir is not a directory: %s", c.StoreDir)
		}
	}
	return nil
}

// MergeWithDefaults returns a new Config with empty string fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.GeminiAPIKey == "" {
		result.GeminiAPIKey = defaults.GeminiAPIKey
	}
	if result.Model == "" {
		result.Model = defaults.Model
	}
	if result.ProviderBaseURL == "" {
		result.ProviderBaseURL = defaults.ProviderBaseURL
	}
	if result.ProviderHost == "" {
		result.ProviderHost = defaults.ProviderHost
	}
	if result.StoreDir == "" {
		result.StoreDir = defaults.StoreDir
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
