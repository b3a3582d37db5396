// Package config provides configuration loading and validation for the
// job-matcher binaries.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

// Default pool and display sizes when neither config nor flags set them.
const (
	DefaultNumToSearch = 15
	DefaultNumToShow   = 5
	DefaultPort        = 8080
)

// Config represents the runtime configuration that can be loaded from a
// JSON file. All fields are optional; missing values use defaults or
// environment fallbacks applied by ApplyEnv.
type Config struct {
	// Connections
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL
	Port        int    `json:"port,omitempty"`         // HTTP listen port

	// Providers
	GeminiAPIKey   string `json:"gemini_api_key,omitempty"`  // Embedding provider key
	EmbeddingModel string `json:"embedding_model,omitempty"` // Embedding model name
	SearchBaseURL  string `json:"search_base_url,omitempty"` // External job-search API base URL
	SearchAPIKey   string `json:"search_api_key,omitempty"`  // External job-search API key
	SearchAPIHost  string `json:"search_api_host,omitempty"` // External job-search API host header

	// Matching
	NumToSearch int `json:"num_to_search,omitempty"` // Pool size evaluated per ranking pass
	NumToShow   int `json:"num_to_show,omitempty"`   // Ranked results returned to the caller
	Concurrency int `json:"concurrency,omitempty"`   // Parallel candidate evaluations

	// Behavior
	JSONLogs bool `json:"json_logs,omitempty"` // Emit JSON logs instead of console
	Verbose  bool `json:"verbose,omitempty"`   // Enable debug logging
}

// Load reads configuration from a JSON file. A missing path yields an
// empty Config so env fallbacks and defaults still apply.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}
	return cfg, nil
}

// ApplyEnv fills empty fields from environment variables.
func (c *Config) ApplyEnv() {
	if c.DatabaseURL == "" {
		c.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if c.GeminiAPIKey == "" {
		c.GeminiAPIKey = os.Getenv("GEMINI_API_KEY")
	}
	if c.SearchBaseURL == "" {
		c.SearchBaseURL = os.Getenv("SEARCH_API_URL")
	}
	if c.SearchAPIKey == "" {
		c.SearchAPIKey = os.Getenv("RAPIDAPI_KEY")
	}
	if c.SearchAPIHost == "" {
		c.SearchAPIHost = os.Getenv("RAPIDAPI_HOST")
	}
	if c.Port == 0 {
		if p, err := strconv.Atoi(os.Getenv("PORT")); err == nil && p > 0 {
			c.Port = p
		}
	}
}

// ApplyDefaults fills remaining zero fields with the package defaults.
func (c *Config) ApplyDefaults() {
	if c.Port == 0 {
		c.Port = DefaultPort
	}
	if c.NumToSearch == 0 {
		c.NumToSearch = DefaultNumToSearch
	}
	if c.NumToShow == 0 {
		c.NumToShow = DefaultNumToShow
	}
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.NumToSearch < 0 {
		return fmt.Errorf("config error: 'num_to_search' must be non-negative")
	}
	if c.NumToShow < 0 {
		return fmt.Errorf("config error: 'num_to_show' must be non-negative")
	}
	if c.NumToShow > 0 && c.NumToSearch > 0 && c.NumToShow > c.NumToSearch {
		return fmt.Errorf("config error: 'num_to_show' cannot exceed 'num_to_search'")
	}
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' out of range")
	}
	return nil
}
