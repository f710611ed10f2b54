// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	Port       int    `json:"port,omitempty"`        // HTTP server port
	DataDir    string `json:"data_dir,omitempty"`    // Directory holding raw resume files
	DBDir      string `json:"db_dir,omitempty"`      // Directory holding the candidate database
	MatcherURL string `json:"matcher_url,omitempty" validate:"omitempty,url"` // Base URL of the matching service
	OutputDir  string `json:"output_dir,omitempty"`  // Directory for exported artifacts
	Watch      bool   `json:"watch,omitempty"`       // Re-ingest when the data directory changes
	Verbose    bool   `json:"verbose,omitempty"`     // Print detailed progress information
}

// Defaults used when neither the config file nor flags set a value.
const (
	DefaultPort      = 8000
	DefaultDataDir   = "data/raw_cv"
	DefaultDBDir     = "data"
	DefaultOutputDir = "exports"
)

// Load reads configuration from a JSON file. An empty path yields an empty
// config (flags and defaults take over).
func Load(path string) (*Config, error) {
	if path == "" {
		return &Config{}, nil
	}

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

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}

	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	return nil
}

// ApplyDefaults fills unset fields with the standard defaults. Environment
// variables win over the file, defaults fill the rest.
func (c *Config) ApplyDefaults() {
	if c.Port == 0 {
		c.Port = DefaultPort
	}
	if c.DataDir == "" {
		c.DataDir = envOr("MATCHPOINT_DATA_DIR", DefaultDataDir)
	}
	if c.DBDir == "" {
		c.DBDir = envOr("MATCHPOINT_DB_DIR", DefaultDBDir)
	}
	if c.MatcherURL == "" {
		c.MatcherURL = os.Getenv("MATCHPOINT_MATCHER_URL")
	}
	if c.OutputDir == "" {
		c.OutputDir = envOr("MATCHPOINT_OUTPUT_DIR", DefaultOutputDir)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
