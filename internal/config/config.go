// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Paths
	ModelPath string `json:"model_path,omitempty"` // Where the trained model is persisted
	DataFile  string `json:"data_file,omitempty"`  // JSON file of training records to import

	// Storage
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL; empty uses in-memory storage

	// Training
	Epochs          int     `json:"epochs,omitempty"`           // Training epochs
	LearningRate    float64 `json:"learning_rate,omitempty"`    // Adam learning rate
	ValidationSplit float64 `json:"validation_split,omitempty"` // Held-out fraction (0.0-1.0)
	Patience        int     `json:"patience,omitempty"`         // Early-stopping patience
	Seed            int64   `json:"seed,omitempty"`             // Reproducible shuffling; 0 seeds from the clock

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

// Validate checks that the configuration has valid values.
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	if c.Epochs < 0 {
		return fmt.Errorf("config error: 'epochs' must be non-negative")
	}
	if c.Patience < 0 {
		return fmt.Errorf("config error: 'patience' must be non-negative")
	}
	if c.LearningRate < 0 {
		return fmt.Errorf("config error: 'learning_rate' must be non-negative")
	}
	if c.ValidationSplit < 0 || c.ValidationSplit >= 1 {
		return fmt.Errorf("config error: 'validation_split' must be in [0, 1)")
	}

	if c.DataFile != "" {
		if _, err := os.Stat(c.DataFile); os.IsNotExist(err) {
			return fmt.Errorf("config error: data file not found: %s", c.DataFile)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.ModelPath == "" {
		result.ModelPath = defaults.ModelPath
	}
	if result.DataFile == "" {
		result.DataFile = defaults.DataFile
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}

	// Numeric fields: use default if zero
	if result.Epochs == 0 {
		result.Epochs = defaults.Epochs
	}
	if result.Patience == 0 {
		result.Patience = defaults.Patience
	}
	if result.Seed == 0 {
		result.Seed = defaults.Seed
	}
	if result.LearningRate == 0 {
		result.LearningRate = defaults.LearningRate
	}
	if result.ValidationSplit == 0 {
		if defaults.ValidationSplit > 0 {
			result.ValidationSplit = defaults.ValidationSplit
		} else {
			result.ValidationSplit = 0.2 // Default to a 20% held-out set
		}
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
