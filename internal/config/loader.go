package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/kelseyhightower/envconfig"
)

// Load reads configuration from environment variables.
// It applies defaults for unset values and validates the result.
func Load() (*Config, error) {
	cfg := &Config{}

	if err := envconfig.Process("", cfg); err != nil {
		return nil, fmt.Errorf("config load: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return cfg, nil
}

// Validate checks that the configuration is valid.
// Returns an error describing all validation failures.
func (c *Config) Validate() error {
	var errs []string

	// Run validation
	if strings.TrimSpace(c.Cutoff.InputPath) == "" {
		errs = append(errs, "CUTOFF_INPUT_PATH is required")
	}
	if strings.TrimSpace(c.Cutoff.OutputPath) == "" {
		errs = append(errs, "CUTOFF_OUTPUT_PATH is required")
	}
	if c.Cutoff.InputPath != "" && filepath.Clean(c.Cutoff.InputPath) == filepath.Clean(c.Cutoff.OutputPath) {
		errs = append(errs, "CUTOFF_OUTPUT_PATH must differ from CUTOFF_INPUT_PATH")
	}
	if c.Cutoff.Year < 1900 || c.Cutoff.Year > 2100 {
		errs = append(errs, fmt.Sprintf("CUTOFF_YEAR (%d) must be 1900-2100", c.Cutoff.Year))
	}
	if strings.TrimSpace(c.Cutoff.Layout) == "" {
		errs = append(errs, "CUTOFF_LAYOUT is required")
	}
	if c.Cutoff.SampleCount < 0 {
		errs = append(errs, "CUTOFF_SAMPLE_COUNT must be non-negative")
	}

	// Logging validation
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[strings.ToLower(c.Logging.Level)] {
		errs = append(errs, fmt.Sprintf("LOG_LEVEL (%q) must be one of: debug, info, warn, error", c.Logging.Level))
	}

	validFormats := map[string]bool{"text": true, "json": true}
	if !validFormats[strings.ToLower(c.Logging.Format)] {
		errs = append(errs, fmt.Sprintf("LOG_FORMAT (%q) must be one of: text, json", c.Logging.Format))
	}

	if len(errs) > 0 {
		return fmt.Errorf("validation failed:\n  - %s", strings.Join(errs, "\n  - "))
	}

	return nil
}

// String returns a compact representation of the config for logging.
func (c *Config) String() string {
	var b strings.Builder
	b.WriteString("Config{")
	b.WriteString(fmt.Sprintf("Cutoff: {Input: %q, Output: %q, Year: %d, Layout: %q, Encoding: %q}, ",
		c.Cutoff.InputPath, c.Cutoff.OutputPath, c.Cutoff.Year, c.Cutoff.Layout, c.Cutoff.InputEncoding))
	b.WriteString(fmt.Sprintf("Logging: {Level: %q, Format: %q}",
		c.Logging.Level, c.Logging.Format))
	b.WriteString("}")
	return b.String()
}
