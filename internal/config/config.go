// Package config provides centralized configuration management for the cleaner.
// It loads configuration from environment variables with defaults matching
// the cleaner's standard file locations, and validates all settings on
// startup to fail fast on misconfiguration.
package config

// Config holds all application configuration.
// All settings can be configured via environment variables.
type Config struct {
	Cutoff  CutoffConfig  `envconfig:"CUTOFF"`
	Logging LoggingConfig `envconfig:"LOG"`
}

// CutoffConfig holds the settings of a cleaning run.
type CutoffConfig struct {
	// InputPath is the raw export to clean
	InputPath string `envconfig:"INPUT_PATH" default:"../DC_PM25_SOCFF (2).csv"`

	// OutputPath is where the cleaned CSV is written
	OutputPath string `envconfig:"OUTPUT_PATH" default:"../data/nursing_cutoffs_2025_cleaned.csv"`

	// Year is stamped on every cleaned record (default: 2025)
	Year int `envconfig:"YEAR" default:"2025"`

	// Layout selects the registered export layout (default: dcece_pm25)
	Layout string `envconfig:"LAYOUT" default:"dcece_pm25"`

	// InputEncoding is the text encoding of the export (default: utf-8)
	InputEncoding string `envconfig:"INPUT_ENCODING" default:"utf-8"`

	// SampleCount is how many accepted records are printed as samples (default: 5)
	SampleCount int `envconfig:"SAMPLE_COUNT" default:"5"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: debug, info, warn, error (default: info)
	Level string `envconfig:"LEVEL" default:"info"`

	// Format is the log format: text or json (default: text)
	Format string `envconfig:"FORMAT" default:"text"`
}
