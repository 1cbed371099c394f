package config

import (
	"strings"
	"testing"
)

func validConfig() *Config {
	return &Config{
		Cutoff: CutoffConfig{
			InputPath:     "export.csv",
			OutputPath:    "data/cleaned.csv",
			Year:          2025,
			Layout:        "dcece_pm25",
			InputEncoding: "utf-8",
			SampleCount:   5,
		},
		Logging: LoggingConfig{Level: "info", Format: "text"},
	}
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Cutoff.InputPath != "../DC_PM25_SOCFF (2).csv" {
		t.Errorf("Cutoff.InputPath = %q, want %q", cfg.Cutoff.InputPath, "../DC_PM25_SOCFF (2).csv")
	}
	if cfg.Cutoff.OutputPath != "../data/nursing_cutoffs_2025_cleaned.csv" {
		t.Errorf("Cutoff.OutputPath = %q, want %q", cfg.Cutoff.OutputPath, "../data/nursing_cutoffs_2025_cleaned.csv")
	}
	if cfg.Cutoff.Year != 2025 {
		t.Errorf("Cutoff.Year = %d, want %d", cfg.Cutoff.Year, 2025)
	}
	if cfg.Cutoff.Layout != "dcece_pm25" {
		t.Errorf("Cutoff.Layout = %q, want %q", cfg.Cutoff.Layout, "dcece_pm25")
	}
	if cfg.Cutoff.InputEncoding != "utf-8" {
		t.Errorf("Cutoff.InputEncoding = %q, want %q", cfg.Cutoff.InputEncoding, "utf-8")
	}
	if cfg.Cutoff.SampleCount != 5 {
		t.Errorf("Cutoff.SampleCount = %d, want %d", cfg.Cutoff.SampleCount, 5)
	}
	if cfg.Logging.Level != "info" || cfg.Logging.Format != "text" {
		t.Errorf("Logging = %+v, want info/text", cfg.Logging)
	}
}

func TestLoad_OverrideDefaults(t *testing.T) {
	t.Setenv("CUTOFF_INPUT_PATH", "/tmp/in.csv")
	t.Setenv("CUTOFF_OUTPUT_PATH", "/tmp/out/cleaned.csv")
	t.Setenv("CUTOFF_YEAR", "2024")
	t.Setenv("CUTOFF_INPUT_ENCODING", "windows-1252")
	t.Setenv("CUTOFF_SAMPLE_COUNT", "0")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "json")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Cutoff.InputPath != "/tmp/in.csv" {
		t.Errorf("Cutoff.InputPath = %q, want %q", cfg.Cutoff.InputPath, "/tmp/in.csv")
	}
	if cfg.Cutoff.OutputPath != "/tmp/out/cleaned.csv" {
		t.Errorf("Cutoff.OutputPath = %q, want %q", cfg.Cutoff.OutputPath, "/tmp/out/cleaned.csv")
	}
	if cfg.Cutoff.Year != 2024 {
		t.Errorf("Cutoff.Year = %d, want %d", cfg.Cutoff.Year, 2024)
	}
	if cfg.Cutoff.InputEncoding != "windows-1252" {
		t.Errorf("Cutoff.InputEncoding = %q, want %q", cfg.Cutoff.InputEncoding, "windows-1252")
	}
	if cfg.Cutoff.SampleCount != 0 {
		t.Errorf("Cutoff.SampleCount = %d, want %d", cfg.Cutoff.SampleCount, 0)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want %q", cfg.Logging.Level, "debug")
	}
	if cfg.Logging.Format != "json" {
		t.Errorf("Logging.Format = %q, want %q", cfg.Logging.Format, "json")
	}
}

func TestLoad_BadInteger(t *testing.T) {
	t.Setenv("CUTOFF_YEAR", "twenty")

	_, err := Load()
	if err == nil {
		t.Fatal("Load() expected error for non-numeric CUTOFF_YEAR")
	}
	if !strings.Contains(err.Error(), "config load") {
		t.Errorf("error should be a config load error: %v", err)
	}
}

func TestLoad_InvalidValue(t *testing.T) {
	t.Setenv("CUTOFF_YEAR", "1850")

	_, err := Load()
	if err == nil {
		t.Fatal("Load() expected error for out-of-range CUTOFF_YEAR")
	}
	if !strings.Contains(err.Error(), "CUTOFF_YEAR") {
		t.Errorf("error should mention CUTOFF_YEAR: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{
			name:   "valid",
			mutate: func(c *Config) {},
		},
		{
			name:    "missing input",
			mutate:  func(c *Config) { c.Cutoff.InputPath = " " },
			wantErr: "CUTOFF_INPUT_PATH",
		},
		{
			name:    "missing output",
			mutate:  func(c *Config) { c.Cutoff.OutputPath = "" },
			wantErr: "CUTOFF_OUTPUT_PATH",
		},
		{
			name:    "output overwrites input",
			mutate:  func(c *Config) { c.Cutoff.OutputPath = "./export.csv" },
			wantErr: "must differ",
		},
		{
			name:    "year too large",
			mutate:  func(c *Config) { c.Cutoff.Year = 3000 },
			wantErr: "CUTOFF_YEAR",
		},
		{
			name:    "missing layout",
			mutate:  func(c *Config) { c.Cutoff.Layout = "" },
			wantErr: "CUTOFF_LAYOUT",
		},
		{
			name:    "negative sample count",
			mutate:  func(c *Config) { c.Cutoff.SampleCount = -1 },
			wantErr: "CUTOFF_SAMPLE_COUNT",
		},
		{
			name:    "invalid log level",
			mutate:  func(c *Config) { c.Logging.Level = "verbose" },
			wantErr: "LOG_LEVEL",
		},
		{
			name:    "invalid log format",
			mutate:  func(c *Config) { c.Logging.Format = "xml" },
			wantErr: "LOG_FORMAT",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("Validate() error = %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("Validate() expected error mentioning %s", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error should mention %s: %v", tt.wantErr, err)
			}
		})
	}
}

func TestValidate_CollectsAllErrors(t *testing.T) {
	cfg := validConfig()
	cfg.Cutoff.Year = 0
	cfg.Logging.Level = "loud"

	err := cfg.Validate()
	if err == nil {
		t.Fatal("Validate() expected error")
	}
	for _, want := range []string{"CUTOFF_YEAR", "LOG_LEVEL"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error should mention %s: %v", want, err)
		}
	}
}

func TestConfigString(t *testing.T) {
	s := validConfig().String()

	for _, want := range []string{`Input: "export.csv"`, "Year: 2025", `Layout: "dcece_pm25"`, `Level: "info"`} {
		if !strings.Contains(s, want) {
			t.Errorf("String() = %s, missing %s", s, want)
		}
	}
}
