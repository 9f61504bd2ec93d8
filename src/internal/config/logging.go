// FILE: alin/src/internal/config/logging.go
package config

import "fmt"

// LogConfig controls diagnostic logging. Diagnostics never go to stdout,
// which carries records.
type LogConfig struct {
	// Output mode: "stderr", "file", "none"
	Output string `toml:"output"`

	// Log level: "debug", "info", "warn", "error"
	Level string `toml:"level"`

	// File output settings (when Output is "file")
	File *LogFileConfig `toml:"file"`
}

type LogFileConfig struct {
	// Directory for log files
	Directory string `toml:"directory"`

	// Base name for log files
	Name string `toml:"name"`

	// Maximum size per log file in MB
	MaxSizeMB int64 `toml:"max_size_mb"`
}

// DefaultLogConfig keeps nodes quiet unless something goes wrong.
func DefaultLogConfig() *LogConfig {
	return &LogConfig{
		Output: "stderr",
		Level:  "warn",
		File: &LogFileConfig{
			Directory: "./log",
			Name:      "alin",
			MaxSizeMB: 10,
		},
	}
}

func validateLogConfig(cfg *LogConfig) error {
	if cfg == nil {
		return fmt.Errorf("logging config is nil")
	}

	validOutputs := map[string]bool{
		"stderr": true, "file": true, "none": true,
	}
	if !validOutputs[cfg.Output] {
		return fmt.Errorf("invalid log output mode: %s", cfg.Output)
	}

	validLevels := map[string]bool{
		"debug": true, "info": true, "warn": true, "error": true,
	}
	if !validLevels[cfg.Level] {
		return fmt.Errorf("invalid log level: %s", cfg.Level)
	}

	if cfg.Output == "file" {
		if cfg.File == nil {
			return fmt.Errorf("file output requires [logging.file]")
		}
		if cfg.File.Directory == "" || cfg.File.Name == "" {
			return fmt.Errorf("file output requires directory and name")
		}
	}

	return nil
}
