// FILE: alin/src/internal/config/validation.go
package config

import (
	"fmt"

	lconfig "github.com/lixenwraith/config"
)

// validateConfig is the centralized validator for the entire configuration
func validateConfig(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("config is nil")
	}

	if err := lconfig.NonEmpty(cfg.FilterLevel); err != nil {
		return fmt.Errorf("filter_level: %w", err)
	}

	if cfg.AlertThreshold < 0 {
		return fmt.Errorf("alert_threshold must be non-negative: %d", cfg.AlertThreshold)
	}

	validFormats := map[string]bool{
		"text": true, "plain": true, "json": true, "structured": true,
	}
	if !validFormats[cfg.AlertFormat] {
		return fmt.Errorf("invalid alert format: %s", cfg.AlertFormat)
	}

	if cfg.MaxInputBytes <= 0 {
		return fmt.Errorf("max_input_bytes must be positive: %d", cfg.MaxInputBytes)
	}

	validTools := map[string]bool{
		"auto": true, "sips": true, "convert": true, "imagemagick": true,
	}
	if !validTools[cfg.ImageTool] {
		return fmt.Errorf("invalid image tool: %s", cfg.ImageTool)
	}

	if err := validateLogConfig(cfg.Logging); err != nil {
		return fmt.Errorf("logging config: %w", err)
	}

	return nil
}
