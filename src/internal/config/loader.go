// FILE: alin/src/internal/config/loader.go
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	lconfig "github.com/lixenwraith/config"
)

const envPrefix = "ALIN_"

// Load resolves configuration from defaults, an optional TOML file, ALIN_*
// environment variables and command-line arguments, in increasing priority.
func Load(cliArgs []string) (*Config, error) {
	builder := lconfig.NewBuilder().
		WithDefaults(defaults()).
		WithEnvPrefix(envPrefix)

	// The file is optional; only hand it over when present
	configPath := GetConfigPath()
	if _, err := os.Stat(configPath); err == nil {
		builder = builder.
			WithFile(configPath).
			WithSecurityOptions(lconfig.SecurityOptions{
				MaxFileSize: 1 << 20,
			})
	}

	cfg, err := builder.
		WithArgs(cliArgs).
		WithEnvTransform(customEnvTransform).
		WithSources(
			lconfig.SourceCLI,
			lconfig.SourceEnv,
			lconfig.SourceFile,
			lconfig.SourceDefault,
		).
		Build()

	if err != nil {
		if !strings.Contains(err.Error(), "not found") {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
	}

	finalConfig := &Config{}
	if err := cfg.Scan("", finalConfig); err != nil {
		return nil, fmt.Errorf("failed to scan config: %w", err)
	}

	normalize(finalConfig)
	return finalConfig, validateConfig(finalConfig)
}

func customEnvTransform(path string) string {
	env := strings.ReplaceAll(path, ".", "_")
	env = strings.ToUpper(env)
	env = envPrefix + env
	return env
}

// normalize folds case-insensitive enum values to their canonical form.
func normalize(cfg *Config) {
	cfg.AlertFormat = strings.ToLower(strings.TrimSpace(cfg.AlertFormat))
	cfg.ImageTool = strings.ToLower(strings.TrimSpace(cfg.ImageTool))
	cfg.FilterLevel = strings.TrimSpace(cfg.FilterLevel)
	if cfg.Logging != nil {
		cfg.Logging.Level = strings.ToLower(cfg.Logging.Level)
		cfg.Logging.Output = strings.ToLower(cfg.Logging.Output)
	}
}

// GetConfigPath returns the config file location from ALIN_CONFIG_FILE and
// ALIN_CONFIG_DIR, falling back to ~/.config/alin.toml.
func GetConfigPath() string {
	if configFile := os.Getenv("ALIN_CONFIG_FILE"); configFile != "" {
		if filepath.IsAbs(configFile) {
			return configFile
		}
		if configDir := os.Getenv("ALIN_CONFIG_DIR"); configDir != "" {
			return filepath.Join(configDir, configFile)
		}
		return configFile
	}

	if configDir := os.Getenv("ALIN_CONFIG_DIR"); configDir != "" {
		return filepath.Join(configDir, "alin.toml")
	}

	if homeDir, err := os.UserHomeDir(); err == nil {
		return filepath.Join(homeDir, ".config", "alin.toml")
	}

	return "alin.toml"
}
