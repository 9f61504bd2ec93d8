// FILE: alin/src/cmd/alin/bootstrap.go
package main

import (
	"fmt"
	"strings"
	"time"

	"alin/src/internal/config"
	"alin/src/internal/version"

	"github.com/lixenwraith/log"
)

// setup loads configuration for one node invocation and starts the logger.
func setup(args []string) (*config.Config, *log.Logger, func(), error) {
	cfg, err := config.Load(args)
	if err != nil {
		return nil, nil, nil, err
	}

	logger, err := initializeLogger(cfg)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	logger.Debug("msg", "alin starting",
		"component", "main",
		"version", version.Short(),
		"config_file", config.GetConfigPath(),
		"state_file", cfg.StateFile,
		"log_output", cfg.Logging.Output)

	return cfg, logger, func() { shutdownLogger(logger) }, nil
}

// initializeLogger sets up the logger based on configuration. Console
// output always targets stderr because stdout carries records.
func initializeLogger(cfg *config.Config) (*log.Logger, error) {
	logger := log.NewLogger()

	var configArgs []string

	levelValue, err := parseLogLevel(cfg.Logging.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}
	configArgs = append(configArgs, fmt.Sprintf("level=%d", levelValue))

	switch cfg.Logging.Output {
	case "none":
		configArgs = append(configArgs, "disable_file=true", "enable_stdout=false")

	case "stderr":
		configArgs = append(configArgs,
			"disable_file=true",
			"enable_stdout=true",
			"stdout_target=stderr",
			"format=txt")

	case "file":
		configArgs = append(configArgs, "enable_stdout=false")
		configureFileLogging(&configArgs, cfg)

	default:
		return nil, fmt.Errorf("invalid log output mode: %s", cfg.Logging.Output)
	}

	if err := logger.InitWithDefaults(configArgs...); err != nil {
		return nil, err
	}
	return logger, nil
}

// configureFileLogging sets up file-based logging parameters
func configureFileLogging(configArgs *[]string, cfg *config.Config) {
	if cfg.Logging.File != nil {
		*configArgs = append(*configArgs,
			fmt.Sprintf("directory=%s", cfg.Logging.File.Directory),
			fmt.Sprintf("name=%s", cfg.Logging.File.Name),
			fmt.Sprintf("max_size_mb=%d", cfg.Logging.File.MaxSizeMB))
	}
}

func parseLogLevel(level string) (int, error) {
	switch strings.ToLower(level) {
	case "debug":
		return int(log.LevelDebug), nil
	case "info":
		return int(log.LevelInfo), nil
	case "warn", "warning":
		return int(log.LevelWarn), nil
	case "error":
		return int(log.LevelError), nil
	default:
		return 0, fmt.Errorf("unknown log level: %s", level)
	}
}

func shutdownLogger(logger *log.Logger) {
	if logger != nil {
		if err := logger.Shutdown(2 * time.Second); err != nil {
			// Best effort - can't log the shutdown error
			Error("Logger shutdown error: %v\n", err)
		}
	}
}
