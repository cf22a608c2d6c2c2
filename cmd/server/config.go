package main

import (
	"fmt"
	"log/slog"

	"github.com/phrazzld/median-api/internal/config"
	"github.com/phrazzld/median-api/internal/platform/logger"
	"github.com/phrazzld/median-api/internal/redact"
)

// loadAppConfig loads the application configuration from environment variables or config file.
func loadAppConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return cfg, nil
}

// setupAppLogger configures the process-wide logger and reports the loaded settings.
func setupAppLogger(cfg *config.Config) (*slog.Logger, error) {
	l, err := logger.Setup(cfg.Server)
	if err != nil {
		return nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	l.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"log_format", cfg.Server.LogFormat)
	l.Debug("Database configuration",
		"url", redact.String(cfg.Database.URL),
		"max_open_conns", cfg.Database.MaxOpenConns,
		"migrations_dir", cfg.Database.MigrationsDir)

	return l, nil
}
