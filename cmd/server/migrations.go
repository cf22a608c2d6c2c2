package main

import (
	"database/sql"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/pressly/goose/v3"
)

// migrationTableName is the goose bookkeeping table.
const migrationTableName = "schema_migrations"

type migrationFunc func(db *sql.DB, dir string, opts ...goose.OptionsFunc) error

var migrationCommands = map[string]migrationFunc{
	"up":      goose.Up,
	"down":    goose.Down,
	"reset":   goose.Reset,
	"status":  goose.Status,
	"version": goose.Version,
}

// slogGooseLogger adapts the goose logger interface to use slog
type slogGooseLogger struct {
	logger *slog.Logger
}

// Printf implements the goose.Logger Printf method by forwarding messages to slog.Info
func (l *slogGooseLogger) Printf(format string, v ...interface{}) {
	l.logger.Info(strings.TrimSpace(fmt.Sprintf(format, v...)))
}

// Fatalf implements the goose.Logger Fatalf method by forwarding error messages to slog.Error.
// It does not exit; the error is returned to main instead.
func (l *slogGooseLogger) Fatalf(format string, v ...interface{}) {
	l.logger.Error(strings.TrimSpace(fmt.Sprintf(format, v...)))
}

// validMigrationCommands lists the accepted -migrate values.
func validMigrationCommands() []string {
	names := make([]string, 0, len(migrationCommands))
	for name := range migrationCommands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// runMigrations executes a goose command against the SQL files in dir.
func runMigrations(db *sql.DB, dir, command string, logger *slog.Logger) error {
	migrate, ok := migrationCommands[command]
	if !ok {
		return fmt.Errorf("unknown migration command %q (expected one of %s)",
			command, strings.Join(validMigrationCommands(), ", "))
	}
	if dir == "" {
		return fmt.Errorf("migration command %q requires database.migrations_dir to be set", command)
	}

	migrationLogger := logger.With("component", "migrations", "command", command, "dir", dir)

	goose.SetLogger(&slogGooseLogger{logger: migrationLogger})
	goose.SetTableName(migrationTableName)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set dialect: %w", err)
	}

	start := time.Now()
	migrationLogger.Info("Starting migration command")
	if err := migrate(db, dir); err != nil {
		migrationLogger.Error("Migration command failed", "error", err)
		return fmt.Errorf("migration %s failed: %w", command, err)
	}

	migrationLogger.Info("Migration command completed",
		"duration_ms", time.Since(start).Milliseconds())
	return nil
}
