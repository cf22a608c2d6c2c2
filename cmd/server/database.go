package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	_ "github.com/jackc/pgx/v5/stdlib" // registers the "pgx" database/sql driver
	"github.com/phrazzld/median-api/internal/config"
	"github.com/phrazzld/median-api/internal/platform/postgres"
)

// setupAppDatabase opens the connection pool and verifies the database is reachable.
// A failed ping is returned as a classified *store.DatabaseError.
func setupAppDatabase(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*sql.DB, error) {
	db, err := sql.Open("pgx", cfg.Database.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime())

	pingCtx, cancel := context.WithTimeout(ctx, cfg.Database.PingTimeout())
	defer cancel()

	if err := postgres.PingContext(pingCtx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logger.Info("Database connection established")
	return db, nil
}

// databasePinger classifies ping failures so the health endpoint can
// hand them to the database error translator.
type databasePinger struct {
	db *sql.DB
}

// PingContext implements api.Pinger.
func (p databasePinger) PingContext(ctx context.Context) error {
	return postgres.PingContext(ctx, p.db)
}
