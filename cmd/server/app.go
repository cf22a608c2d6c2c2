package main

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/phrazzld/median-api/internal/config"
)

// application holds the dependencies shared by the HTTP server.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB
}

// newApplication creates an application around an already verified connection pool.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) *application {
	return &application{
		config: cfg,
		logger: logger,
		db:     db,
	}
}

// Run serves HTTP until ctx is canceled or the process receives SIGINT/SIGTERM.
func (app *application) Run(ctx context.Context) error {
	return app.startHTTPServer(ctx, app.setupRouter())
}

// setupRouter builds the HTTP handler for this application.
func (app *application) setupRouter() http.Handler {
	return newRouter(app.config, app.logger, databasePinger{db: app.db})
}

// cleanup releases resources held by the application.
func (app *application) cleanup() {
	if app.db == nil {
		return
	}
	if err := app.db.Close(); err != nil {
		app.logger.Error("Error closing database connection", "error", err)
		return
	}
	app.logger.Info("Database connection closed")
}
