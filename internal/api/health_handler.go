package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/phrazzld/median-api/internal/api/shared"
)

// Pinger checks that a dependency is reachable. Implementations return a
// *store.DatabaseError when the database cannot be reached.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// HealthHandler reports whether the server can reach its database.
type HealthHandler struct {
	db      Pinger
	timeout time.Duration
	logger  *slog.Logger
}

// NewHealthHandler creates a HealthHandler that bounds each ping by timeout.
func NewHealthHandler(db Pinger, timeout time.Duration, logger *slog.Logger) *HealthHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &HealthHandler{
		db:      db,
		timeout: timeout,
		logger:  logger.With("component", "health_handler"),
	}
}

// Check handles GET /health
// @Summary      Health check
// @Description  Pings the database and reports whether the server is ready
// @Tags         health
// @Produce      json
// @Success      200  {object}  api.HealthResponse
// @Failure      500  {object}  shared.ErrorResponse
// @Router       /health [get]
func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()
	if h.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.timeout)
		defer cancel()
	}

	if err := h.db.PingContext(ctx); err != nil {
		h.logger.WarnContext(ctx, "health check failed", "trace_id", shared.GetTraceID(ctx))
		return err
	}

	shared.RespondWithJSON(w, r, http.StatusOK, HealthResponse{Status: "ok"})
	return nil
}
