package main

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/median-api/docs"
	"github.com/phrazzld/median-api/internal/api"
	apiMiddleware "github.com/phrazzld/median-api/internal/api/middleware"
	"github.com/phrazzld/median-api/internal/config"
	httpSwagger "github.com/swaggo/http-swagger"
)

// docsPath is where the Swagger UI and the OpenAPI document are mounted.
const docsPath = "/api"

// newRouter wires middleware, the health endpoint and the API documentation.
func newRouter(cfg *config.Config, logger *slog.Logger, db api.Pinger) http.Handler {
	docs.SwaggerInfo.Title = cfg.Docs.Title
	docs.SwaggerInfo.Description = cfg.Docs.Description
	docs.SwaggerInfo.Version = cfg.Docs.Version

	translator := api.NewDatabaseErrorTranslator(logger)
	errHandler := api.NewErrorHandler(translator)
	healthHandler := api.NewHealthHandler(db, cfg.Database.PingTimeout(), logger)

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(apiMiddleware.NewTraceMiddleware(logger))
	r.Use(apiMiddleware.NewRequestLogger(logger))
	r.Use(middleware.Recoverer)

	r.NotFound(errHandler.NotFound)
	r.MethodNotAllowed(errHandler.MethodNotAllowed)

	r.Get("/health", errHandler.Wrap(healthHandler.Check))

	r.Get(docsPath, func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, docsPath+"/index.html", http.StatusMovedPermanently)
	})
	r.Get(docsPath+"/*", httpSwagger.Handler(
		httpSwagger.URL(docsPath+"/doc.json"),
	))

	return r
}
