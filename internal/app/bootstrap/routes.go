// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	errorsfeature "github.com/dalemusser/tyte/internal/app/features/errors"
	healthfeature "github.com/dalemusser/tyte/internal/app/features/health"
	homefeature "github.com/dalemusser/tyte/internal/app/features/home"
	statusfeature "github.com/dalemusser/tyte/internal/app/features/status"
	usersfeature "github.com/dalemusser/tyte/internal/app/features/users"
	"github.com/dalemusser/tyte/internal/app/system/metrics"
	"github.com/dalemusser/waffle/config"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// any Startup hooks have completed. The API lives under /api; /health and
// /metrics sit at the root for load balancers and scrapers.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	logger = withLogFile(appCfg, logger)

	// Create error logger for handlers.
	errLog := errorsfeature.NewErrorLogger(logger)

	r := chi.NewRouter()
	r.NotFound(errorsfeature.NotFound)
	r.MethodNotAllowed(errorsfeature.MethodNotAllowed)

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(logger))
	r.Use(errorsfeature.Recoverer(logger))
	r.Use(metrics.Middleware)
	r.Use(corsHandler(appCfg.CORSAllowedOrigins))

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.MongoClient, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	api := chi.NewRouter()
	api.NotFound(errorsfeature.NotFound)
	api.MethodNotAllowed(errorsfeature.MethodNotAllowed)

	homefeature.Routes(api, homefeature.NewHandler())

	usersHandler := usersfeature.NewHandler(deps.MongoDatabase, errLog, logger)
	usersfeature.Routes(api, usersHandler)

	statusHandler := statusfeature.NewHandler(deps.MongoDatabase, errLog, logger)
	api.Mount("/status", statusfeature.Routes(statusHandler))

	r.Mount("/api", api)

	return r, nil
}

// corsHandler allows every method and header from the configured origins.
// Credentials are only allowed for an explicit origin list; browsers
// reject a credentialed response to a wildcard origin anyway.
func corsHandler(origins []string) func(http.Handler) http.Handler {
	wildcard := false
	for _, o := range origins {
		if o == "*" {
			wildcard = true
		}
	}

	return cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{
			http.MethodGet, http.MethodHead, http.MethodPost, http.MethodPut,
			http.MethodPatch, http.MethodDelete, http.MethodOptions,
		},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: !wildcard,
		MaxAge:           300,
	})
}
