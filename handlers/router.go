package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
)

type RouterConfig struct {
	ExportRoute    string
	AllowedOrigins []string

	// RateLimitRequests per RateLimitWindow and client IP on the export
	// route, 0 disables the limiter
	RateLimitRequests int
	RateLimitWindow   time.Duration

	RequestTimeout time.Duration
}

// NewRouter wires the export, health and metrics endpoints.
func NewRouter(cfg RouterConfig, export *ExportHandler, health *HealthHandler) http.Handler {
	r := chi.NewRouter()

	corsHandler := cors.New(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", RequestIDHeader},
		ExposedHeaders: []string{RequestIDHeader},
		MaxAge:         300,
	})

	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}

	r.Use(chimiddleware.RealIP)
	r.Use(RequestLogger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(timeout))
	r.Use(corsHandler.Handler)

	exportRoute := r.With()
	if cfg.RateLimitRequests > 0 {
		exportRoute = r.With(httprate.LimitByIP(cfg.RateLimitRequests, cfg.RateLimitWindow))
	}
	exportRoute.Get(cfg.ExportRoute, export.ListPersons)

	r.Get("/healthz", health.Health)
	r.Handle("/metrics", promhttp.Handler())

	return r
}
