// Package api gearsave REST API
//
// All routes under /api/v1 require the X-API-Key header. /metrics and
// /swagger are left open.
//
// @title           gearsave REST API
// @version         1.0.0
// @description     Decode, encode, verify and archive GearPC and GearController records.
// @host            localhost:8080
// @BasePath        /api/v1
//
// @securityDefinitions.apikey ApiKeyAuth
// @in              header
// @name            X-API-Key
package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/ssargent/gearsave/pkg/gear"
	"github.com/ssargent/gearsave/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

// NewRouter builds the HTTP routes for server. Metrics are served from gatherer.
func NewRouter(server *Server, gatherer prometheus.Gatherer) http.Handler {
	metrics := server.metrics

	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(requestLogger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{"X-Record-Kind"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// Prometheus metrics endpoint (unprotected for scraping)
	r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	// Swagger documentation
	r.Get("/swagger/*", handleSwagger)

	// API key authentication middleware for protected routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(metrics.InstrumentAuthMiddleware(apiKeyMiddleware(server.config.APIKey)))

		// Health check
		r.Get("/health", metrics.InstrumentHandler("GET", "/api/v1/health", server.handleHealth))

		// Codec operations
		r.Post("/records/{kind}/decode", metrics.InstrumentHandler("POST", "/api/v1/records/{kind}/decode", server.handleDecode))
		r.Post("/records/{kind}/encode", metrics.InstrumentHandler("POST", "/api/v1/records/{kind}/encode", server.handleEncode))
		r.Post("/records/{kind}/verify", metrics.InstrumentHandler("POST", "/api/v1/records/{kind}/verify", server.handleVerify))

		// Snapshots
		r.Post("/records/{kind}/snapshots", metrics.InstrumentHandler("POST", "/api/v1/records/{kind}/snapshots", server.handleCreateSnapshot))
		r.Get("/snapshots", metrics.InstrumentHandler("GET", "/api/v1/snapshots", server.handleListSnapshots))
		r.Get("/snapshots/{id}", metrics.InstrumentHandler("GET", "/api/v1/snapshots/{id}", server.handleGetSnapshot))
		r.Get("/snapshots/{id}/record", metrics.InstrumentHandler("GET", "/api/v1/snapshots/{id}/record", server.handleGetSnapshotRecord))
		r.Delete("/snapshots/{id}", metrics.InstrumentHandler("DELETE", "/api/v1/snapshots/{id}", server.handleDeleteSnapshot))
	})

	return r
}

// StartServer serves the API until ctx is cancelled, then shuts down
// gracefully.
func StartServer(ctx context.Context, store SnapshotStore, codec *gear.Codec, config ServerConfig) error {
	// Set Swagger host with port
	SwaggerInfo.Host = fmt.Sprintf("%s:%d", config.Bind, config.Port)

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	server := NewServer(store, codec, config, NewMetrics(reg))

	addr := fmt.Sprintf("%s:%d", config.Bind, config.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           NewRouter(server, reg),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Log.WithField("addr", addr).Info("starting gearsave REST API server")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve %s: %w", addr, err)
	case <-ctx.Done():
		logger.Log.Info("shutting down REST API server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	}
}
