// Festmap - Festival Map Viewport and Selection Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/festmap

package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/goccy/go-json"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tomtom215/festmap/internal/logging"
)

// HTTPServer matches the *http.Server lifecycle methods.
type HTTPServer interface {
	ListenAndServe() error
	Shutdown(ctx context.Context) error
}

// ReadinessFunc reports whether the map engine is ready.
type ReadinessFunc func() bool

type healthResponse struct {
	Status string `json:"status"`
	Ready  bool   `json:"ready"`
}

// NewTelemetryRouter serves Prometheus metrics on /metrics and liveness and
// readiness probes under /healthz. A nil ready is treated as always ready.
func NewTelemetryRouter(ready ReadinessFunc) http.Handler {
	if ready == nil {
		ready = func() bool { return true }
	}

	r := chi.NewRouter()
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)

	r.Handle("/metrics", promhttp.Handler())
	r.Route("/healthz", func(r chi.Router) {
		r.Get("/live", func(w http.ResponseWriter, _ *http.Request) {
			writeHealth(w, http.StatusOK, healthResponse{Status: "ok", Ready: ready()})
		})
		r.Get("/ready", func(w http.ResponseWriter, _ *http.Request) {
			if !ready() {
				writeHealth(w, http.StatusServiceUnavailable, healthResponse{Status: "starting"})
				return
			}
			writeHealth(w, http.StatusOK, healthResponse{Status: "ok", Ready: true})
		})
	})
	return r
}

func writeHealth(w http.ResponseWriter, status int, body healthResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logging.Debug().Err(err).Msg("failed to write health response")
	}
}

// NewMetricsServer returns an *http.Server for the telemetry router.
func NewMetricsServer(addr string, ready ReadinessFunc) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           NewTelemetryRouter(ready),
		ReadHeaderTimeout: 5 * time.Second,
	}
}

// MetricsServerService runs an HTTP server as a supervised service.
//
// ListenAndServe runs in a goroutine; on context cancellation the server is
// shut down within shutdownTimeout. http.ErrServerClosed is not a failure.
type MetricsServerService struct {
	server          HTTPServer
	shutdownTimeout time.Duration
	name            string
}

// NewMetricsServerService wraps server. A non-positive shutdownTimeout
// defaults to 10s.
func NewMetricsServerService(server HTTPServer, shutdownTimeout time.Duration) *MetricsServerService {
	if shutdownTimeout <= 0 {
		shutdownTimeout = 10 * time.Second
	}
	return &MetricsServerService{
		server:          server,
		shutdownTimeout: shutdownTimeout,
		name:            "metrics-server",
	}
}

// Serve implements suture.Service.
func (s *MetricsServerService) Serve(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("metrics server failed: %w", err)
		}
		return nil

	case <-ctx.Done():
		// The original context is canceled; shut down on a fresh one.
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
		defer cancel()

		if err := s.server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("metrics server shutdown failed: %w", err)
		}
		<-errCh
		return ctx.Err()
	}
}

// String names the service in supervisor logs.
func (s *MetricsServerService) String() string {
	return s.name
}
