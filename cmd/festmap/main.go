// Festmap - Festival Map Viewport and Selection Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/festmap

// Package main is the festmap preview host.
//
// It mounts the festival map engine on the headless renderer and keeps it
// running under a supervisor tree, which makes it useful for checking a POI
// document and a camera configuration before they ship to the app:
//
//  1. Configuration: defaults, config.yaml, then environment (koanf)
//  2. POI document: native JSON or GeoJSON from POI_PATH
//  3. Map mount: category filter, markers, viewport and selection
//  4. Supervisor tree: map event loop, optional /metrics listener
//
// The rendered marker set and per-category counts are logged once the map
// reports ready. SIGINT or SIGTERM shut the tree down gracefully.
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tomtom215/festmap/internal/config"
	"github.com/tomtom215/festmap/internal/headless"
	"github.com/tomtom215/festmap/internal/logging"
	"github.com/tomtom215/festmap/internal/mapview"
	"github.com/tomtom215/festmap/internal/models"
	"github.com/tomtom215/festmap/internal/poisource"
	"github.com/tomtom215/festmap/internal/supervisor"
	"github.com/tomtom215/festmap/internal/supervisor/services"
)

func main() {
	cfg, err := config.LoadWithKoanf()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Caller:    cfg.Logging.Caller,
		Timestamp: true,
	})
	logging.Info().
		Str("environment", cfg.Environment).
		Str("map", cfg.Map.String()).
		Str("poi_path", cfg.Data.POIPath).
		Msg("Configuration loaded")

	doc, err := poisource.LoadFile(cfg.Data.POIPath)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load POI document")
	}
	logging.Info().Str("festival", doc.Festival).Int("pois", len(doc.POIs)).Msg("POI document loaded")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	renderer := headless.New(cfg.Map.Center(), cfg.Map.Zoom)
	m := mapview.New(ctx, renderer, mapview.Options{
		Viewport: cfg.Map.Viewport(),
		Handlers: hostHandlers(),
		Links:    &headless.Links{},
		Strict:   cfg.IsDevelopment(),
	})
	loop := mapview.NewLoop(m, 0)

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger("supervisor"), supervisor.DefaultTreeConfig())
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}
	tree.AddEngineService(loop)
	if cfg.Metrics.Enabled {
		server := services.NewMetricsServer(cfg.Metrics.Address, m.Ready)
		tree.AddTelemetryService(services.NewMetricsServerService(server, 10*time.Second))
		logging.Info().Str("addr", cfg.Metrics.Address).Msg("Metrics server service added")
	}

	watchConfig()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
	}()

	logging.Info().Msg("Starting supervisor tree...")
	errCh := tree.ServeBackground(ctx)

	err = loop.Do(ctx, func(ctx context.Context, m *mapview.Map) {
		mountPOIs(ctx, m, doc.POIs, cfg.Map.Latitude == 0 && cfg.Map.Longitude == 0)
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		logging.Error().Err(err).Msg("Failed to mount POIs")
	}

	if err := waitForTree(ctx, errCh); err != nil && !errors.Is(err, context.Canceled) {
		logging.Error().Err(err).Msg("Supervisor tree error")
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	for _, svc := range unstopped {
		logging.Warn().Str("service", svc.Name).Msg("Service failed to stop")
	}

	// The loop has stopped, so the map is ours again.
	m.Dispose(context.Background())
	logging.Info().Msg("Application stopped gracefully")
}

// waitForTree blocks until the supervisor tree has stopped and returns its
// exit error. ServeBackground sends exactly one value and never closes the
// channel, so it is received once.
func waitForTree(ctx context.Context, errCh <-chan error) error {
	select {
	case <-ctx.Done():
		logging.Info().Msg("Context canceled, waiting for supervisor to finish...")
		return <-errCh
	case err := <-errCh:
		return err
	}
}

// mountPOIs loads pois into m, signals ready and logs the rendered markers.
// Without a configured center the camera frames every POI.
func mountPOIs(ctx context.Context, m *mapview.Map, pois []models.POI, frame bool) {
	if err := m.SetPOIs(ctx, pois); err != nil {
		logging.Error().Err(err).Msg("POI document rejected, map stays empty")
	}
	m.MapReady(ctx)
	if frame {
		m.FitToVisible(ctx)
	}

	counts := m.Counts()
	summary := logging.Info()
	for _, choice := range m.Choices() {
		key := string(choice.Category)
		if choice.Category.IsAll() {
			key = "all"
		}
		summary = summary.Int(key, counts[choice.Category])
	}
	summary.Int("markers", len(m.Markers())).Msg("Map ready")

	state := m.Camera()
	logging.Info().
		Float64("latitude", state.GetCenter(ctx).Lat()).
		Float64("longitude", state.GetCenter(ctx).Lon()).
		Float64("zoom", state.GetZoom(ctx)).
		Msg("Camera positioned")
}

func hostHandlers() mapview.Handlers {
	return mapview.Handlers{
		OnPOISelect: func(p models.POI) {
			logging.Info().Str("poi", p.ID).Str("name", p.Name).Msg("POI selected")
		},
		OnCategoryChange: func(c models.Category) {
			logging.Info().Str("category", string(c)).Msg("Category filter changed")
		},
	}
}

// watchConfig reapplies the log level when the config file changes.
func watchConfig() {
	path := config.ConfigFile()
	if path == "" {
		return
	}
	err := config.WatchConfigFile(path, func() {
		cfg, err := config.LoadWithKoanf()
		if err != nil {
			logging.Warn().Err(err).Msg("Config reload failed, keeping current settings")
			return
		}
		logging.SetLevelString(cfg.Logging.Level)
		logging.Info().Str("level", cfg.Logging.Level).Msg("Configuration reloaded")
	})
	if err != nil {
		logging.Warn().Err(err).Str("path", path).Msg("Config file watch unavailable")
	}
}
