// Festmap - Festival Map Viewport and Selection Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/festmap

// Package logging provides centralized zerolog-based logging for Festmap.
//
// A single global zerolog.Logger is configured once at startup and shared by
// every map component. Components derive child loggers with WithComponent so
// each log line carries its origin ("viewport", "selection", "mapview", ...).
//
// # Quick Start
//
//	logging.Init(logging.Config{Level: "info", Format: "json"})
//
//	logging.Info().Msg("map mounted")
//	logging.Error().Err(err).Str("poi", id).Msg("marker render failed")
//
//	// Mount-scoped logging
//	ctx = logging.ContextWithNewMountID(ctx)
//	logging.Ctx(ctx).Debug().Msg("camera command dropped")
//
// # Configuration
//
// Environment Variables (read by internal/config):
//   - LOG_LEVEL: debug, info, warn, error (default: info)
//   - LOG_FORMAT: json, console (default: json)
//   - LOG_CALLER: true/false - include caller info (default: false)
//
// Always terminate log chains with .Msg() or .Send():
//
//	logging.Info().Str("key", "value").Msg("message")  // Correct
//	logging.Info().Str("key", "value")                 // WRONG - log not emitted
package logging
