// Festmap - Festival Map Viewport and Selection Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/festmap

// Package services provides suture.Service wrappers for festmap components
// that do not already implement Serve(ctx) themselves.
//
// MetricsServerService turns an *http.Server's ListenAndServe/Shutdown
// lifecycle into suture's context-aware Serve. NewTelemetryRouter is the chi
// router it usually serves: /metrics for Prometheus plus /healthz/live and
// /healthz/ready probes.
package services
