// Festmap - Festival Map Viewport and Selection Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/festmap

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Drop reasons for camera commands.
const (
	DropNotReady      = "not_ready"
	DropDisposed      = "disposed"
	DropInvalidTarget = "invalid_target"
)

var (
	// Camera Metrics
	CameraCommands = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "festmap_camera_commands_total",
			Help: "Total number of camera commands forwarded to the renderer",
		},
		[]string{"operation"}, // "fly_to", "fit_bounds"
	)

	CameraCommandsDropped = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "festmap_camera_commands_dropped_total",
			Help: "Total number of camera commands dropped without reaching the renderer",
		},
		[]string{"operation", "reason"},
	)

	CameraReadFallbacks = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "festmap_camera_read_fallbacks_total",
			Help: "Total number of camera reads answered from fallback values",
		},
		[]string{"operation"}, // "get_center", "get_zoom"
	)

	// Interaction Metrics
	SelectionChanges = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "festmap_selection_changes_total",
			Help: "Total number of selection changes",
		},
		[]string{"action"}, // "select", "clear"
	)

	FilterChanges = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "festmap_filter_changes_total",
			Help: "Total number of effective category filter changes",
		},
		[]string{"category"},
	)

	VisiblePOIs = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "festmap_visible_pois",
			Help: "Number of POIs in the current visible set",
		},
	)

	// Rendering Metrics
	MarkerRenderDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "festmap_marker_render_duration_seconds",
			Help:    "Time spent presenting the visible marker set",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1},
		},
	)

	CategoryDefects = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "festmap_category_defects_total",
			Help: "Total number of undeclared (poi type, category) pairs encountered",
		},
		[]string{"poi_type"},
	)

	LinkFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "festmap_link_failures_total",
			Help: "Total number of failed external link opens",
		},
	)
)

// RecordCameraCommand records a command forwarded to the renderer.
func RecordCameraCommand(operation string) {
	CameraCommands.WithLabelValues(operation).Inc()
}

// RecordCameraDrop records a dropped camera command.
func RecordCameraDrop(operation, reason string) {
	CameraCommandsDropped.WithLabelValues(operation, reason).Inc()
}

// RecordCameraFallback records a camera read served from a fallback value.
func RecordCameraFallback(operation string) {
	CameraReadFallbacks.WithLabelValues(operation).Inc()
}

// RecordSelection records a selection change. cleared distinguishes clear()
// from select().
func RecordSelection(cleared bool) {
	action := "select"
	if cleared {
		action = "clear"
	}
	SelectionChanges.WithLabelValues(action).Inc()
}

// RecordFilterChange records an effective filter change. The "no filter"
// value is labeled "all".
func RecordFilterChange(category string) {
	if category == "" {
		category = "all"
	}
	FilterChanges.WithLabelValues(category).Inc()
}

// RecordMarkerRender records one presentation pass over the visible set.
func RecordMarkerRender(duration time.Duration, visible int) {
	MarkerRenderDuration.Observe(duration.Seconds())
	VisiblePOIs.Set(float64(visible))
}

// RecordCategoryDefect records an undeclared (poi type, category) pair.
func RecordCategoryDefect(poiType string) {
	CategoryDefects.WithLabelValues(poiType).Inc()
}

// RecordLinkFailure records a failed external link open.
func RecordLinkFailure() {
	LinkFailures.Inc()
}
