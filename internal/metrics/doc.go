// Festmap - Festival Map Viewport and Selection Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/festmap

/*
Package metrics provides Prometheus instrumentation for the map engine.

# Available Metrics

Camera:
  - festmap_camera_commands_total{operation}: commands forwarded to the renderer
  - festmap_camera_commands_dropped_total{operation,reason}: commands dropped
    before the map was ready, after dispose, or for invalid targets
  - festmap_camera_read_fallbacks_total{operation}: reads answered from fallback values

Interaction:
  - festmap_selection_changes_total{action}: select / clear
  - festmap_filter_changes_total{category}: effective filter changes
  - festmap_visible_pois: size of the current visible set

Rendering:
  - festmap_marker_render_duration_seconds: time to present the visible set
  - festmap_category_defects_total{poi_type}: undeclared (type, category) pairs
  - festmap_link_failures_total: external link open failures

Collectors are registered on the default registry through promauto; the
preview binary exposes them at /metrics.
*/
package metrics
