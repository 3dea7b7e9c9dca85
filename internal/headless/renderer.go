// Festmap - Festival Map Viewport and Selection Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/festmap

// Package headless provides an in-memory map renderer. Camera moves complete
// instantly and every command is recorded, which makes it the renderer of
// choice for tests and for the preview binary.
package headless

import (
	"context"
	"errors"
	"math"
	"sync"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/project"
	"github.com/rs/zerolog"

	"github.com/tomtom215/festmap/internal/logging"
	"github.com/tomtom215/festmap/internal/marker"
	"github.com/tomtom215/festmap/internal/viewport"
)

// ErrReadUnavailable is returned by camera reads while reads are disabled.
var ErrReadUnavailable = errors.New("headless: camera read unavailable")

// Default screen size in pixels, a typical phone portrait viewport.
const (
	DefaultWidth  = 390
	DefaultHeight = 844
	MaxZoom       = 20.0
	tileSize      = 256.0
)

// Renderer implements viewport.Renderer and the map marker layer.
type Renderer struct {
	mu sync.Mutex

	width, height int
	center        orb.Point
	zoom          float64
	readsDisabled bool

	flights    []viewport.Target
	fits       []viewport.BoundsTarget
	markers    []marker.Marker
	placements int

	logger zerolog.Logger
}

// New returns a renderer showing center at zoom.
func New(center orb.Point, zoom float64) *Renderer {
	return &Renderer{
		width:  DefaultWidth,
		height: DefaultHeight,
		center: center,
		zoom:   zoom,
		logger: logging.WithComponent("headless"),
	}
}

// FlyTo jumps to the target immediately.
func (r *Renderer) FlyTo(_ context.Context, t viewport.Target) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.flights = append(r.flights, t)
	r.center = t.Center
	if t.HasZoom {
		r.zoom = t.Zoom
	}
	r.logger.Debug().
		Float64("lon", t.Center.Lon()).
		Float64("lat", t.Center.Lat()).
		Dur("duration", t.Duration).
		Msg("fly to")
	return nil
}

// FitBounds centers the bounds and picks the largest zoom that fits them
// inside the padded screen.
func (r *Renderer) FitBounds(_ context.Context, b viewport.BoundsTarget) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.fits = append(r.fits, b)
	r.center = b.Bounds.Center()
	r.zoom = fitZoom(b.Bounds, r.width-2*b.Padding, r.height-2*b.Padding)
	r.logger.Debug().
		Float64("zoom", r.zoom).
		Int("padding", b.Padding).
		Dur("duration", b.Duration).
		Msg("fit bounds")
	return nil
}

// Center returns the current camera center.
func (r *Renderer) Center(_ context.Context) (orb.Point, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.readsDisabled {
		return orb.Point{}, ErrReadUnavailable
	}
	return r.center, nil
}

// Zoom returns the current zoom level.
func (r *Renderer) Zoom(_ context.Context) (float64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.readsDisabled {
		return 0, ErrReadUnavailable
	}
	return r.zoom, nil
}

// PlaceMarkers replaces the rendered marker set.
func (r *Renderer) PlaceMarkers(_ context.Context, markers []marker.Marker) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.markers = append(r.markers[:0:0], markers...)
	r.placements++
	return nil
}

// SetReadsDisabled makes Center and Zoom fail, simulating a renderer that has
// not reported a camera yet.
func (r *Renderer) SetReadsDisabled(disabled bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.readsDisabled = disabled
}

// Flights returns every FlyTo received, oldest first.
func (r *Renderer) Flights() []viewport.Target {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]viewport.Target(nil), r.flights...)
}

// Fits returns every FitBounds received, oldest first.
func (r *Renderer) Fits() []viewport.BoundsTarget {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]viewport.BoundsTarget(nil), r.fits...)
}

// Markers returns the currently placed markers.
func (r *Renderer) Markers() []marker.Marker {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]marker.Marker(nil), r.markers...)
}

// Placements returns how many times PlaceMarkers was called.
func (r *Renderer) Placements() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.placements
}

// worldMeters is the width of the Web Mercator plane at zoom 0.
const worldMeters = 2 * math.Pi * orb.EarthRadius

// fitZoom is the Web Mercator zoom at which b spans at most w x h pixels.
func fitZoom(b orb.Bound, w, h int) float64 {
	if w <= 0 || h <= 0 {
		return 0
	}
	span := project.Bound(b, project.WGS84.ToMercator)
	dx, dy := span.Right()-span.Left(), span.Top()-span.Bottom()
	if dx <= 0 && dy <= 0 {
		return MaxZoom
	}

	zoom := MaxZoom
	if dx > 0 {
		zoom = math.Min(zoom, math.Log2(float64(w)*worldMeters/(tileSize*dx)))
	}
	if dy > 0 {
		zoom = math.Min(zoom, math.Log2(float64(h)*worldMeters/(tileSize*dy)))
	}
	return math.Max(0, zoom)
}
