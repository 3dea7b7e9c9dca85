// Festmap - Festival Map Viewport and Selection Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/festmap

package viewport

import (
	"context"
	"math"
	"sync"

	"github.com/paulmach/orb"

	"github.com/tomtom215/festmap/internal/logging"
	"github.com/tomtom215/festmap/internal/metrics"
)

// Operation names used in logs and metrics.
const (
	opFlyTo     = "fly_to"
	opFitBounds = "fit_bounds"
	opGetCenter = "get_center"
	opGetZoom   = "get_zoom"
)

// State is a snapshot of the viewport.
type State struct {
	Center orb.Point
	Zoom   float64
	Ready  bool
}

// Controller gates camera access on map readiness. It implements Camera.
type Controller struct {
	renderer Renderer
	opts     Options

	mu       sync.Mutex
	ready    bool
	disposed bool

	// last values reported by the renderer
	center    orb.Point
	hasCenter bool
	zoom      float64
	hasZoom   bool
}

// New creates a not-ready Controller for one map mount.
func New(renderer Renderer, opts Options) *Controller {
	return &Controller{
		renderer: renderer,
		opts:     opts.withDefaults(),
	}
}

// Camera returns the command handle for the host.
func (c *Controller) Camera() Camera {
	return c
}

// Options returns the effective options, defaults applied.
func (c *Controller) Options() Options {
	return c.opts
}

// MarkReady records the renderer's load-complete signal. It returns true only
// for the call that performed the transition.
func (c *Controller) MarkReady(ctx context.Context) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.ready || c.disposed {
		logging.Ctx(ctx).Debug().
			Bool("ready", c.ready).
			Bool("disposed", c.disposed).
			Msg("ignoring repeated map ready signal")
		return false
	}
	c.ready = true
	logging.Ctx(ctx).Info().Str("component", "viewport").Msg("map ready")
	return true
}

// Ready reports whether camera commands currently reach the renderer.
func (c *Controller) Ready() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ready && !c.disposed
}

// Dispose ends the mount. Subsequent commands are dropped and reads return
// fallback values.
func (c *Controller) Dispose() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.disposed = true
}

// FlyTo animates the camera to center. Dropped when not ready.
func (c *Controller) FlyTo(ctx context.Context, center orb.Point, opts ...FlyOption) {
	target := Target{Center: center, Duration: c.opts.FlyDuration}
	for _, opt := range opts {
		opt(&target)
	}

	if !finitePoint(target.Center) || (target.HasZoom && !finite(target.Zoom)) {
		c.drop(ctx, opFlyTo, metrics.DropInvalidTarget)
		return
	}
	if reason := c.gate(); reason != "" {
		c.drop(ctx, opFlyTo, reason)
		return
	}

	metrics.RecordCameraCommand(opFlyTo)
	if err := c.renderer.FlyTo(ctx, target); err != nil {
		logging.Ctx(ctx).Warn().Err(err).Str("operation", opFlyTo).Msg("renderer rejected camera command")
	}
}

// FitBounds frames bounds. Dropped when not ready.
func (c *Controller) FitBounds(ctx context.Context, bounds orb.Bound, opts ...FitOption) {
	target := BoundsTarget{
		Bounds:   bounds,
		Padding:  c.opts.FitPadding,
		Duration: c.opts.FitDuration,
	}
	for _, opt := range opts {
		opt(&target)
	}

	if !validBounds(target.Bounds) {
		c.drop(ctx, opFitBounds, metrics.DropInvalidTarget)
		return
	}
	if reason := c.gate(); reason != "" {
		c.drop(ctx, opFitBounds, reason)
		return
	}

	metrics.RecordCameraCommand(opFitBounds)
	if err := c.renderer.FitBounds(ctx, target); err != nil {
		logging.Ctx(ctx).Warn().Err(err).Str("operation", opFitBounds).Msg("renderer rejected camera command")
	}
}

// GetCenter returns the renderer's live center or a fallback.
func (c *Controller) GetCenter(ctx context.Context) orb.Point {
	if c.gate() == "" {
		p, err := c.renderer.Center(ctx)
		if err == nil && finitePoint(p) {
			c.mu.Lock()
			c.center, c.hasCenter = p, true
			c.mu.Unlock()
			return p
		}
		logging.Ctx(ctx).Debug().Err(err).Str("operation", opGetCenter).Msg("camera read unavailable, using fallback")
	}

	metrics.RecordCameraFallback(opGetCenter)
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.hasCenter {
		return c.center
	}
	return c.opts.InitialCenter
}

// GetZoom returns the renderer's live zoom or a fallback.
func (c *Controller) GetZoom(ctx context.Context) float64 {
	if c.gate() == "" {
		z, err := c.renderer.Zoom(ctx)
		if err == nil && finite(z) {
			c.mu.Lock()
			c.zoom, c.hasZoom = z, true
			c.mu.Unlock()
			return z
		}
		logging.Ctx(ctx).Debug().Err(err).Str("operation", opGetZoom).Msg("camera read unavailable, using fallback")
	}

	metrics.RecordCameraFallback(opGetZoom)
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.hasZoom {
		return c.zoom
	}
	return c.opts.InitialZoom
}

// State returns a snapshot built from reads through GetCenter and GetZoom.
func (c *Controller) State(ctx context.Context) State {
	return State{
		Center: c.GetCenter(ctx),
		Zoom:   c.GetZoom(ctx),
		Ready:  c.Ready(),
	}
}

// gate returns the drop reason, or "" when commands may pass.
func (c *Controller) gate() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	switch {
	case c.disposed:
		return metrics.DropDisposed
	case !c.ready:
		return metrics.DropNotReady
	default:
		return ""
	}
}

func (c *Controller) drop(ctx context.Context, op, reason string) {
	metrics.RecordCameraDrop(op, reason)
	logging.Ctx(ctx).Debug().
		Str("operation", op).
		Str("reason", reason).
		Msg("camera command dropped")
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

func finitePoint(p orb.Point) bool {
	return finite(p.Lon()) && finite(p.Lat())
}

func validBounds(b orb.Bound) bool {
	return finitePoint(b.Min) && finitePoint(b.Max) && b.Min.Lat() <= b.Max.Lat()
}
