// Festmap - Festival Map Viewport and Selection Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/festmap

package viewport

import (
	"context"
	"time"

	"github.com/paulmach/orb"
)

// Target is an animated camera move.
type Target struct {
	Center orb.Point

	// Zoom is applied over the same duration when HasZoom is set.
	Zoom    float64
	HasZoom bool

	Duration time.Duration
}

// BoundsTarget frames a rectangular region. Bounds.Min is the south-west
// corner and Bounds.Max the north-east corner.
type BoundsTarget struct {
	Bounds   orb.Bound
	Padding  int
	Duration time.Duration
}

// Renderer is the camera primitive of the underlying map engine.
type Renderer interface {
	FlyTo(ctx context.Context, target Target) error
	FitBounds(ctx context.Context, target BoundsTarget) error
	Center(ctx context.Context) (orb.Point, error)
	Zoom(ctx context.Context) (float64, error)
}

// Camera is the imperative command handle given to the host screen.
// None of its methods fail; see the package documentation for the drop and
// fallback rules.
type Camera interface {
	FlyTo(ctx context.Context, center orb.Point, opts ...FlyOption)
	FitBounds(ctx context.Context, bounds orb.Bound, opts ...FitOption)
	GetCenter(ctx context.Context) orb.Point
	GetZoom(ctx context.Context) float64
}
