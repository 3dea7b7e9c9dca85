// Festmap - Festival Map Viewport and Selection Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/festmap

package viewport

import (
	"time"

	"github.com/paulmach/orb"
)

const (
	// DefaultFlyDuration is the FlyTo animation length.
	DefaultFlyDuration = 1000 * time.Millisecond

	// DefaultFitDuration is the FitBounds animation length.
	DefaultFitDuration = 1000 * time.Millisecond

	// DefaultFitPadding is the FitBounds edge padding in pixels.
	DefaultFitPadding = 50
)

// Options configures a Controller. Zero durations and padding take the
// package defaults.
type Options struct {
	InitialCenter orb.Point
	InitialZoom   float64

	FlyDuration time.Duration
	FitDuration time.Duration
	FitPadding  int
}

func (o Options) withDefaults() Options {
	if o.FlyDuration <= 0 {
		o.FlyDuration = DefaultFlyDuration
	}
	if o.FitDuration <= 0 {
		o.FitDuration = DefaultFitDuration
	}
	if o.FitPadding <= 0 {
		o.FitPadding = DefaultFitPadding
	}
	return o
}

// FlyOption adjusts a single FlyTo command.
type FlyOption func(*Target)

// WithZoom animates the zoom level alongside the center.
func WithZoom(zoom float64) FlyOption {
	return func(t *Target) {
		t.Zoom = zoom
		t.HasZoom = true
	}
}

// WithDuration overrides the FlyTo animation length.
func WithDuration(d time.Duration) FlyOption {
	return func(t *Target) {
		if d > 0 {
			t.Duration = d
		}
	}
}

// FitOption adjusts a single FitBounds command.
type FitOption func(*BoundsTarget)

// WithPadding overrides the FitBounds padding in pixels.
func WithPadding(px int) FitOption {
	return func(b *BoundsTarget) {
		if px >= 0 {
			b.Padding = px
		}
	}
}

// WithFitDuration overrides the FitBounds animation length.
func WithFitDuration(d time.Duration) FitOption {
	return func(b *BoundsTarget) {
		if d > 0 {
			b.Duration = d
		}
	}
}
