// Festmap - Festival Map Viewport and Selection Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/festmap

// Package selection tracks the single selected POI and recenters the camera
// when it changes.
package selection

import (
	"context"

	"github.com/paulmach/orb"

	"github.com/tomtom215/festmap/internal/logging"
	"github.com/tomtom215/festmap/internal/metrics"
	"github.com/tomtom215/festmap/internal/models"
	"github.com/tomtom215/festmap/internal/viewport"
)

// Viewport is the part of the viewport controller the coordinator drives.
type Viewport interface {
	Ready() bool
	FlyTo(ctx context.Context, center orb.Point, opts ...viewport.FlyOption)
}

// Lookup resolves a POI id against the current POI collection.
type Lookup func(id string) (models.POI, bool)

// Coordinator holds at most one selected POI, by id.
//
// Selection is independent of the category filter: a filtered-out POI stays
// selected until Select or Clear is called.
type Coordinator struct {
	viewport Viewport
	selected string
}

// New returns a Coordinator with nothing selected.
func New(vp Viewport) *Coordinator {
	return &Coordinator{viewport: vp}
}

// Select replaces the selection with poi. When the viewport is ready it
// issues exactly one FlyTo to the POI; when it is not, the recenter is
// skipped and never replayed. It reports whether a FlyTo was issued.
// The recenter always uses viewport.DefaultFlyDuration; map.fly_duration
// does not apply to it.
func (c *Coordinator) Select(ctx context.Context, poi models.POI) bool {
	c.selected = poi.ID
	metrics.RecordSelection(false)

	if !c.viewport.Ready() {
		logging.Ctx(ctx).Debug().Str("poi", poi.ID).Msg("selected before map ready, skipping recenter")
		return false
	}
	c.viewport.FlyTo(ctx, poi.Location.Point(), viewport.WithDuration(viewport.DefaultFlyDuration))
	return true
}

// Clear removes the selection without moving the camera.
func (c *Coordinator) Clear() {
	if c.selected == "" {
		return
	}
	c.selected = ""
	metrics.RecordSelection(true)
}

// SelectedID returns the selected POI id, or "" when nothing is selected.
// The id may be stale; use Resolve to check it against current data.
func (c *Coordinator) SelectedID() string {
	return c.selected
}

// IsSelected reports whether id is the current selection.
func (c *Coordinator) IsSelected(id string) bool {
	return c.selected != "" && c.selected == id
}

// Resolve returns the selected POI from the current collection. A stale id
// (POI no longer present) resolves to no selection.
func (c *Coordinator) Resolve(lookup Lookup) (models.POI, bool) {
	if c.selected == "" {
		return models.POI{}, false
	}
	return lookup(c.selected)
}
