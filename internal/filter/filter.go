// Festmap - Festival Map Viewport and Selection Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/festmap

// Package filter holds the single active category filter and projects a POI
// collection onto its visible subset.
package filter

import (
	"github.com/tomtom215/festmap/internal/category"
	"github.com/tomtom215/festmap/internal/models"
)

// Controller owns the active category filter. The zero filter value
// (models.AllCategories) shows everything.
//
// Controller is not safe for concurrent use; the map event loop is its only
// caller.
type Controller struct {
	registry *category.Registry
	active   models.Category
}

// New returns a Controller with no filter applied.
func New(registry *category.Registry) *Controller {
	return &Controller{registry: registry, active: models.AllCategories}
}

// Active returns the current filter.
func (c *Controller) Active() models.Category {
	return c.active
}

// SetFilter replaces the active filter and reports whether it changed.
// Setting the same filter twice is observably a no-op.
func (c *Controller) SetFilter(next models.Category) bool {
	if next == c.active {
		return false
	}
	c.active = next
	return true
}

// VisibleSet returns, in input order, the POIs whose category equals the
// active filter, or every POI when no filter is applied. The input slice is
// never modified; the result is always a fresh slice.
func (c *Controller) VisibleSet(pois []models.POI) []models.POI {
	return Project(pois, c.active)
}

// Choices returns the selectable filter chips in display order.
func (c *Controller) Choices() []category.Choice {
	return c.registry.Catalog()
}

// Counts returns how many POIs fall under each catalog choice. Every catalog
// category is present, including ones with zero POIs; the "all" choice counts
// the whole collection.
func (c *Controller) Counts(pois []models.POI) map[models.Category]int {
	counts := make(map[models.Category]int)
	for _, choice := range c.registry.Catalog() {
		counts[choice.Category] = 0
	}
	counts[models.AllCategories] = len(pois)
	for i := range pois {
		if _, listed := counts[pois[i].Category]; listed {
			counts[pois[i].Category]++
		}
	}
	return counts
}

// Project is the pure projection behind VisibleSet.
func Project(pois []models.POI, active models.Category) []models.POI {
	if active.IsAll() {
		out := make([]models.POI, len(pois))
		copy(out, pois)
		return out
	}
	out := make([]models.POI, 0, len(pois))
	for i := range pois {
		if pois[i].Category == active {
			out = append(out, pois[i])
		}
	}
	return out
}
