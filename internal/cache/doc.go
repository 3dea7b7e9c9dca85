// Festmap - Festival Map Viewport and Selection Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/festmap

/*
Package cache provides in-memory spatial indexing for POIs.

SpatialHashGrid buckets points into square cells roughly cellSizeMeters wide,
so a proximity query only scans the cells overlapping the search radius
instead of the whole collection. Distances are great-circle meters computed
with orb/geo.

	grid := cache.NewSpatialHashGrid(100)
	grid.Insert(poi.ID, poi.Location.Point(), poi.Category)
	near := grid.QueryNearby(userPoint, 250) // nearest first

# Thread Safety

All methods are safe for concurrent use (sync.RWMutex). Get and the query
methods return copies, so callers may keep results after the grid changes.

# Limitations

Cells are square in degrees, so their ground width shrinks with latitude and
queries widen their longitude reach to compensate. Above roughly 89 degrees
the reach is no longer widened.
*/
package cache
