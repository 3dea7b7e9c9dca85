// Festmap - Festival Map Viewport and Selection Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/festmap

package cache

import (
	"math"
	"sort"
	"sync"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
)

// metersPerDegree is the approximate length of one degree of latitude.
const metersPerDegree = 111_320.0

// SpatialHashGrid divides space into square cells so proximity queries only
// inspect the cells around the query point instead of every entry.
//
// Time Complexity:
//   - Insert: O(1)
//   - Query nearby: O(k) where k = entries in the inspected cells
//   - Remove: O(cell size)
type SpatialHashGrid struct {
	mu       sync.RWMutex
	cells    map[CellKey][]*SpatialEntry
	cellSize float64 // degrees
	entries  map[string]*SpatialEntry
}

// CellKey represents a grid cell coordinate.
type CellKey struct {
	X, Y int
}

// SpatialEntry is one indexed point.
type SpatialEntry struct {
	ID    string
	Point orb.Point
	Data  any

	// Distance is filled in by queries, in meters from the query point.
	Distance float64

	cellKey CellKey
}

// NewSpatialHashGrid creates a grid whose cells are roughly cellSizeMeters
// wide. Festival sites are small, so the default is 100 m.
func NewSpatialHashGrid(cellSizeMeters float64) *SpatialHashGrid {
	if cellSizeMeters <= 0 {
		cellSizeMeters = 100
	}
	return &SpatialHashGrid{
		cells:    make(map[CellKey][]*SpatialEntry),
		cellSize: cellSizeMeters / metersPerDegree,
		entries:  make(map[string]*SpatialEntry),
	}
}

func (g *SpatialHashGrid) cellKey(p orb.Point) CellKey {
	return CellKey{
		X: int(math.Floor(p.Lon() / g.cellSize)),
		Y: int(math.Floor(p.Lat() / g.cellSize)),
	}
}

// Insert adds or moves an entry.
func (g *SpatialHashGrid) Insert(id string, p orb.Point, data any) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if existing, ok := g.entries[id]; ok {
		g.removeFromCellUnlocked(existing)
	}

	entry := &SpatialEntry{ID: id, Point: p, Data: data, cellKey: g.cellKey(p)}
	g.cells[entry.cellKey] = append(g.cells[entry.cellKey], entry)
	g.entries[id] = entry
}

// Remove deletes an entry by ID.
func (g *SpatialHashGrid) Remove(id string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	entry, ok := g.entries[id]
	if !ok {
		return false
	}
	g.removeFromCellUnlocked(entry)
	delete(g.entries, id)
	return true
}

// removeFromCellUnlocked removes an entry from its cell (caller must hold lock).
func (g *SpatialHashGrid) removeFromCellUnlocked(entry *SpatialEntry) {
	cell := g.cells[entry.cellKey]
	for i, e := range cell {
		if e.ID == entry.ID {
			cell[i] = cell[len(cell)-1]
			cell = cell[:len(cell)-1]
			break
		}
	}
	if len(cell) == 0 {
		delete(g.cells, entry.cellKey)
		return
	}
	g.cells[entry.cellKey] = cell
}

// Get returns a copy of the entry with the given ID.
func (g *SpatialHashGrid) Get(id string) (SpatialEntry, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	entry, ok := g.entries[id]
	if !ok {
		return SpatialEntry{}, false
	}
	return *entry, true
}

// QueryNearby returns copies of every entry within radiusMeters of p,
// nearest first. Ties keep ID order so results are deterministic. A negative
// or non-finite radius matches nothing.
//
// When the radius covers more cells than there are entries, every entry is
// checked directly instead of walking the cells.
func (g *SpatialHashGrid) QueryNearby(p orb.Point, radiusMeters float64) []SpatialEntry {
	if radiusMeters < 0 || math.IsNaN(radiusMeters) || math.IsInf(radiusMeters, 0) {
		return nil
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	// Longitude degrees shrink with latitude; widen the X range accordingly.
	reachY := math.Ceil(radiusMeters/metersPerDegree/g.cellSize) + 1
	reachX := reachY
	if cosLat := math.Cos(p.Lat() * math.Pi / 180); cosLat > 0.01 {
		reachX = math.Ceil(radiusMeters/(metersPerDegree*cosLat)/g.cellSize) + 1
	}

	var results []SpatialEntry
	collect := func(entry *SpatialEntry) {
		if d := geo.Distance(p, entry.Point); d <= radiusMeters {
			found := *entry
			found.Distance = d
			results = append(results, found)
		}
	}

	if (2*reachX+1)*(2*reachY+1) > float64(len(g.entries)) {
		for _, entry := range g.entries {
			collect(entry)
		}
	} else {
		center := g.cellKey(p)
		rx, ry := int(reachX), int(reachY)
		for dx := -rx; dx <= rx; dx++ {
			for dy := -ry; dy <= ry; dy++ {
				for _, entry := range g.cells[CellKey{X: center.X + dx, Y: center.Y + dy}] {
					collect(entry)
				}
			}
		}
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].Distance != results[j].Distance {
			return results[i].Distance < results[j].Distance
		}
		return results[i].ID < results[j].ID
	})
	return results
}

// Nearest returns the closest entry within radiusMeters that satisfies keep.
// A nil keep accepts every entry.
func (g *SpatialHashGrid) Nearest(p orb.Point, radiusMeters float64, keep func(SpatialEntry) bool) (SpatialEntry, bool) {
	for _, e := range g.QueryNearby(p, radiusMeters) {
		if keep == nil || keep(e) {
			return e, true
		}
	}
	return SpatialEntry{}, false
}

// Size returns the total number of entries.
func (g *SpatialHashGrid) Size() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.entries)
}

// NumCells returns the number of non-empty cells.
func (g *SpatialHashGrid) NumCells() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.cells)
}

// Clear removes all entries.
func (g *SpatialHashGrid) Clear() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.cells = make(map[CellKey][]*SpatialEntry)
	g.entries = make(map[string]*SpatialEntry)
}
