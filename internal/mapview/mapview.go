// Festmap - Festival Map Viewport and Selection Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/festmap

package mapview

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/paulmach/orb"

	"github.com/tomtom215/festmap/internal/cache"
	"github.com/tomtom215/festmap/internal/category"
	"github.com/tomtom215/festmap/internal/filter"
	"github.com/tomtom215/festmap/internal/logging"
	"github.com/tomtom215/festmap/internal/marker"
	"github.com/tomtom215/festmap/internal/metrics"
	"github.com/tomtom215/festmap/internal/models"
	"github.com/tomtom215/festmap/internal/selection"
	"github.com/tomtom215/festmap/internal/viewport"
)

// ErrDuplicatePOI is returned by SetPOIs when two POIs share an id.
var ErrDuplicatePOI = errors.New("duplicate poi id")

// MarkerLayer is the renderer's marker placement primitive.
type MarkerLayer interface {
	PlaceMarkers(ctx context.Context, markers []marker.Marker) error
}

// Renderer is everything the map engine needs from the map renderer.
type Renderer interface {
	viewport.Renderer
	MarkerLayer
}

// LinkOpener opens external URLs (websites, ticket shops) for the host.
type LinkOpener interface {
	Open(ctx context.Context, url string) error
}

// Handlers are the outbound notifications to the host screen. Nil handlers
// are skipped.
type Handlers struct {
	// OnPOISelect fires once for every marker tap.
	OnPOISelect func(poi models.POI)

	// OnCategoryChange fires once for every filter chip tap. The "all" chip
	// reports models.AllCategories.
	OnCategoryChange func(c models.Category)
}

// Options configures a Map.
type Options struct {
	Viewport viewport.Options
	Handlers Handlers
	Links    LinkOpener

	// Registry defaults to category.Default().
	Registry *category.Registry

	// Strict panics on configuration defects instead of logging them.
	Strict bool

	// IndexCellMeters is the spatial index cell size. Default: 100.
	IndexCellMeters float64
}

// Map is the map engine for a single mount.
type Map struct {
	mountID string

	registry  *category.Registry
	filter    *filter.Controller
	presenter *marker.Presenter
	viewport  *viewport.Controller
	selection *selection.Coordinator
	layer     MarkerLayer
	links     LinkOpener
	handlers  Handlers
	strict    bool

	pois    []models.POI
	byID    map[string]int
	index   *cache.SpatialHashGrid
	visible []models.POI
	markers []marker.Marker
}

// New mounts a Map on renderer. The viewport starts not ready; call MapReady
// when the renderer finishes loading.
func New(ctx context.Context, renderer Renderer, opts Options) *Map {
	registry := opts.Registry
	if registry == nil {
		registry = category.Default()
	}

	vp := viewport.New(renderer, opts.Viewport)
	m := &Map{
		mountID:   logging.GenerateMountID(),
		registry:  registry,
		filter:    filter.New(registry),
		presenter: marker.NewPresenter(registry),
		viewport:  vp,
		selection: selection.New(vp),
		layer:     renderer,
		links:     opts.Links,
		handlers:  opts.Handlers,
		strict:    opts.Strict,
		byID:      make(map[string]int),
		index:     cache.NewSpatialHashGrid(opts.IndexCellMeters),
	}

	logging.Ctx(m.scope(ctx)).Info().
		Bool("strict", m.strict).
		Float64("initial_zoom", vp.Options().InitialZoom).
		Msg("map mounted")
	return m
}

// MountID identifies this mount in logs.
func (m *Map) MountID() string {
	return m.mountID
}

func (m *Map) scope(ctx context.Context) context.Context {
	return logging.ContextWithMountID(ctx, m.mountID)
}

// MapReady forwards the renderer's load-complete signal.
func (m *Map) MapReady(ctx context.Context) {
	m.viewport.MarkReady(m.scope(ctx))
}

// Ready reports whether the viewport accepts camera commands.
func (m *Map) Ready() bool {
	return m.viewport.Ready()
}

// Camera returns the imperative camera handle for the host.
func (m *Map) Camera() viewport.Camera {
	return m.viewport.Camera()
}

// SetPOIs replaces the POI collection and re-derives the visible set. The
// collection is rejected as a whole if any POI fails validation or ids
// repeat; the previous collection is kept in that case.
func (m *Map) SetPOIs(ctx context.Context, pois []models.POI) error {
	ctx = m.scope(ctx)

	var errs []error
	byID := make(map[string]int, len(pois))
	for i := range pois {
		if err := m.registry.Validate(&pois[i]); err != nil {
			if errors.Is(err, category.ErrUnknownCategory) {
				metrics.RecordCategoryDefect(string(pois[i].Type))
			}
			errs = append(errs, err)
			continue
		}
		if _, dup := byID[pois[i].ID]; dup {
			errs = append(errs, fmt.Errorf("poi %q: %w", pois[i].ID, ErrDuplicatePOI))
			continue
		}
		byID[pois[i].ID] = i
	}
	if len(errs) > 0 {
		err := errors.Join(errs...)
		logging.Ctx(ctx).Error().Err(err).Int("rejected", len(errs)).Msg("rejected poi collection")
		return fmt.Errorf("set pois: %w", err)
	}

	m.pois = append([]models.POI(nil), pois...)
	m.byID = byID
	m.index.Clear()
	for i := range m.pois {
		m.index.Insert(m.pois[i].ID, m.pois[i].Location.Point(), m.pois[i].Category)
	}

	if id := m.selection.SelectedID(); id != "" {
		if _, ok := m.byID[id]; !ok {
			logging.Ctx(ctx).Debug().Str("poi", id).Msg("selected poi no longer present")
		}
	}

	logging.Ctx(ctx).Debug().Int("pois", len(m.pois)).Msg("poi collection updated")
	m.render(ctx)
	return nil
}

// POIs returns a copy of the current collection.
func (m *Map) POIs() []models.POI {
	return append([]models.POI(nil), m.pois...)
}

// POI looks up a POI of the current collection by id.
func (m *Map) POI(id string) (models.POI, bool) {
	i, ok := m.byID[id]
	if !ok {
		return models.POI{}, false
	}
	return m.pois[i], true
}

// VisibleSet returns the POIs eligible for rendering under the active filter.
func (m *Map) VisibleSet() []models.POI {
	return append([]models.POI(nil), m.visible...)
}

// Markers returns the last marker set placed on the renderer.
func (m *Map) Markers() []marker.Marker {
	return append([]marker.Marker(nil), m.markers...)
}

// ActiveFilter returns the active category filter.
func (m *Map) ActiveFilter() models.Category {
	return m.filter.Active()
}

// Choices returns the filter chips in display order.
func (m *Map) Choices() []category.Choice {
	return m.filter.Choices()
}

// Counts returns the number of POIs per filter chip.
func (m *Map) Counts() map[models.Category]int {
	return m.filter.Counts(m.pois)
}

// Selected returns the selected POI. A selection whose POI has left the
// collection reports none.
func (m *Map) Selected() (models.POI, bool) {
	return m.selection.Resolve(m.POI)
}

// TapMarker handles a tap on the marker of id: the selection moves to the
// POI, the camera recenters if ready, the marker is restyled and
// OnPOISelect fires once. Taps on ids that are no longer present are
// ignored.
func (m *Map) TapMarker(ctx context.Context, id string) bool {
	ctx = m.scope(ctx)

	poi, ok := m.POI(id)
	if !ok {
		logging.Ctx(ctx).Debug().Str("poi", id).Msg("tap on unknown marker ignored")
		return false
	}

	m.selection.Select(ctx, poi)
	m.render(ctx)
	if m.handlers.OnPOISelect != nil {
		m.handlers.OnPOISelect(poi)
	}
	return true
}

// Select selects id programmatically (e.g. from a list screen) without
// notifying OnPOISelect.
func (m *Map) Select(ctx context.Context, id string) bool {
	ctx = m.scope(ctx)

	poi, ok := m.POI(id)
	if !ok {
		return false
	}
	m.selection.Select(ctx, poi)
	m.render(ctx)
	return true
}

// ClearSelection removes the selection without moving the camera.
func (m *Map) ClearSelection(ctx context.Context) {
	if m.selection.SelectedID() == "" {
		return
	}
	m.selection.Clear()
	m.render(m.scope(ctx))
}

// TapCategory handles a tap on a filter chip. Only catalog categories are
// accepted. OnCategoryChange fires once per accepted tap; the visible set is
// recomputed only when the filter actually changes. The selection is never
// touched.
func (m *Map) TapCategory(ctx context.Context, c models.Category) bool {
	ctx = m.scope(ctx)

	if !m.inCatalog(c) {
		logging.Ctx(ctx).Warn().Str("category", string(c)).Msg("tap on category outside the filter catalog ignored")
		return false
	}

	if m.filter.SetFilter(c) {
		metrics.RecordFilterChange(string(c))
		m.render(ctx)
	}
	if m.handlers.OnCategoryChange != nil {
		m.handlers.OnCategoryChange(c)
	}
	return true
}

func (m *Map) inCatalog(c models.Category) bool {
	for _, choice := range m.filter.Choices() {
		if choice.Category == c {
			return true
		}
	}
	return false
}

// FitToVisible frames every visible POI. It reports false when nothing is
// visible. Dropping before ready follows the viewport rules.
func (m *Map) FitToVisible(ctx context.Context) bool {
	if len(m.visible) == 0 {
		return false
	}
	bound := orb.Bound{Min: m.visible[0].Location.Point(), Max: m.visible[0].Location.Point()}
	for i := 1; i < len(m.visible); i++ {
		bound = bound.Extend(m.visible[i].Location.Point())
	}
	m.viewport.FitBounds(m.scope(ctx), bound)
	return true
}

// SelectNearest selects the visible POI closest to p within radiusMeters,
// e.g. for a "what's near me" button.
func (m *Map) SelectNearest(ctx context.Context, p orb.Point, radiusMeters float64) (models.POI, bool) {
	active := m.filter.Active()
	entry, ok := m.index.Nearest(p, radiusMeters, func(e cache.SpatialEntry) bool {
		c, _ := e.Data.(models.Category)
		return active.IsAll() || c == active
	})
	if !ok {
		return models.POI{}, false
	}
	poi, ok := m.POI(entry.ID)
	if !ok {
		return models.POI{}, false
	}
	m.Select(ctx, poi.ID)
	return poi, true
}

// OpenLink opens the external URL of a POI. Any failure, including a panic
// in the opener, is logged and otherwise ignored so the map view is never
// disrupted.
func (m *Map) OpenLink(ctx context.Context, id string) {
	ctx = m.scope(ctx)
	log := logging.Ctx(ctx)

	poi, ok := m.POI(id)
	if !ok || poi.URL == "" || m.links == nil {
		log.Debug().Str("poi", id).Msg("no link to open")
		return
	}

	defer func() {
		if r := recover(); r != nil {
			metrics.RecordLinkFailure()
			log.Warn().Interface("panic", r).Str("poi", id).Msg("link opener panicked")
		}
	}()
	if err := m.links.Open(ctx, poi.URL); err != nil {
		metrics.RecordLinkFailure()
		log.Warn().Err(err).Str("poi", id).Str("url", poi.URL).Msg("failed to open link")
	}
}

// Dispose unmounts the map. Camera commands are dropped afterwards.
func (m *Map) Dispose(ctx context.Context) {
	m.viewport.Dispose()
	m.index.Clear()
	logging.Ctx(m.scope(ctx)).Info().Msg("map disposed")
}

// render recomputes the visible set and places its markers.
func (m *Map) render(ctx context.Context) {
	start := time.Now()
	m.visible = m.filter.VisibleSet(m.pois)

	markers, err := m.presenter.PresentAll(m.visible, m.selection.SelectedID())
	if err != nil {
		if m.strict {
			panic(fmt.Sprintf("festmap: configuration defect: %v", err))
		}
		logging.Ctx(ctx).Error().Err(err).Msg("marker presentation failed, keeping previous markers")
		return
	}
	m.markers = markers
	metrics.RecordMarkerRender(time.Since(start), len(m.visible))

	if err := m.layer.PlaceMarkers(ctx, markers); err != nil {
		logging.Ctx(ctx).Warn().Err(err).Int("markers", len(markers)).Msg("renderer rejected markers")
	}
}
