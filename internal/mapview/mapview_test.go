// Festmap - Festival Map Viewport and Selection Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/festmap

package mapview

import (
	"context"
	"errors"
	"math"
	"reflect"
	"testing"
	"time"

	"github.com/paulmach/orb"

	"github.com/tomtom215/festmap/internal/category"
	"github.com/tomtom215/festmap/internal/filter"
	"github.com/tomtom215/festmap/internal/headless"
	"github.com/tomtom215/festmap/internal/marker"
	"github.com/tomtom215/festmap/internal/models"
	"github.com/tomtom215/festmap/internal/viewport"
)

var siteCenter = orb.Point{0.005, 51.105}

func stageA() models.POI {
	return models.POI{
		ID: "A", Name: "Main Stage", Type: models.POITypeStage, Category: models.CategoryStage,
		Location: models.Location{Latitude: 51.1, Longitude: 0.0},
		URL:      "https://example.org/main-stage",
	}
}

func standB() models.POI {
	return models.POI{
		ID: "B", Name: "Taco Truck", Type: models.POITypeStand, Category: models.CategoryFood,
		Location: models.Location{Latitude: 51.11, Longitude: 0.01},
	}
}

func serviceC() models.POI {
	return models.POI{
		ID: "C", Name: "Toilets North", Type: models.POITypeService, Category: models.CategoryToilets,
		Location: models.Location{Latitude: 51.1005, Longitude: 0.0005},
	}
}

type recorder struct {
	selected   []models.POI
	categories []models.Category
}

func (r *recorder) handlers() Handlers {
	return Handlers{
		OnPOISelect:      func(p models.POI) { r.selected = append(r.selected, p) },
		OnCategoryChange: func(c models.Category) { r.categories = append(r.categories, c) },
	}
}

func newTestMap(t *testing.T, opts Options, pois ...models.POI) (*Map, *headless.Renderer) {
	t.Helper()
	r := headless.New(siteCenter, 15)
	opts.Viewport.InitialCenter = siteCenter
	opts.Viewport.InitialZoom = 15
	m := New(context.Background(), r, opts)
	if len(pois) > 0 {
		if err := m.SetPOIs(context.Background(), pois); err != nil {
			t.Fatalf("SetPOIs() error = %v", err)
		}
	}
	return m, r
}

func poiIDs(pois []models.POI) []string {
	out := make([]string, len(pois))
	for i, p := range pois {
		out[i] = p.ID
	}
	return out
}

func selectedMarkers(markers []marker.Marker) []string {
	var out []string
	for _, mk := range markers {
		if mk.Selected {
			out = append(out, mk.POIID)
		}
	}
	return out
}

// Stage A and stand B: filter to food, tap B, then filter to stage.
func TestMap_FilterTapFilterScenario(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	var rec recorder
	m, r := newTestMap(t, Options{Handlers: rec.handlers()}, stageA(), standB())
	m.MapReady(ctx)

	if !m.TapCategory(ctx, models.CategoryFood) {
		t.Fatal("TapCategory(food) rejected")
	}
	if got := poiIDs(m.VisibleSet()); !reflect.DeepEqual(got, []string{"B"}) {
		t.Fatalf("visible after food = %v, want [B]", got)
	}

	if !m.TapMarker(ctx, "B") {
		t.Fatal("TapMarker(B) rejected")
	}
	if len(rec.selected) != 1 || rec.selected[0].ID != "B" {
		t.Fatalf("OnPOISelect calls = %v, want one call with B", poiIDs(rec.selected))
	}
	flights := r.Flights()
	if len(flights) != 1 {
		t.Fatalf("FlyTo calls = %d, want 1", len(flights))
	}
	if flights[0].Center != standB().Location.Point() {
		t.Errorf("FlyTo center = %v, want %v", flights[0].Center, standB().Location.Point())
	}
	if flights[0].Duration != viewport.DefaultFlyDuration {
		t.Errorf("FlyTo duration = %v, want %v", flights[0].Duration, viewport.DefaultFlyDuration)
	}
	if got := selectedMarkers(m.Markers()); !reflect.DeepEqual(got, []string{"B"}) {
		t.Errorf("selected markers = %v, want [B]", got)
	}

	m.TapCategory(ctx, models.CategoryStage)
	if got := poiIDs(m.VisibleSet()); !reflect.DeepEqual(got, []string{"A"}) {
		t.Errorf("visible after stage = %v, want [A]", got)
	}
	sel, ok := m.Selected()
	if !ok || sel.ID != "B" {
		t.Errorf("Selected() = %q, %v; want B, true", sel.ID, ok)
	}
	if got := selectedMarkers(m.Markers()); len(got) != 0 {
		t.Errorf("selected markers after filtering B out = %v, want none", got)
	}
	if len(r.Flights()) != 1 {
		t.Errorf("filter change moved the camera: %d flights", len(r.Flights()))
	}
	if want := []models.Category{models.CategoryFood, models.CategoryStage}; !reflect.DeepEqual(rec.categories, want) {
		t.Errorf("OnCategoryChange calls = %v, want %v", rec.categories, want)
	}
}

func TestMap_VisibleSetMatchesProjection(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	pois := []models.POI{stageA(), standB(), serviceC()}
	m, r := newTestMap(t, Options{}, pois...)

	for _, choice := range m.Choices() {
		m.TapCategory(ctx, choice.Category)
		want := poiIDs(filter.Project(pois, choice.Category))
		if got := poiIDs(m.VisibleSet()); !reflect.DeepEqual(got, want) {
			t.Errorf("%s: VisibleSet() = %v, want %v", choice.Category, got, want)
		}
		placed := r.Markers()
		if len(placed) != len(want) {
			t.Errorf("%s: placed %d markers, want %d", choice.Category, len(placed), len(want))
		}
	}
}

func TestMap_RepeatedTapsNotifyEachTime(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	var rec recorder
	m, r := newTestMap(t, Options{Handlers: rec.handlers()}, stageA(), standB())
	m.MapReady(ctx)

	m.TapMarker(ctx, "A")
	m.TapMarker(ctx, "A")
	m.TapMarker(ctx, "B")

	if got := poiIDs(rec.selected); !reflect.DeepEqual(got, []string{"A", "A", "B"}) {
		t.Errorf("OnPOISelect calls = %v, want [A A B]", got)
	}
	if len(r.Flights()) != 3 {
		t.Errorf("FlyTo calls = %d, want 3", len(r.Flights()))
	}
	if got := selectedMarkers(m.Markers()); !reflect.DeepEqual(got, []string{"B"}) {
		t.Errorf("selected markers = %v, want exactly [B]", got)
	}
}

func TestMap_SelectionBeforeReady(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	var rec recorder
	m, r := newTestMap(t, Options{Handlers: rec.handlers()}, stageA(), standB())

	m.TapMarker(ctx, "B")
	if len(r.Flights()) != 0 {
		t.Fatalf("FlyTo issued before ready: %v", r.Flights())
	}
	if sel, ok := m.Selected(); !ok || sel.ID != "B" {
		t.Errorf("Selected() = %q, %v; want B, true", sel.ID, ok)
	}
	if len(rec.selected) != 1 {
		t.Errorf("OnPOISelect calls = %d, want 1", len(rec.selected))
	}

	m.MapReady(ctx)
	if len(r.Flights()) != 0 {
		t.Errorf("skipped recenter replayed on ready: %v", r.Flights())
	}

	m.TapMarker(ctx, "A")
	if len(r.Flights()) != 1 {
		t.Errorf("FlyTo calls after ready = %d, want 1", len(r.Flights()))
	}
}

func TestMap_CameraBeforeReady(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	m, r := newTestMap(t, Options{}, stageA())

	cam := m.Camera()
	cam.FlyTo(ctx, orb.Point{1, 50})
	if !m.FitToVisible(ctx) {
		t.Fatal("FitToVisible() = false with visible pois")
	}
	if len(r.Flights()) != 0 || len(r.Fits()) != 0 {
		t.Errorf("commands reached renderer before ready: %d flights, %d fits", len(r.Flights()), len(r.Fits()))
	}
	if got := cam.GetZoom(ctx); got != 15 {
		t.Errorf("GetZoom() = %v, want initial 15", got)
	}
	if got := cam.GetCenter(ctx); got != siteCenter {
		t.Errorf("GetCenter() = %v, want initial %v", got, siteCenter)
	}
}

func TestMap_FitToVisible(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	m, r := newTestMap(t, Options{}, stageA(), standB(), serviceC())
	m.MapReady(ctx)

	if !m.FitToVisible(ctx) {
		t.Fatal("FitToVisible() = false")
	}
	fits := r.Fits()
	if len(fits) != 1 {
		t.Fatalf("FitBounds calls = %d, want 1", len(fits))
	}
	want := orb.Bound{Min: orb.Point{0, 51.1}, Max: orb.Point{0.01, 51.11}}
	if fits[0].Bounds != want {
		t.Errorf("bounds = %v, want %v", fits[0].Bounds, want)
	}
	if fits[0].Duration != viewport.DefaultFitDuration {
		t.Errorf("duration = %v, want %v", fits[0].Duration, viewport.DefaultFitDuration)
	}

	m.TapCategory(ctx, models.CategoryLockers)
	if m.FitToVisible(ctx) {
		t.Error("FitToVisible() = true with nothing visible")
	}
}

func TestMap_StaleSelectionResolvesToNone(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	m, _ := newTestMap(t, Options{}, stageA(), standB())

	m.TapMarker(ctx, "B")
	if err := m.SetPOIs(ctx, []models.POI{stageA()}); err != nil {
		t.Fatalf("SetPOIs() error = %v", err)
	}
	if sel, ok := m.Selected(); ok {
		t.Errorf("Selected() = %q, want none", sel.ID)
	}
	if got := selectedMarkers(m.Markers()); len(got) != 0 {
		t.Errorf("selected markers = %v, want none", got)
	}
	if m.TapMarker(ctx, "B") {
		t.Error("TapMarker on removed poi accepted")
	}

	// The POI coming back restores the selection.
	if err := m.SetPOIs(ctx, []models.POI{stageA(), standB()}); err != nil {
		t.Fatalf("SetPOIs() error = %v", err)
	}
	if sel, ok := m.Selected(); !ok || sel.ID != "B" {
		t.Errorf("Selected() = %q, %v; want B, true", sel.ID, ok)
	}
}

func TestMap_ClearSelection(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	m, r := newTestMap(t, Options{}, stageA(), standB())
	m.MapReady(ctx)

	m.TapMarker(ctx, "A")
	m.ClearSelection(ctx)
	if _, ok := m.Selected(); ok {
		t.Error("selection survived ClearSelection")
	}
	if got := selectedMarkers(m.Markers()); len(got) != 0 {
		t.Errorf("selected markers = %v, want none", got)
	}
	if len(r.Flights()) != 1 {
		t.Errorf("ClearSelection moved the camera: %d flights", len(r.Flights()))
	}
}

func TestMap_SetPOIsRejectsInvalidCollection(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	bad := serviceC()
	bad.ID = "X"
	bad.Category = models.CategoryMerch

	dup := standB()
	dup.Name = "Second Taco Truck"

	tests := []struct {
		name    string
		pois    []models.POI
		wantErr error
	}{
		{"category outside the service vocabulary", []models.POI{stageA(), bad}, category.ErrUnknownCategory},
		{"duplicate id", []models.POI{standB(), dup}, ErrDuplicatePOI},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			m, r := newTestMap(t, Options{}, stageA())
			before := r.Placements()

			err := m.SetPOIs(ctx, tt.pois)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("SetPOIs() error = %v, want %v", err, tt.wantErr)
			}
			if got := poiIDs(m.POIs()); !reflect.DeepEqual(got, []string{"A"}) {
				t.Errorf("collection after rejection = %v, want [A]", got)
			}
			if r.Placements() != before {
				t.Error("rejected collection reached the renderer")
			}
		})
	}
}

func TestMap_StageUsesDeclaredColor(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	stage := stageA()
	stage.Color = "#123456"
	m, _ := newTestMap(t, Options{}, stage, standB())

	m.TapCategory(ctx, models.CategoryStage)
	markers := m.Markers()
	if len(markers) != 1 {
		t.Fatalf("markers = %d, want 1", len(markers))
	}
	if markers[0].Color != "#123456" {
		t.Errorf("Color = %q, want declared #123456", markers[0].Color)
	}
	if markers[0].Icon != marker.MusicIcon {
		t.Errorf("Icon = %q, want %q", markers[0].Icon, marker.MusicIcon)
	}
}

func TestMap_TapCategoryOutsideCatalog(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	var rec recorder
	m, _ := newTestMap(t, Options{Handlers: rec.handlers()}, stageA())

	if m.TapCategory(ctx, models.Category("fireworks")) {
		t.Error("TapCategory(fireworks) accepted")
	}
	if m.ActiveFilter() != models.AllCategories {
		t.Errorf("ActiveFilter() = %q, want all", m.ActiveFilter())
	}
	if len(rec.categories) != 0 {
		t.Errorf("OnCategoryChange fired for rejected tap: %v", rec.categories)
	}

	m.TapCategory(ctx, models.AllCategories)
	if !reflect.DeepEqual(rec.categories, []models.Category{models.AllCategories}) {
		t.Errorf("OnCategoryChange calls = %v, want [all]", rec.categories)
	}
}

func TestMap_SelectNearest(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	m, r := newTestMap(t, Options{}, stageA(), standB(), serviceC())
	m.MapReady(ctx)

	near := orb.Point{0.0004, 51.1004}
	got, ok := m.SelectNearest(ctx, near, 500)
	if !ok || got.ID != "C" {
		t.Fatalf("SelectNearest() = %q, %v; want C, true", got.ID, ok)
	}
	if len(r.Flights()) != 1 {
		t.Errorf("FlyTo calls = %d, want 1", len(r.Flights()))
	}

	m.TapCategory(ctx, models.CategoryStage)
	got, ok = m.SelectNearest(ctx, near, 500)
	if !ok || got.ID != "A" {
		t.Errorf("SelectNearest() under stage filter = %q, %v; want A, true", got.ID, ok)
	}

	if _, ok := m.SelectNearest(ctx, orb.Point{1, 52}, 500); ok {
		t.Error("SelectNearest() found a poi far outside the radius")
	}
}

func TestMap_SelectNearestLargeRadius(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	m, _ := newTestMap(t, Options{}, stageA(), standB(), serviceC())
	m.MapReady(ctx)

	type result struct {
		poi models.POI
		ok  bool
	}
	done := make(chan result, 1)
	go func() {
		poi, ok := m.SelectNearest(ctx, orb.Point{13.4, 52.5}, 5_000_000)
		done <- result{poi, ok}
	}()

	select {
	case got := <-done:
		if !got.ok {
			t.Fatal("SelectNearest() within 5000 km found nothing")
		}
		if sel, _ := m.Selected(); sel.ID != got.poi.ID {
			t.Errorf("Selected() = %q, want %q", sel.ID, got.poi.ID)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("SelectNearest() with a continental radius did not return")
	}

	if _, ok := m.SelectNearest(ctx, orb.Point{0, 51.1}, math.Inf(1)); ok {
		t.Error("SelectNearest() with an infinite radius should match nothing")
	}
}

func TestMap_Counts(t *testing.T) {
	t.Parallel()
	m, _ := newTestMap(t, Options{}, stageA(), standB(), serviceC())

	counts := m.Counts()
	if counts[models.AllCategories] != 3 || counts[models.CategoryFood] != 1 || counts[models.CategoryStage] != 1 {
		t.Errorf("Counts() = %v", counts)
	}
}

type fakeOpener struct {
	opened []string
	err    error
	panics bool
}

func (f *fakeOpener) Open(_ context.Context, url string) error {
	if f.panics {
		panic("browser crashed")
	}
	f.opened = append(f.opened, url)
	return f.err
}

func TestMap_OpenLink(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	tests := []struct {
		name   string
		opener *fakeOpener
		id     string
		want   []string
	}{
		{"opens url", &fakeOpener{}, "A", []string{"https://example.org/main-stage"}},
		{"poi without url", &fakeOpener{}, "B", nil},
		{"unknown poi", &fakeOpener{}, "Z", nil},
		{"opener error is swallowed", &fakeOpener{err: errors.New("no browser")}, "A", []string{"https://example.org/main-stage"}},
		{"opener panic is recovered", &fakeOpener{panics: true}, "A", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			m, _ := newTestMap(t, Options{Links: tt.opener}, stageA(), standB())
			m.OpenLink(ctx, tt.id)
			if !reflect.DeepEqual(tt.opener.opened, tt.want) {
				t.Errorf("opened = %v, want %v", tt.opener.opened, tt.want)
			}
		})
	}
}

func TestMap_Dispose(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	m, r := newTestMap(t, Options{}, stageA(), standB())
	m.MapReady(ctx)
	m.Dispose(ctx)

	m.TapMarker(ctx, "A")
	m.Camera().FlyTo(ctx, orb.Point{0, 51})
	if len(r.Flights()) != 0 {
		t.Errorf("camera moved after dispose: %v", r.Flights())
	}
	if m.Ready() {
		t.Error("Ready() = true after dispose")
	}
}
