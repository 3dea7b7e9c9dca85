// Festmap - Festival Map Viewport and Selection Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/festmap

// Package marker resolves the visual description of each POI marker.
//
// Resolution rules:
//   - stand: icon and color come from the stand sub-lookup. An unrecognized
//     stand category degrades to StandFallbackIcon and category.DefaultAccent
//     instead of failing.
//   - stage: fixed MusicIcon; color is the stage's own festival color.
//   - anything else: strict registry lookup; undeclared pairs are errors.
//
// Selected markers are larger, cast a stronger shadow, sit above their
// neighbours and show the POI name.
package marker

import (
	"fmt"

	"github.com/paulmach/orb"
	"github.com/rs/zerolog"

	"github.com/tomtom215/festmap/internal/category"
	"github.com/tomtom215/festmap/internal/logging"
	"github.com/tomtom215/festmap/internal/metrics"
	"github.com/tomtom215/festmap/internal/models"
)

const (
	// MusicIcon replaces the category icon for every stage.
	MusicIcon models.Icon = "musical-notes"

	// StandFallbackIcon is used for stands whose category has no entry.
	StandFallbackIcon models.Icon = "storefront"
)

// Shadow describes a marker drop shadow.
type Shadow struct {
	Opacity   float64
	Radius    float64
	Elevation int
}

// Style is the emphasis applied to a marker.
type Style struct {
	Size     int
	IconSize int
	Shadow   Shadow
	ZIndex   int
}

var (
	// UnselectedStyle is the compact style of every marker at rest.
	UnselectedStyle = Style{
		Size:     32,
		IconSize: 16,
		Shadow:   Shadow{Opacity: 0.25, Radius: 3, Elevation: 3},
		ZIndex:   1,
	}

	// SelectedStyle emphasises the selected marker.
	SelectedStyle = Style{
		Size:     44,
		IconSize: 22,
		Shadow:   Shadow{Opacity: 0.45, Radius: 8, Elevation: 8},
		ZIndex:   10,
	}
)

// Marker is the render description handed to the renderer's marker layer.
type Marker struct {
	POIID    string
	Position orb.Point
	Icon     models.Icon
	Color    models.Color
	Style    Style
	Selected bool

	// Label is the POI name when ShowLabel is set, empty otherwise.
	Label     string
	ShowLabel bool
}

// Presenter builds Markers from POIs.
type Presenter struct {
	registry *category.Registry
	logger   zerolog.Logger
}

// NewPresenter returns a Presenter backed by registry.
func NewPresenter(registry *category.Registry) *Presenter {
	return &Presenter{
		registry: registry,
		logger:   logging.WithComponent("marker"),
	}
}

// Present resolves the marker for one POI.
func (p *Presenter) Present(poi models.POI, selected bool) (Marker, error) {
	icon, color, err := p.resolve(poi)
	if err != nil {
		metrics.RecordCategoryDefect(string(poi.Type))
		return Marker{}, fmt.Errorf("present poi %q: %w", poi.ID, err)
	}

	m := Marker{
		POIID:    poi.ID,
		Position: poi.Location.Point(),
		Icon:     icon,
		Color:    color,
		Style:    UnselectedStyle,
		Selected: selected,
	}
	if selected {
		m.Style = SelectedStyle
		m.Label = poi.Name
		m.ShowLabel = true
	}
	return m, nil
}

// PresentAll resolves markers for pois in order. selectedID may be empty.
// The first configuration defect aborts the batch.
func (p *Presenter) PresentAll(pois []models.POI, selectedID string) ([]Marker, error) {
	out := make([]Marker, 0, len(pois))
	for i := range pois {
		m, err := p.Present(pois[i], selectedID != "" && pois[i].ID == selectedID)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, nil
}

func (p *Presenter) resolve(poi models.POI) (models.Icon, models.Color, error) {
	switch poi.Type {
	case models.POITypeStand:
		return p.resolveStand(poi)

	case models.POITypeStage:
		d, err := p.registry.Lookup(poi.Type, poi.Category)
		if err != nil {
			return "", "", err
		}
		color := poi.Color
		if color == "" {
			color = d.Color
		}
		return MusicIcon, color, nil

	default:
		d, err := p.registry.Lookup(poi.Type, poi.Category)
		if err != nil {
			return "", "", err
		}
		return d.Icon, d.Color, nil
	}
}

// resolveStand never fails: stands render with degraded styling rather than
// breaking the map.
func (p *Presenter) resolveStand(poi models.POI) (models.Icon, models.Color, error) {
	color, ok := p.registry.StandColor(poi.Category)
	if !ok {
		p.logger.Warn().
			Str("poi", poi.ID).
			Str("category", string(poi.Category)).
			Msg("unrecognized stand category, using default accent")
		return StandFallbackIcon, category.DefaultAccent, nil
	}
	icon, err := p.registry.IconFor(models.POITypeStand, poi.Category)
	if err != nil {
		return StandFallbackIcon, color, nil
	}
	return icon, color, nil
}
