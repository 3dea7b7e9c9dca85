// Festmap - Festival Map Viewport and Selection Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/festmap

package models

import (
	"math"

	"github.com/paulmach/orb"
)

// POIType discriminates the kinds of placeable festival entities.
type POIType string

const (
	POITypeStage   POIType = "stage"
	POITypeStand   POIType = "stand"
	POITypeService POIType = "service"
)

// Location is a WGS84 coordinate in degrees.
type Location struct {
	Latitude  float64 `json:"latitude" koanf:"latitude" validate:"latitude"`
	Longitude float64 `json:"longitude" koanf:"longitude" validate:"longitude"`
}

// Point converts the location to an orb.Point (lon, lat order).
func (l Location) Point() orb.Point {
	return orb.Point{l.Longitude, l.Latitude}
}

// Finite reports whether both coordinates are finite numbers.
func (l Location) Finite() bool {
	return isFinite(l.Latitude) && isFinite(l.Longitude)
}

// LocationFromPoint converts an orb.Point back to a Location.
func LocationFromPoint(p orb.Point) Location {
	return Location{Latitude: p.Lat(), Longitude: p.Lon()}
}

// POI is a point of interest plotted on the festival map.
//
// Category must belong to the vocabulary of Type; category.Registry.Validate
// enforces this before a POI reaches the presenter.
type POI struct {
	ID       string   `json:"id" validate:"required"`
	Name     string   `json:"name" validate:"required"`
	Type     POIType  `json:"poiType" validate:"required,oneof=stage stand service"`
	Category Category `json:"category" validate:"required"`
	Location Location `json:"location"`

	// Color is the festival-assigned stage color. Only stages carry one.
	Color       Color  `json:"color,omitempty" validate:"omitempty,hexcolor"`
	Description string `json:"description,omitempty"`
	URL         string `json:"url,omitempty" validate:"omitempty,url"`
}

// IsStage reports whether the POI is a stage.
func (p POI) IsStage() bool { return p.Type == POITypeStage }

// IsStand reports whether the POI is a vendor or sponsor stand.
func (p POI) IsStand() bool { return p.Type == POITypeStand }

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
