// Festmap - Festival Map Viewport and Selection Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/festmap

// Package poisource loads festival POI collections from disk.
//
// Two formats are accepted. The native document:
//
//	{"festival": "Fieldfest", "pois": [{"id": "A", "name": "Main Stage", ...}]}
//
// and a GeoJSON FeatureCollection whose Point features carry the POI fields
// (id, name, poiType, category, color, description, url) as properties.
// The format is chosen by the document's "type" member.
package poisource

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/goccy/go-json"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/tomtom215/festmap/internal/logging"
	"github.com/tomtom215/festmap/internal/models"
)

// ErrEmptyDocument is returned for input without any JSON content.
var ErrEmptyDocument = errors.New("empty poi document")

const featureCollectionType = "FeatureCollection"

// Document is a loaded POI collection. POI order is preserved from the
// source.
type Document struct {
	Festival string       `json:"festival,omitempty"`
	POIs     []models.POI `json:"pois"`
}

// LoadFile reads the document at path.
func LoadFile(path string) (*Document, error) {
	// #nosec G304 -- path comes from operator configuration
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read poi document %s: %w", path, err)
	}
	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// Load reads a document from r.
func Load(r io.Reader) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read poi document: %w", err)
	}
	return Parse(data)
}

// Parse decodes a native or GeoJSON document.
func Parse(data []byte) (*Document, error) {
	if len(data) == 0 {
		return nil, ErrEmptyDocument
	}

	var head struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return nil, fmt.Errorf("decode poi document: %w", err)
	}
	if head.Type == featureCollectionType {
		return parseGeoJSON(data)
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode poi document: %w", err)
	}
	return &doc, nil
}

func parseGeoJSON(data []byte) (*Document, error) {
	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, fmt.Errorf("decode geojson: %w", err)
	}

	doc := &Document{POIs: make([]models.POI, 0, len(fc.Features))}
	if name, ok := fc.ExtraMembers["festival"].(string); ok {
		doc.Festival = name
	}

	for i, f := range fc.Features {
		p, ok := f.Geometry.(orb.Point)
		if !ok {
			logging.Warn().
				Int("feature", i).
				Str("geometry", geometryType(f.Geometry)).
				Msg("skipping non-point feature")
			continue
		}
		doc.POIs = append(doc.POIs, featurePOI(f, p))
	}
	return doc, nil
}

func featurePOI(f *geojson.Feature, p orb.Point) models.POI {
	id := f.Properties.MustString("id", "")
	if id == "" {
		id = featureID(f.ID)
	}
	return models.POI{
		ID:          id,
		Name:        f.Properties.MustString("name", ""),
		Type:        models.POIType(f.Properties.MustString("poiType", "")),
		Category:    models.Category(f.Properties.MustString("category", "")),
		Location:    models.LocationFromPoint(p),
		Color:       models.Color(f.Properties.MustString("color", "")),
		Description: f.Properties.MustString("description", ""),
		URL:         f.Properties.MustString("url", ""),
	}
}

// featureID formats a GeoJSON feature id, which may be a string or a number.
func featureID(v any) string {
	switch id := v.(type) {
	case string:
		return id
	case float64:
		return strconv.FormatFloat(id, 'f', -1, 64)
	}
	return ""
}

func geometryType(g orb.Geometry) string {
	if g == nil {
		return "none"
	}
	return g.GeoJSONType()
}
