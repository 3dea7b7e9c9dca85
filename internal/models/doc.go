// Festmap - Festival Map Viewport and Selection Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/festmap

/*
Package models defines the festival map's data types.

  - POI: a stage, stand or service plotted on the map
  - Location: WGS84 latitude/longitude, convertible to orb.Point
  - Category: a filter key; AllCategories ("") means no filter
  - Descriptor: the icon, label and color registered for a category

Validation tags (go-playground/validator) describe field-level rules. The
rule that a POI's category must belong to its type's vocabulary lives in
category.Registry.Validate, since the vocabularies are registry data.
*/
package models
