// Festmap - Festival Map Viewport and Selection Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/festmap

package models

// Category is a category key. The set of valid keys depends on the POI type.
type Category string

// AllCategories is the "no filter" value. It is never part of a vocabulary.
const AllCategories Category = ""

// Stage vocabulary.
const (
	CategoryStage Category = "stage"
)

// Stand vocabulary. Food and drink also appear in the service vocabulary with
// different styling.
const (
	CategoryFood    Category = "food"
	CategoryDrink   Category = "drink"
	CategoryMerch   Category = "merch"
	CategorySponsor Category = "sponsor"
	CategoryCraft   Category = "craft"
)

// Service vocabulary (in addition to food and drink).
const (
	CategoryToilets  Category = "toilets"
	CategoryFirstAid Category = "first_aid"
	CategoryInfo     Category = "info"
	CategoryWater    Category = "water"
	CategoryCharging Category = "charging"
	CategoryLockers  Category = "lockers"
)

// IsAll reports whether c is the "no filter" value.
func (c Category) IsAll() bool { return c == AllCategories }

// Icon references an icon in the host's icon set.
type Icon string

// Color is a CSS-style hex color, e.g. "#FF6B35".
type Color string

// Descriptor is the immutable styling record for one category.
type Descriptor struct {
	Key   Category
	Icon  Icon
	Label string
	Color Color
}
