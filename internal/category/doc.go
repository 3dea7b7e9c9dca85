// Festmap - Festival Map Viewport and Selection Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/festmap

/*
Package category is the single source of truth for POI styling.

The Registry is a static, total mapping from every declared (poi type,
category) pair to an immutable Descriptor {key, icon, label, color}. Each POI
type owns its own vocabulary:

	stage   -> stage
	stand   -> food, drink, merch, sponsor, craft
	service -> food, drink, toilets, first_aid, info, water, charging, lockers

The stand and service vocabularies overlap on food and drink but carry
different styling; lookups are always keyed by the pair, never by the
category alone.

# Failure Policy

IconFor, ColorFor and LabelFor return an *UnknownCategoryError (matching
ErrUnknownCategory) for undeclared input. Reaching them with such input is a
data defect: callers validate POIs with Validate before presenting them.
StandColor is the lenient exception used by the marker presenter, which
prefers a default accent color over failing at render time.

The registry is immutable for the process lifetime and safe for concurrent
reads.
*/
package category
