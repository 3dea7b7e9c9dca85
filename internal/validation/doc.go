// Festmap - Festival Map Viewport and Selection Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/festmap

// Package validation provides struct validation using go-playground/validator v10.
//
// A single thread-safe validator instance is shared by the POI pipeline and
// the configuration loader. Field errors are translated into short
// human-readable messages:
//
//	if err := validation.ValidateStruct(&poi); err != nil {
//	    return fmt.Errorf("poi %s: %w", poi.ID, err)
//	}
package validation
