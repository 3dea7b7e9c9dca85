// Festmap - Festival Map Viewport and Selection Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/festmap

package category

import (
	"errors"
	"fmt"

	"github.com/tomtom215/festmap/internal/models"
)

// ErrUnknownCategory is matched by every UnknownCategoryError.
var ErrUnknownCategory = errors.New("unknown category")

// UnknownCategoryError reports an undeclared (poi type, category) pair.
// Type is empty when the lookup was by category alone.
type UnknownCategoryError struct {
	Type     models.POIType
	Category models.Category
}

func (e *UnknownCategoryError) Error() string {
	if e.Type == "" {
		return fmt.Sprintf("unknown category %q", e.Category)
	}
	return fmt.Sprintf("unknown category %q for poi type %q", e.Category, e.Type)
}

// Is lets errors.Is(err, ErrUnknownCategory) match.
func (e *UnknownCategoryError) Is(target error) bool {
	return target == ErrUnknownCategory
}
