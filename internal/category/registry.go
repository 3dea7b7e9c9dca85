// Festmap - Festival Map Viewport and Selection Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/festmap

package category

import (
	"fmt"
	"sync"

	"github.com/tomtom215/festmap/internal/models"
	"github.com/tomtom215/festmap/internal/validation"
)

// DefaultAccent is the stand color used when a stand category has no entry
// in the stand color table.
const DefaultAccent models.Color = "#FF006E"

// AllLabel is the label of the "no filter" choice.
const AllLabel = "All"

type pairKey struct {
	t models.POIType
	c models.Category
}

// Choice is one selectable filter chip.
type Choice struct {
	Category models.Category
	Label    string
	Icon     models.Icon
}

// Registry maps (poi type, category) pairs to descriptors.
type Registry struct {
	descriptors map[pairKey]models.Descriptor
	vocab       map[models.POIType][]models.Category
	labels      map[models.Category]string
	catalog     []Choice
}

var (
	defaultRegistry     *Registry
	defaultRegistryOnce sync.Once
)

// Default returns the festival registry. It is built once and never mutated.
func Default() *Registry {
	defaultRegistryOnce.Do(func() {
		defaultRegistry = newRegistry(festivalVocabulary(), festivalCatalog())
	})
	return defaultRegistry
}

func newRegistry(vocab map[models.POIType][]models.Descriptor, catalog []Choice) *Registry {
	r := &Registry{
		descriptors: make(map[pairKey]models.Descriptor),
		vocab:       make(map[models.POIType][]models.Category, len(vocab)),
		labels:      make(map[models.Category]string),
		catalog:     catalog,
	}
	for t, descs := range vocab {
		for _, d := range descs {
			r.descriptors[pairKey{t, d.Key}] = d
			r.vocab[t] = append(r.vocab[t], d.Key)
			if _, ok := r.labels[d.Key]; !ok {
				r.labels[d.Key] = d.Label
			}
		}
	}
	return r
}

// Declares reports whether category belongs to the vocabulary of t.
func (r *Registry) Declares(t models.POIType, c models.Category) bool {
	_, ok := r.descriptors[pairKey{t, c}]
	return ok
}

// Lookup returns the descriptor for the pair.
func (r *Registry) Lookup(t models.POIType, c models.Category) (models.Descriptor, error) {
	d, ok := r.descriptors[pairKey{t, c}]
	if !ok {
		return models.Descriptor{}, &UnknownCategoryError{Type: t, Category: c}
	}
	return d, nil
}

// IconFor returns the icon for the pair.
func (r *Registry) IconFor(t models.POIType, c models.Category) (models.Icon, error) {
	d, err := r.Lookup(t, c)
	if err != nil {
		return "", err
	}
	return d.Icon, nil
}

// ColorFor returns the color for the pair.
func (r *Registry) ColorFor(t models.POIType, c models.Category) (models.Color, error) {
	d, err := r.Lookup(t, c)
	if err != nil {
		return "", err
	}
	return d.Color, nil
}

// LabelFor returns the human label of a category. AllCategories maps to
// AllLabel.
func (r *Registry) LabelFor(c models.Category) (string, error) {
	if c.IsAll() {
		return AllLabel, nil
	}
	label, ok := r.labels[c]
	if !ok {
		return "", &UnknownCategoryError{Category: c}
	}
	return label, nil
}

// StandColor looks up the stand color table. ok is false for categories
// outside the stand vocabulary.
func (r *Registry) StandColor(c models.Category) (models.Color, bool) {
	d, ok := r.descriptors[pairKey{models.POITypeStand, c}]
	if !ok {
		return "", false
	}
	return d.Color, true
}

// Vocabulary returns the categories declared for t, in declaration order.
func (r *Registry) Vocabulary(t models.POIType) []models.Category {
	out := make([]models.Category, len(r.vocab[t]))
	copy(out, r.vocab[t])
	return out
}

// Catalog returns the ordered filter choices, "all" first.
func (r *Registry) Catalog() []Choice {
	out := make([]Choice, len(r.catalog))
	copy(out, r.catalog)
	return out
}

// Validate checks a POI's fields and that its category belongs to its type's
// vocabulary.
func (r *Registry) Validate(poi *models.POI) error {
	if err := validation.ValidateStruct(poi); err != nil {
		return fmt.Errorf("poi %q: %w", poi.ID, err)
	}
	if !r.Declares(poi.Type, poi.Category) {
		return fmt.Errorf("poi %q: %w", poi.ID, &UnknownCategoryError{Type: poi.Type, Category: poi.Category})
	}
	return nil
}
