// Festmap - Festival Map Viewport and Selection Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/festmap

package category

import "github.com/tomtom215/festmap/internal/models"

func festivalVocabulary() map[models.POIType][]models.Descriptor {
	return map[models.POIType][]models.Descriptor{
		models.POITypeStage: {
			{Key: models.CategoryStage, Icon: "mic", Label: "Stages", Color: "#7B2CBF"},
		},
		models.POITypeStand: {
			{Key: models.CategoryFood, Icon: "restaurant", Label: "Food", Color: "#FF6B35"},
			{Key: models.CategoryDrink, Icon: "beer", Label: "Drinks", Color: "#4ECDC4"},
			{Key: models.CategoryMerch, Icon: "shirt", Label: "Merch", Color: "#9B5DE5"},
			{Key: models.CategorySponsor, Icon: "star", Label: "Sponsors", Color: "#F15BB5"},
			{Key: models.CategoryCraft, Icon: "color-palette", Label: "Crafts", Color: "#FEE440"},
		},
		models.POITypeService: {
			{Key: models.CategoryFood, Icon: "fast-food", Label: "Food", Color: "#F4A261"},
			{Key: models.CategoryDrink, Icon: "cafe", Label: "Drinks", Color: "#2A9D8F"},
			{Key: models.CategoryToilets, Icon: "toilet", Label: "Toilets", Color: "#457B9D"},
			{Key: models.CategoryFirstAid, Icon: "medkit", Label: "First Aid", Color: "#E63946"},
			{Key: models.CategoryInfo, Icon: "information-circle", Label: "Info", Color: "#1D3557"},
			{Key: models.CategoryWater, Icon: "water", Label: "Water", Color: "#00B4D8"},
			{Key: models.CategoryCharging, Icon: "battery-charging", Label: "Charging", Color: "#06D6A0"},
			{Key: models.CategoryLockers, Icon: "lock-closed", Label: "Lockers", Color: "#6C757D"},
		},
	}
}

// festivalCatalog is the filter chip order shown to users. It is
// configuration: a category with no POIs today is still listed.
func festivalCatalog() []Choice {
	return []Choice{
		{Category: models.AllCategories, Label: AllLabel, Icon: "apps"},
		{Category: models.CategoryStage, Label: "Stages", Icon: "musical-notes"},
		{Category: models.CategoryFood, Label: "Food", Icon: "restaurant"},
		{Category: models.CategoryDrink, Label: "Drinks", Icon: "beer"},
		{Category: models.CategoryMerch, Label: "Merch", Icon: "shirt"},
		{Category: models.CategorySponsor, Label: "Sponsors", Icon: "star"},
		{Category: models.CategoryCraft, Label: "Crafts", Icon: "color-palette"},
		{Category: models.CategoryToilets, Label: "Toilets", Icon: "toilet"},
		{Category: models.CategoryFirstAid, Label: "First Aid", Icon: "medkit"},
		{Category: models.CategoryInfo, Label: "Info", Icon: "information-circle"},
		{Category: models.CategoryWater, Label: "Water", Icon: "water"},
		{Category: models.CategoryCharging, Label: "Charging", Icon: "battery-charging"},
		{Category: models.CategoryLockers, Label: "Lockers", Icon: "lock-closed"},
	}
}
