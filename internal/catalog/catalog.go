// Package catalog holds the built-in fuel library and the visibility and
// search filtering applied before items are offered to the user.
package catalog

import (
	"strings"

	"github.com/jeffreyruoss/run-fuel-calculator/internal/model"
)

// BuiltIns returns a fresh copy of the preset fuel library. Presets are
// fixed at process start; callers may not mutate shared state through
// the returned slice.
func BuiltIns() []model.FuelItem {
	out := make([]model.FuelItem, len(presets))
	copy(out, presets)
	return out
}

// FindBuiltIn looks a preset up by ID.
func FindBuiltIn(id string) (model.FuelItem, bool) {
	for _, item := range presets {
		if item.ID == id {
			return item, true
		}
	}
	return model.FuelItem{}, false
}

// Effective combines built-ins with the user's custom items and removes
// anything the user has hidden.
func Effective(settings model.UserSettings) []model.FuelItem {
	hidden := make(map[string]bool, len(settings.HiddenFuelIDs))
	for _, id := range settings.HiddenFuelIDs {
		hidden[id] = true
	}
	out := make([]model.FuelItem, 0, len(presets)+len(settings.CustomFuels))
	for _, item := range BuiltIns() {
		if !hidden[item.ID] {
			out = append(out, item)
		}
	}
	for _, item := range settings.CustomFuels {
		if !hidden[item.ID] {
			out = append(out, item)
		}
	}
	return out
}

// Filter applies a case-insensitive substring match against name or
// brand. An empty or whitespace query returns the input unfiltered.
func Filter(items []model.FuelItem, query string) []model.FuelItem {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return items
	}
	out := make([]model.FuelItem, 0, len(items))
	for _, item := range items {
		if strings.Contains(strings.ToLower(item.Name), query) ||
			strings.Contains(strings.ToLower(item.Brand), query) {
			out = append(out, item)
		}
	}
	return out
}

// Find searches a slice by ID.
func Find(items []model.FuelItem, id string) (model.FuelItem, bool) {
	for _, item := range items {
		if item.ID == id {
			return item, true
		}
	}
	return model.FuelItem{}, false
}

var presets = []model.FuelItem{
	{ID: "ritz-pb", Name: "Ritz PB Sandwich (1)", Brand: "Ritz", CarbsG: 4, SodiumMg: 48, PotassiumMg: 35, Type: model.FuelSolid},
	{ID: "pretzel-nibs", Name: "Sourdough Nibs (5)", Brand: "Snyder's", CarbsG: 7, SodiumMg: 80, PotassiumMg: 20, Type: model.FuelSolid},
	{ID: "maurten-100", Name: "Gel 100", Brand: "Maurten", CarbsG: 25, Type: model.FuelGel},
	{ID: "maurten-100-caf", Name: "Gel 100 Caf 100", Brand: "Maurten", CarbsG: 25, CaffeineMg: 100, Type: model.FuelGel},
	{ID: "maurten-160", Name: "Drink Mix 160", Brand: "Maurten", CarbsG: 39, Type: model.FuelDrink},
	{ID: "maurten-320", Name: "Drink Mix 320", Brand: "Maurten", CarbsG: 79, Type: model.FuelDrink},
	{ID: "gu-orig", Name: "Original Energy Gel", Brand: "GU", CarbsG: 22, SodiumMg: 60, PotassiumMg: 40, CaffeineMg: 20, Type: model.FuelGel},
	{ID: "gu-roctane", Name: "Roctane Gel", Brand: "GU", CarbsG: 21, SodiumMg: 180, PotassiumMg: 40, CaffeineMg: 35, Type: model.FuelGel},
	{ID: "sis-iso", Name: "Go Isotonic Gel", Brand: "SiS", CarbsG: 22, SodiumMg: 10, Type: model.FuelGel},
	{ID: "sis-beta", Name: "Beta Fuel Gel", Brand: "SiS", CarbsG: 40, Type: model.FuelGel},
	{ID: "clif-blok", Name: "Blok (1 piece)", Brand: "Clif", CarbsG: 8, SodiumMg: 17, PotassiumMg: 20, Type: model.FuelChew},
	{ID: "skratch-chew", Name: "Energy Chews (pack)", Brand: "Skratch", CarbsG: 38, SodiumMg: 160, PotassiumMg: 40, Type: model.FuelChew},
	{ID: "swedish-fish", Name: "Swedish Fish (1)", Brand: "Candy", CarbsG: 5, SodiumMg: 5, Type: model.FuelChew},
	{ID: "banana", Name: "Banana (Medium)", Brand: "Whole Food", CarbsG: 27, SodiumMg: 1, PotassiumMg: 422, Type: model.FuelSolid},
	{ID: "dates", Name: "Medjool Date (1)", Brand: "Whole Food", CarbsG: 18, PotassiumMg: 167, Type: model.FuelSolid},
	{ID: "dried-apricot", Name: "Dried Apricot (1)", Brand: "Whole Food", CarbsG: 5, PotassiumMg: 65, Type: model.FuelSolid},
	{ID: "gatorade", Name: "Gatorade Endurance (12oz)", Brand: "Gatorade", CarbsG: 22, SodiumMg: 300, PotassiumMg: 140, Type: model.FuelDrink},
	{ID: "tailwind", Name: "Endurance Fuel (2 scoops)", Brand: "Tailwind", CarbsG: 50, SodiumMg: 600, PotassiumMg: 180, Type: model.FuelDrink},
	{ID: "precision-30", Name: "PF 30 Gel", Brand: "Precision Fuel", CarbsG: 30, Type: model.FuelGel},
	{ID: "precision-90", Name: "PF 90 Gel", Brand: "Precision Fuel", CarbsG: 90, Type: model.FuelGel},
}
