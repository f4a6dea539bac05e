// Package target derives per-hour nutrition targets from the athlete's
// activity mode, sweat profile, and current weather.
package target

import (
	"fmt"

	"github.com/jeffreyruoss/run-fuel-calculator/internal/model"
)

const (
	MinCarbsPerHour     = 30
	MaxCarbsPerHour     = 120
	MinSodiumPerHour    = 0
	MaxSodiumPerHour    = 1500
	MinPotassiumPerHour = 0
	MaxPotassiumPerHour = 500
)

type Targets struct {
	CarbsPerHour     float64
	SodiumPerHour    float64
	PotassiumPerHour float64
}

// Recommend computes targets deterministically. Carbs depend only on
// activity mode; sodium and potassium respond to sweat profile and
// weather. Humidity stacks on top of the temperature bump.
func Recommend(mode model.ActivityMode, sweat model.SweatProfile, weather model.Weather) Targets {
	t := Targets{PotassiumPerHour: 100}

	if mode == model.ModeRace {
		t.CarbsPerHour = 75
	} else {
		t.CarbsPerHour = 45
	}

	switch sweat {
	case model.SweatLow:
		t.SodiumPerHour = 250
	case model.SweatHigh:
		t.SodiumPerHour = 900
	default:
		t.SodiumPerHour = 500
	}

	if weather.TemperatureF > 75 {
		t.SodiumPerHour += 200
		t.PotassiumPerHour += 50
	} else if weather.TemperatureF > 60 {
		t.SodiumPerHour += 100
	}
	if weather.TemperatureF > 60 && weather.HumidityPct > 60 {
		t.SodiumPerHour += 100
	}

	t.CarbsPerHour = ClampCarbs(t.CarbsPerHour)
	t.SodiumPerHour = ClampSodium(t.SodiumPerHour)
	t.PotassiumPerHour = ClampPotassium(t.PotassiumPerHour)
	return t
}

// Summary describes the inputs used and the resulting targets in a form
// suitable for printing back to the user.
func Summary(mode model.ActivityMode, sweat model.SweatProfile, weather model.Weather, t Targets) string {
	return fmt.Sprintf(
		"Based on %s effort, %s sweat rate, %.0f°F and %.0f%% humidity:\n"+
			"  Carbs:     %.0f g/hr\n"+
			"  Sodium:    %.0f mg/hr\n"+
			"  Potassium: %.0f mg/hr",
		mode, sweat, weather.TemperatureF, weather.HumidityPct,
		t.CarbsPerHour, t.SodiumPerHour, t.PotassiumPerHour)
}

func ClampCarbs(v float64) float64 {
	return clamp(v, MinCarbsPerHour, MaxCarbsPerHour)
}

func ClampSodium(v float64) float64 {
	return clamp(v, MinSodiumPerHour, MaxSodiumPerHour)
}

func ClampPotassium(v float64) float64 {
	return clamp(v, MinPotassiumPerHour, MaxPotassiumPerHour)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
