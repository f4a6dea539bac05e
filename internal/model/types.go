package model

type FuelType string

const (
	FuelGel   FuelType = "gel"
	FuelChew  FuelType = "chew"
	FuelDrink FuelType = "drink"
	FuelSolid FuelType = "solid"
	FuelOther FuelType = "other"
)

// ParseFuelType maps free-form provider output onto the closed set,
// falling back to "other" for anything unrecognized.
func ParseFuelType(s string) FuelType {
	switch FuelType(s) {
	case FuelGel, FuelChew, FuelDrink, FuelSolid, FuelOther:
		return FuelType(s)
	default:
		return FuelOther
	}
}

// FuelItem is a single consumable serving. Optional nutrients carry an
// explicit zero default so summation never deals with absent values.
type FuelItem struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Brand       string   `json:"brand,omitempty"`
	CarbsG      float64  `json:"carbs_g"`
	SodiumMg    float64  `json:"sodium_mg,omitempty"`
	PotassiumMg float64  `json:"potassium_mg,omitempty"`
	CaffeineMg  float64  `json:"caffeine_mg,omitempty"`
	Type        FuelType `json:"type"`
	Custom      bool     `json:"custom,omitempty"`
}

// HourPlan holds the fuel placed into one hour of the event. Items are
// value copies of catalog entries; the same item may appear repeatedly.
type HourPlan struct {
	HourIndex int        `json:"hour_index"`
	Items     []FuelItem `json:"items"`
}

type Plan []HourPlan

type ActivityMode string

const (
	ModeRace  ActivityMode = "race"
	ModeZone2 ActivityMode = "zone2-training"
)

type SweatProfile string

const (
	SweatLow     SweatProfile = "low"
	SweatAverage SweatProfile = "average"
	SweatHigh    SweatProfile = "high"
)

type Weather struct {
	TemperatureF float64 `json:"temperature_f"`
	HumidityPct  float64 `json:"humidity_pct"`
}

type UserSettings struct {
	TargetTimeHours        int          `json:"target_time_hours"`
	TargetTimeMinutes      int          `json:"target_time_minutes"`
	TargetCarbsPerHour     float64      `json:"target_carbs_per_hour"`
	TargetSodiumPerHour    float64      `json:"target_sodium_per_hour"`
	TargetPotassiumPerHour float64      `json:"target_potassium_per_hour"`
	ActivityMode           ActivityMode `json:"activity_mode"`
	SweatProfile           SweatProfile `json:"sweat_profile"`
	Weather                Weather      `json:"weather"`
	HiddenFuelIDs          []string     `json:"hidden_fuel_ids"`
	CustomFuels            []FuelItem   `json:"custom_fuels"`
}

// TotalHours derives the plan length from the goal time: any partial
// hour gets its own bucket.
func (s UserSettings) TotalHours() int {
	minutes := s.TargetTimeHours*60 + s.TargetTimeMinutes
	hours := minutes / 60
	if minutes%60 != 0 {
		hours++
	}
	if hours < 1 {
		hours = 1
	}
	return hours
}
