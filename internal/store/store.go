// Package store persists settings and the fueling plan as two
// independent JSON records in a small key-value table. Reads fail soft:
// a missing or corrupt record yields defaults, never an error the
// caller has to handle beyond real storage failures.
package store

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/jeffreyruoss/run-fuel-calculator/internal/model"
	"github.com/jeffreyruoss/run-fuel-calculator/internal/target"
)

const (
	KeySettings = "settings"
	KeyPlan     = "plan"
)

// DefaultSettings returns the out-of-box configuration.
func DefaultSettings() model.UserSettings {
	return model.UserSettings{
		TargetTimeHours:        3,
		TargetTimeMinutes:      30,
		TargetCarbsPerHour:     60,
		TargetSodiumPerHour:    400,
		TargetPotassiumPerHour: 100,
		ActivityMode:           model.ModeRace,
		SweatProfile:           model.SweatAverage,
		Weather:                model.Weather{TemperatureF: 60, HumidityPct: 50},
		HiddenFuelIDs:          []string{},
		CustomFuels:            []model.FuelItem{},
	}
}

func Get(db *sql.DB, key string) (string, bool, error) {
	var value string
	err := db.QueryRow(`SELECT value FROM app_state WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get state %q: %w", key, err)
	}
	return value, true, nil
}

func Set(db *sql.DB, key, value string) error {
	_, err := db.Exec(`
INSERT INTO app_state(key, value, updated_at)
VALUES(?, ?, CURRENT_TIMESTAMP)
ON CONFLICT(key) DO UPDATE SET value=excluded.value, updated_at=excluded.updated_at
`, key, value)
	if err != nil {
		return fmt.Errorf("set state %q: %w", key, err)
	}
	return nil
}

func Delete(db *sql.DB, key string) error {
	if _, err := db.Exec(`DELETE FROM app_state WHERE key = ?`, key); err != nil {
		return fmt.Errorf("delete state %q: %w", key, err)
	}
	return nil
}

// LoadSettings merges the persisted record over a complete set of
// defaults so records written by older versions backfill new fields.
// Corrupt data falls back to defaults.
func LoadSettings(db *sql.DB) (model.UserSettings, error) {
	settings := DefaultSettings()
	raw, found, err := Get(db, KeySettings)
	if err != nil {
		return settings, err
	}
	if !found {
		return settings, nil
	}
	if err := json.Unmarshal([]byte(raw), &settings); err != nil {
		return DefaultSettings(), nil
	}
	return Sanitize(settings), nil
}

func SaveSettings(db *sql.DB, settings model.UserSettings) error {
	payload, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}
	return Set(db, KeySettings, string(payload))
}

// LoadPlan restores the plan verbatim; missing or corrupt records yield
// an empty plan which callers resize to the current duration.
func LoadPlan(db *sql.DB) (model.Plan, error) {
	raw, found, err := Get(db, KeyPlan)
	if err != nil {
		return model.Plan{}, err
	}
	if !found {
		return model.Plan{}, nil
	}
	var p model.Plan
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		return model.Plan{}, nil
	}
	return p, nil
}

func SavePlan(db *sql.DB, p model.Plan) error {
	payload, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal plan: %w", err)
	}
	return Set(db, KeyPlan, string(payload))
}

// ClearAll removes both records; used by factory reset.
func ClearAll(db *sql.DB) error {
	if err := Delete(db, KeySettings); err != nil {
		return err
	}
	return Delete(db, KeyPlan)
}

// Sanitize clamps numeric fields to their valid ranges and normalizes
// enum fields. Out-of-range input is corrected, never rejected.
func Sanitize(s model.UserSettings) model.UserSettings {
	if s.TargetTimeHours < 1 {
		s.TargetTimeHours = 1
	}
	if s.TargetTimeMinutes < 0 {
		s.TargetTimeMinutes = 0
	}
	if s.TargetTimeMinutes > 59 {
		s.TargetTimeMinutes = 59
	}
	s.TargetCarbsPerHour = target.ClampCarbs(s.TargetCarbsPerHour)
	s.TargetSodiumPerHour = target.ClampSodium(s.TargetSodiumPerHour)
	s.TargetPotassiumPerHour = target.ClampPotassium(s.TargetPotassiumPerHour)
	switch s.ActivityMode {
	case model.ModeRace, model.ModeZone2:
	default:
		s.ActivityMode = model.ModeRace
	}
	switch s.SweatProfile {
	case model.SweatLow, model.SweatAverage, model.SweatHigh:
	default:
		s.SweatProfile = model.SweatAverage
	}
	if s.HiddenFuelIDs == nil {
		s.HiddenFuelIDs = []string{}
	}
	if s.CustomFuels == nil {
		s.CustomFuels = []model.FuelItem{}
	}
	return s
}
