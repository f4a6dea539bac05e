// Package session owns the live settings and plan for one CLI
// invocation. It is the only writer: pure computation stays in the
// catalog, plan, and target packages, and every mutation here is
// persisted before returning.
package session

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/jeffreyruoss/run-fuel-calculator/internal/catalog"
	"github.com/jeffreyruoss/run-fuel-calculator/internal/model"
	"github.com/jeffreyruoss/run-fuel-calculator/internal/plan"
	"github.com/jeffreyruoss/run-fuel-calculator/internal/store"
	"github.com/jeffreyruoss/run-fuel-calculator/internal/target"
)

type Session struct {
	db       *sql.DB
	Settings model.UserSettings
	Plan     model.Plan

	saveErr error
}

// Load restores state from storage and brings the plan length in line
// with the configured duration.
func Load(db *sql.DB) (*Session, error) {
	settings, err := store.LoadSettings(db)
	if err != nil {
		return nil, err
	}
	p, err := store.LoadPlan(db)
	if err != nil {
		return nil, err
	}
	s := &Session{db: db, Settings: settings, Plan: plan.Resize(p, settings.TotalHours())}
	return s, nil
}

// persist writes both records best-effort. A storage failure leaves the
// in-memory state authoritative for the rest of the session and is
// reported through SaveError rather than failing the operation.
func (s *Session) persist() error {
	s.saveErr = nil
	if err := store.SaveSettings(s.db, s.Settings); err != nil {
		s.saveErr = err
		return nil
	}
	if err := store.SavePlan(s.db, s.Plan); err != nil {
		s.saveErr = err
	}
	return nil
}

// SaveError reports whether the most recent mutation failed to reach
// storage.
func (s *Session) SaveError() error {
	return s.saveErr
}

// SetDuration updates the goal time, clamping out-of-range input, and
// resizes the plan. Hours dropped by a shorter duration lose their
// items permanently.
func (s *Session) SetDuration(hours, minutes int) error {
	s.Settings.TargetTimeHours = hours
	s.Settings.TargetTimeMinutes = minutes
	s.Settings = store.Sanitize(s.Settings)
	s.Plan = plan.Resize(s.Plan, s.Settings.TotalHours())
	return s.persist()
}

// SetTargets overwrites the per-hour targets, clamping each to its
// valid range.
func (s *Session) SetTargets(carbs, sodium, potassium float64) error {
	s.Settings.TargetCarbsPerHour = target.ClampCarbs(carbs)
	s.Settings.TargetSodiumPerHour = target.ClampSodium(sodium)
	s.Settings.TargetPotassiumPerHour = target.ClampPotassium(potassium)
	return s.persist()
}

func (s *Session) SetActivityMode(mode model.ActivityMode) error {
	switch mode {
	case model.ModeRace, model.ModeZone2:
	default:
		return fmt.Errorf("activity mode must be %q or %q", model.ModeRace, model.ModeZone2)
	}
	s.Settings.ActivityMode = mode
	return s.persist()
}

func (s *Session) SetSweatProfile(profile model.SweatProfile) error {
	switch profile {
	case model.SweatLow, model.SweatAverage, model.SweatHigh:
	default:
		return fmt.Errorf("sweat profile must be low, average, or high")
	}
	s.Settings.SweatProfile = profile
	return s.persist()
}

func (s *Session) SetWeather(w model.Weather) error {
	s.Settings.Weather = w
	return s.persist()
}

// ApplyRecommendation runs the target heuristic over the current mode,
// sweat profile, and weather, writes the resulting triple into the
// settings, and returns it. Duration, profile, and weather fields are
// untouched.
func (s *Session) ApplyRecommendation() (target.Targets, error) {
	t := target.Recommend(s.Settings.ActivityMode, s.Settings.SweatProfile, s.Settings.Weather)
	s.Settings.TargetCarbsPerHour = t.CarbsPerHour
	s.Settings.TargetSodiumPerHour = t.SodiumPerHour
	s.Settings.TargetPotassiumPerHour = t.PotassiumPerHour
	return t, s.persist()
}

// AddItem copies the identified catalog item into an hour. Hidden items
// cannot be added; the hour is 0-based.
func (s *Session) AddItem(hourIndex int, itemID string) (model.FuelItem, error) {
	if hourIndex < 0 || hourIndex >= len(s.Plan) {
		return model.FuelItem{}, fmt.Errorf("hour %d is outside the %d-hour plan", hourIndex+1, len(s.Plan))
	}
	item, ok := catalog.Find(catalog.Effective(s.Settings), itemID)
	if !ok {
		return model.FuelItem{}, fmt.Errorf("no visible fuel with id %q", itemID)
	}
	s.Plan = plan.AddItem(s.Plan, hourIndex, item)
	return item, s.persist()
}

// AddLookupItem accepts an externally sourced item into an hour and
// stores it in the custom library unless a custom item with the same
// name (case-insensitive) already exists. New customs are prepended so
// the most recent lookup surfaces first.
func (s *Session) AddLookupItem(hourIndex int, item model.FuelItem) error {
	if hourIndex < 0 || hourIndex >= len(s.Plan) {
		return fmt.Errorf("hour %d is outside the %d-hour plan", hourIndex+1, len(s.Plan))
	}
	if item.ID == "" {
		item.ID = "custom-" + uuid.NewString()
	}
	item.Custom = true
	s.Plan = plan.AddItem(s.Plan, hourIndex, item)

	exists := false
	for _, f := range s.Settings.CustomFuels {
		if strings.EqualFold(f.Name, item.Name) {
			exists = true
			break
		}
	}
	if !exists {
		customs := make([]model.FuelItem, 0, len(s.Settings.CustomFuels)+1)
		customs = append(customs, item)
		customs = append(customs, s.Settings.CustomFuels...)
		s.Settings.CustomFuels = customs
	}
	return s.persist()
}

// RemoveItem removes one instance of the item from the hour.
func (s *Session) RemoveItem(hourIndex int, itemID string) error {
	if hourIndex < 0 || hourIndex >= len(s.Plan) {
		return fmt.Errorf("hour %d is outside the %d-hour plan", hourIndex+1, len(s.Plan))
	}
	before := len(s.Plan[hourIndex].Items)
	s.Plan = plan.RemoveItem(s.Plan, hourIndex, itemID)
	if len(s.Plan[hourIndex].Items) == before {
		return fmt.Errorf("hour %d has no item %q", hourIndex+1, itemID)
	}
	return s.persist()
}

// ClearPlan empties every hour but keeps the plan length.
func (s *Session) ClearPlan() error {
	s.Plan = plan.Clear(s.Plan)
	return s.persist()
}

// HideFuel adds the id to the hidden set; UnhideFuel removes it.
func (s *Session) HideFuel(id string) error {
	for _, hidden := range s.Settings.HiddenFuelIDs {
		if hidden == id {
			return s.persist()
		}
	}
	s.Settings.HiddenFuelIDs = append(s.Settings.HiddenFuelIDs, id)
	return s.persist()
}

func (s *Session) UnhideFuel(id string) error {
	out := s.Settings.HiddenFuelIDs[:0]
	for _, hidden := range s.Settings.HiddenFuelIDs {
		if hidden != id {
			out = append(out, hidden)
		}
	}
	s.Settings.HiddenFuelIDs = out
	return s.persist()
}

// DeleteCustomFuel removes a custom item from the library and drops its
// id from the hidden set, so a future item reusing the id is not born
// hidden.
func (s *Session) DeleteCustomFuel(id string) error {
	customs := s.Settings.CustomFuels[:0]
	found := false
	for _, f := range s.Settings.CustomFuels {
		if f.ID == id {
			found = true
			continue
		}
		customs = append(customs, f)
	}
	if !found {
		return fmt.Errorf("no custom fuel with id %q", id)
	}
	s.Settings.CustomFuels = customs
	return s.UnhideFuel(id)
}

// FactoryReset clears persisted storage and restores defaults, with an
// empty plan resized for the default duration.
func (s *Session) FactoryReset() error {
	s.saveErr = store.ClearAll(s.db)
	s.Settings = store.DefaultSettings()
	s.Plan = plan.Resize(model.Plan{}, s.Settings.TotalHours())
	return nil
}

// Replace swaps in imported settings and plan wholesale, sanitizing and
// resizing through the same path as a normal load.
func (s *Session) Replace(settings model.UserSettings, p model.Plan) error {
	s.Settings = store.Sanitize(settings)
	s.Plan = plan.Resize(p, s.Settings.TotalHours())
	return s.persist()
}
