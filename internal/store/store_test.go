package store_test

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/jeffreyruoss/run-fuel-calculator/internal/db"
	"github.com/jeffreyruoss/run-fuel-calculator/internal/model"
	"github.com/jeffreyruoss/run-fuel-calculator/internal/store"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fuelplan.db")
	sqldb, err := db.Open(path)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.ApplyMigrations(sqldb); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	t.Cleanup(func() { sqldb.Close() })
	return sqldb
}

func TestSettingsRoundTrip(t *testing.T) {
	t.Parallel()
	sqldb := newTestDB(t)

	settings := store.DefaultSettings()
	settings.TargetCarbsPerHour = 90
	settings.SweatProfile = model.SweatHigh
	settings.CustomFuels = []model.FuelItem{{ID: "custom-1", Name: "Rice Cake", CarbsG: 35, Type: model.FuelSolid, Custom: true}}

	if err := store.SaveSettings(sqldb, settings); err != nil {
		t.Fatalf("save settings: %v", err)
	}
	got, err := store.LoadSettings(sqldb)
	if err != nil {
		t.Fatalf("load settings: %v", err)
	}
	if got.TargetCarbsPerHour != 90 || got.SweatProfile != model.SweatHigh {
		t.Fatalf("round trip lost fields: %+v", got)
	}
	if len(got.CustomFuels) != 1 || got.CustomFuels[0].Name != "Rice Cake" {
		t.Fatalf("round trip lost custom fuels: %+v", got.CustomFuels)
	}
}

func TestLoadSettingsMissingRecordYieldsDefaults(t *testing.T) {
	t.Parallel()
	sqldb := newTestDB(t)

	got, err := store.LoadSettings(sqldb)
	if err != nil {
		t.Fatalf("load settings: %v", err)
	}
	want := store.DefaultSettings()
	if got.TargetTimeHours != want.TargetTimeHours || got.TargetCarbsPerHour != want.TargetCarbsPerHour {
		t.Fatalf("expected defaults, got %+v", got)
	}
}

func TestLoadSettingsBackfillsOlderShape(t *testing.T) {
	t.Parallel()
	sqldb := newTestDB(t)

	// A record saved before activity mode and sweat profile existed.
	oldShape := `{"target_time_hours":5,"target_time_minutes":0,"target_carbs_per_hour":80}`
	if err := store.Set(sqldb, store.KeySettings, oldShape); err != nil {
		t.Fatalf("seed old settings: %v", err)
	}

	got, err := store.LoadSettings(sqldb)
	if err != nil {
		t.Fatalf("load settings: %v", err)
	}
	if got.TargetTimeHours != 5 || got.TargetCarbsPerHour != 80 {
		t.Fatalf("persisted fields lost: %+v", got)
	}
	if got.ActivityMode != model.ModeRace || got.SweatProfile != model.SweatAverage {
		t.Fatalf("missing fields were not backfilled: %+v", got)
	}
	if got.HiddenFuelIDs == nil || got.CustomFuels == nil {
		t.Fatalf("expected non-nil slices after backfill")
	}
}

func TestLoadSettingsCorruptRecordFailsSoft(t *testing.T) {
	t.Parallel()
	sqldb := newTestDB(t)

	if err := store.Set(sqldb, store.KeySettings, "{not json"); err != nil {
		t.Fatalf("seed corrupt settings: %v", err)
	}
	got, err := store.LoadSettings(sqldb)
	if err != nil {
		t.Fatalf("load settings should not fail on corrupt data: %v", err)
	}
	if got.TargetCarbsPerHour != store.DefaultSettings().TargetCarbsPerHour {
		t.Fatalf("expected defaults after corrupt record, got %+v", got)
	}
}

func TestLoadSettingsClampsOutOfRangeValues(t *testing.T) {
	t.Parallel()
	sqldb := newTestDB(t)

	raw := `{"target_time_hours":0,"target_time_minutes":99,"target_carbs_per_hour":500,"target_sodium_per_hour":-5,"target_potassium_per_hour":9999,"activity_mode":"sprint","sweat_profile":"dry"}`
	if err := store.Set(sqldb, store.KeySettings, raw); err != nil {
		t.Fatalf("seed settings: %v", err)
	}
	got, err := store.LoadSettings(sqldb)
	if err != nil {
		t.Fatalf("load settings: %v", err)
	}
	if got.TargetTimeHours != 1 || got.TargetTimeMinutes != 59 {
		t.Fatalf("duration not clamped: %+v", got)
	}
	if got.TargetCarbsPerHour != 120 || got.TargetSodiumPerHour != 0 || got.TargetPotassiumPerHour != 500 {
		t.Fatalf("targets not clamped: %+v", got)
	}
	if got.ActivityMode != model.ModeRace || got.SweatProfile != model.SweatAverage {
		t.Fatalf("enums not normalized: %+v", got)
	}
}

func TestPlanRoundTripAndCorruptFallback(t *testing.T) {
	t.Parallel()
	sqldb := newTestDB(t)

	p := model.Plan{
		{HourIndex: 0, Items: []model.FuelItem{{ID: "maurten-100", Name: "Gel 100", CarbsG: 25, Type: model.FuelGel}}},
		{HourIndex: 1, Items: []model.FuelItem{}},
	}
	if err := store.SavePlan(sqldb, p); err != nil {
		t.Fatalf("save plan: %v", err)
	}
	got, err := store.LoadPlan(sqldb)
	if err != nil {
		t.Fatalf("load plan: %v", err)
	}
	if len(got) != 2 || got[0].Items[0].ID != "maurten-100" {
		t.Fatalf("plan round trip failed: %+v", got)
	}

	if err := store.Set(sqldb, store.KeyPlan, "[[["); err != nil {
		t.Fatalf("seed corrupt plan: %v", err)
	}
	got, err = store.LoadPlan(sqldb)
	if err != nil {
		t.Fatalf("load plan should not fail on corrupt data: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty plan after corrupt record, got %+v", got)
	}
}

func TestClearAllRemovesBothRecords(t *testing.T) {
	t.Parallel()
	sqldb := newTestDB(t)

	if err := store.SaveSettings(sqldb, store.DefaultSettings()); err != nil {
		t.Fatalf("save settings: %v", err)
	}
	if err := store.SavePlan(sqldb, model.Plan{}); err != nil {
		t.Fatalf("save plan: %v", err)
	}
	if err := store.ClearAll(sqldb); err != nil {
		t.Fatalf("clear all: %v", err)
	}
	if _, found, _ := store.Get(sqldb, store.KeySettings); found {
		t.Fatalf("settings record survived clear")
	}
	if _, found, _ := store.Get(sqldb, store.KeyPlan); found {
		t.Fatalf("plan record survived clear")
	}
}
