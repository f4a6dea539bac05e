package plan_test

import (
	"testing"

	"github.com/jeffreyruoss/run-fuel-calculator/internal/model"
	"github.com/jeffreyruoss/run-fuel-calculator/internal/plan"
)

func gel(id string, carbs float64) model.FuelItem {
	return model.FuelItem{ID: id, Name: id, CarbsG: carbs, Type: model.FuelGel}
}

func TestHourTotalsSumsEveryNutrient(t *testing.T) {
	t.Parallel()

	h := model.HourPlan{Items: []model.FuelItem{
		{ID: "a", CarbsG: 25, SodiumMg: 60, PotassiumMg: 40, CaffeineMg: 20},
		{ID: "b", CarbsG: 8, SodiumMg: 17},
	}}
	got := plan.HourTotals(h)
	if got.CarbsG != 33 || got.SodiumMg != 77 || got.PotassiumMg != 40 || got.CaffeineMg != 20 {
		t.Fatalf("unexpected totals: %+v", got)
	}
}

func TestPlanTotalsRollsUpAcrossHours(t *testing.T) {
	t.Parallel()

	p := model.Plan{
		{HourIndex: 0, Items: []model.FuelItem{gel("a", 25)}},
		{HourIndex: 1, Items: []model.FuelItem{gel("b", 30), gel("b", 30)}},
		{HourIndex: 2, Items: []model.FuelItem{}},
	}
	if got := plan.PlanTotals(p); got.CarbsG != 85 {
		t.Fatalf("expected 85g total, got %.0f", got.CarbsG)
	}
}

func TestClassifyBands(t *testing.T) {
	t.Parallel()

	cases := []struct {
		total float64
		want  plan.Status
	}{
		{0, plan.StatusEmpty},
		{79, plan.StatusUnder},
		{80, plan.StatusOnTarget},
		{95, plan.StatusOnTarget},
		{110, plan.StatusOnTarget},
		{115, plan.StatusOver},
	}
	for _, tc := range cases {
		if got := plan.Classify(tc.total, 100); got != tc.want {
			t.Fatalf("Classify(%.0f, 100) = %s, want %s", tc.total, got, tc.want)
		}
	}
}

func TestProgressPercentCapsAt120(t *testing.T) {
	t.Parallel()

	if got := plan.ProgressPercent(60, 100); got != 60 {
		t.Fatalf("expected 60%%, got %.0f", got)
	}
	if got := plan.ProgressPercent(300, 100); got != 120 {
		t.Fatalf("expected cap at 120%%, got %.0f", got)
	}
	if got := plan.ProgressPercent(10, 0); got != 0 {
		t.Fatalf("expected 0%% for zero target, got %.0f", got)
	}
}

func TestResizeGrowsWithEmptyHours(t *testing.T) {
	t.Parallel()

	p := model.Plan{
		{HourIndex: 0, Items: []model.FuelItem{gel("a", 25)}},
		{HourIndex: 1, Items: []model.FuelItem{gel("b", 30)}},
	}
	got := plan.Resize(p, 4)
	if len(got) != 4 {
		t.Fatalf("expected 4 hours, got %d", len(got))
	}
	if len(got[0].Items) != 1 || len(got[1].Items) != 1 {
		t.Fatalf("existing hours should keep their items: %+v", got)
	}
	for i, h := range got {
		if h.HourIndex != i {
			t.Fatalf("hour %d has index %d", i, h.HourIndex)
		}
	}
	if len(got[2].Items) != 0 || len(got[3].Items) != 0 {
		t.Fatalf("new hours should start empty")
	}
}

func TestResizeTruncationDropsItems(t *testing.T) {
	t.Parallel()

	p := model.Plan{
		{HourIndex: 0, Items: []model.FuelItem{gel("a", 25)}},
		{HourIndex: 1, Items: []model.FuelItem{gel("b", 30)}},
		{HourIndex: 2, Items: []model.FuelItem{gel("c", 40)}},
	}
	short := plan.Resize(p, 2)
	if len(short) != 2 {
		t.Fatalf("expected 2 hours, got %d", len(short))
	}
	if short[0].Items[0].ID != "a" || short[1].Items[0].ID != "b" {
		t.Fatalf("prefix hours changed: %+v", short)
	}
	// Growing back does not resurrect the dropped hour's items.
	regrown := plan.Resize(short, 3)
	if len(regrown[2].Items) != 0 {
		t.Fatalf("dropped items should not be recoverable, got %+v", regrown[2].Items)
	}
}

func TestAddItemDuplicatesCountAndTotal(t *testing.T) {
	t.Parallel()

	p := plan.Resize(model.Plan{}, 2)
	item := gel("maurten-100", 25)
	p = plan.AddItem(p, 0, item)
	p = plan.AddItem(p, 0, item)

	groups := plan.GroupItems(p[0])
	if len(groups) != 1 || groups[0].Count != 2 {
		t.Fatalf("expected one group with count 2, got %+v", groups)
	}
	if got := plan.HourTotals(p[0]).CarbsG; got != 50 {
		t.Fatalf("expected 50g from two gels, got %.0f", got)
	}
}

func TestRemoveItemDecrementsOneInstance(t *testing.T) {
	t.Parallel()

	p := plan.Resize(model.Plan{}, 1)
	item := gel("maurten-100", 25)
	p = plan.AddItem(p, 0, item)
	p = plan.AddItem(p, 0, item)
	p = plan.RemoveItem(p, 0, "maurten-100")

	groups := plan.GroupItems(p[0])
	if len(groups) != 1 || groups[0].Count != 1 {
		t.Fatalf("expected one remaining instance, got %+v", groups)
	}

	p = plan.RemoveItem(p, 0, "maurten-100")
	if len(p[0].Items) != 0 {
		t.Fatalf("expected empty hour, got %+v", p[0].Items)
	}
	// Removing from an empty hour is a no-op.
	p = plan.RemoveItem(p, 0, "maurten-100")
	if len(p[0].Items) != 0 {
		t.Fatalf("remove on empty hour should be a no-op")
	}
}

func TestGroupItemsPreservesFirstSeenOrder(t *testing.T) {
	t.Parallel()

	h := model.HourPlan{Items: []model.FuelItem{gel("b", 1), gel("a", 1), gel("b", 1)}}
	groups := plan.GroupItems(h)
	if len(groups) != 2 || groups[0].Item.ID != "b" || groups[1].Item.ID != "a" {
		t.Fatalf("unexpected grouping order: %+v", groups)
	}
	if groups[0].Count != 2 {
		t.Fatalf("expected b counted twice, got %d", groups[0].Count)
	}
}

func TestAddItemDoesNotMutateInput(t *testing.T) {
	t.Parallel()

	p := plan.Resize(model.Plan{}, 1)
	before := len(p[0].Items)
	_ = plan.AddItem(p, 0, gel("a", 10))
	if len(p[0].Items) != before {
		t.Fatalf("AddItem mutated its input plan")
	}
}

func TestClearKeepsLength(t *testing.T) {
	t.Parallel()

	p := plan.Resize(model.Plan{}, 3)
	p = plan.AddItem(p, 1, gel("a", 10))
	cleared := plan.Clear(p)
	if len(cleared) != 3 {
		t.Fatalf("expected 3 hours after clear, got %d", len(cleared))
	}
	for _, h := range cleared {
		if len(h.Items) != 0 {
			t.Fatalf("expected empty hours after clear")
		}
	}
}
