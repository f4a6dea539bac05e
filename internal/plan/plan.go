// Package plan holds the pure aggregation, classification, and resize
// logic for hour-by-hour fueling plans. Nothing here mutates its inputs.
package plan

import (
	"github.com/jeffreyruoss/run-fuel-calculator/internal/model"
)

// Status is the adherence band for an hour's carbohydrate intake.
type Status string

const (
	StatusEmpty    Status = "empty"
	StatusUnder    Status = "under"
	StatusOnTarget Status = "on-target"
	StatusOver     Status = "over"
)

type Totals struct {
	CarbsG      float64
	SodiumMg    float64
	PotassiumMg float64
	CaffeineMg  float64
}

func (t Totals) add(item model.FuelItem) Totals {
	t.CarbsG += item.CarbsG
	t.SodiumMg += item.SodiumMg
	t.PotassiumMg += item.PotassiumMg
	t.CaffeineMg += item.CaffeineMg
	return t
}

// HourTotals sums nutrient content across the items in one hour.
func HourTotals(h model.HourPlan) Totals {
	var t Totals
	for _, item := range h.Items {
		t = t.add(item)
	}
	return t
}

// PlanTotals rolls up every hour of the plan.
func PlanTotals(p model.Plan) Totals {
	var t Totals
	for _, h := range p {
		for _, item := range h.Items {
			t = t.add(item)
		}
	}
	return t
}

// Classify bands an hour's carb total against the hourly target. A zero
// total is reported as empty rather than under, so unfilled hours are
// not framed as failures.
func Classify(totalCarbs, targetCarbs float64) Status {
	switch {
	case totalCarbs == 0:
		return StatusEmpty
	case totalCarbs < targetCarbs*0.8:
		return StatusUnder
	case totalCarbs > targetCarbs*1.1:
		return StatusOver
	default:
		return StatusOnTarget
	}
}

// ProgressPercent is the fill level of the hour's progress indicator,
// capped at 120 so overshoot does not blow out the display.
func ProgressPercent(totalCarbs, targetCarbs float64) float64 {
	if targetCarbs <= 0 {
		return 0
	}
	pct := totalCarbs / targetCarbs * 100
	if pct > 120 {
		pct = 120
	}
	return pct
}

// ElectrolyteMet reports the binary met/not-met indicator used for
// sodium and potassium; no banding is applied to those.
func ElectrolyteMet(total, targetPerHour float64) bool {
	return total >= targetPerHour
}

// ItemGroup is an item plus how many instances of it sit in the hour.
type ItemGroup struct {
	Item  model.FuelItem
	Count int
}

// GroupItems collapses repeated instances by ID, preserving first-seen
// order for display.
func GroupItems(h model.HourPlan) []ItemGroup {
	index := make(map[string]int, len(h.Items))
	groups := make([]ItemGroup, 0, len(h.Items))
	for _, item := range h.Items {
		if i, ok := index[item.ID]; ok {
			groups[i].Count++
			continue
		}
		index[item.ID] = len(groups)
		groups = append(groups, ItemGroup{Item: item, Count: 1})
	}
	return groups
}

// Resize returns a plan of exactly hours buckets. Existing hours keep
// their items positionally; new hours start empty; hours past the end
// are dropped along with their items.
func Resize(p model.Plan, hours int) model.Plan {
	if hours < 1 {
		hours = 1
	}
	out := make(model.Plan, 0, hours)
	for i := 0; i < hours; i++ {
		if i < len(p) {
			h := p[i]
			h.HourIndex = i
			out = append(out, h)
			continue
		}
		out = append(out, model.HourPlan{HourIndex: i, Items: []model.FuelItem{}})
	}
	return out
}

// AddItem appends a value copy of item to the given hour and returns
// the updated plan. Out-of-range hours are a no-op.
func AddItem(p model.Plan, hourIndex int, item model.FuelItem) model.Plan {
	if hourIndex < 0 || hourIndex >= len(p) {
		return p
	}
	out := make(model.Plan, len(p))
	copy(out, p)
	h := out[hourIndex]
	items := make([]model.FuelItem, 0, len(h.Items)+1)
	items = append(items, h.Items...)
	items = append(items, item)
	h.Items = items
	out[hourIndex] = h
	return out
}

// RemoveItem removes the first instance matching id from the given hour,
// leaving any other instances in place.
func RemoveItem(p model.Plan, hourIndex int, id string) model.Plan {
	if hourIndex < 0 || hourIndex >= len(p) {
		return p
	}
	h := p[hourIndex]
	at := -1
	for i, item := range h.Items {
		if item.ID == id {
			at = i
			break
		}
	}
	if at == -1 {
		return p
	}
	out := make(model.Plan, len(p))
	copy(out, p)
	items := make([]model.FuelItem, 0, len(h.Items)-1)
	items = append(items, h.Items[:at]...)
	items = append(items, h.Items[at+1:]...)
	h.Items = items
	out[hourIndex] = h
	return out
}

// Clear returns an empty plan of the same length.
func Clear(p model.Plan) model.Plan {
	out := make(model.Plan, len(p))
	for i := range out {
		out[i] = model.HourPlan{HourIndex: i, Items: []model.FuelItem{}}
	}
	return out
}
