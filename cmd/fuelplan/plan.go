package fuelplan

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	planpkg "github.com/jeffreyruoss/run-fuel-calculator/internal/plan"
	"github.com/jeffreyruoss/run-fuel-calculator/internal/session"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Build and inspect the hour-by-hour fueling plan",
}

var planShowJSON bool

var planShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the plan with per-hour totals and adherence",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd, func(sess *session.Session) error {
			if planShowJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(sess.Plan)
			}
			printPlan(cmd, sess)
			return nil
		})
	},
}

func printPlan(cmd *cobra.Command, sess *session.Session) {
	out := cmd.OutOrStdout()
	s := sess.Settings
	for _, h := range sess.Plan {
		totals := planpkg.HourTotals(h)
		status := planpkg.Classify(totals.CarbsG, s.TargetCarbsPerHour)
		fmt.Fprintf(out, "Hour %d  %s  %.0f/%.0fg carbs [%s]\n",
			h.HourIndex+1,
			carbBar(totals.CarbsG, s.TargetCarbsPerHour),
			totals.CarbsG, s.TargetCarbsPerHour, status)
		fmt.Fprintf(out, "        sodium %.0f/%.0fmg %s | potassium %.0f/%.0fmg %s\n",
			totals.SodiumMg, s.TargetSodiumPerHour, metLabel(totals.SodiumMg, s.TargetSodiumPerHour),
			totals.PotassiumMg, s.TargetPotassiumPerHour, metLabel(totals.PotassiumMg, s.TargetPotassiumPerHour))
		for _, g := range planpkg.GroupItems(h) {
			label := g.Item.Name
			if g.Item.Brand != "" {
				label = g.Item.Brand + " " + label
			}
			fmt.Fprintf(out, "        - %s x%d (%s, %.0fg carbs each)\n", label, g.Count, g.Item.ID, g.Item.CarbsG)
		}
	}
	total := planpkg.PlanTotals(sess.Plan)
	fmt.Fprintf(out, "Total   %.0fg carbs | %.0fmg sodium | %.0fmg potassium | %.0fmg caffeine\n",
		total.CarbsG, total.SodiumMg, total.PotassiumMg, total.CaffeineMg)
}

// carbBar renders the progress indicator: 30 columns spanning 0-120% of
// target, with a tick at 100%.
func carbBar(total, targetCarbs float64) string {
	const width = 30
	pct := planpkg.ProgressPercent(total, targetCarbs)
	filled := int(pct / 120 * width)
	if filled > width {
		filled = width
	}
	bar := []byte(strings.Repeat("#", filled) + strings.Repeat("-", width-filled))
	tick := width * 100 / 120
	if tick < len(bar) && bar[tick] == '-' {
		bar[tick] = '|'
	}
	return "[" + string(bar) + "]"
}

func metLabel(total, targetPerHour float64) string {
	if planpkg.ElectrolyteMet(total, targetPerHour) {
		return "ok"
	}
	return "low"
}

var planAddCount int

var planAddCmd = &cobra.Command{
	Use:   "add <hour> <item-id>",
	Short: "Add a fuel item to an hour (repeat with --count)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		hour, err := parseHourArg(args[0])
		if err != nil {
			return err
		}
		if planAddCount < 1 {
			planAddCount = 1
		}
		return withSession(cmd, func(sess *session.Session) error {
			for i := 0; i < planAddCount; i++ {
				if _, err := sess.AddItem(hour, args[1]); err != nil {
					return err
				}
			}
			totals := planpkg.HourTotals(sess.Plan[hour])
			fmt.Fprintf(cmd.OutOrStdout(), "Hour %d now at %.0fg carbs (%s)\n",
				hour+1, totals.CarbsG, planpkg.Classify(totals.CarbsG, sess.Settings.TargetCarbsPerHour))
			return nil
		})
	},
}

var planRemoveCmd = &cobra.Command{
	Use:   "remove <hour> <item-id>",
	Short: "Remove one instance of an item from an hour",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		hour, err := parseHourArg(args[0])
		if err != nil {
			return err
		}
		return withSession(cmd, func(sess *session.Session) error {
			if err := sess.RemoveItem(hour, args[1]); err != nil {
				return err
			}
			totals := planpkg.HourTotals(sess.Plan[hour])
			fmt.Fprintf(cmd.OutOrStdout(), "Hour %d now at %.0fg carbs\n", hour+1, totals.CarbsG)
			return nil
		})
	},
}

var planClearConfirm bool

var planClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove every item from the plan, keeping its length",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !planClearConfirm {
			return fmt.Errorf("refusing to clear the plan without --yes")
		}
		return withSession(cmd, func(sess *session.Session) error {
			if err := sess.ClearPlan(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Cleared %d hours\n", len(sess.Plan))
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(planCmd)
	planCmd.AddCommand(planShowCmd, planAddCmd, planRemoveCmd, planClearCmd)

	planShowCmd.Flags().BoolVar(&planShowJSON, "json", false, "Emit the raw plan as JSON")
	planAddCmd.Flags().IntVar(&planAddCount, "count", 1, "How many instances to add")
	planClearCmd.Flags().BoolVar(&planClearConfirm, "yes", false, "Confirm clearing the plan")
}
