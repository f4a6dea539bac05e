package fuelplan

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jeffreyruoss/run-fuel-calculator/internal/model"
	"github.com/jeffreyruoss/run-fuel-calculator/internal/session"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show and change race goals and physiological profile",
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd, func(sess *session.Session) error {
			s := sess.Settings
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Goal time:        %dh %02dm (%d hour plan)\n", s.TargetTimeHours, s.TargetTimeMinutes, s.TotalHours())
			fmt.Fprintf(out, "Carbs target:     %.0f g/hr\n", s.TargetCarbsPerHour)
			fmt.Fprintf(out, "Sodium target:    %.0f mg/hr\n", s.TargetSodiumPerHour)
			fmt.Fprintf(out, "Potassium target: %.0f mg/hr\n", s.TargetPotassiumPerHour)
			fmt.Fprintf(out, "Activity mode:    %s\n", s.ActivityMode)
			fmt.Fprintf(out, "Sweat profile:    %s\n", s.SweatProfile)
			fmt.Fprintf(out, "Weather:          %.0f°F, %.0f%% humidity\n", s.Weather.TemperatureF, s.Weather.HumidityPct)
			fmt.Fprintf(out, "Hidden fuels:     %d\n", len(s.HiddenFuelIDs))
			fmt.Fprintf(out, "Custom fuels:     %d\n", len(s.CustomFuels))
			return nil
		})
	},
}

var (
	setHours     int
	setMinutes   int
	setCarbs     float64
	setSodium    float64
	setPotassium float64
	setMode      string
	setSweat     string
	setTemp      float64
	setHumidity  float64
)

var settingsSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Update settings (out-of-range numbers are clamped, not rejected)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd, func(sess *session.Session) error {
			updates := 0
			if cmd.Flags().Changed("hours") || cmd.Flags().Changed("minutes") {
				hours := sess.Settings.TargetTimeHours
				minutes := sess.Settings.TargetTimeMinutes
				if cmd.Flags().Changed("hours") {
					hours = setHours
				}
				if cmd.Flags().Changed("minutes") {
					minutes = setMinutes
				}
				dropped := len(sess.Plan)
				if err := sess.SetDuration(hours, minutes); err != nil {
					return err
				}
				if len(sess.Plan) < dropped {
					fmt.Fprintf(cmd.OutOrStdout(), "Plan shortened to %d hours; items in dropped hours are gone.\n", len(sess.Plan))
				}
				updates++
			}
			if cmd.Flags().Changed("carbs") || cmd.Flags().Changed("sodium") || cmd.Flags().Changed("potassium") {
				carbs := sess.Settings.TargetCarbsPerHour
				sodium := sess.Settings.TargetSodiumPerHour
				potassium := sess.Settings.TargetPotassiumPerHour
				if cmd.Flags().Changed("carbs") {
					carbs = setCarbs
				}
				if cmd.Flags().Changed("sodium") {
					sodium = setSodium
				}
				if cmd.Flags().Changed("potassium") {
					potassium = setPotassium
				}
				if err := sess.SetTargets(carbs, sodium, potassium); err != nil {
					return err
				}
				updates++
			}
			if cmd.Flags().Changed("mode") {
				if err := sess.SetActivityMode(model.ActivityMode(setMode)); err != nil {
					return err
				}
				updates++
			}
			if cmd.Flags().Changed("sweat") {
				if err := sess.SetSweatProfile(model.SweatProfile(setSweat)); err != nil {
					return err
				}
				updates++
			}
			if cmd.Flags().Changed("temp") || cmd.Flags().Changed("humidity") {
				w := sess.Settings.Weather
				if cmd.Flags().Changed("temp") {
					w.TemperatureF = setTemp
				}
				if cmd.Flags().Changed("humidity") {
					w.HumidityPct = setHumidity
				}
				if err := sess.SetWeather(w); err != nil {
					return err
				}
				updates++
			}
			if updates == 0 {
				return fmt.Errorf("set at least one flag")
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated %d setting group(s)\n", updates)
			return nil
		})
	},
}

var resetConfirm bool

var settingsResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Factory reset: delete all settings, custom foods, and the plan",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !resetConfirm {
			return fmt.Errorf("refusing to reset without --yes")
		}
		return withSession(cmd, func(sess *session.Session) error {
			if err := sess.FactoryReset(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "All data cleared; settings restored to defaults.")
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(settingsCmd)
	settingsCmd.AddCommand(settingsShowCmd, settingsSetCmd, settingsResetCmd)

	settingsSetCmd.Flags().IntVar(&setHours, "hours", 0, "Goal time hours (min 1)")
	settingsSetCmd.Flags().IntVar(&setMinutes, "minutes", 0, "Goal time minutes (0-59)")
	settingsSetCmd.Flags().Float64Var(&setCarbs, "carbs", 0, "Carb target g/hr (30-120)")
	settingsSetCmd.Flags().Float64Var(&setSodium, "sodium", 0, "Sodium target mg/hr (0-1500)")
	settingsSetCmd.Flags().Float64Var(&setPotassium, "potassium", 0, "Potassium target mg/hr (0-500)")
	settingsSetCmd.Flags().StringVar(&setMode, "mode", "", "Activity mode: race or zone2-training")
	settingsSetCmd.Flags().StringVar(&setSweat, "sweat", "", "Sweat profile: low, average, or high")
	settingsSetCmd.Flags().Float64Var(&setTemp, "temp", 0, "Current temperature °F")
	settingsSetCmd.Flags().Float64Var(&setHumidity, "humidity", 0, "Current relative humidity %")

	settingsResetCmd.Flags().BoolVar(&resetConfirm, "yes", false, "Confirm the factory reset")
}
