package fuelplan

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/jeffreyruoss/run-fuel-calculator/internal/provider/openmeteo"
	"github.com/jeffreyruoss/run-fuel-calculator/internal/session"
	"github.com/jeffreyruoss/run-fuel-calculator/internal/target"
)

var (
	recommendFetchWeather bool
	recommendLat          float64
	recommendLon          float64
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Derive carb/sodium/potassium targets from mode, sweat profile, and weather",
	Long: "recommend runs the target heuristic over your activity mode, sweat profile, and\n" +
		"weather snapshot and writes the resulting per-hour targets into settings.\n" +
		"With --fetch-weather the snapshot is refreshed from Open-Meteo first; a failed\n" +
		"fetch keeps the previous weather values and the heuristic still runs.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd, func(sess *session.Session) error {
			if recommendFetchWeather {
				if err := refreshWeather(cmd, sess); err != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "weather lookup failed: %v\n", err)
					fmt.Fprintf(cmd.ErrOrStderr(), "using stored weather (%.0f°F, %.0f%% humidity)\n",
						sess.Settings.Weather.TemperatureF, sess.Settings.Weather.HumidityPct)
				}
			}
			t, err := sess.ApplyRecommendation()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), target.Summary(
				sess.Settings.ActivityMode, sess.Settings.SweatProfile, sess.Settings.Weather, t))
			return nil
		})
	},
}

func refreshWeather(cmd *cobra.Command, sess *session.Session) error {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	client := &openmeteo.Client{}
	lat, lon := recommendLat, recommendLon
	if !cmd.Flags().Changed("lat") || !cmd.Flags().Changed("lon") {
		var err error
		lat, lon, err = client.Locate(ctx)
		if err != nil {
			return err
		}
	}
	w, err := client.Current(ctx, lat, lon)
	if err != nil {
		return err
	}
	if err := sess.SetWeather(w); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Weather updated: %.0f°F, %.0f%% humidity\n", w.TemperatureF, w.HumidityPct)
	return nil
}

var suggestCmd = &cobra.Command{
	Use:   "suggest",
	Short: "Ask the AI coach for an hourly carb target for your goal time",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd, func(sess *session.Session) error {
			client, err := geminiClient()
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			suggestion, err := client.SuggestCarbTarget(ctx, sess.Settings.TargetTimeHours, sess.Settings.TargetTimeMinutes)
			if err != nil {
				suggestion.TargetCarbs = 60
				suggestion.Reason = "Standard recommendation for most runners."
				fmt.Fprintf(cmd.ErrOrStderr(), "AI suggestion unavailable (%v); using the default.\n", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Suggested carb target: %.0f g/hr\n", suggestion.TargetCarbs)
			fmt.Fprintf(cmd.OutOrStdout(), "Why: %s\n", suggestion.Reason)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(recommendCmd, suggestCmd)

	recommendCmd.Flags().BoolVar(&recommendFetchWeather, "fetch-weather", false, "Refresh the weather snapshot from Open-Meteo before recommending")
	recommendCmd.Flags().Float64Var(&recommendLat, "lat", 0, "Latitude for the weather lookup (default: IP geolocation)")
	recommendCmd.Flags().Float64Var(&recommendLon, "lon", 0, "Longitude for the weather lookup (default: IP geolocation)")
}
