package fuelplan

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/jeffreyruoss/run-fuel-calculator/internal/session"
)

var lookupHour int

var lookupCmd = &cobra.Command{
	Use:   "lookup <food description>",
	Short: "Look up a food with the AI coach, optionally adding it to an hour",
	Long: "lookup asks the AI service for the nutrition of one serving of the described\n" +
		"food. With --hour it is added to that hour and saved to your custom fuel list\n" +
		"(unless a custom item with the same name already exists).",
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		query := strings.Join(args, " ")
		client, err := geminiClient()
		if err != nil {
			return err
		}
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		item, err := client.LookupFood(ctx, query)
		if err != nil {
			return fmt.Errorf("no AI result for %q: %w", query, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Found: %s (%s): %.0fg carbs, %.0fmg sodium, %.0fmg potassium\n",
			item.Name, item.Type, item.CarbsG, item.SodiumMg, item.PotassiumMg)

		if !cmd.Flags().Changed("hour") {
			fmt.Fprintln(cmd.OutOrStdout(), "Re-run with --hour N to add it to your plan.")
			return nil
		}
		hour, err := parseHourArg(fmt.Sprint(lookupHour))
		if err != nil {
			return err
		}
		return withSession(cmd, func(sess *session.Session) error {
			customsBefore := len(sess.Settings.CustomFuels)
			if err := sess.AddLookupItem(hour, item); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added to hour %d.\n", hour+1)
			if len(sess.Settings.CustomFuels) > customsBefore {
				fmt.Fprintln(cmd.OutOrStdout(), "Saved to your custom fuel list.")
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(lookupCmd)
	lookupCmd.Flags().IntVar(&lookupHour, "hour", 0, "Hour (1-based) to add the result to")
}
