package fuelplan

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/jeffreyruoss/run-fuel-calculator/internal/catalog"
	"github.com/jeffreyruoss/run-fuel-calculator/internal/model"
	"github.com/jeffreyruoss/run-fuel-calculator/internal/session"
)

var (
	catalogQuery      string
	catalogShowHidden bool
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Browse the fuel library",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd, func(sess *session.Session) error {
			var items []model.FuelItem
			if catalogShowHidden {
				items = append(catalog.BuiltIns(), sess.Settings.CustomFuels...)
			} else {
				items = catalog.Effective(sess.Settings)
			}
			items = catalog.Filter(items, catalogQuery)

			hidden := make(map[string]bool, len(sess.Settings.HiddenFuelIDs))
			for _, id := range sess.Settings.HiddenFuelIDs {
				hidden[id] = true
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tBRAND\tTYPE\tCARBS\tSODIUM\tPOTASSIUM\tCAFFEINE\tFLAGS")
			for _, item := range items {
				flags := ""
				if item.Custom {
					flags += "custom"
				}
				if hidden[item.ID] {
					if flags != "" {
						flags += ","
					}
					flags += "hidden"
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%.0fg\t%.0fmg\t%.0fmg\t%.0fmg\t%s\n",
					item.ID, item.Name, item.Brand, item.Type,
					item.CarbsG, item.SodiumMg, item.PotassiumMg, item.CaffeineMg, flags)
			}
			if err := w.Flush(); err != nil {
				return err
			}
			if len(items) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No matching fuels. Try `fuelplan lookup` to search with AI.")
			}
			return nil
		})
	},
}

var catalogHideCmd = &cobra.Command{
	Use:   "hide <id>",
	Short: "Hide a fuel from the picker",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd, func(sess *session.Session) error {
			if err := sess.HideFuel(args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Hid %s\n", args[0])
			return nil
		})
	},
}

var catalogUnhideCmd = &cobra.Command{
	Use:   "unhide <id>",
	Short: "Restore a hidden fuel",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd, func(sess *session.Session) error {
			if err := sess.UnhideFuel(args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Unhid %s\n", args[0])
			return nil
		})
	},
}

var catalogDeleteCustomCmd = &cobra.Command{
	Use:   "delete-custom <id>",
	Short: "Permanently delete a custom fuel",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd, func(sess *session.Session) error {
			if err := sess.DeleteCustomFuel(args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted custom fuel %s\n", args[0])
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(catalogCmd)
	catalogCmd.AddCommand(catalogHideCmd, catalogUnhideCmd, catalogDeleteCustomCmd)

	catalogCmd.Flags().StringVar(&catalogQuery, "query", "", "Filter by name or brand (case-insensitive substring)")
	catalogCmd.Flags().BoolVar(&catalogShowHidden, "all", false, "Include hidden fuels")
}
