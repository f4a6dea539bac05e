package fuelplan

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var dbPath string

var rootCmd = &cobra.Command{
	Use:   "fuelplan",
	Short: "fuelplan builds hour-by-hour endurance fueling plans from your terminal",
	Long: "fuelplan is a local-first race nutrition planner: set carb/sodium/potassium targets,\n" +
		"fill each hour of your race from a fuel catalog, and get a chart and AI critique of the plan.",
}

func Execute() {
	// Optional .env carries GEMINI_API_KEY; absence is fine.
	_ = godotenv.Load()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Path to SQLite database")
}
