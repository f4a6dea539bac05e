package fuelplan

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jeffreyruoss/run-fuel-calculator/internal/app"
	"github.com/jeffreyruoss/run-fuel-calculator/internal/db"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the local fuelplan database",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := resolveDBPath()
		if err != nil {
			return err
		}
		if err := app.EnsureDBDir(path); err != nil {
			return err
		}

		sqldb, err := db.Open(path)
		if err != nil {
			return err
		}
		defer sqldb.Close()

		if err := db.ApplyMigrations(sqldb); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Initialized fuelplan database at %s\n", path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}

func resolveDBPath() (string, error) {
	if dbPath != "" {
		return dbPath, nil
	}
	if env := strings.TrimSpace(os.Getenv("FUELPLAN_DB")); env != "" {
		return env, nil
	}
	return app.DefaultDBPath()
}
