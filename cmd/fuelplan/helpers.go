package fuelplan

import (
	"database/sql"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jeffreyruoss/run-fuel-calculator/internal/app"
	"github.com/jeffreyruoss/run-fuel-calculator/internal/db"
	"github.com/jeffreyruoss/run-fuel-calculator/internal/provider/gemini"
	"github.com/jeffreyruoss/run-fuel-calculator/internal/session"
)

func withDB(run func(*sql.DB) error) error {
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
	return run(sqldb)
}

func withSession(cmd *cobra.Command, run func(*session.Session) error) error {
	return withDB(func(sqldb *sql.DB) error {
		sess, err := session.Load(sqldb)
		if err != nil {
			return err
		}
		if err := run(sess); err != nil {
			return err
		}
		if saveErr := sess.SaveError(); saveErr != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "warning: changes kept in memory but not saved: %v\n", saveErr)
		}
		return nil
	})
}

// parseHourArg converts the user-facing 1-based hour number to the
// plan's 0-based index.
func parseHourArg(value string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || v < 1 {
		return 0, fmt.Errorf("invalid hour %q (expected a number starting at 1)", value)
	}
	return v - 1, nil
}

func geminiClient() (*gemini.Client, error) {
	key := strings.TrimSpace(os.Getenv("GEMINI_API_KEY"))
	if key == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY is not set; add it to your environment or a .env file")
	}
	return &gemini.Client{APIKey: key}, nil
}
