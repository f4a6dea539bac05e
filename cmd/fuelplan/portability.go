package fuelplan

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jeffreyruoss/run-fuel-calculator/internal/model"
	"github.com/jeffreyruoss/run-fuel-calculator/internal/session"
)

type exportDocument struct {
	Settings model.UserSettings `json:"settings"`
	Plan     model.Plan         `json:"plan"`
}

var exportOut string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export settings and plan as a single JSON document",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd, func(sess *session.Session) error {
			doc := exportDocument{Settings: sess.Settings, Plan: sess.Plan}
			payload, err := json.MarshalIndent(doc, "", "  ")
			if err != nil {
				return fmt.Errorf("marshal export document: %w", err)
			}
			payload = append(payload, '\n')
			if exportOut == "" {
				_, err = cmd.OutOrStdout().Write(payload)
				return err
			}
			if err := os.WriteFile(exportOut, payload, 0o644); err != nil {
				return fmt.Errorf("write export file: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported to %s\n", exportOut)
			return nil
		})
	},
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Replace settings and plan from an exported JSON document",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read import file: %w", err)
		}
		var doc exportDocument
		if err := json.Unmarshal(raw, &doc); err != nil {
			return fmt.Errorf("decode import file: %w", err)
		}
		return withSession(cmd, func(sess *session.Session) error {
			if err := sess.Replace(doc.Settings, doc.Plan); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d-hour plan and settings\n", len(sess.Plan))
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(exportCmd, importCmd)
	exportCmd.Flags().StringVar(&exportOut, "out", "", "Write to a file instead of stdout")
}
