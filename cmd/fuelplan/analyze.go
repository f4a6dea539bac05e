package fuelplan

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/jeffreyruoss/run-fuel-calculator/internal/provider/gemini"
	"github.com/jeffreyruoss/run-fuel-calculator/internal/session"
)

var analyzeOffline bool

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Chart the plan against targets and get an AI critique",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd, func(sess *session.Session) error {
			printPlan(cmd, sess)

			if analyzeOffline {
				return nil
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out)
			fmt.Fprintln(out, "AI Coach Insights")

			client, err := geminiClient()
			if err != nil {
				fmt.Fprintln(out, gemini.FallbackAnalysis)
				fmt.Fprintf(cmd.ErrOrStderr(), "%v\n", err)
				return nil
			}
			ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
			defer cancel()

			analysis, err := client.AnalyzePlan(ctx, sess.Plan, sess.Settings)
			if err != nil {
				fmt.Fprintln(out, gemini.FallbackAnalysis)
				fmt.Fprintf(cmd.ErrOrStderr(), "analysis failed: %v\n", err)
				return nil
			}
			fmt.Fprintln(out, analysis)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
	analyzeCmd.Flags().BoolVar(&analyzeOffline, "offline", false, "Skip the AI critique and only print the chart")
}
