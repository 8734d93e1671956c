package cmd

import (
	"fmt"

	"github.com/theirongolddev/pocketguard/internal/cli"
	"github.com/theirongolddev/pocketguard/internal/pipeline"

	"github.com/spf13/cobra"
)

var newdayCmd = &cobra.Command{
	Use:   "newday",
	Short: "Start a new day: reset today's spending",
	Long: "Send the day boundary signal by hand. Today's spending goes back to zero;\n" +
		"total spending and the reward streak are kept. The daemon and the TUI do this on a timer.",
	Args: cobra.NoArgs,
	RunE: runNewDay,
}

func init() {
	rootCmd.AddCommand(newdayCmd)
}

func runNewDay(_ *cobra.Command, _ []string) error {
	return withSession(func(sess *pipeline.Session) error {
		yesterday := sess.Ledger().TodaySpending
		if err := sess.OnDayBoundary(); err != nil {
			return err
		}
		fmt.Printf("\n  New day started. Yesterday's spending: %s\n\n", cli.FormatMoney(yesterday, sess.Currency()))
		return nil
	})
}
