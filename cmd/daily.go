package cmd

import (
	"fmt"
	"time"

	"github.com/theirongolddev/pocketguard/internal/cli"
	"github.com/theirongolddev/pocketguard/internal/pipeline"

	"github.com/spf13/cobra"
)

var flagDailyDays int

var dailyCmd = &cobra.Command{
	Use:   "daily",
	Short: "Spending per calendar day against the daily limit",
	Args:  cobra.NoArgs,
	RunE:  runDaily,
}

func init() {
	dailyCmd.Flags().IntVarP(&flagDailyDays, "days", "d", 14, "Number of days to show")
	rootCmd.AddCommand(dailyCmd)
}

func runDaily(_ *cobra.Command, _ []string) error {
	if flagDailyDays < 1 {
		return fmt.Errorf("--days must be at least 1, got %d", flagDailyDays)
	}

	return withSession(func(sess *pipeline.Session) error {
		sym := sess.Currency()
		limit := sess.Allocation().DailyLimit

		since, until := pipeline.LastDays(time.Now(), flagDailyDays)
		days := pipeline.AggregateDays(sess.Ledger().Expenses, since, until)

		fmt.Println()
		fmt.Println(cli.RenderTitle(fmt.Sprintf("DAILY SPENDING  Last %dd", flagDailyDays)))
		fmt.Println()

		rows := make([][]string, 0, len(days))
		values := make([]float64, len(days))
		for i, d := range days {
			values[len(days)-1-i] = float64(d.Spent)

			status := ""
			switch {
			case d.Count == 0:
			case d.Spent > limit:
				status = "over"
			default:
				status = "ok"
			}
			rows = append(rows, []string{
				d.Date.Format("2006-01-02"),
				cli.FormatDayOfWeek(int(d.Date.Weekday())),
				cli.FormatNumber(int64(d.Count)),
				cli.FormatMoney(d.Spent, sym),
				cli.FormatMoney(d.Emergency, sym),
				status,
			})
		}

		fmt.Print(cli.RenderTable(cli.Table{
			Headers: []string{"Date", "Day", "Expenses", "Spent", "Emergency", "Limit"},
			Rows:    rows,
		}))
		fmt.Println()
		fmt.Printf("  Trend  %s  (limit %s)\n\n", cli.RenderSparkline(values), cli.FormatMoney(limit, sym))
		return nil
	})
}
