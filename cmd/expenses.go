package cmd

import (
	"fmt"

	"github.com/theirongolddev/pocketguard/internal/cli"
	"github.com/theirongolddev/pocketguard/internal/pipeline"

	"github.com/spf13/cobra"
)

var flagExpenseLimit int

var expensesCmd = &cobra.Command{
	Use:   "expenses",
	Short: "Recent expenses, most recent first",
	Args:  cobra.NoArgs,
	RunE:  runExpenses,
}

func init() {
	expensesCmd.Flags().IntVarP(&flagExpenseLimit, "limit", "n", 20, "Number of expenses to show")
	rootCmd.AddCommand(expensesCmd)
}

func runExpenses(_ *cobra.Command, _ []string) error {
	return withSession(func(sess *pipeline.Session) error {
		recent := sess.Recent(flagExpenseLimit)
		if len(recent) == 0 {
			fmt.Println("\n  No expenses recorded yet.")
			fmt.Println()
			return nil
		}

		sym := sess.Currency()
		rows := make([][]string, 0, len(recent))
		for i := len(recent) - 1; i >= 0; i-- {
			e := recent[i]
			category := cli.FormatLabel(string(e.Category))
			mood := cli.MoodEmoji(e.Mood) + " " + string(e.Mood)
			if e.IsEmergency {
				category = "🚨 Emergency"
				mood = "-"
			}
			rows = append(rows, []string{
				e.Timestamp.Local().Format("2006-01-02 15:04"),
				category,
				mood,
				cli.FormatMoney(e.Amount, sym),
			})
		}

		total := len(sess.Ledger().Expenses)
		fmt.Println()
		fmt.Println(cli.RenderTitle(fmt.Sprintf("EXPENSES  %d of %d", len(recent), total)))
		fmt.Println()
		fmt.Print(cli.RenderTable(cli.Table{
			Headers: []string{"When", "Category", "Mood", "Amount"},
			Rows:    rows,
		}))
		fmt.Println()
		return nil
	})
}
