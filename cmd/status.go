package cmd

import (
	"fmt"

	"github.com/theirongolddev/pocketguard/internal/cli"
	"github.com/theirongolddev/pocketguard/internal/pipeline"

	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show budget allocation, today's spending and rewards",
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(_ *cobra.Command, _ []string) error {
	return withSession(func(sess *pipeline.Session) error {
		printStatus(sess)
		return nil
	})
}

func printStatus(sess *pipeline.Session) {
	sym := sess.Currency()
	alloc := sess.Allocation()
	ledger := sess.Ledger()
	reward := sess.Reward()
	remaining := sess.RemainingBudget()

	fmt.Println()
	fmt.Println(cli.RenderTitle("POCKETGUARD"))
	fmt.Println()

	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Budget",
		Headers: []string{"Bucket", "Amount"},
		Rows: [][]string{
			{"Monthly budget", cli.FormatMoney(alloc.MonthlyBudget, sym)},
			{"Savings (10%)", cli.FormatMoney(alloc.Savings, sym)},
			{"Usable", cli.FormatMoney(alloc.Usable, sym)},
			{"Daily limit", cli.FormatMoney(alloc.DailyLimit, sym)},
		},
	}))
	fmt.Println()

	fmt.Printf("  Today      %s\n", cli.RenderSpendBar(ledger.TodaySpending, alloc.DailyLimit, sym, 30))
	fmt.Printf("  Spent      %s across %s expenses\n",
		cli.FormatMoney(ledger.TotalSpending, sym), cli.FormatNumber(int64(len(ledger.Expenses))))

	remainingStr := cli.FormatMoney(remaining, sym)
	if remaining <= 0 {
		fmt.Printf("  Remaining  %s\n", cli.RenderVerdict(false)+" "+remainingStr)
	} else {
		fmt.Printf("  Remaining  %s\n", remainingStr)
	}
	fmt.Printf("  Streak     %d in-budget checks, %d points\n", reward.ConsecutiveInBudgetDays, reward.Points)

	if n := len(sess.Alerts()); n > 0 {
		fmt.Println()
		fmt.Println(cli.RenderMuted(fmt.Sprintf("  %d active alerts. Run `pocketguard alerts` to read them.", n)))
	}
	fmt.Println()
}
