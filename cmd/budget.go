package cmd

import (
	"fmt"

	"github.com/theirongolddev/pocketguard/internal/cli"
	"github.com/theirongolddev/pocketguard/internal/model"
	"github.com/theirongolddev/pocketguard/internal/pipeline"

	"github.com/spf13/cobra"
)

var budgetCmd = &cobra.Command{
	Use:   "budget <amount>",
	Short: "Set the monthly budget",
	Long:  "Set the monthly budget. 10% is kept as savings and the rest is split into a daily limit over 30 days.",
	Args:  cobra.ExactArgs(1),
	RunE:  runBudget,
}

func init() {
	rootCmd.AddCommand(budgetCmd)
}

func runBudget(_ *cobra.Command, args []string) error {
	amount, err := model.ParseAmount(args[0])
	if err != nil {
		return err
	}

	return withSession(func(sess *pipeline.Session) error {
		alloc, err := sess.SetMonthlyBudget(amount)
		if err != nil {
			return err
		}

		sym := sess.Currency()
		fmt.Println()
		fmt.Printf("  Monthly budget set to %s\n\n", cli.FormatMoney(alloc.MonthlyBudget, sym))
		fmt.Print(cli.RenderTable(cli.Table{
			Headers: []string{"Bucket", "Amount"},
			Rows: [][]string{
				{"Savings (10%)", cli.FormatMoney(alloc.Savings, sym)},
				{"Usable", cli.FormatMoney(alloc.Usable, sym)},
				{"Daily limit", cli.FormatMoney(alloc.DailyLimit, sym)},
			},
		}))
		fmt.Println()
		return nil
	})
}
