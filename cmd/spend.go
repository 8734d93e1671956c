package cmd

import (
	"fmt"

	"github.com/theirongolddev/pocketguard/internal/cli"
	"github.com/theirongolddev/pocketguard/internal/engine"
	"github.com/theirongolddev/pocketguard/internal/model"
	"github.com/theirongolddev/pocketguard/internal/pipeline"

	"github.com/spf13/cobra"
)

var (
	flagCategory string
	flagMood     string
)

var spendCmd = &cobra.Command{
	Use:   "spend <amount>",
	Short: "Record an expense",
	Long: "Record an expense and print any alerts it raises.\n\n" +
		"Categories: food, entertainment, transport, study, medicine, personal, other\n" +
		"Moods: neutral, happy, stressed, sad",
	Args: cobra.ExactArgs(1),
	RunE: runSpend,
}

var emergencyCmd = &cobra.Command{
	Use:   "emergency <amount>",
	Short: "Record an emergency expense",
	Long:  "Record an emergency expense. It counts toward total spending but not toward today's limit.",
	Args:  cobra.ExactArgs(1),
	RunE:  runEmergency,
}

func init() {
	spendCmd.Flags().StringVarP(&flagCategory, "category", "c", string(model.CategoryOther), "Expense category")
	spendCmd.Flags().StringVarP(&flagMood, "mood", "m", string(model.MoodNeutral), "Mood at the time of purchase")

	rootCmd.AddCommand(spendCmd)
	rootCmd.AddCommand(emergencyCmd)
}

func runSpend(_ *cobra.Command, args []string) error {
	amount, err := model.ParseAmount(args[0])
	if err != nil {
		return err
	}
	category, err := model.ParseCategory(flagCategory)
	if err != nil {
		return err
	}
	mood, err := model.ParseMood(flagMood)
	if err != nil {
		return err
	}

	return withSession(func(sess *pipeline.Session) error {
		res, err := sess.RecordExpense(engine.ExpenseInput{Amount: amount, Category: category, Mood: mood})
		if err != nil {
			return err
		}

		sym := sess.Currency()
		fmt.Println()
		fmt.Printf("  Recorded %s on %s %s\n",
			cli.FormatMoney(res.Record.Amount, sym),
			res.Record.Category,
			cli.MoodEmoji(res.Record.Mood))
		fmt.Printf("  Today %s\n", cli.RenderSpendBar(res.Ledger.TodaySpending, sess.Allocation().DailyLimit, sym, 30))
		printAlerts(res.Alerts)
		fmt.Println()
		return nil
	})
}

func runEmergency(_ *cobra.Command, args []string) error {
	amount, err := model.ParseAmount(args[0])
	if err != nil {
		return err
	}

	return withSession(func(sess *pipeline.Session) error {
		res, err := sess.RecordEmergencyExpense(engine.EmergencyInput{Amount: amount})
		if err != nil {
			return err
		}

		fmt.Println()
		fmt.Printf("  Total spent %s\n", cli.FormatMoney(res.Ledger.TotalSpending, sess.Currency()))
		printAlerts(res.Alerts)
		fmt.Println()
		return nil
	})
}
