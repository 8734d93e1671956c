package cmd

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/theirongolddev/pocketguard/internal/cli"
	"github.com/theirongolddev/pocketguard/internal/model"
	"github.com/theirongolddev/pocketguard/internal/pipeline"

	"github.com/spf13/cobra"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Report card: totals, savings, categories and moods",
	Args:  cobra.NoArgs,
	RunE:  runReport,
}

func init() {
	rootCmd.AddCommand(reportCmd)
}

func runReport(_ *cobra.Command, _ []string) error {
	return withSession(func(sess *pipeline.Session) error {
		printReport(sess)
		return nil
	})
}

func printReport(sess *pipeline.Session) {
	sym := sess.Currency()
	r := sess.Report()

	fmt.Println()
	fmt.Println(cli.RenderTitle("REPORT CARD"))
	fmt.Println()

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Metric", "Value"},
		Rows: [][]string{
			{"Total spending", cli.FormatMoney(r.TotalSpending, sym)},
			{"Total savings", cli.FormatMoney(r.TotalSavings, sym)},
			{"Remaining budget", cli.FormatMoney(r.RemainingBudget, sym)},
			{"Overspending days", cli.FormatNumber(int64(r.OverspendingDays))},
			{"Reward points", cli.FormatNumber(int64(r.RewardPoints))},
		},
	}))
	fmt.Println()

	if len(r.CategoryTotals) > 0 {
		categories := make([]model.Category, 0, len(r.CategoryTotals))
		for c := range r.CategoryTotals {
			categories = append(categories, c)
		}
		slices.SortFunc(categories, func(a, b model.Category) int {
			if c := cmp.Compare(r.CategoryTotals[b], r.CategoryTotals[a]); c != 0 {
				return c
			}
			return cmp.Compare(a, b)
		})

		rows := make([][]string, 0, len(categories))
		for _, c := range categories {
			rows = append(rows, []string{
				cli.FormatLabel(string(c)),
				cli.FormatMoney(r.CategoryTotals[c], sym),
				cli.FormatShare(r.CategoryTotals[c], r.TotalSpending),
			})
		}
		fmt.Print(cli.RenderTable(cli.Table{
			Title:   "By category",
			Headers: []string{"Category", "Spent", "Share"},
			Rows:    rows,
		}))
		fmt.Println()
	}

	moods := pipeline.AggregateMoods(sess.Ledger().Expenses)
	if len(moods) > 0 {
		var moodTotal model.Money
		for _, m := range moods {
			moodTotal += m.Spent
		}
		rows := make([][]string, 0, len(moods))
		for _, m := range moods {
			rows = append(rows, []string{
				cli.MoodEmoji(m.Mood) + " " + string(m.Mood),
				cli.FormatNumber(int64(m.Count)),
				cli.FormatMoney(m.Spent, sym),
				cli.FormatShare(m.Spent, moodTotal),
			})
		}
		fmt.Print(cli.RenderTable(cli.Table{
			Title:   "By mood",
			Headers: []string{"Mood", "Count", "Spent", "Share"},
			Rows:    rows,
		}))
		fmt.Println()
	}

	fmt.Printf("  Performance: %s\n\n", cli.RenderVerdict(r.OnTrack()))
}
