package tui

import (
	"fmt"

	"github.com/theirongolddev/pocketguard/internal/cli"
	"github.com/theirongolddev/pocketguard/internal/model"
	"github.com/theirongolddev/pocketguard/internal/tui/components"
	"github.com/theirongolddev/pocketguard/internal/tui/theme"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

const (
	colWhen     = 12
	colCategory = 14
	colMood     = 12
	minAmount   = 8
)

func newExpenseTable() table.Model {
	tbl := table.New(
		table.WithColumns(expenseColumns(minAmount)),
		table.WithFocused(true),
		table.WithHeight(10),
	)
	tbl.SetStyles(tableStyles())
	return tbl
}

func expenseColumns(amountW int) []table.Column {
	return []table.Column{
		{Title: "When", Width: colWhen},
		{Title: "Category", Width: colCategory},
		{Title: "Mood", Width: colMood},
		{Title: "Amount", Width: amountW},
	}
}

func tableStyles() table.Styles {
	t := theme.Active
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(t.Border).
		BorderBottom(true).
		Foreground(t.Accent).
		Bold(true)
	s.Cell = s.Cell.Foreground(t.TextPrimary)
	s.Selected = s.Selected.
		Foreground(t.AccentBright).
		Background(t.SurfaceHover).
		Bold(true)
	return s
}

// expenseRows renders the ledger newest first.
func expenseRows(expenses []model.ExpenseRecord, symbol string) []table.Row {
	rows := make([]table.Row, 0, len(expenses))
	for i := len(expenses) - 1; i >= 0; i-- {
		e := expenses[i]
		category := cli.FormatLabel(string(e.Category))
		mood := cli.MoodEmoji(e.Mood) + " " + string(e.Mood)
		if e.IsEmergency {
			category = "🚨 Emergency"
			mood = "-"
		}
		rows = append(rows, table.Row{
			e.Timestamp.Local().Format("Jan 02 15:04"),
			category,
			mood,
			cli.FormatMoney(e.Amount, symbol),
		})
	}
	return rows
}

// expensesLayout splits the content width between the table card and the chart card.
func expensesLayout(cw int) (tableOuter, chartOuter int) {
	tableOuter = cw * 3 / 5
	return tableOuter, cw - tableOuter
}

func (a *App) resizeTable() {
	tableOuter, _ := expensesLayout(a.contentWidth())

	// Each cell carries one column of padding on both sides.
	inner := components.CardInnerWidth(tableOuter)
	amountW := max(inner-colWhen-colCategory-colMood-8, minAmount)
	a.expTable.SetColumns(expenseColumns(amountW))
	a.expTable.SetWidth(inner)

	// tab bar, info row, status bar, card border and title
	a.expTable.SetHeight(max(a.height-3-3, minContentHeight))
}

func (a App) renderExpensesTab(cw int) string {
	t := theme.Active
	symbol := a.sess.Currency()
	tableOuter, chartOuter := expensesLayout(cw)

	var body string
	if len(a.ledger.Expenses) == 0 {
		body = lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface).
			Render("Nothing recorded yet. Press a to add an expense.")
	} else {
		body = a.expTable.View()
	}

	title := fmt.Sprintf("Expenses (%d)", len(a.ledger.Expenses))
	chartTitle := fmt.Sprintf("Last %d days vs %s limit", len(a.days), cli.FormatMoney(a.alloc.DailyLimit, symbol))

	return components.CardRow([]string{
		components.ContentCard(title, body, tableOuter),
		components.ContentCard(chartTitle,
			components.DayBars(a.days, a.alloc.DailyLimit, symbol, components.CardInnerWidth(chartOuter)),
			chartOuter),
	})
}
