package tui

import (
	"fmt"
	"slices"
	"strings"

	"github.com/theirongolddev/pocketguard/internal/cli"
	"github.com/theirongolddev/pocketguard/internal/model"
	"github.com/theirongolddev/pocketguard/internal/tui/components"
	"github.com/theirongolddev/pocketguard/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

const recentOnDashboard = 5

func (a App) renderDashboardTab(cw, contentH int) string {
	t := theme.Active
	symbol := a.sess.Currency()
	money := func(m model.Money) string { return cli.FormatMoney(m, symbol) }

	limit := a.alloc.DailyLimit
	today := a.ledger.TodaySpending

	todayTone := components.ToneGood
	switch ratio := components.SpendRatio(today, limit); {
	case ratio > 1:
		todayTone = components.ToneBad
	case ratio >= 0.8:
		todayTone = components.ToneWarn
	}
	remainingTone := components.ToneGood
	if a.remaining <= 0 {
		remainingTone = components.ToneBad
	}

	var b strings.Builder

	// Row 1: where the money goes
	b.WriteString(components.MetricCardRow([]components.Metric{
		{Label: "Monthly budget", Value: money(a.alloc.MonthlyBudget)},
		{Label: "Savings (10%)", Value: money(a.alloc.Savings), Tone: components.ToneGood},
		{Label: "Usable", Value: money(a.alloc.Usable)},
		{Label: "Daily limit", Value: money(limit)},
	}, cw))
	b.WriteString("\n")

	// Row 2: how it is going
	b.WriteString(components.MetricCardRow([]components.Metric{
		{Label: "Today", Value: money(today), Delta: "of " + money(limit), Tone: todayTone},
		{Label: "Total spent", Value: money(a.ledger.TotalSpending)},
		{Label: "Remaining", Value: money(a.remaining), Tone: remainingTone},
		{Label: "In-budget streak", Value: fmt.Sprintf("%d", a.reward.ConsecutiveInBudgetDays),
			Delta: fmt.Sprintf("%d points", a.reward.Points), Tone: components.ToneGood},
	}, cw))
	b.WriteString("\n")

	used := lipgloss.Height(b.String())
	widths := components.LayoutRow(cw, 2)

	// Row 3: today's gauge and trend | alerts
	var gauge strings.Builder
	gauge.WriteString(components.SpendGauge(today, limit, symbol, components.CardInnerWidth(widths[0])))
	if len(a.days) > 0 {
		values := make([]float64, len(a.days))
		for i, d := range a.days {
			values[len(a.days)-1-i] = float64(d.Spent)
		}
		gauge.WriteString("\n\n")
		gauge.WriteString(lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface).
			Render(fmt.Sprintf("Last %d days ", len(values))))
		gauge.WriteString(components.Sparkline(values, t.Accent))
	}

	alertLines := max(contentH-used-recentOnDashboard-6, 3)
	title := "Alerts"
	if n := len(a.alerts); n > 0 {
		title = fmt.Sprintf("Alerts (%d)", n)
	}

	b.WriteString(components.CardRow([]string{
		components.ContentCard("Today", gauge.String(), widths[0]),
		components.ContentCard(title,
			components.AlertList(a.alerts, components.CardInnerWidth(widths[1]), alertLines), widths[1]),
	}))
	b.WriteString("\n")

	// Row 4: recent expenses
	b.WriteString(components.ContentCard("Recent expenses",
		recentList(a.ledger.Expenses, symbol, recentOnDashboard, components.CardInnerWidth(cw)), cw))

	return b.String()
}

// recentList renders the newest n expenses, one per line.
func recentList(expenses []model.ExpenseRecord, symbol string, n, width int) string {
	t := theme.Active
	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)

	if len(expenses) == 0 {
		return lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface).
			Render("Nothing recorded yet. Press a to add an expense.")
	}

	recent := slices.Clone(expenses[max(len(expenses)-n, 0):])
	slices.Reverse(recent)

	lines := make([]string, 0, len(recent))
	for _, e := range recent {
		amountStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface).Bold(true)
		if e.IsEmergency {
			amountStyle = amountStyle.Foreground(t.Magenta)
		}
		// date (12) + gaps (4) + amount (10)
		label := components.Truncate(expenseLabel(e), width-26)
		lines = append(lines, mutedStyle.Render(e.Timestamp.Local().Format("Jan 02 15:04")+"  ")+
			amountStyle.Render(fmt.Sprintf("%10s", cli.FormatMoney(e.Amount, symbol)))+
			mutedStyle.Render("  "+label))
	}
	return strings.Join(lines, "\n")
}

// expenseLabel is the category and mood of an expense, e.g. "Food 😊 happy".
func expenseLabel(e model.ExpenseRecord) string {
	if e.IsEmergency {
		return "🚨 Emergency"
	}
	return cli.FormatLabel(string(e.Category)) + " " + cli.MoodEmoji(e.Mood) + " " + string(e.Mood)
}
