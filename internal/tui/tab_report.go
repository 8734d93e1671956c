package tui

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/theirongolddev/pocketguard/internal/cli"
	"github.com/theirongolddev/pocketguard/internal/model"
	"github.com/theirongolddev/pocketguard/internal/tui/components"
	"github.com/theirongolddev/pocketguard/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// shareItem is one labelled row of a share-of-total breakdown.
type shareItem struct {
	Label string
	Spent model.Money
}

func (a App) renderReportTab(cw int) string {
	t := theme.Active
	symbol := a.sess.Currency()
	r := a.report
	money := func(m model.Money) string { return cli.FormatMoney(m, symbol) }

	overTone := components.ToneGood
	if r.OverspendingDays > 0 {
		overTone = components.ToneWarn
	}
	remainingTone := components.ToneGood
	if !r.OnTrack() {
		remainingTone = components.ToneBad
	}

	var b strings.Builder
	b.WriteString(components.MetricCardRow([]components.Metric{
		{Label: "Total spending", Value: money(r.TotalSpending)},
		{Label: "Total savings", Value: money(r.TotalSavings), Tone: components.ToneGood},
		{Label: "Remaining", Value: money(r.RemainingBudget), Tone: remainingTone},
		{Label: "Overspending days", Value: fmt.Sprintf("%d", r.OverspendingDays), Tone: overTone},
		{Label: "Reward points", Value: fmt.Sprintf("%d", r.RewardPoints), Tone: components.ToneGood},
	}, cw))
	b.WriteString("\n")

	categories := make([]shareItem, 0, len(r.CategoryTotals))
	for c, m := range r.CategoryTotals {
		label := cli.FormatLabel(string(c))
		if c == model.CategoryEmergency {
			label = "🚨 Emergency"
		}
		categories = append(categories, shareItem{Label: label, Spent: m})
	}
	sortShares(categories)

	moods := make([]shareItem, 0, len(a.moods))
	var moodTotal model.Money
	for _, m := range a.moods {
		moods = append(moods, shareItem{Label: cli.MoodEmoji(m.Mood) + " " + string(m.Mood), Spent: m.Spent})
		moodTotal += m.Spent
	}

	widths := components.LayoutRow(cw, 2)
	b.WriteString(components.CardRow([]string{
		components.ContentCard("Spending by category",
			shareBars(categories, r.TotalSpending, symbol, components.CardInnerWidth(widths[0])), widths[0]),
		components.ContentCard("Spending by mood",
			shareBars(moods, moodTotal, symbol, components.CardInnerWidth(widths[1])), widths[1]),
	}))
	b.WriteString("\n")

	verdictStyle := lipgloss.NewStyle().Background(t.Surface).Bold(true)
	verdict := verdictStyle.Foreground(t.Green).Render("✅ On Track")
	if !r.OnTrack() {
		verdict = verdictStyle.Foreground(t.Red).Render("❌ Budget Exceeded")
	}
	b.WriteString(components.ContentCard("Performance", verdict, cw))

	return b.String()
}

func sortShares(items []shareItem) {
	slices.SortFunc(items, func(x, y shareItem) int {
		if c := cmp.Compare(y.Spent, x.Spent); c != 0 {
			return c
		}
		return cmp.Compare(x.Label, y.Label)
	})
}

// shareBars renders label, bar, amount and share of total for each item.
func shareBars(items []shareItem, total model.Money, symbol string, width int) string {
	t := theme.Active
	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)

	if len(items) == 0 {
		return lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface).Render("No spending yet")
	}

	labelW := 0
	peak := model.Money(0)
	for _, it := range items {
		labelW = max(labelW, lipgloss.Width(it.Label))
		peak = max(peak, it.Spent)
	}
	if peak <= 0 {
		peak = 1
	}

	const amountW, shareW = 9, 6
	barW := max(width-labelW-amountW-shareW-3, 4)

	barStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	spaceStyle := lipgloss.NewStyle().Background(t.Surface)

	lines := make([]string, 0, len(items))
	for _, it := range items {
		filled := min(int(float64(it.Spent)/float64(peak)*float64(barW)), barW)
		pad := strings.Repeat(" ", labelW-lipgloss.Width(it.Label))
		lines = append(lines, mutedStyle.Render(it.Label+pad)+
			spaceStyle.Render(" ")+
			barStyle.Render(strings.Repeat("█", filled))+
			spaceStyle.Render(strings.Repeat(" ", barW-filled+1))+
			valueStyle.Render(fmt.Sprintf("%*s", amountW, cli.FormatMoney(it.Spent, symbol)))+
			mutedStyle.Render(fmt.Sprintf(" %*s", shareW, cli.FormatShare(it.Spent, total))))
	}
	return strings.Join(lines, "\n")
}
