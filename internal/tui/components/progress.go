package components

import (
	"fmt"

	"github.com/theirongolddev/pocketguard/internal/cli"
	"github.com/theirongolddev/pocketguard/internal/model"
	"github.com/theirongolddev/pocketguard/internal/tui/theme"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// ColorForPct returns green/yellow/orange/red based on how much of a limit is used.
func ColorForPct(pct float64) string {
	t := theme.Active
	switch {
	case pct > 1:
		return string(t.Red)
	case pct >= 0.8:
		return string(t.Orange)
	case pct >= 0.5:
		return string(t.Yellow)
	default:
		return string(t.Green)
	}
}

// SpendRatio returns spent/limit. A zero limit counts as fully used once anything is spent.
func SpendRatio(spent, limit model.Money) float64 {
	if limit <= 0 {
		if spent > 0 {
			return 2
		}
		return 0
	}
	return float64(spent) / float64(limit)
}

// UsageBar renders a labelled bar with percentage. pct above 1 draws a full red bar
// and still prints the real percentage.
func UsageBar(label string, pct float64, labelW, barWidth int) string {
	t := theme.Active

	color := ColorForPct(pct)
	fill := min(max(pct, 0), 1)

	bar := progress.New(
		progress.WithSolidFill(color),
		progress.WithWidth(barWidth),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(t.TextDim)

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	pctStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Background(t.Surface).Bold(true)
	spaceStyle := lipgloss.NewStyle().Background(t.Surface)

	return labelStyle.Render(fmt.Sprintf("%-*s", labelW, label)) +
		spaceStyle.Render(" ") +
		bar.ViewAs(fill) +
		spaceStyle.Render(" ") +
		pctStyle.Render(fmt.Sprintf("%3.0f%%", pct*100))
}

// SpendGauge renders today's spending against the daily limit: a bar, then the two
// amounts, then how much is left or how far over the limit the day is.
func SpendGauge(spent, limit model.Money, symbol string, width int) string {
	t := theme.Active

	barW := max(width-8, 10)
	line := UsageBar("", SpendRatio(spent, limit), 0, barW)

	amountStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface).Bold(true)
	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)

	detail := amountStyle.Render(cli.FormatMoney(spent, symbol)) +
		mutedStyle.Render(" of "+cli.FormatMoney(limit, symbol))

	var verdict string
	if spent > limit {
		verdict = lipgloss.NewStyle().Foreground(ToneBad.Color()).Background(t.Surface).
			Render(cli.FormatMoney(spent-limit, symbol) + " over today's limit")
	} else {
		verdict = lipgloss.NewStyle().Foreground(ToneGood.Color()).Background(t.Surface).
			Render(cli.FormatMoney(limit-spent, symbol) + " left for today")
	}

	return line + "\n" + detail + "\n" + verdict
}
