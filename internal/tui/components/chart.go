package components

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/pocketguard/internal/cli"
	"github.com/theirongolddev/pocketguard/internal/model"
	"github.com/theirongolddev/pocketguard/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

var sparkBlocks = []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// Sparkline renders a unicode sparkline from values.
func Sparkline(values []float64, color lipgloss.Color) string {
	if len(values) == 0 {
		return ""
	}
	t := theme.Active

	peak := values[0]
	for _, v := range values[1:] {
		peak = max(peak, v)
	}
	if peak == 0 {
		peak = 1
	}

	style := lipgloss.NewStyle().Foreground(color).Background(t.Surface)

	var buf strings.Builder
	buf.Grow(len(values) * 3)
	for _, v := range values {
		idx := int(v / peak * float64(len(sparkBlocks)-1))
		idx = min(max(idx, 0), len(sparkBlocks)-1)
		buf.WriteRune(sparkBlocks[idx])
	}

	return style.Render(buf.String())
}

// DayBars renders one horizontal bar per day, oldest at the top. Days over limit
// are drawn red. days is newest first, as AggregateDays returns it.
func DayBars(days []model.DailySpend, limit model.Money, symbol string, width int) string {
	if len(days) == 0 {
		return ""
	}
	t := theme.Active

	peak := limit
	for _, d := range days {
		peak = max(peak, d.Spent)
	}
	if peak <= 0 {
		peak = 1
	}

	amounts := make([]string, len(days))
	amountW := 0
	for i, d := range days {
		amounts[i] = cli.FormatMoney(d.Spent, symbol)
		amountW = max(amountW, lipgloss.Width(amounts[i]))
	}

	const labelW = 10 // "Mon 02 Jan"
	barW := max(width-labelW-amountW-2, 4)

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	amountStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	emptyStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	spaceStyle := lipgloss.NewStyle().Background(t.Surface)

	var b strings.Builder
	for i := len(days) - 1; i >= 0; i-- {
		d := days[i]
		filled := int(float64(d.Spent) / float64(peak) * float64(barW))
		filled = min(max(filled, 0), barW)

		color := t.Green
		if d.Spent > limit {
			color = t.Red
		}
		barStyle := lipgloss.NewStyle().Foreground(color).Background(t.Surface)

		b.WriteString(labelStyle.Render(d.Date.Format("Mon 02 Jan")))
		b.WriteString(spaceStyle.Render(" "))
		b.WriteString(barStyle.Render(strings.Repeat("█", filled)))
		b.WriteString(emptyStyle.Render(strings.Repeat("·", barW-filled)))
		b.WriteString(spaceStyle.Render(" "))
		b.WriteString(amountStyle.Render(fmt.Sprintf("%*s", amountW, amounts[i])))
		if i > 0 {
			b.WriteString("\n")
		}
	}
	return b.String()
}
