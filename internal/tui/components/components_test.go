package components

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theirongolddev/pocketguard/internal/model"
	"github.com/theirongolddev/pocketguard/internal/tui/theme"
)

func init() {
	// Force TrueColor output so ANSI codes are generated in tests
	lipgloss.SetColorProfile(termenv.TrueColor)
}

func TestLayoutRowSumsToTotal(t *testing.T) {
	for _, n := range []int{1, 3, 4, 7} {
		widths := LayoutRow(101, n)
		require.Len(t, widths, n)
		sum := 0
		for _, w := range widths {
			sum += w
		}
		assert.Equal(t, 101, sum, "n=%d", n)
	}
	assert.Nil(t, LayoutRow(80, 0))
}

func TestMetricCardRowWidth(t *testing.T) {
	theme.SetActive("flexoki-dark")

	row := MetricCardRow([]Metric{
		{Label: "Budget", Value: "₹5,000"},
		{Label: "Savings", Value: "₹500", Tone: ToneGood},
		{Label: "Daily limit", Value: "₹150", Delta: "per day"},
	}, 90)

	for i, line := range strings.Split(row, "\n") {
		assert.Equal(t, 90, lipgloss.Width(line), "line %d", i)
	}
}

func TestCardRowPadsShortCards(t *testing.T) {
	theme.SetActive("flexoki-dark")

	shortCard := ContentCard("Short", "Content", 22)
	tallCard := ContentCard("Tall", "Line 1\nLine 2\nLine 3\nLine 4\nLine 5", 22)

	shortLines := lipgloss.Height(shortCard)
	tallLines := lipgloss.Height(tallCard)
	require.Less(t, shortLines, tallLines)

	lines := strings.Split(CardRow([]string{tallCard, shortCard}), "\n")
	require.Len(t, lines, tallLines)

	for i := shortLines; i < len(lines); i++ {
		assert.Contains(t, lines[i], "\x1b[", "line %d has no background styling", i)
		assert.Equal(t, 44, lipgloss.Width(lines[i]), "line %d", i)
	}
}

func TestSpendRatio(t *testing.T) {
	assert.InDelta(t, 0.5, SpendRatio(75, 150), 1e-9)
	assert.Zero(t, SpendRatio(0, 0))
	assert.Greater(t, SpendRatio(10, 0), 1.0)
}

func TestColorForPct(t *testing.T) {
	theme.SetActive("flexoki-dark")
	tt := theme.Active

	assert.Equal(t, string(tt.Green), ColorForPct(0.2))
	assert.Equal(t, string(tt.Yellow), ColorForPct(0.6))
	assert.Equal(t, string(tt.Orange), ColorForPct(1.0))
	assert.Equal(t, string(tt.Red), ColorForPct(1.2))
}

func TestSpendGauge(t *testing.T) {
	theme.SetActive("flexoki-dark")

	under := SpendGauge(100, 150, "₹", 40)
	assert.Contains(t, under, "67%")
	assert.Contains(t, under, "₹50 left for today")

	over := SpendGauge(200, 150, "₹", 40)
	assert.Contains(t, over, "133%")
	assert.Contains(t, over, "₹50 over today's limit")
}

func TestAlertListKeepsNewest(t *testing.T) {
	alerts := []model.Alert{
		{Text: "first", Kind: model.AlertLimit},
		{Text: "second", Kind: model.AlertTrend},
		{Text: "third", Kind: model.AlertTip},
		{Text: "fourth", Kind: model.AlertReward},
	}

	out := AlertList(alerts, 40, 3)
	assert.Contains(t, out, "+2 earlier")
	assert.NotContains(t, out, "second")
	assert.Contains(t, out, "third")
	assert.Contains(t, out, "fourth")

	assert.Contains(t, AlertList(nil, 40, 3), "No alerts")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, "abcd…", Truncate("abcdefgh", 5))
	assert.Equal(t, "", Truncate("abc", 0))
	assert.LessOrEqual(t, lipgloss.Width(Truncate("⚠️ Daily limit exceeded!", 8)), 8)
}

func TestDayBarsOldestFirst(t *testing.T) {
	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.Local)
	days := []model.DailySpend{
		{Date: day, Spent: 200},
		{Date: day.AddDate(0, 0, -1), Spent: 50},
	}

	lines := strings.Split(DayBars(days, 150, "₹", 50), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "Mon 09 Mar")
	assert.Contains(t, lines[1], "Tue 10 Mar")
	assert.Contains(t, lines[1], "₹200")
}

func TestTabVisualWidthMatchesRender(t *testing.T) {
	theme.SetActive("flexoki-dark")

	for active := range Tabs {
		total := 0
		for i, tab := range Tabs {
			total += TabVisualWidth(tab, i == active)
		}
		total += len(Tabs) - 1 // separators

		bar := RenderTabBar(active, 0)
		assert.Equal(t, total, lipgloss.Width(bar), "active=%d", active)
	}
}

func TestTabIdxByKey(t *testing.T) {
	assert.Equal(t, 0, TabIdxByKey('1'))
	assert.Equal(t, 2, TabIdxByKey('3'))
	assert.Equal(t, -1, TabIdxByKey('z'))
}
