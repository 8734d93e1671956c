package cli

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"

	"github.com/theirongolddev/pocketguard/internal/model"
)

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		in   model.Money
		want string
	}{
		{0, "₹0"},
		{150, "₹150"},
		{4500, "₹4,500"},
		{1234567, "₹1,234,567"},
		{-40, "-₹40"},
		{-12000, "-₹12,000"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatMoney(tt.in, "₹"), "FormatMoney(%d)", tt.in)
	}
}

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "999", FormatNumber(999))
	assert.Equal(t, "1,000", FormatNumber(1000))
	assert.Equal(t, "12,345,678", FormatNumber(12345678))
	assert.Equal(t, "-1,000", FormatNumber(-1000))
}

func TestFormatShare(t *testing.T) {
	assert.Equal(t, "25.0%", FormatShare(25, 100))
	assert.Equal(t, "-", FormatShare(25, 0))
}

func TestFormatLabel(t *testing.T) {
	assert.Equal(t, "Food", FormatLabel("food"))
	assert.Equal(t, "", FormatLabel(""))
}

func TestFormatDayOfWeek(t *testing.T) {
	assert.Equal(t, "Sun", FormatDayOfWeek(0))
	assert.Equal(t, "Sat", FormatDayOfWeek(6))
	assert.Equal(t, "???", FormatDayOfWeek(7))
}

func TestMoodEmoji(t *testing.T) {
	assert.Equal(t, "😰", MoodEmoji(model.MoodStressed))
	assert.Equal(t, "😐", MoodEmoji(""))
}

func TestRenderTableAlignsWideRunes(t *testing.T) {
	out := RenderTable(Table{
		Headers: []string{"Category", "Amount"},
		Rows: [][]string{
			{"Food", "₹1,200"},
			{"Transport", "₹80"},
		},
	})

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 6)
	width := lipgloss.Width(lines[0])
	for _, l := range lines {
		assert.Equal(t, width, lipgloss.Width(l), "line %q", l)
	}
	assert.Contains(t, out, "₹1,200")
}

func TestRenderTableEmpty(t *testing.T) {
	assert.Equal(t, "", RenderTable(Table{}))
}

func TestRenderSpendBar(t *testing.T) {
	out := RenderSpendBar(75, 150, "₹", 10)
	assert.Contains(t, out, "₹75 / ₹150")
	assert.Equal(t, 5, strings.Count(out, "█"))

	over := RenderSpendBar(300, 150, "₹", 10)
	assert.Equal(t, 10, strings.Count(over, "█"))
}

func TestRenderSparkline(t *testing.T) {
	assert.Equal(t, "▁█", RenderSparkline([]float64{0, 10}))
	assert.Equal(t, "", RenderSparkline(nil))
}

func TestRenderAlerts(t *testing.T) {
	out := RenderAlerts([]model.Alert{
		{Kind: model.AlertLimit, Text: "over"},
		{Kind: model.AlertTip, Text: "tip"},
	})
	assert.Contains(t, out, "over")
	assert.Contains(t, out, "tip")
	assert.Equal(t, 2, strings.Count(out, "\n"))
}
