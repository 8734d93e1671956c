package components

import (
	"strconv"
	"strings"

	"github.com/theirongolddev/pocketguard/internal/model"
	"github.com/theirongolddev/pocketguard/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// AlertColor returns the theme color for an alert kind.
func AlertColor(kind model.AlertKind) lipgloss.Color {
	t := theme.Active
	switch kind {
	case model.AlertEmotional, model.AlertLimit:
		return t.Red
	case model.AlertTrend, model.AlertProjection:
		return t.Orange
	case model.AlertReward:
		return t.GreenBright
	case model.AlertEmergency:
		return t.Magenta
	case model.AlertTip:
		return t.BlueBright
	default:
		return t.TextPrimary
	}
}

// AlertList renders the newest maxLines alerts, oldest first, each truncated to width.
// Older alerts are summarised in a leading "+N earlier" line.
func AlertList(alerts []model.Alert, width, maxLines int) string {
	t := theme.Active
	mutedStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)

	if len(alerts) == 0 {
		return mutedStyle.Render("No alerts. Spend wisely!")
	}

	shown := alerts
	var b strings.Builder
	if maxLines > 0 && len(alerts) > maxLines {
		hidden := len(alerts) - maxLines + 1
		shown = alerts[hidden:]
		b.WriteString(mutedStyle.Render("+" + strconv.Itoa(hidden) + " earlier"))
		b.WriteString("\n")
	}

	for i, a := range shown {
		style := lipgloss.NewStyle().Foreground(AlertColor(a.Kind)).Background(t.Surface)
		b.WriteString(style.Render(Truncate(a.Text, width)))
		if i < len(shown)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// Truncate shortens s to at most limit display cells, ending in "…" when cut.
func Truncate(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	if lipgloss.Width(s) <= limit {
		return s
	}
	var b strings.Builder
	w := 0
	for _, r := range s {
		rw := lipgloss.Width(string(r))
		if w+rw > limit-1 {
			break
		}
		b.WriteRune(r)
		w += rw
	}
	return b.String() + "…"
}
