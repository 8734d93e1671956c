package components

import (
	"strings"

	"github.com/theirongolddev/pocketguard/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// Flash is a one-line message shown in the status bar after an action.
type Flash struct {
	Text string
	Tone Tone
}

// RenderStatusBar renders the bottom status bar: key hints, the latest flash message,
// and right-aligned info.
func RenderStatusBar(width int, flash Flash, info string) string {
	t := theme.Active

	style := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface).
		Width(width)

	left := " [a]dd [e]mergency [b]udget [t]ip [?]help [q]uit"
	if flash.Text != "" {
		flashStyle := lipgloss.NewStyle().Foreground(flash.Tone.Color()).Background(t.Surface)
		left += "  " + flashStyle.Render(flash.Text)
	}
	right := ""
	if info != "" {
		right = info + " "
	}

	padding := max(width-lipgloss.Width(left)-lipgloss.Width(right), 0)

	return style.Render(left + strings.Repeat(" ", padding) + right)
}
