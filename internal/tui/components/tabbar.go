package components

import (
	"strings"

	"github.com/theirongolddev/pocketguard/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// Tab is one view in the tab bar.
type Tab struct {
	Name string
	Key  rune
}

// Tabs defines the dashboard views in display order.
var Tabs = []Tab{
	{Name: "Dashboard", Key: '1'},
	{Name: "Expenses", Key: '2'},
	{Name: "Report", Key: '3'},
}

const tabSeparator = "│"

// TabVisualWidth is the rendered width of one tab, padding included. Mouse hit
// testing relies on it matching RenderTabBar.
func TabVisualWidth(tab Tab, active bool) int {
	w := lipgloss.Width(tab.Name) + 2
	if !active {
		w += 3 // "[1]"
	}
	return w
}

// RenderTabBar renders the tab bar with the given active index.
func RenderTabBar(activeIdx, width int) string {
	t := theme.Active

	activeStyle := lipgloss.NewStyle().
		Foreground(t.AccentBright).
		Background(t.SurfaceHover).
		Bold(true).
		Padding(0, 1)

	inactiveStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface).
		Padding(0, 1)

	keyStyle := lipgloss.NewStyle().
		Foreground(t.Accent).
		Background(t.Surface)

	sepStyle := lipgloss.NewStyle().
		Foreground(t.Border).
		Background(t.Surface)

	parts := make([]string, 0, len(Tabs))
	for i, tab := range Tabs {
		if i == activeIdx {
			parts = append(parts, activeStyle.Render(tab.Name))
			continue
		}
		parts = append(parts, inactiveStyle.Render(tab.Name+keyStyle.Render("["+string(tab.Key)+"]")))
	}

	row := strings.Join(parts, sepStyle.Render(tabSeparator))
	return lipgloss.NewStyle().Background(t.Surface).Width(width).Render(row)
}

// TabIdxByKey returns the tab index for a given key press, or -1.
func TabIdxByKey(key rune) int {
	for i, tab := range Tabs {
		if tab.Key == key {
			return i
		}
	}
	return -1
}
