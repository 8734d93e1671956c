// Package tui provides the interactive Bubble Tea dashboard for pocketguard.
package tui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/theirongolddev/pocketguard/internal/cli"
	"github.com/theirongolddev/pocketguard/internal/model"
	"github.com/theirongolddev/pocketguard/internal/pipeline"
	"github.com/theirongolddev/pocketguard/internal/tui/components"
	"github.com/theirongolddev/pocketguard/internal/tui/theme"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog/log"
)

// Options configures NewApp.
type Options struct {
	// DayResetInterval is how often the day boundary fires. Zero disables it.
	DayResetInterval time.Duration
	// Now overrides the clock used for chart windows. Defaults to time.Now.
	Now func() time.Time
}

// dayResetMsg fires when the day reset interval elapses.
type dayResetMsg struct {
	At time.Time
}

const (
	tabDashboard = iota
	tabExpenses
	tabReport
)

// App is the root Bubble Tea model.
type App struct {
	sess     *pipeline.Session
	dayReset time.Duration
	now      func() time.Time

	// Snapshot of the session, refreshed after every action
	alloc     model.BudgetAllocation
	ledger    model.LedgerState
	reward    model.RewardState
	alerts    []model.Alert
	report    model.ReportSnapshot
	remaining model.Money
	days      []model.DailySpend
	moods     []model.MoodSpend

	// UI state
	width     int
	height    int
	activeTab int
	lastTab   int
	showHelp  bool
	flash     components.Flash
	expTable  table.Model
	resets    int
	lastReset time.Time

	// Active huh form, if any
	form     *huh.Form
	formKind formKind
	formVals *formValues
}

const (
	minTerminalWidth = 80
	maxContentWidth  = 180
	minContentHeight = 5
	chartDays        = 14
)

// NewApp creates the dashboard over an open session. The caller keeps ownership of
// the session and closes it after the program exits.
func NewApp(sess *pipeline.Session, opts Options) App {
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	a := App{
		sess:     sess,
		dayReset: opts.DayResetInterval,
		now:      now,
		expTable: newExpenseTable(),
	}
	a.refresh()
	return a
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return a.dayResetCmd()
}

func (a App) dayResetCmd() tea.Cmd {
	if a.dayReset <= 0 {
		return nil
	}
	return tea.Tick(a.dayReset, func(t time.Time) tea.Msg {
		return dayResetMsg{At: t}
	})
}

// refresh pulls a fresh snapshot from the session.
func (a *App) refresh() {
	a.alloc = a.sess.Allocation()
	a.ledger = a.sess.Ledger()
	a.reward = a.sess.Reward()
	a.alerts = a.sess.Alerts()
	a.report = a.sess.Report()
	a.remaining = a.sess.RemainingBudget()

	since, until := pipeline.LastDays(a.now(), chartDays)
	a.days = pipeline.AggregateDays(a.ledger.Expenses, since, until)
	a.moods = pipeline.AggregateMoods(a.ledger.Expenses)

	a.expTable.SetRows(expenseRows(a.ledger.Expenses, a.sess.Currency()))
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.resizeTable()
		if a.form != nil {
			a.form = a.form.WithWidth(a.formWidth())
		}
		return a, nil

	case dayResetMsg:
		if err := a.sess.OnDayBoundary(); err != nil {
			a.setError(err)
		} else {
			a.flash = components.Flash{Text: "New day started", Tone: components.ToneGood}
		}
		a.resets++
		a.lastReset = msg.At
		a.refresh()
		log.Debug().Time("at", msg.At).Msg("day boundary")
		return a, a.dayResetCmd()

	case tea.MouseMsg:
		if a.showHelp || a.form != nil {
			return a, nil
		}
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft && msg.Y == 0 {
			if tab := a.tabAtX(msg.X); tab >= 0 {
				a.switchTab(tab)
			}
			return a, nil
		}
		if a.activeTab == tabExpenses {
			switch msg.Button {
			case tea.MouseButtonWheelUp:
				a.expTable.MoveUp(1)
			case tea.MouseButtonWheelDown:
				a.expTable.MoveDown(1)
			}
		}
		return a, nil

	case tea.KeyMsg:
		key := msg.String()

		if key == "ctrl+c" {
			return a, tea.Quit
		}

		// An open form takes every key
		if a.form != nil {
			if key == "esc" {
				a.closeForm()
				a.flash = components.Flash{Text: "Cancelled", Tone: components.ToneNeutral}
				return a, nil
			}
			return a.updateForm(msg)
		}

		if a.showHelp {
			a.showHelp = false
			return a, nil
		}

		return a.handleKey(msg)
	}

	// Forward unhandled messages to the form (cursor blinks, etc.)
	if a.form != nil {
		return a.updateForm(msg)
	}

	return a, nil
}

func (a App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	switch key {
	case "q":
		return a, tea.Quit
	case "?":
		a.showHelp = true
		return a, nil
	case "a":
		return a.openForm(formExpense)
	case "e":
		return a.openForm(formEmergency)
	case "b":
		return a.openForm(formBudget)
	case "t":
		a.requestTip()
		return a, nil
	case "c":
		a.clearAlerts()
		return a, nil
	case "n":
		a.newDay()
		return a, nil
	case "r":
		a.toggleReport()
		return a, nil
	case "left":
		a.switchTab((a.activeTab - 1 + len(components.Tabs)) % len(components.Tabs))
		return a, nil
	case "right", "tab":
		a.switchTab((a.activeTab + 1) % len(components.Tabs))
		return a, nil
	}

	if len(msg.Runes) == 1 {
		if idx := components.TabIdxByKey(msg.Runes[0]); idx >= 0 {
			a.switchTab(idx)
			return a, nil
		}
	}

	if a.activeTab == tabExpenses {
		var cmd tea.Cmd
		a.expTable, cmd = a.expTable.Update(msg)
		return a, cmd
	}
	return a, nil
}

func (a *App) switchTab(idx int) {
	if idx == a.activeTab {
		return
	}
	a.lastTab = a.activeTab
	a.activeTab = idx
}

// toggleReport flips between the report and whichever view was open before it.
func (a *App) toggleReport() {
	if a.activeTab == tabReport {
		back := a.lastTab
		if back == tabReport {
			back = tabDashboard
		}
		a.switchTab(back)
		return
	}
	a.switchTab(tabReport)
}

func (a *App) requestTip() {
	alert, err := a.sess.RequestMicroSavingTip()
	if err != nil {
		a.setError(err)
	} else {
		a.flash = components.Flash{Text: alert.Text, Tone: components.ToneNeutral}
	}
	a.refresh()
}

func (a *App) clearAlerts() {
	if err := a.sess.ClearAlerts(); err != nil {
		a.setError(err)
	} else {
		a.flash = components.Flash{Text: "Alerts cleared", Tone: components.ToneNeutral}
	}
	a.refresh()
}

func (a *App) newDay() {
	if err := a.sess.OnDayBoundary(); err != nil {
		a.setError(err)
	} else {
		a.flash = components.Flash{Text: "New day started", Tone: components.ToneGood}
	}
	a.refresh()
}

// setError shows err in the status bar. A journal failure means the change is live
// but was not saved, so it is a warning rather than a failure.
func (a *App) setError(err error) {
	if errors.Is(err, pipeline.ErrJournal) {
		a.flash = components.Flash{Text: "Not saved: " + err.Error(), Tone: components.ToneWarn}
		log.Warn().Err(err).Msg("journal write failed")
		return
	}
	a.flash = components.Flash{Text: err.Error(), Tone: components.ToneBad}
}

func (a App) contentWidth() int {
	return min(a.width, maxContentWidth)
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}

	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}

	if a.form != nil {
		return a.viewForm()
	}

	if a.showHelp {
		return a.viewHelp()
	}

	return a.viewMain()
}

func (a App) viewTooNarrow() string {
	h := max(a.height, 5)

	msg := fmt.Sprintf(
		"\n  Terminal too narrow (%d cols)\n\n  pocketguard needs at least %d columns.\n",
		a.width,
		minTerminalWidth,
	)

	return padHeight(truncateHeight(msg, h), h)
}

func (a App) viewHelp() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Background(t.Surface).
		Padding(1, 3)

	titleStyle := lipgloss.NewStyle().
		Foreground(t.AccentBright).
		Background(t.Surface).
		Bold(true)

	sectionStyle := lipgloss.NewStyle().
		Foreground(t.Accent).
		Background(t.Surface).
		Bold(true)

	keyStyle := lipgloss.NewStyle().
		Foreground(t.Cyan).
		Background(t.Surface).
		Bold(true)

	descStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface)

	dimStyle := lipgloss.NewStyle().
		Foreground(t.TextDim).
		Background(t.Surface)

	sections := []struct {
		title    string
		bindings []struct{ key, desc string }
	}{
		{"Money", []struct{ key, desc string }{
			{"a", "Add expense"},
			{"e", "Emergency expense"},
			{"b", "Set monthly budget"},
			{"t", "Micro-saving tip"},
		}},
		{"Day", []struct{ key, desc string }{
			{"c", "Clear alerts"},
			{"n", "Start a new day"},
		}},
		{"Views", []struct{ key, desc string }{
			{"1 2 3", "Jump to view"},
			{"← →", "Previous / Next view"},
			{"r", "Toggle report"},
			{"j k", "Scroll expenses"},
			{"Esc", "Cancel form"},
			{"?", "Toggle help"},
			{"q", "Quit"},
		}},
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("◈ Keyboard Shortcuts"))
	b.WriteString("\n")
	for _, sec := range sections {
		b.WriteString("\n")
		b.WriteString(sectionStyle.Render(sec.title))
		b.WriteString("\n")
		for _, bind := range sec.bindings {
			fmt.Fprintf(&b, "  %s  %s\n",
				keyStyle.Render(fmt.Sprintf("%-6s", bind.key)),
				descStyle.Render(bind.desc))
		}
	}
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Press any key to close"))

	card := cardStyle.Render(b.String())

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, card,
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewMain() string {
	t := theme.Active
	w := a.width
	cw := a.contentWidth()
	h := a.height
	symbol := a.sess.Currency()

	// 1. Header: tab bar + info pill
	pillStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	pillAccent := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)

	info := pillStyle.Render(" budget ") + pillAccent.Render(cli.FormatMoney(a.alloc.MonthlyBudget, symbol)) +
		pillStyle.Render(" │ streak ") + pillAccent.Render(fmt.Sprintf("%d", a.reward.ConsecutiveInBudgetDays)) +
		pillStyle.Render(" │ points ") + pillAccent.Render(fmt.Sprintf("%d", a.reward.Points))
	if !a.sess.Persistent() {
		info += pillStyle.Render(" │ ") + lipgloss.NewStyle().Foreground(t.Orange).Background(t.Surface).Render("not saved")
	}

	header := components.RenderTabBar(a.activeTab, w) + "\n" +
		lipgloss.NewStyle().Background(t.Surface).Width(w).Render(info)

	// 2. Status bar
	statusInfo := fmt.Sprintf("%d expenses", len(a.ledger.Expenses))
	if !a.lastReset.IsZero() {
		statusInfo += " · day reset " + a.lastReset.Format("15:04")
	}
	statusBar := components.RenderStatusBar(w, a.flash, statusInfo)

	// 3. Content zone
	contentH := max(h-lipgloss.Height(header)-lipgloss.Height(statusBar), minContentHeight)

	var content string
	switch a.activeTab {
	case tabDashboard:
		content = a.renderDashboardTab(cw, contentH)
	case tabExpenses:
		content = a.renderExpensesTab(cw)
	case tabReport:
		content = a.renderReportTab(cw)
	}

	content = padHeight(truncateHeight(content, contentH), contentH)
	content = fillLinesWithBackground(content, cw, t.Background)
	content = lipgloss.Place(w, contentH, lipgloss.Center, lipgloss.Top, content,
		lipgloss.WithWhitespaceBackground(t.Background))

	output := lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)

	return lipgloss.Place(w, h, lipgloss.Left, lipgloss.Top, output,
		lipgloss.WithWhitespaceBackground(t.Background))
}

// ─── Helpers ────────────────────────────────────────────────────

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	return s + strings.Repeat("\n", h-len(lines))
}

// fillLinesWithBackground pads each line to width w with background color.
func fillLinesWithBackground(s string, w int, bg lipgloss.Color) string {
	lines := strings.Split(s, "\n")

	var result strings.Builder
	for i, line := range lines {
		placed := lipgloss.PlaceHorizontal(w, lipgloss.Left, line,
			lipgloss.WithWhitespaceBackground(bg))
		result.WriteString(placed)
		if i < len(lines)-1 {
			result.WriteString("\n")
		}
	}
	return result.String()
}

// ─── Mouse Support ──────────────────────────────────────────────

// tabAtX returns the tab index at the given X coordinate, or -1 if none.
// Hitboxes are derived from the same width rules used by RenderTabBar.
func (a App) tabAtX(x int) int {
	pos := 0
	for i, tab := range components.Tabs {
		tabW := components.TabVisualWidth(tab, i == a.activeTab)

		if x >= pos && x < pos+tabW {
			return i
		}
		pos += tabW

		// Separator is one column between tabs.
		if i < len(components.Tabs)-1 {
			pos++
		}
	}
	return -1
}
