package tui

import (
	"fmt"

	"github.com/theirongolddev/pocketguard/internal/cli"
	"github.com/theirongolddev/pocketguard/internal/engine"
	"github.com/theirongolddev/pocketguard/internal/model"
	"github.com/theirongolddev/pocketguard/internal/tui/components"
	"github.com/theirongolddev/pocketguard/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

type formKind int

const (
	formExpense formKind = iota + 1
	formEmergency
	formBudget
)

// formValues is bound to the active huh form's fields.
type formValues struct {
	Amount   string
	Category model.Category
	Mood     model.Mood
}

func validateAmount(s string) error {
	_, err := model.ParseAmount(s)
	return err
}

func newForm(kind formKind, vals *formValues, symbol string) *huh.Form {
	amount := huh.NewInput().
		Title(fmt.Sprintf("Amount (%s)", symbol)).
		Placeholder("e.g. 120").
		Value(&vals.Amount).
		Validate(validateAmount)

	var group *huh.Group
	switch kind {
	case formExpense:
		categories := make([]huh.Option[model.Category], 0, len(model.SpendCategories))
		for _, c := range model.SpendCategories {
			categories = append(categories, huh.NewOption(cli.FormatLabel(string(c)), c))
		}
		moods := make([]huh.Option[model.Mood], 0, len(model.Moods))
		for _, m := range model.Moods {
			moods = append(moods, huh.NewOption(cli.MoodEmoji(m)+" "+cli.FormatLabel(string(m)), m))
		}
		group = huh.NewGroup(
			amount,
			huh.NewSelect[model.Category]().
				Title("Category").
				Options(categories...).
				Value(&vals.Category),
			huh.NewSelect[model.Mood]().
				Title("How are you feeling?").
				Options(moods...).
				Value(&vals.Mood),
		).Title("Add expense")

	case formEmergency:
		group = huh.NewGroup(
			huh.NewNote().
				Title("Emergency expense").
				Description("Counts toward your total but not today's limit."),
			amount,
		)

	case formBudget:
		group = huh.NewGroup(
			huh.NewNote().
				Title("Monthly budget").
				Description("10% goes to savings, the rest is split over 30 days."),
			amount.Title(fmt.Sprintf("Monthly budget (%s)", symbol)).Placeholder("e.g. 5000"),
		)
	}

	return huh.NewForm(group).WithTheme(huh.ThemeCharm()).WithShowHelp(true)
}

func (a App) openForm(kind formKind) (tea.Model, tea.Cmd) {
	a.formVals = &formValues{Category: model.CategoryFood, Mood: model.MoodNeutral}
	a.formKind = kind
	a.form = newForm(kind, a.formVals, a.sess.Currency())
	if a.width > 0 {
		a.form = a.form.WithWidth(a.formWidth())
	}
	return a, a.form.Init()
}

func (a *App) closeForm() {
	a.form = nil
	a.formVals = nil
	a.formKind = 0
}

func (a App) formWidth() int {
	return min(max(a.width-8, 40), 64)
}

func (a App) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.form = f
	}

	switch a.form.State {
	case huh.StateCompleted:
		a.submitForm(a.formKind, *a.formVals)
		a.closeForm()
		return a, nil
	case huh.StateAborted:
		a.closeForm()
		return a, nil
	}

	return a, cmd
}

// submitForm applies a completed form to the session.
func (a *App) submitForm(kind formKind, vals formValues) {
	defer a.refresh()

	amount, err := model.ParseAmount(vals.Amount)
	if err != nil {
		a.setError(err)
		return
	}
	symbol := a.sess.Currency()

	switch kind {
	case formExpense:
		res, err := a.sess.RecordExpense(engine.ExpenseInput{
			Amount:   amount,
			Category: vals.Category,
			Mood:     vals.Mood,
		})
		if err != nil {
			a.setError(err)
			return
		}
		a.flash = resultFlash(fmt.Sprintf("Added %s on %s", cli.FormatMoney(amount, symbol), vals.Category), res.Alerts)

	case formEmergency:
		res, err := a.sess.RecordEmergencyExpense(engine.EmergencyInput{Amount: amount})
		if err != nil {
			a.setError(err)
			return
		}
		a.flash = resultFlash("Emergency "+cli.FormatMoney(amount, symbol)+" recorded", res.Alerts)

	case formBudget:
		alloc, err := a.sess.SetMonthlyBudget(amount)
		if err != nil {
			a.setError(err)
			return
		}
		a.flash = components.Flash{
			Text: fmt.Sprintf("Budget set: %s a day", cli.FormatMoney(alloc.DailyLimit, symbol)),
			Tone: components.ToneGood,
		}
	}
}

// resultFlash summarises an action and the alerts it raised.
func resultFlash(done string, alerts []model.Alert) components.Flash {
	warnings := 0
	for _, al := range alerts {
		switch al.Kind {
		case model.AlertReward, model.AlertEmergency, model.AlertTip:
		default:
			warnings++
		}
	}
	switch warnings {
	case 0:
		return components.Flash{Text: done, Tone: components.ToneGood}
	case 1:
		return components.Flash{Text: done + " · 1 new alert", Tone: components.ToneWarn}
	default:
		return components.Flash{Text: fmt.Sprintf("%s · %d new alerts", done, warnings), Tone: components.ToneWarn}
	}
}

func (a App) viewForm() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Padding(1, 2)

	hint := lipgloss.NewStyle().Foreground(t.TextDim).Render("esc to cancel")
	card := cardStyle.Render(a.form.View() + "\n" + hint)

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, card,
		lipgloss.WithWhitespaceBackground(t.Background))
}
