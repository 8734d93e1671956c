// Package engine is the budget and behavioral alert engine. It owns the allocation,
// the expense ledger, the reward state and the alert list for one user.
//
// An Engine is not safe for concurrent use. Hosts serialize every call.
package engine

import (
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/theirongolddev/pocketguard/internal/budget"
	"github.com/theirongolddev/pocketguard/internal/ledger"
	"github.com/theirongolddev/pocketguard/internal/model"
	"github.com/theirongolddev/pocketguard/internal/report"
	"github.com/theirongolddev/pocketguard/internal/reward"
	"github.com/theirongolddev/pocketguard/internal/rules"
	"github.com/theirongolddev/pocketguard/internal/tips"
)

const (
	// DefaultCurrency prefixes money in alert texts when Options.Currency is empty.
	DefaultCurrency = "₹"
	// TipPrefix starts every tip alert text.
	TipPrefix = "💡 "
)

// Options configures a new Engine.
type Options struct {
	MonthlyBudget model.Money
	Currency      string

	// Now, Rand and NewID default to the wall clock, a seeded PCG source and uuid.New.
	Now   func() time.Time
	Rand  tips.Source
	NewID func() uuid.UUID
}

// ExpenseInput describes a regular expense. Zero ID and At are filled in by the engine.
type ExpenseInput struct {
	ID       uuid.UUID
	Amount   model.Money
	Category model.Category
	Mood     model.Mood
	At       time.Time
}

// ExpenseResult is returned by RecordExpense.
type ExpenseResult struct {
	Record model.ExpenseRecord `json:"record"`
	Alerts []model.Alert       `json:"alerts"`
	Ledger model.LedgerState   `json:"ledger"`
	Reward model.RewardState   `json:"reward"`
}

// EmergencyInput describes an emergency expense.
type EmergencyInput struct {
	ID     uuid.UUID
	Amount model.Money
	At     time.Time
}

// EmergencyResult is returned by RecordEmergencyExpense.
type EmergencyResult struct {
	Record model.ExpenseRecord `json:"record"`
	Alerts []model.Alert       `json:"alerts"`
	Ledger model.LedgerState   `json:"ledger"`
}

// Engine ties the components together.
type Engine struct {
	currency string
	now      func() time.Time
	newID    func() uuid.UUID

	alloc   model.BudgetAllocation
	ledger  *ledger.Ledger
	rules   *rules.Pipeline
	rewards *reward.Tracker
	tips    *tips.Picker
	alerts  []model.Alert
}

// New returns an engine with an empty ledger and the given monthly budget allocated.
func New(opts Options) (*Engine, error) {
	alloc, err := budget.Allocate(opts.MonthlyBudget)
	if err != nil {
		return nil, fmt.Errorf("initial budget: %w", err)
	}

	currency := opts.Currency
	if currency == "" {
		currency = DefaultCurrency
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	newID := opts.NewID
	if newID == nil {
		newID = uuid.New
	}

	return &Engine{
		currency: currency,
		now:      now,
		newID:    newID,
		alloc:    alloc,
		ledger:   ledger.New(),
		rules:    rules.New(currency),
		rewards:  reward.New(),
		tips:     tips.NewPicker(opts.Rand, tips.Catalog(currency)),
	}, nil
}

// Currency returns the symbol used in alert texts.
func (e *Engine) Currency() string {
	return e.currency
}

// SetMonthlyBudget replaces the allocation. On error nothing changes.
func (e *Engine) SetMonthlyBudget(amount model.Money) (model.BudgetAllocation, error) {
	alloc, err := budget.Allocate(amount)
	if err != nil {
		return e.alloc, err
	}
	e.alloc = alloc
	return alloc, nil
}

// RecordExpense appends a regular expense, runs the alert rules and the reward tracker,
// and adds every produced alert to the alert list.
func (e *Engine) RecordExpense(in ExpenseInput) (ExpenseResult, error) {
	if err := e.ledger.CanAppend(in.Amount); err != nil {
		return ExpenseResult{}, err
	}

	category := in.Category
	if category == "" {
		category = model.CategoryOther
	}
	if !slices.Contains(model.SpendCategories, category) {
		return ExpenseResult{}, fmt.Errorf("%w %q", model.ErrUnknownCategory, category)
	}
	mood := in.Mood
	if mood == "" {
		mood = model.MoodNeutral
	}
	if !slices.Contains(model.Moods, mood) {
		return ExpenseResult{}, fmt.Errorf("%w %q", model.ErrUnknownMood, mood)
	}
	rec := model.ExpenseRecord{
		ID:        e.id(in.ID),
		Amount:    in.Amount,
		Category:  category,
		Mood:      mood,
		Timestamp: e.at(in.At),
	}

	previous := e.ledger.Recent(2)
	priorTotal := e.ledger.TotalSpending()
	priorCount := e.ledger.Len()
	priorRemaining := e.alloc.Usable - priorTotal

	if err := e.ledger.Append(rec); err != nil {
		return ExpenseResult{}, err
	}

	today := e.ledger.TodaySpending()
	alerts := e.rules.Evaluate(rules.Input{
		Expense:         rec,
		Previous:        previous,
		TodaySpending:   today,
		DailyLimit:      e.alloc.DailyLimit,
		TotalSpending:   priorTotal,
		RemainingBudget: priorRemaining,
		ExpenseCount:    priorCount,
	})
	if a, ok := e.rewards.Observe(today, e.alloc.DailyLimit); ok {
		alerts = append(alerts, a)
	}
	e.alerts = append(e.alerts, alerts...)

	return ExpenseResult{
		Record: rec,
		Alerts: alerts,
		Ledger: e.ledger.State(),
		Reward: e.rewards.State(),
	}, nil
}

// RecordEmergencyExpense appends an emergency expense. It counts toward the total only,
// skips the rules and rewards, and always yields exactly one alert.
func (e *Engine) RecordEmergencyExpense(in EmergencyInput) (EmergencyResult, error) {
	if err := e.ledger.CanAppend(in.Amount); err != nil {
		return EmergencyResult{}, err
	}

	rec := model.ExpenseRecord{
		ID:          e.id(in.ID),
		Amount:      in.Amount,
		Category:    model.CategoryEmergency,
		Mood:        model.MoodNeutral,
		Timestamp:   e.at(in.At),
		IsEmergency: true,
	}
	if err := e.ledger.Append(rec); err != nil {
		return EmergencyResult{}, err
	}

	alert := e.rules.Emergency(rec.Amount)
	e.alerts = append(e.alerts, alert)

	return EmergencyResult{
		Record: rec,
		Alerts: []model.Alert{alert},
		Ledger: e.ledger.State(),
	}, nil
}

// RequestMicroSavingTip picks a random suggestion and adds it as a tip alert.
func (e *Engine) RequestMicroSavingTip() model.Alert {
	return e.RestoreTip(e.tips.Pick())
}

// RestoreTip adds a tip alert with known text. Journal replay uses it so a replayed
// session shows the same tips the user saw.
func (e *Engine) RestoreTip(text string) model.Alert {
	alert := model.Alert{Kind: model.AlertTip, Text: TipPrefix + text}
	e.alerts = append(e.alerts, alert)
	return alert
}

// ClearAlerts empties the alert list.
func (e *Engine) ClearAlerts() {
	e.alerts = nil
}

// OnDayBoundary starts a new day: today's spending goes back to zero.
func (e *Engine) OnDayBoundary() {
	e.ledger.ResetToday()
}

// Report computes a fresh report card.
func (e *Engine) Report() model.ReportSnapshot {
	return report.Generate(e.alloc, e.ledger, e.rewards.State())
}

// Allocation returns the current budget split.
func (e *Engine) Allocation() model.BudgetAllocation {
	return e.alloc
}

// Ledger returns a copy of the ledger state.
func (e *Engine) Ledger() model.LedgerState {
	return e.ledger.State()
}

// Reward returns the streak and points.
func (e *Engine) Reward() model.RewardState {
	return e.rewards.State()
}

// Alerts returns a copy of the active alerts, oldest first.
func (e *Engine) Alerts() []model.Alert {
	out := make([]model.Alert, len(e.alerts))
	copy(out, e.alerts)
	return out
}

// Recent returns up to the last n expenses, oldest first.
func (e *Engine) Recent(n int) []model.ExpenseRecord {
	return e.ledger.Recent(n)
}

// RemainingBudget is the usable amount minus everything spent so far.
func (e *Engine) RemainingBudget() model.Money {
	return e.alloc.Usable - e.ledger.TotalSpending()
}

func (e *Engine) id(id uuid.UUID) uuid.UUID {
	if id == uuid.Nil {
		return e.newID()
	}
	return id
}

func (e *Engine) at(t time.Time) time.Time {
	if t.IsZero() {
		return e.now()
	}
	return t
}
