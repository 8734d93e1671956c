// Package rules evaluates the behavioral and financial alert rules for a new expense.
package rules

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/theirongolddev/pocketguard/internal/budget"
	"github.com/theirongolddev/pocketguard/internal/model"
)

// Input is everything the rules may look at for one new expense.
// Totals, remaining budget and count describe the ledger before the expense was appended;
// TodaySpending already includes it.
type Input struct {
	Expense  model.ExpenseRecord
	Previous []model.ExpenseRecord // up to two records immediately before Expense, oldest first

	TodaySpending   model.Money
	DailyLimit      model.Money
	TotalSpending   model.Money
	RemainingBudget model.Money
	ExpenseCount    int
}

// Rule inspects an input and optionally produces an alert.
type Rule func(p *Pipeline, in Input) (model.Alert, bool)

// Pipeline runs the fixed rule sequence. It keeps no state between evaluations.
type Pipeline struct {
	currency string
	rules    []Rule
}

// New returns the default pipeline. currency prefixes money in alert texts.
func New(currency string) *Pipeline {
	return &Pipeline{
		currency: currency,
		rules: []Rule{
			Emotional,
			DailyLimit,
			RisingTrend,
			Runway,
		},
	}
}

// Evaluate runs every rule in order and returns all alerts that fired.
// The result is never nil.
func (p *Pipeline) Evaluate(in Input) []model.Alert {
	alerts := make([]model.Alert, 0, len(p.rules))
	for _, r := range p.rules {
		if a, ok := r(p, in); ok {
			alerts = append(alerts, a)
		}
	}
	return alerts
}

// Emergency builds the single alert emitted for an emergency expense.
func (p *Pipeline) Emergency(amount model.Money) model.Alert {
	return model.Alert{
		Kind: model.AlertEmergency,
		Text: fmt.Sprintf("✅ Emergency expense (%s) deducted from savings without penalty.", p.money(amount)),
	}
}

func (p *Pipeline) money(m model.Money) string {
	return m.Format(p.currency)
}

// Emotional flags stressed or sad purchases outside study and medicine.
func Emotional(_ *Pipeline, in Input) (model.Alert, bool) {
	if in.Expense.Mood != model.MoodStressed && in.Expense.Mood != model.MoodSad {
		return model.Alert{}, false
	}
	switch in.Expense.Category {
	case model.CategoryStudy, model.CategoryMedicine:
		return model.Alert{}, false
	}
	return model.Alert{
		Kind: model.AlertEmotional,
		Text: "⚠️ Avoid emotional shopping! This is a stressful purchase.",
	}, true
}

// DailyLimit flags a day whose spend, including this expense, is over the limit.
func DailyLimit(p *Pipeline, in Input) (model.Alert, bool) {
	if in.TodaySpending <= in.DailyLimit {
		return model.Alert{}, false
	}
	return model.Alert{
		Kind: model.AlertLimit,
		Text: fmt.Sprintf("⚠️ Daily limit exceeded! You've spent %s today (limit: %s)",
			p.money(in.TodaySpending), p.money(in.DailyLimit)),
	}, true
}

// RisingTrend flags three strictly increasing expenses in a row.
func RisingTrend(_ *Pipeline, in Input) (model.Alert, bool) {
	if len(in.Previous) != 2 {
		return model.Alert{}, false
	}
	if !(in.Previous[0].Amount < in.Previous[1].Amount && in.Previous[1].Amount < in.Expense.Amount) {
		return model.Alert{}, false
	}
	return model.Alert{
		Kind: model.AlertTrend,
		Text: "📈 Increasing expenses detected! Your spending is rising consecutively.",
	}, true
}

// Runway projects the average spend per expense over the days left in the month and
// flags it when the projection overshoots the remaining budget.
//
// avg = total / max(1, count) and daysLeft = 30 - ceil(count/3). The comparison
// avg*daysLeft > remaining is done as total*daysLeft > remaining*max(1, count) so no
// precision is lost to division.
func Runway(p *Pipeline, in Input) (model.Alert, bool) {
	if in.TotalSpending <= 0 {
		return model.Alert{}, false
	}

	n := max(1, in.ExpenseCount)
	daysLeft := budget.DaysPerMonth - ceilDivInt(in.ExpenseCount, 3)

	total := decimal.NewFromInt(int64(in.TotalSpending))
	count := decimal.NewFromInt(int64(n))
	remaining := decimal.NewFromInt(int64(in.RemainingBudget))

	projected := total.Mul(decimal.NewFromInt(int64(daysLeft)))
	scaledRemaining := remaining.Mul(count)
	if !projected.GreaterThan(scaledRemaining) {
		return model.Alert{}, false
	}

	days := ceilDiv(scaledRemaining, total)
	return model.Alert{
		Kind: model.AlertProjection,
		Text: fmt.Sprintf("⚠️ Budget Alert: At this rate, you'll run out of money in %s days!", days.String()),
	}, true
}

func ceilDivInt(a, b int) int {
	return (a + b - 1) / b
}

// ceilDiv rounds num/den toward positive infinity. den must be positive.
func ceilDiv(num, den decimal.Decimal) decimal.Decimal {
	q, r := num.QuoRem(den, 0)
	if r.IsPositive() {
		q = q.Add(decimal.NewFromInt(1))
	}
	return q
}
