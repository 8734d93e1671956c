// Package budget splits a monthly budget into savings, usable and daily-limit buckets.
package budget

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/theirongolddev/pocketguard/internal/model"
)

// DaysPerMonth is the fixed month length used for the daily limit and runway math.
const DaysPerMonth = 30

var (
	savingsRate = decimal.RequireFromString("0.10")
	usableRate  = decimal.RequireFromString("0.90")
	monthDays   = decimal.NewFromInt(DaysPerMonth)
)

// Allocate computes the allocation for a monthly budget.
// Each bucket is floored independently, so Savings+Usable may be one unit short of the budget.
func Allocate(monthly model.Money) (model.BudgetAllocation, error) {
	if monthly <= 0 {
		return model.BudgetAllocation{}, fmt.Errorf("%w: %d", model.ErrInvalidBudget, monthly)
	}

	b := decimal.NewFromInt(int64(monthly))
	usable := b.Mul(usableRate).Floor()

	return model.BudgetAllocation{
		MonthlyBudget: monthly,
		Savings:       model.Money(b.Mul(savingsRate).Floor().IntPart()),
		Usable:        model.Money(usable.IntPart()),
		DailyLimit:    model.Money(usable.Div(monthDays).Floor().IntPart()),
	}, nil
}
