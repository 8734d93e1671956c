// Package report builds the report card from the current budget, ledger and rewards.
package report

import (
	"github.com/theirongolddev/pocketguard/internal/budget"
	"github.com/theirongolddev/pocketguard/internal/model"
)

// Spending is the part of the ledger a report reads.
type Spending interface {
	TotalSpending() model.Money
	CategoryTotals() map[model.Category]model.Money
}

// Generate computes a fresh snapshot. It has no side effects.
//
// TotalSavings adds unspent usable funds on top of the auto-saved amount.
func Generate(alloc model.BudgetAllocation, spending Spending, rewards model.RewardState) model.ReportSnapshot {
	total := spending.TotalSpending()
	remaining := alloc.Usable - total

	return model.ReportSnapshot{
		TotalSpending:    total,
		TotalSavings:     alloc.Savings + remaining,
		RemainingBudget:  remaining,
		OverspendingDays: OverspendingDays(total, alloc.DailyLimit),
		RewardPoints:     rewards.Points,
		CategoryTotals:   spending.CategoryTotals(),
	}
}

// OverspendingDays is how many days' worth of limit the total has gone past the month.
func OverspendingDays(total, dailyLimit model.Money) int {
	limit := max(1, dailyLimit)
	spanned := total / limit
	if total%limit != 0 {
		spanned++
	}
	days := int(spanned) - budget.DaysPerMonth
	return max(0, days)
}
