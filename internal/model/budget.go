package model

import "time"

// BudgetAllocation is the split of one monthly budget into its buckets.
// All four fields are derived from MonthlyBudget and are only ever replaced together.
type BudgetAllocation struct {
	MonthlyBudget Money `json:"monthly_budget"`
	Savings       Money `json:"savings"`
	Usable        Money `json:"usable"`
	DailyLimit    Money `json:"daily_limit"`
}

// RewardState holds the in-budget streak and the points it has earned.
type RewardState struct {
	Points                  int `json:"points"`
	ConsecutiveInBudgetDays int `json:"consecutive_in_budget_days"`
}

// ReportSnapshot is the report card view over the current engine state.
type ReportSnapshot struct {
	TotalSpending    Money              `json:"total_spending"`
	TotalSavings     Money              `json:"total_savings"`
	RemainingBudget  Money              `json:"remaining_budget"`
	OverspendingDays int                `json:"overspending_days"`
	RewardPoints     int                `json:"reward_points"`
	CategoryTotals   map[Category]Money `json:"category_totals"`
}

// OnTrack reports whether any usable budget is left.
func (r ReportSnapshot) OnTrack() bool {
	return r.RemainingBudget > 0
}

// DailySpend totals the expenses recorded on one local calendar day.
type DailySpend struct {
	Date      time.Time `json:"date"`
	Spent     Money     `json:"spent"`
	Emergency Money     `json:"emergency"`
	Count     int       `json:"count"`
}

// MoodSpend totals regular spending under one mood.
type MoodSpend struct {
	Mood  Mood  `json:"mood"`
	Spent Money `json:"spent"`
	Count int   `json:"count"`
}
