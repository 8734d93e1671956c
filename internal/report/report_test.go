package report

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/theirongolddev/pocketguard/internal/model"
)

type fakeSpending struct {
	total  model.Money
	totals map[model.Category]model.Money
}

func (f fakeSpending) TotalSpending() model.Money { return f.total }
func (f fakeSpending) CategoryTotals() map[model.Category]model.Money { return f.totals }

var alloc5000 = model.BudgetAllocation{MonthlyBudget: 5000, Savings: 500, Usable: 4500, DailyLimit: 150}

func TestGenerate(t *testing.T) {
	spend := fakeSpending{
		total: 1200,
		totals: map[model.Category]model.Money{
			model.CategoryFood:      900,
			model.CategoryEmergency: 300,
		},
	}

	got := Generate(alloc5000, spend, model.RewardState{Points: 20, ConsecutiveInBudgetDays: 7})

	assert.Equal(t, model.Money(1200), got.TotalSpending)
	assert.Equal(t, model.Money(3300), got.RemainingBudget)
	assert.Equal(t, model.Money(3800), got.TotalSavings, "savings include unspent usable funds")
	assert.Equal(t, 0, got.OverspendingDays)
	assert.Equal(t, 20, got.RewardPoints)
	assert.Equal(t, spend.totals, got.CategoryTotals)
	assert.True(t, got.OnTrack())
}

func TestGenerateOverspent(t *testing.T) {
	got := Generate(alloc5000, fakeSpending{total: 5000}, model.RewardState{})

	assert.Equal(t, model.Money(-500), got.RemainingBudget)
	assert.Equal(t, model.Money(0), got.TotalSavings)
	assert.Equal(t, 4, got.OverspendingDays) // ceil(5000/150)=34
	assert.False(t, got.OnTrack())
}

func TestOverspendingDays(t *testing.T) {
	tests := []struct {
		total, limit model.Money
		want         int
	}{
		{0, 150, 0},
		{4500, 150, 0},
		{4501, 150, 1},
		{31, 0, 1},
		{30, 0, 0},
		{math.MaxInt64, 150, math.MaxInt64/150 + 1 - 30},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, OverspendingDays(tt.total, tt.limit), "total=%d limit=%d", tt.total, tt.limit)
	}
}
