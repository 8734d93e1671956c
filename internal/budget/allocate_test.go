package budget

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theirongolddev/pocketguard/internal/model"
)

func TestAllocate(t *testing.T) {
	tests := []struct {
		budget                 model.Money
		savings, usable, daily model.Money
	}{
		{5000, 500, 4500, 150},
		{999, 99, 899, 29},
		{1, 0, 0, 0},
		{10, 1, 9, 0},
		{33, 3, 29, 0},
		{1000, 100, 900, 30},
		{12345, 1234, 11110, 370},
	}

	for _, tt := range tests {
		got, err := Allocate(tt.budget)
		require.NoError(t, err)
		assert.Equal(t, tt.budget, got.MonthlyBudget)
		assert.Equal(t, tt.savings, got.Savings, "savings for %d", tt.budget)
		assert.Equal(t, tt.usable, got.Usable, "usable for %d", tt.budget)
		assert.Equal(t, tt.daily, got.DailyLimit, "daily limit for %d", tt.budget)
		assert.Equal(t, got.Usable/DaysPerMonth, got.DailyLimit)
	}
}

func TestAllocateRejectsNonPositive(t *testing.T) {
	for _, b := range []model.Money{0, -5} {
		_, err := Allocate(b)
		assert.ErrorIs(t, err, model.ErrInvalidBudget)
	}
}
