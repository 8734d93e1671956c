package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theirongolddev/pocketguard/internal/model"
)

func expense(amount model.Money, cat model.Category, mood model.Mood) model.ExpenseRecord {
	return model.ExpenseRecord{Amount: amount, Category: cat, Mood: mood}
}

func kinds(alerts []model.Alert) []model.AlertKind {
	out := make([]model.AlertKind, 0, len(alerts))
	for _, a := range alerts {
		out = append(out, a.Kind)
	}
	return out
}

// quiet returns an input that trips no rule on its own.
func quiet(e model.ExpenseRecord) Input {
	return Input{
		Expense:         e,
		TodaySpending:   e.Amount,
		DailyLimit:      150,
		RemainingBudget: 4500,
	}
}

func TestEmotionalRule(t *testing.T) {
	p := New("₹")

	tests := []struct {
		cat  model.Category
		mood model.Mood
		want bool
	}{
		{model.CategoryFood, model.MoodStressed, true},
		{model.CategoryEntertainment, model.MoodSad, true},
		{model.CategoryStudy, model.MoodStressed, false},
		{model.CategoryMedicine, model.MoodSad, false},
		{model.CategoryFood, model.MoodHappy, false},
		{model.CategoryFood, model.MoodNeutral, false},
	}

	for _, tt := range tests {
		_, got := Emotional(p, quiet(expense(10, tt.cat, tt.mood)))
		assert.Equal(t, tt.want, got, "%s/%s", tt.cat, tt.mood)
	}
}

func TestDailyLimitRule(t *testing.T) {
	p := New("₹")

	in := quiet(expense(10, model.CategoryFood, model.MoodNeutral))
	in.TodaySpending = 150
	_, fired := DailyLimit(p, in)
	assert.False(t, fired, "equal to the limit is still within it")

	in.TodaySpending = 151
	a, fired := DailyLimit(p, in)
	require.True(t, fired)
	assert.Equal(t, model.AlertLimit, a.Kind)
	assert.Equal(t, "⚠️ Daily limit exceeded! You've spent ₹151 today (limit: ₹150)", a.Text)
}

func TestRisingTrendRule(t *testing.T) {
	p := New("₹")
	in := quiet(expense(30, model.CategoryFood, model.MoodNeutral))

	in.Previous = []model.ExpenseRecord{expense(20, model.CategoryFood, model.MoodNeutral)}
	_, fired := RisingTrend(p, in)
	assert.False(t, fired, "needs two prior expenses")

	in.Previous = []model.ExpenseRecord{
		expense(10, model.CategoryFood, model.MoodNeutral),
		expense(20, model.CategoryFood, model.MoodNeutral),
	}
	a, fired := RisingTrend(p, in)
	require.True(t, fired)
	assert.Equal(t, model.AlertTrend, a.Kind)

	in.Previous[1].Amount = 30
	_, fired = RisingTrend(p, in)
	assert.False(t, fired, "equal amounts are not strictly increasing")
}

func TestRunwayRule(t *testing.T) {
	p := New("₹")

	t.Run("no history", func(t *testing.T) {
		in := quiet(expense(100, model.CategoryFood, model.MoodNeutral))
		_, fired := Runway(p, in)
		assert.False(t, fired)
	})

	t.Run("comfortable", func(t *testing.T) {
		// avg 100 * (30-1) days = 2900 <= 4400
		in := quiet(expense(100, model.CategoryFood, model.MoodNeutral))
		in.TotalSpending = 100
		in.ExpenseCount = 1
		in.RemainingBudget = 4400
		_, fired := Runway(p, in)
		assert.False(t, fired)
	})

	t.Run("overshoot", func(t *testing.T) {
		// avg 1000 * 29 days = 29000 > 3500 -> ceil(3500/1000) = 4 days
		in := quiet(expense(100, model.CategoryFood, model.MoodNeutral))
		in.TotalSpending = 1000
		in.ExpenseCount = 1
		in.RemainingBudget = 3500
		a, fired := Runway(p, in)
		require.True(t, fired)
		assert.Equal(t, model.AlertProjection, a.Kind)
		assert.Equal(t, "⚠️ Budget Alert: At this rate, you'll run out of money in 4 days!", a.Text)
	})

	t.Run("repeating average stays exact", func(t *testing.T) {
		// avg 100/3, remaining 3000 -> exactly 90 days, no rounding up
		in := quiet(expense(10, model.CategoryFood, model.MoodNeutral))
		in.TotalSpending = 100
		in.ExpenseCount = 3
		in.RemainingBudget = 3000
		in.DailyLimit = 0
		_, fired := Runway(p, in)
		assert.False(t, fired, "100/3 * 29 = 966 < 3000")

		// 100 / (100/3) is exactly 3
		in.RemainingBudget = 100
		a, fired := Runway(p, in)
		require.True(t, fired)
		assert.Contains(t, a.Text, "in 3 days")
	})

	t.Run("exhausted budget", func(t *testing.T) {
		in := quiet(expense(10, model.CategoryFood, model.MoodNeutral))
		in.TotalSpending = 500
		in.ExpenseCount = 2
		in.RemainingBudget = -100
		a, fired := Runway(p, in)
		require.True(t, fired)
		assert.Contains(t, a.Text, "in 0 days")
	})
}

func TestEvaluateOrder(t *testing.T) {
	p := New("₹")
	in := Input{
		Expense: expense(300, model.CategoryFood, model.MoodSad),
		Previous: []model.ExpenseRecord{
			expense(100, model.CategoryFood, model.MoodNeutral),
			expense(200, model.CategoryFood, model.MoodNeutral),
		},
		TodaySpending:   600,
		DailyLimit:      150,
		TotalSpending:   300,
		RemainingBudget: 400,
		ExpenseCount:    2,
	}

	got := p.Evaluate(in)
	assert.Equal(t, []model.AlertKind{
		model.AlertEmotional,
		model.AlertLimit,
		model.AlertTrend,
		model.AlertProjection,
	}, kinds(got))
}

func TestEvaluateNothing(t *testing.T) {
	p := New("₹")
	got := p.Evaluate(quiet(expense(10, model.CategoryFood, model.MoodHappy)))
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestEmergencyAlert(t *testing.T) {
	a := New("$").Emergency(250)
	assert.Equal(t, model.AlertEmergency, a.Kind)
	assert.Equal(t, "✅ Emergency expense ($250) deducted from savings without penalty.", a.Text)
}
