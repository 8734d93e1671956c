package reward

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theirongolddev/pocketguard/internal/model"
)

func TestAwardEveryThirdStep(t *testing.T) {
	tr := New()

	_, ok := tr.Observe(10, 150)
	assert.False(t, ok)
	_, ok = tr.Observe(20, 150)
	assert.False(t, ok)

	a, ok := tr.Observe(150, 150)
	require.True(t, ok)
	assert.Equal(t, model.AlertReward, a.Kind)
	assert.Equal(t, "🎉 Great job! You stayed within budget for 3 days! +10 points", a.Text)
	assert.Equal(t, model.RewardState{Points: 10, ConsecutiveInBudgetDays: 3}, tr.State())

	for i := 0; i < 3; i++ {
		_, ok = tr.Observe(1, 150)
	}
	assert.True(t, ok)
	assert.Equal(t, 20, tr.State().Points)
	assert.Equal(t, 6, tr.State().ConsecutiveInBudgetDays)
}

func TestOverLimitKeepsStreak(t *testing.T) {
	tr := New()
	tr.Observe(10, 150)
	tr.Observe(10, 150)

	_, ok := tr.Observe(200, 150)
	assert.False(t, ok)
	assert.Equal(t, 2, tr.State().ConsecutiveInBudgetDays, "streak is not reset on an over-limit expense")

	_, ok = tr.Observe(10, 150)
	assert.True(t, ok, "third in-budget evaluation still awards")
}

func TestZeroLimit(t *testing.T) {
	tr := New()
	_, ok := tr.Observe(1, 0)
	assert.False(t, ok)
	assert.Equal(t, model.RewardState{}, tr.State())
}
