// Package reward tracks the in-budget streak and awards points for it.
package reward

import (
	"fmt"

	"github.com/theirongolddev/pocketguard/internal/model"
)

const (
	// StreakCadence is how many in-budget evaluations earn one award.
	StreakCadence = 3
	// PointsPerAward is added to the balance on every award.
	PointsPerAward = 10
)

// Tracker holds the reward state for one engine instance.
type Tracker struct {
	state model.RewardState
}

// New returns a tracker with no streak and no points.
func New() *Tracker {
	return &Tracker{}
}

// State returns the current streak and points.
func (t *Tracker) State() model.RewardState {
	return t.state
}

// Observe records one regular expense evaluation. When today's spending is within the
// limit the streak grows, and every StreakCadence-th step awards points and returns
// the reward alert.
//
// Going over the limit leaves the streak where it is.
func (t *Tracker) Observe(today, limit model.Money) (model.Alert, bool) {
	if today > limit {
		return model.Alert{}, false
	}

	t.state.ConsecutiveInBudgetDays++
	streak := t.state.ConsecutiveInBudgetDays
	if streak%StreakCadence != 0 {
		return model.Alert{}, false
	}

	t.state.Points += PointsPerAward
	return model.Alert{
		Kind: model.AlertReward,
		Text: fmt.Sprintf("🎉 Great job! You stayed within budget for %d days! +%d points", streak, PointsPerAward),
	}, true
}
