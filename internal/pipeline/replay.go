// Package pipeline connects the engine to its event journal: it replays the journal
// into a fresh engine on load and journals every change a host makes.
package pipeline

import (
	"fmt"

	"github.com/theirongolddev/pocketguard/internal/engine"
	"github.com/theirongolddev/pocketguard/internal/store"
)

// Replay applies journaled events to eng in order. Recorded IDs, timestamps and tip
// texts are reused so the rebuilt state matches what the user saw.
func Replay(eng *engine.Engine, events []store.Event) error {
	for _, ev := range events {
		if err := apply(eng, ev); err != nil {
			return fmt.Errorf("replaying event %d (%s): %w", ev.Seq, ev.Kind, err)
		}
	}
	return nil
}

func apply(eng *engine.Engine, ev store.Event) error {
	switch ev.Kind {
	case store.KindBudgetSet:
		_, err := eng.SetMonthlyBudget(ev.Amount)
		return err
	case store.KindExpense:
		_, err := eng.RecordExpense(engine.ExpenseInput{
			ID:       ev.ExpenseID,
			Amount:   ev.Amount,
			Category: ev.Category,
			Mood:     ev.Mood,
			At:       ev.At,
		})
		return err
	case store.KindEmergency:
		_, err := eng.RecordEmergencyExpense(engine.EmergencyInput{
			ID:     ev.ExpenseID,
			Amount: ev.Amount,
			At:     ev.At,
		})
		return err
	case store.KindDayBoundary:
		eng.OnDayBoundary()
	case store.KindAlertsCleared:
		eng.ClearAlerts()
	case store.KindTip:
		eng.RestoreTip(ev.Text)
	default:
		return fmt.Errorf("unknown event kind %q", ev.Kind)
	}
	return nil
}
