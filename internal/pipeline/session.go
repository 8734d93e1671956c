package pipeline

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/theirongolddev/pocketguard/internal/engine"
	"github.com/theirongolddev/pocketguard/internal/model"
	"github.com/theirongolddev/pocketguard/internal/store"
)

// Options configures Open.
type Options struct {
	// JournalPath is the SQLite journal. Empty runs the session in memory only.
	JournalPath string
	Engine      engine.Options
}

// Session is an engine backed by a journal. Each mutating call is applied to the engine
// first and journaled after, so an invalid input never reaches the journal.
//
// A Session is not safe for concurrent use; hosts serialize calls the same way they
// would for a bare engine.
type Session struct {
	eng     *engine.Engine
	journal *store.Journal
	now     func() time.Time

	// Replayed is how many journal events were applied on open.
	Replayed int
}

// Open builds an engine from opts.Engine and replays the journal into it. A new journal
// records the starting budget as its first event. A journal that already has events
// keeps its own starting budget, so opts.Engine.MonthlyBudget only matters for a new
// or in-memory session.
func Open(opts Options) (*Session, error) {
	now := opts.Engine.Now
	if now == nil {
		now = time.Now
	}
	if opts.JournalPath == "" {
		eng, err := engine.New(opts.Engine)
		if err != nil {
			return nil, err
		}
		return &Session{eng: eng, now: now}, nil
	}

	j, err := store.Open(opts.JournalPath)
	if err != nil {
		return nil, err
	}
	events, err := j.Events()
	if err != nil {
		_ = j.Close()
		return nil, fmt.Errorf("reading journal: %w", err)
	}

	engOpts := opts.Engine
	if amount, ok := startingBudget(events); ok {
		engOpts.MonthlyBudget = amount
	}
	eng, err := engine.New(engOpts)
	if err != nil {
		_ = j.Close()
		return nil, err
	}

	s := &Session{eng: eng, journal: j, now: now}
	if err := Replay(eng, events); err != nil {
		_ = j.Close()
		return nil, err
	}
	s.Replayed = len(events)

	if len(events) == 0 {
		if err := s.record(store.Event{Kind: store.KindBudgetSet, Amount: opts.Engine.MonthlyBudget}); err != nil {
			_ = j.Close()
			return nil, err
		}
	}
	return s, nil
}

// startingBudget returns the first journaled budget.
func startingBudget(events []store.Event) (model.Money, bool) {
	for _, ev := range events {
		if ev.Kind == store.KindBudgetSet {
			return ev.Amount, true
		}
	}
	return 0, false
}

// Close closes the journal, if any.
func (s *Session) Close() error {
	if s.journal == nil {
		return nil
	}
	return s.journal.Close()
}

// Persistent reports whether changes are journaled.
func (s *Session) Persistent() bool {
	return s.journal != nil
}

// SetMonthlyBudget replaces the allocation.
func (s *Session) SetMonthlyBudget(amount model.Money) (model.BudgetAllocation, error) {
	alloc, err := s.eng.SetMonthlyBudget(amount)
	if err != nil {
		return alloc, err
	}
	return alloc, s.record(store.Event{Kind: store.KindBudgetSet, Amount: amount})
}

// RecordExpense records a regular expense.
func (s *Session) RecordExpense(in engine.ExpenseInput) (engine.ExpenseResult, error) {
	res, err := s.eng.RecordExpense(in)
	if err != nil {
		return res, err
	}
	return res, s.record(store.Event{
		Kind:      store.KindExpense,
		At:        res.Record.Timestamp,
		Amount:    res.Record.Amount,
		Category:  res.Record.Category,
		Mood:      res.Record.Mood,
		ExpenseID: res.Record.ID,
	})
}

// RecordEmergencyExpense records an emergency expense.
func (s *Session) RecordEmergencyExpense(in engine.EmergencyInput) (engine.EmergencyResult, error) {
	res, err := s.eng.RecordEmergencyExpense(in)
	if err != nil {
		return res, err
	}
	return res, s.record(store.Event{
		Kind:      store.KindEmergency,
		At:        res.Record.Timestamp,
		Amount:    res.Record.Amount,
		ExpenseID: res.Record.ID,
	})
}

// RequestMicroSavingTip adds a random tip alert.
func (s *Session) RequestMicroSavingTip() (model.Alert, error) {
	alert := s.eng.RequestMicroSavingTip()
	return alert, s.record(store.Event{
		Kind: store.KindTip,
		Text: strings.TrimPrefix(alert.Text, engine.TipPrefix),
	})
}

// ClearAlerts empties the alert list.
func (s *Session) ClearAlerts() error {
	s.eng.ClearAlerts()
	return s.record(store.Event{Kind: store.KindAlertsCleared})
}

// OnDayBoundary starts a new day.
func (s *Session) OnDayBoundary() error {
	s.eng.OnDayBoundary()
	return s.record(store.Event{Kind: store.KindDayBoundary})
}

// Report computes a fresh report card.
func (s *Session) Report() model.ReportSnapshot { return s.eng.Report() }

// Allocation returns the current budget split.
func (s *Session) Allocation() model.BudgetAllocation { return s.eng.Allocation() }

// Ledger returns a copy of the ledger state.
func (s *Session) Ledger() model.LedgerState { return s.eng.Ledger() }

// Reward returns the streak and points.
func (s *Session) Reward() model.RewardState { return s.eng.Reward() }

// Alerts returns the active alerts, oldest first.
func (s *Session) Alerts() []model.Alert { return s.eng.Alerts() }

// Recent returns up to the last n expenses, oldest first.
func (s *Session) Recent(n int) []model.ExpenseRecord { return s.eng.Recent(n) }

// RemainingBudget is the usable amount minus everything spent.
func (s *Session) RemainingBudget() model.Money { return s.eng.RemainingBudget() }

// Currency returns the symbol used in alert texts.
func (s *Session) Currency() string { return s.eng.Currency() }

// ErrJournal marks a change that was applied in memory but could not be journaled.
// The in-memory state is ahead of the journal until the process restarts.
var ErrJournal = errors.New("journal write failed")

func (s *Session) record(ev store.Event) error {
	if s.journal == nil {
		return nil
	}
	if ev.At.IsZero() {
		ev.At = s.now()
	}
	if _, err := s.journal.Append(ev); err != nil {
		return fmt.Errorf("%w: %w", ErrJournal, err)
	}
	return nil
}
