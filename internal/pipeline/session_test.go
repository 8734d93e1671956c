package pipeline

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theirongolddev/pocketguard/internal/engine"
	"github.com/theirongolddev/pocketguard/internal/model"
	"github.com/theirongolddev/pocketguard/internal/store"
)

type fixedSource int

func (f fixedSource) IntN(n int) int { return int(f) % n }

func testOptions(path string, pick int) Options {
	clock := time.Date(2026, 4, 1, 12, 0, 0, 0, time.UTC)
	return Options{
		JournalPath: path,
		Engine: engine.Options{
			MonthlyBudget: 5000,
			Currency:      "₹",
			Rand:          fixedSource(pick),
			Now: func() time.Time {
				clock = clock.Add(time.Minute)
				return clock
			},
		},
	}
}

func TestOpenNewJournalRecordsBudget(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journal.db")
	s, err := Open(testOptions(path, 0))
	require.NoError(t, err)
	assert.True(t, s.Persistent())
	assert.Equal(t, 0, s.Replayed)
	require.NoError(t, s.Close())

	j, err := store.Open(path)
	require.NoError(t, err)
	defer j.Close()
	events, err := j.Events()
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, store.KindBudgetSet, events[0].Kind)
	assert.Equal(t, model.Money(5000), events[0].Amount)
}

func TestReopenRebuildsState(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journal.db")
	s, err := Open(testOptions(path, 3))
	require.NoError(t, err)

	_, err = s.SetMonthlyBudget(3000)
	require.NoError(t, err)
	for _, amount := range []model.Money{10, 20, 30} {
		_, err = s.RecordExpense(engine.ExpenseInput{Amount: amount, Category: model.CategoryFood, Mood: model.MoodStressed})
		require.NoError(t, err)
	}
	require.NoError(t, s.OnDayBoundary())
	_, err = s.RecordEmergencyExpense(engine.EmergencyInput{Amount: 700})
	require.NoError(t, err)
	_, err = s.RequestMicroSavingTip()
	require.NoError(t, err)

	want := struct {
		alloc  model.BudgetAllocation
		ledger model.LedgerState
		reward model.RewardState
		alerts []model.Alert
		report model.ReportSnapshot
	}{s.Allocation(), s.Ledger(), s.Reward(), s.Alerts(), s.Report()}
	require.NoError(t, s.Close())

	// A different random pick proves the tip comes from the journal.
	reopened, err := Open(testOptions(path, 1))
	require.NoError(t, err)
	defer reopened.Close()

	assert.Equal(t, 8, reopened.Replayed)
	assert.Equal(t, want.alloc, reopened.Allocation())
	assert.Equal(t, want.ledger, reopened.Ledger())
	assert.Equal(t, want.reward, reopened.Reward())
	assert.Equal(t, want.alerts, reopened.Alerts())
	assert.Equal(t, want.report, reopened.Report())
	assert.Equal(t, model.Money(0), reopened.Ledger().TodaySpending)
}

func TestClearAlertsIsJournaled(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journal.db")
	s, err := Open(testOptions(path, 0))
	require.NoError(t, err)
	_, err = s.RequestMicroSavingTip()
	require.NoError(t, err)
	require.NoError(t, s.ClearAlerts())
	require.NoError(t, s.Close())

	reopened, err := Open(testOptions(path, 0))
	require.NoError(t, err)
	defer reopened.Close()
	assert.Empty(t, reopened.Alerts())
}

func TestInvalidInputNotJournaled(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journal.db")
	s, err := Open(testOptions(path, 0))
	require.NoError(t, err)

	_, err = s.SetMonthlyBudget(0)
	assert.ErrorIs(t, err, model.ErrInvalidBudget)
	_, err = s.RecordExpense(engine.ExpenseInput{Amount: -3})
	assert.ErrorIs(t, err, model.ErrInvalidAmount)
	_, err = s.RecordEmergencyExpense(engine.EmergencyInput{})
	assert.ErrorIs(t, err, model.ErrInvalidAmount)
	require.NoError(t, s.Close())

	j, err := store.Open(path)
	require.NoError(t, err)
	defer j.Close()
	count, err := j.Count()
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestInMemorySession(t *testing.T) {
	s, err := Open(testOptions("", 0))
	require.NoError(t, err)
	assert.False(t, s.Persistent())

	res, err := s.RecordExpense(engine.ExpenseInput{Amount: 40, Category: model.CategoryTransport})
	require.NoError(t, err)
	assert.Equal(t, model.Money(40), res.Ledger.TotalSpending)
	assert.Equal(t, model.Money(4460), s.RemainingBudget())
	assert.Equal(t, "₹", s.Currency())
	assert.Len(t, s.Recent(5), 1)
	assert.NoError(t, s.Close())
}

func TestOpenRejectsInvalidBudget(t *testing.T) {
	opts := testOptions("", 0)
	opts.Engine.MonthlyBudget = 0
	_, err := Open(opts)
	assert.ErrorIs(t, err, model.ErrInvalidBudget)
}

func TestReopenKeepsJournaledBudget(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journal.db")
	s, err := Open(testOptions(path, 0))
	require.NoError(t, err)
	_, err = s.SetMonthlyBudget(3000)
	require.NoError(t, err)
	require.NoError(t, s.Close())

	opts := testOptions(path, 0)
	opts.Engine.MonthlyBudget = 0
	s, err = Open(opts)
	require.NoError(t, err)
	defer s.Close()

	assert.Equal(t, 2, s.Replayed)
	assert.Equal(t, model.Money(3000), s.Allocation().MonthlyBudget)
}

func TestNewJournalRejectsInvalidBudget(t *testing.T) {
	opts := testOptions(filepath.Join(t.TempDir(), "journal.db"), 0)
	opts.Engine.MonthlyBudget = 0
	_, err := Open(opts)
	assert.ErrorIs(t, err, model.ErrInvalidBudget)
}

func TestReplayUnknownKind(t *testing.T) {
	eng, err := engine.New(engine.Options{MonthlyBudget: 100})
	require.NoError(t, err)

	err = Replay(eng, []store.Event{{Seq: 4, Kind: "mystery"}})
	assert.ErrorContains(t, err, "replaying event 4")
}

func TestReplayInvalidAmount(t *testing.T) {
	eng, err := engine.New(engine.Options{MonthlyBudget: 100})
	require.NoError(t, err)

	err = Replay(eng, []store.Event{{Seq: 1, Kind: store.KindExpense, Amount: 0}})
	assert.ErrorIs(t, err, model.ErrInvalidAmount)
}
