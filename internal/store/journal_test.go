package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theirongolddev/pocketguard/internal/model"
)

func openTestJournal(t *testing.T) *Journal {
	t.Helper()
	j, err := Open(filepath.Join(t.TempDir(), "nested", "journal.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = j.Close() })
	return j
}

func TestAppendAndReadBack(t *testing.T) {
	j := openTestJournal(t)
	at := time.Date(2026, 5, 2, 18, 4, 5, 123456789, time.UTC)
	id := uuid.New()

	in := []Event{
		{Kind: KindBudgetSet, At: at, Amount: 5000},
		{Kind: KindExpense, At: at, Amount: 120, Category: model.CategoryFood, Mood: model.MoodSad, ExpenseID: id},
		{Kind: KindEmergency, At: at, Amount: 900, ExpenseID: uuid.New()},
		{Kind: KindDayBoundary, At: at},
		{Kind: KindTip, At: at, Text: "Track snacks – you could save ₹15 daily"},
		{Kind: KindAlertsCleared, At: at},
	}
	for i, e := range in {
		seq, err := j.Append(e)
		require.NoError(t, err)
		assert.Equal(t, int64(i+1), seq)
	}

	out, err := j.Events()
	require.NoError(t, err)
	require.Len(t, out, len(in))

	for i := range in {
		in[i].Seq = int64(i + 1)
		assert.Equal(t, in[i], out[i])
	}
	assert.Equal(t, id, out[1].ExpenseID)

	count, err := j.Count()
	require.NoError(t, err)
	assert.Equal(t, len(in), count)
}

func TestTimestampsStoredInUTC(t *testing.T) {
	j := openTestJournal(t)
	local := time.Date(2026, 1, 1, 8, 0, 0, 0, time.FixedZone("IST", 5*3600+1800))

	_, err := j.Append(Event{Kind: KindDayBoundary, At: local})
	require.NoError(t, err)

	out, err := j.Events()
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.True(t, local.Equal(out[0].At))
	assert.Equal(t, time.UTC, out[0].At.Location())
}

func TestDuplicateExpenseIDRejected(t *testing.T) {
	j := openTestJournal(t)
	id := uuid.New()

	_, err := j.Append(Event{Kind: KindExpense, At: time.Now(), Amount: 1, ExpenseID: id})
	require.NoError(t, err)
	_, err = j.Append(Event{Kind: KindExpense, At: time.Now(), Amount: 1, ExpenseID: id})
	assert.Error(t, err)
}

func TestReopenKeepsEvents(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journal.db")
	j, err := Open(path)
	require.NoError(t, err)
	_, err = j.Append(Event{Kind: KindBudgetSet, At: time.Now(), Amount: 800})
	require.NoError(t, err)
	require.NoError(t, j.Close())

	j, err = Open(path)
	require.NoError(t, err)
	defer j.Close()

	events, err := j.Events()
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, model.Money(800), events[0].Amount)
}

func TestEmptyJournal(t *testing.T) {
	j := openTestJournal(t)
	events, err := j.Events()
	require.NoError(t, err)
	assert.Empty(t, events)
}
