// Package ledger keeps the ordered expense history and its running totals.
package ledger

import (
	"fmt"
	"math"

	"github.com/theirongolddev/pocketguard/internal/model"
)

// Ledger is an append-only sequence of expense records.
//
// TotalSpending always equals the sum over all records. TodaySpending equals the sum of
// non-emergency records appended since the last ResetToday.
type Ledger struct {
	records []model.ExpenseRecord
	total   model.Money
	today   model.Money
}

// New returns an empty ledger.
func New() *Ledger {
	return &Ledger{}
}

// Append adds a record at the end of the history.
// Emergency records count toward the total but not toward today's spending.
// An amount that would overflow the total is rejected and nothing changes.
func (l *Ledger) Append(r model.ExpenseRecord) error {
	if err := l.CanAppend(r.Amount); err != nil {
		return err
	}

	l.records = append(l.records, r)
	l.total += r.Amount
	if !r.IsEmergency {
		l.today += r.Amount
	}
	return nil
}

// CanAppend reports whether amount can be added to the running totals.
// Today's spending never exceeds the total, so checking the total covers both.
func (l *Ledger) CanAppend(amount model.Money) error {
	if amount <= 0 {
		return fmt.Errorf("%w: %d", model.ErrInvalidAmount, amount)
	}
	if amount > math.MaxInt64-l.total {
		return fmt.Errorf("%w: %d would overflow total spending %d", model.ErrInvalidAmount, amount, l.total)
	}
	return nil
}

// ResetToday zeroes today's spending. History and the total are untouched.
func (l *Ledger) ResetToday() {
	l.today = 0
}

// Len returns the number of recorded expenses.
func (l *Ledger) Len() int {
	return len(l.records)
}

// TotalSpending returns the sum of every recorded amount.
func (l *Ledger) TotalSpending() model.Money {
	return l.total
}

// TodaySpending returns the spend since the last reset.
func (l *Ledger) TodaySpending() model.Money {
	return l.today
}

// CategoryTotals sums amounts per category across the full history.
func (l *Ledger) CategoryTotals() map[model.Category]model.Money {
	totals := make(map[model.Category]model.Money)
	for _, r := range l.records {
		totals[r.Category] += r.Amount
	}
	return totals
}

// Recent returns up to the last n records in insertion order.
func (l *Ledger) Recent(n int) []model.ExpenseRecord {
	if n <= 0 {
		return nil
	}
	if n > len(l.records) {
		n = len(l.records)
	}
	out := make([]model.ExpenseRecord, n)
	copy(out, l.records[len(l.records)-n:])
	return out
}

// State returns a copy of the ledger contents and totals.
func (l *Ledger) State() model.LedgerState {
	expenses := make([]model.ExpenseRecord, len(l.records))
	copy(expenses, l.records)
	return model.LedgerState{
		Expenses:      expenses,
		TodaySpending: l.today,
		TotalSpending: l.total,
	}
}
