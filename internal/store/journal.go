// Package store provides the SQLite-backed event journal that persists engine commands.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/theirongolddev/pocketguard/internal/model"

	_ "modernc.org/sqlite" // register sqlite driver
)

// Kind names a journaled engine command.
type Kind string

const (
	KindBudgetSet     Kind = "budget_set"
	KindExpense       Kind = "expense"
	KindEmergency     Kind = "emergency"
	KindDayBoundary   Kind = "day_boundary"
	KindAlertsCleared Kind = "alerts_cleared"
	KindTip           Kind = "tip"
)

// Event is one journal row. Only the fields relevant to Kind are set.
type Event struct {
	Seq       int64
	Kind      Kind
	At        time.Time
	Amount    model.Money
	Category  model.Category
	Mood      model.Mood
	ExpenseID uuid.UUID
	Text      string
}

// Journal is an append-only log of engine commands.
type Journal struct {
	db *sql.DB
}

// Open opens or creates the journal database at the given path.
func Open(dbPath string) (*Journal, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating journal dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening journal db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Journal{db: db}, nil
}

// Close closes the journal database.
func (j *Journal) Close() error {
	return j.db.Close()
}

// Append writes one event and returns its sequence number.
func (j *Journal) Append(e Event) (int64, error) {
	var expenseID sql.NullString
	if e.ExpenseID != uuid.Nil {
		expenseID = sql.NullString{String: e.ExpenseID.String(), Valid: true}
	}

	res, err := j.db.Exec(`INSERT INTO events
		(kind, at, amount, category, mood, expense_id, text, recorded_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		string(e.Kind), e.At.UTC().Format(time.RFC3339Nano), int64(e.Amount),
		nullable(string(e.Category)), nullable(string(e.Mood)), expenseID, nullable(e.Text),
		time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return 0, fmt.Errorf("appending %s event: %w", e.Kind, err)
	}
	return res.LastInsertId()
}

// Events reads the whole journal in sequence order.
func (j *Journal) Events() ([]Event, error) {
	rows, err := j.db.Query(`SELECT seq, kind, at, amount, category, mood, expense_id, text
		FROM events ORDER BY seq`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var events []Event
	for rows.Next() {
		var e Event
		var kind, at string
		var amount int64
		var category, mood, expenseID, text sql.NullString

		if err := rows.Scan(&e.Seq, &kind, &at, &amount, &category, &mood, &expenseID, &text); err != nil {
			return nil, err
		}

		e.Kind = Kind(kind)
		e.Amount = model.Money(amount)
		e.Category = model.Category(category.String)
		e.Mood = model.Mood(mood.String)
		e.Text = text.String
		if e.At, err = time.Parse(time.RFC3339Nano, at); err != nil {
			return nil, fmt.Errorf("event %d: bad timestamp %q: %w", e.Seq, at, err)
		}
		if expenseID.Valid {
			if e.ExpenseID, err = uuid.Parse(expenseID.String); err != nil {
				return nil, fmt.Errorf("event %d: bad expense id: %w", e.Seq, err)
			}
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

// Count returns the number of journaled events.
func (j *Journal) Count() (int, error) {
	var count int
	err := j.db.QueryRow("SELECT COUNT(*) FROM events").Scan(&count)
	return count, err
}

func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
