package store

const schemaSQL = `
CREATE TABLE IF NOT EXISTS events (
    seq                  INTEGER PRIMARY KEY AUTOINCREMENT,
    kind                 TEXT NOT NULL,
    at                   TEXT NOT NULL,
    amount               INTEGER NOT NULL DEFAULT 0,
    category             TEXT,
    mood                 TEXT,
    expense_id           TEXT,
    text                 TEXT,
    recorded_at          TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_events_kind ON events(kind);
CREATE UNIQUE INDEX IF NOT EXISTS idx_events_expense ON events(expense_id) WHERE expense_id IS NOT NULL;
`
