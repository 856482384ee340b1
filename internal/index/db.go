package index

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// TimeLayout is how message timestamps are stored. It sorts
// lexically in time order.
const TimeLayout = "2006-01-02T15:04:05"

const schema = `
PRAGMA journal_mode = MEMORY;
PRAGMA synchronous = OFF;
PRAGMA cache_size = -64000;

CREATE TABLE IF NOT EXISTS messages (
    seq     INTEGER PRIMARY KEY,
    line    INTEGER NOT NULL,
    ts      TEXT NOT NULL,
    sender  TEXT NOT NULL,
    system  INTEGER NOT NULL DEFAULT 0,
    body    TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS messages_sender ON messages(sender);

CREATE VIRTUAL TABLE IF NOT EXISTS messages_fts USING fts5(
    body,
    content=messages,
    content_rowid=seq,
    tokenize='unicode61'
);

-- trigger to keep FTS in sync
CREATE TRIGGER IF NOT EXISTS messages_ai AFTER INSERT ON messages BEGIN
    INSERT INTO messages_fts(rowid, body) VALUES (new.seq, new.body);
END;
`

// DB is an in-memory SQLite index over one transcript. It lives for a
// single command run and is never written to disk.
type DB struct {
	db *sql.DB
}

func OpenMemory() (*DB, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	// every pooled connection would get its own empty :memory: database
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}
	return &DB{db: db}, nil
}

func (d *DB) Close() error {
	return d.db.Close()
}

func (d *DB) Raw() *sql.DB {
	return d.db
}

func (d *DB) MessageCount() (int, error) {
	var n int
	err := d.db.QueryRow("SELECT COUNT(*) FROM messages").Scan(&n)
	return n, err
}

// FTSCount counts the rows visible through the full-text index.
func (d *DB) FTSCount() (int, error) {
	var n int
	err := d.db.QueryRow("SELECT COUNT(*) FROM messages_fts").Scan(&n)
	return n, err
}

type MessageRow struct {
	Seq    int
	Line   int
	Ts     string
	Sender string
	System bool
	Body   string
}

// GetMessage returns the message at corpus position seq, or nil.
func (d *DB) GetMessage(seq int) (*MessageRow, error) {
	var m MessageRow
	err := d.db.QueryRow(
		"SELECT seq, line, ts, sender, system, body FROM messages WHERE seq = ?",
		seq,
	).Scan(&m.Seq, &m.Line, &m.Ts, &m.Sender, &m.System, &m.Body)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}
