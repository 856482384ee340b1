package index

import (
	"fmt"
	"time"

	"github.com/Zuo-Peng/chat-analyzer/internal/parse"
)

type Stats struct {
	Messages int
	Elapsed  time.Duration
}

func (s Stats) String() string {
	return fmt.Sprintf("messages=%d elapsed=%s", s.Messages, s.Elapsed.Round(time.Millisecond))
}

// Build inserts every corpus message into db in one transaction.
func Build(db *DB, c *parse.Corpus) (Stats, error) {
	start := time.Now()
	var stats Stats

	tx, err := db.Raw().Begin()
	if err != nil {
		return stats, err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(
		`INSERT INTO messages (seq, line, ts, sender, system, body)
		 VALUES (?, ?, ?, ?, ?, ?)`,
	)
	if err != nil {
		return stats, err
	}
	defer stmt.Close()

	for i, m := range c.All() {
		_, err := stmt.Exec(
			i,
			m.Line,
			m.Timestamp.Format(TimeLayout),
			m.Sender.Name(),
			boolInt(m.Sender.IsSystem()),
			m.Body,
		)
		if err != nil {
			return stats, fmt.Errorf("insert message %d: %w", i, err)
		}
		stats.Messages++
	}

	if err := tx.Commit(); err != nil {
		return stats, err
	}
	stats.Elapsed = time.Since(start)
	return stats, nil
}

// Load opens an in-memory index and fills it from c.
func Load(c *parse.Corpus) (*DB, Stats, error) {
	db, err := OpenMemory()
	if err != nil {
		return nil, Stats{}, err
	}
	stats, err := Build(db, c)
	if err != nil {
		db.Close()
		return nil, stats, fmt.Errorf("index: %w", err)
	}
	return db, stats, nil
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
