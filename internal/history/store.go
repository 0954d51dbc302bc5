// Package history persists finished translations in a SQLite database
// so past sessions can be reviewed from the CLI.
package history

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/neeer4j/SignLang/internal/gesture"
)

// Entry is one stored translation.
type Entry struct {
	ID           int64
	Text         string
	Words        []string
	GestureCount int
	Duration     time.Duration
	Confidence   float64
	CreatedAt    time.Time
}

// Store wraps the translations database.
type Store struct {
	db *sql.DB
}

const schema = `
CREATE TABLE IF NOT EXISTS translations (
	id            INTEGER PRIMARY KEY AUTOINCREMENT,
	text          TEXT NOT NULL,
	words         TEXT NOT NULL DEFAULT '',
	gesture_count INTEGER NOT NULL DEFAULT 0,
	duration_ms   INTEGER NOT NULL DEFAULT 0,
	confidence    REAL NOT NULL DEFAULT 0,
	created_at    INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_translations_created ON translations(created_at);
`

// Open opens (creating if needed) the history database at path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening history database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("initializing history schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the database handle.
func (s *Store) Close() error { return s.db.Close() }

// Save stores a translation result and returns its id. Empty results
// are not stored.
func (s *Store) Save(result gesture.TranslationResult) (int64, error) {
	if !result.Valid() {
		return 0, nil
	}
	created := result.CreatedAt
	if created.IsZero() {
		created = time.Now()
	}
	res, err := s.db.Exec(
		`INSERT INTO translations (text, words, gesture_count, duration_ms, confidence, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		result.Text,
		strings.Join(result.Words, "\x1f"),
		result.GestureCount,
		result.Duration.Milliseconds(),
		result.Confidence,
		created.Unix(),
	)
	if err != nil {
		return 0, fmt.Errorf("saving translation: %w", err)
	}
	return res.LastInsertId()
}

// List returns the most recent entries, newest first.
func (s *Store) List(limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.db.Query(
		`SELECT id, text, words, gesture_count, duration_ms, confidence, created_at
		 FROM translations ORDER BY created_at DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("listing translations: %w", err)
	}
	defer rows.Close()
	return scanEntries(rows)
}

// Search returns entries whose text contains the query, newest first.
func (s *Store) Search(query string, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.db.Query(
		`SELECT id, text, words, gesture_count, duration_ms, confidence, created_at
		 FROM translations WHERE text LIKE ? ORDER BY created_at DESC, id DESC LIMIT ?`,
		"%"+query+"%", limit)
	if err != nil {
		return nil, fmt.Errorf("searching translations: %w", err)
	}
	defer rows.Close()
	return scanEntries(rows)
}

// Count returns the number of stored translations.
func (s *Store) Count() (int, error) {
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM translations`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting translations: %w", err)
	}
	return n, nil
}

// Clear deletes all stored translations.
func (s *Store) Clear() error {
	if _, err := s.db.Exec(`DELETE FROM translations`); err != nil {
		return fmt.Errorf("clearing translations: %w", err)
	}
	return nil
}

func scanEntries(rows *sql.Rows) ([]Entry, error) {
	var entries []Entry
	for rows.Next() {
		var e Entry
		var words string
		var durationMS, created int64
		if err := rows.Scan(&e.ID, &e.Text, &words, &e.GestureCount,
			&durationMS, &e.Confidence, &created); err != nil {
			return nil, fmt.Errorf("scanning translation row: %w", err)
		}
		if words != "" {
			e.Words = strings.Split(words, "\x1f")
		}
		e.Duration = time.Duration(durationMS) * time.Millisecond
		e.CreatedAt = time.Unix(created, 0)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading translation rows: %w", err)
	}
	return entries, nil
}
