// Package storage keeps the session tally: the rounds played since the
// process (or SSH session) started. It uses the pure-Go modernc.org/sqlite
// driver; by default the database lives in memory and disappears on Close.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// MemoryDSN opens a private in-memory database.
const MemoryDSN = ":memory:"

// Store wraps the tally database.
type Store struct {
	db *sql.DB
}

// Round is the outcome of one finished game.
type Round struct {
	ID        int64
	Word      string
	Won       bool
	Incorrect int // wrong guesses made
	Guesses   int // total letters guessed
	CreatedAt time.Time
}

// Tally aggregates the rounds of a session.
type Tally struct {
	Played        int
	Won           int
	Lost          int
	CurrentStreak int // consecutive wins ending at the latest round
	BestStreak    int
}

// Open opens the database at dsn and creates the schema.
// Pass MemoryDSN for a session-scoped tally; a file path is accepted for
// tests and debugging.
func Open(dsn string) (*Store, error) {
	memory := dsn == MemoryDSN

	if !memory {
		if dsn != "" && dsn[0] == '~' {
			home, err := os.UserHomeDir()
			if err != nil {
				return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
			}
			dsn = filepath.Join(home, dsn[1:])
		}
		dir := filepath.Dir(dsn)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Every new connection to :memory: is a separate empty database.
	if memory {
		db.SetMaxOpenConns(1)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS rounds (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			word TEXT NOT NULL,
			won INTEGER NOT NULL,
			incorrect INTEGER NOT NULL,
			guesses INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database. An in-memory tally is gone afterwards.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveRound records a finished round and returns its ID.
func (s *Store) SaveRound(r Round) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO rounds (word, won, incorrect, guesses) VALUES (?, ?, ?, ?)",
		r.Word, r.Won, r.Incorrect, r.Guesses,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save round: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// RecentRounds returns up to limit rounds, newest first.
func (s *Store) RecentRounds(limit int) ([]Round, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, word, won, incorrect, guesses, created_at
		 FROM rounds
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query rounds: %w", err)
	}
	defer rows.Close()

	var rounds []Round
	for rows.Next() {
		var r Round
		var createdAt any
		if err := rows.Scan(&r.ID, &r.Word, &r.Won, &r.Incorrect, &r.Guesses, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = parseTime(createdAt)
		rounds = append(rounds, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return rounds, nil
}

// Tally summarises every recorded round.
func (s *Store) Tally() (Tally, error) {
	rows, err := s.db.Query("SELECT won FROM rounds ORDER BY id")
	if err != nil {
		return Tally{}, fmt.Errorf("storage: cannot query tally: %w", err)
	}
	defer rows.Close()

	var t Tally
	for rows.Next() {
		var won bool
		if err := rows.Scan(&won); err != nil {
			return Tally{}, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		t.Played++
		if won {
			t.Won++
			t.CurrentStreak++
			t.BestStreak = max(t.BestStreak, t.CurrentStreak)
		} else {
			t.Lost++
			t.CurrentStreak = 0
		}
	}

	if err := rows.Err(); err != nil {
		return Tally{}, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return t, nil
}

// Clear deletes every round.
func (s *Store) Clear() error {
	if _, err := s.db.Exec("DELETE FROM rounds"); err != nil {
		return fmt.Errorf("storage: cannot clear rounds: %w", err)
	}
	return nil
}

// parseTime handles both driver-decoded times and raw SQLite text.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse(time.DateTime, t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
