package store

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	_ "modernc.org/sqlite"

	"github.com/katalvlaran/wordladder/lexicon"
)

//go:embed schema.sql
var schemaSQL string

// ErrClosed is returned by every operation after Close.
var ErrClosed = errors.New("store: closed")

// Store is a SQLite-backed lexicon.Provider. It is safe for concurrent use.
type Store struct {
	mu sync.RWMutex
	db *sql.DB
}

// Open opens (creating if needed) the database at path and applies the schema.
// Parent directories are created for file paths.
func Open(path string) (*Store, error) {
	if path != ":memory:" {
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("store: create dir: %w", err)
			}
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("store: open %q: %w", path, err)
	}
	// every :memory: connection is its own database
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("store: apply schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close releases the database. Close is idempotent.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil

	return err
}

// Import normalizes words and inserts the usable ones, ignoring duplicates.
// It returns the number of words newly added.
func (s *Store) Import(ctx context.Context, words []string) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.db == nil {
		return 0, ErrClosed
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("store: begin import: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `INSERT OR IGNORE INTO words (word, length) VALUES (?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("store: prepare import: %w", err)
	}
	defer stmt.Close()

	added := 0
	for _, raw := range words {
		w, ok := lexicon.Normalize(raw)
		if !ok {
			continue
		}
		r, err := stmt.ExecContext(ctx, w, len(w))
		if err != nil {
			return 0, fmt.Errorf("store: insert %q: %w", w, err)
		}
		n, err := r.RowsAffected()
		if err != nil {
			return 0, fmt.Errorf("store: insert %q: %w", w, err)
		}
		added += int(n)
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("store: commit import: %w", err)
	}

	return added, nil
}

// ImportFile reads a word list (see lexicon.Read for the format) and imports it.
func (s *Store) ImportFile(ctx context.Context, path string) (int, error) {
	m, err := lexicon.LoadFile(path)
	if err != nil {
		return 0, err
	}
	var words []string
	for _, n := range m.Lengths() {
		d, err := m.WordsOfLength(ctx, n)
		if err != nil {
			return 0, fmt.Errorf("store: read words of length %d: %w", n, err)
		}
		words = append(words, d.Words()...)
	}

	return s.Import(ctx, words)
}

// WordsOfLength implements lexicon.Provider.
func (s *Store) WordsOfLength(ctx context.Context, n int) (lexicon.Dictionary, error) {
	if n < 1 {
		return lexicon.NewDictionary(n), nil
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.db == nil {
		return lexicon.Dictionary{}, ErrClosed
	}

	rows, err := s.db.QueryContext(ctx, `SELECT word FROM words WHERE length = ?`, n)
	if err != nil {
		return lexicon.Dictionary{}, fmt.Errorf("store: query length %d: %w", n, err)
	}
	defer rows.Close()

	var words []string
	for rows.Next() {
		var w string
		if err := rows.Scan(&w); err != nil {
			return lexicon.Dictionary{}, fmt.Errorf("store: scan word: %w", err)
		}
		words = append(words, w)
	}
	if err := rows.Err(); err != nil {
		return lexicon.Dictionary{}, fmt.Errorf("store: iterate words: %w", err)
	}

	return lexicon.NewDictionary(n, words...), nil
}

// Count reports the number of stored words.
func (s *Store) Count(ctx context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.db == nil {
		return 0, ErrClosed
	}
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM words`).Scan(&n); err != nil {
		return 0, fmt.Errorf("store: count: %w", err)
	}

	return n, nil
}
