// Package store handles SQLite persistence of completed runs.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/verte-zerg/textstat/internal/model"

	_ "modernc.org/sqlite" // SQLite driver.
)

// Store wraps SQLite access for run history.
type Store struct {
	db *sql.DB
}

// Open opens or creates the SQLite database and applies migrations.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		if cerr := db.Close(); cerr != nil {
			// Best-effort close on migration failure.
			_ = cerr
		}
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY,
			created_at TEXT NOT NULL,
			source TEXT NOT NULL,
			encoding TEXT NOT NULL,
			chars INTEGER NOT NULL,
			words INTEGER NOT NULL,
			lines INTEGER NOT NULL,
			unique_words INTEGER NOT NULL,
			longest_word TEXT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS run_words (
			run_id INTEGER NOT NULL,
			word TEXT NOT NULL,
			count INTEGER NOT NULL,
			PRIMARY KEY (run_id, word)
		);`,
		`CREATE INDEX IF NOT EXISTS idx_runs_created_at ON runs(created_at);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// InsertRun stores a run summary and its word frequencies in one transaction.
func (s *Store) InsertRun(ctx context.Context, run model.RunRecord, entries []model.FreqEntry) (id int64, err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer func() {
		if err != nil {
			if rerr := tx.Rollback(); rerr != nil {
				// Best-effort rollback.
				_ = rerr
			}
		}
	}()

	res, err := tx.ExecContext(ctx,
		`INSERT INTO runs (created_at, source, encoding, chars, words, lines, unique_words, longest_word)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		run.CreatedAt.UTC().Format(time.RFC3339Nano),
		run.Source,
		run.Encoding,
		run.Chars,
		run.Words,
		run.Lines,
		run.UniqueWords,
		run.LongestWord,
	)
	if err != nil {
		return 0, err
	}
	id, err = res.LastInsertId()
	if err != nil {
		return 0, err
	}

	if len(entries) > 0 {
		stmt, perr := tx.PrepareContext(ctx,
			`INSERT INTO run_words (run_id, word, count) VALUES (?, ?, ?)`)
		if perr != nil {
			err = perr
			return 0, err
		}
		defer func() {
			if cerr := stmt.Close(); cerr != nil {
				// Best-effort statement close.
				_ = cerr
			}
		}()
		for _, e := range entries {
			if _, err = stmt.ExecContext(ctx, id, e.Word, e.Count); err != nil {
				return 0, err
			}
		}
	}

	if err = tx.Commit(); err != nil {
		return 0, err
	}
	return id, nil
}

// ListRuns returns saved runs in insertion order. When last > 0 only the newest last runs are kept.
func (s *Store) ListRuns(ctx context.Context, last int) ([]model.RunRecord, error) {
	query := `SELECT id, created_at, source, encoding, chars, words, lines, unique_words, longest_word
		FROM runs
		ORDER BY id ASC`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var runs []model.RunRecord
	for rows.Next() {
		var r model.RunRecord
		var createdAt string
		if err := rows.Scan(&r.ID, &createdAt, &r.Source, &r.Encoding, &r.Chars, &r.Words, &r.Lines, &r.UniqueWords, &r.LongestWord); err != nil {
			return nil, err
		}
		parsed, err := time.Parse(time.RFC3339Nano, createdAt)
		if err != nil {
			return nil, err
		}
		r.CreatedAt = parsed
		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if last > 0 && len(runs) > last {
		runs = runs[len(runs)-last:]
	}
	return runs, nil
}

// ListRunWords returns the word frequencies of a run, ordered by count then word.
func (s *Store) ListRunWords(ctx context.Context, runID int64) ([]model.FreqEntry, error) {
	var exists int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM runs WHERE id = ?`, runID).Scan(&exists)
	if err != nil {
		return nil, err
	}
	if exists == 0 {
		return nil, fmt.Errorf("run %d not found", runID)
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT count, word FROM run_words WHERE run_id = ? ORDER BY count ASC, word ASC`, runID)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var entries []model.FreqEntry
	for rows.Next() {
		var e model.FreqEntry
		if err := rows.Scan(&e.Count, &e.Word); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}
