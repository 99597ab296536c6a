// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package history persists a journal of operation runs in a SQLite
// database: one row per merge/split/convert invocation plus one row per
// file result. The journal is advisory; recording failures must never fail
// the operation they describe.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/chuzhi-keji/pdf/pkg/types"
)

const dbFile = "history.db"

// Store manages the journal database.
type Store struct {
	db *sql.DB
}

// Open opens or creates the journal database under dir, creating the
// directory and schema as needed.
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating history directory: %w", err)
	}

	dbPath := filepath.Join(dir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening history database: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			kind TEXT NOT NULL,
			started_at TEXT NOT NULL,
			succeeded INTEGER NOT NULL,
			failed INTEGER NOT NULL,
			cancelled INTEGER NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS results (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id INTEGER NOT NULL REFERENCES runs(id),
			input TEXT,
			status TEXT NOT NULL,
			path TEXT,
			message TEXT,
			pages INTEGER
		)`,
		`CREATE INDEX IF NOT EXISTS idx_results_run ON results(run_id)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// Run is one recorded operation invocation with its per-file results.
type Run struct {
	ID        int64                   `json:"id" yaml:"id"`
	Kind      string                  `json:"kind" yaml:"kind"`
	StartedAt time.Time               `json:"started_at" yaml:"started_at"`
	Summary   types.Summary           `json:"summary" yaml:"summary"`
	Results   []types.OperationResult `json:"results" yaml:"results"`
}

// Record journals one operation run and returns its row ID.
func (s *Store) Record(ctx context.Context, kind string, startedAt time.Time, results []types.OperationResult) (int64, error) {
	summary := types.Summarize(results)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		`INSERT INTO runs (kind, started_at, succeeded, failed, cancelled) VALUES (?, ?, ?, ?, ?)`,
		kind, startedAt.UTC().Format(time.RFC3339), summary.Succeeded, summary.Failed, summary.Cancelled)
	if err != nil {
		return 0, fmt.Errorf("inserting run: %w", err)
	}
	runID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading run id: %w", err)
	}

	for _, r := range results {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO results (run_id, input, status, path, message, pages) VALUES (?, ?, ?, ?, ?, ?)`,
			runID, r.Input, string(r.Status), r.Path, r.Message, r.Pages); err != nil {
			return 0, fmt.Errorf("inserting result: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing run: %w", err)
	}
	return runID, nil
}

// Recent returns the latest limit runs, newest first, with their results.
func (s *Store) Recent(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, kind, started_at, succeeded, failed, cancelled
		 FROM runs ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var run Run
		var started string
		if err := rows.Scan(&run.ID, &run.Kind, &started,
			&run.Summary.Succeeded, &run.Summary.Failed, &run.Summary.Cancelled); err != nil {
			return nil, fmt.Errorf("scanning run: %w", err)
		}
		if t, err := time.Parse(time.RFC3339, started); err == nil {
			run.StartedAt = t
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating runs: %w", err)
	}

	for i := range runs {
		results, err := s.runResults(ctx, runs[i].ID)
		if err != nil {
			return nil, err
		}
		runs[i].Results = results
	}
	return runs, nil
}

func (s *Store) runResults(ctx context.Context, runID int64) ([]types.OperationResult, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT input, status, path, message, pages FROM results WHERE run_id = ? ORDER BY id`, runID)
	if err != nil {
		return nil, fmt.Errorf("querying results: %w", err)
	}
	defer rows.Close()

	var results []types.OperationResult
	for rows.Next() {
		var r types.OperationResult
		var status string
		if err := rows.Scan(&r.Input, &status, &r.Path, &r.Message, &r.Pages); err != nil {
			return nil, fmt.Errorf("scanning result: %w", err)
		}
		r.Status = types.ResultStatus(status)
		results = append(results, r)
	}
	return results, rows.Err()
}
