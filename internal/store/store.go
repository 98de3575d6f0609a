package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/duckdb/duckdb-go/v2"

	"chemgrade/internal/report"
)

// Store wraps a DuckDB connection holding grading runs.
type Store struct {
	db *sql.DB
}

// Open connects to the DuckDB database at path, creating it when absent.
// An empty path opens an in-memory database.
func Open(path string) (*Store, error) {
	db, err := sql.Open("duckdb", path)
	if err != nil {
		return nil, fmt.Errorf("open duckdb: %w", err)
	}
	return &Store{db: db}, nil
}

// DB exposes the underlying connection for ad-hoc queries.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Init applies the schema.
func (s *Store) Init(ctx context.Context) error {
	if err := EnsureSchema(s.db); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}

// SaveRun persists one grading run: the run row with its canonical payload
// fingerprint plus per-section and per-item score rows. Re-saving the same
// run ID is a no-op for the run row. Returns the payload fingerprint.
func (s *Store) SaveRun(ctx context.Context, results report.Results) (string, error) {
	if results.RunID == "" {
		return "", errors.New("store: run ID is required")
	}
	payload, err := CanonicalJSON(results)
	if err != nil {
		return "", err
	}
	key := fingerprintBytes(payload)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO runs (run_id, run_key, rubric, root, started_at, finished_at, grand_awarded, grand_max, payload)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT (run_id) DO NOTHING`,
		results.RunID,
		key,
		results.Rubric,
		results.Root,
		results.StartedAt,
		results.FinishedAt,
		results.Scores.GrandTotal.Awarded,
		results.Scores.GrandTotal.Max,
		string(payload),
	); err != nil {
		return "", fmt.Errorf("insert run: %w", err)
	}

	for _, section := range results.Scores.SectionTotals {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO section_scores (run_id, section, awarded, max_points)
			 VALUES (?, ?, ?, ?)
			 ON CONFLICT (run_id, section) DO NOTHING`,
			results.RunID, section.Name, section.Awarded, section.Max,
		); err != nil {
			return "", fmt.Errorf("insert section %s: %w", section.Name, err)
		}
	}
	for _, item := range results.Scores.PerItem {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO item_scores (run_id, item, section, awarded, max_points, status)
			 VALUES (?, ?, ?, ?, ?, ?)
			 ON CONFLICT (run_id, item) DO NOTHING`,
			results.RunID, item.Name, item.Section, item.Awarded, item.Max, string(item.Status),
		); err != nil {
			return "", fmt.Errorf("insert item %s: %w", item.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("commit: %w", err)
	}
	return key, nil
}
