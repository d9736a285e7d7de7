package results

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/nullcone/anecprobe/sweep"
)

// ErrEmptyPath indicates a store opened without a database path.
var ErrEmptyPath = errors.New("results: store path is required")

// Store accumulates run records in a SQLite database. Safe for concurrent
// use through database/sql's pooling; the schema is created on Open.
type Store struct {
	db *sql.DB
}

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	id       TEXT PRIMARY KEY,
	sweep    TEXT NOT NULL,
	name     TEXT NOT NULL,
	integral REAL,
	error    TEXT NOT NULL DEFAULT '',
	payload  TEXT NOT NULL,
	seq      INTEGER
);
CREATE INDEX IF NOT EXISTS runs_sweep ON runs(sweep, seq);
`

// Open opens (creating if needed) the store at path.
func Open(ctx context.Context, path string) (*Store, error) {
	if path == "" {
		return nil, ErrEmptyPath
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("results: open %s: %w", path, err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("results: ping %s: %w", path, err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("results: init schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the underlying database.
func (s *Store) Close() error { return s.db.Close() }

// SaveRuns upserts a record set under the given sweep label, preserving
// input order via a per-sweep sequence number.
func (s *Store) SaveRuns(ctx context.Context, label string, recs []sweep.RunRecord) error {
	if len(recs) == 0 {
		return ErrNoRecords
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("results: begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for i, rec := range recs {
		payload, err := json.Marshal(rec)
		if err != nil {
			return fmt.Errorf("results: encode run %s: %w", rec.ID, err)
		}
		integral := sql.NullFloat64{}
		if rec.Result != nil {
			integral = sql.NullFloat64{Float64: rec.Result.Integral, Valid: true}
		}
		_, err = tx.ExecContext(ctx, `
			INSERT INTO runs (id, sweep, name, integral, error, payload, seq)
			VALUES (?, ?, ?, ?, ?, ?, ?)
			ON CONFLICT(id) DO UPDATE SET
				sweep = excluded.sweep,
				name = excluded.name,
				integral = excluded.integral,
				error = excluded.error,
				payload = excluded.payload,
				seq = excluded.seq
		`, rec.ID, label, rec.Name, integral, rec.Error, string(payload), i)
		if err != nil {
			return fmt.Errorf("results: save run %s: %w", rec.ID, err)
		}
	}
	return tx.Commit()
}

// ListRuns returns the records of one sweep in their original order.
func (s *Store) ListRuns(ctx context.Context, label string) ([]sweep.RunRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT payload FROM runs WHERE sweep = ? ORDER BY seq`, label)
	if err != nil {
		return nil, fmt.Errorf("results: list %s: %w", label, err)
	}
	defer rows.Close()

	var recs []sweep.RunRecord
	for rows.Next() {
		var payload string
		if err := rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("results: scan: %w", err)
		}
		var rec sweep.RunRecord
		if err := json.Unmarshal([]byte(payload), &rec); err != nil {
			return nil, fmt.Errorf("results: decode: %w", err)
		}
		recs = append(recs, rec)
	}
	return recs, rows.Err()
}

// Sweeps lists the distinct sweep labels present in the store.
func (s *Store) Sweeps(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT DISTINCT sweep FROM runs ORDER BY sweep`)
	if err != nil {
		return nil, fmt.Errorf("results: sweeps: %w", err)
	}
	defer rows.Close()

	var labels []string
	for rows.Next() {
		var l string
		if err := rows.Scan(&l); err != nil {
			return nil, fmt.Errorf("results: scan: %w", err)
		}
		labels = append(labels, l)
	}
	return labels, rows.Err()
}
