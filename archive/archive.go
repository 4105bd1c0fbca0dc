// SPDX-License-Identifier: MIT
// Package: cliquega/archive
//
// Package archive keeps benchmark history in a SQLite file so that results
// of separate invocations can be compared later (cliquega history).
//
// Schema:
//
//	benchmarks(id, label, created_at, vertices, edges, population_size,
//	           max_generations, mutation_rate, crossover_rate, elite_count,
//	           patience, diversity_threshold, seed, runs, best_fitness,
//	           best_run_id, index_min, index_max)
//	runs(id, benchmark_id, idx, elapsed_ns, best_fitness, generations,
//	     early_stopped, stop_reason)
//
// index_min and index_max are NULL when the run used no index range.
// The pure-Go modernc.org/sqlite driver is used, so no cgo is required.

package archive

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/katalvlaran/cliquega/ga"
	"github.com/katalvlaran/cliquega/graph"
)

// ErrNilResult indicates SaveBenchmark was given no benchmark result.
var ErrNilResult = errors.New("archive: nil benchmark result")

const schema = `
CREATE TABLE IF NOT EXISTS benchmarks (
	id                  TEXT PRIMARY KEY,
	label               TEXT NOT NULL,
	created_at          INTEGER NOT NULL,
	vertices            INTEGER NOT NULL,
	edges               INTEGER NOT NULL,
	population_size     INTEGER NOT NULL,
	max_generations     INTEGER NOT NULL,
	mutation_rate       REAL NOT NULL,
	crossover_rate      REAL NOT NULL,
	elite_count         INTEGER NOT NULL,
	patience            INTEGER NOT NULL,
	diversity_threshold REAL NOT NULL,
	seed                INTEGER NOT NULL,
	runs                INTEGER NOT NULL,
	best_fitness        INTEGER NOT NULL,
	best_run_id         TEXT NOT NULL,
	index_min           REAL,
	index_max           REAL
);
CREATE TABLE IF NOT EXISTS runs (
	id            TEXT PRIMARY KEY,
	benchmark_id  TEXT NOT NULL REFERENCES benchmarks(id),
	idx           INTEGER NOT NULL,
	elapsed_ns    INTEGER NOT NULL,
	best_fitness  INTEGER NOT NULL,
	generations   INTEGER NOT NULL,
	early_stopped INTEGER NOT NULL,
	stop_reason   TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS runs_by_benchmark ON runs(benchmark_id, idx);
`

// Store is a handle on one archive database.
type Store struct {
	db *sql.DB
}

// Benchmark is one archived benchmark row.
type Benchmark struct {
	ID          uuid.UUID
	Label       string
	CreatedAt   time.Time
	Vertices    int
	Edges       int
	Config      ga.Config // the logging toggles are not archived
	Runs        int
	BestFitness int
	BestRunID   uuid.UUID
}

// Open opens (creating if needed) the archive at path and applies the schema.
// Use ":memory:" for a throwaway store.
func Open(ctx context.Context, path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("archive.Open(%s): %w", path, err)
	}
	// One writer, and ":memory:" is per connection.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("archive.Open(%s): schema: %w", path, err)
	}
	if err := addIndexRangeColumns(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("archive.Open(%s): %w", path, err)
	}

	return &Store{db: db}, nil
}

// addIndexRangeColumns upgrades archives written before the index range was stored.
func addIndexRangeColumns(ctx context.Context, db *sql.DB) error {
	var n int
	if err := db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM pragma_table_info('benchmarks') WHERE name = 'index_min'`).Scan(&n); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	if n > 0 {
		return nil
	}
	for _, col := range []string{"index_min", "index_max"} {
		if _, err := db.ExecContext(ctx, "ALTER TABLE benchmarks ADD COLUMN "+col+" REAL"); err != nil {
			return fmt.Errorf("migrate: add %s: %w", col, err)
		}
	}

	return nil
}

// Close releases the database.
func (s *Store) Close() error { return s.db.Close() }

// SaveBenchmark stores a benchmark and all its runs in one transaction and
// returns the new benchmark id.
func (s *Store) SaveBenchmark(ctx context.Context, label string, g *graph.Graph, cfg ga.Config, res *ga.BenchmarkResult, at time.Time) (id uuid.UUID, err error) {
	if res == nil {
		return uuid.Nil, fmt.Errorf("SaveBenchmark: %w", ErrNilResult)
	}
	if g == nil {
		return uuid.Nil, fmt.Errorf("SaveBenchmark: %w", ga.ErrNilGraph)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return uuid.Nil, fmt.Errorf("SaveBenchmark: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	var lo, hi sql.NullFloat64
	if cfg.IndexRange != nil {
		lo = sql.NullFloat64{Float64: cfg.IndexRange.Min, Valid: true}
		hi = sql.NullFloat64{Float64: cfg.IndexRange.Max, Valid: true}
	}

	id = uuid.New()
	_, err = tx.ExecContext(ctx, `INSERT INTO benchmarks (
		id, label, created_at, vertices, edges, population_size, max_generations,
		mutation_rate, crossover_rate, elite_count, patience, diversity_threshold,
		seed, runs, best_fitness, best_run_id, index_min, index_max
	) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id.String(), label, at.UnixNano(), g.Size(), g.EdgeCount(),
		cfg.PopulationSize, cfg.MaxGenerations, cfg.MutationRate, cfg.CrossoverRate,
		cfg.EliteCount, cfg.Patience, cfg.DiversityThreshold, cfg.Seed,
		len(res.Runs), res.BestRun.BestFitness, res.BestRun.ID.String(), lo, hi,
	)
	if err != nil {
		return uuid.Nil, fmt.Errorf("SaveBenchmark: insert benchmark: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO runs (
		id, benchmark_id, idx, elapsed_ns, best_fitness, generations, early_stopped, stop_reason
	) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return uuid.Nil, fmt.Errorf("SaveBenchmark: %w", err)
	}
	defer stmt.Close()

	for _, r := range res.Runs {
		if _, err = stmt.ExecContext(ctx, r.ID.String(), id.String(), r.Index,
			int64(r.Elapsed), r.BestFitness, r.Generations, r.EarlyStopped, r.StopReason); err != nil {
			return uuid.Nil, fmt.Errorf("SaveBenchmark: insert run %d: %w", r.Index, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return uuid.Nil, fmt.Errorf("SaveBenchmark: commit: %w", err)
	}

	return id, nil
}

// ListBenchmarks returns the most recent benchmarks first; limit <= 0 means all.
func (s *Store) ListBenchmarks(ctx context.Context, limit int) ([]Benchmark, error) {
	q := `SELECT id, label, created_at, vertices, edges, population_size, max_generations,
		mutation_rate, crossover_rate, elite_count, patience, diversity_threshold,
		seed, runs, best_fitness, best_run_id, index_min, index_max
		FROM benchmarks ORDER BY created_at DESC, rowid DESC`
	args := []any{}
	if limit > 0 {
		q += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("ListBenchmarks: %w", err)
	}
	defer rows.Close()

	var out []Benchmark
	for rows.Next() {
		var (
			b          Benchmark
			id, bestID string
			created    int64
			lo, hi     sql.NullFloat64
		)
		if err := rows.Scan(&id, &b.Label, &created, &b.Vertices, &b.Edges,
			&b.Config.PopulationSize, &b.Config.MaxGenerations, &b.Config.MutationRate,
			&b.Config.CrossoverRate, &b.Config.EliteCount, &b.Config.Patience,
			&b.Config.DiversityThreshold, &b.Config.Seed, &b.Runs, &b.BestFitness, &bestID, &lo, &hi); err != nil {
			return nil, fmt.Errorf("ListBenchmarks: scan: %w", err)
		}
		if b.ID, err = uuid.Parse(id); err != nil {
			return nil, fmt.Errorf("ListBenchmarks: id %q: %w", id, err)
		}
		if b.BestRunID, err = uuid.Parse(bestID); err != nil {
			return nil, fmt.Errorf("ListBenchmarks: best run id %q: %w", bestID, err)
		}
		b.CreatedAt = time.Unix(0, created).UTC()
		if lo.Valid && hi.Valid {
			b.Config.IndexRange = ga.NewIndexRange(lo.Float64, hi.Float64)
		}
		out = append(out, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListBenchmarks: %w", err)
	}

	return out, nil
}

// Runs returns the runs of one benchmark ordered by run index.
func (s *Store) Runs(ctx context.Context, benchmarkID uuid.UUID) ([]ga.RunRecord, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, idx, elapsed_ns, best_fitness, generations,
		early_stopped, stop_reason FROM runs WHERE benchmark_id = ? ORDER BY idx`, benchmarkID.String())
	if err != nil {
		return nil, fmt.Errorf("Runs(%s): %w", benchmarkID, err)
	}
	defer rows.Close()

	var out []ga.RunRecord
	for rows.Next() {
		var (
			r       ga.RunRecord
			id      string
			elapsed int64
		)
		if err := rows.Scan(&id, &r.Index, &elapsed, &r.BestFitness, &r.Generations,
			&r.EarlyStopped, &r.StopReason); err != nil {
			return nil, fmt.Errorf("Runs(%s): scan: %w", benchmarkID, err)
		}
		if r.ID, err = uuid.Parse(id); err != nil {
			return nil, fmt.Errorf("Runs(%s): id %q: %w", benchmarkID, id, err)
		}
		r.Elapsed = time.Duration(elapsed)
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("Runs(%s): %w", benchmarkID, err)
	}

	return out, nil
}
