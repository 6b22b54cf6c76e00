//-------------------------------------------------------------------------
//
// pgEdge Bank Data Generator
//
// Copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package db

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/pgEdge/pgedge-bankgen/internal/datagen"
	"github.com/pgEdge/pgedge-bankgen/internal/export"
	"github.com/pgEdge/pgedge-bankgen/internal/logging"
)

// DatasetExistsError is returned by Load when dataset tables already exist
// and dropping them was not requested.
type DatasetExistsError struct {
	Tables []string

	// RunID identifies the run that loaded the existing tables, if recorded.
	RunID string
}

func (e *DatasetExistsError) Error() string {
	if e.RunID != "" {
		return fmt.Sprintf("dataset tables already exist from run %s: %v (use --drop-existing to replace them)",
			e.RunID, e.Tables)
	}
	return fmt.Sprintf("dataset tables already exist: %v (use --drop-existing to replace them)", e.Tables)
}

// LoadOptions controls Load.
type LoadOptions struct {
	DropExisting bool
	Run          RunInfo
}

// Load creates the dataset tables and copies every table into them in
// order. Each table is copied in its own COPY, so a failure leaves the
// tables loaded before it in place.
func Load(ctx context.Context, pool *pgxpool.Pool, tables []export.Table, opts LoadOptions) error {
	existing, err := ExistingTables(ctx, pool, tables)
	if err != nil {
		return fmt.Errorf("failed to check existing tables: %w", err)
	}
	if len(existing) > 0 {
		if !opts.DropExisting {
			exists := &DatasetExistsError{Tables: existing}
			if runID, err := GetMetadataValue(ctx, pool, "run_id"); err == nil {
				exists.RunID = runID
			}
			return exists
		}
		logPreviousRun(ctx, pool)
		if err := DropSchema(ctx, pool, tables); err != nil {
			return err
		}
	}

	if err := CreateSchema(ctx, pool, tables); err != nil {
		return err
	}

	for _, t := range tables {
		if err := CopyTable(ctx, pool, t); err != nil {
			return err
		}
	}

	return SaveMetadata(ctx, pool, opts.Run)
}

// logPreviousRun reports the run being replaced. A dataset loaded without
// metadata is replaced silently.
func logPreviousRun(ctx context.Context, pool *pgxpool.Pool) {
	prev, err := GetAllMetadata(ctx, pool)
	if err != nil || len(prev) == 0 {
		logging.Debug().Err(err).Msg("No metadata for existing dataset")
		return
	}

	logging.Warn().
		Str("run_id", prev["run_id"]).
		Str("seed", prev["seed"]).
		Str("generated_at", prev["generated_at"]).
		Msg("Replacing existing dataset")
}

// CopyTable streams the rows of t into the table of the same name.
func CopyTable(ctx context.Context, pool *pgxpool.Pool, t export.Table) error {
	start := time.Now()
	progress := datagen.NewProgressReporter(t.Name, int64(t.Len), 0)

	i := 0
	src := pgx.CopyFromFunc(func() ([]any, error) {
		if i >= t.Len {
			return nil, nil
		}
		row, err := PgRow(t.Row(i))
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		i++
		progress.Update(1)
		return row, nil
	})

	n, err := pool.CopyFrom(ctx, pgx.Identifier{t.Name}, t.ColumnNames(), src)
	if err != nil {
		return fmt.Errorf("failed to copy %s: %w", t.Name, err)
	}

	logging.Info().
		Str("table", t.Name).
		Int64("rows", n).
		Dur("duration", time.Since(start)).
		Msg("Loaded table")

	return nil
}

// PgRow converts export row values to values pgx can encode.
func PgRow(values []any) ([]any, error) {
	row := make([]any, len(values))
	for i, v := range values {
		pv, err := pgValue(v)
		if err != nil {
			return nil, err
		}
		row[i] = pv
	}
	return row, nil
}

func pgValue(v any) (any, error) {
	switch v := v.(type) {
	case export.Money:
		return numeric(v.StringFixed(2))
	case decimal.Decimal:
		return numeric(v.String())
	case export.Date:
		return pgtype.Date{Time: v.Time(), Valid: true}, nil
	case time.Time:
		return pgtype.Timestamp{Time: v, Valid: true}, nil
	default:
		return v, nil
	}
}

func numeric(s string) (pgtype.Numeric, error) {
	var n pgtype.Numeric
	if err := n.Scan(s); err != nil {
		return n, fmt.Errorf("invalid numeric %q: %w", s, err)
	}
	return n, nil
}
