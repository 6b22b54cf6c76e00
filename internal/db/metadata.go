//-------------------------------------------------------------------------
//
// pgEdge Bank Data Generator
//
// Portions copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package db

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pgEdge/pgedge-bankgen/internal/logging"
	"github.com/pgEdge/pgedge-bankgen/pkg/version"
)

const metadataTable = "bankgen_metadata"

// createMetadataTableSQL creates the metadata table if it doesn't exist.
const createMetadataTableSQL = `
CREATE TABLE IF NOT EXISTS bankgen_metadata (
    key   TEXT PRIMARY KEY,
    value TEXT NOT NULL
)`

// RunInfo identifies the generation run a loaded dataset came from.
type RunInfo struct {
	ID            uuid.UUID
	Seed          int64
	CustomerCount int
	StartDate     time.Time
	EndDate       time.Time
	Chronological bool
}

// NewRunInfo returns run information with a fresh random run id.
func NewRunInfo(seed int64, customers int, start, end time.Time, chronological bool) RunInfo {
	return RunInfo{
		ID:            uuid.New(),
		Seed:          seed,
		CustomerCount: customers,
		StartDate:     start,
		EndDate:       end,
		Chronological: chronological,
	}
}

// Values returns the metadata key/value pairs of the run.
func (r RunInfo) Values() map[string]string {
	return map[string]string{
		"run_id":         r.ID.String(),
		"version":        version.Short(),
		"seed":           strconv.FormatInt(r.Seed, 10),
		"customer_count": strconv.Itoa(r.CustomerCount),
		"start_date":     r.StartDate.Format(time.DateOnly),
		"end_date":       r.EndDate.Format(time.DateOnly),
		"chronological":  strconv.FormatBool(r.Chronological),
		"generated_at":   time.Now().UTC().Format(time.RFC3339),
	}
}

// SaveMetadata saves the run information to the database.
func SaveMetadata(ctx context.Context, pool *pgxpool.Pool, run RunInfo) error {
	_, err := pool.Exec(ctx, createMetadataTableSQL)
	if err != nil {
		return fmt.Errorf("failed to create metadata table: %w", err)
	}

	for key, value := range run.Values() {
		_, err := pool.Exec(ctx, `
            INSERT INTO bankgen_metadata (key, value) VALUES ($1, $2)
            ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value
        `, key, value)
		if err != nil {
			return fmt.Errorf("failed to save metadata %s: %w", key, err)
		}
	}

	logging.Debug().
		Str("run_id", run.ID.String()).
		Int64("seed", run.Seed).
		Msg("Saved metadata")

	return nil
}

// GetMetadataValue retrieves a single metadata value by key.
func GetMetadataValue(ctx context.Context, pool *pgxpool.Pool, key string) (string, error) {
	var value string
	err := pool.QueryRow(ctx, `
        SELECT value FROM bankgen_metadata WHERE key = $1
    `, key).Scan(&value)
	if err != nil {
		return "", err
	}
	return value, nil
}

// GetAllMetadata retrieves all metadata as a map.
func GetAllMetadata(ctx context.Context, pool *pgxpool.Pool) (map[string]string, error) {
	rows, err := pool.Query(ctx, `SELECT key, value FROM bankgen_metadata`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	metadata := make(map[string]string)
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, err
		}
		metadata[key] = value
	}

	return metadata, rows.Err()
}

// DropMetadata drops the metadata table.
func DropMetadata(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, fmt.Sprintf("DROP TABLE IF EXISTS %s", metadataTable))
	return err
}
