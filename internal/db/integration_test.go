//go:build integration

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
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pgEdge/pgedge-bankgen/internal/bank"
	"github.com/pgEdge/pgedge-bankgen/internal/datagen"
	"github.com/pgEdge/pgedge-bankgen/internal/export"
	"github.com/pgEdge/pgedge-bankgen/internal/testutil"
)

func generate(t *testing.T, seed int64, customers int) *bank.Dataset {
	t.Helper()

	opts := bank.DefaultOptions()
	opts.CustomerCount = customers
	g, err := bank.NewGenerator(datagen.NewSource(seed), opts)
	require.NoError(t, err)
	return g.Generate()
}

func setup(t *testing.T) (context.Context, *pgxpool.Pool) {
	t.Helper()

	connStr := testutil.PostgresConnString(t)
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	t.Cleanup(cancel)

	pool, err := Connect(ctx, connStr)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	require.NoError(t, DropSchema(ctx, pool, export.Schema()))
	return ctx, pool
}

func TestIntegrationLoad(t *testing.T) {
	ctx, pool := setup(t)

	ds := generate(t, 42, 25)
	tables := export.Tables(ds)
	run := NewRunInfo(42, 25, time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC), time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC), false)

	require.NoError(t, Load(ctx, pool, tables, LoadOptions{Run: run}))

	for _, c := range ds.Counts() {
		assert.Equal(t, c.Rows, testutil.CountRows(t, pool, c.Table), c.Table)
	}

	var totalText string
	require.NoError(t, pool.QueryRow(ctx, "SELECT coalesce(sum(current_balance), 0)::text FROM accounts").Scan(&totalText))
	total, err := decimal.NewFromString(totalText)
	require.NoError(t, err)
	assert.Equal(t, bank.Summarize(ds).TotalDeposits.StringFixed(2), total.StringFixed(2))

	var nullMerchants, atm int
	require.NoError(t, pool.QueryRow(ctx, `
        SELECT count(*) FILTER (WHERE merchant_name IS NULL),
               count(*) FILTER (WHERE transaction_type = 'ATM')
        FROM transactions`).Scan(&nullMerchants, &atm))
	assert.GreaterOrEqual(t, nullMerchants, atm)

	metadata, err := GetAllMetadata(ctx, pool)
	require.NoError(t, err)
	assert.Equal(t, run.ID.String(), metadata["run_id"])
	assert.Equal(t, "42", metadata["seed"])

	seed, err := GetMetadataValue(ctx, pool, "customer_count")
	require.NoError(t, err)
	assert.Equal(t, "25", seed)
}

func TestIntegrationLoadRefusesExisting(t *testing.T) {
	ctx, pool := setup(t)

	tables := export.Tables(generate(t, 1, 5))
	first := NewRunInfo(1, 5, time.Now(), time.Now(), false)
	require.NoError(t, Load(ctx, pool, tables, LoadOptions{Run: first}))

	err := Load(ctx, pool, tables, LoadOptions{Run: NewRunInfo(1, 5, time.Now(), time.Now(), false)})
	var exists *DatasetExistsError
	require.True(t, errors.As(err, &exists), "got %v", err)
	assert.Len(t, exists.Tables, 6)
	assert.Equal(t, first.ID.String(), exists.RunID)

	replacement := export.Tables(generate(t, 2, 8))
	require.NoError(t, Load(ctx, pool, replacement, LoadOptions{
		DropExisting: true,
		Run:          NewRunInfo(2, 8, time.Now(), time.Now(), false),
	}))
	assert.Equal(t, 8, testutil.CountRows(t, pool, "customers"))

	seed, err := GetMetadataValue(ctx, pool, "seed")
	require.NoError(t, err)
	assert.Equal(t, "2", seed)
}
