//-------------------------------------------------------------------------
//
// pgEdge Bank Data Generator
//
// Copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

// Package testutil provides utilities for integration testing.
package testutil

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	// TestConnEnv names the environment variable that points integration
	// tests at an existing server instead of a container.
	TestConnEnv = "PGEDGE_TEST_CONN"

	postgresImage = "postgres:16-alpine"
)

// PostgresAvailable checks if the server in connStr answers a ping.
func PostgresAvailable(connStr string) bool {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, connStr)
	if err != nil {
		return false
	}
	defer pool.Close()

	return pool.Ping(ctx) == nil
}

// PostgresConnString returns a connection string for an empty database.
// When PGEDGE_TEST_CONN is set that server is used, otherwise a disposable
// container is started and terminated when the test ends. The test is
// skipped when neither is available.
func PostgresConnString(t *testing.T) string {
	t.Helper()

	if connStr := os.Getenv(TestConnEnv); connStr != "" {
		if !PostgresAvailable(connStr) {
			t.Skipf("PostgreSQL at %s not available, skipping integration test", TestConnEnv)
		}
		return connStr
	}

	ctx := context.Background()
	container, err := postgres.Run(ctx, postgresImage,
		postgres.WithDatabase("bankgen_test"),
		postgres.WithUsername("bankgen"),
		postgres.WithPassword("bankgen"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	if err != nil {
		t.Skipf("PostgreSQL container not available, skipping integration test: %v", err)
	}
	t.Cleanup(func() {
		if err := container.Terminate(context.Background()); err != nil {
			t.Logf("Warning: Failed to terminate container: %v", err)
		}
	})

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("Failed to get connection string: %v", err)
	}
	return connStr
}

// CountRows returns the number of rows in table.
func CountRows(t *testing.T, pool *pgxpool.Pool, table string) int {
	t.Helper()

	var n int
	err := pool.QueryRow(context.Background(), "SELECT count(*) FROM "+table).Scan(&n)
	if err != nil {
		t.Fatalf("Failed to count rows in %s: %v", table, err)
	}
	return n
}
