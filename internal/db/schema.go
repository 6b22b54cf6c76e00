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
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pgEdge/pgedge-bankgen/internal/export"
	"github.com/pgEdge/pgedge-bankgen/internal/logging"
)

// CreateTableSQL returns the CREATE TABLE statement of t. Foreign keys are
// not declared; references are only consistent by construction.
func CreateTableSQL(t export.Table) string {
	var b strings.Builder

	fmt.Fprintf(&b, "CREATE TABLE %s (\n", pgx.Identifier{t.Name}.Sanitize())
	for i, c := range t.Columns {
		fmt.Fprintf(&b, "    %s %s", pgx.Identifier{c.Name}.Sanitize(), c.SQLType)
		if c.Name == t.PrimaryKey {
			b.WriteString(" PRIMARY KEY")
		}
		if i < len(t.Columns)-1 {
			b.WriteString(",")
		}
		b.WriteString("\n")
	}
	b.WriteString(")")

	return b.String()
}

// CreateSchema creates the dataset tables.
func CreateSchema(ctx context.Context, pool *pgxpool.Pool, tables []export.Table) error {
	for _, t := range tables {
		if _, err := pool.Exec(ctx, CreateTableSQL(t)); err != nil {
			return fmt.Errorf("failed to create table %s: %w", t.Name, err)
		}
		logging.Debug().Str("table", t.Name).Msg("Created table")
	}
	return nil
}

// DropSchema drops the dataset tables and the metadata table.
func DropSchema(ctx context.Context, pool *pgxpool.Pool, tables []export.Table) error {
	for i := len(tables) - 1; i >= 0; i-- {
		name := pgx.Identifier{tables[i].Name}.Sanitize()
		if _, err := pool.Exec(ctx, "DROP TABLE IF EXISTS "+name); err != nil {
			return fmt.Errorf("failed to drop table %s: %w", tables[i].Name, err)
		}
	}

	if err := DropMetadata(ctx, pool); err != nil {
		return fmt.Errorf("failed to drop metadata: %w", err)
	}

	logging.Info().Int("tables", len(tables)).Msg("Dropped existing dataset")
	return nil
}

// ExistingTables returns the names of the given tables that already exist
// in the current schema search path.
func ExistingTables(ctx context.Context, pool *pgxpool.Pool, tables []export.Table) ([]string, error) {
	names := make([]string, len(tables))
	for i, t := range tables {
		names[i] = t.Name
	}

	rows, err := pool.Query(ctx, `
        SELECT table_name FROM information_schema.tables
        WHERE table_schema = current_schema() AND table_name = ANY($1)
        ORDER BY table_name
    `, names)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var existing []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		existing = append(existing, name)
	}

	return existing, rows.Err()
}
