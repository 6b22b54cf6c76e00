//-------------------------------------------------------------------------
//
// pgEdge Bank Data Generator
//
// Copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pgEdge/pgedge-bankgen/internal/logging"
)

// FileName returns the CSV file name of a table.
func FileName(table string) string {
	return table + ".csv"
}

// WriteTable writes t as CSV: a header row with the column names, then one
// record per row in table order.
func WriteTable(w io.Writer, t Table) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(t.ColumnNames()); err != nil {
		return err
	}

	record := make([]string, len(t.Columns))
	for i := 0; i < t.Len; i++ {
		for j, v := range t.Row(i) {
			record[j] = FormatValue(v)
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteDir writes every table to <dir>/<table>.csv, creating dir if needed,
// and returns the paths written. Tables written before a failure are left
// in place.
func WriteDir(dir string, tables []Table) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	paths := make([]string, 0, len(tables))
	for _, t := range tables {
		path := filepath.Join(dir, FileName(t.Name))
		if err := writeFile(path, t); err != nil {
			return paths, fmt.Errorf("failed to write %s: %w", path, err)
		}
		paths = append(paths, path)

		logging.Info().
			Str("table", t.Name).
			Int("rows", t.Len).
			Str("path", path).
			Msg("Wrote CSV file")
	}

	return paths, nil
}

func writeFile(path string, t Table) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	return WriteTable(f, t)
}
