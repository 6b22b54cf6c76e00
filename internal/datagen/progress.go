//-------------------------------------------------------------------------
//
// pgEdge Bank Data Generator
//
// Copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package datagen

import (
	"github.com/pgEdge/pgedge-bankgen/internal/logging"
)

// DefaultProgressInterval is how many rows pass between progress messages.
const DefaultProgressInterval = 100000

// ProgressReporter tracks and reports data generation progress.
type ProgressReporter struct {
	tableName        string
	totalRows        int64
	currentRow       int64
	progressInterval int64
}

// NewProgressReporter creates a new progress reporter. totalRows may be zero
// when the final row count is not known up front (transactions).
func NewProgressReporter(tableName string, totalRows int64, interval int64) *ProgressReporter {
	if interval <= 0 {
		interval = DefaultProgressInterval
	}
	return &ProgressReporter{
		tableName:        tableName,
		totalRows:        totalRows,
		progressInterval: interval,
	}
}

// Update records generated rows and logs when an interval boundary is crossed.
func (p *ProgressReporter) Update(rows int64) {
	oldRow := p.currentRow
	p.currentRow += rows

	if p.currentRow/p.progressInterval > oldRow/p.progressInterval {
		event := logging.Info().
			Str("table", p.tableName).
			Int64("rows", p.currentRow)
		if p.totalRows > 0 {
			event = event.
				Int64("total", p.totalRows).
				Float64("percent", float64(p.currentRow)/float64(p.totalRows)*100)
		}
		event.Msg("Generating data")
	}
}

// Rows returns the number of rows recorded so far.
func (p *ProgressReporter) Rows() int64 {
	return p.currentRow
}

// Done logs completion.
func (p *ProgressReporter) Done() {
	logging.Info().
		Str("table", p.tableName).
		Int64("rows", p.currentRow).
		Msg("Table complete")
}
