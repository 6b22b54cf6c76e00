//-------------------------------------------------------------------------
//
// pgEdge Bank Data Generator
//
// Copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package bank

import (
	"errors"
	"fmt"
	"time"

	"github.com/pgEdge/pgedge-bankgen/internal/datagen"
	"github.com/pgEdge/pgedge-bankgen/internal/logging"
	"github.com/pgEdge/pgedge-bankgen/internal/profiles"
)

// Table names, in generation order.
const (
	TableBranches     = "branches"
	TableCustomers    = "customers"
	TableAccounts     = "accounts"
	TableTransactions = "transactions"
	TableLoans        = "loans"
	TableCreditCards  = "credit_cards"
)

// TableNames lists every table in generation order.
var TableNames = []string{
	TableBranches, TableCustomers, TableAccounts,
	TableTransactions, TableLoans, TableCreditCards,
}

// Options controls the shape of a generated dataset.
type Options struct {
	// CustomerCount is the number of customers to generate.
	CustomerCount int

	// StartDate and EndDate bound the transaction window. Histories end on
	// EndDate; StartDate only matters when ClampToWindow is set.
	StartDate time.Time
	EndDate   time.Time

	// AsOf stands in for "today" in every date relative to the present.
	// Zero means EndDate.
	AsOf time.Time

	// ClampToWindow starts histories at StartDate for accounts opened
	// before it.
	ClampToWindow bool

	// Chronological applies amounts to the running balance in timestamp
	// order rather than in the order they were drawn.
	Chronological bool

	// HourWeights are the relative weights of the 24 hours of the day.
	// Nil means the default profile.
	HourWeights []float64

	// DayWeights are the relative weights of the days of the week, indexed
	// by time.Weekday. Nil spreads transactions uniformly over the days of
	// an account's history.
	DayWeights []float64
}

// DefaultOptions returns the options of the reference dataset.
func DefaultOptions() Options {
	return Options{
		CustomerCount: 10000,
		StartDate:     time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:       time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC),
	}
}

// Generator builds a dataset from a single random source. A Generator is
// not safe for concurrent use.
type Generator struct {
	src   *datagen.Source
	opts  Options
	hours *datagen.Discrete[int]
}

// NewGenerator validates opts and returns a generator drawing from src.
func NewGenerator(src *datagen.Source, opts Options) (*Generator, error) {
	if src == nil {
		return nil, errors.New("random source is required")
	}
	if opts.CustomerCount < 0 {
		return nil, fmt.Errorf("customer count must be non-negative, got %d", opts.CustomerCount)
	}
	if opts.EndDate.IsZero() || opts.StartDate.IsZero() {
		return nil, errors.New("start and end dates are required")
	}

	opts.StartDate = datagen.TruncateDay(opts.StartDate)
	opts.EndDate = datagen.TruncateDay(opts.EndDate)
	if opts.EndDate.Before(opts.StartDate) {
		return nil, fmt.Errorf("end date %s is before start date %s",
			opts.EndDate.Format(time.DateOnly), opts.StartDate.Format(time.DateOnly))
	}
	if opts.AsOf.IsZero() {
		opts.AsOf = opts.EndDate
	}
	opts.AsOf = datagen.TruncateDay(opts.AsOf)

	weights := opts.HourWeights
	if weights == nil {
		p, err := profiles.Get(profiles.DefaultProfile, "UTC")
		if err != nil {
			return nil, err
		}
		weights = profiles.HourWeights(p)
	}
	if len(weights) != 24 {
		return nil, fmt.Errorf("expected 24 hour weights, got %d", len(weights))
	}

	if opts.DayWeights != nil {
		if len(opts.DayWeights) != 7 {
			return nil, fmt.Errorf("expected 7 day weights, got %d", len(opts.DayWeights))
		}
		for wd, w := range opts.DayWeights {
			if w <= 0 {
				return nil, fmt.Errorf("day weight for %s must be positive, got %f", time.Weekday(wd), w)
			}
		}
	}

	hourOfDay := make([]int, 24)
	for h := range hourOfDay {
		hourOfDay[h] = h
	}
	hours, err := datagen.NewDiscrete(hourOfDay, weights)
	if err != nil {
		return nil, fmt.Errorf("invalid hour weights: %w", err)
	}

	return &Generator{src: src, opts: opts, hours: hours}, nil
}

// Options returns the normalized options of the generator.
func (g *Generator) Options() Options {
	return g.opts
}

// Generate runs every table generator in dependency order.
func (g *Generator) Generate() *Dataset {
	start := time.Now()
	logging.Info().
		Int("customers", g.opts.CustomerCount).
		Str("start_date", g.opts.StartDate.Format(time.DateOnly)).
		Str("end_date", g.opts.EndDate.Format(time.DateOnly)).
		Bool("chronological", g.opts.Chronological).
		Msg("Generating dataset")

	ds := &Dataset{}
	ds.Branches = g.Branches()
	ds.Customers = g.Customers(ds.Branches)
	ds.Accounts = g.Accounts(ds.Customers)
	ds.Transactions = g.Transactions(ds.Accounts)
	ds.Loans = g.Loans(ds.Customers)
	ds.CreditCards = g.CreditCards(ds.Customers)

	logging.Info().
		Int("transactions", len(ds.Transactions)).
		Dur("duration", time.Since(start)).
		Msg("Dataset generated")

	return ds
}

// TableCount is the number of rows of one table.
type TableCount struct {
	Table string
	Rows  int
}

// Counts returns the row count of every table in generation order.
func (ds *Dataset) Counts() []TableCount {
	return []TableCount{
		{TableBranches, len(ds.Branches)},
		{TableCustomers, len(ds.Customers)},
		{TableAccounts, len(ds.Accounts)},
		{TableTransactions, len(ds.Transactions)},
		{TableLoans, len(ds.Loans)},
		{TableCreditCards, len(ds.CreditCards)},
	}
}
