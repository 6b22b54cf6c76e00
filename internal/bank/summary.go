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
	"fmt"
	"io"
	"time"

	"github.com/shopspring/decimal"
)

// Summary describes a generated dataset for the console.
type Summary struct {
	Counts []TableCount

	// FirstTransaction and LastTransaction are zero when there are no
	// transactions.
	FirstTransaction time.Time
	LastTransaction  time.Time

	// TotalDeposits is the sum of account balances.
	TotalDeposits decimal.Decimal

	// TotalLoanPrincipal is the sum of original loan amounts.
	TotalLoanPrincipal decimal.Decimal
}

// Summarize computes the summary of ds.
func Summarize(ds *Dataset) Summary {
	s := Summary{
		Counts:             ds.Counts(),
		TotalDeposits:      decimal.Zero,
		TotalLoanPrincipal: decimal.Zero,
	}

	for i, t := range ds.Transactions {
		if i == 0 || t.Date.Before(s.FirstTransaction) {
			s.FirstTransaction = t.Date
		}
		if i == 0 || t.Date.After(s.LastTransaction) {
			s.LastTransaction = t.Date
		}
	}

	for _, a := range ds.Accounts {
		s.TotalDeposits = s.TotalDeposits.Add(decimal.NewFromFloat(a.Balance))
	}
	s.TotalDeposits = s.TotalDeposits.Round(2)

	for _, l := range ds.Loans {
		s.TotalLoanPrincipal = s.TotalLoanPrincipal.Add(decimal.NewFromInt(l.Amount))
	}

	return s
}

// Write prints the summary as plain text.
func (s Summary) Write(w io.Writer) error {
	if _, err := fmt.Fprintln(w, "Dataset summary"); err != nil {
		return err
	}
	for _, c := range s.Counts {
		if _, err := fmt.Fprintf(w, "  %-14s %d records\n", c.Table, c.Rows); err != nil {
			return err
		}
	}

	txnRange := "none"
	if !s.FirstTransaction.IsZero() {
		txnRange = fmt.Sprintf("%s to %s",
			s.FirstTransaction.Format(time.DateOnly), s.LastTransaction.Format(time.DateOnly))
	}

	_, err := fmt.Fprintf(w, "  transaction dates: %s\n  total deposits: $%s\n  total loan principal: $%s\n",
		txnRange, s.TotalDeposits.StringFixed(2), s.TotalLoanPrincipal.StringFixed(2))
	return err
}
