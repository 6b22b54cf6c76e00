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
	"math"

	"github.com/pgEdge/pgedge-bankgen/internal/datagen"
)

// loanProduct holds the amount, term and rate ranges of a loan type.
type loanProduct struct {
	name      string
	minAmount int
	maxAmount int
	terms     []int
	minRate   float64
	maxRate   float64
}

var loanProducts = datagen.MustDiscrete(
	[]loanProduct{
		{"Mortgage", 100_000, 500_000, []int{180, 240, 360}, 0.03, 0.06},
		{"Auto", 10_000, 50_000, []int{36, 48, 60, 72}, 0.04, 0.08},
		{"Personal", 5_000, 50_000, []int{12, 24, 36, 48, 60}, 0.06, 0.12},
		{"Student", 10_000, 100_000, []int{120, 180, 240}, 0.04, 0.08},
	},
	[]float64{0.4, 0.3, 0.2, 0.1},
)

var loanStatuses = datagen.MustDiscrete(
	[]string{"Current", "Delinquent", "Paid Off"},
	[]float64{0.85, 0.10, 0.05},
)

const loanPenetration = 0.3

// Loans samples 30% of customers without replacement and issues one loan to
// each, in sampled order.
func (g *Generator) Loans(customers []Customer) []Loan {
	picked := g.src.Sample(len(customers), loanPenetration)
	progress := datagen.NewProgressReporter("loans", int64(len(picked)), 0)
	loans := make([]Loan, 0, len(picked))

	for i, idx := range picked {
		c := customers[idx]
		product := loanProducts.Pick(g.src)

		amount := g.src.IntRange(product.minAmount, product.maxAmount)
		term := datagen.Choose(g.src, product.terms)
		rate := g.src.Uniform(product.minRate, product.maxRate)

		l := Loan{
			ID:             loanID(i + 1),
			CustomerID:     c.ID,
			Type:           product.name,
			Amount:         int64(amount),
			InterestRate:   datagen.RoundTo(rate, 4),
			TermMonths:     term,
			MonthlyPayment: datagen.RoundTo(MonthlyPayment(float64(amount), rate, term), 2),
		}
		l.StartDate = g.src.DateBetween(c.CustomerSince, g.opts.AsOf)
		l.RemainingBalance = datagen.RoundTo(float64(amount)*g.src.Uniform(0.1, 0.9), 2)
		l.Status = loanStatuses.Pick(g.src)

		loans = append(loans, l)
		progress.Update(1)
	}

	progress.Done()
	return loans
}

// MonthlyPayment returns the fixed monthly payment that retires principal
// over months at the given annual rate.
func MonthlyPayment(principal, annualRate float64, months int) float64 {
	if months <= 0 {
		return 0
	}
	r := annualRate / 12
	if r == 0 {
		return principal / float64(months)
	}
	growth := math.Pow(1+r, float64(months))
	return principal * r * growth / (growth - 1)
}
