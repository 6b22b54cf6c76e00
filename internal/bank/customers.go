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
	"github.com/pgEdge/pgedge-bankgen/internal/datagen"
)

type ageBracket struct {
	label     string
	minAge    int
	maxAge    int
	minIncome float64
	maxIncome float64
}

var ageBrackets = datagen.MustDiscrete(
	[]ageBracket{
		{"18-25", 18, 25, 20_000, 60_000},
		{"26-35", 26, 35, 35_000, 90_000},
		{"36-45", 36, 45, 50_000, 150_000},
		{"46-55", 46, 55, 60_000, 180_000},
		{"56-65", 56, 65, 55_000, 160_000},
		{"65+", 65, 90, 30_000, 100_000},
	},
	[]float64{0.15, 0.25, 0.20, 0.15, 0.15, 0.10},
)

var employmentStatuses = datagen.MustDiscrete(
	[]string{"Employed", "Self-Employed", "Unemployed", "Retired"},
	[]float64{0.6, 0.15, 0.1, 0.15},
)

const (
	minCreditScore = 300
	maxCreditScore = 850
)

// Customers generates the configured number of customers, each assigned to
// a uniformly chosen branch.
func (g *Generator) Customers(branches []Branch) []Customer {
	asOf := g.opts.AsOf
	branchIDs := make([]string, len(branches))
	for i, b := range branches {
		branchIDs[i] = b.ID
	}

	progress := datagen.NewProgressReporter("customers", int64(g.opts.CustomerCount), 0)
	customers := make([]Customer, 0, g.opts.CustomerCount)

	for i := 0; i < g.opts.CustomerCount; i++ {
		bracket := ageBrackets.Pick(g.src)
		age := g.src.IntRange(bracket.minAge, bracket.maxAge)
		birth := asOf.AddDate(0, 0, -(age*365 + g.src.IntRange(0, 364)))

		mid := (bracket.minIncome + bracket.maxIncome) / 2
		spread := (bracket.maxIncome - bracket.minIncome) / 4
		income := datagen.Clip(g.src.Normal(mid, spread), bracket.minIncome, bracket.maxIncome)

		c := Customer{
			ID:          customerID(i + 1),
			DateOfBirth: datagen.TruncateDay(birth),
		}
		c.FirstName = g.src.FirstName()
		c.LastName = g.src.LastName()
		c.Email = g.src.Email()
		c.Phone = g.src.Phone()
		c.Address = g.src.Street()
		c.City = g.src.City()
		c.State = g.src.State()
		c.ZipCode = g.src.Zip()
		c.SSN = g.src.SSN()
		c.CustomerSince = g.src.DateBetween(asOf.AddDate(-10, 0, 0), asOf)
		c.CreditScore = clampInt(int(g.src.Normal(700, 100)), minCreditScore, maxCreditScore)
		c.AnnualIncome = int64(income)
		c.EmploymentStatus = employmentStatuses.Pick(g.src)
		c.BranchID = datagen.Choose(g.src, branchIDs)

		customers = append(customers, c)
		progress.Update(1)
	}

	progress.Done()
	return customers
}

func clampInt(v, lo, hi int) int {
	return max(lo, min(hi, v))
}
