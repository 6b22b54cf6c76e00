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
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pgEdge/pgedge-bankgen/internal/datagen"
)

var digitsOnly = regexp.MustCompile(`^[0-9]+$`)

func TestBranches(t *testing.T) {
	g := newTestGenerator(t, 42, 0)
	asOf := g.Options().AsOf

	branches := g.Branches()
	require.Len(t, branches, BranchCount)
	require.Len(t, branchCities, BranchCount)

	for i, b := range branches {
		city := branchCities[i]
		assert.Equal(t, city.name+" Main Branch", b.Name)
		assert.Equal(t, city.state, b.State)
		assert.InDelta(t, city.latitude, b.Latitude, coordinateJitter)
		assert.InDelta(t, city.longitude, b.Longitude, coordinateJitter)
		assert.NotEmpty(t, b.ZipCode)

		assert.False(t, b.OpeningDate.Before(asOf.AddDate(-20, 0, 0)), "opening date %s", b.OpeningDate)
		assert.False(t, b.OpeningDate.After(asOf.AddDate(-1, 0, 0)), "opening date %s", b.OpeningDate)
		assert.GreaterOrEqual(t, b.TotalDeposits, int64(50_000_000))
		assert.LessOrEqual(t, b.TotalDeposits, int64(500_000_000))
		assert.GreaterOrEqual(t, b.EmployeeCount, 15)
		assert.LessOrEqual(t, b.EmployeeCount, 100)
	}
}

func TestCustomers(t *testing.T) {
	g := newTestGenerator(t, 42, 500)
	asOf := g.Options().AsOf
	branches := g.Branches()
	customers := g.Customers(branches)

	require.Len(t, customers, 500)

	for i, c := range customers {
		assert.Equal(t, customerID(i+1), c.ID)
		assert.GreaterOrEqual(t, c.CreditScore, minCreditScore)
		assert.LessOrEqual(t, c.CreditScore, maxCreditScore)
		assert.GreaterOrEqual(t, c.AnnualIncome, int64(20_000))
		assert.LessOrEqual(t, c.AnnualIncome, int64(180_000))
		assert.Len(t, c.SSN, 9)
		assert.Regexp(t, digitsOnly, c.SSN)
		assert.NotEmpty(t, c.FirstName)
		assert.NotEmpty(t, c.Email)
		assert.Contains(t, []string{"Employed", "Self-Employed", "Unemployed", "Retired"}, c.EmploymentStatus)

		age := asOf.Sub(c.DateOfBirth).Hours() / 24 / 365
		assert.GreaterOrEqual(t, age, 18.0, "customer %s", c.ID)
		assert.Less(t, age, 92.0, "customer %s", c.ID)

		assert.False(t, c.CustomerSince.After(asOf))
		assert.False(t, c.CustomerSince.Before(asOf.AddDate(-10, 0, 0)))
	}
}

func TestAccounts(t *testing.T) {
	g := newTestGenerator(t, 11, 300)
	asOf := g.Options().AsOf
	customers := g.Customers(g.Branches())
	accounts := g.Accounts(customers)

	since := make(map[string]int)
	perCustomer := make(map[string]int)
	for i, c := range customers {
		since[c.ID] = i
	}

	for i, a := range accounts {
		assert.Equal(t, accountID(i+1), a.ID)
		perCustomer[a.CustomerID]++

		c := customers[since[a.CustomerID]]
		assert.False(t, a.OpenDate.Before(c.CustomerSince), "account %s", a.ID)
		assert.False(t, a.OpenDate.After(asOf), "account %s", a.ID)

		assert.Len(t, a.Number, 12)
		assert.Regexp(t, digitsOnly, a.Number)
		assert.GreaterOrEqual(t, a.Balance, openingBalances[a.Type].min)
		assert.Equal(t, datagen.RoundTo(a.Balance, 2), a.Balance)

		switch a.Type {
		case Checking:
			assert.Equal(t, checkingRate, a.InterestRate)
		default:
			band := interestRates[a.Type]
			assert.GreaterOrEqual(t, a.InterestRate, band.lo)
			assert.LessOrEqual(t, a.InterestRate, band.hi)
		}
	}

	for _, c := range customers {
		assert.GreaterOrEqual(t, perCustomer[c.ID], 1, "customer %s has no account", c.ID)
	}
}

func TestLoans(t *testing.T) {
	g := newTestGenerator(t, 5, 200)
	asOf := g.Options().AsOf
	customers := g.Customers(g.Branches())
	loans := g.Loans(customers)

	require.Len(t, loans, 60)

	seen := make(map[string]bool)
	for i, l := range loans {
		assert.Equal(t, loanID(i+1), l.ID)
		assert.False(t, seen[l.CustomerID], "customer %s has two loans", l.CustomerID)
		seen[l.CustomerID] = true

		assert.GreaterOrEqual(t, l.MonthlyPayment*float64(l.TermMonths), float64(l.Amount), "loan %s", l.ID)
		assert.GreaterOrEqual(t, l.RemainingBalance, float64(l.Amount)*0.1-0.01)
		assert.LessOrEqual(t, l.RemainingBalance, float64(l.Amount)*0.9+0.01)
		assert.False(t, l.StartDate.After(asOf))
		assert.Contains(t, []string{"Current", "Delinquent", "Paid Off"}, l.Status)
	}
}

func TestMonthlyPayment(t *testing.T) {
	tests := []struct {
		name      string
		principal float64
		rate      float64
		months    int
		want      float64
	}{
		{"30 year mortgage", 100_000, 0.06, 360, 599.55},
		{"auto loan", 20_000, 0.05, 60, 377.42},
		{"zero rate", 12_000, 0, 12, 1000},
		{"zero term", 12_000, 0.05, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MonthlyPayment(tt.principal, tt.rate, tt.months)
			assert.InDelta(t, tt.want, got, 0.005)
		})
	}
}

func TestCreditCards(t *testing.T) {
	g := newTestGenerator(t, 9, 250)
	asOf := g.Options().AsOf
	customers := g.Customers(g.Branches())
	cards := g.CreditCards(customers)

	require.Len(t, cards, 150)

	for i, c := range cards {
		assert.Equal(t, cardID(i+1), c.ID)
		assert.Equal(t, c.CreditLimit-c.CurrentBalance, c.AvailableCredit)
		assert.GreaterOrEqual(t, c.CurrentBalance, int64(0))
		assert.LessOrEqual(t, float64(c.CurrentBalance), 0.8*float64(c.CreditLimit))
		assert.GreaterOrEqual(t, c.CreditLimit, int64(minCreditLimit))
		assert.LessOrEqual(t, c.CreditLimit, int64(maxCreditLimit))
		assert.Len(t, c.Number, 16)
		assert.Regexp(t, digitsOnly, c.Number)
		assert.False(t, c.ExpiryDate.Before(asOf))
		assert.False(t, c.ExpiryDate.After(asOf.AddDate(5, 0, 0)))
		assert.False(t, c.IssueDate.After(asOf))
		assert.Contains(t, cardNetworks, c.CardType)
	}
}
