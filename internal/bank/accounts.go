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

var accountTypes = datagen.MustDiscrete(
	[]AccountType{Checking, Savings, MoneyMarket, CD},
	[]float64{0.5, 0.3, 0.15, 0.05},
)

var accountStatuses = datagen.MustDiscrete(
	[]string{AccountActive, AccountDormant, AccountClosed},
	[]float64{0.85, 0.10, 0.05},
)

// balanceParams describes the opening balance of an account type: a normal
// distribution floored at min.
type balanceParams struct {
	min, mean, std float64
}

var openingBalances = map[AccountType]balanceParams{
	Checking:    {0, 5000, 3000},
	Savings:     {0, 15000, 10000},
	MoneyMarket: {0, 25000, 15000},
	CD:          {1000, 10000, 5000},
}

type rateBand struct {
	lo, hi float64
}

const checkingRate = 0.0001

var interestRates = map[AccountType]rateBand{
	Savings:     {0.01, 0.03},
	MoneyMarket: {0.02, 0.04},
	CD:          {0.025, 0.05},
}

// meanAccountsPerCustomer is the mean of the exponential account count.
const meanAccountsPerCustomer = 1.5

// Accounts generates at least one account per customer. Account numbers are
// sequential across the whole table.
func (g *Generator) Accounts(customers []Customer) []Account {
	progress := datagen.NewProgressReporter("accounts", 0, 0)
	accounts := make([]Account, 0, len(customers)*2)

	for _, c := range customers {
		n := max(1, int(math.Round(g.src.Exponential(1/meanAccountsPerCustomer))))

		for range n {
			accountType := accountTypes.Pick(g.src)
			bp := openingBalances[accountType]

			a := Account{
				ID:         accountID(len(accounts) + 1),
				CustomerID: c.ID,
				Type:       accountType,
			}
			a.Balance = datagen.RoundTo(math.Max(bp.min, g.src.Normal(bp.mean, bp.std)), 2)
			a.Number = g.src.Digits(12)
			a.OpenDate = g.src.DateBetween(c.CustomerSince, g.opts.AsOf)
			a.InterestRate = g.interestRate(accountType)
			a.Status = accountStatuses.Pick(g.src)

			accounts = append(accounts, a)
		}
		progress.Update(int64(n))
	}

	progress.Done()
	return accounts
}

func (g *Generator) interestRate(t AccountType) float64 {
	band, ok := interestRates[t]
	if !ok {
		return checkingRate
	}
	return datagen.RoundTo(g.src.Uniform(band.lo, band.hi), 4)
}
