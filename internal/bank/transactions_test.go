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
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func longLivedAccounts(n int, t AccountType) []Account {
	accounts := make([]Account, n)
	for i := range accounts {
		accounts[i] = Account{
			ID:       accountID(i + 1),
			Type:     t,
			Balance:  250,
			OpenDate: time.Date(2019, 1, 1, 0, 0, 0, 0, time.UTC),
			Status:   AccountActive,
		}
	}
	return accounts
}

// byAccount groups transactions per account, keeping emission order.
func byAccount(txns []Transaction) map[string][]Transaction {
	groups := make(map[string][]Transaction)
	for _, t := range txns {
		groups[t.AccountID] = append(groups[t.AccountID], t)
	}
	return groups
}

func TestTransactionsOnlyForActiveAccounts(t *testing.T) {
	g := newTestGenerator(t, 1, 0)
	accounts := longLivedAccounts(3, Checking)
	accounts[0].Status = AccountDormant
	accounts[2].Status = AccountClosed

	txns := g.Transactions(accounts)
	require.NotEmpty(t, txns)
	for _, txn := range txns {
		assert.Equal(t, accounts[1].ID, txn.AccountID)
	}
}

func TestTransactionsAccountOpenedOnEndDate(t *testing.T) {
	g := newTestGenerator(t, 1, 0)
	a := Account{
		ID:       "ACC000001",
		Type:     Checking,
		Balance:  100,
		OpenDate: g.Options().EndDate,
		Status:   AccountActive,
	}

	assert.Empty(t, g.Transactions([]Account{a}))

	a.OpenDate = g.Options().EndDate.AddDate(0, 0, 3)
	assert.Empty(t, g.Transactions([]Account{a}))
}

func TestTransactionsRunningBalance(t *testing.T) {
	ds := newTestGenerator(t, 42, 60).Generate()
	require.NotEmpty(t, ds.Transactions)

	groups := byAccount(ds.Transactions)
	for _, a := range ds.Accounts {
		history := groups[a.ID]
		if a.Status != AccountActive {
			assert.Empty(t, history, "account %s is %s", a.ID, a.Status)
			continue
		}

		running := a.Balance
		for _, txn := range history {
			running += txn.Amount
			require.Equal(t, running, txn.BalanceAfter, "transaction %s", txn.ID)
		}
	}
}

func TestTransactionsIDsAreSequential(t *testing.T) {
	ds := newTestGenerator(t, 4, 20).Generate()
	for i, txn := range ds.Transactions {
		require.Equal(t, transactionID(i+1), txn.ID)
	}
}

func TestTransactionsOverdraftFloor(t *testing.T) {
	g := newTestGenerator(t, 3, 0)
	txns := g.Transactions(longLivedAccounts(5, Savings))
	require.NotEmpty(t, txns)

	for _, txn := range txns {
		assert.GreaterOrEqual(t, txn.BalanceAfter, overdraftFloor, "transaction %s", txn.ID)
	}
}

func TestTransactionsFailureRate(t *testing.T) {
	g := newTestGenerator(t, 99, 0)
	txns := g.Transactions(longLivedAccounts(12, Checking))
	require.Greater(t, len(txns), 10000)

	failed := 0
	for _, txn := range txns {
		if txn.Status == TxnStatusFailed {
			failed++
		}
	}
	assert.InDelta(t, failureRate, float64(failed)/float64(len(txns)), 0.004)
}

func TestTransactionsTypesAndAmounts(t *testing.T) {
	g := newTestGenerator(t, 12, 0)
	accounts := append(longLivedAccounts(3, Checking), longLivedAccounts(4, Savings)...)
	for i := range accounts {
		accounts[i].ID = accountID(i + 1)
	}
	txns := g.Transactions(accounts)

	types := make(map[AccountType]map[string]bool)
	accountType := make(map[string]AccountType)
	for _, a := range accounts {
		accountType[a.ID] = a.Type
	}

	for _, txn := range txns {
		at := accountType[txn.AccountID]
		if types[at] == nil {
			types[at] = make(map[string]bool)
		}
		types[at][txn.Type] = true

		switch txn.Type {
		case TxnATM:
			// A withdrawal that would breach the overdraft floor is replaced
			// by a top-up leaving the balance just above zero.
			previous := txn.BalanceAfter - txn.Amount
			switch {
			case containsFloat(atmAmounts, -txn.Amount):
			case previous-100 < overdraftFloor:
				assert.GreaterOrEqual(t, txn.BalanceAfter, 0.0, "transaction %s", txn.ID)
				assert.Less(t, txn.BalanceAfter, overdraftRefill, "transaction %s", txn.ID)
			default:
				assert.Fail(t, "unexpected ATM amount", "transaction %s amount %f", txn.ID, txn.Amount)
			}
			assert.Equal(t, "ATM Withdrawal", txn.Description)
			assert.Empty(t, txn.MerchantName)
		case TxnPOS:
			assert.NotEmpty(t, txn.MerchantName)
			assert.Contains(t, merchantCategories, txn.MerchantCategory)
			assert.NotEmpty(t, txn.Description)
		case TxnInterest:
			assert.Equal(t, "Interest Payment", txn.Description)
			assert.Empty(t, txn.MerchantCategory)
		default:
			assert.Empty(t, txn.MerchantName)
			assert.Empty(t, txn.MerchantCategory)
			assert.NotEmpty(t, txn.Description)
		}
	}

	assert.ElementsMatch(t,
		[]string{TxnPOS, TxnATM, TxnTransfer, TxnOnlinePayment, TxnDirectDeposit},
		keys(types[Checking]))
	assert.ElementsMatch(t,
		[]string{TxnDeposit, TxnWithdrawal, TxnInterest, TxnTransfer},
		keys(types[Savings]))
}

func containsFloat(values []float64, v float64) bool {
	for _, x := range values {
		if x == v {
			return true
		}
	}
	return false
}

func TestClampOverdraft(t *testing.T) {
	g := newTestGenerator(t, 3, 0)

	tests := []struct {
		name    string
		running float64
		amount  float64
		clamped bool
	}{
		{"withdrawal above floor", 100, -400, false},
		{"withdrawal landing on floor", 100, -1100, false},
		{"withdrawal within floor", -900, -100, false},
		{"withdrawal exactly at floor", -960, -40, false},
		{"ATM withdrawal past floor", -950, -100, true},
		{"large transfer past floor", 200, -1500, true},
		{"transfer past floor", -500, -600, true},
		{"deposit", -990, 500, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := g.clampOverdraft(tt.running, tt.amount)
			if !tt.clamped {
				assert.Equal(t, tt.amount, got)
				return
			}
			balance := tt.running + got
			assert.GreaterOrEqual(t, balance, 0.0)
			assert.Less(t, balance, overdraftRefill)
		})
	}
}

func TestTransactionsATMAmountsWithoutClamp(t *testing.T) {
	g := newTestGenerator(t, 21, 0)
	for i := 0; i < 1000; i++ {
		assert.Contains(t, []float64{-20, -40, -60, -80, -100}, g.drawAmount(TxnATM))
	}
}

func TestTransactionsDatesWithinHistory(t *testing.T) {
	g := newTestGenerator(t, 8, 0)
	accounts := longLivedAccounts(2, Checking)
	end := g.Options().EndDate.AddDate(0, 0, 1)

	for _, txn := range g.Transactions(accounts) {
		assert.False(t, txn.Date.Before(accounts[0].OpenDate), "transaction %s at %s", txn.ID, txn.Date)
		assert.True(t, txn.Date.Before(end), "transaction %s at %s", txn.ID, txn.Date)
	}
}

func TestTransactionsClampToWindow(t *testing.T) {
	accounts := longLivedAccounts(2, Checking)

	unclamped := newTestGenerator(t, 8, 0)
	start := unclamped.Options().StartDate
	early := 0
	for _, txn := range unclamped.Transactions(accounts) {
		if txn.Date.Before(start) {
			early++
		}
	}
	assert.Positive(t, early)

	clamped := newTestGenerator(t, 8, 0, func(o *Options) { o.ClampToWindow = true })
	txns := clamped.Transactions(accounts)
	require.NotEmpty(t, txns)
	for _, txn := range txns {
		assert.False(t, txn.Date.Before(start), "transaction %s at %s", txn.ID, txn.Date)
	}
}

func TestTransactionsChronological(t *testing.T) {
	g := newTestGenerator(t, 42, 40, func(o *Options) { o.Chronological = true })
	ds := g.Generate()
	require.NotEmpty(t, ds.Transactions)

	groups := byAccount(ds.Transactions)
	for _, a := range ds.Accounts {
		history := groups[a.ID]
		running := a.Balance
		for i, txn := range history {
			if i > 0 {
				require.False(t, txn.Date.Before(history[i-1].Date), "transaction %s out of order", txn.ID)
			}
			running += txn.Amount
			require.Equal(t, running, txn.BalanceAfter, "transaction %s", txn.ID)
			require.GreaterOrEqual(t, txn.BalanceAfter, overdraftFloor)
		}
	}
}

func TestTransactionsHourWeights(t *testing.T) {
	weights := make([]float64, 24)
	weights[9] = 1
	weights[14] = 3

	g := newTestGenerator(t, 5, 0, func(o *Options) { o.HourWeights = weights })
	txns := g.Transactions(longLivedAccounts(3, Checking))
	require.Greater(t, len(txns), 1000)

	afternoon := 0
	for _, txn := range txns {
		h := txn.Date.Hour()
		require.Contains(t, []int{9, 14}, h)
		if h == 14 {
			afternoon++
		}
	}
	assert.InDelta(t, 0.75, float64(afternoon)/float64(len(txns)), 0.05)
}

func weekendShare(txns []Transaction) float64 {
	weekend := 0
	for _, txn := range txns {
		if wd := txn.Date.Weekday(); wd == time.Saturday || wd == time.Sunday {
			weekend++
		}
	}
	return float64(weekend) / float64(len(txns))
}

func TestTransactionsDayOfWeekWeights(t *testing.T) {
	quietWeekend := []float64{0.05, 1, 1, 1, 1, 1, 0.05}

	tests := []struct {
		name     string
		weights  []float64
		min, max float64
	}{
		// 2/7 of the days are weekend days
		{"uniform days", nil, 0.25, 0.32},
		// 0.1 / 5.1 of the weight falls on weekends
		{"quiet weekend", quietWeekend, 0.005, 0.04},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGenerator(t, 17, 0, func(o *Options) { o.DayWeights = tt.weights })
			accounts := longLivedAccounts(4, Checking)
			txns := g.Transactions(accounts)
			require.Greater(t, len(txns), 1000)

			share := weekendShare(txns)
			assert.GreaterOrEqual(t, share, tt.min)
			assert.LessOrEqual(t, share, tt.max)

			end := g.Options().EndDate.AddDate(0, 0, 1)
			for _, txn := range txns {
				assert.False(t, txn.Date.Before(accounts[0].OpenDate), "transaction %s at %s", txn.ID, txn.Date)
				assert.True(t, txn.Date.Before(end), "transaction %s at %s", txn.ID, txn.Date)
			}
		})
	}
}

func TestTransactionsDayOfWeekDeterministic(t *testing.T) {
	weights := []float64{1.2, 1, 1, 1, 1, 1, 1.2}
	run := func() []Transaction {
		g := newTestGenerator(t, 5, 0, func(o *Options) { o.DayWeights = weights })
		return g.Transactions(longLivedAccounts(2, Checking))
	}
	assert.Equal(t, run(), run())
}

func keys(m map[string]bool) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}

func BenchmarkTransactions(b *testing.B) {
	accounts := longLivedAccounts(10, Checking)
	g := newTestGenerator(b, 1, 0)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g.Transactions(accounts)
	}
}
