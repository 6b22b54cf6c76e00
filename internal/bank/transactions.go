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
	"sort"
	"time"

	"github.com/pgEdge/pgedge-bankgen/internal/datagen"
)

// dailyRate is the normal distribution of an account's mean number of
// transactions per day.
type dailyRate struct {
	mean, std float64
}

var dailyRates = map[AccountType]dailyRate{
	Checking:    {2, 1},
	Savings:     {0.3, 0.2},
	MoneyMarket: {0.2, 0.15},
	CD:          {0.05, 0.03},
}

var checkingTxnTypes = datagen.MustDiscrete(
	[]string{TxnPOS, TxnATM, TxnTransfer, TxnOnlinePayment, TxnDirectDeposit},
	[]float64{0.4, 0.2, 0.15, 0.2, 0.05},
)

var depositTxnTypes = datagen.MustDiscrete(
	[]string{TxnDeposit, TxnWithdrawal, TxnInterest, TxnTransfer},
	[]float64{0.4, 0.3, 0.2, 0.1},
)

var merchantCategories = []string{
	"Retail", "Groceries", "Dining", "Utilities", "Entertainment",
	"Travel", "Healthcare", "Education", "Other",
}

var atmAmounts = []float64{20, 40, 60, 80, 100}

const (
	minDailyRate = 0.01

	// countJitter is the relative standard deviation applied around the
	// expected number of transactions.
	countJitter = 0.1

	overdraftFloor   = -1000.0
	overdraftRefill  = 100.0
	failureRate      = 0.01
	descriptionWords = 6
)

// pending is a transaction whose amount has been drawn but not yet applied
// to the running balance.
type pending struct {
	date        time.Time
	txnType     string
	amount      float64
	merchant    string
	category    string
	description string
	status      string
}

// Transactions simulates the history of every active account. Each account
// history runs its own balance, starting from the account balance. Rows are
// emitted account by account.
func (g *Generator) Transactions(accounts []Account) []Transaction {
	progress := datagen.NewProgressReporter("transactions", 0, 0)
	var txns []Transaction

	for _, a := range accounts {
		before := len(txns)
		txns = g.simulateAccount(a, txns)
		progress.Update(int64(len(txns) - before))
	}

	progress.Done()
	return txns
}

// historyStart is the first day an account can have transactions on.
func (g *Generator) historyStart(a Account) time.Time {
	if g.opts.ClampToWindow && a.OpenDate.Before(g.opts.StartDate) {
		return g.opts.StartDate
	}
	return a.OpenDate
}

// simulateAccount appends the history of one account to txns.
func (g *Generator) simulateAccount(a Account, txns []Transaction) []Transaction {
	if a.Status != AccountActive {
		return txns
	}

	start := g.historyStart(a)
	days := datagen.DaysBetween(start, g.opts.EndDate)
	if days <= 0 {
		return txns
	}

	dr := dailyRates[a.Type]
	rate := math.Max(minDailyRate, g.src.Normal(dr.mean, dr.std))
	expected := float64(days) * rate
	count := max(1, int(math.Round(g.src.Normal(expected, expected*countJitter))))

	running := a.Balance
	post := func(p pending, amount float64) {
		running += amount
		txns = append(txns, Transaction{
			ID:               transactionID(len(txns) + 1),
			AccountID:        a.ID,
			Date:             p.date,
			Type:             p.txnType,
			Amount:           amount,
			BalanceAfter:     running,
			MerchantName:     p.merchant,
			MerchantCategory: p.category,
			Description:      p.description,
			Status:           p.status,
		})
	}

	pickDay := g.dayPicker(start, days)

	if !g.opts.Chronological {
		for range count {
			p := g.drawPending(a.Type, start, pickDay)
			amount := g.clampOverdraft(running, p.amount)
			p.status = g.drawStatus()
			post(p, amount)
		}
		return txns
	}

	// Everything but the clamp is drawn up front, the clamp then follows
	// the balance in time order.
	batch := make([]pending, count)
	for i := range batch {
		batch[i] = g.drawPending(a.Type, start, pickDay)
		batch[i].status = g.drawStatus()
	}
	sort.SliceStable(batch, func(i, j int) bool {
		return batch[i].date.Before(batch[j].date)
	})
	for _, p := range batch {
		post(p, g.clampOverdraft(running, p.amount))
	}
	return txns
}

// dayPicker returns a function drawing a day offset in [0, days] from start.
// Offsets are uniform unless day-of-week weights are set, in which case each
// day is weighted by its weekday.
func (g *Generator) dayPicker(start time.Time, days int) func() int {
	if g.opts.DayWeights == nil {
		return func() int { return g.src.IntRange(0, days) }
	}

	offsets := make([]int, days+1)
	weights := make([]float64, days+1)
	for d := range offsets {
		offsets[d] = d
		weights[d] = g.opts.DayWeights[start.AddDate(0, 0, d).Weekday()]
	}
	dist := datagen.MustDiscrete(offsets, weights)
	return func() int { return dist.Pick(g.src) }
}

// drawPending draws timestamp, type, raw amount and merchant details.
func (g *Generator) drawPending(t AccountType, start time.Time, pickDay func() int) pending {
	day := pickDay()
	hour := g.hours.Pick(g.src)
	minute := g.src.IntRange(0, 59)
	second := g.src.IntRange(0, 59)

	p := pending{
		date: start.AddDate(0, 0, day).Add(
			time.Duration(hour)*time.Hour +
				time.Duration(minute)*time.Minute +
				time.Duration(second)*time.Second),
	}

	if t == Checking {
		p.txnType = checkingTxnTypes.Pick(g.src)
	} else {
		p.txnType = depositTxnTypes.Pick(g.src)
	}
	p.amount = g.drawAmount(p.txnType)
	p.merchant, p.category, p.description = g.drawMerchant(p.txnType)

	return p
}

func (g *Generator) drawAmount(txnType string) float64 {
	switch txnType {
	case TxnDeposit, TxnDirectDeposit:
		return math.Abs(g.src.Normal(1500, 1000))
	case TxnPOS:
		return -math.Abs(g.src.LogNormal(3.5, 1.2))
	case TxnATM:
		return -datagen.Choose(g.src, atmAmounts)
	case TxnInterest:
		return math.Abs(g.src.Normal(50, 20))
	default:
		return g.src.Normal(0, 500) * g.src.Sign()
	}
}

func (g *Generator) drawMerchant(txnType string) (merchant, category, description string) {
	switch txnType {
	case TxnPOS:
		merchant = g.src.Company()
		category = datagen.Choose(g.src, merchantCategories)
		return merchant, category, g.src.Sentence(descriptionWords)
	case TxnATM:
		return "", "", "ATM Withdrawal"
	case TxnInterest:
		return "", "", "Interest Payment"
	default:
		return "", "", g.src.Sentence(descriptionWords)
	}
}

// clampOverdraft replaces an amount that would take the balance below the
// overdraft floor with a payment leaving the balance slightly above zero.
func (g *Generator) clampOverdraft(running, amount float64) float64 {
	if running+amount < overdraftFloor {
		return -running + g.src.Uniform(0, overdraftRefill)
	}
	return amount
}

func (g *Generator) drawStatus() string {
	if g.src.Float64() > failureRate {
		return TxnStatusComplete
	}
	return TxnStatusFailed
}
