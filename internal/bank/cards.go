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

var cardNetworks = []string{"Visa", "MasterCard", "American Express"}

var cardStatuses = datagen.MustDiscrete(
	[]string{"Active", "Inactive", "Blocked"},
	[]float64{0.9, 0.08, 0.02},
)

const (
	cardPenetration = 0.6
	minCreditLimit  = 1000
	maxCreditLimit  = 50_000
	maxUtilization  = 0.8
)

// CreditCards samples 60% of customers without replacement and issues one
// card to each, in sampled order.
func (g *Generator) CreditCards(customers []Customer) []CreditCard {
	picked := g.src.Sample(len(customers), cardPenetration)
	progress := datagen.NewProgressReporter("credit_cards", int64(len(picked)), 0)
	cards := make([]CreditCard, 0, len(picked))
	asOf := g.opts.AsOf

	for i, idx := range picked {
		c := customers[idx]

		limit := clampInt(int(g.src.Normal(8000, 4000)), minCreditLimit, maxCreditLimit)
		balance := g.src.IntRange(0, int(float64(limit)*maxUtilization))

		card := CreditCard{
			ID:              cardID(i + 1),
			CustomerID:      c.ID,
			CreditLimit:     int64(limit),
			CurrentBalance:  int64(balance),
			AvailableCredit: int64(limit - balance),
		}
		card.Number = g.src.Digits(16)
		card.ExpiryDate = g.src.DateBetween(asOf, asOf.AddDate(5, 0, 0))
		card.IssueDate = g.src.DateBetween(c.CustomerSince, asOf)
		card.CardType = datagen.Choose(g.src, cardNetworks)
		card.Status = cardStatuses.Pick(g.src)

		cards = append(cards, card)
		progress.Update(1)
	}

	progress.Done()
	return cards
}
