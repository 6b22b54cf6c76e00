//-------------------------------------------------------------------------
//
// pgEdge Bank Data Generator
//
// Copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package profiles

import (
	"time"
)

// retailBankingHours is the share of card and account activity falling into
// each hour of the day. Near zero overnight, a morning peak from 8AM and a
// larger evening peak around 5PM.
var retailBankingHours = [24]float64{
	0.01, 0.005, 0.002, 0.001, 0.001, 0.005, 0.02, 0.05,
	0.07, 0.06, 0.05, 0.06, 0.07, 0.06, 0.05, 0.06,
	0.07, 0.08, 0.06, 0.04, 0.03, 0.02, 0.01, 0.005,
}

// RetailBanking models consumer banking activity: spending and transfers
// follow the working day with a dip overnight. The same curve applies every
// day of the week.
type RetailBanking struct {
	tz *time.Location
}

// NewRetailBanking creates a new RetailBanking profile.
func NewRetailBanking(tz *time.Location) Profile {
	return &RetailBanking{tz: tz}
}

func (p *RetailBanking) Name() string {
	return "retail-banking"
}

func (p *RetailBanking) Description() string {
	return "Retail banking (morning and evening peaks, quiet overnight)"
}

func (p *RetailBanking) GetActivityLevel(t time.Time) float64 {
	return retailBankingHours[t.In(p.tz).Hour()]
}
