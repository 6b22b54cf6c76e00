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
	"math"
	"time"
)

// RoundTheClock models treasury and payment traffic that follows business
// hours around the globe.
// Minimum activity: 30% (never drops below)
// Quiet hours: 2AM - 4AM UTC (20% reduction)
// Weekend: 45% of weekday activity (wire and clearing systems mostly closed)
type RoundTheClock struct{}

// NewRoundTheClock creates a new RoundTheClock profile.
func NewRoundTheClock(_ *time.Location) Profile {
	return &RoundTheClock{}
}

func (p *RoundTheClock) Name() string {
	return "round-the-clock"
}

func (p *RoundTheClock) Description() string {
	return "Global payments (24/7 with rolling business-hour peaks)"
}

func (p *RoundTheClock) GetActivityLevel(t time.Time) float64 {
	utc := t.UTC()
	hour := utc.Hour()

	// 9AM-5PM in New York, Frankfurt and Tokyo
	combined := math.Max(rampedWindow(hour, 14, 22, 0.5, 0),
		math.Max(rampedWindow(hour, 8, 16, 0.5, 0), rampedWindow(hour, 0, 8, 0.5, 0)))

	if hour >= 2 && hour < 4 {
		combined *= 0.80
	}

	activity := 0.30 + 0.70*combined
	if wd := utc.Weekday(); wd == time.Saturday || wd == time.Sunday {
		activity *= 0.45
	}
	return activity
}
