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

// EveningSpend models card-heavy consumers who shop online after work.
// Night: 12AM - 6AM (15%)
// Morning: 6AM - 12PM (40%)
// Afternoon: 12PM - 5PM (60%)
// Evening peak: 5PM - 10PM (100%)
// Late night: 10PM - 12AM (70%)
// Weekend: 125% of weekday
type EveningSpend struct {
	tz *time.Location
}

// NewEveningSpend creates a new EveningSpend profile.
func NewEveningSpend(tz *time.Location) Profile {
	return &EveningSpend{tz: tz}
}

func (p *EveningSpend) Name() string {
	return "evening-spend"
}

func (p *EveningSpend) Description() string {
	return "Card spending, single region (evening peak)"
}

func (p *EveningSpend) GetActivityLevel(t time.Time) float64 {
	t = t.In(p.tz)

	var base float64
	switch hour := t.Hour(); {
	case hour < 6:
		base = 0.15
	case hour < 12:
		base = 0.40
	case hour < 17:
		base = 0.60
	case hour < 22:
		base = 1.0
	default:
		base = 0.70
	}

	if wd := t.Weekday(); wd == time.Saturday || wd == time.Sunday {
		base *= 1.25
	}
	return base
}

// GlobalCards models a card portfolio spread over the Americas, Europe and
// Asia. Each region contributes its evening shopping peak, activity never
// drops below 40% and weekends run at 115%. Hours are always UTC.
type GlobalCards struct{}

// NewGlobalCards creates a new GlobalCards profile.
func NewGlobalCards(_ *time.Location) Profile {
	return &GlobalCards{}
}

func (p *GlobalCards) Name() string {
	return "global-cards"
}

func (p *GlobalCards) Description() string {
	return "Card spending, global (24/7 with regional evening peaks)"
}

func (p *GlobalCards) GetActivityLevel(t time.Time) float64 {
	utc := t.UTC()
	hour := utc.Hour()

	// 5PM-10PM local in New York, Frankfurt and Tokyo
	combined := math.Max(rampedWindow(hour, 22, 3, 0.6, 0.3),
		math.Max(rampedWindow(hour, 16, 21, 0.6, 0.3), rampedWindow(hour, 8, 13, 0.6, 0.3)))

	activity := 0.40 + 0.60*combined
	if wd := utc.Weekday(); wd == time.Saturday || wd == time.Sunday {
		activity *= 1.15
	}
	return activity
}

// rampedWindow returns 1 inside [start, end), near for the hour on either
// side of the window, far for the hour beyond that, and 0 otherwise. Windows
// with start > end wrap around midnight.
func rampedWindow(hour, start, end int, near, far float64) float64 {
	dist := func(a, b int) int { return ((a-b)%24 + 24) % 24 }

	inside := false
	if start > end {
		inside = hour >= start || hour < end
	} else {
		inside = hour >= start && hour < end
	}

	switch {
	case inside:
		return 1.0
	case dist(start, hour) == 1 || dist(hour, end) == 0:
		return near
	case dist(start, hour) == 2 || dist(hour, end) == 1:
		return far
	}
	return 0.0
}
