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

// BusinessHours models commercial accounts that transact while branches and
// back offices are open.
// Peak hours: 8AM - 6PM local time
// Lunch dip: 12PM - 1PM (50% reduction)
// Early morning: 6AM - 8AM ramps up from 5%
// Evening: 6PM - 10PM ramps down to 20%
// Night: 10PM - 6AM (5%, batch settlement)
// Weekend: 5% (branches closed, only batch settlement runs)
type BusinessHours struct {
	tz *time.Location
}

// NewBusinessHours creates a new BusinessHours profile.
func NewBusinessHours(tz *time.Location) Profile {
	return &BusinessHours{tz: tz}
}

func (p *BusinessHours) Name() string {
	return "business-hours"
}

func (p *BusinessHours) Description() string {
	return "Commercial banking (8AM-6PM, weekday focus)"
}

func (p *BusinessHours) GetActivityLevel(t time.Time) float64 {
	t = t.In(p.tz)
	hour := t.Hour()

	if wd := t.Weekday(); wd == time.Saturday || wd == time.Sunday {
		return 0.05
	}

	decimalHour := float64(hour) + float64(t.Minute())/60.0

	switch {
	case hour >= 22 || hour < 6:
		return 0.05
	case hour < 8:
		return 0.05 + 0.95*(decimalHour-6.0)/2.0
	case hour < 18:
		if hour == 12 {
			return 0.50
		}
		return 1.0
	default:
		return 1.0 - 0.80*(decimalHour-18.0)/4.0
	}
}
