//-------------------------------------------------------------------------
//
// pgEdge Bank Data Generator
//
// Copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

// Package profiles implements time-of-day activity profiles. The transaction
// simulator turns a profile into 24 hourly weights to decide at what hour of
// the day each transaction happens.
package profiles

import (
	"fmt"
	"sort"
	"time"
)

// DefaultProfile is the profile used when none is configured.
const DefaultProfile = "retail-banking"

// Profile defines the interface for usage profiles.
type Profile interface {
	// Name returns the profile name.
	Name() string

	// Description returns a human-readable description.
	Description() string

	// GetActivityLevel returns the activity level (0.0 to 1.0+) at time t.
	// Values above 1.0 indicate higher-than-normal activity (e.g., weekend card spending).
	GetActivityLevel(t time.Time) float64
}

var registry = make(map[string]func(tz *time.Location) Profile)

// Register adds a profile constructor to the registry.
func Register(name string, constructor func(tz *time.Location) Profile) {
	registry[name] = constructor
}

// Get retrieves a profile by name with the specified timezone.
func Get(name, timezone string) (Profile, error) {
	constructor, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown profile: %s", name)
	}

	var loc *time.Location
	var err error

	switch timezone {
	case "", "UTC":
		loc = time.UTC
	case "Local":
		loc = time.Local
	default:
		loc, err = time.LoadLocation(timezone)
		if err != nil {
			return nil, fmt.Errorf("invalid timezone: %w", err)
		}
	}

	return constructor(loc), nil
}

// List returns all registered profile names in sorted order.
func List() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// referenceDay is a Monday; hour weights describe a regular weekday.
var referenceDay = time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)

// HourWeights samples the profile at the top of every hour of a weekday and
// returns the 24 activity levels, index 0 being midnight to 1AM.
func HourWeights(p Profile) []float64 {
	weights := make([]float64, 24)
	for hour := range weights {
		weights[hour] = p.GetActivityLevel(referenceDay.Add(time.Duration(hour) * time.Hour))
	}
	return weights
}

// DayWeights returns the mean activity of the profile over each day of a
// reference week, indexed by time.Weekday. A profile that ignores the day of
// the week yields seven equal weights.
func DayWeights(p Profile) []float64 {
	// referenceDay.AddDate(0, 0, -1) is a Sunday, time.Weekday zero
	sunday := referenceDay.AddDate(0, 0, -1)

	weights := make([]float64, 7)
	for wd := range weights {
		day := sunday.AddDate(0, 0, wd)
		var sum float64
		for hour := 0; hour < 24; hour++ {
			sum += p.GetActivityLevel(day.Add(time.Duration(hour) * time.Hour))
		}
		weights[wd] = sum / 24
	}
	return weights
}

func init() {
	Register("retail-banking", NewRetailBanking)
	Register("business-hours", NewBusinessHours)
	Register("round-the-clock", NewRoundTheClock)
	Register("evening-spend", NewEveningSpend)
	Register("global-cards", NewGlobalCards)
}
