//-------------------------------------------------------------------------
//
// pgEdge Bank Data Generator
//
// Copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

// Package datagen provides the random primitives used by the dataset
// generators: a single seeded stream of numeric draws and fake text,
// discrete distributions, and progress reporting.
package datagen

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/brianvoe/gofakeit/v7"
)

// Source is the single random stream behind a generation run. Numeric draws
// and gofakeit text share the same underlying rand.Source, so one seed fixes
// every value of the dataset as long as the draw order does not change.
type Source struct {
	rng   *rand.Rand
	faker *gofakeit.Faker
}

// NewSource creates a Source seeded for reproducible output.
func NewSource(seed int64) *Source {
	return NewSourceFrom(rand.NewPCG(uint64(seed), uint64(seed)))
}

// NewSourceFrom creates a Source on top of an existing rand.Source. Tests use
// this to inject scripted or otherwise deterministic streams.
func NewSourceFrom(src rand.Source) *Source {
	return &Source{
		rng:   rand.New(src),
		faker: gofakeit.NewFaker(src, false),
	}
}

// Float64 returns a uniform value in [0, 1).
func (s *Source) Float64() float64 {
	return s.rng.Float64()
}

// Uniform returns a uniform value in [lo, hi).
func (s *Source) Uniform(lo, hi float64) float64 {
	return lo + (hi-lo)*s.rng.Float64()
}

// IntN returns a uniform integer in [0, n). It panics if n <= 0.
func (s *Source) IntN(n int) int {
	return s.rng.IntN(n)
}

// IntRange returns a uniform integer in [lo, hi], both ends inclusive.
func (s *Source) IntRange(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + s.rng.IntN(hi-lo+1)
}

// Normal draws from a normal distribution with the given mean and standard
// deviation.
func (s *Source) Normal(mean, stddev float64) float64 {
	return mean + stddev*s.rng.NormFloat64()
}

// LogNormal draws a value whose logarithm is normal(mu, sigma).
func (s *Source) LogNormal(mu, sigma float64) float64 {
	return math.Exp(s.Normal(mu, sigma))
}

// Exponential draws from an exponential distribution with the given rate
// (mean 1/rate).
func (s *Source) Exponential(rate float64) float64 {
	return s.rng.ExpFloat64() / rate
}

// Sign returns -1 or 1 with equal probability.
func (s *Source) Sign() float64 {
	if s.rng.IntN(2) == 0 {
		return -1
	}
	return 1
}

// DateBetween returns a midnight UTC date uniformly chosen between start and
// end, both inclusive. When end is before start, start is returned.
func (s *Source) DateBetween(start, end time.Time) time.Time {
	start = TruncateDay(start)
	days := DaysBetween(start, TruncateDay(end))
	if days <= 0 {
		return start
	}
	return start.AddDate(0, 0, s.rng.IntN(days+1))
}

// Digits returns n random decimal digits. Leading zeros are allowed.
func (s *Source) Digits(n int) string {
	buf := make([]byte, n)
	for i := range buf {
		buf[i] = byte('0' + s.rng.IntN(10))
	}
	return string(buf)
}

// Sample returns round(frac*n) distinct indexes in [0, n), in the order they
// were drawn.
func (s *Source) Sample(n int, frac float64) []int {
	k := int(math.Round(frac * float64(n)))
	if k <= 0 || n <= 0 {
		return nil
	}
	if k > n {
		k = n
	}
	return s.rng.Perm(n)[:k]
}

// Choose returns a uniformly chosen element from the given slice.
func Choose[T any](s *Source, items []T) T {
	if len(items) == 0 {
		var zero T
		return zero
	}
	return items[s.rng.IntN(len(items))]
}

// Clip bounds v to [lo, hi].
func Clip(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// RoundTo rounds v to the given number of decimal places.
func RoundTo(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}

// TruncateDay drops the time of day, keeping the calendar date in UTC.
func TruncateDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DaysBetween returns the number of whole calendar days from start to end.
// The result is negative when end is before start.
func DaysBetween(start, end time.Time) int {
	return int(TruncateDay(end).Sub(TruncateDay(start)).Hours() / 24)
}
