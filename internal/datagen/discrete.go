//-------------------------------------------------------------------------
//
// pgEdge Bank Data Generator
//
// Copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package datagen

import (
	"fmt"
	"sort"
)

// Discrete is a categorical distribution over a fixed set of items. Weights
// are kept as a cumulative table so that a draw costs one uniform value and a
// binary search.
type Discrete[T any] struct {
	items      []T
	cumulative []float64
	total      float64
}

// NewDiscrete builds a distribution from parallel item and weight slices.
// Weights need not sum to one but must be non-negative with a positive total.
func NewDiscrete[T any](items []T, weights []float64) (*Discrete[T], error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("discrete distribution needs at least one item")
	}
	if len(items) != len(weights) {
		return nil, fmt.Errorf("discrete distribution has %d items but %d weights",
			len(items), len(weights))
	}

	cumulative := make([]float64, len(weights))
	var total float64
	for i, w := range weights {
		if w < 0 {
			return nil, fmt.Errorf("negative weight %f at index %d", w, i)
		}
		total += w
		cumulative[i] = total
	}
	if total <= 0 {
		return nil, fmt.Errorf("discrete distribution weights sum to zero")
	}

	return &Discrete[T]{
		items:      append([]T(nil), items...),
		cumulative: cumulative,
		total:      total,
	}, nil
}

// MustDiscrete is like NewDiscrete but panics on invalid input. It is meant
// for package level tables.
func MustDiscrete[T any](items []T, weights []float64) *Discrete[T] {
	d, err := NewDiscrete(items, weights)
	if err != nil {
		panic(err)
	}
	return d
}

// Index maps a uniform value u in [0, 1) to the index of the chosen item.
func (d *Discrete[T]) Index(u float64) int {
	x := u * d.total
	i := sort.Search(len(d.cumulative), func(i int) bool {
		return x < d.cumulative[i]
	})
	if i >= len(d.items) {
		// u rounding up to the total lands on the last item with weight
		for i = len(d.items) - 1; i > 0 && d.weight(i) == 0; i-- {
		}
	}
	return i
}

// Pick draws one item using a single uniform value from the source.
func (d *Discrete[T]) Pick(s *Source) T {
	return d.items[d.Index(s.Float64())]
}

// Items returns the outcomes of the distribution.
func (d *Discrete[T]) Items() []T {
	return d.items
}

// Probability returns the normalized probability of the item at index i.
func (d *Discrete[T]) Probability(i int) float64 {
	return d.weight(i) / d.total
}

func (d *Discrete[T]) weight(i int) float64 {
	if i == 0 {
		return d.cumulative[0]
	}
	return d.cumulative[i] - d.cumulative[i-1]
}
