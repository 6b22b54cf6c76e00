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
	"fmt"
)

type branchCity struct {
	name      string
	state     string
	latitude  float64
	longitude float64
}

// branchCities is the fixed branch network, one branch per city.
var branchCities = []branchCity{
	{"New York", "NY", 40.7128, -74.0060},
	{"Los Angeles", "CA", 34.0522, -118.2437},
	{"Chicago", "IL", 41.8781, -87.6298},
	{"Houston", "TX", 29.7604, -95.3698},
	{"Phoenix", "AZ", 33.4484, -112.0740},
	{"Philadelphia", "PA", 39.9526, -75.1652},
	{"San Antonio", "TX", 29.4241, -98.4936},
	{"San Diego", "CA", 32.7157, -117.1611},
	{"Dallas", "TX", 32.7767, -96.7970},
	{"San Jose", "CA", 37.3382, -121.8863},
	{"Austin", "TX", 30.2672, -97.7431},
	{"Jacksonville", "FL", 30.3322, -81.6557},
	{"Fort Worth", "TX", 32.7555, -97.3308},
	{"Columbus", "OH", 39.9612, -82.9988},
	{"San Francisco", "CA", 37.7749, -122.4194},
	{"Seattle", "WA", 47.6062, -122.3321},
	{"Denver", "CO", 39.7392, -104.9903},
	{"Boston", "MA", 42.3601, -71.0589},
	{"Atlanta", "GA", 33.7490, -84.3880},
	{"Miami", "FL", 25.7617, -80.1918},
}

// BranchCount is the number of branches in every dataset.
const BranchCount = 20

const coordinateJitter = 0.1

// Branches generates one branch per city of the branch network.
func (g *Generator) Branches() []Branch {
	asOf := g.opts.AsOf
	branches := make([]Branch, 0, len(branchCities))

	for i, c := range branchCities {
		b := Branch{
			ID:    branchID(i + 1),
			Name:  fmt.Sprintf("%s Main Branch", c.name),
			City:  c.name,
			State: c.state,
		}
		b.ZipCode = g.src.Zip()
		b.Latitude = c.latitude + g.src.Uniform(-coordinateJitter, coordinateJitter)
		b.Longitude = c.longitude + g.src.Uniform(-coordinateJitter, coordinateJitter)
		b.OpeningDate = g.src.DateBetween(asOf.AddDate(-20, 0, 0), asOf.AddDate(-1, 0, 0))
		b.TotalDeposits = int64(g.src.IntRange(50_000_000, 500_000_000))
		b.EmployeeCount = g.src.IntRange(15, 100)

		branches = append(branches, b)
	}

	return branches
}
