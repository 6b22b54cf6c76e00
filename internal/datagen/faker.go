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
	"strings"
)

// FirstName generates a random first name.
func (s *Source) FirstName() string {
	return s.faker.FirstName()
}

// LastName generates a random last name.
func (s *Source) LastName() string {
	return s.faker.LastName()
}

// Email generates a random email address.
func (s *Source) Email() string {
	return s.faker.Email()
}

// Phone generates a random phone number.
func (s *Source) Phone() string {
	return s.faker.Phone()
}

// Street generates a random street address.
func (s *Source) Street() string {
	return s.faker.Street()
}

// City generates a random city name.
func (s *Source) City() string {
	return s.faker.City()
}

// State generates a random US state abbreviation.
func (s *Source) State() string {
	return s.faker.StateAbr()
}

// Zip generates a random US ZIP code.
func (s *Source) Zip() string {
	return s.faker.Zip()
}

// SSN generates a nine digit social security number without separators.
func (s *Source) SSN() string {
	return strings.ReplaceAll(s.faker.SSN(), "-", "")
}

// Company generates a random company name.
func (s *Source) Company() string {
	return s.faker.Company()
}

// Sentence generates a random sentence with the given number of words.
func (s *Source) Sentence(wordCount int) string {
	return s.faker.Sentence(wordCount)
}
