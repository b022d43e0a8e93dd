// SPDX-License-Identifier: MIT
// Package: timewave/datemap
//
// date.go — civil calendar date without time of day.
//
// Contract:
//   • A Date is valid iff it names a real day in years 1..9999.
//   • The zero Date is invalid (month 0); MapWaveToDates rejects it.
//   • Text form is ISO-8601 "YYYY-MM-DD" (JSON, YAML and flags all use it).

package datemap

import (
	"fmt"
	"time"
)

// Layout is the text layout of a Date.
const Layout = "2006-01-02"

const (
	minYear = 1
	maxYear = 9999

	// maxSpanDays is the number of days from 0001-01-01 to 9999-12-31.
	maxSpanDays   = 3652058
	secondsPerDay = 86400
)

// Date is a civil calendar day.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// NewDate validates and returns the date y-m-d.
// 2021-02-30 and 2023-02-29 are rejected, 2024-02-29 is accepted.
func NewDate(year int, month time.Month, day int) (Date, error) {
	d := Date{Year: year, Month: month, Day: day}
	if !d.Valid() {
		return Date{}, fmt.Errorf("NewDate: %04d-%02d-%02d is not a calendar date: %w", year, int(month), day, ErrInvalidArgument)
	}

	return d, nil
}

// MustDate is NewDate that panics on invalid input; for literals in code and tests.
func MustDate(year int, month time.Month, day int) Date {
	d, err := NewDate(year, month, day)
	if err != nil {
		panic(err)
	}

	return d
}

// ParseDate parses "YYYY-MM-DD".
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(Layout, s)
	if err != nil {
		return Date{}, fmt.Errorf("ParseDate: %q: %v: %w", s, err, ErrInvalidArgument)
	}

	return NewDate(t.Year(), t.Month(), t.Day())
}

// FromTime returns the calendar day of t in t's own location.
func FromTime(t time.Time) Date {
	y, m, d := t.Date()

	return Date{Year: y, Month: m, Day: d}
}

// Valid reports whether d names a real calendar day in years 1..9999.
func (d Date) Valid() bool {
	if d.Year < minYear || d.Year > maxYear || d.Month < time.January || d.Month > time.December || d.Day < 1 {
		return false
	}
	// time.Date normalizes overflowing days into the next month.
	return FromTime(d.Time()) == d
}

// IsZero reports whether d is the zero Date.
func (d Date) IsZero() bool {
	return d == Date{}
}

// Time returns midnight UTC of d.
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// AddDays shifts d by n calendar days (n may be negative).
func (d Date) AddDays(n int) Date {
	return FromTime(time.Date(d.Year, d.Month, d.Day+n, 0, 0, 0, 0, time.UTC))
}

// DaysUntil returns the signed number of days from d to other.
func (d Date) DaysUntil(other Date) int {
	return int((other.Time().Unix() - d.Time().Unix()) / secondsPerDay)
}

// Before reports whether d is strictly earlier than other.
func (d Date) Before(other Date) bool {
	return d.Time().Before(other.Time())
}

// String renders "YYYY-MM-DD".
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// MarshalText implements encoding.TextMarshaler.
func (d Date) MarshalText() ([]byte, error) {
	if !d.Valid() {
		return nil, fmt.Errorf("MarshalText: %s: %w", d.String(), ErrInvalidArgument)
	}

	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Date) UnmarshalText(b []byte) error {
	parsed, err := ParseDate(string(b))
	if err != nil {
		return err
	}
	*d = parsed

	return nil
}
