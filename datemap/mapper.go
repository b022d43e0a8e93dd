// SPDX-License-Identifier: MIT
// Package: timewave/datemap
//
// mapper.go — turns wave indices into calendar dates.
//
// Algorithm:
//  1. total := len(wave)·daysPerStep
//  2. start := zero − total days
//  3. point i := (start + i·daysPerStep days, wave[i])
//
// Boundary:
//   - The last point is dated zero − daysPerStep. The zero date itself is
//     the (virtual) point right after the final value.
//
// Complexity:
//   - O(n) time, O(n) memory.

package datemap

import (
	"fmt"
	"time"
)

const methodMapWaveToDates = "MapWaveToDates"

// DefaultDaysPerStep is the step used by callers that do not choose one.
const DefaultDaysPerStep = 1

// DefaultZeroDate is the classic zero point, 2012-12-21.
var DefaultZeroDate = Date{Year: 2012, Month: time.December, Day: 21}

// DatedPoint is one wave value pinned to a calendar day.
type DatedPoint struct {
	Date  Date    `json:"date" yaml:"date"`
	Value float64 `json:"value" yaml:"value"`
}

// MapWaveToDates dates every value of wave, ending one step before zero.
// Fails with ErrInvalidArgument if daysPerStep <= 0 or zero is not a valid
// calendar date. An empty wave maps to an empty, non-nil slice.
func MapWaveToDates(wave []float64, zero Date, daysPerStep int) ([]DatedPoint, error) {
	if daysPerStep <= 0 {
		return nil, fmt.Errorf("%s: daysPerStep %d <= 0: %w", methodMapWaveToDates, daysPerStep, ErrInvalidArgument)
	}
	if !zero.Valid() {
		return nil, fmt.Errorf("%s: zero date %s: %w", methodMapWaveToDates, zero, ErrInvalidArgument)
	}

	if err := checkSpan(methodMapWaveToDates, len(wave), daysPerStep); err != nil {
		return nil, err
	}

	start := zero.AddDays(-len(wave) * daysPerStep)
	if !start.Valid() {
		return nil, fmt.Errorf("%s: %d steps of %d days before %s leave the calendar: %w",
			methodMapWaveToDates, len(wave), daysPerStep, zero, ErrInvalidArgument)
	}

	out := make([]DatedPoint, len(wave))
	for i, v := range wave {
		out[i] = DatedPoint{Date: start.AddDays(i * daysPerStep), Value: v}
	}

	return out, nil
}

// Span returns the first and last dates MapWaveToDates would produce for a
// wave of n values, without building the points. n must be ≥ 1.
func Span(n int, zero Date, daysPerStep int) (first, last Date, err error) {
	if n < 1 {
		return Date{}, Date{}, fmt.Errorf("Span: n %d < 1: %w", n, ErrInvalidArgument)
	}
	if daysPerStep <= 0 {
		return Date{}, Date{}, fmt.Errorf("Span: daysPerStep %d <= 0: %w", daysPerStep, ErrInvalidArgument)
	}
	if !zero.Valid() {
		return Date{}, Date{}, fmt.Errorf("Span: zero date %s: %w", zero, ErrInvalidArgument)
	}

	if err = checkSpan("Span", n, daysPerStep); err != nil {
		return Date{}, Date{}, err
	}

	first = zero.AddDays(-n * daysPerStep)
	if !first.Valid() {
		return Date{}, Date{}, fmt.Errorf("Span: start before year %d: %w", minYear, ErrInvalidArgument)
	}

	return first, zero.AddDays(-daysPerStep), nil
}

// checkSpan rejects n steps of daysPerStep that cannot fit in the calendar,
// before n·daysPerStep is computed.
func checkSpan(method string, n, daysPerStep int) error {
	if n > 0 && daysPerStep > maxSpanDays/n {
		return fmt.Errorf("%s: %d steps of %d days exceed %d days: %w",
			method, n, daysPerStep, maxSpanDays, ErrInvalidArgument)
	}

	return nil
}
