// SPDX-License-Identifier: MIT
// Package: timewave/wave
//
// stats.go — summary statistics over a wave.
//
// Determinism:
//   - Single left-to-right pass for min/max/mean, second pass for variance
//     (two-pass keeps the result stable for long, shallow waves).

package wave

import (
	"fmt"
	"math"
)

const methodSummarize = "Summarize"

// Summarize returns length, extrema, mean and population standard deviation.
// An empty wave yields ErrInvalidArgument.
func Summarize(w Wave) (Summary, error) {
	if len(w) == 0 {
		return Summary{}, fmt.Errorf("%s: empty wave: %w", methodSummarize, ErrInvalidArgument)
	}

	s := Summary{Len: len(w), Min: w[0], Max: w[0]}
	sum := 0.0
	for _, v := range w {
		s.Min = math.Min(s.Min, v)
		s.Max = math.Max(s.Max, v)
		sum += v
	}
	s.Mean = sum / float64(len(w))

	ss := 0.0
	for _, v := range w {
		d := v - s.Mean
		ss += d * d
	}
	s.StdDev = math.Sqrt(ss / float64(len(w)))

	return s, nil
}
