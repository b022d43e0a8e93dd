// SPDX-License-Identifier: MIT
// Package: timewave/wave
//
// difference.go — stage 1: Hamming distances between adjacent hexagrams.
//
// Contract:
//   - Difference(codes) has length len(codes)-1; element i is the number of
//     differing lines between codes[i] and codes[i+1].
//   - BaseDifference() is Difference(hexagram.Codes()); it cannot fail because
//     the table is validated at load.

package wave

import (
	"fmt"

	"github.com/katalvlaran/timewave/hexagram"
)

const methodDifference = "Difference"

// Difference returns the first-order difference wave of codes.
// Requires at least two codes, each a valid 6-bit binary string.
func Difference(codes []hexagram.Code) ([]int, error) {
	if len(codes) < 2 {
		return nil, fmt.Errorf("%s: need at least 2 codes, got %d: %w", methodDifference, len(codes), ErrInvalidArgument)
	}

	out := make([]int, len(codes)-1)
	for i := 0; i+1 < len(codes); i++ {
		d, err := codes[i].Hamming(codes[i+1])
		if err != nil {
			return nil, fmt.Errorf("%s: pair %d: %w", methodDifference, i, err)
		}
		out[i] = d
	}

	return out, nil
}

// BaseDifference returns the 63-value difference wave of the King Wen sequence.
func BaseDifference() []int {
	out, err := Difference(hexagram.Codes())
	if err != nil {
		// unreachable: the table passed Validate at package load
		panic(err)
	}

	return out
}

// FromInts converts an integer wave to a float Wave.
func FromInts(values []int) Wave {
	out := make(Wave, len(values))
	for i, v := range values {
		out[i] = float64(v)
	}

	return out
}
