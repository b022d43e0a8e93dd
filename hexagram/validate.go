// SPDX-License-Identifier: MIT
// Package: timewave/hexagram
//
// validate.go — integrity check for symbol tables.
//
// Order of checks (first failure wins):
//  1. length == Count
//  2. every code is Width binary characters
//  3. positions run 1..Count in order
//  4. codes are pairwise distinct

package hexagram

import "fmt"

const methodValidate = "Validate"

// Validate returns ErrDataIntegrity unless symbols is a well-formed table:
// exactly 64 entries, fixed-width binary codes, positions 1..64 in order,
// no duplicate codes.
func Validate(symbols []Symbol) error {
	if len(symbols) != Count {
		return fmt.Errorf("%s: %d symbols, want %d: %w", methodValidate, len(symbols), Count, ErrDataIntegrity)
	}

	seen := make(map[Code]int, Count)
	for i, s := range symbols {
		if !s.Code.Valid() {
			return fmt.Errorf("%s: symbol %d: malformed code %q: %w", methodValidate, i+1, string(s.Code), ErrDataIntegrity)
		}
		if s.Position != i+1 {
			return fmt.Errorf("%s: symbol %d: position %d out of order: %w", methodValidate, i+1, s.Position, ErrDataIntegrity)
		}
		if prev, dup := seen[s.Code]; dup {
			return fmt.Errorf("%s: code %s repeated at %d and %d: %w", methodValidate, string(s.Code), prev, i+1, ErrDataIntegrity)
		}
		seen[s.Code] = i + 1
	}

	return nil
}
