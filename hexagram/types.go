// SPDX-License-Identifier: MIT
// Package: timewave/hexagram
//
// types.go — Code and Symbol value types.
//
// Contract:
//   • A Code is valid iff it has exactly Width characters, each '0' or '1'.
//   • Symbol is a plain value; copying it is the only way to "modify" one.
//
// Complexity:
//   • All methods are O(Width) = O(1).

package hexagram

import "fmt"

// Width is the fixed number of lines (bits) in every hexagram code.
const Width = 6

// Count is the number of hexagrams in the sequence.
const Count = 64

const (
	bitYin  = '0' // broken line
	bitYang = '1' // solid line
)

// Code is a 6-bit binary hexagram code, line 1 (bottom) first.
type Code string

// Valid reports whether c is exactly Width characters of '0'/'1'.
func (c Code) Valid() bool {
	if len(c) != Width {
		return false
	}
	for i := 0; i < len(c); i++ {
		if c[i] != bitYin && c[i] != bitYang {
			return false
		}
	}

	return true
}

// Hamming returns the number of line positions where c and other differ.
// Both codes must be valid.
func (c Code) Hamming(other Code) (int, error) {
	if !c.Valid() {
		return 0, fmt.Errorf("Hamming: code %q: %w", string(c), ErrInvalidArgument)
	}
	if !other.Valid() {
		return 0, fmt.Errorf("Hamming: code %q: %w", string(other), ErrInvalidArgument)
	}

	diff := 0
	for i := 0; i < Width; i++ {
		if c[i] != other[i] {
			diff++
		}
	}

	return diff, nil
}

// Value interprets the code as a base-2 number, first character most
// significant ("111111" → 63, "000000" → 0). Invalid codes yield -1.
func (c Code) Value() int {
	if !c.Valid() {
		return -1
	}
	v := 0
	for i := 0; i < Width; i++ {
		v <<= 1
		if c[i] == bitYang {
			v |= 1
		}
	}

	return v
}

// Lines returns the code as booleans (true = solid), bottom line first.
func (c Code) Lines() []bool {
	out := make([]bool, len(c))
	for i := 0; i < len(c); i++ {
		out[i] = c[i] == bitYang
	}

	return out
}

// Symbol is one entry of the King Wen sequence.
type Symbol struct {
	Position int  // 1-based position in the sequence (1..64)
	Code     Code // 6-bit code, line 1 first
}

// Name returns the Wilhelm English name of the hexagram, or "" when the
// position is outside 1..64.
func (s Symbol) Name() string {
	if s.Position < 1 || s.Position > Count {
		return ""
	}

	return names[s.Position-1]
}

// Glyph returns the Unicode hexagram character (U+4DC0 block, which is laid
// out in King Wen order), or "" when the position is outside 1..64.
func (s Symbol) Glyph() string {
	if s.Position < 1 || s.Position > Count {
		return ""
	}

	return string(rune(glyphBase + s.Position - 1))
}

// String renders "#<position> <code>".
func (s Symbol) String() string {
	return fmt.Sprintf("#%d %s", s.Position, string(s.Code))
}
