// SPDX-License-Identifier: MIT
// Package: timewave/hexagram
//
// sequence.go — the compiled-in King Wen table and its accessors.
//
// Purpose:
//   - Hold the reference ordering as a constant table.
//   - Hand out copies only; the table itself is never exposed.
//
// Contract:
//   - Codes list line 1 (bottom) first: lower trigram, then upper trigram.
//   - The table is validated once at package load; a corrupt table panics
//     with a wrapped ErrDataIntegrity before any caller can observe it.
//
// AI-Hints:
//   - Entries come in pairs (2k-1, 2k): the second is the first turned upside
//     down, or its complement when the first is symmetric. TestSequence_Pairs
//     guards this; keep it green when touching the table.

package hexagram

import "fmt"

const (
	methodAt           = "At"
	methodForWaveIndex = "ForWaveIndex"
)

// kingWen is the reference ordering, index 0 = hexagram 1.
var kingWen = [Count]Code{
	"111111", "000000", "100010", "010001", "111010", "010111", "010000", "000010", // 1-8
	"111011", "110111", "111000", "000111", "101111", "111101", "001000", "000100", // 9-16
	"100110", "011001", "110000", "000011", "100101", "101001", "000001", "100000", // 17-24
	"100111", "111001", "100001", "011110", "010010", "101101", "001110", "011100", // 25-32
	"001111", "111100", "000101", "101000", "101011", "110101", "001010", "010100", // 33-40
	"110001", "100011", "111110", "011111", "000110", "011000", "010110", "011010", // 41-48
	"101110", "011101", "100100", "001001", "001011", "110100", "101100", "001101", // 49-56
	"011011", "110110", "010011", "110010", "110011", "001100", "101010", "010101", // 57-64
}

func init() {
	if err := Validate(Sequence()); err != nil {
		panic(fmt.Errorf("hexagram: compiled-in table: %w", err))
	}
}

// Sequence returns the 64 King Wen symbols in order. Each call returns a
// fresh slice with identical content.
func Sequence() []Symbol {
	out := make([]Symbol, Count)
	for i, c := range kingWen {
		out[i] = Symbol{Position: i + 1, Code: c}
	}

	return out
}

// Codes returns the raw codes of the sequence in order.
func Codes() []Code {
	out := make([]Code, Count)
	copy(out, kingWen[:])

	return out
}

// At returns the symbol at the 1-based position.
func At(position int) (Symbol, error) {
	if position < 1 || position > Count {
		return Symbol{}, fmt.Errorf("%s: position %d not in [1,%d]: %w", methodAt, position, Count, ErrInvalidArgument)
	}

	return Symbol{Position: position, Code: kingWen[position-1]}, nil
}

// ForWaveIndex pairs a difference-wave index (0-based) with the two symbols
// whose distance produced it: sequence[i] and sequence[i+1].
func ForWaveIndex(i int) (from, to Symbol, err error) {
	if i < 0 || i >= Count-1 {
		return Symbol{}, Symbol{}, fmt.Errorf("%s: index %d not in [0,%d]: %w", methodForWaveIndex, i, Count-2, ErrInvalidArgument)
	}
	from = Symbol{Position: i + 1, Code: kingWen[i]}
	to = Symbol{Position: i + 2, Code: kingWen[i+1]}

	return from, to, nil
}
