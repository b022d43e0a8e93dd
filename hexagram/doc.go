// Package hexagram holds the fixed King Wen ordering of the 64 I Ching
// hexagrams as 6-bit binary codes.
//
// 🚀 What is it?
//
//	The King Wen sequence is the traditional order of the 64 hexagrams.
//	Each hexagram is six stacked lines, solid (yang, 1) or broken (yin, 0).
//	Here a hexagram is a Code: a 6-character string of '0'/'1' with
//	line 1 (the bottom line) first. ䷀ (all solid) is "111111".
//
// ✨ Key features:
//   - compiled-in, integrity-checked table (exactly 64 distinct codes)
//   - Hamming distance between codes (the raw material of the difference wave)
//   - pairing of a difference-wave index with the two symbols it compares
//   - presentation metadata: Wilhelm name, Unicode glyph, decimal value
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/timewave/hexagram"
//
//	seq := hexagram.Sequence()      // 64 symbols, fresh copy
//	d, _ := seq[0].Code.Hamming(seq[1].Code) // 6
//
// The table is a constant: every accessor returns a copy, nothing can
// mutate the compiled-in ordering.
package hexagram
