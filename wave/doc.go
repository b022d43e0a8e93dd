// Package wave builds the difference wave and the recursive ("fractal")
// timewave from the King Wen sequence.
//
// 🚀 What is it?
//
//	Stage 1 (Difference): for each adjacent pair of hexagrams count the
//	lines that change. 64 hexagrams give 63 integers in [0,6].
//
//	Stage 2 (Recursive): start from the difference wave and, for
//	k = 1..iterations-1, interleave a copy of the base scaled by
//	compression^(-k). Each pass adds exactly 63 values, so the result
//	holds 63·iterations values and shrinking copies of the base show up
//	at every scale.
//
// ✨ Key features:
//   - pure functions, no global state; identical inputs → identical output
//   - functional options (WithIterations, WithCompression)
//   - layer provenance for every value (RecursiveLayers)
//   - concurrency-safe memoization (Cache) and summary statistics
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/timewave/wave"
//
//	w, err := wave.Recursive(wave.WithIterations(10))
//	// len(w) == 630
//
// Note: iterations 0 and 1 both return the base difference wave; the loop
// runs iterations-1 times and never removes the base.
//
// Complexity:
//
//   - Difference: O(n·6)
//   - Recursive:  O(63·iterations²) time, O(63·iterations) memory
package wave
