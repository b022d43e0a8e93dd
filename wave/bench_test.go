package wave_test

import (
	"testing"

	"github.com/katalvlaran/timewave/wave"
)

// benchmarkRecursive runs Recursive with n iterations and fails on error.
func benchmarkRecursive(b *testing.B, n int) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := wave.Recursive(wave.WithIterations(n)); err != nil {
			b.Fatalf("Recursive(%d) failed: %v", n, err)
		}
	}
}

// BenchmarkRecursive_Default benchmarks the default 10-layer wave (630 values).
func BenchmarkRecursive_Default(b *testing.B) { benchmarkRecursive(b, wave.DefaultIterations) }

// BenchmarkRecursive_Deep benchmarks a 64-layer wave (4032 values).
func BenchmarkRecursive_Deep(b *testing.B) { benchmarkRecursive(b, 64) }

// BenchmarkCache_Hit measures a memoized lookup, clone included.
func BenchmarkCache_Hit(b *testing.B) {
	c := wave.NewCache()
	if _, err := c.Get(); err != nil {
		b.Fatalf("warm-up failed: %v", err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := c.Get(); err != nil {
			b.Fatalf("Get failed: %v", err)
		}
	}
}
