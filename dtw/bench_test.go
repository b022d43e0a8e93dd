package dtw_test

import (
	"testing"

	"github.com/katalvlaran/timewave/dtw"
	"github.com/katalvlaran/timewave/wave"
)

// benchmarkDTW compares the default wave with a variant of n layers.
func benchmarkDTW(b *testing.B, n int, opts dtw.Options) {
	x, err := wave.Recursive()
	if err != nil {
		b.Fatalf("Recursive failed: %v", err)
	}
	y, err := wave.Recursive(wave.WithIterations(n))
	if err != nil {
		b.Fatalf("Recursive failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := dtw.DTW(x, y, &opts); err != nil {
			b.Fatalf("DTW failed: %v", err)
		}
	}
}

// BenchmarkDTW_FullMatrix benchmarks 630×630 with the full table.
func BenchmarkDTW_FullMatrix(b *testing.B) {
	benchmarkDTW(b, 10, dtw.DefaultOptions())
}

// BenchmarkDTW_TwoRows benchmarks 630×630 with two rows.
func BenchmarkDTW_TwoRows(b *testing.B) {
	opts := dtw.DefaultOptions()
	opts.MemoryMode = dtw.TwoRows
	benchmarkDTW(b, 10, opts)
}

// BenchmarkDTW_Windowed benchmarks 630×756 inside a ±64 band.
func BenchmarkDTW_Windowed(b *testing.B) {
	opts := dtw.DefaultOptions()
	opts.Window = 64
	opts.MemoryMode = dtw.TwoRows
	benchmarkDTW(b, 12, opts)
}
