package dtw

// MemoryMode selects how much of the DP table is kept.
type MemoryMode int

const (
	// FullMatrix keeps the whole (n+1)×(m+1) table; required for ReturnPath.
	FullMatrix MemoryMode = iota
	// TwoRows keeps only the previous and current row; distance only.
	TwoRows
)

// NoWindow disables the Sakoe–Chiba constraint.
const NoWindow = -1

// Options configures DTW.
//
//   - Window       — max |i−j| allowed; NoWindow (-1) for unconstrained, 0 for
//     the diagonal only. Values below -1 are rejected.
//   - SlopePenalty — added to every non-diagonal step (≥ 0).
//   - ReturnPath   — backtrack the optimal alignment (FullMatrix only).
//   - MemoryMode   — FullMatrix or TwoRows.
type Options struct {
	Window       int
	SlopePenalty float64
	ReturnPath   bool
	MemoryMode   MemoryMode
}

// DefaultOptions returns an unconstrained, penalty-free, distance-only setup.
func DefaultOptions() Options {
	return Options{
		Window:     NoWindow,
		MemoryMode: FullMatrix,
	}
}

// Coord is one aligned pair of indices: a[I] ↔ b[J].
type Coord struct {
	I, J int
}
