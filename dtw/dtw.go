// SPDX-License-Identifier: MIT
// Package: timewave/dtw
//
// dtw.go — dynamic programming core.
//
// Recurrence (1-based i over a, j over b):
//
//	D[0][0] = 0, D[i][0] = D[0][j] = +Inf
//	D[i][j] = |a[i-1] − b[j-1]| + min(D[i-1][j-1], D[i-1][j]+p, D[i][j-1]+p)
//
// Cells outside the window stay +Inf. Backtracking re-evaluates the same
// three candidates and prefers the diagonal on ties, so it never relies on
// float equality of D[i][j] − cost.

package dtw

import (
	"fmt"
	"math"
)

// DTW returns the warping distance between a and b and, if requested, the
// alignment path from (0,0) to (len(a)-1, len(b)-1). A nil opts means
// DefaultOptions(). If the window makes the end cell unreachable the
// distance is +Inf and the path is nil.
func DTW(a, b []float64, opts *Options) (float64, []Coord, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if len(a) == 0 || len(b) == 0 {
		return 0, nil, ErrEmptyInput
	}
	if o.Window < NoWindow {
		return 0, nil, fmt.Errorf("DTW: window %d: %w", o.Window, ErrBadInput)
	}
	if o.SlopePenalty < 0 || math.IsNaN(o.SlopePenalty) {
		return 0, nil, fmt.Errorf("DTW: slope penalty %v: %w", o.SlopePenalty, ErrBadInput)
	}
	if o.ReturnPath && o.MemoryMode != FullMatrix {
		return 0, nil, ErrPathNeedsMatrix
	}

	if o.MemoryMode == TwoRows {
		return twoRows(a, b, o), nil, nil
	}

	table := fullMatrix(a, b, o)
	dist := table[len(a)][len(b)]
	if !o.ReturnPath || math.IsInf(dist, 1) {
		return dist, nil, nil
	}

	return dist, backtrack(table, o.SlopePenalty), nil
}

// inWindow reports whether cell (i,j) is allowed.
func inWindow(i, j, w int) bool {
	if w == NoWindow {
		return true
	}
	d := i - j
	if d < 0 {
		d = -d
	}

	return d <= w
}

func fullMatrix(a, b []float64, o Options) [][]float64 {
	n, m := len(a), len(b)
	inf := math.Inf(1)

	table := make([][]float64, n+1)
	for i := range table {
		table[i] = make([]float64, m+1)
		for j := range table[i] {
			table[i][j] = inf
		}
	}
	table[0][0] = 0

	for i := 1; i <= n; i++ {
		for j := 1; j <= m; j++ {
			if !inWindow(i, j, o.Window) {
				continue
			}
			best := math.Min(table[i-1][j-1], math.Min(table[i-1][j]+o.SlopePenalty, table[i][j-1]+o.SlopePenalty))
			table[i][j] = math.Abs(a[i-1]-b[j-1]) + best
		}
	}

	return table
}

func twoRows(a, b []float64, o Options) float64 {
	m := len(b)
	inf := math.Inf(1)

	prev := make([]float64, m+1)
	curr := make([]float64, m+1)
	for j := range prev {
		prev[j] = inf
	}
	prev[0] = 0

	for i := 1; i <= len(a); i++ {
		curr[0] = inf
		for j := 1; j <= m; j++ {
			if !inWindow(i, j, o.Window) {
				curr[j] = inf
				continue
			}
			best := math.Min(prev[j-1], math.Min(prev[j]+o.SlopePenalty, curr[j-1]+o.SlopePenalty))
			curr[j] = math.Abs(a[i-1]-b[j-1]) + best
		}
		prev, curr = curr, prev
	}

	return prev[m]
}

// backtrack walks from (n,m) to (1,1) choosing the cheapest predecessor.
func backtrack(table [][]float64, penalty float64) []Coord {
	i, j := len(table)-1, len(table[0])-1
	path := []Coord{{I: i - 1, J: j - 1}}

	for i > 1 || j > 1 {
		diag := table[i-1][j-1]
		up := table[i-1][j] + penalty
		left := table[i][j-1] + penalty

		switch {
		case diag <= up && diag <= left:
			i, j = i-1, j-1
		case up <= left:
			i--
		default:
			j--
		}
		path = append(path, Coord{I: i - 1, J: j - 1})
	}

	for l, r := 0, len(path)-1; l < r; l, r = l+1, r-1 {
		path[l], path[r] = path[r], path[l]
	}

	return path
}
