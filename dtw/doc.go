// Package dtw computes Dynamic Time Warping (DTW) distances between
// numeric series, with an optional alignment path.
//
// 🚀 Why here?
//
//	Two timewaves built with different compression constants, or with a
//	different number of layers, have different lengths and drift against
//	each other. DTW aligns them by warping the index axis and reports the
//	cheapest cumulative |a[i]-b[j]| cost, which makes such variants
//	comparable.
//
// ✨ Key features:
//   - FullMatrix mode: O(N·M) memory, alignment path available
//   - TwoRows mode: O(M) memory, distance only
//   - Sakoe–Chiba window (|i−j| ≤ Window) and slope penalty
//
// ⚙️ Usage:
//
//	opts := dtw.DefaultOptions()
//	opts.Window = 32
//	dist, _, err := dtw.DTW(a, b, &opts)
//
// Performance:
//
//   - Time:   O(N·M), O(N·W) inside a window
//   - Memory: O(N·M) (FullMatrix) or O(M) (TwoRows)
package dtw
