// Package timewave derives the "novelty" timewave from the King Wen
// ordering of the 64 I Ching hexagrams and anchors it to calendar dates.
//
// 🚀 Pipeline
//
//	hexagram/ — the fixed King Wen table (64 distinct 6-bit codes)
//	wave/     — difference wave (63 Hamming distances) and the recursive,
//	            multi-scale wave built by interleaving scaled copies
//	datemap/  — pins every wave value to a civil date before a zero point
//	dtw/      — Dynamic Time Warping, to compare timewave variants
//
// Every stage is a pure function: same inputs, same output, no shared
// state. wave.Cache memoizes generated waves for callers that recompute
// often.
//
// Quick example:
//
//	w, _ := wave.Recursive(wave.WithIterations(10))      // 630 values
//	pts, _ := datemap.MapWaveToDates(w, datemap.DefaultZeroDate, 1)
//	// pts[629].Date == 2012-12-20, one day before the zero point
//
// The cmd/timewave binary exposes the same pipeline on the command line.
package timewave
