// SPDX-License-Identifier: MIT
// Package: timewave/wave
//
// recursive.go — stage 2: recursive interleaving of scaled base copies.
//
// Algorithm:
//  1. base := BaseDifference() (63 values); w := copy(base).
//  2. For k = 1..iterations-1:
//     scaled[i] := base[i] · compression^(-k)
//     w := Interleave(w, scaled)
//  3. Return w.
//
// Invariants:
//   - len(w) == 63·iterations for iterations ≥ 1; iterations 0 behaves like 1.
//   - Every value is ≥ 0 (base values are counts, scale factors are > 0).
//   - The relative order of w's previous values and of the inserted values
//     is preserved by every pass.
//
// Interleave placement:
//   - interval := len(original)/len(scaled) (real valued).
//   - After emitting original[i], emit scaled[next] iff
//     floor(i/interval) == next and next < len(scaled).
//   - An insertion happens at the first i where the quotient reaches the
//     next integer; it is never applied retroactively, so scaled values that
//     do not fit are dropped rather than appended at the end.
//
// AI-Hints:
//   - Layers are interleaved with the very same placement rule as values
//     (interleave is generic), so layers[i] always describes w[i].

package wave

import (
	"fmt"
	"math"
)

const methodRecursive = "Recursive"

// Recursive builds the multi-scale timewave. Defaults: 10 iterations,
// compression 1.315. A negative iteration count yields ErrInvalidArgument.
func Recursive(opts ...Option) (Wave, error) {
	w, _, err := generate(newConfig(opts...), false)

	return w, err
}

// RecursiveLayers is Recursive plus, for every value, the layer k that
// produced it (0 = base wave, k ≥ 1 = base scaled by compression^(-k)).
func RecursiveLayers(opts ...Option) (Wave, []int, error) {
	return generate(newConfig(opts...), true)
}

// Interleave merges scaled into original, spreading scaled evenly and
// preserving the order of both inputs. An empty scaled returns a copy of
// original.
func Interleave(original, scaled []float64) []float64 {
	return interleave(original, scaled)
}

func generate(cfg config, withLayers bool) (Wave, []int, error) {
	if cfg.iterations < 0 {
		return nil, nil, fmt.Errorf("%s: iterations %d < 0: %w", methodRecursive, cfg.iterations, ErrInvalidArgument)
	}
	if !ValidCompression(cfg.compression) {
		return nil, nil, fmt.Errorf("%s: compression %v: %w", methodRecursive, cfg.compression, ErrInvalidArgument)
	}

	base := FromInts(BaseDifference())
	w := base.Clone()

	var layers []int
	if withLayers {
		layers = make([]int, len(base))
	}

	for k := 1; k < cfg.iterations; k++ {
		factor := math.Pow(cfg.compression, -float64(k))
		w = interleave(w, base.Scale(factor))

		if withLayers {
			layer := make([]int, len(base))
			for i := range layer {
				layer[i] = k
			}
			layers = interleave(layers, layer)
		}
	}

	return w, layers, nil
}

// interleave implements the placement rule documented in the file header.
func interleave[T any](original, scaled []T) []T {
	out := make([]T, 0, len(original)+len(scaled))
	if len(scaled) == 0 {
		return append(out, original...)
	}

	interval := float64(len(original)) / float64(len(scaled))
	next := 0
	for i := range original {
		out = append(out, original[i])
		if next < len(scaled) && int(math.Floor(float64(i)/interval)) == next {
			out = append(out, scaled[next])
			next++
		}
	}

	return out
}
