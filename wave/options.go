// SPDX-License-Identifier: MIT
// Package: timewave/wave
//
// options.go — functional options and resolved config for the generator.
//
// Contract:
//   • Options are functional (type Option func(*config)); later options win.
//   • WithCompression validates and PANICS on meaningless values; use
//     ValidCompression first when the value comes from user input.
//   • WithIterations only records the value: a negative count is runtime
//     input and surfaces as ErrInvalidArgument from Recursive.

package wave

import (
	"fmt"
	"math"
)

const (
	// DefaultIterations is the number of layers used when none is given.
	DefaultIterations = 10
	// DefaultCompression is the time-compression constant: layer k is the
	// base wave scaled by DefaultCompression^(-k).
	DefaultCompression = 1.315
)

// Option customizes Recursive and Cache lookups.
type Option func(*config)

// config is the resolved generator configuration. It is comparable and
// doubles as the memoization key in Cache.
type config struct {
	iterations  int
	compression float64
}

// WithIterations sets the total number of passes (default 10).
func WithIterations(n int) Option {
	return func(c *config) {
		c.iterations = n
	}
}

// WithCompression overrides the compression constant (default 1.315).
// Panics unless c is finite and > 1.
func WithCompression(c float64) Option {
	if !ValidCompression(c) {
		panic(fmt.Sprintf("wave: WithCompression(%v): must be finite and > 1", c))
	}
	return func(cfg *config) {
		cfg.compression = c
	}
}

// ValidCompression reports whether c is usable as a compression constant.
func ValidCompression(c float64) bool {
	return c > 1 && !math.IsInf(c, 0) && !math.IsNaN(c)
}

// newConfig applies opts over the defaults.
func newConfig(opts ...Option) config {
	cfg := config{
		iterations:  DefaultIterations,
		compression: DefaultCompression,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
