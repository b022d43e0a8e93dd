// SPDX-License-Identifier: MIT
// Package: timewave/hexagram
//
// errors.go — sentinel errors shared by the whole timewave pipeline.
//
// Error policy:
//   • Only sentinel variables are exposed; branch with errors.Is.
//   • Implementations attach context with %w and a method prefix.
//   • wave and datemap re-export ErrInvalidArgument so a single errors.Is
//     check covers every stage of the pipeline.

package hexagram

import "errors"

// ErrInvalidArgument indicates a caller-supplied value outside its domain
// (position out of range, malformed code, negative iteration count, ...).
var ErrInvalidArgument = errors.New("timewave: invalid argument")

// ErrDataIntegrity indicates that a symbol table does not contain exactly
// 64 unique fixed-width binary codes in position order.
var ErrDataIntegrity = errors.New("timewave: symbol table integrity violated")
