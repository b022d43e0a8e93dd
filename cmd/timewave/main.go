// Package main provides a CLI for inspecting the King Wen sequence, its
// difference wave and the recursive timewave anchored to a zero date.
//
// Usage:
//
//	timewave [global flags] <sequence|difference|recursive|dates|compare> [flags]
//
// Settings are layered: defaults, -config YAML profile, -env file,
// TIMEWAVE_* environment variables, then command flags.
package main

import (
	"os"

	"github.com/katalvlaran/timewave/internal/config"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		config.Exitf("error: %v", err)
	}
}
