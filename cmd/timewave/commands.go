package main

import (
	"flag"
	"fmt"
	"math"

	"github.com/katalvlaran/timewave/datemap"
	"github.com/katalvlaran/timewave/dtw"
	"github.com/katalvlaran/timewave/hexagram"
	"github.com/katalvlaran/timewave/internal/render"
	"github.com/katalvlaran/timewave/wave"
)

func runSequence(e *env, args []string) (render.Tabular, error) {
	if err := parseFlags(newFlagSet(e, "sequence"), args); err != nil {
		return nil, err
	}

	return render.NewSymbols(hexagram.Sequence()), nil
}

func runDifference(e *env, args []string) (render.Tabular, error) {
	if err := parseFlags(newFlagSet(e, "difference"), args); err != nil {
		return nil, err
	}

	base := wave.BaseDifference()
	rows := make(render.Differences, len(base))
	for i, d := range base {
		from, to, err := hexagram.ForWaveIndex(i)
		if err != nil {
			return nil, err
		}
		rows[i] = render.DifferenceRow{Index: i, From: from.Position, To: to.Position, Distance: d}
	}
	logSummary(e, "difference", wave.FromInts(base))

	return rows, nil
}

func runRecursive(e *env, args []string) (render.Tabular, error) {
	fs := newFlagSet(e, "recursive")
	fs.IntVar(&e.cfg.Iterations, "iterations", e.cfg.Iterations, "number of layers (0 and 1 both give the base wave)")
	fs.Float64Var(&e.cfg.Compression, "compression", e.cfg.Compression, "time-compression constant (> 1)")
	if err := parseFlags(fs, args); err != nil {
		return nil, err
	}
	if err := e.cfg.Validate(); err != nil {
		return nil, err
	}

	w, layers, err := wave.RecursiveLayers(waveOptions(e.cfg.Iterations, e.cfg.Compression)...)
	if err != nil {
		return nil, err
	}
	logSummary(e, "recursive", w)

	return render.NewLayered(w, layers), nil
}

func runDates(e *env, args []string) (render.Tabular, error) {
	fs := newFlagSet(e, "dates")
	fs.IntVar(&e.cfg.Iterations, "iterations", e.cfg.Iterations, "number of layers")
	fs.Float64Var(&e.cfg.Compression, "compression", e.cfg.Compression, "time-compression constant (> 1)")
	fs.TextVar(&e.cfg.ZeroDate, "zero", e.cfg.ZeroDate, "zero date, YYYY-MM-DD")
	fs.IntVar(&e.cfg.DaysPerStep, "step", e.cfg.DaysPerStep, "days per wave value (> 0)")
	if err := parseFlags(fs, args); err != nil {
		return nil, err
	}
	if err := e.cfg.Validate(); err != nil {
		return nil, err
	}

	w, err := e.cache.Get(waveOptions(e.cfg.Iterations, e.cfg.Compression)...)
	if err != nil {
		return nil, err
	}
	points, err := datemap.MapWaveToDates(w, e.cfg.ZeroDate, e.cfg.DaysPerStep)
	if err != nil {
		return nil, err
	}
	if len(points) > 0 {
		e.log.Info("dated %d values from %s to %s (zero point %s)",
			len(points), points[0].Date, points[len(points)-1].Date, e.cfg.ZeroDate)
	}

	return render.Points(points), nil
}

func runCompare(e *env, args []string) (render.Tabular, error) {
	fs := newFlagSet(e, "compare")
	fs.IntVar(&e.cfg.Iterations, "iterations", e.cfg.Iterations, "layers of the left wave")
	fs.Float64Var(&e.cfg.Compression, "compression", e.cfg.Compression, "compression of the left wave")
	rightIterations := fs.Int("against-iterations", 0, "layers of the right wave (default: same as left)")
	rightCompression := fs.Float64("against", 2, "compression of the right wave (> 1)")
	window := fs.Int("window", dtw.NoWindow, "Sakoe-Chiba window, -1 for none")
	if err := parseFlags(fs, args); err != nil {
		return nil, err
	}
	if err := e.cfg.Validate(); err != nil {
		return nil, err
	}
	if !flagSet(fs, "against-iterations") {
		*rightIterations = e.cfg.Iterations
	}
	if !wave.ValidCompression(*rightCompression) {
		return nil, fmt.Errorf("against %v must be finite and > 1: %w", *rightCompression, wave.ErrInvalidArgument)
	}

	left, err := e.cache.Get(waveOptions(e.cfg.Iterations, e.cfg.Compression)...)
	if err != nil {
		return nil, err
	}
	right, err := e.cache.Get(waveOptions(*rightIterations, *rightCompression)...)
	if err != nil {
		return nil, err
	}

	opts := dtw.DefaultOptions()
	opts.Window = *window
	opts.MemoryMode = dtw.TwoRows
	dist, _, err := dtw.DTW(left, right, &opts)
	if err != nil {
		return nil, err
	}
	if math.IsInf(dist, 1) {
		return nil, fmt.Errorf("window %d cannot align %d and %d values: %w", *window, len(left), len(right), wave.ErrInvalidArgument)
	}
	hits, misses := e.cache.Stats()
	e.log.Debug("wave cache hits=%d misses=%d", hits, misses)

	return render.Comparison{
		Left:       render.WaveSpec{Iterations: e.cfg.Iterations, Compression: e.cfg.Compression, Len: len(left)},
		Right:      render.WaveSpec{Iterations: *rightIterations, Compression: *rightCompression, Len: len(right)},
		Window:     *window,
		Distance:   dist,
		Normalized: dist / float64(len(left)+len(right)),
	}, nil
}

// flagSet reports whether the named flag was given on the command line.
func flagSet(fs *flag.FlagSet, name string) bool {
	set := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})

	return set
}

// waveOptions builds generator options from already validated values.
func waveOptions(iterations int, compression float64) []wave.Option {
	return []wave.Option{wave.WithIterations(iterations), wave.WithCompression(compression)}
}

func logSummary(e *env, what string, w wave.Wave) {
	s, err := wave.Summarize(w)
	if err != nil {
		e.log.Warning("%s: %v", what, err)
		return
	}
	e.log.Debug("%s: len=%d min=%.4f max=%.4f mean=%.4f stddev=%.4f", what, s.Len, s.Min, s.Max, s.Mean, s.StdDev)
}
