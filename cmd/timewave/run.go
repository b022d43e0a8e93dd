package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/katalvlaran/timewave/internal/config"
	"github.com/katalvlaran/timewave/internal/logger"
	"github.com/katalvlaran/timewave/internal/render"
	"github.com/katalvlaran/timewave/wave"
)

// errUsage marks command-line mistakes; usage has already been printed.
var errUsage = errors.New("invalid usage")

// env carries everything a command needs.
type env struct {
	cfg    config.Config
	log    *logger.Logger
	out    io.Writer
	errOut io.Writer
	cache  *wave.Cache
}

// command parses its own flags (over e.cfg) and produces a result.
type command struct {
	summary string
	run     func(e *env, args []string) (render.Tabular, error)
}

var commands = map[string]command{
	"sequence":   {"list the 64 hexagrams in King Wen order", runSequence},
	"difference": {"print the 63-value difference wave", runDifference},
	"recursive":  {"print the recursive timewave with layer numbers", runRecursive},
	"dates":      {"anchor the recursive timewave to calendar dates", runDates},
	"compare":    {"DTW distance between two timewave variants", runCompare},
}

func run(args []string, stdout, stderr io.Writer) error {
	global := flag.NewFlagSet("timewave", flag.ContinueOnError)
	global.SetOutput(stderr)
	profile := global.String("config", "", "YAML profile path")
	envFile := global.String("env", "", ".env file path")
	format := global.String("format", "", "output format: json, yaml, csv, table")
	verbose := global.Bool("v", false, "verbose logging")
	global.Usage = func() { usage(stderr, global) }

	if err := global.Parse(args); err != nil {
		return errUsage
	}
	if global.NArg() == 0 {
		usage(stderr, global)
		return errUsage
	}

	name := global.Arg(0)
	cmd, ok := commands[name]
	if !ok {
		usage(stderr, global)
		return fmt.Errorf("unknown command %q: %w", name, errUsage)
	}

	cfg, err := config.Load(config.Sources{Profile: *profile, EnvFile: *envFile})
	if err != nil {
		return err
	}
	if *format != "" {
		cfg.Format = *format
	}
	if *verbose {
		cfg.Verbose = true
	}

	e := &env{
		cfg:    cfg,
		log:    logger.New(stderr, "timewave", cfg.Verbose),
		out:    stdout,
		errOut: stderr,
		cache:  wave.NewCache(),
	}
	e.log.Debug("command=%s iterations=%d compression=%v zero=%s step=%d format=%s",
		name, cfg.Iterations, cfg.Compression, cfg.ZeroDate, cfg.DaysPerStep, cfg.Format)

	result, err := cmd.run(e, global.Args()[1:])
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}

	// Flags may have changed the config; check again before rendering.
	if err := e.cfg.Validate(); err != nil {
		return err
	}
	lang, _ := e.cfg.Language()
	w, err := render.New(render.Format(e.cfg.Format), lang)
	if err != nil {
		return err
	}

	if err := w.Write(stdout, result); err != nil {
		e.log.Error("%s: write %s output: %v", name, e.cfg.Format, err)
		return err
	}

	return nil
}

func usage(w io.Writer, fs *flag.FlagSet) {
	fmt.Fprintln(w, "Usage: timewave [global flags] <command> [flags]")
	fmt.Fprintln(w, "\nCommands:")
	names := make([]string, 0, len(commands))
	for n := range commands {
		names = append(names, n)
	}
	sort.Strings(names)
	for _, n := range names {
		fmt.Fprintf(w, "  %-11s %s\n", n, commands[n].summary)
	}
	fmt.Fprintln(w, "\nGlobal flags:")
	fs.PrintDefaults()
}

// newFlagSet returns a subcommand flag set writing errors to e.errOut.
func newFlagSet(e *env, name string) *flag.FlagSet {
	fs := flag.NewFlagSet("timewave "+name, flag.ContinueOnError)
	fs.SetOutput(e.errOut)
	return fs
}

// parseFlags parses args and rejects stray positional arguments.
func parseFlags(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		return errUsage
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("unexpected arguments %s: %w", strings.Join(fs.Args(), " "), errUsage)
	}
	return nil
}
