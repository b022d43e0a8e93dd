// Package config resolves timewave settings from defaults, an optional YAML
// profile, an optional .env file and TIMEWAVE_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/timewave/datemap"
	"github.com/katalvlaran/timewave/wave"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Output formats understood by the renderer.
const (
	FormatJSON  = "json"
	FormatYAML  = "yaml"
	FormatCSV   = "csv"
	FormatTable = "table"
)

// -----------------------------------------------------------------------------

// Config holds every tunable of the CLI. Fields left untouched by a layer
// keep the value of the layer below.
type Config struct {
	Iterations  int          `yaml:"iterations" env:"TIMEWAVE_ITERATIONS"`
	Compression float64      `yaml:"compression" env:"TIMEWAVE_COMPRESSION"`
	ZeroDate    datemap.Date `yaml:"zero_date" env:"TIMEWAVE_ZERO_DATE"`
	DaysPerStep int          `yaml:"days_per_step" env:"TIMEWAVE_DAYS_PER_STEP"`
	Format      string       `yaml:"format" env:"TIMEWAVE_FORMAT"`
	Locale      string       `yaml:"locale" env:"TIMEWAVE_LOCALE"`
	Verbose     bool         `yaml:"verbose" env:"TIMEWAVE_VERBOSE"`
}

// Sources names the optional files to layer over the defaults.
type Sources struct {
	Profile string // YAML profile path; empty to skip
	EnvFile string // .env path; empty to skip
}

// -----------------------------------------------------------------------------

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Iterations:  wave.DefaultIterations,
		Compression: wave.DefaultCompression,
		ZeroDate:    datemap.DefaultZeroDate,
		DaysPerStep: datemap.DefaultDaysPerStep,
		Format:      FormatJSON,
		Locale:      "en",
	}
}

// -----------------------------------------------------------------------------

// Load applies, in order: defaults, YAML profile, .env file, environment.
// The result is validated.
func Load(src Sources) (Config, error) {
	cfg := Default()

	if src.Profile != "" {
		data, err := os.ReadFile(src.Profile)
		if err != nil {
			return Config{}, fmt.Errorf("failed to read profile '%s': %w", src.Profile, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to parse profile '%s': %w", src.Profile, err)
		}
	}

	if src.EnvFile != "" {
		// godotenv never overrides variables already present in the environment.
		if err := godotenv.Load(src.EnvFile); err != nil {
			return Config{}, fmt.Errorf("failed to load env file '%s': %w", src.EnvFile, err)
		}
	}

	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// -----------------------------------------------------------------------------

// Validate checks every field against the domain of the library calls it feeds.
func (c Config) Validate() error {
	if c.Iterations < 0 {
		return fmt.Errorf("iterations %d must be >= 0: %w", c.Iterations, ErrInvalidConfig)
	}
	if !wave.ValidCompression(c.Compression) {
		return fmt.Errorf("compression %v must be finite and > 1: %w", c.Compression, ErrInvalidConfig)
	}
	if !c.ZeroDate.Valid() {
		return fmt.Errorf("zero date %s is not a calendar date: %w", c.ZeroDate, ErrInvalidConfig)
	}
	if c.DaysPerStep <= 0 {
		return fmt.Errorf("days per step %d must be > 0: %w", c.DaysPerStep, ErrInvalidConfig)
	}
	switch c.Format {
	case FormatJSON, FormatYAML, FormatCSV, FormatTable:
	default:
		return fmt.Errorf("unknown format %q (json, yaml, csv, table): %w", c.Format, ErrInvalidConfig)
	}
	if _, err := c.Language(); err != nil {
		return err
	}

	return nil
}

// Language parses Locale as a BCP 47 tag.
func (c Config) Language() (language.Tag, error) {
	tag, err := language.Parse(c.Locale)
	if err != nil {
		return language.Und, fmt.Errorf("locale %q: %v: %w", c.Locale, err, ErrInvalidConfig)
	}

	return tag, nil
}
