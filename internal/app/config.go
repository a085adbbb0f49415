package app

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/gnomes/grid"
	"github.com/katalvlaran/gnomes/solver"
)

// ModeBoth runs both solvers and cross-checks their values.
const ModeBoth = "both"

// Sentinel errors for configuration and runs.
var (
	// ErrNoGridSource indicates neither a grid file nor a random size was given.
	ErrNoGridSource = errors.New("app: a grid file or a random grid size is required")
	// ErrTwoGridSources indicates both a grid file and a random size were given.
	ErrTwoGridSources = errors.New("app: grid file and random grid are mutually exclusive")
	// ErrBadMode indicates an unknown solver mode.
	ErrBadMode = errors.New("app: mode must be auto, exhaustive, dp or both")
)

// Config holds everything a single run needs.
type Config struct {
	GridPath string // HCL grid file
	GridName string // grid block label; empty selects the first block

	RandomRows, RandomCols int // random grid size; 0 disables
	Random                 grid.RandomOptions

	Mode            string // auto, exhaustive, dp or both
	ExhaustiveLimit int

	LogFormat string
	LogLevel  string
}

// NewConfig validates cfg and returns a copy.
func NewConfig(cfg Config) (*Config, error) {
	hasFile := cfg.GridPath != ""
	hasRandom := cfg.RandomRows != 0 || cfg.RandomCols != 0
	switch {
	case hasFile && hasRandom:
		return nil, ErrTwoGridSources
	case !hasFile && !hasRandom:
		return nil, ErrNoGridSource
	}
	if hasRandom && (cfg.RandomRows < 1 || cfg.RandomCols < 1) {
		return nil, fmt.Errorf("%w: %dx%d", grid.ErrEmptyGrid, cfg.RandomRows, cfg.RandomCols)
	}
	if hasRandom {
		if err := cfg.Random.Validate(); err != nil {
			return nil, fmt.Errorf("%w: rocks=%v gold=%v", err, cfg.Random.RockRatio, cfg.Random.GoldRatio)
		}
	}
	if cfg.Mode != ModeBoth {
		if _, err := solver.ParseAlgorithm(cfg.Mode); err != nil {
			return nil, fmt.Errorf("%w: %q", ErrBadMode, cfg.Mode)
		}
	}
	if cfg.ExhaustiveLimit < 0 || cfg.ExhaustiveLimit > solver.MaxExhaustiveSteps {
		return nil, fmt.Errorf("%w: exhaustive limit %d", solver.ErrBadOptions, cfg.ExhaustiveLimit)
	}

	return &cfg, nil
}

// SolverOptions converts the run configuration into solver options. It must
// not be called in ModeBoth.
func (c *Config) SolverOptions() (solver.Options, error) {
	algo, err := solver.ParseAlgorithm(c.Mode)
	if err != nil {
		return solver.Options{}, err
	}

	return solver.Options{Algorithm: algo, ExhaustiveLimit: c.ExhaustiveLimit}, nil
}
