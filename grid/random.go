// Package grid - deterministic random grids for timing and cross-checks.
//
// Determinism: the same (rows, cols, opts) always yields the same Grid,
// on every platform. No time-based sources are used.
package grid

import (
	"math"
	"math/rand"
)

// defaultSeed is used when callers pass Seed==0.
const defaultSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ defaultSeed; otherwise the seed is used verbatim.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultSeed
	}

	return rand.New(rand.NewSource(seed))
}

// Random generates a rows×cols grid. Every non-origin cell is independently
// a rock with probability opts.RockRatio, gold (1..opts.MaxValue) with
// probability opts.GoldRatio, and empty otherwise. The origin is always open
// and empty.
//
// Returns ErrEmptyGrid for non-positive dimensions and ErrBadRatio for
// ratios outside [0,1] or summing above 1.
//
// Complexity: O(R×C) time and memory.
func Random(rows, cols int, opts RandomOptions) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrEmptyGrid
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	maxValue := opts.MaxValue
	if maxValue < 1 {
		maxValue = 1
	}

	rng := rngFromSeed(opts.Seed)
	values := make([][]int, rows)
	for r := 0; r < rows; r++ {
		values[r] = make([]int, cols)
		for c := 0; c < cols; c++ {
			if r == 0 && c == 0 {
				continue
			}
			// One draw decides the cell kind, a second one its value.
			p := rng.Float64()
			switch {
			case p < opts.RockRatio:
				values[r][c] = Rock
			case p < opts.RockRatio+opts.GoldRatio:
				values[r][c] = 1 + rng.Intn(maxValue)
			}
		}
	}

	return New(values)
}

// Validate reports ErrBadRatio when a ratio is NaN, negative, or the two
// ratios sum above 1.
func (o RandomOptions) Validate() error {
	if math.IsNaN(o.RockRatio) || math.IsNaN(o.GoldRatio) ||
		o.RockRatio < 0 || o.GoldRatio < 0 || o.RockRatio+o.GoldRatio > 1 {
		return ErrBadRatio
	}

	return nil
}
