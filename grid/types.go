package grid

import "errors"

// Sentinel errors for grid construction.
var (
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrBlockedOrigin indicates the top-left cell is a rock.
	ErrBlockedOrigin = errors.New("grid: origin cell (0,0) must be open")
	// ErrUnknownCell indicates a layout rune outside the supported alphabet.
	ErrUnknownCell = errors.New("grid: unknown cell in layout")
	// ErrBadRatio indicates invalid RandomOptions ratios.
	ErrBadRatio = errors.New("grid: ratios must lie in [0,1] and sum to at most 1")
)

// Rock is the value Get reports for a blocked cell. Any negative input value
// is normalized to Rock during construction.
const Rock = -1

// Layout alphabet used by Parse and String.
const (
	OpenRune = '.'
	RockRune = 'X'
	GoldRune = 'G'
)

// RandomOptions tunes Random.
type RandomOptions struct {
	// Seed drives the generator; 0 selects a fixed default seed.
	Seed int64
	// RockRatio is the probability that a non-origin cell is a rock.
	RockRatio float64
	// GoldRatio is the probability that a non-origin cell carries gold.
	GoldRatio float64
	// MaxValue caps the gold carried by a single cell (values are drawn from
	// 1..MaxValue). Values below 1 are treated as 1.
	MaxValue int
}

// DefaultRandomOptions returns RandomOptions matching the classic puzzle
// setting: one in five cells is a rock, one in ten carries a single nugget.
func DefaultRandomOptions() RandomOptions {
	return RandomOptions{
		Seed:      0,
		RockRatio: 0.2,
		GoldRatio: 0.1,
		MaxValue:  1,
	}
}

// Grid is an immutable rectangular field. cells[row][col] holds either a
// non-negative value or Rock.
type Grid struct {
	rows, cols int
	cells      [][]int
}
