package solver

import "github.com/katalvlaran/gnomes/path"

// validateGrid checks the preconditions shared by both solvers and returns
// the grid dimensions.
//
// Complexity: O(1).
func validateGrid(g path.Grid) (rows, cols int, err error) {
	if g == nil {
		return 0, 0, ErrEmptyGrid
	}
	rows, cols = g.Rows(), g.Columns()
	if rows < 1 || cols < 1 {
		return 0, 0, ErrEmptyGrid
	}
	if g.Get(0, 0) < 0 {
		return 0, 0, ErrBlockedOrigin
	}

	return rows, cols, nil
}

// validateOptions checks Options and resolves the effective exhaustive limit.
//
// Complexity: O(1).
func validateOptions(opts Options) (limit int, err error) {
	switch opts.Algorithm {
	case Auto, ExhaustiveSearch, DynamicProgrammingSearch:
		// ok
	default:
		return 0, ErrUnsupportedAlgorithm
	}
	limit = opts.ExhaustiveLimit
	if limit < 0 || limit > MaxExhaustiveSteps {
		return 0, ErrBadOptions
	}
	if limit == 0 {
		limit = DefaultExhaustiveLimit
	}

	return limit, nil
}
