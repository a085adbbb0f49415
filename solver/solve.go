package solver

import (
	"fmt"

	"github.com/katalvlaran/gnomes/path"
)

// Solve validates opts and routes g to the selected algorithm. With Auto,
// Exhaustive runs when R+C−2 ≤ ExhaustiveLimit and DynamicProgramming
// otherwise.
//
// Errors: ErrUnsupportedAlgorithm, ErrBadOptions, and those of the chosen solver.
func Solve(g path.Grid, opts Options) (Result, error) {
	limit, err := validateOptions(opts)
	if err != nil {
		return Result{}, err
	}
	rows, cols, err := validateGrid(g)
	if err != nil {
		return Result{}, err
	}

	algo := opts.Algorithm
	if algo == Auto {
		algo = DynamicProgrammingSearch
		if rows+cols-2 <= limit {
			algo = ExhaustiveSearch
		}
	}

	var best path.Path
	switch algo {
	case ExhaustiveSearch:
		best, err = Exhaustive(g)
	case DynamicProgrammingSearch:
		best, err = DynamicProgramming(g)
	default:
		return Result{}, ErrUnsupportedAlgorithm
	}
	if err != nil {
		return Result{}, err
	}

	return Result{Path: best, Algorithm: algo}, nil
}

// CrossValidate runs both solvers on g and returns the dynamic-programming
// path when both agree on the best value. A disagreement is reported as
// ErrSolutionMismatch together with both values.
//
// Only grids small enough for Exhaustive can be cross-validated.
func CrossValidate(g path.Grid) (path.Path, error) {
	exhaustive, err := Exhaustive(g)
	if err != nil {
		return path.Path{}, err
	}
	dynamic, err := DynamicProgramming(g)
	if err != nil {
		return path.Path{}, err
	}
	if exhaustive.Value() != dynamic.Value() {
		return path.Path{}, fmt.Errorf("%w: exhaustive=%d dynamic=%d",
			ErrSolutionMismatch, exhaustive.Value(), dynamic.Value())
	}

	return dynamic, nil
}
