package solver

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/gnomes/path"
)

// Sentinel errors returned by the solvers.
var (
	// ErrEmptyGrid indicates a nil grid or one with no rows or no columns.
	ErrEmptyGrid = errors.New("solver: grid must have at least one row and one column")
	// ErrBlockedOrigin indicates the origin cell is a rock.
	ErrBlockedOrigin = errors.New("solver: origin cell must be open")
	// ErrGridTooLarge indicates R+C−2 does not fit a 64-bit pattern.
	ErrGridTooLarge = errors.New("solver: rows+columns-2 must be below 64 for exhaustive search")
	// ErrUnsupportedAlgorithm indicates an unknown Algorithm value.
	ErrUnsupportedAlgorithm = errors.New("solver: unsupported algorithm")
	// ErrBadOptions indicates an out-of-range option.
	ErrBadOptions = errors.New("solver: invalid options")
	// ErrSolutionMismatch indicates the two solvers disagreed on the best value.
	ErrSolutionMismatch = errors.New("solver: exhaustive and dynamic programming results disagree")
)

// MaxExhaustiveSteps is the longest path length Exhaustive can enumerate.
const MaxExhaustiveSteps = 63

// DefaultExhaustiveLimit is the step count up to which Auto prefers
// exhaustive search.
const DefaultExhaustiveLimit = 20

// Algorithm selects a solver in Solve.
type Algorithm int

const (
	// Auto uses Exhaustive for short paths and DynamicProgramming otherwise.
	Auto Algorithm = iota
	// ExhaustiveSearch always runs Exhaustive.
	ExhaustiveSearch
	// DynamicProgrammingSearch always runs DynamicProgramming.
	DynamicProgrammingSearch
)

// String implements fmt.Stringer.
func (a Algorithm) String() string {
	switch a {
	case Auto:
		return "auto"
	case ExhaustiveSearch:
		return "exhaustive"
	case DynamicProgrammingSearch:
		return "dp"
	default:
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
}

// ParseAlgorithm maps "auto", "exhaustive" and "dp" (case-insensitive) to
// an Algorithm.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "auto", "":
		return Auto, nil
	case "exhaustive":
		return ExhaustiveSearch, nil
	case "dp", "dynamic":
		return DynamicProgrammingSearch, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, s)
	}
}

// Options configures Solve.
type Options struct {
	// Algorithm picks the solver.
	Algorithm Algorithm
	// ExhaustiveLimit is the largest R+C−2 for which Auto runs Exhaustive.
	// 0 means DefaultExhaustiveLimit; valid range is 0..MaxExhaustiveSteps.
	ExhaustiveLimit int
}

// DefaultOptions returns Auto with DefaultExhaustiveLimit.
func DefaultOptions() Options {
	return Options{
		Algorithm:       Auto,
		ExhaustiveLimit: DefaultExhaustiveLimit,
	}
}

// Result is the outcome of Solve.
type Result struct {
	// Path is the best walk found.
	Path path.Path
	// Algorithm is the solver that actually ran (never Auto).
	Algorithm Algorithm
}
