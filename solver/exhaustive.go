package solver

import "github.com/katalvlaran/gnomes/path"

// Exhaustive returns the most valuable path on g by brute force.
//
// Algorithm:
//  1. L = R + C − 2 is the longest possible RIGHT/DOWN walk.
//  2. For every length n in 0..L and every pattern in 0..2ⁿ−1, replay the
//     low n bits from the origin: bit k set means RIGHT, clear means DOWN.
//     A move that would leave the grid or enter a rock is skipped and the
//     replay continues from the last valid cell.
//  3. A candidate replaces the best only when strictly more valuable, so ties
//     keep the earlier candidate.
//
// Errors: ErrEmptyGrid, ErrBlockedOrigin, ErrGridTooLarge (L ≥ 64).
//
// Time complexity:   O(2^(L+1) · L)
// Memory complexity: O(L)
func Exhaustive(g path.Grid) (path.Path, error) {
	rows, cols, err := validateGrid(g)
	if err != nil {
		return path.Path{}, err
	}
	maxSteps := rows + cols - 2
	if maxSteps > MaxExhaustiveSteps {
		return path.Path{}, ErrGridTooLarge
	}

	best := path.New(g)
	for n := 0; n <= maxSteps; n++ {
		patterns := uint64(1) << uint(n)
		for bits := uint64(0); bits < patterns; bits++ {
			candidate := path.New(g)
			for k := 0; k < n; k++ {
				// Infeasible moves are skipped, never fatal.
				_ = candidate.Step(moveForBit(bits, k))
			}
			if candidate.Value() > best.Value() {
				best = candidate
			}
		}
	}

	return best, nil
}

// moveForBit decodes bit k of pattern into a move: 1 → RIGHT, 0 → DOWN.
// k must lie in 0..63.
func moveForBit(pattern uint64, k int) path.Direction {
	if (pattern>>uint(k))&1 == 1 {
		return path.Right
	}

	return path.Down
}
