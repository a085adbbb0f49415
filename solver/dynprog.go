package solver

import "github.com/katalvlaran/gnomes/path"

// DynamicProgramming returns the most valuable path on g in polynomial time.
//
// Algorithm Outline:
//  1. Allocate an R×C table of paths; an invalid (zero) path.Path marks
//     "no path recorded".
//  2. best[0][0] = origin-only path.
//  3. Row-major, for every open cell (i,j) other than the origin:
//     fromAbove = best[i−1][j] + DOWN   (if recorded)
//     fromLeft  = best[i][j−1] + RIGHT  (if recorded)
//     keep the more valuable one; on a tie keep fromAbove.
//     Rocks and cells with neither source stay unrecorded.
//  4. Scan the table row-major and return the most valuable recorded path;
//     only a strictly better value replaces the origin-only path.
//
// Errors: ErrEmptyGrid, ErrBlockedOrigin.
//
// Time complexity:   O(R·C·(R+C)) (each cell copies a path of length < R+C)
// Memory complexity: O(R·C·(R+C))
func DynamicProgramming(g path.Grid) (path.Path, error) {
	rows, cols, err := validateGrid(g)
	if err != nil {
		return path.Path{}, err
	}

	best := make([][]path.Path, rows)
	for i := range best {
		best[i] = make([]path.Path, cols)
	}
	best[0][0] = path.New(g)

	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if (i == 0 && j == 0) || g.Get(i, j) < 0 {
				continue
			}
			var fromAbove, fromLeft path.Path
			if i > 0 {
				fromAbove = extend(best[i-1][j], path.Down)
			}
			if j > 0 {
				fromLeft = extend(best[i][j-1], path.Right)
			}
			best[i][j] = pickAbove(fromAbove, fromLeft)
		}
	}

	result := best[0][0]
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if best[i][j].Valid() && best[i][j].Value() > result.Value() {
				result = best[i][j]
			}
		}
	}

	return result, nil
}

// extend returns a copy of src advanced by d, or an invalid path when src is
// unrecorded or the move is infeasible.
func extend(src path.Path, d path.Direction) path.Path {
	if !src.Valid() {
		return path.Path{}
	}
	next := src
	if err := next.Step(d); err != nil {
		return path.Path{}
	}

	return next
}

// pickAbove chooses between two candidates, preferring above on ties.
// Either may be invalid; if both are, the result is invalid.
func pickAbove(above, left path.Path) path.Path {
	switch {
	case above.Valid() && left.Valid():
		if above.Value() >= left.Value() {
			return above
		}
		return left
	case above.Valid():
		return above
	default:
		return left
	}
}
