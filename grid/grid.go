package grid

import (
	"fmt"
	"strings"
)

// New constructs a Grid from a non-empty, rectangular 2D slice indexed as
// values[row][col]. Negative values become Rock. The input is deep-copied.
//
// Returns ErrEmptyGrid, ErrNonRectangular or ErrBlockedOrigin.
// Complexity: O(R×C) time and memory.
func New(values [][]int) (*Grid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	cells := make([][]int, h)
	for r := 0; r < h; r++ {
		cells[r] = make([]int, w)
		for c, v := range values[r] {
			if v < 0 {
				v = Rock
			}
			cells[r][c] = v
		}
	}
	if cells[0][0] == Rock {
		return nil, ErrBlockedOrigin
	}

	return &Grid{rows: h, cols: w, cells: cells}, nil
}

// Parse builds a Grid from a text layout, one string per row:
//
//	'.'      open, value 0
//	'X'      rock
//	'G'      gold, value 1
//	'0'-'9'  open with that value
//
// Complexity: O(R×C).
func Parse(lines []string) (*Grid, error) {
	values := make([][]int, len(lines))
	for r, line := range lines {
		row := make([]int, 0, len(line))
		for c, ch := range line {
			switch {
			case ch == OpenRune:
				row = append(row, 0)
			case ch == RockRune:
				row = append(row, Rock)
			case ch == GoldRune:
				row = append(row, 1)
			case ch >= '0' && ch <= '9':
				row = append(row, int(ch-'0'))
			default:
				return nil, fmt.Errorf("%w: %q at row %d, column %d", ErrUnknownCell, ch, r, c)
			}
		}
		values[r] = row
	}

	return New(values)
}

// MustParse is like Parse but panics on error. Intended for tests and
// package-level fixtures.
func MustParse(lines ...string) *Grid {
	g, err := Parse(lines)
	if err != nil {
		panic(err)
	}

	return g
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Columns returns the number of columns.
func (g *Grid) Columns() int { return g.cols }

// Get returns the value stored at (row, col), or Rock for a blocked cell.
// Coordinates must be in bounds; out-of-range access panics like a slice index.
func (g *Grid) Get(row, col int) int {
	return g.cells[row][col]
}

// InBounds reports whether (row, col) lies within the grid.
// Complexity: O(1).
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// IsBlocked reports whether (row, col) is a rock. Out-of-bounds cells are
// reported as blocked.
func (g *Grid) IsBlocked(row, col int) bool {
	return !g.InBounds(row, col) || g.cells[row][col] == Rock
}

// Values returns a deep copy of the cell values.
func (g *Grid) Values() [][]int {
	out := make([][]int, g.rows)
	for r := range g.cells {
		out[r] = make([]int, g.cols)
		copy(out[r], g.cells[r])
	}

	return out
}

// String renders the grid in the Parse alphabet. Values above 9 are shown
// as 'G'.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(g.rows * (g.cols + 1))
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			sb.WriteRune(cellRune(g.cells[r][c]))
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

// cellRune maps a stored value to its layout rune.
func cellRune(v int) rune {
	switch {
	case v == Rock:
		return RockRune
	case v == 0:
		return OpenRune
	case v <= 9:
		return rune('0' + v)
	default:
		return GoldRune
	}
}
