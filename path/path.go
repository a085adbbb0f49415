package path

import (
	"fmt"
	"slices"
	"strings"

	"github.com/katalvlaran/gnomes/grid"
)

var _ Grid = (*grid.Grid)(nil)

// Path is a walk from the origin. The zero value is an invalid path that
// accepts no steps.
//
// Invariants (for a valid Path):
//   - Position() equals Origin plus the net effect of Steps().
//   - Value() is the sum of the values of all visited cells, origin included.
//   - Every visited cell is in bounds and open.
type Path struct {
	g     Grid
	pos   Coord
	steps []Direction
	value int
	valid bool
}

// New returns the origin-only path on g with the origin's value counted.
// If g is nil, empty, or has a blocked origin the returned Path is invalid.
//
// Complexity: O(1).
func New(g Grid) Path {
	if g == nil || g.Rows() < 1 || g.Columns() < 1 {
		return Path{}
	}
	v := g.Get(Origin.Row, Origin.Col)
	if v < 0 {
		return Path{}
	}

	return Path{g: g, pos: Origin, value: v, valid: true}
}

// Valid reports whether p denotes a real route.
func (p Path) Valid() bool { return p.valid }

// Value returns the cumulative collected value.
func (p Path) Value() int { return p.value }

// Position returns the current cell.
func (p Path) Position() Coord { return p.pos }

// Len returns the number of moves taken.
func (p Path) Len() int { return len(p.steps) }

// Steps returns a copy of the moves taken, in order.
func (p Path) Steps() []Direction {
	return slices.Clone(p.steps)
}

// CanStep reports whether moving in direction d stays in bounds and lands on
// an open cell.
// Complexity: O(1).
func (p Path) CanStep(d Direction) bool {
	if !p.valid || (d != Down && d != Right) {
		return false
	}
	dr, dc := d.delta()
	r, c := p.pos.Row+dr, p.pos.Col+dc
	if r >= p.g.Rows() || c >= p.g.Columns() {
		return false
	}

	return p.g.Get(r, c) >= 0
}

// Step appends d and collects the value of the entered cell. If the move is
// not possible, Step returns ErrInvalidStep and p is left unchanged.
// Complexity: O(Len()).
func (p *Path) Step(d Direction) error {
	if !p.CanStep(d) {
		return ErrInvalidStep
	}
	dr, dc := d.delta()
	p.pos = Coord{Row: p.pos.Row + dr, Col: p.pos.Col + dc}
	// Clip capacity so copies of p never write into each other's moves.
	p.steps = append(p.steps[:len(p.steps):len(p.steps)], d)
	p.value += p.g.Get(p.pos.Row, p.pos.Col)

	return nil
}

// Clone returns a copy of p that owns its move slice. Plain assignment is
// already safe to extend; Clone additionally detaches the backing array.
// Complexity: O(Len()).
func (p Path) Clone() Path {
	p.steps = slices.Clone(p.steps)

	return p
}

// Cells returns every visited position in order, origin first. An invalid
// path has no cells.
// Complexity: O(Len()).
func (p Path) Cells() []Coord {
	if !p.valid {
		return nil
	}
	out := make([]Coord, 0, len(p.steps)+1)
	cur := Origin
	out = append(out, cur)
	for _, d := range p.steps {
		dr, dc := d.delta()
		cur = Coord{Row: cur.Row + dr, Col: cur.Col + dc}
		out = append(out, cur)
	}

	return out
}

// Equal reports whether p and other have the same validity, value and moves.
func (p Path) Equal(other Path) bool {
	return p.valid == other.valid &&
		p.value == other.value &&
		p.pos == other.pos &&
		slices.Equal(p.steps, other.steps)
}

// String implements fmt.Stringer, e.g. "[DOWN RIGHT] value=3".
func (p Path) String() string {
	if !p.valid {
		return "<invalid path>"
	}
	parts := make([]string, len(p.steps))
	for i, d := range p.steps {
		parts[i] = d.String()
	}

	return fmt.Sprintf("[%s] value=%d", strings.Join(parts, " "), p.value)
}

// VisitedRune marks cells on the path in Render output.
const VisitedRune = '*'

// Render draws the grid in the grid package's layout alphabet with every
// visited cell replaced by VisitedRune. An invalid path renders as "".
// Complexity: O(R×C + Len()).
func (p Path) Render() string {
	if !p.valid {
		return ""
	}
	rows, cols := p.g.Rows(), p.g.Columns()
	canvas := make([][]rune, rows)
	for r := 0; r < rows; r++ {
		canvas[r] = make([]rune, cols)
		for c := 0; c < cols; c++ {
			canvas[r][c] = layoutRune(p.g.Get(r, c))
		}
	}
	for _, cell := range p.Cells() {
		canvas[cell.Row][cell.Col] = VisitedRune
	}

	var sb strings.Builder
	sb.Grow(rows * (cols + 1))
	for _, row := range canvas {
		sb.WriteString(string(row))
		sb.WriteByte('\n')
	}

	return sb.String()
}

// layoutRune maps a cell value to the grid package alphabet.
func layoutRune(v int) rune {
	switch {
	case v < 0:
		return grid.RockRune
	case v == 0:
		return grid.OpenRune
	case v <= 9:
		return rune('0' + v)
	default:
		return grid.GoldRune
	}
}
