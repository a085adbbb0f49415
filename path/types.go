package path

import "errors"

// ErrInvalidStep is returned by Step when the move would leave the grid,
// enter a rock, or extend an invalid Path.
var ErrInvalidStep = errors.New("path: step leaves the grid or enters a blocked cell")

// Grid is the read-only view of a field that paths walk across.
// Get must only be called with in-bounds coordinates; a negative value marks
// a blocked cell.
type Grid interface {
	Rows() int
	Columns() int
	Get(row, col int) int
}

// Direction is a single move. The numeric values match the bit encoding used
// by exhaustive search: 1 is RIGHT, 0 is DOWN.
type Direction uint8

const (
	// Down moves one row towards the bottom.
	Down Direction = iota
	// Right moves one column towards the right.
	Right
)

// String implements fmt.Stringer.
func (d Direction) String() string {
	switch d {
	case Down:
		return "DOWN"
	case Right:
		return "RIGHT"
	default:
		return "UNKNOWN"
	}
}

// delta returns the (row, col) offset of d.
func (d Direction) delta() (int, int) {
	if d == Right {
		return 0, 1
	}

	return 1, 0
}

// Coord is a cell position.
type Coord struct {
	Row, Col int
}

// Origin is the top-left cell every Path starts from.
var Origin = Coord{}
