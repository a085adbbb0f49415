// Package grid models the rectangular field a gnome walks across: every cell
// is either open (and carries a non-negative amount of gold) or blocked by a
// rock.
//
// What:
//
//   - Grid wraps a rectangular [][]int with a fixed Rock marker for blocked cells.
//   - Parse builds a Grid from a compact text layout ('.', 'X', 'G', digits).
//   - Random builds a deterministic, seeded Grid for benchmarks and timing runs.
//
// Why:
//
//   - Both solvers in package solver consume a read-only grid; Grid is the
//     concrete implementation of that abstraction (see path.Grid).
//   - Text layouts keep tests and examples readable.
//
// Invariants:
//
//   - Rows() ≥ 1 and Columns() ≥ 1.
//   - The origin (0,0) is open.
//   - A Grid is never mutated after construction and may be shared freely
//     between goroutines.
//
// Complexity:
//
//   - New, Parse, Random: O(R×C) time and memory.
//   - Get, IsBlocked, InBounds: O(1).
//
// Errors:
//
//   - ErrEmptyGrid: no rows or no columns.
//   - ErrNonRectangular: rows of differing lengths.
//   - ErrBlockedOrigin: the origin cell is a rock.
//   - ErrUnknownCell: a layout rune outside the alphabet.
//   - ErrBadRatio: Random ratios outside [0,1] or summing above 1.
package grid
