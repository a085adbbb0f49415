// Package path defines the accumulator both solvers build: a walk that starts
// at the top-left cell of a grid and moves only RIGHT or DOWN, collecting the
// value of every open cell it enters.
//
// A Path is a value type. It records the current position, the ordered moves
// taken so far and the cumulative value. Step only appends a move whose
// target cell is inside the grid and not a rock, so every valid Path denotes a
// real route.
//
// Copies of a Path may be extended independently: Step never writes into a
// backing array another copy can see.
//
// The grid itself is consumed through the read-only Grid interface; see
// package grid for the concrete implementation.
package path
