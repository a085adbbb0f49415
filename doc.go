// Package gnomes finds the most valuable walk a gnome can take across a
// rocky grid, starting in the top-left cell and moving only right or down.
//
// 🚀 What is in the module?
//
//	grid/     — immutable grid of open cells (with gold) and rocks; text
//	            layouts and seeded random generation
//	path/     — the Path value type: moves, position and collected value
//	solver/   — exhaustive search and dynamic programming, a dispatcher and a
//	            cross-validation helper
//	gridfile/ — named grids loaded from HCL files
//	cmd/gnomes — command-line front end
//
// Quick ASCII example (X = rock, digits = gold):
//
//	1 1 1        * * *
//	1 X 1   →    1 X *     value 5
//	1 1 1        1 1 *
//
// Both solvers return the same value on every grid small enough for the
// exhaustive search (rows+columns−2 < 64):
//
//	best, err := solver.DynamicProgramming(g)
package gnomes
