// Package solver finds the most valuable RIGHT/DOWN walk from the top-left
// cell of a grid, where rocks can be neither entered nor crossed.
//
// 🚀 Algorithms:
//
//   - Exhaustive — replays every bit pattern of every length up to R+C−2
//     (bit 1 → RIGHT, bit 0 → DOWN), skipping infeasible moves.
//     Time: O(2^(R+C)·(R+C)), so only small grids are practical.
//     Requires R+C−2 < 64.
//
//   - DynamicProgramming — fills a table of best paths per cell from its upper
//     and left neighbours, then scans for the overall best.
//     Time: O(R·C·(R+C)) including path copies, Memory: O(R·C·(R+C)).
//
// Both return a path.Path and agree on Value() for every grid the exhaustive
// search can handle; CrossValidate checks exactly that.
//
// ⚙️ Usage:
//
//	g := grid.MustParse(
//		"...",
//		".X.",
//		"...",
//	)
//	best, err := solver.DynamicProgramming(g)
//
// or let Solve pick an algorithm by grid size:
//
//	res, err := solver.Solve(g, solver.DefaultOptions())
//
// Errors:
//   - ErrEmptyGrid            — nil grid, zero rows or zero columns.
//   - ErrBlockedOrigin        — the origin is a rock.
//   - ErrGridTooLarge         — R+C−2 ≥ 64 for Exhaustive.
//   - ErrUnsupportedAlgorithm — unknown Options.Algorithm.
//   - ErrBadOptions           — ExhaustiveLimit out of range.
//   - ErrSolutionMismatch     — CrossValidate found differing values.
//
// Solvers are pure and synchronous: no logging, no goroutines, no shared
// state between calls.
package solver
