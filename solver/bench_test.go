package solver_test

import (
	"testing"

	"github.com/katalvlaran/gnomes/grid"
	"github.com/katalvlaran/gnomes/path"
	"github.com/katalvlaran/gnomes/solver"
)

// benchmarkSolver runs solve on a seeded n×n random grid.
// It resets the timer before entering the loop and fails on unexpected errors.
func benchmarkSolver(b *testing.B, n int, solve func(path.Grid) (path.Path, error)) {
	g, err := grid.Random(n, n, grid.RandomOptions{Seed: 42, RockRatio: 0.2, GoldRatio: 0.3, MaxValue: 9})
	if err != nil {
		b.Fatalf("setup Random failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := solve(g); err != nil {
			b.Fatalf("solve failed: %v", err)
		}
	}
}

// BenchmarkExhaustive_6x6 enumerates 2^11 patterns.
func BenchmarkExhaustive_6x6(b *testing.B) { benchmarkSolver(b, 6, solver.Exhaustive) }

// BenchmarkExhaustive_9x9 enumerates 2^17 patterns.
func BenchmarkExhaustive_9x9(b *testing.B) { benchmarkSolver(b, 9, solver.Exhaustive) }

// BenchmarkDynamicProgramming_9x9 matches the exhaustive size for comparison.
func BenchmarkDynamicProgramming_9x9(b *testing.B) {
	benchmarkSolver(b, 9, solver.DynamicProgramming)
}

// BenchmarkDynamicProgramming_100x100 measures a medium grid.
func BenchmarkDynamicProgramming_100x100(b *testing.B) {
	benchmarkSolver(b, 100, solver.DynamicProgramming)
}

// BenchmarkDynamicProgramming_200x200 measures a large grid.
func BenchmarkDynamicProgramming_200x200(b *testing.B) {
	benchmarkSolver(b, 200, solver.DynamicProgramming)
}
