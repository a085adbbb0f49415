package solver_test

import (
	"testing"

	"github.com/katalvlaran/gnomes/grid"
	"github.com/katalvlaran/gnomes/solver"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSolve_AutoRouting checks that Auto picks by path length.
func TestSolve_AutoRouting(t *testing.T) {
	g := ones(3, 4) // 5 steps

	res, err := solver.Solve(g, solver.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, solver.ExhaustiveSearch, res.Algorithm)
	assert.Equal(t, 6, res.Path.Value())

	opts := solver.DefaultOptions()
	opts.ExhaustiveLimit = 4
	res, err = solver.Solve(g, opts)
	require.NoError(t, err)
	assert.Equal(t, solver.DynamicProgrammingSearch, res.Algorithm)
	assert.Equal(t, 6, res.Path.Value())

	// Zero limit falls back to the default.
	res, err = solver.Solve(g, solver.Options{})
	require.NoError(t, err)
	assert.Equal(t, solver.ExhaustiveSearch, res.Algorithm)
}

// TestSolve_Explicit checks explicit algorithm selection.
func TestSolve_Explicit(t *testing.T) {
	g := grid.MustParse(
		"111",
		"1X1",
		"111",
	)
	for _, algo := range []solver.Algorithm{solver.ExhaustiveSearch, solver.DynamicProgrammingSearch} {
		t.Run(algo.String(), func(t *testing.T) {
			res, err := solver.Solve(g, solver.Options{Algorithm: algo})
			require.NoError(t, err)
			assert.Equal(t, algo, res.Algorithm)
			assert.Equal(t, 5, res.Path.Value())
		})
	}
}

// TestSolve_Errors covers option and grid validation.
func TestSolve_Errors(t *testing.T) {
	g := ones(2, 2)

	_, err := solver.Solve(g, solver.Options{Algorithm: solver.Algorithm(42)})
	require.ErrorIs(t, err, solver.ErrUnsupportedAlgorithm)

	_, err = solver.Solve(g, solver.Options{ExhaustiveLimit: -1})
	require.ErrorIs(t, err, solver.ErrBadOptions)

	_, err = solver.Solve(g, solver.Options{ExhaustiveLimit: solver.MaxExhaustiveSteps + 1})
	require.ErrorIs(t, err, solver.ErrBadOptions)

	_, err = solver.Solve(nil, solver.DefaultOptions())
	require.ErrorIs(t, err, solver.ErrEmptyGrid)

	_, err = solver.Solve(uniformGrid{rows: 40, cols: 40, value: 1}, solver.Options{Algorithm: solver.ExhaustiveSearch})
	require.ErrorIs(t, err, solver.ErrGridTooLarge)
}

// TestParseAlgorithm covers names, aliases and unknown input.
func TestParseAlgorithm(t *testing.T) {
	cases := []struct {
		in   string
		want solver.Algorithm
	}{
		{"auto", solver.Auto},
		{"", solver.Auto},
		{"Exhaustive", solver.ExhaustiveSearch},
		{" dp ", solver.DynamicProgrammingSearch},
		{"dynamic", solver.DynamicProgrammingSearch},
	}
	for _, tc := range cases {
		got, err := solver.ParseAlgorithm(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}

	_, err := solver.ParseAlgorithm("greedy")
	require.ErrorIs(t, err, solver.ErrUnsupportedAlgorithm)

	assert.Equal(t, "Algorithm(7)", solver.Algorithm(7).String())
}

// TestCrossValidate returns the DP path when both solvers agree.
func TestCrossValidate(t *testing.T) {
	g, err := grid.Random(6, 6, grid.RandomOptions{Seed: 3, RockRatio: 0.3, GoldRatio: 0.4, MaxValue: 9})
	require.NoError(t, err)

	p, err := solver.CrossValidate(g)
	require.NoError(t, err)
	dp, err := solver.DynamicProgramming(g)
	require.NoError(t, err)
	assert.True(t, p.Equal(dp))

	_, err = solver.CrossValidate(uniformGrid{rows: 64, cols: 2, value: 1})
	require.ErrorIs(t, err, solver.ErrGridTooLarge)
}
