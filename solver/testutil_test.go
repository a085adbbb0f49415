// Package solver_test provides small fixtures shared by the solver tests.
package solver_test

import (
	"github.com/katalvlaran/gnomes/grid"
	"github.com/katalvlaran/gnomes/path"
	"github.com/katalvlaran/gnomes/solver"
)

// uniformGrid is a rows×cols path.Grid where every cell holds value.
// It allocates nothing, so it can describe grids too large to store.
type uniformGrid struct {
	rows, cols, value int
}

func (u uniformGrid) Rows() int        { return u.rows }
func (u uniformGrid) Columns() int     { return u.cols }
func (u uniformGrid) Get(_, _ int) int { return u.value }

// ones returns a rows×cols grid of value 1 built through package grid.
func ones(rows, cols int) *grid.Grid {
	values := make([][]int, rows)
	for r := range values {
		values[r] = make([]int, cols)
		for c := range values[r] {
			values[r][c] = 1
		}
	}
	g, err := grid.New(values)
	if err != nil {
		panic(err)
	}

	return g
}

// solvers lists both algorithms for table-driven tests.
var solvers = []struct {
	name  string
	solve func(path.Grid) (path.Path, error)
}{
	{"Exhaustive", solver.Exhaustive},
	{"DynamicProgramming", solver.DynamicProgramming},
}
