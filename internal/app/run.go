package app

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/katalvlaran/gnomes/grid"
	"github.com/katalvlaran/gnomes/gridfile"
	"github.com/katalvlaran/gnomes/internal/ctxlog"
	"github.com/katalvlaran/gnomes/path"
	"github.com/katalvlaran/gnomes/solver"
)

// Run loads or generates the grid described by cfg, solves it and writes a
// report to out.
func Run(ctx context.Context, out io.Writer, cfg *Config) error {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Run started.", "mode", cfg.Mode)

	g, err := LoadGrid(ctx, cfg)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "grid %dx%d\n%s\n", g.Rows(), g.Columns(), g)

	if cfg.Mode == ModeBoth {
		return runBoth(ctx, out, g)
	}

	opts, err := cfg.SolverOptions()
	if err != nil {
		return err
	}
	start := time.Now()
	res, err := solver.Solve(g, opts)
	if err != nil {
		return fmt.Errorf("solve failed: %w", err)
	}
	logger.Info("Grid solved.",
		"algorithm", res.Algorithm.String(),
		"value", res.Path.Value(),
		"steps", res.Path.Len(),
		"elapsed", time.Since(start),
	)
	writeReport(out, res.Algorithm.String(), res.Path)

	return nil
}

// LoadGrid returns the grid named by cfg: either read from an HCL file or
// generated from the random settings.
func LoadGrid(ctx context.Context, cfg *Config) (*grid.Grid, error) {
	logger := ctxlog.FromContext(ctx)
	if cfg.GridPath != "" {
		logger.Debug("Loading grid file.", "path", cfg.GridPath, "name", cfg.GridName)
		grids, err := gridfile.Load(cfg.GridPath)
		if err != nil {
			return nil, err
		}
		g, err := gridfile.Find(grids, cfg.GridName)
		if err != nil {
			return nil, err
		}
		logger.Debug("Grid file loaded.", "grids", len(grids))

		return g, nil
	}

	logger.Debug("Generating random grid.",
		"rows", cfg.RandomRows, "columns", cfg.RandomCols, "seed", cfg.Random.Seed)
	g, err := grid.Random(cfg.RandomRows, cfg.RandomCols, cfg.Random)
	if err != nil {
		return nil, fmt.Errorf("failed to generate grid: %w", err)
	}

	return g, nil
}

// runBoth solves g with both algorithms, reports each, and fails when the
// values disagree.
func runBoth(ctx context.Context, out io.Writer, g *grid.Grid) error {
	logger := ctxlog.FromContext(ctx)
	runs := []struct {
		algo  solver.Algorithm
		solve func(path.Grid) (path.Path, error)
	}{
		{solver.ExhaustiveSearch, solver.Exhaustive},
		{solver.DynamicProgrammingSearch, solver.DynamicProgramming},
	}

	values := make([]int, 0, len(runs))
	for _, r := range runs {
		start := time.Now()
		p, err := r.solve(g)
		if err != nil {
			return fmt.Errorf("%s failed: %w", r.algo, err)
		}
		logger.Info("Grid solved.",
			"algorithm", r.algo.String(),
			"value", p.Value(),
			"steps", p.Len(),
			"elapsed", time.Since(start),
		)
		writeReport(out, r.algo.String(), p)
		values = append(values, p.Value())
	}

	if values[0] != values[1] {
		logger.Error("Solvers disagree.", "exhaustive", values[0], "dp", values[1])
		return fmt.Errorf("%w: exhaustive=%d dp=%d", solver.ErrSolutionMismatch, values[0], values[1])
	}
	fmt.Fprintln(out, "solvers agree")

	return nil
}

// writeReport prints one solver result.
func writeReport(out io.Writer, algo string, p path.Path) {
	moves := make([]string, 0, p.Len())
	for _, d := range p.Steps() {
		moves = append(moves, d.String())
	}
	if len(moves) == 0 {
		moves = append(moves, "(none)")
	}
	fmt.Fprintf(out, "algorithm: %s\nvalue: %d\nmoves: %s\n%s\n",
		algo, p.Value(), strings.Join(moves, " "), p.Render())
}
