package gridfile

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/katalvlaran/gnomes/grid"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"
)

// cellsType is the cty type every cells expression is converted to.
var cellsType = cty.List(cty.List(cty.Number))

// evalContext exposes the cell variables to cells expressions.
func evalContext() *hcl.EvalContext {
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"rock": cty.NumberIntVal(grid.Rock),
			"open": cty.NumberIntVal(0),
			"gold": cty.NumberIntVal(1),
		},
	}
}

// Load parses the HCL file at filename and returns its grids in file order.
func Load(filename string) ([]Named, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("%w %s: %w", ErrParse, filename, diags)
	}

	return decodeFile(file, filename)
}

// Decode parses src as HCL; filename is only used in diagnostics.
func Decode(src []byte, filename string) ([]Named, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("%w %s: %w", ErrParse, filename, diags)
	}

	return decodeFile(file, filename)
}

// Find returns the grid labelled name, or the first grid when name is empty.
func Find(grids []Named, name string) (*grid.Grid, error) {
	if len(grids) == 0 {
		return nil, ErrNoGrids
	}
	if name == "" {
		return grids[0].Grid, nil
	}
	for _, n := range grids {
		if n.Name == name {
			return n.Grid, nil
		}
	}

	return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
}

// decodeFile decodes every grid block of an already parsed file.
func decodeFile(file *hcl.File, filename string) ([]Named, error) {
	ctx := evalContext()

	var parsed hclFile
	if diags := gohcl.DecodeBody(file.Body, ctx, &parsed); diags.HasErrors() {
		return nil, fmt.Errorf("%w %s: %w", ErrDecode, filename, diags)
	}
	if len(parsed.Grids) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoGrids, filename)
	}

	seen := make(map[string]struct{}, len(parsed.Grids))
	out := make([]Named, 0, len(parsed.Grids))
	for _, block := range parsed.Grids {
		if _, dup := seen[block.Name]; dup {
			return nil, fmt.Errorf("%w: %q in %s", ErrDuplicateName, block.Name, filename)
		}
		seen[block.Name] = struct{}{}

		g, err := buildGrid(block, ctx)
		if err != nil {
			return nil, fmt.Errorf("grid %q in %s: %w", block.Name, filename, err)
		}
		out = append(out, Named{Name: block.Name, Grid: g})
	}

	return out, nil
}

// buildGrid turns one decoded block into a grid.Grid.
func buildGrid(block *hclGrid, ctx *hcl.EvalContext) (*grid.Grid, error) {
	cells := cty.NullVal(cty.DynamicPseudoType)
	if block.Cells != nil {
		var diags hcl.Diagnostics
		cells, diags = block.Cells.Value(ctx)
		if diags.HasErrors() {
			return nil, fmt.Errorf("%w: %w", ErrDecode, diags)
		}
	}
	hasLayout := len(block.Layout) > 0
	hasCells := !cells.IsNull()

	switch {
	case hasLayout && hasCells, !hasLayout && !hasCells:
		return nil, ErrGridSource
	case hasLayout:
		return grid.Parse(block.Layout)
	}

	converted, err := convert.Convert(cells, cellsType)
	if err != nil {
		return nil, fmt.Errorf("%w: cells must be a list of number lists: %w", ErrDecode, err)
	}
	var values [][]int
	if err := gocty.FromCtyValue(converted, &values); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}

	return grid.New(values)
}
