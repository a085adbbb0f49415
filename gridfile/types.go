package gridfile

import (
	"errors"

	"github.com/hashicorp/hcl/v2"
	"github.com/katalvlaran/gnomes/grid"
)

// Sentinel errors for grid file loading.
var (
	// ErrParse indicates HCL syntax errors.
	ErrParse = errors.New("gridfile: cannot parse HCL")
	// ErrDecode indicates a body that does not match the grid schema.
	ErrDecode = errors.New("gridfile: cannot decode grid block")
	// ErrGridSource indicates a block with neither or both of layout and cells.
	ErrGridSource = errors.New("gridfile: exactly one of layout or cells must be set")
	// ErrDuplicateName indicates two grid blocks share a label.
	ErrDuplicateName = errors.New("gridfile: duplicate grid name")
	// ErrNoGrids indicates a file without grid blocks.
	ErrNoGrids = errors.New("gridfile: no grid blocks found")
	// ErrNotFound indicates Find could not match the requested name.
	ErrNotFound = errors.New("gridfile: grid not found")
)

// Named is a grid together with its block label.
type Named struct {
	Name string
	Grid *grid.Grid
}

// hclFile is the top-level structure of a grid file for decoding.
type hclFile struct {
	Grids []*hclGrid `hcl:"grid,block"`
}

// hclGrid is a single grid block. Cells is kept as an expression so that it
// can be evaluated against the cell variables.
type hclGrid struct {
	Name   string         `hcl:"name,label"`
	Layout []string       `hcl:"layout,optional"`
	Cells  hcl.Expression `hcl:"cells,optional"`
}
