// Package gridfile loads named grids from HCL files.
//
// A file holds one or more labelled grid blocks. Each block describes its
// cells either as a text layout (see grid.Parse) or as a numeric matrix:
//
//	grid "corridor" {
//	  layout = [
//	    "..X",
//	    ".X.",
//	    "...",
//	  ]
//	}
//
//	grid "valued" {
//	  cells = [
//	    [1, 1,    1],
//	    [1, rock, 1],
//	    [1, 1,    gold],
//	  ]
//	}
//
// Expressions in cells may refer to the variables rock, open and gold.
// Exactly one of layout or cells must be set per block, and names must be
// unique within a file.
package gridfile
