package gridfile_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/gnomes/grid"
	"github.com/katalvlaran/gnomes/gridfile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const twoGrids = `
grid "corridor" {
  layout = [
    "..X",
    ".X.",
    "...",
  ]
}

grid "valued" {
  cells = [
    [1, 1, 1],
    [1, rock, 1],
    [open, 1, gold + 4],
  ]
}
`

// TestDecode_BothForms decodes a layout block and a cells block.
func TestDecode_BothForms(t *testing.T) {
	grids, err := gridfile.Decode([]byte(twoGrids), "two.hcl")
	require.NoError(t, err)
	require.Len(t, grids, 2)

	assert.Equal(t, "corridor", grids[0].Name)
	assert.Equal(t, [][]int{
		{0, 0, grid.Rock},
		{0, grid.Rock, 0},
		{0, 0, 0},
	}, grids[0].Grid.Values())

	assert.Equal(t, "valued", grids[1].Name)
	assert.Equal(t, [][]int{
		{1, 1, 1},
		{1, grid.Rock, 1},
		{0, 1, 5},
	}, grids[1].Grid.Values())
}

// TestLoad reads the same content from disk.
func TestLoad(t *testing.T) {
	file := filepath.Join(t.TempDir(), "grids.hcl")
	require.NoError(t, os.WriteFile(file, []byte(twoGrids), 0o600))

	grids, err := gridfile.Load(file)
	require.NoError(t, err)
	require.Len(t, grids, 2)

	_, err = gridfile.Load(filepath.Join(t.TempDir(), "missing.hcl"))
	require.ErrorIs(t, err, gridfile.ErrParse)
}

// TestFind selects by name and falls back to the first grid.
func TestFind(t *testing.T) {
	grids, err := gridfile.Decode([]byte(twoGrids), "two.hcl")
	require.NoError(t, err)

	first, err := gridfile.Find(grids, "")
	require.NoError(t, err)
	assert.Same(t, grids[0].Grid, first)

	valued, err := gridfile.Find(grids, "valued")
	require.NoError(t, err)
	assert.Same(t, grids[1].Grid, valued)

	_, err = gridfile.Find(grids, "nope")
	require.ErrorIs(t, err, gridfile.ErrNotFound)

	_, err = gridfile.Find(nil, "")
	require.ErrorIs(t, err, gridfile.ErrNoGrids)
}

// TestDecode_Errors covers syntax, schema and content failures.
func TestDecode_Errors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		err  error
	}{
		{"Syntax", `grid "a" {`, gridfile.ErrParse},
		{"UnknownAttribute", `grid "a" { size = 3 }`, gridfile.ErrDecode},
		{"NoBlocks", ``, gridfile.ErrNoGrids},
		{"NeitherSource", `grid "a" {}`, gridfile.ErrGridSource},
		{"BothSources", `grid "a" {
  layout = ["."]
  cells  = [[1]]
}`, gridfile.ErrGridSource},
		{"Duplicate", `
grid "a" { layout = ["."] }
grid "a" { layout = [".."] }
`, gridfile.ErrDuplicateName},
		{"NotAMatrix", `grid "a" { cells = "oops" }`, gridfile.ErrDecode},
		{"Fractional", `grid "a" { cells = [[1.5]] }`, gridfile.ErrDecode},
		{"UnknownVariable", `grid "a" { cells = [[lava]] }`, gridfile.ErrDecode},
		{"Ragged", `grid "a" { cells = [[1, 2], [3]] }`, grid.ErrNonRectangular},
		{"RockOrigin", `grid "a" { cells = [[rock]] }`, grid.ErrBlockedOrigin},
		{"BadRune", `grid "a" { layout = [".?"] }`, grid.ErrUnknownCell},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := gridfile.Decode([]byte(tc.src), "bad.hcl")
			require.ErrorIs(t, err, tc.err)
		})
	}
}
