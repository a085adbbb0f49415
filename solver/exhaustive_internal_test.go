package solver

import (
	"testing"

	"github.com/katalvlaran/gnomes/path"
	"github.com/stretchr/testify/assert"
)

// TestMoveForBit decodes single bits at both ends of the 64-bit word.
func TestMoveForBit(t *testing.T) {
	const pattern = uint64(0b1011) | 1<<63

	assert.Equal(t, path.Right, moveForBit(pattern, 0))
	assert.Equal(t, path.Right, moveForBit(pattern, 1))
	assert.Equal(t, path.Down, moveForBit(pattern, 2))
	assert.Equal(t, path.Right, moveForBit(pattern, 3))
	assert.Equal(t, path.Down, moveForBit(pattern, 62))
	assert.Equal(t, path.Right, moveForBit(pattern, 63))
	assert.Equal(t, path.Down, moveForBit(0, 5))
}

// TestPickAbove covers every presence combination of the two candidates.
func TestPickAbove(t *testing.T) {
	g := uniformOnes{}
	above := path.New(g)
	_ = above.Step(path.Down)
	left := path.New(g)
	_ = left.Step(path.Right)
	richer := left.Clone()
	_ = richer.Step(path.Right)

	assert.True(t, pickAbove(above, left).Equal(above), "tie prefers above")
	assert.True(t, pickAbove(above, richer).Equal(richer), "higher value wins")
	assert.True(t, pickAbove(path.Path{}, left).Equal(left))
	assert.True(t, pickAbove(above, path.Path{}).Equal(above))
	assert.False(t, pickAbove(path.Path{}, path.Path{}).Valid())
}

// uniformOnes is a 3×3 grid of ones.
type uniformOnes struct{}

func (uniformOnes) Rows() int        { return 3 }
func (uniformOnes) Columns() int     { return 3 }
func (uniformOnes) Get(_, _ int) int { return 1 }
