package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qnkhuat/tetristerm/pkg/mino"
)

func fillRow(b *Board, row int, c mino.Color) {
	cells := make([]Cell, Width)
	for x := 0; x < Width; x++ {
		cells[x] = Cell{x, row, c}
	}

	b.Commit(cells)
}

func TestIsInside(t *testing.T) {
	b := New()

	tests := []struct {
		col, row int
		inside   bool
	}{
		{0, 0, true},
		{9, 19, true},
		{-1, 0, false},
		{10, 0, false},
		{0, 20, false},
		{5, -3, true},
		{-1, -3, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.inside, b.IsInside(tt.col, tt.row), "IsInside(%d, %d)", tt.col, tt.row)
	}
}

func TestCommit(t *testing.T) {
	b := New()

	b.Commit([]Cell{{3, 19, mino.Red}, {4, 19, mino.Red}})

	assert.True(t, b.IsOccupied(3, 19))
	assert.True(t, b.IsOccupied(4, 19))
	assert.False(t, b.IsOccupied(5, 19))
	assert.False(t, b.IsOccupied(3, -1))
	assert.Equal(t, mino.Red, b.At(3, 19))
	assert.Equal(t, 2, b.Filled())
}

func TestCommitOutOfBounds(t *testing.T) {
	for _, c := range []Cell{{-1, 0, mino.Red}, {10, 0, mino.Red}, {0, 20, mino.Red}, {0, -1, mino.Red}} {
		b := New()
		assert.Panics(t, func() { b.Commit([]Cell{{0, 19, mino.Blue}, c}) }, "cell %s", c)
		assert.Zero(t, b.Filled(), "a rejected commit must not write any cell")
	}
}

func TestIsRowFull(t *testing.T) {
	b := New()

	fillRow(b, 19, mino.Cyan)
	b.Commit([]Cell{{0, 18, mino.Cyan}})

	assert.True(t, b.IsRowFull(19))
	assert.False(t, b.IsRowFull(18))
	assert.False(t, b.IsRowFull(0))
}

func TestClearRow(t *testing.T) {
	b := New()

	fillRow(b, 19, mino.Cyan)
	b.Commit([]Cell{{0, 18, mino.Red}, {1, 17, mino.Green}})

	b.ClearRow(19)

	assert.Equal(t, mino.Red, b.At(0, 19))
	assert.Equal(t, mino.Green, b.At(1, 18))
	assert.Equal(t, 2, b.Filled())
	for x := 0; x < Width; x++ {
		assert.False(t, b.IsOccupied(x, 0))
	}
}

func TestClearRowKeepsRowsBelow(t *testing.T) {
	b := New()

	b.Commit([]Cell{{0, 19, mino.Blue}})
	fillRow(b, 18, mino.Cyan)
	b.Commit([]Cell{{2, 17, mino.Red}})

	b.ClearRow(18)

	assert.Equal(t, mino.Blue, b.At(0, 19))
	assert.Equal(t, mino.Red, b.At(2, 18))
	assert.Equal(t, 2, b.Filled())
}

func TestReset(t *testing.T) {
	b := New()
	fillRow(b, 10, mino.Purple)
	require.NotZero(t, b.Filled())

	b.Reset()

	assert.Zero(t, b.Filled())
	assert.Equal(t, Height, len(b.Cells()))
	assert.Equal(t, Width, len(b.Cells()[0]))
}

func TestCellsIsCopy(t *testing.T) {
	b := New()

	cells := b.Cells()
	cells[0][0] = mino.Red

	assert.False(t, b.IsOccupied(0, 0))
}
