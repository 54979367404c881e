package piece

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qnkhuat/tetristerm/pkg/board"
	"github.com/qnkhuat/tetristerm/pkg/mino"
)

func spawn(t *testing.T, id int, b *board.Board) *Piece {
	t.Helper()

	m, err := mino.At(id)
	require.NoError(t, err)

	p, blocked := Spawn(m, b)
	require.False(t, blocked, "spawn of %s blocked", m)
	return p
}

func assertInBounds(t *testing.T, p *Piece) {
	t.Helper()

	for _, c := range p.Cells() {
		assert.True(t, c.X >= 0 && c.X < board.Width && c.Y < board.Height, "cell %s out of bounds", c)
	}
}

func TestSpawnCentered(t *testing.T) {
	b := board.New()

	tests := map[int]int{
		mino.MinoI: 3,
		mino.MinoJ: 4,
		mino.MinoO: 4,
		mino.MinoT: 4,
	}

	for id, x := range tests {
		p := spawn(t, id, b)
		assert.Equal(t, x, p.X, "mino %d", id)
		assert.Equal(t, 0, p.Y, "mino %d", id)
	}
}

func TestSpawnBlocked(t *testing.T) {
	b := board.New()
	b.Commit([]board.Cell{{X: 4, Y: 0, Color: mino.Red}})

	m, err := mino.At(mino.MinoO)
	require.NoError(t, err)

	_, blocked := Spawn(m, b)
	assert.True(t, blocked)
}

func TestMoveToWall(t *testing.T) {
	b := board.New()
	p := spawn(t, mino.MinoT, b)

	for p.MoveBy(b, -1, 0) {
	}
	assert.Equal(t, 0, p.X)

	assert.False(t, p.MoveBy(b, -1, 0))
	assert.Equal(t, 0, p.X)
	assertInBounds(t, p)

	for p.MoveBy(b, 1, 0) {
	}
	assert.Equal(t, board.Width-p.Width(), p.X)
	assertInBounds(t, p)
}

func TestMoveToFloor(t *testing.T) {
	b := board.New()
	p := spawn(t, mino.MinoI, b)

	assert.Equal(t, board.Height-1, p.DropDistance(b))

	for p.MoveBy(b, 0, 1) {
	}
	assert.Equal(t, board.Height-1, p.Y)
	assert.False(t, p.CanMove(b, 0, 1))
	assertInBounds(t, p)
}

func TestMoveBlockedBySettledCells(t *testing.T) {
	b := board.New()
	b.Commit([]board.Cell{{X: 4, Y: 10, Color: mino.Red}})

	p := spawn(t, mino.MinoO, b)
	for p.MoveBy(b, 0, 1) {
	}

	assert.Equal(t, 8, p.Y)
}

func TestCanMoveAboveGrid(t *testing.T) {
	b := board.New()
	p := spawn(t, mino.MinoO, b)

	assert.True(t, p.CanMove(b, 0, -3), "rows above the grid are passable")
	assert.False(t, p.CanMove(b, -5, -3), "walls still apply above the grid")
}

func TestRotateLegacy(t *testing.T) {
	b := board.New()

	o := spawn(t, mino.MinoO, b)
	assert.True(t, o.Rotate(b, mino.RotateLegacy))

	l := spawn(t, mino.MinoL, b)
	before := l.Shape.Clone()
	assert.False(t, l.Rotate(b, mino.RotateLegacy))
	assert.True(t, before.Equal(l.Shape))
}

func TestRotateClockwise(t *testing.T) {
	b := board.New()

	p := spawn(t, mino.MinoI, b)
	p.MoveBy(b, 0, 5)

	assert.True(t, p.Rotate(b, mino.RotateClockwise))
	assert.Equal(t, 4, p.Height())
	assert.Equal(t, 1, p.Width())
	assertInBounds(t, p)
}

func TestRotateBlocked(t *testing.T) {
	b := board.New()

	p := spawn(t, mino.MinoI, b)
	for p.MoveBy(b, 0, 1) {
	}

	before := p.Shape.Clone()
	assert.False(t, p.Rotate(b, mino.RotateClockwise), "vertical bar would poke through the floor")
	assert.True(t, before.Equal(p.Shape))
}

func TestRotateBlockedAtWall(t *testing.T) {
	b := board.New()

	p := spawn(t, mino.MinoI, b)
	p.MoveBy(b, 0, 5)
	require.True(t, p.Rotate(b, mino.RotateClockwise))
	for p.MoveBy(b, 1, 0) {
	}
	require.Equal(t, board.Width-1, p.X)

	assert.False(t, p.Rotate(b, mino.RotateClockwise), "no wall kick")
	assert.Equal(t, 1, p.Width())
}

func TestCells(t *testing.T) {
	b := board.New()
	p := spawn(t, mino.MinoJ, b)

	assert.ElementsMatch(t, []board.Cell{
		{X: 4, Y: 0, Color: mino.Blue},
		{X: 4, Y: 1, Color: mino.Blue},
		{X: 5, Y: 1, Color: mino.Blue},
		{X: 6, Y: 1, Color: mino.Blue},
	}, p.Cells())

	ghost := p.GhostCells(b)
	require.Len(t, ghost, 4)
	for i, c := range ghost {
		assert.Equal(t, p.Cells()[i].Y+18, c.Y)
	}
}
