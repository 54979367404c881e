package board

import (
	"fmt"
	"strings"

	"github.com/qnkhuat/tetristerm/pkg/mino"
)

const (
	Width  = 10
	Height = 20
)

// Cell is an absolute grid position together with the color it holds.
type Cell struct {
	X, Y  int
	Color mino.Color
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d %s)", c.X, c.Y, c.Color)
}

// Board is the grid of settled cells. Row 0 is the top row.
type Board struct {
	cells [Height][Width]mino.Color
}

func New() *Board {
	return &Board{}
}

// IsInside reports whether col, row lies within the walls and above the
// floor. Rows above the top of the grid are inside.
func (b *Board) IsInside(col, row int) bool {
	return col >= 0 && col < Width && row < Height
}

// IsOccupied reports whether the cell holds a color. Rows above the grid are
// never occupied.
func (b *Board) IsOccupied(col, row int) bool {
	if row < 0 || !b.IsInside(col, row) {
		return false
	}

	return !b.cells[row][col].Empty()
}

func (b *Board) At(col, row int) mino.Color {
	if row < 0 || !b.IsInside(col, row) {
		return mino.None
	}

	return b.cells[row][col]
}

// Commit settles cells into the board. Cells outside the visible grid are a
// programming error.
func (b *Board) Commit(cells []Cell) {
	for _, c := range cells {
		if c.Y < 0 || !b.IsInside(c.X, c.Y) {
			panic(fmt.Errorf("failed to commit cell %s: out of bounds", c))
		}
	}

	for _, c := range cells {
		b.cells[c.Y][c.X] = c.Color
	}
}

func (b *Board) IsRowFull(row int) bool {
	for x := 0; x < Width; x++ {
		if b.cells[row][x].Empty() {
			return false
		}
	}

	return true
}

// ClearRow removes row and shifts every row above it down by one, leaving an
// empty row at the top.
func (b *Board) ClearRow(row int) {
	for y := row; y > 0; y-- {
		b.cells[y] = b.cells[y-1]
	}

	b.cells[0] = [Width]mino.Color{}
}

func (b *Board) Reset() {
	b.cells = [Height][Width]mino.Color{}
}

// Cells returns a copy of the grid for renderers.
func (b *Board) Cells() [Height][Width]mino.Color {
	return b.cells
}

func (b *Board) Filled() int {
	var n int
	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			if !b.cells[y][x].Empty() {
				n++
			}
		}
	}

	return n
}

func (b *Board) String() string {
	var s strings.Builder

	for y := 0; y < Height; y++ {
		if y > 0 {
			s.WriteRune('\n')
		}

		for x := 0; x < Width; x++ {
			if b.cells[y][x].Empty() {
				s.WriteRune('.')
			} else {
				s.WriteRune('X')
			}
		}
	}

	return s.String()
}
