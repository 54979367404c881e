package piece

import (
	"fmt"

	"github.com/qnkhuat/tetristerm/pkg/board"
	"github.com/qnkhuat/tetristerm/pkg/mino"
)

// Piece is the falling piece. X, Y is the board position of the top left
// corner of its shape.
type Piece struct {
	mino.Shape
	X, Y  int
	Color mino.Color
	Mino  int
}

func (p *Piece) String() string {
	return fmt.Sprintf("%s at (%d,%d) %s", p.Color, p.X, p.Y, p.Shape)
}

// Spawn places m centered at the top of the board and reports whether the
// spawn position is already blocked.
func Spawn(m mino.Mino, b *board.Board) (*Piece, bool) {
	p := &Piece{
		Shape: m.Shape.Clone(),
		X:     board.Width/2 - m.Shape.Width()/2,
		Y:     0,
		Color: m.Color,
		Mino:  m.ID,
	}

	return p, !p.CanMove(b, 0, 0)
}

func (p *Piece) CanMove(b *board.Board, dx, dy int) bool {
	return fits(b, p.Shape, p.X+dx, p.Y+dy)
}

func fits(b *board.Board, s mino.Shape, px, py int) bool {
	for y := range s {
		for x, filled := range s[y] {
			if !filled {
				continue
			}

			nx := px + x
			ny := py + y
			if !b.IsInside(nx, ny) || (ny >= 0 && b.IsOccupied(nx, ny)) {
				return false
			}
		}
	}

	return true
}

// MoveBy translates the piece when the destination is free.
func (p *Piece) MoveBy(b *board.Board, dx, dy int) bool {
	if !p.CanMove(b, dx, dy) {
		return false
	}

	p.X += dx
	p.Y += dy
	return true
}

// Rotate replaces the shape with its rotation when it fits in place. There
// are no wall kicks: a blocked rotation leaves the piece unchanged.
func (p *Piece) Rotate(b *board.Board, mode mino.RotationMode) bool {
	rotated, err := p.Shape.Rotate(mode)
	if err != nil || !fits(b, rotated, p.X, p.Y) {
		return false
	}

	p.Shape = rotated
	return true
}

// DropDistance returns how many rows the piece can fall before landing.
func (p *Piece) DropDistance(b *board.Board) int {
	d := 0
	for p.CanMove(b, 0, d+1) {
		d++
	}

	return d
}

// Cells returns the absolute position of every occupied cell.
func (p *Piece) Cells() []board.Cell {
	return p.cellsAt(p.X, p.Y)
}

// GhostCells returns the cells the piece would occupy after falling as far
// as it can.
func (p *Piece) GhostCells(b *board.Board) []board.Cell {
	return p.cellsAt(p.X, p.Y+p.DropDistance(b))
}

func (p *Piece) cellsAt(px, py int) []board.Cell {
	var cells []board.Cell
	for y := range p.Shape {
		for x, filled := range p.Shape[y] {
			if filled {
				cells = append(cells, board.Cell{X: px + x, Y: py + y, Color: p.Color})
			}
		}
	}

	return cells
}
