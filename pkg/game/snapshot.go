package game

import (
	"github.com/qnkhuat/tetristerm/pkg/board"
	"github.com/qnkhuat/tetristerm/pkg/mino"
)

// Snapshot is a read-only copy of everything a renderer needs.
type Snapshot struct {
	Board [board.Height][board.Width]mino.Color
	Piece []board.Cell
	Ghost []board.Cell
	Next  mino.Mino
	Score int
	Lines int
	State State
	Round int
}

func (s *Session) Snapshot() Snapshot {
	next := s.next
	next.Shape = next.Shape.Clone()

	return Snapshot{
		Board: s.board.Cells(),
		Piece: s.piece.Cells(),
		Ghost: s.piece.GhostCells(s.board),
		Next:  next,
		Score: s.score.Points(),
		Lines: s.score.Lines(),
		State: s.state,
		Round: s.round,
	}
}

// Color returns the color shown at col, row: the falling piece first, then
// the settled cell.
func (snap Snapshot) Color(col, row int) mino.Color {
	for _, c := range snap.Piece {
		if c.X == col && c.Y == row {
			return c.Color
		}
	}

	return snap.Board[row][col]
}

// IsGhost reports whether col, row is part of the landing preview and not
// covered by the piece or a settled cell.
func (snap Snapshot) IsGhost(col, row int) bool {
	if !snap.Color(col, row).Empty() {
		return false
	}

	for _, c := range snap.Ghost {
		if c.X == col && c.Y == row {
			return true
		}
	}

	return false
}
