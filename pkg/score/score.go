package score

import "github.com/qnkhuat/tetristerm/pkg/board"

const PointsPerLine = 100

// Scorer keeps the points and cleared lines of a session. Points only grow
// until Reset.
type Scorer struct {
	points int
	lines  int
}

// SweepAndScore clears every full row, bottom to top, and returns how many
// rows were cleared. Each row is worth PointsPerLine.
func (s *Scorer) SweepAndScore(b *board.Board) int {
	cleared := 0

	for y := board.Height - 1; y >= 0; y-- {
		// The row above drops into y after a clear, so check y again.
		for b.IsRowFull(y) {
			b.ClearRow(y)

			s.points += PointsPerLine
			cleared++
		}
	}

	s.lines += cleared
	return cleared
}

func (s *Scorer) Points() int {
	return s.points
}

func (s *Scorer) Lines() int {
	return s.lines
}

func (s *Scorer) Reset() {
	s.points = 0
	s.lines = 0
}
