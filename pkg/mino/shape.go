package mino

import (
	"errors"
	"strings"
)

// Shape is one rotation state of a piece. Rows are indexed top to bottom.
type Shape [][]bool

type RotationMode int

const (
	// RotateLegacy keeps the dimensions of the shape and maps row y, column x
	// to the source cell at row H-1-x, column y. It only equals a quarter turn
	// for square shapes and is undefined for every other one.
	RotateLegacy RotationMode = iota
	// RotateClockwise is a true clockwise quarter turn.
	RotateClockwise
)

func (m RotationMode) String() string {
	switch m {
	case RotateLegacy:
		return "legacy"
	case RotateClockwise:
		return "clockwise"
	default:
		return "unknown"
	}
}

var ErrRotationUndefined = errors.New("rotation reads outside of shape")

func (s Shape) Height() int {
	return len(s)
}

func (s Shape) Width() int {
	if len(s) == 0 {
		return 0
	}

	return len(s[0])
}

func (s Shape) Clone() Shape {
	newShape := make(Shape, len(s))
	for y := range s {
		newShape[y] = make([]bool, len(s[y]))
		copy(newShape[y], s[y])
	}

	return newShape
}

func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}

	for y := range s {
		if len(s[y]) != len(other[y]) {
			return false
		}

		for x := range s[y] {
			if s[y][x] != other[y][x] {
				return false
			}
		}
	}

	return true
}

func (s Shape) String() string {
	var b strings.Builder
	for y := range s {
		if y > 0 {
			b.WriteRune('\n')
		}

		for _, filled := range s[y] {
			if filled {
				b.WriteRune('X')
			} else {
				b.WriteRune('.')
			}
		}
	}

	return b.String()
}

// Rotate returns a new shape with the rotation applied; s is left untouched.
func (s Shape) Rotate(mode RotationMode) (Shape, error) {
	switch mode {
	case RotateClockwise:
		return s.rotateClockwise(), nil
	default:
		return s.rotateLegacy()
	}
}

func (s Shape) rotateLegacy() (Shape, error) {
	h, w := s.Height(), s.Width()

	rotated := make(Shape, h)
	for y := 0; y < h; y++ {
		rotated[y] = make([]bool, w)
		for x := 0; x < w; x++ {
			sy := h - 1 - x
			if sy < 0 || y >= len(s[sy]) {
				return nil, ErrRotationUndefined
			}

			rotated[y][x] = s[sy][y]
		}
	}

	return rotated, nil
}

func (s Shape) rotateClockwise() Shape {
	h, w := s.Height(), s.Width()

	rotated := make(Shape, w)
	for y := 0; y < w; y++ {
		rotated[y] = make([]bool, h)
		for x := 0; x < h; x++ {
			rotated[y][x] = s[h-1-x][y]
		}
	}

	return rotated
}

// ParseShape builds a shape from rows of 'X' (filled) and '.' (empty).
func ParseShape(rows ...string) Shape {
	s := make(Shape, len(rows))
	for y, row := range rows {
		s[y] = make([]bool, len(row))
		for x, r := range row {
			s[y][x] = r == 'X'
		}
	}

	return s
}
