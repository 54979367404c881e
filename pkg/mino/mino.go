package mino

import (
	"errors"
	"fmt"
)

// Color identifies the color of a settled cell. None is an empty cell.
type Color string

const (
	None   Color = ""
	Cyan   Color = "cyan"
	Blue   Color = "blue"
	Orange Color = "orange"
	Yellow Color = "yellow"
	Green  Color = "green"
	Purple Color = "purple"
	Red    Color = "red"
)

func (c Color) Empty() bool {
	return c == None
}

// Mino is a catalog entry: the spawn shape of a piece and its color.
type Mino struct {
	ID    int
	Name  string
	Shape Shape
	Color Color
}

func (m Mino) String() string {
	return fmt.Sprintf("%s(%s)", m.Name, m.Color)
}

const (
	MinoI = iota
	MinoJ
	MinoL
	MinoO
	MinoS
	MinoT
	MinoZ
)

var catalog = [...]Mino{
	{MinoI, "I", ParseShape("XXXX"), Cyan},
	{MinoJ, "J", ParseShape("X..", "XXX"), Blue},
	{MinoL, "L", ParseShape("..X", "XXX"), Orange},
	{MinoO, "O", ParseShape("XX", "XX"), Yellow},
	{MinoS, "S", ParseShape(".XX", "XX."), Green},
	{MinoT, "T", ParseShape("XXX", ".X."), Purple},
	{MinoZ, "Z", ParseShape("XX.", ".XX"), Red},
}

var ErrUnknownMino = errors.New("unknown mino")

// Rand is the subset of *rand.Rand used to pick pieces.
type Rand interface {
	Intn(n int) int
}

func Count() int {
	return len(catalog)
}

// At returns the catalog entry for id. The shape is a copy, so callers may
// modify it freely.
func At(id int) (Mino, error) {
	if id < 0 || id >= len(catalog) {
		return Mino{}, fmt.Errorf("%w: %d", ErrUnknownMino, id)
	}

	m := catalog[id]
	m.Shape = m.Shape.Clone()
	return m, nil
}

func Random(r Rand) Mino {
	m, _ := At(r.Intn(len(catalog)))
	return m
}

// All returns every catalog entry in id order.
func All() []Mino {
	minos := make([]Mino, len(catalog))
	for i := range catalog {
		minos[i], _ = At(i)
	}

	return minos
}
