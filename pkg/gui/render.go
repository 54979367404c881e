package gui

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/qnkhuat/tetristerm/pkg/board"
	"github.com/qnkhuat/tetristerm/pkg/game"
	"github.com/qnkhuat/tetristerm/pkg/mino"
)

// Each board cell is drawn two columns wide to look square.
const cellText = "  "

func colorTag(c tcell.Color) string {
	if c == tcell.ColorDefault {
		return "[-]"
	}
	return fmt.Sprintf("[#%06x]", c.Hex())
}

// cellColor returns the background of a board cell in the snapshot.
func cellColor(snap game.Snapshot, col, row int, t Theme) tcell.Color {
	if c := snap.Color(col, row); !c.Empty() {
		return t.Block(c)
	}

	if snap.IsGhost(col, row) {
		return t.Ghost(snap.Ghost[0].Color)
	}

	return t.Background
}

// RenderBoard fills table with one cell per board square.
func RenderBoard(table *tview.Table, snap game.Snapshot, t Theme) {
	for row := 0; row < board.Height; row++ {
		for col := 0; col < board.Width; col++ {
			cell := tview.NewTableCell(cellText).
				SetBackgroundColor(cellColor(snap, col, row, t)).
				SetSelectable(false)
			table.SetCell(row, col, cell)
		}
	}
}

// previewText draws a mino with dynamic color tags.
func previewText(m mino.Mino, t Theme) string {
	var b strings.Builder
	for y := 0; y < m.Shape.Height(); y++ {
		for x := 0; x < m.Shape.Width(); x++ {
			if m.Shape[y][x] {
				b.WriteString(colorTag(t.Block(m.Color)) + "██[-]")
			} else {
				b.WriteString(cellText)
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}

// SideText is the score panel shown next to the board.
func SideText(snap game.Snapshot, t Theme, paused bool) string {
	var b strings.Builder

	label := colorTag(t.Label)
	fmt.Fprintf(&b, "%sSCORE[-]\n%s%03d[-]\n\n", label, colorTag(t.Score), snap.Score)
	fmt.Fprintf(&b, "%sLINES[-]\n%s%d[-]\n\n", label, colorTag(t.Text), snap.Lines)
	fmt.Fprintf(&b, "%sNEXT[-]\n%s\n", label, previewText(snap.Next, t))

	if paused {
		fmt.Fprintf(&b, "%sPAUSED[-]\n", colorTag(t.Message))
	}

	return b.String()
}
