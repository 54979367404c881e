package ansi

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/qnkhuat/tetristerm/pkg/board"
	"github.com/qnkhuat/tetristerm/pkg/game"
	"github.com/qnkhuat/tetristerm/pkg/mino"
)

const (
	strEmptyCell = " ."
	strBlockCell = "██"
	strGhostCell = "░░"

	// Raw mode turns off output processing, so lines need an explicit
	// carriage return.
	newline = "\r\n"
)

var blockColors = map[mino.Color]*color.Color{
	mino.Cyan:   color.New(color.FgCyan),
	mino.Blue:   color.New(color.FgBlue),
	mino.Orange: color.New(color.FgHiRed),
	mino.Yellow: color.New(color.FgYellow),
	mino.Green:  color.New(color.FgGreen),
	mino.Purple: color.New(color.FgMagenta),
	mino.Red:    color.New(color.FgRed),
}

var (
	labelColor = color.New(color.FgWhite, color.Faint)
	scoreColor = color.New(color.FgHiWhite, color.Bold)
	ghostColor = color.New(color.FgHiBlack)
	alertColor = color.New(color.FgHiRed, color.Bold)
)

func block(c mino.Color, s string) string {
	if bc, ok := blockColors[c]; ok {
		return bc.Sprint(s)
	}
	return s
}

// side returns the text shown to the right of each board row.
func side(snap game.Snapshot, paused bool) []string {
	lines := make([]string, board.Height)
	lines[0] = labelColor.Sprint("SCORE")
	lines[1] = scoreColor.Sprintf("%03d", snap.Score)
	lines[3] = labelColor.Sprint("LINES")
	lines[4] = scoreColor.Sprintf("%d", snap.Lines)
	lines[6] = labelColor.Sprint("NEXT")

	next := snap.Next.Shape
	for y := 0; y < next.Height(); y++ {
		var b strings.Builder
		for x := 0; x < next.Width(); x++ {
			if next[y][x] {
				b.WriteString(block(snap.Next.Color, strBlockCell))
			} else {
				b.WriteString("  ")
			}
		}
		lines[7+y] = b.String()
	}

	if paused {
		lines[11] = alertColor.Sprint("PAUSED")
	}

	return lines
}

// Render draws a full frame of the board with the score panel on its right.
func Render(snap game.Snapshot, paused bool) string {
	var b strings.Builder
	sideLines := side(snap, paused)

	b.WriteString("╔" + strings.Repeat("══", board.Width) + "╗" + newline)
	for row := 0; row < board.Height; row++ {
		b.WriteString("║")
		for col := 0; col < board.Width; col++ {
			switch c := snap.Color(col, row); {
			case !c.Empty():
				b.WriteString(block(c, strBlockCell))
			case snap.IsGhost(col, row):
				b.WriteString(ghostColor.Sprint(strGhostCell))
			default:
				b.WriteString(strEmptyCell)
			}
		}
		b.WriteString("║  " + sideLines[row] + "\x1b[K" + newline)
	}
	b.WriteString("╚" + strings.Repeat("══", board.Width) + "╝" + newline)

	return b.String()
}

func gameOverText(step game.Step) string {
	return alertColor.Sprintf("Game over! Score %03d, lines %d", step.FinalScore, step.FinalLines)
}

func restartText(step game.Step) string {
	return fmt.Sprintf("Restarted after scoring %03d", step.FinalScore)
}
