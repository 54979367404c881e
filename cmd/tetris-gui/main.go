package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/qnkhuat/tetristerm/pkg/board"
	"github.com/qnkhuat/tetristerm/pkg/config"
	"github.com/qnkhuat/tetristerm/pkg/event"
	"github.com/qnkhuat/tetristerm/pkg/game"
	"github.com/qnkhuat/tetristerm/pkg/gui"
	"github.com/qnkhuat/tetristerm/pkg/util"
)

const (
	// cellSize is the size of each cell in pixels
	cellSize = 30
	// panelWidth is the width of the score panel on the right of the board
	panelWidth = 6 * cellSize

	screenWidth  = board.Width*cellSize + panelWidth
	screenHeight = board.Height * cellSize
)

type keyAction struct {
	key    ebiten.Key
	action event.GameAction
	// repeat fires the action again while the key is held
	repeat bool
}

var keyActions = []keyAction{
	{ebiten.KeyLeft, event.ActionMoveLeft, true},
	{ebiten.KeyRight, event.ActionMoveRight, true},
	{ebiten.KeyUp, event.ActionRotate, false},
	{ebiten.KeyDown, event.ActionSoftDrop, true},
	{ebiten.KeyR, event.ActionRestart, false},
}

type Game struct {
	Session *game.Session
	Theme   gui.Theme
	// ticksPerFall is the number of Update calls between two gravity steps
	ticksPerFall int
	ticks        int
	paused       bool
	message      string
}

func ticksPerFall(interval time.Duration) int {
	n := int(interval * time.Duration(ebiten.DefaultTPS) / time.Second)
	if n < 1 {
		return 1
	}
	return n
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.paused = !g.paused
	}

	for _, ka := range keyActions {
		if g.paused && ka.action != event.ActionRestart {
			continue
		}
		if inpututil.IsKeyJustPressed(ka.key) || (ka.repeat && inpututil.KeyPressDuration(ka.key) > 10) {
			g.handle(g.Session.Apply(ka.action))
		}
	}

	if g.paused {
		return nil
	}

	g.ticks++
	if g.ticks >= g.ticksPerFall {
		g.ticks = 0
		g.handle(g.Session.Tick())
	}
	return nil
}

func (g *Game) handle(step game.Step) {
	switch {
	case step.GameOver:
		g.message = fmt.Sprintf("GAME OVER\n%03d", step.FinalScore)
	case step.Restarted:
		g.message = ""
	}
}

func (g *Game) drawCell(screen *ebiten.Image, col, row int, c color.Color) {
	x := float32(col * cellSize)
	y := float32(row * cellSize)
	vector.DrawFilledRect(screen, x+1, y+1, cellSize-2, cellSize-2, c, false)
}

func (g *Game) Draw(screen *ebiten.Image) {
	snap := g.Session.Snapshot()
	screen.Fill(gui.RGBA(g.Theme.Background))

	for row := 0; row < board.Height; row++ {
		for col := 0; col < board.Width; col++ {
			if c := snap.Color(col, row); !c.Empty() {
				g.drawCell(screen, col, row, gui.RGBA(g.Theme.Block(c)))
			} else if snap.IsGhost(col, row) {
				g.drawCell(screen, col, row, gui.RGBA(g.Theme.Ghost(snap.Ghost[0].Color)))
			}
		}
	}

	left := float32(board.Width * cellSize)
	vector.StrokeLine(screen, left, 0, left, screenHeight, 2, gui.RGBA(g.Theme.Border), false)

	panelX := board.Width*cellSize + cellSize/2
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("SCORE\n%03d\n\nLINES\n%d\n\nNEXT", snap.Score, snap.Lines), panelX, cellSize/2)

	next := snap.Next
	for y := 0; y < next.Shape.Height(); y++ {
		for x := 0; x < next.Shape.Width(); x++ {
			if next.Shape[y][x] {
				g.drawCell(screen, board.Width+1+x, 5+y, gui.RGBA(g.Theme.Block(next.Color)))
			}
		}
	}

	status := g.message
	if g.paused {
		status = "PAUSED"
	}
	ebitenutil.DebugPrintAt(screen, status, panelX, 9*cellSize)
}

func (g *Game) Layout(_, _ int) (int, int) {
	return screenWidth, screenHeight
}

func main() {
	configPath := flag.String("config", "", "path to JSON config file")
	logPath := flag.String("log", "", "path to log file, stderr when empty")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %s", err)
	}

	if *logPath != "" {
		logFile, err := util.InitLog(*logPath, "GUI: ")
		if err != nil {
			log.Fatal(err)
		}
		defer logFile.Close()
	}

	mode, _ := cfg.RotationMode()
	theme, _ := cfg.LoadTheme()

	options := []game.Option{
		game.WithRotation(mode),
		game.WithGameOverHandler(func(step game.Step) {
			log.Printf("Game over: score %03d, lines %d", step.FinalScore, step.FinalLines)
		}),
	}
	if cfg.Seed != 0 {
		options = append(options, game.WithSeed(cfg.Seed))
	}

	g := &Game{
		Session:      game.New(options...),
		Theme:        theme,
		ticksPerFall: ticksPerFall(cfg.Interval()),
	}

	ebiten.SetWindowSize(screenWidth*2, screenHeight*2)
	ebiten.SetWindowTitle("tetristerm")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
