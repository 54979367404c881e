package gui

import (
	"context"
	"fmt"
	"log"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/qnkhuat/tetristerm/pkg/board"
	"github.com/qnkhuat/tetristerm/pkg/clock"
	"github.com/qnkhuat/tetristerm/pkg/event"
	"github.com/qnkhuat/tetristerm/pkg/game"
)

// boardColumns fits the cells, the one column gaps tview puts between them
// and the border.
const boardColumns = board.Width*(len(cellText)+1) + 1

type Client struct {
	App     *tview.Application
	Board   *tview.Table
	Side    *tview.TextView
	Message *tview.TextView
	Layout  *tview.Grid
	Session *game.Session
	Clock   *clock.Clock
	Theme   Theme
}

func NewClient(s *game.Session, c *clock.Clock, t Theme) *Client {
	app := tview.NewApplication()

	cl := &Client{
		App:     app,
		Session: s,
		Clock:   c,
		Theme:   t,
	}

	restartBtn := tview.NewButton("Restart").SetSelectedFunc(func() {
		cl.handle(cl.Session.Restart())
	})

	quitBtn := tview.NewButton("Quit").SetSelectedFunc(func() {
		app.Stop()
	})

	cl.Side = tview.NewTextView().
		SetDynamicColors(true)

	cl.Message = tview.NewTextView().
		SetDynamicColors(true).
		SetText("←/→ move  ↑ rotate  ↓ drop  p pause  q quit")

	gameOptions := tview.NewGrid().
		SetColumns(10, 10).
		SetRows(-1, 1, 3).
		AddItem(cl.Side, 0, 0, 1, 2, 0, 0, false).
		AddItem(restartBtn, 2, 0, 1, 1, 0, 0, false).
		AddItem(quitBtn, 2, 1, 1, 1, 0, 0, false)

	cl.Board = tview.NewTable()
	cl.Board.SetBorder(true).
		SetBorderColor(t.Border).
		SetBackgroundColor(t.Background)

	cl.Layout = tview.NewGrid().
		SetRows(-1, board.Height+2, 2, -1).
		SetColumns(-1, boardColumns, 22, -1).
		AddItem(tview.NewBox(), 0, 0, 1, 4, 0, 0, false).
		AddItem(cl.Board, 1, 1, 1, 1, 0, 0, true).
		AddItem(gameOptions, 1, 2, 1, 1, 0, 0, false).
		AddItem(cl.Message, 2, 1, 1, 2, 0, 0, false).
		AddItem(tview.NewBox(), 3, 0, 1, 4, 0, 0, false)

	app.SetInputCapture(cl.handleKey)
	cl.render()

	return cl
}

// Run drives gravity from the clock and blocks until the application stops
// or ctx is cancelled.
func (cl *Client) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	go cl.Clock.Run(ctx, func() {
		cl.App.QueueUpdateDraw(func() {
			cl.handle(cl.Session.Tick())
		})
	})

	go func() {
		<-ctx.Done()
		cl.App.Stop()
	}()

	return cl.App.SetRoot(cl.Layout, true).EnableMouse(true).Run()
}

// handleKey runs on the application goroutine, as do ticks queued by Run, so
// the session only ever sees one caller.
func (cl *Client) handleKey(ev *tcell.EventKey) *tcell.EventKey {
	switch {
	case ev.Key() == tcell.KeyEscape, ev.Key() == tcell.KeyCtrlC, ev.Rune() == 'q':
		cl.App.Stop()
		return nil
	case ev.Rune() == 'p':
		if cl.Clock.Toggle() {
			log.Println("Paused")
		}
		cl.render()
		return nil
	}

	action := ActionFor(ev)
	if action == event.ActionUnknown {
		return ev
	}

	if cl.Clock.Paused() && action != event.ActionRestart {
		return nil
	}

	cl.handle(cl.Session.Apply(action))
	return nil
}

func (cl *Client) handle(step game.Step) {
	switch {
	case step.GameOver:
		cl.Message.SetText(fmt.Sprintf("%sGame over! Score %03d, lines %d[-]",
			colorTag(cl.Theme.Message), step.FinalScore, step.FinalLines))
	case step.Restarted:
		cl.Message.SetText(fmt.Sprintf("Restarted after scoring %03d", step.FinalScore))
	}

	if step.Changed() {
		cl.render()
	}
}

func (cl *Client) render() {
	snap := cl.Session.Snapshot()
	RenderBoard(cl.Board, snap, cl.Theme)
	cl.Side.SetText(SideText(snap, cl.Theme, cl.Clock.Paused()))
}
