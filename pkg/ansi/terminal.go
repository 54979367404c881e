package ansi

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"

	"golang.org/x/term"

	"github.com/qnkhuat/tetristerm/pkg/board"
	"github.com/qnkhuat/tetristerm/pkg/clock"
	"github.com/qnkhuat/tetristerm/pkg/event"
	"github.com/qnkhuat/tetristerm/pkg/game"
)

const (
	MinWidth  = board.Width*2 + 2 + 12
	MinHeight = board.Height + 3

	clearScreen = "\x1b[2J"
	cursorHome  = "\x1b[H"
	hideCursor  = "\x1b[?25l"
	showCursor  = "\x1b[?25h"
	clearLine   = "\x1b[K"
	resetStyle  = "\x1b[0m"
)

var ErrNotTerminal = errors.New("non-interactive terminals are not supported")

// Terminal plays a session on a raw mode terminal without a widget toolkit.
type Terminal struct {
	In      io.Reader
	Out     io.Writer
	Fd      int
	Session *game.Session
	Clock   *clock.Clock

	message string
}

// Run switches the terminal to raw mode and plays until the player quits,
// the input closes or ctx is cancelled.
func (t *Terminal) Run(ctx context.Context) error {
	if !term.IsTerminal(t.Fd) {
		return ErrNotTerminal
	}

	w, h, err := term.GetSize(t.Fd)
	if err != nil {
		return fmt.Errorf("failed to get terminal size: %w", err)
	}
	if w < MinWidth || h < MinHeight {
		return fmt.Errorf("terminal too small: %dx%d, need at least %dx%d", w, h, MinWidth, MinHeight)
	}

	state, err := term.MakeRaw(t.Fd)
	if err != nil {
		return fmt.Errorf("failed to enter raw mode: %w", err)
	}
	defer term.Restore(t.Fd, state)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	ticks := make(chan struct{}, 1)
	go t.Clock.Run(ctx, func() {
		select {
		case ticks <- struct{}{}:
		default:
		}
	})

	inputs := make(chan []input)
	go readInput(ctx, t.In, inputs)

	io.WriteString(t.Out, clearScreen+hideCursor)
	defer io.WriteString(t.Out, resetStyle+showCursor+newline)

	return t.loop(ctx, inputs, ticks)
}

func readInput(ctx context.Context, r io.Reader, inputs chan<- []input) {
	defer close(inputs)

	buf := make([]byte, 64)
	for {
		n, err := r.Read(buf)
		if n > 0 {
			select {
			case inputs <- parseInput(buf[:n]):
			case <-ctx.Done():
				return
			}
		}
		if err != nil {
			if !errors.Is(err, io.EOF) {
				log.Printf("Failed to read input: %s", err)
			}
			return
		}
	}
}

// loop is the only goroutine that touches the session.
func (t *Terminal) loop(ctx context.Context, inputs <-chan []input, ticks <-chan struct{}) error {
	t.draw()
	for {
		select {
		case <-ctx.Done():
			return nil

		case <-ticks:
			t.handle(t.Session.Tick())

		case in, ok := <-inputs:
			if !ok {
				return nil
			}

			for _, i := range in {
				switch i.command {
				case cmdQuit:
					return nil
				case cmdPause:
					if t.Clock.Toggle() {
						log.Println("Paused")
					}
					t.draw()
					continue
				}

				if t.Clock.Paused() && i.action != event.ActionRestart {
					continue
				}
				t.handle(t.Session.Apply(i.action))
			}
		}
	}
}

func (t *Terminal) handle(step game.Step) {
	switch {
	case step.GameOver:
		t.message = gameOverText(step)
	case step.Restarted:
		t.message = restartText(step)
	}

	if step.Changed() {
		t.draw()
	}
}

func (t *Terminal) draw() {
	frame := cursorHome + Render(t.Session.Snapshot(), t.Clock.Paused()) + t.message + clearLine + newline
	if _, err := io.WriteString(t.Out, frame); err != nil {
		log.Printf("Failed to draw: %s", err)
	}
}
