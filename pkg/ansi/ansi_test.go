package ansi

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qnkhuat/tetristerm/pkg/board"
	"github.com/qnkhuat/tetristerm/pkg/clock"
	"github.com/qnkhuat/tetristerm/pkg/event"
	"github.com/qnkhuat/tetristerm/pkg/game"
)

func init() {
	color.NoColor = true
}

func TestParseInput(t *testing.T) {
	tests := map[string]struct {
		in   string
		want []input
	}{
		"arrows": {"\x1b[D\x1b[C\x1b[A\x1b[B", []input{
			{action: event.ActionMoveLeft},
			{action: event.ActionMoveRight},
			{action: event.ActionRotate},
			{action: event.ActionSoftDrop},
		}},
		"application arrows": {"\x1bOD", []input{{action: event.ActionMoveLeft}}},
		"letters":            {"hJr", []input{{action: event.ActionMoveLeft}, {action: event.ActionSoftDrop}, {action: event.ActionRestart}}},
		"commands":           {"pq\x03", []input{{command: cmdPause}, {command: cmdQuit}, {command: cmdQuit}}},
		"escape":             {"\x1b", []input{{command: cmdQuit}}},
		"unknown":            {"z1\x1b[Z", nil},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseInput([]byte(tt.in)))
		})
	}
}

func TestRender(t *testing.T) {
	s := game.New(game.WithSeed(1))
	frame := Render(s.Snapshot(), false)

	lines := strings.Split(strings.TrimSuffix(frame, newline), newline)
	require.Len(t, lines, board.Height+2)

	assert.Contains(t, frame, strBlockCell)
	assert.Contains(t, frame, strGhostCell)
	assert.Contains(t, lines[1], "SCORE")
	assert.Contains(t, lines[2], "000")
	assert.NotContains(t, frame, "PAUSED")

	assert.Contains(t, Render(s.Snapshot(), true), "PAUSED")
}

func pieceTop(s *game.Session) int {
	top := board.Height
	for _, c := range s.Snapshot().Piece {
		if c.Y < top {
			top = c.Y
		}
	}
	return top
}

func TestLoop(t *testing.T) {
	var out bytes.Buffer
	s := game.New(game.WithSeed(1))
	term := &Terminal{Out: &out, Session: s, Clock: clock.New(time.Hour)}

	inputs := make(chan []input)
	ticks := make(chan struct{})
	done := make(chan error)

	go func() {
		done <- term.loop(context.Background(), inputs, ticks)
	}()

	ticks <- struct{}{}
	inputs <- []input{{action: event.ActionSoftDrop}}
	inputs <- []input{{command: cmdPause}, {action: event.ActionSoftDrop}}
	inputs <- []input{{command: cmdQuit}}

	require.NoError(t, <-done)
	assert.Equal(t, 2, pieceTop(s), "moves while paused are ignored")
	assert.True(t, term.Clock.Paused())
	assert.Contains(t, out.String(), "PAUSED")
}

func TestLoopRestart(t *testing.T) {
	var out bytes.Buffer
	s := game.New(game.WithSeed(1))
	term := &Terminal{Out: &out, Session: s, Clock: clock.New(time.Hour)}

	inputs := make(chan []input, 1)
	inputs <- []input{{action: event.ActionSoftDrop}, {action: event.ActionRestart}}
	close(inputs)

	require.NoError(t, term.loop(context.Background(), inputs, nil))
	assert.Equal(t, 2, s.Round())
	assert.Contains(t, out.String(), "Restarted after scoring 000")
}

func TestRunNotTerminal(t *testing.T) {
	term := &Terminal{Fd: -1, Session: game.New(), Clock: clock.New(time.Second)}
	assert.ErrorIs(t, term.Run(context.Background()), ErrNotTerminal)
}
