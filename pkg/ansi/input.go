package ansi

import (
	"github.com/qnkhuat/tetristerm/pkg/event"
)

type command int

const (
	cmdNone command = iota
	cmdQuit
	cmdPause
)

type input struct {
	action  event.GameAction
	command command
}

var runeActions = map[byte]event.GameAction{
	'h': event.ActionMoveLeft,
	'a': event.ActionMoveLeft,
	'l': event.ActionMoveRight,
	'd': event.ActionMoveRight,
	'k': event.ActionRotate,
	'w': event.ActionRotate,
	'j': event.ActionSoftDrop,
	's': event.ActionSoftDrop,
	'r': event.ActionRestart,
}

var arrowActions = map[byte]event.GameAction{
	'A': event.ActionRotate,
	'B': event.ActionSoftDrop,
	'C': event.ActionMoveRight,
	'D': event.ActionMoveLeft,
}

// parseInput decodes a chunk read from a raw mode terminal. Unknown bytes
// are dropped.
func parseInput(b []byte) []input {
	var inputs []input
	for i := 0; i < len(b); i++ {
		c := b[i]

		if c == 0x1b {
			if i+2 < len(b) && (b[i+1] == '[' || b[i+1] == 'O') {
				if a, ok := arrowActions[b[i+2]]; ok {
					inputs = append(inputs, input{action: a})
				}
				i += 2
				continue
			}

			inputs = append(inputs, input{command: cmdQuit})
			continue
		}

		switch c {
		case 0x03, 'q', 'Q':
			inputs = append(inputs, input{command: cmdQuit})
			continue
		case 'p', 'P':
			inputs = append(inputs, input{command: cmdPause})
			continue
		}

		if 'A' <= c && c <= 'Z' {
			c += 'a' - 'A'
		}
		if a, ok := runeActions[c]; ok {
			inputs = append(inputs, input{action: a})
		}
	}
	return inputs
}
