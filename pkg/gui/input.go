package gui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/qnkhuat/tetristerm/pkg/event"
)

type Keybinding struct {
	k tcell.Key
	r rune

	a event.GameAction
}

var keybindings = []*Keybinding{
	{k: tcell.KeyLeft, a: event.ActionMoveLeft},
	{r: 'h', a: event.ActionMoveLeft},
	{r: 'H', a: event.ActionMoveLeft},
	{k: tcell.KeyRight, a: event.ActionMoveRight},
	{r: 'l', a: event.ActionMoveRight},
	{r: 'L', a: event.ActionMoveRight},
	{k: tcell.KeyUp, a: event.ActionRotate},
	{r: 'k', a: event.ActionRotate},
	{r: 'K', a: event.ActionRotate},
	{k: tcell.KeyDown, a: event.ActionSoftDrop},
	{r: 'j', a: event.ActionSoftDrop},
	{r: 'J', a: event.ActionSoftDrop},
	{r: 'r', a: event.ActionRestart},
	{r: 'R', a: event.ActionRestart},
}

// ActionFor looks up the game action bound to a key event.
func ActionFor(ev *tcell.EventKey) event.GameAction {
	for _, bind := range keybindings {
		if bind.k != 0 && bind.k == ev.Key() {
			return bind.a
		}

		if bind.r != 0 && ev.Key() == tcell.KeyRune && bind.r == ev.Rune() {
			return bind.a
		}
	}

	return event.ActionUnknown
}
