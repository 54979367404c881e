package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/qnkhuat/tetristerm/pkg/game"
)

func TestTicksPerFall(t *testing.T) {
	assert.Equal(t, 30, ticksPerFall(500*time.Millisecond))
	assert.Equal(t, 60, ticksPerFall(time.Second))
	assert.Equal(t, 1, ticksPerFall(time.Millisecond))
}

func TestHandle(t *testing.T) {
	g := &Game{}

	g.handle(game.Step{GameOver: true, FinalScore: 300})
	assert.Equal(t, "GAME OVER\n300", g.message)

	g.handle(game.Step{Restarted: true})
	assert.Empty(t, g.message)
}
