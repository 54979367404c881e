package game

import (
	"math/rand"
	"time"

	"github.com/qnkhuat/tetristerm/pkg/board"
	"github.com/qnkhuat/tetristerm/pkg/event"
	"github.com/qnkhuat/tetristerm/pkg/mino"
	"github.com/qnkhuat/tetristerm/pkg/piece"
	"github.com/qnkhuat/tetristerm/pkg/score"
)

// Session owns the board, the falling piece and the score of one player.
//
// A Session is not safe for concurrent use. Hosts must deliver timer ticks,
// key presses and restarts one at a time.
type Session struct {
	board *board.Board
	piece *piece.Piece
	next  mino.Mino
	score score.Scorer
	state State
	round int

	rand       mino.Rand
	rotation   mino.RotationMode
	onGameOver func(Step)
}

type Option func(*Session)

// WithRand sets the source used to pick pieces.
func WithRand(r mino.Rand) Option {
	return func(s *Session) {
		s.rand = r
	}
}

func WithSeed(seed int64) Option {
	return WithRand(rand.New(rand.NewSource(seed)))
}

func WithRotation(mode mino.RotationMode) Option {
	return func(s *Session) {
		s.rotation = mode
	}
}

// WithGameOverHandler registers fn to be called when a round ends, before
// the board and score are reset.
func WithGameOverHandler(fn func(Step)) Option {
	return func(s *Session) {
		s.onGameOver = fn
	}
}

func New(options ...Option) *Session {
	s := &Session{board: board.New()}
	for _, o := range options {
		o(s)
	}

	if s.rand == nil {
		s.rand = rand.New(rand.NewSource(time.Now().UTC().UnixNano()))
	}

	s.next = mino.Random(s.rand)
	s.reset()
	return s
}

func (s *Session) reset() {
	s.board.Reset()
	s.score.Reset()
	s.round++

	// An empty board never blocks a spawn.
	s.spawn()
	s.state = StateRunning
}

// spawn takes the next piece and reports whether it is blocked.
func (s *Session) spawn() bool {
	m := s.next
	s.next = mino.Random(s.rand)

	p, blocked := piece.Spawn(m, s.board)
	s.piece = p
	return blocked
}

func (s *Session) MoveLeft() Step {
	return Step{Moved: s.piece.MoveBy(s.board, -1, 0)}
}

func (s *Session) MoveRight() Step {
	return Step{Moved: s.piece.MoveBy(s.board, 1, 0)}
}

func (s *Session) Rotate() Step {
	return Step{Rotated: s.piece.Rotate(s.board, s.rotation)}
}

// SoftDrop moves the piece down one row, locking it when it cannot move.
func (s *Session) SoftDrop() Step {
	if s.piece.MoveBy(s.board, 0, 1) {
		return Step{Moved: true}
	}

	return s.lock()
}

// Tick is one gravity step.
func (s *Session) Tick() Step {
	return s.SoftDrop()
}

// Restart ends the current round and starts a new one.
func (s *Session) Restart() Step {
	step := Step{Restarted: true, FinalScore: s.score.Points(), FinalLines: s.score.Lines()}

	s.state = StateGameOver
	s.reset()
	return step
}

func (s *Session) Apply(a event.GameAction) Step {
	switch a {
	case event.ActionMoveLeft:
		return s.MoveLeft()
	case event.ActionMoveRight:
		return s.MoveRight()
	case event.ActionRotate:
		return s.Rotate()
	case event.ActionSoftDrop:
		return s.SoftDrop()
	case event.ActionRestart:
		return s.Restart()
	default:
		return Step{}
	}
}

func (s *Session) lock() Step {
	s.state = StateLocking

	s.board.Commit(s.piece.Cells())
	step := Step{Locked: true}
	step.Lines = s.score.SweepAndScore(s.board)

	if !s.spawn() {
		s.state = StateRunning
		return step
	}

	s.state = StateGameOver
	step.GameOver = true
	step.FinalScore = s.score.Points()
	step.FinalLines = s.score.Lines()

	if s.onGameOver != nil {
		s.onGameOver(step)
	}

	s.reset()
	return step
}

func (s *Session) State() State {
	return s.state
}

func (s *Session) Score() int {
	return s.score.Points()
}

func (s *Session) Lines() int {
	return s.score.Lines()
}

// Round is the number of rounds played, including the current one.
func (s *Session) Round() int {
	return s.round
}

func (s *Session) Rotation() mino.RotationMode {
	return s.rotation
}
