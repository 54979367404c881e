package game

type State int

const (
	StateRunning State = iota
	StateLocking
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StateRunning:
		return "Running"
	case StateLocking:
		return "Locking"
	case StateGameOver:
		return "Game Over"
	default:
		return "Unknown"
	}
}

// Step describes what a single call into the session changed. Hosts redraw
// from Session.Snapshot after any call and use Step for messages and logs.
type Step struct {
	Moved     bool
	Rotated   bool
	Locked    bool
	Lines     int
	Restarted bool

	// GameOver is set when the next piece could not spawn. The session has
	// already been reset when the caller sees it; FinalScore and FinalLines
	// hold the results of the finished round.
	GameOver   bool
	FinalScore int
	FinalLines int
}

func (s Step) Changed() bool {
	return s.Moved || s.Rotated || s.Locked || s.Restarted || s.GameOver
}
