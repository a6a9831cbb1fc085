package core

import "time"

// State is the lifecycle state of a game session.
type State int

const (
	StateNotStarted State = iota
	StateRunning
	StatePaused
	StateLost
	StateWon
	StateQuit
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateNotStarted:
		return "NotStarted"
	case StateRunning:
		return "Running"
	case StatePaused:
		return "Paused"
	case StateLost:
		return "Lost"
	case StateWon:
		return "Won"
	case StateQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Over reports whether the session has ended with a result.
func (s State) Over() bool {
	return s == StateLost || s == StateWon
}

// Session holds the score, level and lifecycle of one game session.
// Both engines embed the same type; State() hands out copies.
type Session struct {
	Score     int           // Monotonically non-decreasing within a session
	HighScore int           // Best score ever seen, loaded from the store
	Level     int           // LevelMin..LevelMax
	Interval  time.Duration // Auto-advance period derived from Level
	State     State
}

// NewSession returns a fresh NotStarted session at the minimum level.
func NewSession(highScore int, p IntervalPolicy) Session {
	return Session{
		HighScore: highScore,
		Level:     LevelMin,
		Interval:  p.For(LevelMin),
		State:     StateNotStarted,
	}
}

// RecordHighScore raises HighScore to Score when it was exceeded and reports
// whether it did.
func (s *Session) RecordHighScore() bool {
	if s.Score <= s.HighScore {
		return false
	}
	s.HighScore = s.Score
	return true
}

// Start moves a NotStarted session to Running. Any other state is kept.
func (s *Session) Start() bool {
	if s.State != StateNotStarted {
		return false
	}
	s.State = StateRunning
	return true
}

// TogglePause flips between Running and Paused. Any other state is kept.
func (s *Session) TogglePause() {
	switch s.State {
	case StateRunning:
		s.State = StatePaused
	case StatePaused:
		s.State = StateRunning
	}
}
