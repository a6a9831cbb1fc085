package core

import "time"

// Level bounds shared by both games.
const (
	LevelMin = 0
	LevelMax = 10
)

// Scoring constants.
const (
	SnakeWinScore       = 200 // apples needed to win
	SnakeApplesPerLevel = 5
	TetrisPointsLevel   = 600 // points per tetromino level
)

// linePoints maps rows cleared in one lock to points.
var linePoints = [...]int{0, 100, 300, 700, 1500}

// LinePoints returns the score for clearing n rows at once.
// Counts outside 1..4 score nothing.
func LinePoints(n int) int {
	if n < 0 || n >= len(linePoints) {
		return 0
	}
	return linePoints[n]
}

// IntervalPolicy derives the auto-advance interval from the level:
// Base - level*Step, never below Min.
type IntervalPolicy struct {
	Base time.Duration
	Step time.Duration
	Min  time.Duration
}

// For returns the interval for the given level.
func (p IntervalPolicy) For(level int) time.Duration {
	d := p.Base - time.Duration(level)*p.Step
	floor := p.Min
	if floor <= 0 {
		floor = time.Millisecond
	}
	if d < floor {
		return floor
	}
	return d
}

// ScoreApple credits one eaten apple: +1 point, and every SnakeApplesPerLevel
// points one level up with a shorter interval. Reports whether the high score
// was raised.
func (s *Session) ScoreApple(p IntervalPolicy) bool {
	s.Score++
	if s.Level < LevelMax && s.Score%SnakeApplesPerLevel == 0 {
		s.Level++
		s.Interval = p.For(s.Level)
	}
	return s.RecordHighScore()
}

// ScoreLines credits rows cleared by one lock and recomputes the level from
// the total score. Reports whether the high score was raised.
func (s *Session) ScoreLines(rows int, p IntervalPolicy) bool {
	s.Score += LinePoints(rows)
	if s.Level < LevelMax {
		s.Level = Min(s.Score/TetrisPointsLevel, LevelMax)
		s.Interval = p.For(s.Level)
	}
	return s.RecordHighScore()
}
