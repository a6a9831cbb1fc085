package snake

import (
	"time"

	"github.com/vovakirdan/brickgame/internal/core"
)

// Snapshot captures the observable game state for determinism testing.
type Snapshot struct {
	State     core.State
	Score     int
	HighScore int
	Level     int
	Interval  time.Duration
	SnakeLen  int
	HeadX     int
	HeadY     int
	Dir       Direction
	AppleX    int
	AppleY    int
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	head := g.body[0]
	return Snapshot{
		State:     g.session.State,
		Score:     g.session.Score,
		HighScore: g.session.HighScore,
		Level:     g.session.Level,
		Interval:  g.session.Interval,
		SnakeLen:  len(g.body),
		HeadX:     head.X,
		HeadY:     head.Y,
		Dir:       g.direction,
		AppleX:    g.apple.X,
		AppleY:    g.apple.Y,
	}
}
