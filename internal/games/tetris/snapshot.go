package tetris

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
	Piece     Kind
	PieceX    int
	PieceY    int
	Next      Kind
	Blocks    int // locked cells on the field
	Placed    bool
	CanSpawn  bool
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		State:     g.session.State,
		Score:     g.session.Score,
		HighScore: g.session.HighScore,
		Level:     g.session.Level,
		Interval:  g.session.Interval,
		Piece:     g.piece.Kind,
		PieceX:    g.piece.Origin.X,
		PieceY:    g.piece.Origin.Y,
		Next:      g.next,
		Blocks:    g.field.Count(core.CellBlock),
		Placed:    g.placed,
		CanSpawn:  g.canSpawn,
	}
}
