// Package tetris implements the falling-block engine: a 10x20 field of locked
// cells, one falling piece with a next-piece preview, line clears and the
// shared score and level policy.
package tetris

import (
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/brickgame/internal/core"
	"github.com/vovakirdan/brickgame/internal/registry"
)

// ID is the registry and score-storage identifier of the game.
const ID = "tetris"

// spawnOrigin is where every new piece appears.
var spawnOrigin = core.Point{X: 4, Y: 0}

// Game implements the tetromino engine.
type Game struct {
	field    core.Field // Locked cells only
	piece    Piece
	next     Kind
	placed   bool // piece can no longer fall and waits for the lock cycle
	canSpawn bool // false once a new piece overlapped the stack

	session core.Session
	policy  core.IntervalPolicy
	pacer   core.Pacer

	rng    *rand.Rand
	store  core.HighScoreStore
	logger *log.Logger
}

// New creates a tetromino game in the NotStarted state with the first piece
// at the spawn origin.
func New(deps registry.Deps) *Game {
	g := &Game{
		policy: deps.Config.Tetris.Policy(),
		rng:    deps.Rand(),
		store:  deps.Store,
		logger: deps.Log().With("game", ID),
	}
	g.Reset()
	return g
}

func init() {
	registry.Register(registry.GameInfo{ID: ID, Title: "Tetris"}, func(deps registry.Deps) registry.Game {
		return New(deps)
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Tetris"
}

// Reset clears the field and starts a fresh session. The high score is
// reloaded from the store and kept in memory when the store fails.
func (g *Game) Reset() {
	g.session = core.NewSession(g.loadHighScore(g.session.HighScore), g.policy)
	g.field = core.NewField(core.FieldWidth, core.FieldHeight)
	g.pacer.Reset()
	g.placed = false
	g.canSpawn = true

	first := g.randomKind()
	g.piece = Piece{Kind: first, Shape: ShapeOf(first), Origin: spawnOrigin}
	g.next = g.randomKind()
}

func (g *Game) randomKind() Kind {
	return Kind(g.rng.Intn(int(kindCount)))
}

// HandleSignal applies one input signal. Movement only acts while the game is
// running and the piece has not been placed.
func (g *Game) HandleSignal(sig core.Signal, _ bool) {
	switch sig {
	case core.SignalStart:
		if g.session.Start() {
			g.pacer.Reset()
		}
		return
	case core.SignalPause:
		g.session.TogglePause()
		return
	case core.SignalTerminate:
		g.session.State = core.StateQuit
		return
	}

	if g.session.State != core.StateRunning || g.placed {
		return
	}

	switch sig {
	case core.SignalLeft:
		g.shift(-1)
	case core.SignalRight:
		g.shift(1)
	case core.SignalDown:
		g.MoveDown()
	case core.SignalAction:
		g.Rotate()
	}
}

// fits reports whether every cell of shape at origin is inside the field and
// not locked.
func (g *Game) fits(shape Shape, origin core.Point) bool {
	for _, c := range shape.Cells(origin) {
		if !g.field.InBounds(c.X, c.Y) || g.field.At(c.X, c.Y) != core.CellEmpty {
			return false
		}
	}
	return true
}

// shift moves the piece one column when the whole piece fits there.
func (g *Game) shift(dx int) {
	target := g.piece.Origin.Add(core.Point{X: dx})
	if g.fits(g.piece.Shape, target) {
		g.piece.Origin = target
	}
}

// MoveDown drops the piece one row. A piece that cannot fall is marked placed.
func (g *Game) MoveDown() {
	target := g.piece.Origin.Add(core.Point{Y: 1})
	if !g.fits(g.piece.Shape, target) {
		g.placed = true
		return
	}
	g.piece.Origin = target
}

// Rotate turns the piece a quarter turn when the result fits. There are no
// wall kicks.
func (g *Game) Rotate() {
	rotated := g.piece.Shape.Rotate()
	if g.fits(rotated, g.piece.Origin) {
		g.piece.Shape = rotated
	}
}

// ShouldAutoAdvance reports whether the piece is due to fall.
func (g *Game) ShouldAutoAdvance(now time.Time) bool {
	return g.pacer.Due(now, g.session.Interval, g.session.State == core.StateRunning)
}

// Tick drops the piece when its interval has elapsed, then runs the lock
// cycle once if the piece is placed.
func (g *Game) Tick(now time.Time) bool {
	moved := false
	if g.ShouldAutoAdvance(now) && !g.placed {
		g.MoveDown()
		moved = true
	}
	if g.session.State == core.StateRunning && g.placed && g.canSpawn {
		g.lock()
		moved = true
	}
	return moved
}

// lock bakes the placed piece, spawns the next one and settles the field.
func (g *Game) lock() {
	for _, c := range g.piece.Shape.Cells(g.piece.Origin) {
		g.field.Set(c.X, c.Y, core.CellBlock)
	}

	g.spawn()

	rows := g.clearRows()
	g.compact()

	if g.session.ScoreLines(rows, g.policy) {
		g.saveHighScore()
	}
}

// spawn promotes the next piece to the spawn origin and rolls a new preview.
// A spawn that overlaps the stack ends the game.
func (g *Game) spawn() {
	g.piece = Piece{Kind: g.next, Shape: ShapeOf(g.next), Origin: spawnOrigin}
	g.next = g.randomKind()
	g.placed = false

	if !g.fits(g.piece.Shape, g.piece.Origin) {
		g.canSpawn = false
		g.session.State = core.StateLost
		g.logger.Debug("stack reached the spawn area", "score", g.session.Score)
	}
}

// clearRows empties every full row and returns how many there were.
func (g *Game) clearRows() int {
	n := 0
	for y := range g.field.Height() {
		if g.field.RowFull(y) {
			g.field.ClearRow(y)
			n++
		}
	}
	return n
}

// compact drops rows so that no empty row sits below a non-empty one.
// One bottom-up pass, bounded by the field height.
func (g *Game) compact() {
	write := g.field.Height() - 1
	for y := g.field.Height() - 1; y >= 0; y-- {
		if g.field.RowEmpty(y) {
			continue
		}
		g.field.CopyRow(write, y)
		write--
	}
	for ; write >= 0; write-- {
		g.field.ClearRow(write)
	}
}

func (g *Game) loadHighScore(fallback int) int {
	if g.store == nil {
		return fallback
	}
	score, err := g.store.LoadHighScore(ID)
	if err != nil {
		g.logger.Warn("cannot load high score", "error", err)
		return fallback
	}
	// A failed save leaves the store behind the score already reached.
	return core.Max(score, fallback)
}

func (g *Game) saveHighScore() {
	if g.store == nil {
		return
	}
	if err := g.store.SaveHighScore(ID, g.session.HighScore); err != nil {
		g.logger.Warn("cannot save high score", "score", g.session.HighScore, "error", err)
	}
}

// Frame returns the locked field with the falling piece drawn as CellPiece,
// plus the next-piece preview.
func (g *Game) Frame() core.Frame {
	field := g.field.Clone()
	for _, c := range g.piece.Shape.Cells(g.piece.Origin) {
		field.Set(c.X, c.Y, core.CellPiece)
	}
	next := core.Preview(ShapeOf(g.next))
	return core.Frame{
		Field:   field,
		Next:    &next,
		Session: g.session,
	}
}

// State returns the current session state.
func (g *Game) State() core.Session {
	return g.session
}

// Piece returns the falling piece.
func (g *Game) Piece() Piece {
	return g.piece
}

// Next returns the kind shown in the preview.
func (g *Game) Next() Kind {
	return g.next
}

// Placed reports whether the piece is waiting for the lock cycle.
func (g *Game) Placed() bool {
	return g.placed
}
