package snake

import (
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/brickgame/internal/core"
	"github.com/vovakirdan/brickgame/internal/registry"
)

// ID is the registry and score-storage identifier of the game.
const ID = "snake"

// initialLength is the number of body cells at the start of a session.
const initialLength = 4

// Direction represents the snake's movement direction.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Game implements the Snake engine.
type Game struct {
	field     core.Field
	body      []core.Point // Head at index 0
	apple     core.Point
	hasApple  bool
	direction Direction // Direction of the last move
	nextDir   Direction // Buffered direction for next move

	session core.Session
	policy  core.IntervalPolicy
	pacer   core.Pacer

	rng    *rand.Rand
	store  core.HighScoreStore
	logger *log.Logger
}

// New creates a Snake game in the NotStarted state, loading the high score
// from the deps' store.
func New(deps registry.Deps) *Game {
	g := &Game{
		policy: deps.Config.Snake.Policy(),
		rng:    deps.Rand(),
		store:  deps.Store,
		logger: deps.Log().With("game", ID),
	}
	g.Reset()
	return g
}

func init() {
	registry.Register(registry.GameInfo{ID: ID, Title: "Snake"}, func(deps registry.Deps) registry.Game {
		return New(deps)
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Snake"
}

// HoldsAction reports that holding Action keeps moving the snake.
func (g *Game) HoldsAction() bool {
	return true
}

// Reset starts a fresh session. The high score is reloaded from the store
// and kept in memory when the store fails.
func (g *Game) Reset() {
	g.session = core.NewSession(g.loadHighScore(g.session.HighScore), g.policy)
	g.field = core.NewField(core.FieldWidth, core.FieldHeight)
	g.pacer.Reset()
	g.initSnake()
	g.spawnApple()
	g.stamp()
}

// initSnake places a vertical body at the field centre, heading up.
func (g *Game) initSnake() {
	x := core.FieldWidth / 2
	top := core.FieldHeight/2 - 1

	g.body = make([]core.Point, 0, initialLength)
	for i := range initialLength {
		g.body = append(g.body, core.Point{X: x, Y: top + i})
	}
	g.direction = DirUp
	g.nextDir = DirUp
}

// spawnApple rejection-samples a cell that is neither body nor the current
// apple. When the body fills the field no apple is placed.
func (g *Game) spawnApple() {
	if len(g.body) >= core.FieldWidth*core.FieldHeight {
		g.hasApple = false
		return
	}

	for {
		p := core.Point{X: g.rng.Intn(core.FieldWidth), Y: g.rng.Intn(core.FieldHeight)}
		if g.isSnakeAt(p) || (g.hasApple && p == g.apple) {
			continue
		}
		g.apple = p
		g.hasApple = true
		return
	}
}

func (g *Game) isSnakeAt(p core.Point) bool {
	for _, seg := range g.body {
		if seg == p {
			return true
		}
	}
	return false
}

// HandleSignal applies one input signal. Directions and the held Action key
// only act while the game is running.
func (g *Game) HandleSignal(sig core.Signal, held bool) {
	switch sig {
	case core.SignalStart:
		if g.session.Start() {
			g.pacer.Reset()
		}
	case core.SignalPause:
		g.session.TogglePause()
	case core.SignalTerminate:
		g.session.State = core.StateQuit
	case core.SignalAction:
		if held && g.session.State == core.StateRunning {
			g.Advance()
		}
	case core.SignalLeft, core.SignalRight, core.SignalUp, core.SignalDown:
		if g.session.State == core.StateRunning {
			g.steer(directionFor(sig))
		}
	}
}

// steer buffers a direction change for the next move. Reversing onto the
// body is ignored.
func (g *Game) steer(d Direction) {
	if !isOpposite(d, g.direction) {
		g.nextDir = d
	}
}

func directionFor(sig core.Signal) Direction {
	switch sig {
	case core.SignalDown:
		return DirDown
	case core.SignalLeft:
		return DirLeft
	case core.SignalRight:
		return DirRight
	default:
		return DirUp
	}
}

// isOpposite checks if two directions are opposite.
func isOpposite(d1, d2 Direction) bool {
	return (d1 == DirUp && d2 == DirDown) ||
		(d1 == DirDown && d2 == DirUp) ||
		(d1 == DirLeft && d2 == DirRight) ||
		(d1 == DirRight && d2 == DirLeft)
}

// ShouldAutoAdvance reports whether a move is due.
func (g *Game) ShouldAutoAdvance(now time.Time) bool {
	return g.pacer.Due(now, g.session.Interval, g.session.State == core.StateRunning)
}

// Tick moves the snake once when its interval has elapsed.
func (g *Game) Tick(now time.Time) bool {
	if !g.ShouldAutoAdvance(now) {
		return false
	}
	g.Advance()
	return true
}

// Advance moves the snake one cell. It checks for the end of the game first,
// so a losing or winning position is detected on the move that would follow it.
func (g *Game) Advance() {
	if g.session.State != core.StateRunning {
		return
	}

	g.direction = g.nextDir
	if g.checkEndGame() {
		return
	}

	head := g.body[0].Add(g.direction.delta())
	ate := g.hasApple && head == g.apple

	g.body = append([]core.Point{head}, g.body...)

	if ate {
		if g.session.ScoreApple(g.policy) {
			g.saveHighScore()
		}
		g.hasApple = false
		g.spawnApple()
	} else {
		g.body = g.body[:len(g.body)-1]
	}

	g.stamp()
}

// checkEndGame sets Lost or Won and reports whether the game ended.
func (g *Game) checkEndGame() bool {
	head := g.body[0]
	d := g.direction

	switch {
	case head.X <= 0 && d == DirLeft,
		head.X >= core.FieldWidth-1 && d == DirRight,
		head.Y <= 0 && d == DirUp,
		head.Y >= core.FieldHeight-1 && d == DirDown:
		g.session.State = core.StateLost
	case g.session.Score >= core.SnakeWinScore:
		g.session.State = core.StateWon
	}

	if g.AteItself() {
		g.session.State = core.StateLost
	}

	return g.session.State != core.StateRunning
}

// AteItself reports whether the head shares a cell with another body segment.
func (g *Game) AteItself() bool {
	if len(g.body) == 0 {
		return false
	}
	head := g.body[0]
	for _, seg := range g.body[1:] {
		if seg == head {
			return true
		}
	}
	return false
}

// stamp redraws the field from the body and apple.
func (g *Game) stamp() {
	g.field.Fill(core.CellEmpty)
	if g.hasApple {
		g.field.Set(g.apple.X, g.apple.Y, core.CellApple)
	}
	for _, seg := range g.body[1:] {
		g.field.Set(seg.X, seg.Y, core.CellBody)
	}
	g.field.Set(g.body[0].X, g.body[0].Y, core.CellHead)
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

// Frame returns a copy of the field and session.
func (g *Game) Frame() core.Frame {
	return core.Frame{
		Field:   g.field.Clone(),
		Session: g.session,
	}
}

// State returns the current session state.
func (g *Game) State() core.Session {
	return g.session
}

// Direction returns the direction of the last move.
func (g *Game) Direction() Direction {
	return g.direction
}

// PendingDirection returns the direction the next move will take.
func (g *Game) PendingDirection() Direction {
	return g.nextDir
}

// Body returns a copy of the body, head first.
func (g *Game) Body() []core.Point {
	return append([]core.Point(nil), g.body...)
}

// Apple returns the apple position and whether one is placed.
func (g *Game) Apple() (core.Point, bool) {
	return g.apple, g.hasApple
}

func (d Direction) delta() core.Point {
	switch d {
	case DirUp:
		return core.Point{Y: -1}
	case DirDown:
		return core.Point{Y: 1}
	case DirLeft:
		return core.Point{X: -1}
	default:
		return core.Point{X: 1}
	}
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}
