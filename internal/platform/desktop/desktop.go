// Package desktop is the windowed presentation adapter built on Ebitengine.
// It polls the keyboard once per update, drives the engine clock from the
// update loop and paints the field as filled rectangles.
package desktop

import (
	"fmt"
	"image/color"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/brickgame/internal/core"
	"github.com/vovakirdan/brickgame/internal/registry"
	"github.com/vovakirdan/brickgame/internal/storage"
)

// Key repeat, in updates (60 per second).
var keyRepeat = core.KeyRepeat{Delay: 12, Interval: 4}

const (
	margin       = 16
	sidebarCells = 7 // Sidebar width in field cells
)

var (
	colorBackground = color.RGBA{0x10, 0x10, 0x18, 0xff}
	colorWell       = color.RGBA{0x20, 0x20, 0x2c, 0xff}
	colorPreview    = color.RGBA{0x50, 0xc8, 0xe6, 0xff}
)

var cellColors = map[core.Cell]color.RGBA{
	core.CellBody:  {0x3c, 0xb4, 0x4b, 0xff},
	core.CellHead:  {0x8c, 0xe6, 0x5a, 0xff},
	core.CellApple: {0xe6, 0x3c, 0x3c, 0xff},
	core.CellBlock: {0x46, 0x82, 0xb4, 0xff},
	core.CellPiece: {0xf0, 0xc8, 0x32, 0xff},
}

type binding struct {
	key    ebiten.Key
	sig    core.Signal
	repeat bool
}

var bindings = []binding{
	{ebiten.KeyEnter, core.SignalStart, false},
	{ebiten.KeyP, core.SignalPause, false},
	{ebiten.KeyQ, core.SignalTerminate, false},
	{ebiten.KeyEscape, core.SignalTerminate, false},
	{ebiten.KeyArrowUp, core.SignalUp, false},
	{ebiten.KeyW, core.SignalUp, false},
	{ebiten.KeyArrowLeft, core.SignalLeft, true},
	{ebiten.KeyA, core.SignalLeft, true},
	{ebiten.KeyArrowRight, core.SignalRight, true},
	{ebiten.KeyD, core.SignalRight, true},
	{ebiten.KeyArrowDown, core.SignalDown, true},
	{ebiten.KeyS, core.SignalDown, true},
}

// Options configure a window.
type Options struct {
	CellSize int
	History  *storage.Store // nil disables session history
	Logger   *log.Logger
}

// Window implements ebiten.Game around one engine.
type Window struct {
	game      registry.Game
	cell      int
	history   *storage.Store
	logger    *log.Logger
	sessionID string
	recorded  bool
}

// New wraps game in a window.
func New(game registry.Game, opts Options) *Window {
	if opts.CellSize <= 0 {
		opts.CellSize = 24
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	return &Window{
		game:      game,
		cell:      opts.CellSize,
		history:   opts.History,
		logger:    opts.Logger,
		sessionID: uuid.NewString(),
	}
}

// Update polls input, advances the engine and ends the loop on Quit.
func (w *Window) Update() error {
	for _, b := range bindings {
		if b.repeat {
			if keyRepeat.Fires(inpututil.KeyPressDuration(b.key)) {
				w.game.HandleSignal(b.sig, false)
			}
		} else if inpututil.IsKeyJustPressed(b.key) {
			w.game.HandleSignal(b.sig, false)
		}
	}

	d := inpututil.KeyPressDuration(ebiten.KeySpace)
	if fire, held := keyRepeat.Action(d, registry.WantsHeldAction(w.game)); fire {
		w.game.HandleSignal(core.SignalAction, held)
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyR) && w.game.State().State.Over() {
		w.game.Reset()
		w.recorded = false
		w.sessionID = uuid.NewString()
	}

	w.game.Tick(time.Now())

	st := w.game.State()
	if st.State == core.StateQuit {
		return ebiten.Termination
	}
	if st.State.Over() && !w.recorded {
		w.record(st)
		w.recorded = true
	}
	return nil
}

func (w *Window) record(st core.Session) {
	w.logger.Info("session finished", "game", w.game.ID(), "session", w.sessionID, "result", st.State, "score", st.Score)
	if w.history == nil || st.Score == 0 {
		return
	}
	_, err := w.history.SaveScore(storage.ScoreEntry{
		GameID:    w.game.ID(),
		Score:     st.Score,
		Level:     st.Level,
		SessionID: w.sessionID,
	})
	if err != nil {
		w.logger.Warn("cannot record session", "game", w.game.ID(), "error", err)
	}
}

// Draw paints the field, the sidebar and the state message.
func (w *Window) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)

	f := w.game.Frame()
	cs := float32(w.cell)
	fw, fh := f.Field.Width(), f.Field.Height()

	vector.DrawFilledRect(screen, margin, margin, float32(fw)*cs, float32(fh)*cs, colorWell, false)
	for y := range fh {
		for x := range fw {
			c, ok := cellColors[f.Field.At(x, y)]
			if !ok {
				continue
			}
			vector.DrawFilledRect(screen, margin+float32(x)*cs+1, margin+float32(y)*cs+1, cs-2, cs-2, c, false)
		}
	}

	sx := margin*2 + fw*w.cell
	st := f.Session
	ebitenutil.DebugPrintAt(screen, w.game.Title(), sx, margin)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Level %d", st.Level), sx, margin+32)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Score %d", st.Score), sx, margin+48)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("High  %d", st.HighScore), sx, margin+64)

	y := margin + 96
	if f.Next != nil {
		ebitenutil.DebugPrintAt(screen, "Next", sx, y)
		ps := cs / 2
		for py := range 4 {
			for px := range 4 {
				if f.Next[py][px] {
					vector.DrawFilledRect(screen, float32(sx)+float32(px)*ps, float32(y+20)+float32(py)*ps, ps-1, ps-1, colorPreview, false)
				}
			}
		}
		y += 20 + 4*w.cell/2 + 16
	}

	if msg := stateMessage(st.State); msg != "" {
		ebitenutil.DebugPrintAt(screen, msg, sx, y)
	}
}

func stateMessage(st core.State) string {
	switch st {
	case core.StateNotStarted:
		return "ENTER to start"
	case core.StatePaused:
		return "PAUSED"
	case core.StateLost:
		return "GAME OVER\nR: new game"
	case core.StateWon:
		return "YOU WIN!\nR: new game"
	}
	return ""
}

// Layout returns the fixed logical size of the window.
func (w *Window) Layout(_, _ int) (int, int) {
	return w.size()
}

func (w *Window) size() (int, int) {
	width := margin*3 + (core.FieldWidth+sidebarCells)*w.cell
	height := margin*2 + core.FieldHeight*w.cell
	return width, height
}

// Run opens a window and blocks until the game quits or the window closes.
func Run(game registry.Game, opts Options) error {
	w := New(game, opts)
	width, height := w.size()

	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowTitle("brickgame - " + game.Title())

	if err := ebiten.RunGame(w); err != nil {
		return fmt.Errorf("desktop: %w", err)
	}
	return nil
}
