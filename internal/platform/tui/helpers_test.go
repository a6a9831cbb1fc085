package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/brickgame/internal/core"
	"github.com/vovakirdan/brickgame/internal/logging"
	"github.com/vovakirdan/brickgame/internal/storage"
)

// fakeGame records what the adapter feeds it.
type fakeGame struct {
	session core.Session
	signals []core.Signal
	held    []bool
	ticks   int
	resets  int
	next    *core.Preview
}

func (g *fakeGame) ID() string    { return "fake" }
func (g *fakeGame) Title() string { return "Fake" }

func (g *fakeGame) Reset() {
	g.resets++
	g.session = core.Session{HighScore: g.session.HighScore}
}

func (g *fakeGame) HandleSignal(sig core.Signal, held bool) {
	g.signals = append(g.signals, sig)
	g.held = append(g.held, held)
	switch sig {
	case core.SignalStart:
		g.session.Start()
	case core.SignalPause:
		g.session.TogglePause()
	case core.SignalTerminate:
		g.session.State = core.StateQuit
	}
}

func (g *fakeGame) ShouldAutoAdvance(time.Time) bool { return false }

func (g *fakeGame) Tick(time.Time) bool {
	g.ticks++
	return false
}

func (g *fakeGame) Frame() core.Frame {
	return core.Frame{
		Field:   core.NewField(core.FieldWidth, core.FieldHeight),
		Next:    g.next,
		Session: g.session,
	}
}

func (g *fakeGame) State() core.Session { return g.session }

type fakeRecorder struct {
	entries []storage.ScoreEntry
	err     error
}

func (r *fakeRecorder) SaveScore(e storage.ScoreEntry) (int64, error) {
	r.entries = append(r.entries, e)
	return int64(len(r.entries)), r.err
}

func newTestModel(g *fakeGame, rec ScoreRecorder) Model {
	return NewModel(g, Options{
		TickRate: 60,
		Width:    80,
		Height:   30,
		History:  rec,
		Logger:   logging.Discard(),
	})
}

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func spaceKey() tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
}

// isQuit reports whether cmd produces tea.QuitMsg.
func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}
