package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/brickgame/internal/core"
	"github.com/vovakirdan/brickgame/internal/registry"
	"github.com/vovakirdan/brickgame/internal/storage"
)

// ScoreRecorder stores finished sessions. *storage.Store implements it.
type ScoreRecorder interface {
	SaveScore(e storage.ScoreEntry) (int64, error)
}

// Recorder wraps a possibly nil history database as a ScoreRecorder.
func Recorder(s *storage.Store) ScoreRecorder {
	if s == nil {
		return nil
	}
	return s
}

// Options configure a game model.
type Options struct {
	TickRate int
	Width    int
	Height   int
	History  ScoreRecorder // nil disables session history
	Logger   *log.Logger
}

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Model is the Bubble Tea model for playing one game in the terminal.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	history    ScoreRecorder
	logger     *log.Logger
	keys       KeyMap
	help       help.Model
	tickRate   int
	sessionID  string
	recorded   bool // Whether the finished session has been recorded
	quitting   bool
	backToMenu bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, opts Options) Model {
	if opts.Width <= 0 {
		opts.Width = 80
	}
	if opts.Height <= 0 {
		opts.Height = 24
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}

	h := help.New()
	h.Width = opts.Width

	return Model{
		game:      game,
		screen:    core.NewScreen(opts.Width, core.Max(1, opts.Height-1)),
		history:   opts.History,
		logger:    opts.Logger,
		keys:      DefaultKeyMap(),
		help:      h,
		tickRate:  opts.TickRate,
		sessionID: uuid.NewString(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.logger.Debug("session started", "game", m.game.ID(), "session", m.sessionID)
	return tickCmd(m.tickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.screen.Resize(core.Max(1, msg.Width), core.Max(1, msg.Height-1)) // Last line holds the help bar
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	state := m.game.State().State

	switch {
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil

	case key.Matches(msg, m.keys.Reset):
		if state.Over() {
			m.restart()
		}
		return m, nil

	case key.Matches(msg, m.keys.Back):
		if state != core.StateRunning {
			m.backToMenu = true
			return m, tea.Quit
		}
		return m, nil
	}

	sig, held := m.keys.Signal(msg)
	if sig == core.SignalNoOp {
		return m, nil
	}
	m.game.HandleSignal(sig, held)

	if m.game.State().State == core.StateQuit {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleTick advances the engine and records the session once it ends.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	m.game.Tick(now)

	st := m.game.State()
	if st.State == core.StateQuit {
		m.quitting = true
		return m, tea.Quit
	}
	if st.State.Over() && !m.recorded {
		m.recordSession(st)
		m.recorded = true
	}

	return m, tickCmd(m.tickRate)
}

// restart begins a fresh session of the same game.
func (m *Model) restart() {
	m.game.Reset()
	m.recorded = false
	m.sessionID = uuid.NewString()
	m.logger.Debug("session started", "game", m.game.ID(), "session", m.sessionID)
}

func (m *Model) recordSession(st core.Session) {
	m.logger.Info("session finished",
		"game", m.game.ID(),
		"session", m.sessionID,
		"result", st.State,
		"score", st.Score,
		"level", st.Level,
	)
	if m.history == nil || st.Score == 0 {
		return
	}
	_, err := m.history.SaveScore(storage.ScoreEntry{
		GameID:    m.game.ID(),
		Score:     st.Score,
		Level:     st.Level,
		SessionID: m.sessionID,
	})
	if err != nil {
		m.logger.Warn("cannot record session", "game", m.game.ID(), "error", err)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	DrawBoard(m.screen, m.game.Title(), m.game.Frame())

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("cannot save screenshot", "error", err)
		return
	}
	dir := filepath.Join(home, ".brickgame", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("cannot save screenshot", "path", path, "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}

	DrawBoard(m.screen, m.game.Title(), m.game.Frame())
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// SessionID returns the id of the current session.
func (m Model) SessionID() string {
	return m.sessionID
}

// Run starts the Bubble Tea program for a single game.
func Run(game registry.Game, opts Options) error {
	p := tea.NewProgram(
		NewModel(game, opts),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
