package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/brickgame/internal/registry"
	"github.com/vovakirdan/brickgame/internal/storage"
)

// SessionConfig holds what a session needs to build games and screens.
type SessionConfig struct {
	Deps     registry.Deps // Store, logger, seed and config handed to every engine
	History  *storage.Store
	TickRate int
	Width    int
	Height   int
}

type sessionScreen int

const (
	screenMenu sessionScreen = iota
	screenGame
	screenScores
)

// SessionModel manages the full flow of one player: menu -> game or
// scoreboard -> menu. It backs both `brickgame menu` and SSH sessions.
type SessionModel struct {
	cfg      SessionConfig
	screen   sessionScreen
	menu     MenuModel
	game     *Model
	scores   *ScoreboardModel
	quitting bool
}

// NewSessionModel creates a session that starts at the menu.
func NewSessionModel(cfg SessionConfig) SessionModel {
	if cfg.Width <= 0 {
		cfg.Width = 80
	}
	if cfg.Height <= 0 {
		cfg.Height = 24
	}
	return SessionModel{
		cfg:  cfg,
		menu: NewMenuModel(cfg.Width, cfg.Height),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update routes messages to the active screen.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.cfg.Width = wsm.Width
		m.cfg.Height = wsm.Height
	}

	switch m.screen {
	case screenGame:
		return m.updateGame(msg)
	case screenScores:
		return m.updateScores(msg)
	}
	return m.updateMenu(msg)
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	selected := m.menu.Selected()
	if selected == nil {
		return m, cmd
	}

	switch selected.Kind {
	case MenuItemScores:
		sb := NewScoreboardModel(m.cfg.History, m.cfg.Deps.Store, m.cfg.Width, m.cfg.Height)
		m.scores = &sb
		m.screen = screenScores
		return m, m.scores.Init()

	case MenuItemGame:
		game, err := registry.Create(selected.GameID, m.cfg.Deps)
		if err != nil {
			// Shouldn't happen since menu only shows registered games
			m.cfg.Deps.Log().Error("cannot create game", "game", selected.GameID, "error", err)
			m.menu = NewMenuModel(m.cfg.Width, m.cfg.Height)
			return m, nil
		}
		gm := NewModel(game, Options{
			TickRate: m.cfg.TickRate,
			Width:    m.cfg.Width,
			Height:   m.cfg.Height,
			History:  Recorder(m.cfg.History),
			Logger:   m.cfg.Deps.Log(),
		})
		m.game = &gm
		m.screen = screenGame
		return m, m.game.Init()
	}

	return m, cmd
}

// updateGame handles updates when in game mode.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.game.Update(msg)
	if gm, ok := newModel.(Model); ok {
		m.game = &gm
	}

	if m.game.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.game.BackToMenu() {
		return m.backToMenu()
	}
	return m, cmd
}

// updateScores handles updates when the scoreboard is shown.
func (m SessionModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.scores.Update(msg)
	if sb, ok := newModel.(ScoreboardModel); ok {
		m.scores = &sb
	}

	if m.scores.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.scores.IsGoingBack() {
		return m.backToMenu()
	}
	return m, cmd
}

func (m SessionModel) backToMenu() (tea.Model, tea.Cmd) {
	m.game = nil
	m.scores = nil
	m.screen = screenMenu
	m.menu = NewMenuModel(m.cfg.Width, m.cfg.Height)
	return m, m.menu.Init()
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.screen {
	case screenGame:
		return m.game.View()
	case screenScores:
		return m.scores.View()
	}
	return m.menu.View()
}

// InGame reports whether a game is on screen.
func (m SessionModel) InGame() bool {
	return m.screen == screenGame
}

// RunSession runs a menu-driven session in the local terminal.
func RunSession(cfg SessionConfig) error {
	p := tea.NewProgram(
		NewSessionModel(cfg),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
