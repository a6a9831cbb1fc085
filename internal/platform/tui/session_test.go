package tui

import (
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/brickgame/internal/config"
	_ "github.com/vovakirdan/brickgame/internal/games/snake"
	_ "github.com/vovakirdan/brickgame/internal/games/tetris"
	"github.com/vovakirdan/brickgame/internal/logging"
	"github.com/vovakirdan/brickgame/internal/registry"
	"github.com/vovakirdan/brickgame/internal/storage"
)

func newTestSession(history *storage.Store) SessionModel {
	return NewSessionModel(SessionConfig{
		Deps: registry.Deps{
			Store:  storage.NewMemoryStore(),
			Logger: logging.Discard(),
			Seed:   1,
			Config: config.Default(),
		},
		History:  history,
		TickRate: 60,
		Width:    100,
		Height:   40,
	})
}

func sessionUpdate(t *testing.T, m SessionModel, msg tea.Msg) (SessionModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	sm, ok := next.(SessionModel)
	require.True(t, ok)
	return sm, cmd
}

func TestMenuListsGamesThenExtras(t *testing.T) {
	m := NewMenuModel(80, 24)

	titles := make([]string, len(m.items))
	for i, it := range m.items {
		titles[i] = it.Title
	}
	assert.Equal(t, []string{"Snake", "Tetris", "High Scores", "Quit"}, titles)
	assert.Equal(t, MenuItemGame, m.items[1].Kind)
	assert.Equal(t, "tetris", m.items[1].GameID)
}

func TestMenuCursorStaysInRange(t *testing.T) {
	m := NewMenuModel(80, 24)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m = next.(MenuModel)
	assert.Equal(t, 0, m.cursor)

	for range 10 {
		next, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
		m = next.(MenuModel)
	}
	assert.Equal(t, len(m.items)-1, m.cursor)
}

func TestSessionPlaysAndReturnsToMenu(t *testing.T) {
	m := newTestSession(nil)

	m, cmd := sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.True(t, m.InGame())
	assert.NotNil(t, cmd, "game tick loop starts")
	assert.Equal(t, "snake", m.game.game.ID())
	assert.Contains(t, m.View(), "SNAKE")

	m, cmd = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.InGame())
	assert.False(t, isQuit(cmd), "back to menu keeps the session alive")
	assert.Contains(t, m.View(), "Select a game")
}

func TestSessionQuitFromGame(t *testing.T) {
	m := newTestSession(nil)

	m, _ = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.True(t, m.InGame())
	assert.Equal(t, "tetris", m.game.game.ID())

	m, cmd := sessionUpdate(t, m, runeKey("q"))
	assert.True(t, isQuit(cmd))
	assert.Empty(t, m.View())
}

func TestSessionScoreboardAndBack(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	require.NoError(t, err)
	defer store.Close()

	_, err = store.SaveScore(storage.ScoreEntry{GameID: "snake", Score: 25, Level: 1})
	require.NoError(t, err)

	m := newTestSession(store)
	m, _ = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	require.Equal(t, screenScores, m.screen)
	assert.Len(t, m.scores.table.Rows(), 1)
	assert.Contains(t, m.View(), "HIGH SCORES")

	m, cmd := sessionUpdate(t, m, runeKey("b"))
	assert.Equal(t, screenMenu, m.screen)
	assert.False(t, isQuit(cmd))
}

func TestSessionQuitItem(t *testing.T) {
	m := newTestSession(nil)
	for range 3 {
		m, _ = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyDown})
	}

	m, cmd := sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.True(t, isQuit(cmd))
	assert.Empty(t, m.View())
}

func TestScoreboardSwitchesGames(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	require.NoError(t, err)
	defer store.Close()

	for _, e := range []storage.ScoreEntry{
		{GameID: "snake", Score: 5},
		{GameID: "tetris", Score: 700},
		{GameID: "tetris", Score: 100},
	} {
		_, err := store.SaveScore(e)
		require.NoError(t, err)
	}
	require.NoError(t, store.SaveHighScore("tetris", 1500))

	m := NewScoreboardModel(store, store, 100, 40)
	assert.Len(t, m.table.Rows(), 1)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)
	assert.Len(t, m.table.Rows(), 2)
	assert.Equal(t, "700", m.table.Rows()[0][1])
	assert.Equal(t, 1500, m.best)

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m = next.(ScoreboardModel)
	assert.Equal(t, 0, m.gameCursor)
}

func TestScoreboardWithoutHistory(t *testing.T) {
	m := NewScoreboardModel(nil, nil, 100, 40)

	assert.Contains(t, m.View(), "No scores recorded yet.")
	assert.Contains(t, m.View(), "Best: 0")
}
