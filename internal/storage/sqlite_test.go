package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenCreatesNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	require.NoError(t, err)
	defer store.Close()

	_, err = os.Stat(dbPath)
	assert.NoError(t, err)
}

func TestStoreOpenExpandsHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := Open("~/.brickgame/scores.db")
	require.NoError(t, err)
	defer store.Close()

	_, err = os.Stat(filepath.Join(home, ".brickgame", "scores.db"))
	assert.NoError(t, err)
}

func TestStoreHighScoreMissingIsZero(t *testing.T) {
	store := openTestStore(t)

	high, err := store.LoadHighScore("snake")
	require.NoError(t, err)
	assert.Equal(t, 0, high)
}

func TestStoreHighScoreLastWriteWins(t *testing.T) {
	store := openTestStore(t)

	require.NoError(t, store.SaveHighScore("tetris", 1500))
	require.NoError(t, store.SaveHighScore("tetris", 700))
	require.NoError(t, store.SaveHighScore("snake", 12))

	high, err := store.LoadHighScore("tetris")
	require.NoError(t, err)
	assert.Equal(t, 700, high, "saves overwrite even with a lower value")

	high, err = store.LoadHighScore("snake")
	require.NoError(t, err)
	assert.Equal(t, 12, high)
}

func TestStoreHighScoreSurvivesReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	require.NoError(t, err)
	require.NoError(t, store.SaveHighScore("snake", 42))
	require.NoError(t, store.Close())

	store, err = Open(dbPath)
	require.NoError(t, err)
	defer store.Close()

	high, err := store.LoadHighScore("snake")
	require.NoError(t, err)
	assert.Equal(t, 42, high)
}

func TestStoreSaveAndTopScores(t *testing.T) {
	store := openTestStore(t)

	for _, e := range []ScoreEntry{
		{GameID: "tetris", Score: 100, Level: 0, SessionID: "a"},
		{GameID: "tetris", Score: 1500, Level: 2, SessionID: "b"},
		{GameID: "tetris", Score: 700, Level: 1, SessionID: "c"},
		{GameID: "snake", Score: 9, Level: 1, SessionID: "d"},
	} {
		id, err := store.SaveScore(e)
		require.NoError(t, err)
		assert.Positive(t, id)
	}

	scores, err := store.TopScores("tetris", 10)
	require.NoError(t, err)
	require.Len(t, scores, 3)

	assert.Equal(t, 1500, scores[0].Score)
	assert.Equal(t, 2, scores[0].Level)
	assert.Equal(t, "b", scores[0].SessionID)
	assert.False(t, scores[0].CreatedAt.IsZero())
	assert.Equal(t, 700, scores[1].Score)
	assert.Equal(t, 100, scores[2].Score)

	snake, err := store.TopScores("snake", 10)
	require.NoError(t, err)
	assert.Len(t, snake, 1)
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := range 5 {
		_, err := store.SaveScore(ScoreEntry{GameID: "snake", Score: (i + 1) * 10})
		require.NoError(t, err)
	}

	scores, err := store.TopScores("snake", 3)
	require.NoError(t, err)
	require.Len(t, scores, 3)
	assert.Equal(t, []int{50, 40, 30}, []int{scores[0].Score, scores[1].Score, scores[2].Score})
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	_, err := store.SaveScore(ScoreEntry{GameID: "snake", Score: 10})
	require.NoError(t, err)
	_, err = store.SaveScore(ScoreEntry{GameID: "tetris", Score: 300})
	require.NoError(t, err)
	require.NoError(t, store.SaveHighScore("snake", 10))
	require.NoError(t, store.SaveHighScore("tetris", 300))

	require.NoError(t, store.ClearScores("snake"))

	snake, err := store.TopScores("snake", 10)
	require.NoError(t, err)
	assert.Empty(t, snake)

	high, err := store.LoadHighScore("snake")
	require.NoError(t, err)
	assert.Equal(t, 0, high)

	tetris, err := store.TopScores("tetris", 10)
	require.NoError(t, err)
	assert.Len(t, tetris, 1, "other games are untouched")

	high, err = store.LoadHighScore("tetris")
	require.NoError(t, err)
	assert.Equal(t, 300, high)
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GetGameStats("snake")
	require.NoError(t, err)
	assert.Equal(t, 0, empty.GamesCount)
	assert.True(t, empty.LastPlayed.IsZero())

	for _, s := range []int{10, 20, 30} {
		_, err := store.SaveScore(ScoreEntry{GameID: "snake", Score: s})
		require.NoError(t, err)
	}

	stats, err := store.GetGameStats("snake")
	require.NoError(t, err)
	assert.Equal(t, 3, stats.GamesCount)
	assert.Equal(t, 30, stats.BestScore)
	assert.InDelta(t, 20.0, stats.AvgScore, 0.001)
	assert.Equal(t, int64(60), stats.TotalScore)
	assert.False(t, stats.LastPlayed.IsZero())
}
