package storage

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/brickgame/internal/config"
)

func TestParseHighScore(t *testing.T) {
	tests := []struct {
		name string
		data string
		want int
	}{
		{"empty file", "", 0},
		{"plain integer", "120", 120},
		{"trailing newline", "120\n", 120},
		{"leading blanks", "   77", 77},
		{"trailing garbage", "42abc", 42},
		{"signed", "-5", -5},
		{"explicit plus", "+8", 8},
		{"not a number", "abc", 0},
		{"last line wins", "10\n20\n30", 30},
		{"last line not a number", "10\nxyz\n", 0},
		{"windows line endings", "10\r\n55\r\n", 55},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, parseHighScore([]byte(tc.data)))
		})
	}
}

func TestFileStoreRoundTrip(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "scores")
	store, err := NewFileStore(dir)
	require.NoError(t, err)

	high, err := store.LoadHighScore("snake")
	require.NoError(t, err)
	assert.Equal(t, 0, high, "missing file loads as zero")

	require.NoError(t, store.SaveHighScore("snake", 37))
	require.NoError(t, store.SaveHighScore("snake", 12))

	high, err = store.LoadHighScore("snake")
	require.NoError(t, err)
	assert.Equal(t, 12, high, "last write wins")

	data, err := os.ReadFile(filepath.Join(dir, "high_score_snake.txt"))
	require.NoError(t, err)
	assert.Equal(t, "12", string(data))
}

func TestFileStoreReadsHandEditedFile(t *testing.T) {
	dir := t.TempDir()
	store, err := NewFileStore(dir)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(store.Path("tetris"), []byte("1500 points\n"), 0o644))

	high, err := store.LoadHighScore("tetris")
	require.NoError(t, err)
	assert.Equal(t, 1500, high)
}

func TestFileStoreReadError(t *testing.T) {
	dir := t.TempDir()
	store, err := NewFileStore(dir)
	require.NoError(t, err)

	// A directory where the file should be cannot be read.
	require.NoError(t, os.Mkdir(store.Path("snake"), 0o755))

	_, err = store.LoadHighScore("snake")
	assert.Error(t, err)
	assert.Error(t, store.SaveHighScore("snake", 1))
}

func TestMemoryStore(t *testing.T) {
	store := NewMemoryStore()

	high, err := store.LoadHighScore("snake")
	require.NoError(t, err)
	assert.Equal(t, 0, high)

	require.NoError(t, store.SaveHighScore("snake", 5))
	high, err = store.LoadHighScore("snake")
	require.NoError(t, err)
	assert.Equal(t, 5, high)
}

func TestOpenBackends(t *testing.T) {
	logger := log.New(io.Discard)
	dir := t.TempDir()

	tests := []struct {
		name        string
		cfg         config.StorageConfig
		wantHistory bool
		check       func(t *testing.T, b Backends)
	}{
		{
			name:        "sqlite",
			cfg:         config.StorageConfig{Backend: config.BackendSQLite, DBPath: filepath.Join(dir, "a.db")},
			wantHistory: true,
			check: func(t *testing.T, b Backends) {
				assert.IsType(t, &Store{}, b.HighScores)
			},
		},
		{
			name: "file",
			cfg: config.StorageConfig{
				Backend:      config.BackendFile,
				DBPath:       filepath.Join(dir, "b.db"),
				HighScoreDir: filepath.Join(dir, "files"),
			},
			wantHistory: true,
			check: func(t *testing.T, b Backends) {
				assert.IsType(t, &FileStore{}, b.HighScores)
			},
		},
		{
			name: "memory",
			cfg:  config.StorageConfig{Backend: config.BackendMemory},
			check: func(t *testing.T, b Backends) {
				assert.IsType(t, &MemoryStore{}, b.HighScores)
			},
		},
		{
			name: "sqlite unavailable falls back to memory",
			cfg:  config.StorageConfig{Backend: config.BackendSQLite, DBPath: filepath.Join(dir, "c.db", "x", "y.db")},
			check: func(t *testing.T, b Backends) {
				assert.IsType(t, &MemoryStore{}, b.HighScores)
			},
		},
	}

	// Block the last case's parent directory with a regular file.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "c.db"), nil, 0o644))

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := OpenBackends(tc.cfg, logger)
			defer b.Close()

			require.NotNil(t, b.HighScores)
			assert.Equal(t, tc.wantHistory, b.History != nil)
			tc.check(t, b)
		})
	}
}
