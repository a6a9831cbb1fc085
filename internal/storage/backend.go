package storage

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/brickgame/internal/config"
	"github.com/vovakirdan/brickgame/internal/core"
)

// Backends bundles the high-score store selected by configuration with the
// session history database.
type Backends struct {
	HighScores core.HighScoreStore
	History    *Store // nil when the database could not be opened
}

// OpenBackends opens the configured stores. Failures are logged and fall back
// to an in-process store so a game can always be played.
func OpenBackends(cfg config.StorageConfig, logger *log.Logger) Backends {
	var b Backends

	if cfg.Backend != config.BackendMemory {
		store, err := Open(cfg.DBPath)
		if err != nil {
			logger.Warn("could not open scores database", "path", cfg.DBPath, "error", err)
		} else {
			b.History = store
		}
	}

	switch cfg.Backend {
	case config.BackendSQLite:
		if b.History != nil {
			b.HighScores = b.History
		}
	case config.BackendFile:
		fs, err := NewFileStore(cfg.HighScoreDir)
		if err != nil {
			logger.Warn("could not open high score directory", "dir", cfg.HighScoreDir, "error", err)
		} else {
			b.HighScores = fs
		}
	}

	if b.HighScores == nil {
		logger.Info("high scores kept in memory only", "backend", cfg.Backend)
		b.HighScores = NewMemoryStore()
	}

	return b
}

// Close releases the history database.
func (b Backends) Close() error {
	if b.History != nil {
		return b.History.Close()
	}
	return nil
}
