package storage

import (
	"sync"

	"github.com/vovakirdan/brickgame/internal/core"
)

// MemoryStore keeps high scores for the lifetime of the process.
// Used when no persistent backend can be opened.
type MemoryStore struct {
	mu     sync.Mutex
	scores map[string]int
}

var _ core.HighScoreStore = (*MemoryStore)(nil)

// NewMemoryStore returns an empty in-process store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{scores: make(map[string]int)}
}

// LoadHighScore returns the score saved in this process, or 0.
func (s *MemoryStore) LoadHighScore(gameID string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.scores[gameID], nil
}

// SaveHighScore overwrites the score.
func (s *MemoryStore) SaveHighScore(gameID string, score int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.scores[gameID] = score
	return nil
}
