package storage

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/vovakirdan/brickgame/internal/config"
	"github.com/vovakirdan/brickgame/internal/core"
)

// FileStore keeps each game's high score as a decimal integer in its own
// plain-text file, high_score_<game>.txt.
type FileStore struct {
	mu  sync.Mutex
	dir string
}

var _ core.HighScoreStore = (*FileStore)(nil)

// NewFileStore creates the directory if needed and returns a store rooted there.
func NewFileStore(dir string) (*FileStore, error) {
	dir, err := config.ExpandHome(dir)
	if err != nil {
		return nil, fmt.Errorf("storage: %w", err)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}
	return &FileStore{dir: dir}, nil
}

// Path returns the file that holds the game's high score.
func (s *FileStore) Path(gameID string) string {
	return filepath.Join(s.dir, "high_score_"+gameID+".txt")
}

// LoadHighScore reads the stored score. A missing file is 0.
func (s *FileStore) LoadHighScore(gameID string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.Path(gameID))
	if errors.Is(err, fs.ErrNotExist) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("storage: cannot read high score: %w", err)
	}
	return parseHighScore(data), nil
}

// SaveHighScore overwrites the file with the score.
func (s *FileStore) SaveHighScore(gameID string, score int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.WriteFile(s.Path(gameID), []byte(strconv.Itoa(score)), 0o644); err != nil {
		return fmt.Errorf("storage: cannot write high score: %w", err)
	}
	return nil
}

// parseHighScore reads the integer at the start of every line; the last line
// wins. Leading blanks and a sign are accepted, trailing text is ignored and a
// line without digits counts as 0.
func parseHighScore(data []byte) int {
	score := 0
	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		score = leadingInt(sc.Text())
	}
	return score
}

func leadingInt(line string) int {
	line = strings.TrimLeft(line, " \t\v\f\r")

	neg := false
	if line != "" && (line[0] == '-' || line[0] == '+') {
		neg = line[0] == '-'
		line = line[1:]
	}

	end := 0
	for end < len(line) && line[end] >= '0' && line[end] <= '9' {
		end++
	}

	n, err := strconv.Atoi(line[:end])
	if err != nil {
		return 0
	}
	if neg {
		return -n
	}
	return n
}
