package core

// HighScoreStore persists one best-score integer per game.
// A missing record loads as 0. Saves overwrite; the last write wins.
type HighScoreStore interface {
	LoadHighScore(gameID string) (int, error)
	SaveHighScore(gameID string, score int) error
}
