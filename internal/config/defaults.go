package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/brickgame.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		TickRate: 60,
		Snake: TimingConfig{
			BaseInterval: 500 * time.Millisecond,
			IntervalStep: 50 * time.Millisecond,
			MinInterval:  50 * time.Millisecond,
		},
		Tetris: TimingConfig{
			BaseInterval: 800 * time.Millisecond,
			IntervalStep: 70 * time.Millisecond,
			MinInterval:  50 * time.Millisecond,
		},
		Storage: StorageConfig{
			Backend:      BackendSQLite,
			DBPath:       "~/.brickgame/scores.db",
			HighScoreDir: "~/.brickgame",
		},
		Log: LogConfig{
			Level: "info",
			File:  "~/.brickgame/brickgame.log",
		},
		SSH: SSHConfig{
			Address:     ":2222",
			HostKey:     ".ssh/brickgame_ed25519",
			IdleTimeout: 30 * time.Minute,
		},
		Window: WindowConfig{
			CellSize: 24,
		},
	}
}
