// Package config provides YAML-based configuration loading for brickgame:
// game timings, storage backend, logging and the SSH and window adapters.
package config

import (
	"fmt"
	"time"

	"github.com/vovakirdan/brickgame/internal/core"
)

// Storage backends.
const (
	BackendSQLite = "sqlite"
	BackendFile   = "file"
	BackendMemory = "memory"
)

// Config contains the complete brickgame configuration.
type Config struct {
	TickRate int           `yaml:"tick_rate"`
	Snake    TimingConfig  `yaml:"snake"`
	Tetris   TimingConfig  `yaml:"tetris"`
	Storage  StorageConfig `yaml:"storage"`
	Log      LogConfig     `yaml:"log"`
	SSH      SSHConfig     `yaml:"ssh"`
	Window   WindowConfig  `yaml:"window"`
}

// TimingConfig defines the auto-advance interval of one game.
// The interval at a level is base - level*step, never below min.
type TimingConfig struct {
	BaseInterval time.Duration `yaml:"base_interval"`
	IntervalStep time.Duration `yaml:"interval_step"`
	MinInterval  time.Duration `yaml:"min_interval"`
}

// Policy converts the timing into the engine's interval policy.
func (t TimingConfig) Policy() core.IntervalPolicy {
	return core.IntervalPolicy{
		Base: t.BaseInterval,
		Step: t.IntervalStep,
		Min:  t.MinInterval,
	}
}

// StorageConfig selects where high scores and session history live.
type StorageConfig struct {
	Backend      string `yaml:"backend"`        // sqlite, file or memory
	DBPath       string `yaml:"db_path"`        // sqlite database, also holds session history
	HighScoreDir string `yaml:"high_score_dir"` // directory for the file backend
}

// LogConfig defines logger level and destination.
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"` // used by terminal play; empty means stderr
}

// SSHConfig defines the remote play server.
type SSHConfig struct {
	Address     string        `yaml:"address"`
	HostKey     string        `yaml:"host_key"`
	IdleTimeout time.Duration `yaml:"idle_timeout"`
}

// WindowConfig defines the desktop window.
type WindowConfig struct {
	CellSize int `yaml:"cell_size"` // pixels per field cell
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if c.TickRate <= 0 {
		return fmt.Errorf("config: tick_rate must be positive, got %d", c.TickRate)
	}
	timings := []struct {
		name string
		t    TimingConfig
	}{
		{"snake", c.Snake},
		{"tetris", c.Tetris},
	}
	for _, tc := range timings {
		name, t := tc.name, tc.t
		if t.BaseInterval <= 0 {
			return fmt.Errorf("config: %s.base_interval must be positive", name)
		}
		if t.IntervalStep < 0 {
			return fmt.Errorf("config: %s.interval_step must not be negative", name)
		}
		if t.MinInterval <= 0 {
			return fmt.Errorf("config: %s.min_interval must be positive", name)
		}
	}
	switch c.Storage.Backend {
	case BackendSQLite, BackendFile, BackendMemory:
	default:
		return fmt.Errorf("config: unknown storage backend %q", c.Storage.Backend)
	}
	if c.Window.CellSize <= 0 {
		return fmt.Errorf("config: window.cell_size must be positive, got %d", c.Window.CellSize)
	}
	return nil
}
