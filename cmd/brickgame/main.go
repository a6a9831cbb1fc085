// brickgame plays Snake and Tetris in the terminal, in a desktop window or
// over SSH.
//
// Usage:
//
//	brickgame list                 - List available games
//	brickgame play <game>          - Play a game in the terminal
//	brickgame play <game> --window - Play a game in a desktop window
//	brickgame menu                 - Pick games interactively
//	brickgame scores [game]        - Show recorded scores
//	brickgame serve                - Start SSH server for remote play
//
// Global flags:
//
//	--config <path>     - Config file (default: search ~/.brickgame, ./configs)
//	--seed <value>      - RNG seed for reproducible gameplay
//	--db <path>         - Scores database path
//	--log-level <level> - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/brickgame/internal/config"
	"github.com/vovakirdan/brickgame/internal/logging"
	"github.com/vovakirdan/brickgame/internal/registry"
	"github.com/vovakirdan/brickgame/internal/storage"

	// Import games to register them
	_ "github.com/vovakirdan/brickgame/internal/games/snake"
	_ "github.com/vovakirdan/brickgame/internal/games/tetris"
)

var (
	// Global flags
	flagConfig   string
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "brickgame",
	Short: "Brick Game - Snake and Tetris on a 10x20 field",
	Long: `Brick Game recreates the handheld brick game consoles: Snake and Tetris
on a 10x20 field, with levels, speed-ups and persistent high scores.

Available commands:
  list     - Show all available games
  play     - Play a specific game directly
  menu     - Interactive game picker menu
  scores   - View recorded scores
  serve    - Start SSH server for remote play

Examples:
  brickgame list
  brickgame play snake
  brickgame play tetris --window
  brickgame menu
  brickgame serve --ssh :2222
  brickgame scores tetris`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to scores database (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error (overrides config)")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}

// app holds what every command that plays or reads scores needs.
type app struct {
	cfg      config.Config
	logger   *log.Logger
	logFile  io.Closer
	backends storage.Backends
}

// setup loads the configuration, applies flag overrides, builds the logger
// and opens the score stores. Terminal UIs log to a file so the screen stays
// clean.
func setup(logToFile bool) (*app, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, err
	}
	if flagDBPath != "" {
		cfg.Storage.DBPath = flagDBPath
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}

	logger, logFile, err := logging.New(cfg.Log, logToFile)
	if err != nil {
		return nil, err
	}

	return &app{
		cfg:      cfg,
		logger:   logger,
		logFile:  logFile,
		backends: storage.OpenBackends(cfg.Storage, logger),
	}, nil
}

// deps returns the engine dependencies for this run.
func (a *app) deps() registry.Deps {
	return registry.Deps{
		Store:  a.backends.HighScores,
		Logger: a.logger,
		Seed:   flagSeed,
		Config: a.cfg,
	}
}

// Close releases the stores and the log file.
func (a *app) Close() {
	if err := a.backends.Close(); err != nil {
		a.logger.Warn("cannot close scores database", "error", err)
	}
	//nolint:errcheck // Best-effort close
	a.logFile.Close()
}

// mustSetup is setup for commands that cannot continue without it.
func mustSetup(logToFile bool) *app {
	a, err := setup(logToFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return a
}

// mustExist exits when gameID is not registered.
func mustExist(gameID string) {
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'brickgame list' to see available games.")
		os.Exit(1)
	}
}
