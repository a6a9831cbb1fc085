package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/brickgame/internal/platform/desktop"
	"github.com/vovakirdan/brickgame/internal/platform/tui"
	"github.com/vovakirdan/brickgame/internal/registry"
)

var flagWindow bool

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls:
  Arrows/WASD - Move (Tetris: Left/Right/Down, Snake: steer)
  Space       - Action (Tetris: rotate, Snake: hold to speed up)
  Enter       - Start
  P           - Pause / resume
  R           - New game (after game over)
  Esc/B       - Leave (when not running)
  Ctrl+S      - Save a text screenshot
  Q/Ctrl+C    - Quit

Examples:
  brickgame play snake
  brickgame play tetris --seed 42
  brickgame play tetris --window`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagWindow, "window", false, "Play in a desktop window instead of the terminal")
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := args[0]
	mustExist(gameID)

	a := mustSetup(true)
	defer a.Close()

	game, err := registry.Create(gameID, a.deps())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	if flagWindow {
		err = desktop.Run(game, desktop.Options{
			CellSize: a.cfg.Window.CellSize,
			History:  a.backends.History,
			Logger:   a.logger,
		})
	} else {
		width, height := 80, 24 // Defaults
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		err = tui.Run(game, tui.Options{
			TickRate: a.cfg.TickRate,
			Width:    width,
			Height:   height,
			History:  tui.Recorder(a.backends.History),
			Logger:   a.logger,
		})
	}

	if err != nil {
		a.Close()
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}
