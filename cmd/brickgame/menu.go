package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/brickgame/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start brickgame with a game picker menu",
	Long: `Start brickgame in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a game.
Leaving a finished or paused game returns to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Q            - Quit

Examples:
  brickgame menu
  brickgame menu --db ./scores.db`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	a := mustSetup(true)
	defer a.Close()

	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}

	err := tui.RunSession(tui.SessionConfig{
		Deps:     a.deps(),
		History:  a.backends.History,
		TickRate: a.cfg.TickRate,
		Width:    width,
		Height:   height,
	})
	if err != nil {
		a.Close()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
