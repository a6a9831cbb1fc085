package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/brickgame/internal/registry"
)

var flagClear bool

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show recorded scores",
	Long: `Display the high score and the top 10 sessions of a game, or of every
game when none is given.

Examples:
  brickgame scores
  brickgame scores tetris
  brickgame scores snake --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the recorded sessions and high score")
}

func runScores(_ *cobra.Command, args []string) {
	games := registry.List()
	if len(args) == 1 {
		mustExist(args[0])
		games = []registry.GameInfo{{ID: args[0], Title: titleOf(args[0])}}
	}

	a := mustSetup(false)
	defer a.Close()

	for i, g := range games {
		if i > 0 {
			fmt.Println()
		}
		if flagClear {
			clearScores(a, g)
			continue
		}
		printScores(a, g)
	}
}

func titleOf(gameID string) string {
	for _, g := range registry.List() {
		if g.ID == gameID {
			return g.Title
		}
	}
	return gameID
}

func clearScores(a *app, g registry.GameInfo) {
	if a.backends.History != nil {
		if err := a.backends.History.ClearScores(g.ID); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			return
		}
	}
	if err := a.backends.HighScores.SaveHighScore(g.ID, 0); err != nil {
		fmt.Fprintf(os.Stderr, "Error resetting high score: %v\n", err)
		return
	}
	fmt.Printf("Cleared scores for %s.\n", g.Title)
}

func printScores(a *app, g registry.GameInfo) {
	fmt.Printf("High Scores - %s\n", g.Title)
	fmt.Println()

	best, err := a.backends.HighScores.LoadHighScore(g.ID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading high score: %v\n", err)
	}

	if a.backends.History == nil {
		fmt.Printf("Best: %d\n", best)
		fmt.Println("(session history unavailable)")
		return
	}

	scores, err := a.backends.History.TopScores(g.ID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		return
	}

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Printf("Play 'brickgame play %s' to set the first high score!\n", g.ID)
		fmt.Println()
		fmt.Printf("Best: %d\n", best)
		return
	}

	fmt.Printf("  %-4s  %-10s  %-5s  %s\n", "Rank", "Score", "Level", "Date")
	fmt.Printf("  %-4s  %-10s  %-5s  %s\n", "----", "-----", "-----", "----")
	for i, entry := range scores {
		fmt.Printf("  %-4d  %-10d  %-5d  %s\n", i+1, entry.Score, entry.Level, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	fmt.Printf("Best: %d\n", best)
	if stats, err := a.backends.History.GetGameStats(g.ID); err == nil {
		fmt.Printf("Games: %d  Average: %.0f\n", stats.GamesCount, stats.AvgScore)
	}
}
