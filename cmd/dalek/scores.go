package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vhernadi/dalek/internal/platform/tui"
	"github.com/vhernadi/dalek/internal/storage"
)

var (
	flagClearScores bool
	flagScoresTUI   bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the top 10 scores and aggregate statistics.

Examples:
  dalek scores
  dalek scores --tui
  dalek scores --clear`,
	Run: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClearScores, "clear", false, "Delete all recorded scores")
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Browse scores in an interactive table")
}

func runScores(cmd *cobra.Command, args []string) {
	const gameID = "dalek"

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClearScores {
		if err := store.ClearScores(gameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Scores cleared.")
		return
	}

	if flagScoresTUI {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		if _, err := tui.RunScoreboard(store, gameID, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	scores, err := store.TopScores(gameID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("High Scores - Dalek")
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'dalek play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-8s  %-8s  %-8s  %-6s  %s\n", "Rank", "Score", "Rounds", "Daleks", "Result", "Date")
	fmt.Printf("  %-4s  %-8s  %-8s  %-8s  %-6s  %s\n", "----", "-----", "------", "------", "------", "----")

	for i, entry := range scores {
		result := "lost"
		if entry.Won {
			result = "won"
		}
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-8d  %-8d  %-8d  %-6s  %s\n",
			i+1, entry.Score, entry.Rounds, entry.DaleksDown, result, dateStr)
	}

	if stats, err := store.GetGameStats(gameID); err == nil && stats.GamesCount > 0 {
		fmt.Println()
		fmt.Printf("Games: %d  Wins: %d  Best: %d  Avg: %.0f\n",
			stats.GamesCount, stats.Wins, stats.HighScore, stats.AvgScore)
	}
}
