package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/registry"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

var flagStats bool

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show high scores",
	Long: `Display the top 10 high scores for the specified mode, or a
per-mode summary when no mode is given.

Examples:
  tetris scores
  tetris scores marathon
  tetris scores endless
  tetris scores marathon --stats`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagStats, "stats", false, "Show aggregate statistics instead of the score list")
}

func runScores(cmd *cobra.Command, args []string) {
	if len(args) == 0 {
		runScoresSummary()
		return
	}
	modeID := args[0]

	// Check if mode exists
	if !registry.Exists(modeID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", modeID)
		fmt.Fprintln(os.Stderr, "Run 'tetris list' to see available modes.")
		os.Exit(1)
	}

	// Get mode title
	game, err := registry.Create(modeID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating mode: %v\n", err)
		os.Exit(1)
	}
	title := game.Title()

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagStats {
		printStats(store, modeID, title)
		return
	}

	// Get top scores
	scores, err := store.TopScores(modeID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	// Display scores
	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'tetris play %s' to set the first high score!\n", modeID)
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-10s  %-6s  %-6s  %s\n", "Rank", "Score", "Lines", "Level", "Date")
	fmt.Printf("  %-4s  %-10s  %-6s  %-6s  %s\n", "----", "-----", "-----", "-----", "----")

	// Print scores
	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		marker := ""
		if entry.Won {
			marker = " *"
		}
		fmt.Printf("  %-4d  %-10d  %-6d  %-6d  %s%s\n", i+1, entry.Score, entry.Lines, entry.Level, dateStr, marker)
	}

	// Show high score
	fmt.Println()
	highScore, err := store.HighScore(modeID)
	if err == nil {
		fmt.Printf("Best: %d\n", highScore)
	}
}

// runScoresSummary prints one aggregate line per mode that has been played.
func runScoresSummary() {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	allStats, err := store.GetAllModeStats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("High Scores - All Modes")
	fmt.Println()

	if len(allStats) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'tetris play marathon' to set the first high score!")
		return
	}

	fmt.Printf("  %-10s  %-6s  %-10s  %-6s  %-5s  %s\n", "Mode", "Games", "Best", "Lines", "Wins", "Last played")
	fmt.Printf("  %-10s  %-6s  %-10s  %-6s  %-5s  %s\n", "----", "-----", "----", "-----", "----", "-----------")

	// Registry order keeps the listing stable
	for _, mode := range registry.List() {
		stats, ok := allStats[mode.ID]
		if !ok {
			continue
		}
		fmt.Printf("  %-10s  %-6d  %-10d  %-6d  %-5d  %s\n",
			mode.ID, stats.GamesCount, stats.HighScore, stats.TotalLines,
			stats.Wins, stats.LastPlayed.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	fmt.Println("Run 'tetris scores <mode>' for the full list.")
}

func printStats(store *storage.Store, modeID, title string) {
	stats, err := store.GetModeStats(modeID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Statistics - %s\n", title)
	fmt.Println()

	if stats.GamesCount == 0 {
		fmt.Println("No games recorded yet.")
		return
	}

	fmt.Printf("  Games played:  %d\n", stats.GamesCount)
	fmt.Printf("  High score:    %d\n", stats.HighScore)
	fmt.Printf("  Average score: %.1f\n", stats.AvgScore)
	fmt.Printf("  Total lines:   %d\n", stats.TotalLines)
	fmt.Printf("  Best level:    %d\n", stats.BestLevel)
	fmt.Printf("  Wins:          %d\n", stats.Wins)
	if !stats.LastPlayed.IsZero() {
		fmt.Printf("  Last played:   %s\n", stats.LastPlayed.Format("2006-01-02 15:04"))
	}
}
