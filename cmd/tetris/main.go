// tetris is a terminal Tetris with guideline rotation, scoring, and modes.
//
// Usage:
//
//	tetris list              - List available modes
//	tetris play <mode>       - Play a mode
//	tetris menu              - Start menu to pick modes interactively
//	tetris serve             - Start SSH server for remote play
//	tetris scores <mode>     - Show high scores for a mode
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible piece sequences
//	--db <path>     - Set database path (default: ~/.tetris/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import modes to register them
	_ "github.com/vovakirdan/tui-tetris/internal/tetris"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tetris",
	Short: "Terminal Tetris with guideline rules",
	Long: `Tetris in your terminal: SRS rotation with wall kicks, 7-bag
randomization, hold, ghost piece, and guideline scoring with T-spins,
back-to-back, and combos.

Available commands:
  list     - Show all available modes
  play     - Play a specific mode directly
  menu     - Interactive mode picker menu
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  tetris list
  tetris play marathon
  tetris play endless --level 8
  tetris menu
  tetris serve --ssh :2222
  tetris scores marathon`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.tetris/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
