// starfall is a terminal space combat game: dodge formations, trade fire,
// grab weapon pickups, chase the high score.
//
// Usage:
//
//	starfall play            - Play the game
//	starfall list            - List available games
//	starfall serve           - Start SSH server for remote play
//	starfall scores          - Show high scores
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.starfall/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/starfall/internal/games/starfall"
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
	Use:   "starfall",
	Short: "Starfall - Terminal space combat",
	Long: `Starfall is a terminal-based space combat game. Enemy formations
march down the screen; you dodge, shoot, and swap weapons until your ship
gives out.

Available commands:
  play     - Start a run
  list     - Show registered games
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  starfall play
  starfall play --seed 42 --fps 30
  starfall serve --ssh :2222
  starfall scores --interactive`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.starfall/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
