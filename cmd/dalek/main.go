// dalek is a terminal remake of the classic Daleks pursuit game.
//
// Usage:
//
//	dalek play               - Play, picking a map interactively
//	dalek play --map <path>  - Play a specific map file
//	dalek maps               - List available map files
//	dalek maps check <path>  - Validate a map file
//	dalek serve              - Start SSH server for remote play
//	dalek scores             - Show high scores
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 30)
//	--seed <value>  - Set RNG seed for reproducible teleports
//	--db <path>     - Set database path (default: ~/.dalek/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import the game to register it
	_ "github.com/vhernadi/dalek/internal/game"
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
	Use:   "dalek",
	Short: "Dalek - Outwit the pursuing robots in your terminal",
	Long: `Dalek is a turn-based terminal game: every move you make, the Daleks
take one step straight toward you. Lure them into crashing into each
other or into scrap piles, because they are destroyed on impact and
you are not armed.

Available commands:
  play     - Play a session
  maps     - List or validate map files
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  dalek play
  dalek play --map maps/arena.map
  dalek maps check my.map
  dalek serve --ssh :2222
  dalek scores`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.dalek/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(mapsCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
