package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vhernadi/dalek/internal/core"
	"github.com/vhernadi/dalek/internal/game"
	"github.com/vhernadi/dalek/internal/platform/tui"
	"github.com/vhernadi/dalek/internal/registry"
	"github.com/vhernadi/dalek/internal/storage"
	"github.com/vhernadi/dalek/internal/worldmap"
)

var (
	flagMap        string
	flagMapsDir    string
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a session",
	Long: `Start a session. Without --map, an interactive map picker is shown.

Controls:
  WASD/Arrows - Move the Doctor one cell
  X/T         - Emergency teleport to a random free cell
  P           - Pause
  R           - Restart (after game over)
  Q/Ctrl+C    - Quit

Difficulty options:
  easy   - Orthogonal Daleks, unlimited teleports
  normal - Diagonal Daleks, unlimited teleports
  hard   - Diagonal Daleks, 3 teleports per session

Examples:
  dalek play
  dalek play --map maps/arena.map
  dalek play --difficulty hard
  dalek play --config ./my-rules.yaml`,
	Run: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagMap, "map", "", "Path to a map file (skips the picker)")
	playCmd.Flags().StringVar(&flagMapsDir, "maps-dir", "maps", "Directory listed in the map picker")
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom rules config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
}

func runPlay(cmd *cobra.Command, args []string) {
	// Get terminal size early for the map picker
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	game.SetRulesPath(flagConfig)
	game.SetDifficultyPreset(flagDifficulty)

	if flagMap != "" {
		data, err := os.ReadFile(flagMap)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading map %s: %v\n", flagMap, err)
			os.Exit(1)
		}
		if _, err := worldmap.Parse(string(data)); err != nil {
			fmt.Fprintf(os.Stderr, "Invalid map %s: %v\n", flagMap, err)
			os.Exit(1)
		}
		cfg.MapText = string(data)
	} else {
		selection, err := tui.RunMapSelector(cfg, flagMapsDir)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		// User quit the picker
		if selection == nil {
			return
		}
		cfg.MapText = selection.MapText
	}

	g, err := registry.Create("dalek")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(g, store, cfg)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
