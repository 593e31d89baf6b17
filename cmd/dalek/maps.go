package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"

	"github.com/vhernadi/dalek/internal/worldmap"
)

var flagListMapsDir string

var mapsCmd = &cobra.Command{
	Use:   "maps",
	Short: "List available map files",
	Long: `Shows the bundled default map and any *.map files in the maps
directory, with their dimensions and entity counts.`,
	Run: runMaps,
}

var mapsCheckCmd = &cobra.Command{
	Use:   "check <path>",
	Short: "Validate a map file",
	Long: `Parse a map file and report whether it is playable. On failure the
exact loader error is printed, including the offending row and column.

Examples:
  dalek maps check my.map`,
	Args: cobra.ExactArgs(1),
	Run:  runMapsCheck,
}

func init() {
	mapsCmd.PersistentFlags().StringVar(&flagListMapsDir, "maps-dir", "maps", "Directory to scan for *.map files")
	mapsCmd.AddCommand(mapsCheckCmd)
}

func runMaps(cmd *cobra.Command, args []string) {
	fmt.Println("Available maps:")
	fmt.Println()
	fmt.Printf("  %-20s  %-9s  %-7s  %s\n", "Name", "Size", "Daleks", "Source")
	fmt.Printf("  %-20s  %-9s  %-7s  %s\n", "----", "----", "------", "------")

	if layout, err := worldmap.Default(); err == nil {
		printMapRow("default", layout, "bundled")
	}

	matches, _ := filepath.Glob(filepath.Join(flagListMapsDir, "*.map"))
	sort.Strings(matches)
	for _, path := range matches {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		name := filepath.Base(path)
		layout, err := worldmap.Parse(string(data))
		if err != nil {
			fmt.Printf("  %-20s  invalid: %v\n", name, err)
			continue
		}
		printMapRow(name, layout, path)
	}

	fmt.Println()
	fmt.Println("Run 'dalek play --map <path>' to play a map.")
}

func printMapRow(name string, layout *worldmap.WorldLayout, source string) {
	size := fmt.Sprintf("%dx%d", layout.Width, layout.Height)
	fmt.Printf("  %-20s  %-9s  %-7d  %s\n", name, size, len(layout.Daleks), source)
}

func runMapsCheck(cmd *cobra.Command, args []string) {
	path := args[0]

	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading %s: %v\n", path, err)
		os.Exit(1)
	}

	layout, err := worldmap.Parse(string(data))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid map: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("OK: %dx%d, %d dalek(s), %d wall(s), %d scrap pile(s), doctor at (%d,%d)\n",
		layout.Width, layout.Height,
		len(layout.Daleks), len(layout.Walls), len(layout.Scrap),
		layout.Doctor.Row, layout.Doctor.Col)
}
