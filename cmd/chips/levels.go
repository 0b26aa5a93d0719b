package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-chips/internal/sim/levels"
)

var levelsCmd = &cobra.Command{
	Use:   "levels [dir]",
	Short: "List levels in a directory",
	Long: `Shows every loadable level found under a directory, sorted by ID.
Files that fail to parse or load are skipped with a warning.

Without an argument the levels_dir from the config is used.`,
	Args: cobra.MaximumNArgs(1),
	Run:  runLevels,
}

var validateCmd = &cobra.Command{
	Use:   "validate <file>...",
	Short: "Check that level files load",
	Long: `Loads each file into a fresh game and reports the first fatal error,
such as a bad map size, an unknown terrain or entity name, or an entity
outside the map.

Exits with status 1 if any file fails.`,
	Args: cobra.MinimumNArgs(1),
	Run:  runValidate,
}

func runLevels(_ *cobra.Command, args []string) {
	dir := cfg.LevelsDir
	if len(args) == 1 {
		dir = args[0]
	}

	lvls, err := levels.NewLoader(dir, logger).LoadAll()
	if err != nil {
		fail("Error: %v", err)
	}

	if len(lvls) == 0 {
		fmt.Printf("No levels found in %s.\n", dir)
		return
	}

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, l := range lvls {
		maxIDLen = max(maxIDLen, len(l.ID))
	}

	fmt.Printf("  %-*s  %-7s  %5s  %s\n", maxIDLen, "ID", "Size", "Chips", "Name")
	fmt.Printf("  %-*s  %-7s  %5s  %s\n", maxIDLen, "--", "----", "-----", "----")

	for _, l := range lvls {
		size := "-"
		if rec, err := l.Record(); err == nil {
			size = fmt.Sprintf("%dx%d", rec.Width, rec.Height)
		}
		fmt.Printf("  %-*s  %-7s  %5d  %s\n", maxIDLen, l.ID, size, l.Chips, l.Name)
	}

	fmt.Println()
	fmt.Println("Run 'chips play <id>' to play a level.")
}

func runValidate(_ *cobra.Command, args []string) {
	loader := levels.NewLoader("", logger)
	failed := 0

	for _, path := range args {
		lvl, err := loader.LoadFile(path)
		if err == nil {
			err = lvl.Validate()
		}
		if err != nil {
			failed++
			fmt.Printf("FAIL  %s: %v\n", path, err)
			continue
		}
		fmt.Printf("ok    %s (%s)\n", path, lvl.ID)
	}

	if failed > 0 {
		fail("Error: %d of %d levels failed to load", failed, len(args))
	}
}
