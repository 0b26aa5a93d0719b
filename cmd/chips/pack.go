package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-chips/internal/sim/levels"
)

var packCmd = &cobra.Command{
	Use:   "pack",
	Short: "Manage the level pack",
	Long: `The level pack is a SQLite database of imported level files, so levels
can be played by ID from anywhere. Its location is db_path in the config
or the --db flag.`,
}

var packImportCmd = &cobra.Command{
	Use:   "import <file>...",
	Short: "Import level files into the pack",
	Long: `Stores each level file under its level ID, replacing an earlier import
with the same ID. Files that do not load are rejected.`,
	Args: cobra.MinimumNArgs(1),
	Run:  runPackImport,
}

var packListCmd = &cobra.Command{
	Use:   "list",
	Short: "List levels in the pack",
	Args:  cobra.NoArgs,
	Run:   runPackList,
}

var packRmCmd = &cobra.Command{
	Use:   "rm <id>...",
	Short: "Remove levels from the pack",
	Args:  cobra.MinimumNArgs(1),
	Run:   runPackRm,
}

func init() {
	packCmd.AddCommand(packImportCmd)
	packCmd.AddCommand(packListCmd)
	packCmd.AddCommand(packRmCmd)
}

func runPackImport(_ *cobra.Command, args []string) {
	store := openStore()
	defer store.Close()

	failed := 0
	for _, path := range args {
		raw, err := os.ReadFile(path)
		if err != nil {
			failed++
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			continue
		}
		ext := filepath.Ext(path)
		lvl, err := levels.ParseBytes(raw, ext, path)
		if err != nil {
			failed++
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			continue
		}
		if _, err := store.ImportLevel(lvl, ext, raw); err != nil {
			failed++
			fmt.Fprintf(os.Stderr, "Error: %s: %v\n", path, err)
			continue
		}
		fmt.Printf("imported %s as %s\n", path, lvl.ID)
	}

	if failed > 0 {
		store.Close()
		fail("Error: %d of %d files were not imported", failed, len(args))
	}
}

func runPackList(_ *cobra.Command, _ []string) {
	store := openStore()
	defer store.Close()

	entries, err := store.ListLevels()
	if err != nil {
		store.Close()
		fail("Error: %v", err)
	}

	if len(entries) == 0 {
		fmt.Println("The level pack is empty.")
		fmt.Println("Run 'chips pack import <file>' to add levels.")
		return
	}

	maxIDLen := 2
	for _, e := range entries {
		maxIDLen = max(maxIDLen, len(e.LevelID))
	}

	fmt.Printf("  %-*s  %-6s  %7s  %-16s  %s\n", maxIDLen, "ID", "Format", "Bytes", "Imported", "Name")
	fmt.Printf("  %-*s  %-6s  %7s  %-16s  %s\n", maxIDLen, "--", "------", "-----", "--------", "----")
	for _, e := range entries {
		imported := "-"
		if !e.CreatedAt.IsZero() {
			imported = e.CreatedAt.Format("2006-01-02 15:04")
		}
		fmt.Printf("  %-*s  %-6s  %7d  %-16s  %s\n", maxIDLen, e.LevelID, e.Format, e.Size, imported, e.Name)
	}
}

func runPackRm(_ *cobra.Command, args []string) {
	store := openStore()
	defer store.Close()

	for _, id := range args {
		if err := store.DeleteLevel(id); err != nil {
			store.Close()
			fail("Error: %v", err)
		}
		fmt.Printf("removed %s\n", id)
	}
}
