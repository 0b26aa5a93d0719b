package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-chips/internal/platform/tui"
	"github.com/vovakirdan/tui-chips/internal/sim/levels"
	"github.com/vovakirdan/tui-chips/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play <file|id>",
	Short: "Play a level",
	Long: `Start playing a level in the terminal.

The argument is a level file, or a level ID looked up first in the
levels directory and then in the level pack.

Controls:
  Arrows/WASD/HJKL  - Move
  R                 - Restart the level
  P/Esc             - Pause
  Q/Ctrl+C          - Quit

Examples:
  chips play ./levels/lesson1.yaml
  chips play lesson1
  chips play lesson1 --seed 42 --fps 30`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, args []string) {
	lvl, err := resolveLevel(args[0])
	if err != nil {
		fail("Error: %v", err)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	opts := tui.Options{
		Runtime:   cfg.Runtime(),
		HoldTicks: cfg.Input.HoldTicks,
		Width:     width,
		Height:    height,
		Logger:    logger,
	}
	if err := tui.Run(lvl, opts); err != nil {
		fail("Error: %v", err)
	}
}

// resolveLevel loads a level from a file path, the levels directory or the
// level pack, in that order.
func resolveLevel(arg string) (levels.Level, error) {
	if info, err := os.Stat(arg); err == nil && !info.IsDir() {
		return levels.NewLoader("", logger).LoadFile(arg)
	}

	if info, err := os.Stat(cfg.LevelsDir); err == nil && info.IsDir() {
		lvl, err := levels.NewLoader(cfg.LevelsDir, logger).LoadByID(arg)
		if err == nil {
			return lvl, nil
		}
		logger.Debug("level not in levels dir", "id", arg, "dir", cfg.LevelsDir)
	}

	store, err := storage.Open(cfg.DBPath, logger)
	if err != nil {
		return levels.Level{}, err
	}
	defer store.Close()

	lvl, err := store.LoadLevel(arg)
	if errors.Is(err, storage.ErrNotFound) {
		return levels.Level{}, fmt.Errorf("no level file or ID %q (run 'chips levels' or 'chips pack list')", arg)
	}
	return lvl, err
}
