// chips is a terminal player and toolbox for tile-grid puzzle levels.
//
// Usage:
//
//	chips levels [dir]              - List levels in a directory
//	chips validate <file>...        - Check that level files load
//	chips run <file>                - Replay an input script headlessly
//	chips play <file|id>            - Play a level in the terminal
//	chips pack import|list|rm       - Manage the SQLite level pack
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: from config, 60)
//	--seed <value>       - Override the level's RNG seed
//	--db <path>          - Set level pack path (default: ~/.chips/levels.db)
//	--config <path>      - Use a specific config file
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-chips/internal/config"
	"github.com/vovakirdan/tui-chips/internal/storage"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogLevel string

	cfg    config.Config
	logger *log.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "chips",
	Short: "Chips - tile puzzles in your terminal",
	Long: `Chips plays and checks tile-grid puzzle levels: collect the chips,
open the sockets and reach the exit.

Available commands:
  levels    - List levels in a directory
  validate  - Check level files for load errors
  run       - Replay an input script without a terminal UI
  play      - Play a level
  pack      - Import, list and remove levels in the level pack

Examples:
  chips levels ./levels
  chips validate ./levels/*.yaml
  chips run ./levels/lesson1.yaml --inputs "R12 D24" --ticks 200
  chips play lesson1
  chips pack import ./levels/lesson1.yaml`,
	PersistentPreRun: setup,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (ticks per second, 0 = config value)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = level's own seed)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to level pack database (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(packCmd)
}

// setup loads the config, applies flag overrides and creates the logger.
func setup(cmd *cobra.Command, _ []string) {
	loaded, err := config.Load(flagConfig)
	if err != nil {
		fail("Error loading config: %v", err)
	}
	cfg = loaded

	flags := cmd.Flags()
	if flags.Changed("fps") {
		cfg.TickRate = flagFPS
	}
	if flags.Changed("seed") {
		cfg.Seed = flagSeed
	}
	if flags.Changed("db") {
		cfg.DBPath = flagDBPath
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = flagLogLevel
	}
	if err := cfg.Validate(); err != nil {
		fail("Error: %v", err)
	}

	level, _ := cfg.Level()
	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "chips",
		Level:           level,
	})
	logger.Debug("config loaded", "tick_rate", cfg.TickRate, "levels_dir", cfg.LevelsDir, "db", cfg.DBPath)
}

// openStore opens the level pack or exits.
func openStore() *storage.Store {
	store, err := storage.Open(cfg.DBPath, logger)
	if err != nil {
		fail("Error opening level pack: %v", err)
	}
	return store
}

// fail prints an error line to stderr and exits with status 1.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
