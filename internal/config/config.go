// Package config provides YAML-based application configuration for the
// chips player: simulation rate, level sources, logging and input feel.
package config

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-chips/internal/core"
)

// Config contains all configuration for the chips binary.
type Config struct {
	TickRate  int          `yaml:"tick_rate"` // simulation ticks per second
	Seed      int64        `yaml:"seed"`      // 0 keeps each level's own seed
	LevelsDir string       `yaml:"levels_dir"`
	DBPath    string       `yaml:"db_path"`
	LogLevel  string       `yaml:"log_level"` // debug, info, warn, error
	Input     InputConfig  `yaml:"input"`
	Replay    ReplayConfig `yaml:"replay"`
}

// InputConfig tunes how terminal key presses become held directions.
type InputConfig struct {
	// HoldTicks is how long a direction stays held after its last key
	// press. Terminals report no key releases.
	HoldTicks int `yaml:"hold_ticks"`
}

// ReplayConfig limits headless replays.
type ReplayConfig struct {
	MaxTicks int `yaml:"max_ticks"`
}

// Runtime returns the engine settings carried by the config.
func (c Config) Runtime() core.RuntimeConfig {
	rc := core.DefaultConfig()
	if c.TickRate > 0 {
		rc.TickRate = c.TickRate
	}
	rc.Seed = c.Seed
	return rc
}

// Level parses LogLevel for charmbracelet/log.
func (c Config) Level() (log.Level, error) {
	if strings.TrimSpace(c.LogLevel) == "" {
		return log.InfoLevel, nil
	}
	lvl, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return log.InfoLevel, fmt.Errorf("log_level: %w", err)
	}
	return lvl, nil
}

// Validate checks value ranges after loading.
func (c Config) Validate() error {
	if c.TickRate < 0 {
		return fmt.Errorf("tick_rate must not be negative, got %d", c.TickRate)
	}
	if c.Input.HoldTicks < 0 {
		return fmt.Errorf("input.hold_ticks must not be negative, got %d", c.Input.HoldTicks)
	}
	if c.Replay.MaxTicks < 0 {
		return fmt.Errorf("replay.max_ticks must not be negative, got %d", c.Replay.MaxTicks)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}
