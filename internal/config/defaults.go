package config

import (
	_ "embed"
)

//go:embed defaults/chips.yaml
var defaultChipsYAML []byte

// DefaultConfig returns the hardcoded configuration used when even the
// embedded defaults cannot be parsed.
func DefaultConfig() Config {
	return Config{
		TickRate:  60,
		LevelsDir: "levels",
		DBPath:    "~/.chips/levels.db",
		LogLevel:  "info",
		Input: InputConfig{
			HoldTicks: 8,
		},
		Replay: ReplayConfig{
			MaxTicks: 60 * 60 * 10,
		},
	}
}
