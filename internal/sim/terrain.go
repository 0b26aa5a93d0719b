// Package sim implements the tile-grid rules engine: terrain, entities,
// movement legality, per-kind behaviors, the player controller and the tick
// orchestrator. It is UI-agnostic and deterministic: the same level, seed and
// input sequence always produce the same event log.
package sim

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-chips/internal/core"
)

// Terrain is the static (but mutable) content of one grid tile.
// Declaration order is the numeric order used by level legends.
type Terrain uint8

const (
	Blank Terrain = iota
	Floor
	Wall
	BlueLock
	RedLock
	GreenLock
	YellowLock
	Hint
	Exit
	Water
	Fire
	Dirt
	Gravel
	Ice
	IceNW
	IceNE
	IceSW
	IceSE
	ForceN
	ForceW
	ForceS
	ForceE
	ForceRandom
	CloneMachine
	ToggleFloor
	ToggleWall
	PanelN
	PanelW
	PanelS
	PanelE
	PanelSE
	HiddenWall
	InvisibleWall
	BlueWall
	BlueFake
	GreenButton
	RedButton
	BrownButton
	BlueButton
	Teleport
	BearTrap
	RecessedWall

	terrainCount
)

// Panel bits of a terrain's solidity mask.
const (
	PanelNorth uint8 = 1
	PanelEast  uint8 = 2
	PanelSouth uint8 = 4
	PanelWest  uint8 = 8

	// SolidWall marks a fully solid tile.
	SolidWall uint8 = 0xF
)

var terrainNames = [terrainCount]string{
	Blank:         "Blank",
	Floor:         "Floor",
	Wall:          "Wall",
	BlueLock:      "BlueLock",
	RedLock:       "RedLock",
	GreenLock:     "GreenLock",
	YellowLock:    "YellowLock",
	Hint:          "Hint",
	Exit:          "Exit",
	Water:         "Water",
	Fire:          "Fire",
	Dirt:          "Dirt",
	Gravel:        "Gravel",
	Ice:           "Ice",
	IceNW:         "IceNW",
	IceNE:         "IceNE",
	IceSW:         "IceSW",
	IceSE:         "IceSE",
	ForceN:        "ForceN",
	ForceW:        "ForceW",
	ForceS:        "ForceS",
	ForceE:        "ForceE",
	ForceRandom:   "ForceRandom",
	CloneMachine:  "CloneMachine",
	ToggleFloor:   "ToggleFloor",
	ToggleWall:    "ToggleWall",
	PanelN:        "PanelN",
	PanelW:        "PanelW",
	PanelS:        "PanelS",
	PanelE:        "PanelE",
	PanelSE:       "PanelSE",
	HiddenWall:    "HiddenWall",
	InvisibleWall: "InvisibleWall",
	BlueWall:      "BlueWall",
	BlueFake:      "BlueFake",
	GreenButton:   "GreenButton",
	RedButton:     "RedButton",
	BrownButton:   "BrownButton",
	BlueButton:    "BlueButton",
	Teleport:      "Teleport",
	BearTrap:      "BearTrap",
	RecessedWall:  "RecessedWall",
}

var terrainByName = func() map[string]Terrain {
	m := make(map[string]Terrain, terrainCount)
	for t, name := range terrainNames {
		m[strings.ToLower(name)] = Terrain(t)
	}
	return m
}()

// String returns the terrain name used in level files.
func (t Terrain) String() string {
	if t < terrainCount {
		return terrainNames[t]
	}
	return fmt.Sprintf("Terrain(%d)", uint8(t))
}

// ParseTerrain parses a terrain name (case-insensitive).
func ParseTerrain(name string) (Terrain, error) {
	t, ok := terrainByName[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Blank, fmt.Errorf("%w: unknown terrain %q", ErrInvalidLevel, name)
	}
	return t, nil
}

// Terrains returns every terrain in declaration order.
func Terrains() []Terrain {
	out := make([]Terrain, terrainCount)
	for i := range out {
		out[i] = Terrain(i)
	}
	return out
}

// Solid returns the terrain's 4-bit panel mask. SolidWall means the tile
// cannot be entered from any side.
func (t Terrain) Solid() uint8 {
	switch t {
	case Blank, Wall, BlueLock, RedLock, GreenLock, YellowLock,
		CloneMachine, ToggleWall, HiddenWall, InvisibleWall, BlueWall, BlueFake:
		return SolidWall
	case PanelN:
		return PanelNorth
	case PanelW:
		return PanelWest
	case PanelS:
		return PanelSouth
	case PanelE:
		return PanelEast
	case PanelSE:
		return PanelSouth | PanelEast
	default:
		return 0
	}
}

// IsIce reports whether the tile is one of the five ice variants.
func (t Terrain) IsIce() bool {
	switch t {
	case Ice, IceNW, IceNE, IceSW, IceSE:
		return true
	}
	return false
}

// IsForce reports whether the tile is a force floor, random one included.
func (t Terrain) IsForce() bool {
	return t == ForceRandom || t.ForceDir() != core.DirNone
}

// ForceDir returns the push direction of a directional force floor.
func (t Terrain) ForceDir() core.Dir {
	switch t {
	case ForceN:
		return core.DirUp
	case ForceW:
		return core.DirLeft
	case ForceS:
		return core.DirDown
	case ForceE:
		return core.DirRight
	default:
		return core.DirNone
	}
}

// IsButton reports whether the tile is one of the four buttons.
func (t Terrain) IsButton() bool {
	switch t {
	case GreenButton, RedButton, BrownButton, BlueButton:
		return true
	}
	return false
}

// LockColor returns the key color that opens this lock.
func (t Terrain) LockColor() (KeyColor, bool) {
	switch t {
	case BlueLock:
		return KeyBlue, true
	case RedLock:
		return KeyRed, true
	case GreenLock:
		return KeyGreen, true
	case YellowLock:
		return KeyYellow, true
	}
	return 0, false
}

// KeyColor identifies one of the four key/lock colors.
type KeyColor uint8

const (
	KeyBlue KeyColor = iota
	KeyRed
	KeyGreen
	KeyYellow
)

func (k KeyColor) String() string {
	switch k {
	case KeyBlue:
		return "Blue"
	case KeyRed:
		return "Red"
	case KeyGreen:
		return "Green"
	case KeyYellow:
		return "Yellow"
	default:
		return "Unknown"
	}
}
