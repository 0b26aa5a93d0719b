package core

import (
	"fmt"
	"strings"
)

// Dir is one of the four cardinal directions. The zero value DirNone means
// "no direction" and is used for idle facing and no active step.
type Dir uint8

const (
	DirNone Dir = iota
	DirUp
	DirLeft
	DirDown
	DirRight
)

// Dirs lists the four cardinal directions in rotation order.
var Dirs = [4]Dir{DirUp, DirLeft, DirDown, DirRight}

// String returns the string representation of a direction.
func (d Dir) String() string {
	switch d {
	case DirNone:
		return "None"
	case DirUp:
		return "Up"
	case DirLeft:
		return "Left"
	case DirDown:
		return "Down"
	case DirRight:
		return "Right"
	default:
		return "Unknown"
	}
}

// ParseDir parses a direction name (case-insensitive). The empty string and
// "none" parse as DirNone.
func ParseDir(s string) (Dir, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return DirNone, nil
	case "up", "n", "north":
		return DirUp, nil
	case "left", "w", "west":
		return DirLeft, nil
	case "down", "s", "south":
		return DirDown, nil
	case "right", "e", "east":
		return DirRight, nil
	default:
		return DirNone, fmt.Errorf("unknown direction %q", s)
	}
}

// Valid reports whether d is one of the four cardinal directions.
func (d Dir) Valid() bool {
	return d >= DirUp && d <= DirRight
}

// Vec returns the unit offset for moving one step in this direction.
// Up decreases Y, Down increases Y (screen coordinates).
func (d Dir) Vec() Vec {
	switch d {
	case DirUp:
		return Vec{0, -1}
	case DirLeft:
		return Vec{-1, 0}
	case DirDown:
		return Vec{0, 1}
	case DirRight:
		return Vec{1, 0}
	default:
		return Vec{}
	}
}

// TurnLeft rotates counter-clockwise: Up→Left→Down→Right→Up.
func (d Dir) TurnLeft() Dir {
	switch d {
	case DirUp:
		return DirLeft
	case DirLeft:
		return DirDown
	case DirDown:
		return DirRight
	case DirRight:
		return DirUp
	default:
		return d
	}
}

// TurnRight rotates clockwise: Up→Right→Down→Left→Up.
func (d Dir) TurnRight() Dir {
	switch d {
	case DirUp:
		return DirRight
	case DirRight:
		return DirDown
	case DirDown:
		return DirLeft
	case DirLeft:
		return DirUp
	default:
		return d
	}
}

// TurnAround returns the opposite direction.
func (d Dir) TurnAround() Dir {
	switch d {
	case DirUp:
		return DirDown
	case DirRight:
		return DirLeft
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	default:
		return d
	}
}

// Perpendicular reports whether d and o lie on different axes.
func (d Dir) Perpendicular(o Dir) bool {
	if !d.Valid() || !o.Valid() {
		return false
	}
	return d != o && d != o.TurnAround()
}
