package sim

import "github.com/vovakirdan/tui-chips/internal/core"

// Connection links a source tile to a destination tile. Teleports, red
// buttons (clone machines) and brown buttons (bear traps) resolve their
// target through connections. Connections are directional.
type Connection struct {
	Src  core.Vec
	Dest core.Vec
}

// Reverse returns the connection with source and destination swapped.
func (c Connection) Reverse() Connection {
	return Connection{Src: c.Dest, Dest: c.Src}
}

// MoveFlags grants passage through tiles that are open to some kinds only.
type MoveFlags struct {
	Gravel bool
	Fire   bool
	Dirt   bool
	Exit   bool
}

// Field is the terrain grid plus level metadata.
// Terrain is row-major: index = y*Width + x.
type Field struct {
	Name      string
	Hint      string
	Password  string
	TimeLimit int // seconds, 0 = unlimited
	Chips     int // chips required to open sockets

	Width   int
	Height  int
	Terrain []Terrain
	Conns   []Connection
}

// NewField creates a Width×Height field filled with Floor.
func NewField(width, height int) *Field {
	f := &Field{
		Width:   width,
		Height:  height,
		Terrain: make([]Terrain, width*height),
	}
	for i := range f.Terrain {
		f.Terrain[i] = Floor
	}
	return f
}

// InBounds returns true if the position is on the grid.
func (f *Field) InBounds(p core.Vec) bool {
	return p.X >= 0 && p.X < f.Width && p.Y >= 0 && p.Y < f.Height
}

// Get returns the terrain at a position. Out of bounds is Blank.
func (f *Field) Get(p core.Vec) Terrain {
	if !f.InBounds(p) {
		return Blank
	}
	return f.Terrain[p.Y*f.Width+p.X]
}

// Set replaces the terrain at a position. Out of bounds is a no-op.
func (f *Field) Set(p core.Vec, t Terrain) {
	if !f.InBounds(p) {
		return
	}
	f.Terrain[p.Y*f.Width+p.X] = t
}

// ConnDest returns the destination of the first connection leaving p.
func (f *Field) ConnDest(p core.Vec) (core.Vec, bool) {
	for _, c := range f.Conns {
		if c.Src == p {
			return c.Dest, true
		}
	}
	return core.Vec{}, false
}

// CanMove reports whether terrain allows leaving pos in direction dir.
//
// An occupant of a fully solid tile (a clone machine, a toggled wall) may
// always leave it. Otherwise the exit side of the current tile and the entry
// side of the destination must both be open, and gravel, fire, dirt and the
// exit are only enterable with the matching flag.
func (f *Field) CanMove(pos core.Vec, dir core.Dir, flags MoveFlags) bool {
	cur := f.Get(pos).Solid()
	if cur == SolidWall {
		return true
	}
	if cur&panelBit(dir) != 0 {
		return false
	}

	dest := f.Get(pos.Step(dir))
	if dest.Solid()&panelBit(dir.TurnAround()) != 0 {
		return false
	}

	switch dest {
	case Gravel:
		return flags.Gravel
	case Fire:
		return flags.Fire
	case Dirt:
		return flags.Dirt
	case Exit:
		return flags.Exit
	}
	return true
}

// ToggleWalls flips every ToggleFloor into ToggleWall and vice versa.
func (f *Field) ToggleWalls() {
	for i, t := range f.Terrain {
		switch t {
		case ToggleFloor:
			f.Terrain[i] = ToggleWall
		case ToggleWall:
			f.Terrain[i] = ToggleFloor
		}
	}
}

// panelBit maps a direction to the side of a tile it crosses.
func panelBit(d core.Dir) uint8 {
	switch d {
	case core.DirUp:
		return PanelNorth
	case core.DirRight:
		return PanelEast
	case core.DirDown:
		return PanelSouth
	case core.DirLeft:
		return PanelWest
	default:
		return 0
	}
}
