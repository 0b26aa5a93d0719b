// Package levels converts level files into engine records and back.
// This package depends on sim but sim does not depend on levels.
package levels

import (
	"fmt"

	"github.com/vovakirdan/tui-chips/internal/core"
	"github.com/vovakirdan/tui-chips/internal/sim"
	"github.com/vovakirdan/tui-chips/internal/sim/levels/formats"
)

// ErrInvalidLevel is the same sentinel the engine uses, so errors.Is works
// for problems found in either layer.
var ErrInvalidLevel = sim.ErrInvalidLevel

// Level represents a complete level definition.
type Level struct {
	formats.Level
	FilePath string
}

// DefaultGlyphs maps row characters to terrain when a level does not
// override them.
var DefaultGlyphs = map[rune]sim.Terrain{
	' ': sim.Blank,
	'.': sim.Floor,
	'#': sim.Wall,
	'b': sim.BlueLock,
	'r': sim.RedLock,
	'g': sim.GreenLock,
	'y': sim.YellowLock,
	'?': sim.Hint,
	'E': sim.Exit,
	'~': sim.Water,
	'^': sim.Fire,
	':': sim.Dirt,
	'%': sim.Gravel,
	'_': sim.Ice,
	'[': sim.IceNW,
	']': sim.IceNE,
	'{': sim.IceSW,
	'}': sim.IceSE,
	'A': sim.ForceN,
	'<': sim.ForceW,
	'v': sim.ForceS,
	'>': sim.ForceE,
	'*': sim.ForceRandom,
	'C': sim.CloneMachine,
	'o': sim.ToggleFloor,
	'O': sim.ToggleWall,
	'n': sim.PanelN,
	'w': sim.PanelW,
	's': sim.PanelS,
	'e': sim.PanelE,
	'j': sim.PanelSE,
	'H': sim.HiddenWall,
	'I': sim.InvisibleWall,
	'W': sim.BlueWall,
	'F': sim.BlueFake,
	'G': sim.GreenButton,
	'R': sim.RedButton,
	'N': sim.BrownButton,
	'U': sim.BlueButton,
	'T': sim.Teleport,
	'B': sim.BearTrap,
	'x': sim.RecessedWall,
}

// Record converts the level into the engine's record form.
func (l *Level) Record() (sim.Record, error) {
	rec := sim.Record{
		Name:      l.Name,
		Hint:      l.Hint,
		Password:  l.Password,
		Seed:      l.Seed,
		TimeLimit: l.Time,
		Chips:     l.Chips,
		Width:     l.Map.Width,
		Height:    l.Map.Height,
	}

	m := l.Map
	switch {
	case len(m.Rows) > 0 && len(m.Data) > 0:
		return sim.Record{}, fmt.Errorf("%w: map has both rows and data", ErrInvalidLevel)
	case len(m.Rows) > 0:
		if err := rowsToRecord(&rec, m); err != nil {
			return sim.Record{}, err
		}
	default:
		rec.Data = m.Data
		for i, name := range m.Legend {
			t, err := sim.ParseTerrain(name)
			if err != nil {
				return sim.Record{}, fmt.Errorf("legend entry %d: %w", i, err)
			}
			rec.Legend = append(rec.Legend, t)
		}
	}

	for _, c := range l.Connections {
		rec.Conns = append(rec.Conns, sim.Connection{
			Src:  core.V(c.Src[0], c.Src[1]),
			Dest: core.V(c.Dest[0], c.Dest[1]),
		})
	}

	for i, e := range l.Entities {
		kind, err := sim.ParseKind(e.Kind)
		if err != nil {
			return sim.Record{}, fmt.Errorf("entity %d: %w", i, err)
		}
		face, err := core.ParseDir(e.Face)
		if err != nil {
			return sim.Record{}, fmt.Errorf("%w: entity %d: %v", ErrInvalidLevel, i, err)
		}
		rec.Spawns = append(rec.Spawns, sim.Spawn{
			Kind: kind,
			Pos:  core.V(e.Pos[0], e.Pos[1]),
			Face: face,
		})
	}

	return rec, nil
}

// rowsToRecord fills terrain from glyph rows, inferring the size when the
// level leaves it out.
func rowsToRecord(rec *sim.Record, m formats.Map) error {
	glyphs := make(map[rune]sim.Terrain, len(DefaultGlyphs)+len(m.Glyphs))
	for r, t := range DefaultGlyphs {
		glyphs[r] = t
	}
	for key, name := range m.Glyphs {
		rs := []rune(key)
		if len(rs) != 1 {
			return fmt.Errorf("%w: glyph %q must be a single character", ErrInvalidLevel, key)
		}
		t, err := sim.ParseTerrain(name)
		if err != nil {
			return fmt.Errorf("glyph %q: %w", key, err)
		}
		glyphs[rs[0]] = t
	}

	if rec.Height == 0 {
		rec.Height = len(m.Rows)
	}
	if rec.Width == 0 {
		rec.Width = len([]rune(m.Rows[0]))
	}
	if len(m.Rows) != rec.Height {
		return fmt.Errorf("%w: %d rows, expected height %d", ErrInvalidLevel, len(m.Rows), rec.Height)
	}

	index := make(map[sim.Terrain]int)
	for y, row := range m.Rows {
		rs := []rune(row)
		if len(rs) != rec.Width {
			return fmt.Errorf("%w: row %d has width %d, expected %d", ErrInvalidLevel, y, len(rs), rec.Width)
		}
		for x, r := range rs {
			t, ok := glyphs[r]
			if !ok {
				return fmt.Errorf("%w: unknown glyph %q at (%d,%d)", ErrInvalidLevel, r, x, y)
			}
			idx, ok := index[t]
			if !ok {
				idx = len(rec.Legend)
				index[t] = idx
				rec.Legend = append(rec.Legend, t)
			}
			rec.Data = append(rec.Data, idx)
		}
	}
	return nil
}

// NewGame loads the level into a fresh game.
func (l *Level) NewGame(cfg core.RuntimeConfig) (*sim.Game, error) {
	rec, err := l.Record()
	if err != nil {
		return nil, fmt.Errorf("level %s: %w", l.ID, err)
	}
	g, err := sim.Load(rec, cfg)
	if err != nil {
		return nil, fmt.Errorf("level %s: %w", l.ID, err)
	}
	return g, nil
}

// Validate reports the first fatal load error, if any.
func (l *Level) Validate() error {
	_, err := l.NewGame(core.DefaultConfig())
	return err
}

// Export writes a running game back into a level, with a compacted legend
// that starts with Blank and Floor.
func Export(g *sim.Game, id string) Level {
	rec := g.Snapshot()

	out := formats.Level{
		ID:       id,
		Name:     rec.Name,
		Hint:     rec.Hint,
		Password: rec.Password,
		Seed:     rec.Seed,
		Time:     rec.TimeLimit,
		Chips:    rec.Chips,
		Map: formats.Map{
			Width:  rec.Width,
			Height: rec.Height,
			Data:   rec.Data,
		},
	}
	for _, t := range rec.Legend {
		out.Map.Legend = append(out.Map.Legend, t.String())
	}
	for _, c := range rec.Conns {
		out.Connections = append(out.Connections, formats.Connection{
			Src:  [2]int{c.Src.X, c.Src.Y},
			Dest: [2]int{c.Dest.X, c.Dest.Y},
		})
	}
	for _, s := range rec.Spawns {
		e := formats.Entity{Kind: s.Kind.String(), Pos: [2]int{s.Pos.X, s.Pos.Y}}
		if s.Face != core.DirNone {
			e.Face = s.Face.String()
		}
		out.Entities = append(out.Entities, e)
	}
	return Level{Level: out}
}
