package sim

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-chips/internal/core"
)

// ErrInvalidLevel is wrapped by every error returned for a malformed level.
var ErrInvalidLevel = errors.New("invalid level")

// Record is a level in the form the engine consumes: terrain as legend
// indices plus the initial entities and connections.
type Record struct {
	Name      string
	Hint      string
	Password  string
	Seed      int64
	TimeLimit int
	Chips     int

	Width  int
	Height int
	Data   []int     // legend index per tile, row-major; empty = all Floor
	Legend []Terrain // terrain per legend index

	Conns  []Connection
	Spawns []Spawn
}

// Load builds a fresh game from a level record. A non-zero cfg.Seed
// overrides the level's stored seed.
func Load(rec Record, cfg core.RuntimeConfig) (*Game, error) {
	field, err := rec.field()
	if err != nil {
		return nil, err
	}

	players := 0
	for i, s := range rec.Spawns {
		if !field.InBounds(s.Pos) {
			return nil, fmt.Errorf("%w: entity %d (%s) at %v is outside the %dx%d map",
				ErrInvalidLevel, i, s.Kind, s.Pos, rec.Width, rec.Height)
		}
		if s.Kind >= kindCount {
			return nil, fmt.Errorf("%w: entity %d has unknown kind %d", ErrInvalidLevel, i, s.Kind)
		}
		if s.Kind == Player {
			players++
		}
	}
	if players > 1 {
		return nil, fmt.Errorf("%w: %d players, at most one allowed", ErrInvalidLevel, players)
	}

	seed := rec.Seed
	if cfg.Seed != 0 {
		seed = cfg.Seed
	}
	tickRate := cfg.TickRate
	if tickRate <= 0 {
		tickRate = core.DefaultConfig().TickRate
	}

	g := &Game{
		Field:    field,
		Ents:     NewArena(),
		rng:      rand.New(rand.NewSource(seed)),
		seed:     seed,
		tickRate: tickRate,
		rec:      rec,
	}

	for _, s := range rec.Spawns {
		if s.Face == core.DirNone && s.Kind.IsMonster() {
			s.Face = core.DirUp
		}
		e := g.spawn(s)
		if s.Kind == Player {
			g.PS.Entity = e.Handle
		}
	}
	g.refreshHidden()
	return g, nil
}

// Restart reloads the level the game was started from, keeping its seed.
func (g *Game) Restart() (*Game, error) {
	return Load(g.rec, core.RuntimeConfig{TickRate: g.tickRate, Seed: g.seed})
}

func (rec Record) field() (*Field, error) {
	if rec.Width <= 0 || rec.Height <= 0 {
		return nil, fmt.Errorf("%w: map size %dx%d must be positive", ErrInvalidLevel, rec.Width, rec.Height)
	}

	f := NewField(rec.Width, rec.Height)
	f.Name = rec.Name
	f.Hint = rec.Hint
	f.Password = rec.Password
	f.TimeLimit = rec.TimeLimit
	f.Chips = rec.Chips
	f.Conns = append([]Connection(nil), rec.Conns...)

	if len(rec.Data) == 0 {
		return f, nil
	}
	if len(rec.Data) != rec.Width*rec.Height {
		return nil, fmt.Errorf("%w: map data has %d tiles, expected %d",
			ErrInvalidLevel, len(rec.Data), rec.Width*rec.Height)
	}
	for i, idx := range rec.Data {
		if idx < 0 || idx >= len(rec.Legend) {
			return nil, fmt.Errorf("%w: tile %d uses legend index %d, legend has %d entries",
				ErrInvalidLevel, i, idx, len(rec.Legend))
		}
		t := rec.Legend[idx]
		if t >= terrainCount {
			return nil, fmt.Errorf("%w: legend entry %d is not a terrain", ErrInvalidLevel, idx)
		}
		f.Terrain[i] = t
	}
	return f, nil
}

// Snapshot returns the game's current state as a level record, with a
// compacted legend that always starts with Blank and Floor. Loading the
// result reproduces the current terrain and entities.
func (g *Game) Snapshot() Record {
	rec := Record{
		Name:      g.Field.Name,
		Hint:      g.Field.Hint,
		Password:  g.Field.Password,
		Seed:      g.seed,
		TimeLimit: g.Field.TimeLimit,
		Chips:     g.Field.Chips,
		Width:     g.Field.Width,
		Height:    g.Field.Height,
		Data:      make([]int, len(g.Field.Terrain)),
		Legend:    []Terrain{Blank, Floor},
		Conns:     append([]Connection(nil), g.Field.Conns...),
	}

	index := map[Terrain]int{Blank: 0, Floor: 1}
	for i, t := range g.Field.Terrain {
		idx, ok := index[t]
		if !ok {
			idx = len(rec.Legend)
			index[t] = idx
			rec.Legend = append(rec.Legend, t)
		}
		rec.Data[i] = idx
	}

	for _, e := range g.Ents.All() {
		if !e.live() {
			continue
		}
		rec.Spawns = append(rec.Spawns, Spawn{Kind: e.Kind, Pos: e.Pos, Face: e.FaceDir})
	}
	return rec
}
