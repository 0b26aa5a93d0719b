package sim

import (
	"testing"

	"github.com/vovakirdan/tui-chips/internal/core"
)

var testGlyphs = map[rune]Terrain{
	' ': Blank,
	'.': Floor,
	'#': Wall,
	'~': Water,
	'^': Fire,
	':': Dirt,
	'%': Gravel,
	'_': Ice,
	'E': Exit,
	'?': Hint,
	'b': BlueLock,
	'r': RedLock,
	'G': GreenLock,
	'y': YellowLock,
	'T': Teleport,
	'B': BearTrap,
	'C': CloneMachine,
	'R': RedButton,
	'N': BrownButton,
	'U': BlueButton,
	'g': GreenButton,
	't': ToggleWall,
	'o': ToggleFloor,
	'>': ForceE,
	'<': ForceW,
	'*': ForceRandom,
	'w': BlueWall,
	'f': BlueFake,
	'h': HiddenWall,
	'x': RecessedWall,
}

// record builds a level record from glyph rows.
func record(t *testing.T, rows []string, spawns ...Spawn) Record {
	t.Helper()
	rec := Record{
		Width:  len([]rune(rows[0])),
		Height: len(rows),
		Spawns: spawns,
	}
	index := map[Terrain]int{}
	for y, row := range rows {
		rs := []rune(row)
		if len(rs) != rec.Width {
			t.Fatalf("row %d has width %d, expected %d", y, len(rs), rec.Width)
		}
		for _, r := range rs {
			ter, ok := testGlyphs[r]
			if !ok {
				t.Fatalf("unknown glyph %q", r)
			}
			idx, ok := index[ter]
			if !ok {
				idx = len(rec.Legend)
				index[ter] = idx
				rec.Legend = append(rec.Legend, ter)
			}
			rec.Data = append(rec.Data, idx)
		}
	}
	return rec
}

// newGame loads glyph rows with the given spawns.
func newGame(t *testing.T, rows []string, spawns ...Spawn) *Game {
	t.Helper()
	g, err := Load(record(t, rows, spawns...), core.DefaultConfig())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	return g
}

func sp(k Kind, x, y int) Spawn {
	return Spawn{Kind: k, Pos: core.V(x, y)}
}

func spFacing(k Kind, x, y int, face core.Dir) Spawn {
	return Spawn{Kind: k, Pos: core.V(x, y), Face: face}
}

func hold(d core.Dir) core.Input {
	var in core.Input
	in.Set(d)
	return in
}

// run ticks the game n times with the same input and collects the events.
func run(g *Game, in core.Input, n int) []Event {
	var evs []Event
	for i := 0; i < n; i++ {
		g.Tick(in)
		evs = append(evs, g.Events()...)
	}
	return evs
}

// tap holds a direction for one tick and then releases for n-1 ticks.
func tap(g *Game, d core.Dir, n int) []Event {
	evs := run(g, hold(d), 1)
	return append(evs, run(g, core.Input{}, n-1)...)
}

func countKind(evs []Event, k EventKind) int {
	n := 0
	for _, ev := range evs {
		if ev.Kind == k {
			n++
		}
	}
	return n
}

func entityAt(t *testing.T, g *Game, k Kind) *Entity {
	t.Helper()
	h, ok := g.Ents.FindKind(k)
	if !ok {
		t.Fatalf("no %s in arena", k)
	}
	e, _ := g.Ents.Get(h)
	return e
}
