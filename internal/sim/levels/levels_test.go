package levels

import (
	"errors"
	"path/filepath"
	"reflect"
	"runtime"
	"testing"

	"github.com/vovakirdan/tui-chips/internal/core"
	"github.com/vovakirdan/tui-chips/internal/sim"
	"github.com/vovakirdan/tui-chips/internal/sim/levels/formats"
)

// getTestdataPath returns path to testdata/levels.
func getTestdataPath() string {
	_, filename, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(filename), "testdata", "levels")
}

func TestLoaderLoadAll(t *testing.T) {
	loader := NewLoader(getTestdataPath(), nil)

	lvls, err := loader.LoadAll()
	if err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}

	var ids []string
	for _, l := range lvls {
		ids = append(ids, l.ID)
	}
	expected := []string{"lesson1", "lesson2", "unnamed"}
	if !reflect.DeepEqual(ids, expected) {
		t.Errorf("LoadAll() ids = %v, expected %v", ids, expected)
	}
}

func TestLoaderLoadByID(t *testing.T) {
	loader := NewLoader(getTestdataPath(), nil)

	lvl, err := loader.LoadByID("lesson1")
	if err != nil {
		t.Fatalf("LoadByID failed: %v", err)
	}
	if lvl.Name != "Lesson 1" || lvl.Chips != 2 || lvl.Time != 100 {
		t.Errorf("header = %q chips=%d time=%d", lvl.Name, lvl.Chips, lvl.Time)
	}
	if filepath.Base(lvl.FilePath) != "lesson1.yaml" {
		t.Errorf("FilePath = %q", lvl.FilePath)
	}

	if _, err := loader.LoadByID("broken"); err == nil {
		t.Error("LoadByID() of an invalid level should fail")
	}
}

func TestLoaderListIDs(t *testing.T) {
	ids, err := NewLoader(getTestdataPath(), nil).ListIDs()
	if err != nil {
		t.Fatalf("ListIDs failed: %v", err)
	}
	if len(ids) != 3 {
		t.Errorf("ListIDs() = %v, expected 3 ids", ids)
	}
}

func TestLoaderMissingRoot(t *testing.T) {
	if _, err := NewLoader(filepath.Join(t.TempDir(), "nope"), nil).LoadAll(); err == nil {
		t.Error("LoadAll() on a missing directory should fail")
	}
}

func TestLoadFileIDFromName(t *testing.T) {
	lvl, err := NewLoader("", nil).LoadFile(filepath.Join(getTestdataPath(), "extra", "unnamed.yml"))
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if lvl.ID != "unnamed" {
		t.Errorf("ID = %q, expected unnamed", lvl.ID)
	}
}

func TestRecordFromRows(t *testing.T) {
	lvl, err := NewLoader(getTestdataPath(), nil).LoadByID("lesson1")
	if err != nil {
		t.Fatal(err)
	}
	rec, err := lvl.Record()
	if err != nil {
		t.Fatalf("Record() error = %v", err)
	}

	if rec.Width != 7 || rec.Height != 5 {
		t.Errorf("size = %dx%d, expected 7x5", rec.Width, rec.Height)
	}
	legend := []sim.Terrain{sim.Wall, sim.Floor, sim.Exit}
	if !reflect.DeepEqual(rec.Legend, legend) {
		t.Errorf("Legend = %v, expected %v", rec.Legend, legend)
	}
	if len(rec.Data) != 35 || rec.Data[2*7+3] != 2 {
		t.Errorf("Data = %v", rec.Data)
	}
	if len(rec.Spawns) != 4 || rec.Spawns[3].Kind != sim.Bug || rec.Spawns[3].Face != core.DirRight {
		t.Errorf("Spawns = %+v", rec.Spawns)
	}
}

func TestRecordGlyphOverride(t *testing.T) {
	lvl, err := NewLoader("", nil).LoadFile(filepath.Join(getTestdataPath(), "extra", "unnamed.yml"))
	if err != nil {
		t.Fatal(err)
	}
	g, err := lvl.NewGame(core.DefaultConfig())
	if err != nil {
		t.Fatalf("NewGame() error = %v", err)
	}
	if got := g.Field.Get(core.V(0, 0)); got != sim.Gravel {
		t.Errorf("tile (0,0) = %v, expected Gravel", got)
	}
	if got := g.Field.Get(core.V(2, 1)); got != sim.Exit {
		t.Errorf("tile (2,1) = %v, expected Exit", got)
	}
}

func TestLegendLevelTeleport(t *testing.T) {
	lvl, err := NewLoader(getTestdataPath(), nil).LoadByID("lesson2")
	if err != nil {
		t.Fatal(err)
	}
	g, err := lvl.NewGame(core.DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	if len(g.Field.Conns) != 1 || g.Field.Conns[0].Dest != core.V(2, 1) {
		t.Errorf("Conns = %+v", g.Field.Conns)
	}
	if p, ok := g.Player(); !ok || p.Pos != core.V(1, 1) {
		t.Errorf("Player() = %+v, %v", p, ok)
	}
}

func TestRecordErrors(t *testing.T) {
	tests := []struct {
		name string
		lvl  formats.Level
	}{
		{"rows and data", formats.Level{Map: formats.Map{Rows: []string{".."}, Data: []int{0, 0}, Legend: []string{"Floor"}}}},
		{"unknown glyph", formats.Level{Map: formats.Map{Rows: []string{".Q"}}}},
		{"ragged rows", formats.Level{Map: formats.Map{Rows: []string{"...", ".."}}}},
		{"height mismatch", formats.Level{Map: formats.Map{Height: 3, Rows: []string{"..", ".."}}}},
		{"long glyph key", formats.Level{Map: formats.Map{Rows: []string{".."}, Glyphs: map[string]string{"ab": "Wall"}}}},
		{"bad glyph terrain", formats.Level{Map: formats.Map{Rows: []string{".."}, Glyphs: map[string]string{"@": "Lava"}}}},
		{"bad legend", formats.Level{Map: formats.Map{Width: 1, Height: 1, Data: []int{0}, Legend: []string{"Lava"}}}},
		{"bad kind", formats.Level{Map: formats.Map{Rows: []string{".."}}, Entities: []formats.Entity{{Kind: "Dragon"}}}},
		{"bad face", formats.Level{Map: formats.Map{Rows: []string{".."}}, Entities: []formats.Entity{{Kind: "Bug", Face: "sideways"}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := Level{Level: tt.lvl}
			_, err := l.Record()
			if !errors.Is(err, ErrInvalidLevel) {
				t.Errorf("Record() error = %v, expected ErrInvalidLevel", err)
			}
		})
	}
}

func TestValidateLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		lvl  formats.Level
	}{
		{"no size", formats.Level{}},
		{"out of bounds", formats.Level{Map: formats.Map{Rows: []string{".."}}, Entities: []formats.Entity{{Kind: "Player", Pos: [2]int{5, 0}}}}},
		{"short data", formats.Level{Map: formats.Map{Width: 2, Height: 2, Data: []int{0}, Legend: []string{"Floor"}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := Level{Level: tt.lvl}
			if err := l.Validate(); !errors.Is(err, ErrInvalidLevel) {
				t.Errorf("Validate() error = %v, expected ErrInvalidLevel", err)
			}
		})
	}
}

func TestExportRoundTrip(t *testing.T) {
	lvl, err := NewLoader(getTestdataPath(), nil).LoadByID("lesson1")
	if err != nil {
		t.Fatal(err)
	}
	g, err := lvl.NewGame(core.DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	before := g.Snapshot()

	for _, ext := range []string{".yaml", ".json"} {
		out := Export(g, "copy")
		data, err := formats.Encode(out.Level, ext)
		if err != nil {
			t.Fatalf("Encode(%s) error = %v", ext, err)
		}
		back, err := ParseBytes(data, ext, "")
		if err != nil {
			t.Fatalf("ParseBytes(%s) error = %v", ext, err)
		}
		if back.ID != "copy" || back.Map.Legend[0] != "Blank" || back.Map.Legend[1] != "Floor" {
			t.Errorf("%s export header = %q %v", ext, back.ID, back.Map.Legend)
		}
		g2, err := back.NewGame(core.DefaultConfig())
		if err != nil {
			t.Fatalf("%s NewGame() error = %v", ext, err)
		}
		if after := g2.Snapshot(); !reflect.DeepEqual(before, after) {
			t.Errorf("%s round trip changed the level:\n%+v\n%+v", ext, before, after)
		}
	}
}
