package sim

import (
	"testing"

	"github.com/vovakirdan/tui-chips/internal/core"
)

func TestArenaHandles(t *testing.T) {
	a := NewArena()

	h1 := a.Create(Entity{Kind: Chip})
	h2 := a.Create(Entity{Kind: Bug})
	if h1 != 1 || h2 != 2 {
		t.Fatalf("handles = %d, %d; expected 1, 2", h1, h2)
	}

	a.Remove(h1)
	if _, ok := a.Get(h1); ok {
		t.Error("Get() after Remove should report absence")
	}
	h3 := a.Create(Entity{Kind: Tank})
	if h3 == h1 || h3 <= h2 {
		t.Errorf("handle %d reused or not monotonic", h3)
	}
	if a.Len() != 2 {
		t.Errorf("Len() = %d, expected 2", a.Len())
	}

	e, ok := a.Get(h2)
	if !ok || e.Kind != Bug {
		t.Errorf("Get(%d) = %+v, %v; expected the Bug", h2, e, ok)
	}
}

func TestArenaPointerStability(t *testing.T) {
	a := NewArena()
	h := a.Create(Entity{Kind: Player})
	p, _ := a.Get(h)

	for i := 0; i < 100; i++ {
		a.Create(Entity{Kind: Chip})
	}
	p.Pos = core.V(4, 4)

	again, _ := a.Get(h)
	if again.Pos != core.V(4, 4) {
		t.Error("pointer obtained before growth no longer refers to the stored entity")
	}
}

func TestArenaReapOrder(t *testing.T) {
	a := NewArena()
	var hs []Handle
	for i := 0; i < 5; i++ {
		hs = append(hs, a.Create(Entity{Kind: Chip, Pos: core.V(i, 0)}))
	}
	for _, i := range []int{3, 0} {
		e, _ := a.Get(hs[i])
		e.Remove = true
	}

	removed := a.Reap()
	if len(removed) != 2 || removed[0] != hs[0] || removed[1] != hs[3] {
		t.Errorf("Reap() = %v, expected [%d %d] in creation order", removed, hs[0], hs[3])
	}

	got := a.Handles()
	expected := []Handle{hs[1], hs[2], hs[4]}
	if len(got) != len(expected) {
		t.Fatalf("Handles() = %v, expected %v", got, expected)
	}
	for i := range expected {
		if got[i] != expected[i] {
			t.Errorf("Handles()[%d] = %d, expected %d", i, got[i], expected[i])
		}
		if e, ok := a.Get(expected[i]); !ok || e.Handle != expected[i] {
			t.Errorf("Get(%d) broken after reap", expected[i])
		}
	}
}

func TestArenaAtAndFindKind(t *testing.T) {
	a := NewArena()
	a.Create(Entity{Kind: Chip, Pos: core.V(1, 1)})
	hBlock := a.Create(Entity{Kind: Block, Pos: core.V(1, 1)})
	a.Create(Entity{Kind: Bug, Pos: core.V(2, 1)})
	hBlock2 := a.Create(Entity{Kind: Block, Pos: core.V(0, 0)})

	at := a.At(core.V(1, 1))
	if len(at) != 2 || at[0].Kind != Chip || at[1].Kind != Block {
		t.Errorf("At() returned %d entities, expected Chip then Block", len(at))
	}

	h, ok := a.FindKind(Block)
	if !ok || h != hBlock {
		t.Errorf("FindKind(Block) = %d, %v; expected first block %d", h, ok, hBlock)
	}

	e, _ := a.Get(hBlock)
	e.Remove = true
	if h, _ := a.FindKind(Block); h != hBlock2 {
		t.Errorf("FindKind() should skip flagged entities, got %d", h)
	}
	if len(a.At(core.V(1, 1))) != 1 {
		t.Error("At() should skip flagged entities")
	}
	if _, ok := a.FindKind(Teeth); ok {
		t.Error("FindKind(Teeth) should report absence")
	}
}
