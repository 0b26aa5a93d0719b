package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-chips/internal/core"
	"github.com/vovakirdan/tui-chips/internal/sim"
	"github.com/vovakirdan/tui-chips/internal/sim/levels"
	"github.com/vovakirdan/tui-chips/internal/sim/levels/formats"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name    string
		msg     tea.KeyMsg
		wantDir core.Dir
		wantCmd Command
	}{
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, core.DirUp, CommandNone},
		{"w", runeKey('w'), core.DirUp, CommandNone},
		{"a", runeKey('a'), core.DirLeft, CommandNone},
		{"arrow down", tea.KeyMsg{Type: tea.KeyDown}, core.DirDown, CommandNone},
		{"l", runeKey('l'), core.DirRight, CommandNone},
		{"r", runeKey('r'), core.DirNone, CommandRestart},
		{"p", runeKey('p'), core.DirNone, CommandPause},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.DirNone, CommandPause},
		{"q", runeKey('q'), core.DirNone, CommandQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.DirNone, CommandQuit},
		{"x", runeKey('x'), core.DirNone, CommandNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir, cmd := km.MapKey(tt.msg)
			if dir != tt.wantDir || cmd != tt.wantCmd {
				t.Errorf("MapKey(%s) = %v, %v, expected %v, %v", tt.msg, dir, cmd, tt.wantDir, tt.wantCmd)
			}
		})
	}
}

func TestHeldInput(t *testing.T) {
	h := NewHeldInput(3)

	if !h.Next().Empty() {
		t.Error("nothing pressed should give empty input")
	}

	h.Press(core.DirLeft)
	for i := range 3 {
		if in := h.Next(); !in.Held(core.DirLeft) {
			t.Errorf("tick %d: Left should still be held", i)
		}
	}
	if !h.Next().Empty() {
		t.Error("Left should be released after the hold window")
	}

	h.Press(core.DirUp)
	h.Press(core.DirRight)
	in := h.Next()
	if in.Held(core.DirUp) || !in.Held(core.DirRight) {
		t.Errorf("Next() = %v, expected only the latest direction", in)
	}

	h.Release()
	if !h.Next().Empty() {
		t.Error("Release() should drop the held direction")
	}

	h.Press(core.DirNone)
	if !h.Next().Empty() {
		t.Error("pressing DirNone should hold nothing")
	}
}

func TestHeldInputMinimumHold(t *testing.T) {
	h := NewHeldInput(0)
	h.Press(core.DirDown)
	if !h.Next().Held(core.DirDown) {
		t.Error("a press should last at least one tick")
	}
	if !h.Next().Empty() {
		t.Error("expected release after one tick")
	}
}

func testLevel() levels.Level {
	return levels.Level{Level: formats.Level{
		ID:   "t",
		Name: "Test",
		Hint: "go right",
		Map:  formats.Map{Rows: []string{"..?E"}},
		Entities: []formats.Entity{
			{Kind: "Player", Pos: [2]int{0, 0}},
		},
	}}
}

func TestModelMovesAndWins(t *testing.T) {
	m, err := NewModel(testLevel(), Options{HoldTicks: 100})
	if err != nil {
		t.Fatalf("NewModel() error = %v", err)
	}

	next, _ := m.Update(runeKey('d'))
	m = next.(Model)
	next, _ = m.Update(TickMsg{})
	m = next.(Model)

	p, ok := m.Game().Player()
	if !ok || p.Pos != core.V(1, 0) {
		t.Fatalf("Player() = %+v, expected to step right on the first tick", p)
	}

	for range 60 {
		next, _ = m.Update(TickMsg{})
		m = next.(Model)
	}
	if !m.Game().Won() {
		t.Fatalf("Won() = false, action %v", m.Game().PS.Action)
	}
	if !strings.Contains(m.status, "Level complete") {
		t.Errorf("status = %q", m.status)
	}

	time := m.Game().Time
	next, _ = m.Update(TickMsg{})
	m = next.(Model)
	if m.Game().Time != time {
		t.Error("a finished game should not keep ticking")
	}
}

func TestModelPauseAndRestart(t *testing.T) {
	m, err := NewModel(testLevel(), Options{HoldTicks: 100})
	if err != nil {
		t.Fatal(err)
	}

	next, _ := m.Update(runeKey('p'))
	m = next.(Model)
	next, _ = m.Update(TickMsg{})
	m = next.(Model)
	if m.Game().Time != 0 {
		t.Errorf("Time = %d, expected no ticks while paused", m.Game().Time)
	}

	next, _ = m.Update(runeKey('p'))
	m = next.(Model)
	next, _ = m.Update(runeKey('d'))
	m = next.(Model)
	for range 5 {
		next, _ = m.Update(TickMsg{})
		m = next.(Model)
	}
	if m.Game().Time != 5 {
		t.Errorf("Time = %d, expected 5", m.Game().Time)
	}

	next, _ = m.Update(runeKey('r'))
	m = next.(Model)
	p, _ := m.Game().Player()
	if m.Game().Time != 0 || p.Pos != core.V(0, 0) {
		t.Errorf("restart left Time=%d pos=%v", m.Game().Time, p.Pos)
	}
}

func TestModelQuit(t *testing.T) {
	m, err := NewModel(testLevel(), Options{})
	if err != nil {
		t.Fatal(err)
	}
	next, cmd := m.Update(runeKey('q'))
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if v := next.(Model).View(); v != "" {
		t.Errorf("View() after quit = %q, expected empty", v)
	}
}

func TestNewModelInvalidLevel(t *testing.T) {
	lvl := levels.Level{Level: formats.Level{ID: "bad"}}
	if _, err := NewModel(lvl, Options{}); err == nil {
		t.Error("NewModel() with an empty map should fail")
	}
}

func TestStatusFor(t *testing.T) {
	m, err := NewModel(testLevel(), Options{})
	if err != nil {
		t.Fatal(err)
	}
	g := m.Game()

	tests := []struct {
		ev   sim.Event
		want string
	}{
		{sim.Event{Kind: sim.EventPlayerHint}, "Hint: go right"},
		{sim.Event{Kind: sim.EventItemPickup, EntityKind: sim.RedKey}, "Picked up RedKey"},
		{sim.Event{Kind: sim.EventLockRemoved, Key: sim.KeyGreen}, "Green door unlocked"},
		{sim.Event{Kind: sim.EventGameOver, Reason: "drowned"}, "Game over: drowned. Press r to restart"},
		{sim.Event{Kind: sim.EventEntityStep}, ""},
	}

	for _, tt := range tests {
		if got := statusFor(g, tt.ev); got != tt.want {
			t.Errorf("statusFor(%s) = %q, expected %q", tt.ev.Kind, got, tt.want)
		}
	}
}

func TestDrawBoard(t *testing.T) {
	m, err := NewModel(testLevel(), Options{})
	if err != nil {
		t.Fatal(err)
	}
	g := m.Game()

	s := core.NewScreen(6, 3)
	view := Viewport(g, s.Width(), s.Height())
	if view.W != 4 || view.H != 1 {
		t.Fatalf("Viewport() = %+v, expected the whole 4x1 field", view)
	}
	DrawBoard(s, g, view, 1, 1)

	if got := s.GetCell(1, 1); got.Rune != kindGlyphs[sim.Player].Rune {
		t.Errorf("player cell = %q, expected %q", got.Rune, kindGlyphs[sim.Player].Rune)
	}
	if got := s.Get(4, 1); got != TerrainGlyph(sim.Exit).Rune {
		t.Errorf("exit cell = %q", got)
	}
	if got := s.Get(0, 0); got != ' ' {
		t.Errorf("cell outside the board = %q, expected blank", got)
	}
}

func TestViewportFollowsPlayer(t *testing.T) {
	lvl := levels.Level{Level: formats.Level{
		ID:       "wide",
		Map:      formats.Map{Width: 30, Height: 1},
		Entities: []formats.Entity{{Kind: "Player", Pos: [2]int{25, 0}}},
	}}
	g, err := lvl.NewGame(core.DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	view := Viewport(g, 10, 5)
	if view.X != 20 || view.W != 10 || view.H != 1 {
		t.Errorf("Viewport() = %+v, expected x=20 w=10 h=1", view)
	}
	if !view.Contains(core.V(25, 0)) {
		t.Error("viewport should contain the player")
	}
}

func TestRenderScreenPlainText(t *testing.T) {
	s := core.NewScreen(3, 2)
	s.DrawText(0, 0, "abc")
	s.SetCell(1, 1, '@', core.ColorBrightWhite)

	out := RenderScreen(s)
	if !strings.Contains(out, "abc") || !strings.Contains(out, "@") {
		t.Errorf("RenderScreen() = %q", out)
	}
	if strings.Count(out, "\n") != 1 {
		t.Errorf("RenderScreen() should have one newline per row break, got %q", out)
	}
}

func TestDrawBanner(t *testing.T) {
	s := core.NewScreen(20, 6)
	s.Set(15, 2, 'x')

	DrawBanner(s, "PAUSED", core.ColorBrightYellow, "p to resume")

	if s.Get(2, 1) != '┌' || s.Get(16, 1) != '┐' || s.Get(2, 4) != '└' {
		t.Errorf("box corners = %q %q %q", s.Get(2, 1), s.Get(16, 1), s.Get(2, 4))
	}
	if got := s.GetCell(4, 2); got.Rune != 'P' || got.Color != core.ColorBrightYellow {
		t.Errorf("title cell = %+v, expected 'P' in bright yellow", got)
	}
	if got := s.GetCell(4, 3); got.Rune != 'p' || got.Color != core.ColorDefault {
		t.Errorf("subtitle cell = %+v, expected uncolored 'p'", got)
	}
	if s.Get(15, 2) != ' ' {
		t.Errorf("banner interior = %q, expected cleared", s.Get(15, 2))
	}
}

func TestViewShowsPauseBanner(t *testing.T) {
	m, err := NewModel(testLevel(), Options{})
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(m.View(), "PAUSED") {
		t.Error("View() shows the pause banner before pausing")
	}

	next, _ := m.Update(runeKey('p'))
	m = next.(Model)
	if !strings.Contains(m.View(), "PAUSED") {
		t.Error("View() should show the pause banner while paused")
	}
}
