package sim

import (
	"math/rand"

	"github.com/vovakirdan/tui-chips/internal/core"
)

// Game is the aggregate root of one running level.
type Game struct {
	Time  int
	PS    PlayerState
	Field *Field
	Ents  *Arena

	input    core.Input
	events   []Event
	rng      *rand.Rand
	seed     int64
	tickRate int
	rec      Record
}

// Events returns the events produced by the most recent Tick (or by Load
// before the first tick). The slice is replaced, not reused, by the next Tick.
func (g *Game) Events() []Event {
	return g.events
}

// Seed returns the RNG seed the game was started with.
func (g *Game) Seed() int64 {
	return g.seed
}

// Input returns the input of the most recent tick.
func (g *Game) Input() core.Input {
	return g.input
}

// Player returns the Player entity, if there is one.
func (g *Game) Player() (*Entity, bool) {
	return g.Ents.Get(g.PS.Entity)
}

// Over reports whether the level has ended, in a win or a loss.
func (g *Game) Over() bool {
	return g.PS.Action.Terminal()
}

// Won reports whether the Player reached the exit.
func (g *Game) Won() bool {
	return g.PS.Action == ActionWin
}

// ChipsLeft returns how many chips are still needed to open sockets.
func (g *Game) ChipsLeft() int {
	return max(0, g.Field.Chips-g.PS.Chips)
}

// TimeLeft returns the remaining whole seconds, or -1 without a time limit.
func (g *Game) TimeLeft() int {
	if g.Field.TimeLimit <= 0 {
		return -1
	}
	left := g.Field.TimeLimit - g.Time/g.tickRate
	return max(0, left)
}

// Tick advances the simulation by one step.
func (g *Game) Tick(in core.Input) {
	g.Time++
	g.events = nil

	for _, d := range core.Dirs {
		g.PS.InBuf.Handle(d, in.Held(d), g.input.Held(d))
	}

	g.refreshTraps()

	for _, h := range g.Ents.Handles() {
		if h == g.PS.Entity {
			continue
		}
		e, ok := g.Ents.Get(h)
		if !ok || !e.live() {
			continue
		}
		g.think(e)
	}
	if p, ok := g.Player(); ok && p.live() {
		g.think(p)
	}

	g.terrainPass()

	g.reapRemoved()
	g.input = in
}

// terrainPass runs the tile-driven checks after every entity has moved.
func (g *Game) terrainPass() {
	g.refreshHidden()

	if g.Field.TimeLimit > 0 && !g.Over() && g.Time >= g.Field.TimeLimit*g.tickRate {
		g.killPlayer(ActionDeath, "time up")
	}
}

// reapRemoved drops flagged entities and reports each removal.
func (g *Game) reapRemoved() {
	var gone []*Entity
	for _, e := range g.Ents.All() {
		if e.Remove {
			gone = append(gone, e)
		}
	}
	if len(gone) == 0 {
		return
	}
	g.Ents.Reap()
	for _, e := range gone {
		g.emit(Event{Kind: EventEntityRemoved, Entity: e.Handle, EntityKind: e.Kind, Pos: e.Pos})
	}
}

// refreshTraps updates the trapped flag of everything on a bear trap: an
// entity is held unless a linked brown button is pressed.
func (g *Game) refreshTraps() {
	for _, e := range g.Ents.All() {
		if !e.live() || g.Field.Get(e.Pos) != BearTrap {
			continue
		}
		e.Trapped = !g.brownButtonPressed(e.Pos)
	}
}

// brownButtonPressed reports whether any brown button connected to the trap
// at pos has an entity standing on it.
func (g *Game) brownButtonPressed(pos core.Vec) bool {
	for _, c := range g.Field.Conns {
		if c.Dest != pos || g.Field.Get(c.Src) != BrownButton {
			continue
		}
		if len(g.Ents.At(c.Src)) > 0 {
			return true
		}
	}
	return false
}

// refreshHidden hides entities covered by a block and clone-machine templates.
func (g *Game) refreshHidden() {
	blocks := make(map[core.Vec]bool)
	for _, e := range g.Ents.All() {
		if e.Kind == Block && e.live() {
			blocks[e.Pos] = true
		}
	}
	for _, e := range g.Ents.All() {
		if !e.live() || e.Kind == Block || e.Kind == Player {
			continue
		}
		hidden := blocks[e.Pos] || (g.Field.Get(e.Pos) == CloneMachine && e.StepDir == core.DirNone)
		if hidden != e.Hidden {
			e.Hidden = hidden
			g.emit(Event{Kind: EventEntityHidden, Entity: e.Handle, Hidden: hidden})
		}
	}
}
