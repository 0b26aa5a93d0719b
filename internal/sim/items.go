package sim

import "github.com/vovakirdan/tui-chips/internal/core"

func (g *Game) interactPickup(e *Entity) {
	ps := &g.PS
	switch e.Kind {
	case Chip:
		ps.Chips++
	case Flippers:
		ps.Flippers = true
	case FireBoots:
		ps.FireBoots = true
	case IceSkates:
		ps.IceSkates = true
	case SuctionBoots:
		ps.SuctionBoots = true
	case BlueKey:
		ps.Keys[KeyBlue]++
	case RedKey:
		ps.Keys[KeyRed]++
	case GreenKey:
		ps.Keys[KeyGreen]++
	case YellowKey:
		ps.Keys[KeyYellow]++
	}
	e.Remove = true
	g.emit(Event{Kind: EventItemPickup, Entity: e.Handle, EntityKind: e.Kind, Pos: e.Pos})
}

func (g *Game) interactSocket(e *Entity, ictx *InteractContext) {
	if g.PS.Chips < g.Field.Chips {
		ictx.Blocking = true
		return
	}
	e.Remove = true
	g.emit(Event{Kind: EventSocketFilled, Entity: e.Handle, Pos: e.Pos})
}

func (g *Game) interactThief(e *Entity) {
	g.PS.Flippers = false
	g.PS.FireBoots = false
	g.PS.IceSkates = false
	g.PS.SuctionBoots = false
	g.emit(Event{Kind: EventItemsThief, Entity: e.Handle, Pos: e.Pos})
}

// interactBlock pushes the block one tile in the push direction.
func (g *Game) interactBlock(e *Entity, ictx *InteractContext) {
	dir := ictx.PushDir
	if e.Trapped || g.Field.Get(e.Pos) == Water || !g.blockCanEnter(e, dir) {
		ictx.Blocking = true
		return
	}

	dest := e.Pos.Step(dir)
	e.Pos = dest
	e.FaceDir = dir
	e.StepDir = dir
	e.StepTime = g.Time
	e.StepSpd = e.Speed
	g.emit(Event{Kind: EventEntityStep, Entity: e.Handle, Pos: dest, Dir: dir})

	if g.Field.Get(dest) == BearTrap {
		e.Trapped = !g.brownButtonPressed(dest)
	}
	g.refreshHidden()
	ictx.Pushed = true
}

func (g *Game) blockCanEnter(e *Entity, dir core.Dir) bool {
	if !g.Field.CanMove(e.Pos, dir, Block.moveFlags()) {
		return false
	}
	for _, other := range g.Ents.At(e.Pos.Step(dir)) {
		if other.Kind == Block || other.Kind == Socket {
			return false
		}
	}
	return true
}

// thinkBlock settles a block at the end of its step. A block that lands in
// water fills it with dirt; one that lands on a button presses it.
func (g *Game) thinkBlock(e *Entity) {
	if e.StepDir == core.DirNone || !e.stepDone(g.Time) {
		return
	}
	e.StepDir = core.DirNone
	switch t := g.Field.Get(e.Pos); {
	case t == Water:
		g.Field.Set(e.Pos, Dirt)
		e.Remove = true
	case t.IsButton():
		g.pressTerrain(e)
	}
}

// thinkBomb arms when something arrives on its tile and explodes on the
// following think, taking everything on the tile with it. Entities placed on
// the bomb by the level do not arm it until they move; the Player always does.
// A Player caught in the blast dies.
func (g *Game) thinkBomb(e *Entity) {
	var victims []*Entity
	for _, other := range g.Ents.At(e.Pos) {
		if other.Handle != e.Handle && (other.Kind == Player || other.arrived()) {
			victims = append(victims, other)
		}
	}
	if len(victims) == 0 {
		e.fuse = false
		return
	}
	if !e.fuse {
		e.fuse = true
		return
	}

	for _, v := range victims {
		if v.Kind == Player {
			g.killPlayer(ActionDeath, "blown up")
			continue
		}
		v.Remove = true
	}
	e.Remove = true
	g.emit(Event{Kind: EventBombExplode, Entity: e.Handle, Pos: e.Pos})
}
