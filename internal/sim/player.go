package sim

import "github.com/vovakirdan/tui-chips/internal/core"

// IdleTime is how many ticks after its last step the Player stops facing a
// direction.
const IdleTime = 20

// PlayerAction is the Player's visible state.
type PlayerAction uint8

const (
	ActionIdle PlayerAction = iota
	ActionWalk
	ActionPush
	ActionSwim
	ActionDrown
	ActionBurn
	ActionSkate
	ActionSlide
	ActionSuction
	ActionDeath
	ActionWin
)

func (a PlayerAction) String() string {
	switch a {
	case ActionIdle:
		return "Idle"
	case ActionWalk:
		return "Walk"
	case ActionPush:
		return "Push"
	case ActionSwim:
		return "Swim"
	case ActionDrown:
		return "Drown"
	case ActionBurn:
		return "Burn"
	case ActionSkate:
		return "Skate"
	case ActionSlide:
		return "Slide"
	case ActionSuction:
		return "Suction"
	case ActionDeath:
		return "Death"
	case ActionWin:
		return "Win"
	default:
		return "Unknown"
	}
}

// Terminal reports whether the action ends the level.
func (a PlayerAction) Terminal() bool {
	switch a {
	case ActionDrown, ActionBurn, ActionDeath, ActionWin:
		return true
	}
	return false
}

// PlayerState is the per-level state of the controlled avatar.
type PlayerState struct {
	Entity Handle
	Action PlayerAction

	Chips        int
	Keys         [4]int // indexed by KeyColor
	Flippers     bool
	FireBoots    bool
	IceSkates    bool
	SuctionBoots bool

	Steps      int
	ForcedMove bool // the previous move was compelled by a force floor
	InBuf      InputBuffer
}

// setAction changes the Player's action. Terminal actions are sticky and
// entering a loss emits GameOver, entering Win emits GameWin.
func (g *Game) setAction(a PlayerAction, reason string) {
	if g.PS.Action == a || g.PS.Action.Terminal() {
		return
	}
	g.PS.Action = a
	g.emit(Event{Kind: EventPlayerAction, Entity: g.PS.Entity, Action: a})

	switch a {
	case ActionWin:
		g.emit(Event{Kind: EventGameWin})
	case ActionDrown, ActionBurn, ActionDeath:
		g.emit(Event{Kind: EventGameOver, Action: a, Reason: reason})
	}
}

func (g *Game) killPlayer(a PlayerAction, reason string) {
	g.setAction(a, reason)
}

// terrainAction is the action implied by standing on t.
func (g *Game) terrainAction(e *Entity, t Terrain) PlayerAction {
	switch {
	case t == Water:
		return ActionSwim
	case t == Fire && !g.PS.FireBoots:
		return ActionBurn
	case t.IsIce():
		if g.PS.IceSkates {
			return ActionSkate
		}
		return ActionSlide
	case t.IsForce():
		if g.PS.SuctionBoots {
			return ActionSuction
		}
		return ActionSlide
	case e.FaceDir == core.DirNone && e.stepDone(g.Time):
		return ActionIdle
	default:
		return ActionWalk
	}
}

func (g *Game) thinkPlayer(e *Entity) {
	if g.PS.Action.Terminal() {
		return
	}

	terrain := g.Field.Get(e.Pos)
	arrived := e.StepDir

	if e.FaceDir != core.DirNone && g.Time >= e.StepTime+IdleTime {
		e.FaceDir = core.DirNone
		g.emit(Event{Kind: EventEntityFaceDir, Entity: e.Handle, Dir: core.DirNone})
	}

	ready := e.stepDone(g.Time)
	if ready {
		if e.StepDir != core.DirNone {
			switch {
			case terrain == Fire && !g.PS.FireBoots:
				g.killPlayer(ActionBurn, "burned")
				return
			case terrain == Water && !g.PS.Flippers:
				g.killPlayer(ActionDrown, "drowned")
				return
			}
		}
		e.StepDir = core.DirNone
	} else {
		arrived = core.DirNone
	}

	g.setAction(g.terrainAction(e, terrain), "burned")
	if g.PS.Action.Terminal() {
		return
	}

	if terrain == Dirt {
		g.Field.Set(e.Pos, Floor)
	}

	if !ready {
		return
	}
	input := g.PS.InBuf.Read()

	if arrived != core.DirNone {
		switch {
		case terrain == Exit:
			g.setAction(ActionWin, "")
			return
		case terrain == Hint:
			g.emit(Event{Kind: EventPlayerHint, Entity: e.Handle, Pos: e.Pos})
		case terrain.IsButton():
			g.pressTerrain(e)
		case terrain == BearTrap:
			e.Trapped = !g.brownButtonPressed(e.Pos)
		case terrain == Teleport:
			g.teleport(e, arrived)
			g.tryMovePlayer(e, arrived)
			return
		case terrain.IsIce() && !g.PS.IceSkates:
			primary, fallback, _ := iceDeflect(terrain, arrived)
			if !g.tryMovePlayer(e, primary) {
				g.tryMovePlayer(e, fallback)
			}
			return
		}
	}

	if e.Trapped {
		return
	}

	forceDir := core.DirNone
	if !g.PS.SuctionBoots {
		switch {
		case terrain == ForceRandom:
			forceDir = core.Dirs[g.rng.Intn(len(core.Dirs))]
		case terrain.IsForce():
			forceDir = terrain.ForceDir()
		}
	}

	if forceDir != core.DirNone {
		wasForced := g.PS.ForcedMove
		g.PS.ForcedMove = false
		override := core.DirNone
		if wasForced && input.Perpendicular(forceDir) {
			override = input
		}
		if override == core.DirNone {
			g.PS.ForcedMove = true
		} else if g.tryMovePlayer(e, override) {
			return
		}
		g.tryMovePlayer(e, forceDir)
		return
	}
	g.PS.ForcedMove = false

	if input != core.DirNone {
		g.tryMovePlayer(e, input)
	}
}

// tryMovePlayer attempts one Player step. Keys open locks and blue walls are
// probed before terrain legality is checked; then every entity on the
// destination is interacted with in creation order until one blocks.
func (g *Game) tryMovePlayer(e *Entity, dir core.Dir) bool {
	if !dir.Valid() {
		return false
	}
	dest := e.Pos.Step(dir)

	switch t := g.Field.Get(dest); t {
	case BlueLock, RedLock, GreenLock, YellowLock:
		key, _ := t.LockColor()
		if g.PS.Keys[key] > 0 {
			g.Field.Set(dest, Floor)
			if key != KeyGreen {
				g.PS.Keys[key]--
			}
			g.emit(Event{Kind: EventLockRemoved, Key: key, Pos: dest})
		}
	case BlueWall:
		g.Field.Set(dest, Wall)
		g.emit(Event{Kind: EventWallBumped, Pos: dest})
	case BlueFake:
		g.Field.Set(dest, Floor)
		g.emit(Event{Kind: EventWallCleared, Pos: dest})
	case HiddenWall:
		g.Field.Set(dest, Wall)
		g.emit(Event{Kind: EventWallRevealed, Pos: dest})
	}

	ok := g.Field.CanMove(e.Pos, dir, Player.moveFlags())
	pushed := false
	if ok {
		for _, other := range g.Ents.At(dest) {
			if other.Handle == e.Handle || !other.live() {
				continue
			}
			ictx := InteractContext{PushDir: dir}
			g.interact(other, &ictx)
			pushed = pushed || ictx.Pushed
			if ictx.Blocking {
				ok = false
				break
			}
		}
	}

	g.emit(Event{Kind: EventEntityFaceDir, Entity: e.Handle, Dir: dir})
	e.FaceDir = dir
	e.StepTime = g.Time

	if !ok {
		e.StepSpd = BaseSpeed / 2
		return false
	}

	if g.Field.Get(e.Pos) == RecessedWall {
		g.Field.Set(e.Pos, Wall)
		g.emit(Event{Kind: EventRecessedWallRaised, Pos: e.Pos})
	}

	e.StepDir = dir
	e.Pos = dest
	e.StepSpd = BaseSpeed
	if t := g.Field.Get(dest); (t.IsForce() && !g.PS.SuctionBoots) || (t.IsIce() && !g.PS.IceSkates) {
		e.StepSpd = BaseSpeed / 2
	}
	g.PS.Steps++
	g.emit(Event{Kind: EventEntityStep, Entity: e.Handle, Pos: dest, Dir: dir})
	if pushed {
		g.setAction(ActionPush, "")
	}
	return true
}

// teleport moves e along the teleport chain starting at its tile until a
// destination it can leave in dir is found, or the chain returns to the start.
func (g *Game) teleport(e *Entity, dir core.Dir) {
	start := e.Pos
	pos := start
	for range len(g.Field.Conns) + 1 {
		dest, ok := g.Field.ConnDest(pos)
		if !ok {
			break
		}
		pos = dest
		if pos == start || g.Field.CanMove(pos, dir, Player.moveFlags()) {
			break
		}
	}
	e.Pos = pos
	g.emit(Event{Kind: EventEntityTeleport, Entity: e.Handle, Pos: pos})
}
