package sim

import "github.com/vovakirdan/tui-chips/internal/core"

// thinkMonster runs the shared monster prologue and then the kind's
// movement policy.
func (g *Game) thinkMonster(e *Entity) {
	if p, ok := g.Player(); ok && p.Pos == e.Pos && !g.Over() {
		g.killPlayer(ActionDeath, "killed by "+e.Kind.String())
	}

	if !e.stepDone(g.Time) {
		return
	}
	if e.StepDir != core.DirNone {
		e.StepDir = core.DirNone
		switch t := g.Field.Get(e.Pos); {
		case t == Water && e.Kind == FireBall:
			e.Remove = true
			return
		case t == BearTrap:
			e.Trapped = !g.brownButtonPressed(e.Pos)
		case t.IsButton():
			g.pressTerrain(e)
		}
	}

	if e.Trapped || e.Hidden {
		return
	}

	face := e.FaceDir
	switch e.Kind {
	case Bug:
		g.tryDirs(e, face.TurnLeft(), face, face.TurnRight(), face.TurnAround())
	case Paramecium:
		g.tryDirs(e, face.TurnRight(), face, face.TurnLeft(), face.TurnAround())
	case Glider:
		g.tryDirs(e, face, face.TurnLeft(), face.TurnRight(), face.TurnAround())
	case FireBall:
		g.tryDirs(e, face, face.TurnRight(), face.TurnLeft(), face.TurnAround())
	case Walker, PinkBall:
		g.tryDirs(e, face, face.TurnAround())
	case Tank:
		g.tryMoveCreature(e, face)
	case Teeth:
		g.chase(e)
	case Blob:
		g.tryMoveCreature(e, core.Dirs[g.rng.Intn(len(core.Dirs))])
	}
}

// chase steps Teeth toward the Player along the axis with the larger
// distance first. When both steps fail it turns to face the Player.
func (g *Game) chase(e *Entity) {
	p, ok := g.Player()
	if !ok {
		return
	}
	first, second := chaseDirs(p.Pos.Sub(e.Pos))
	if first == core.DirNone {
		return
	}
	if g.tryDirs(e, first, second) {
		return
	}
	if e.FaceDir != first {
		e.FaceDir = first
		g.emit(Event{Kind: EventEntityFaceDir, Entity: e.Handle, Dir: first})
	}
}

// chaseDirs picks the primary and fallback directions along offset d. Ties
// prefer the vertical axis; with a zero component both directions are equal.
func chaseDirs(d core.Vec) (first, second core.Dir) {
	horiz, vert := core.DirNone, core.DirNone
	switch {
	case d.X > 0:
		horiz = core.DirRight
	case d.X < 0:
		horiz = core.DirLeft
	}
	switch {
	case d.Y > 0:
		vert = core.DirDown
	case d.Y < 0:
		vert = core.DirUp
	}

	switch {
	case horiz == core.DirNone:
		return vert, vert
	case vert == core.DirNone:
		return horiz, horiz
	case core.Abs(d.Y) >= core.Abs(d.X):
		return vert, horiz
	default:
		return horiz, vert
	}
}
