package sim

import "github.com/vovakirdan/tui-chips/internal/core"

// tryMoveCreature attempts one step for a non-player entity.
func (g *Game) tryMoveCreature(e *Entity, dir core.Dir) bool {
	if e.Speed == 0 || !dir.Valid() {
		return false
	}
	if !g.Field.CanMove(e.Pos, dir, e.Kind.moveFlags()) {
		return false
	}

	dest := e.Pos.Step(dir)
	for _, other := range g.Ents.At(dest) {
		if other.Handle != e.Handle && other.Kind.solid() {
			return false
		}
	}

	e.StepSpd = e.Speed
	if t := g.Field.Get(dest); t.IsForce() || t.IsIce() {
		e.StepSpd = e.Speed / 2
	}
	e.FaceDir = dir
	e.StepDir = dir
	e.StepTime = g.Time
	e.Pos = dest
	g.emit(Event{Kind: EventEntityStep, Entity: e.Handle, Pos: dest, Dir: dir})
	g.emit(Event{Kind: EventEntityFaceDir, Entity: e.Handle, Dir: dir})
	return true
}

// tryDirs attempts each direction in order and stops at the first success.
func (g *Game) tryDirs(e *Entity, dirs ...core.Dir) bool {
	for _, d := range dirs {
		if g.tryMoveCreature(e, d) {
			return true
		}
	}
	return false
}
