package sim

import "github.com/vovakirdan/tui-chips/internal/core"

// InteractContext carries one Player-initiated interaction. The callee sets
// Blocking to stop the Player and Pushed when it was shoved out of the way.
type InteractContext struct {
	PushDir  core.Dir
	Blocking bool
	Pushed   bool
}

// think runs an entity's per-tick behavior.
func (g *Game) think(e *Entity) {
	switch e.Kind {
	case Player:
		g.thinkPlayer(e)
	case Block:
		g.thinkBlock(e)
	case Bomb:
		g.thinkBomb(e)
	case Bug, FireBall, PinkBall, Tank, Glider, Teeth, Walker, Blob, Paramecium:
		g.thinkMonster(e)
	case Chip, Socket, Flippers, FireBoots, IceSkates, SuctionBoots,
		BlueKey, RedKey, GreenKey, YellowKey, Thief:
		// static
	default:
		panic("sim: think on unknown kind " + e.Kind.String())
	}
}

// interact resolves the Player stepping onto e.
func (g *Game) interact(e *Entity, ictx *InteractContext) {
	switch e.Kind {
	case Chip, Flippers, FireBoots, IceSkates, SuctionBoots,
		BlueKey, RedKey, GreenKey, YellowKey:
		g.interactPickup(e)
	case Socket:
		g.interactSocket(e, ictx)
	case Thief:
		g.interactThief(e)
	case Block:
		g.interactBlock(e, ictx)
	case Player, Bomb, Bug, FireBall, PinkBall, Tank, Glider, Teeth, Walker, Blob, Paramecium:
		// never blocks; contact is resolved by the monster's or bomb's think
	default:
		panic("sim: interact on unknown kind " + e.Kind.String())
	}
}

// spawn creates an entity from a spawn record and reports it.
func (g *Game) spawn(s Spawn) *Entity {
	e := Entity{
		Kind:    s.Kind,
		Pos:     s.Pos,
		Speed:   s.Kind.Speed(),
		FaceDir: s.Face,
	}
	h := g.Ents.Create(e)
	ent, _ := g.Ents.Get(h)
	g.emit(Event{Kind: EventEntityCreated, Entity: h, EntityKind: s.Kind, Pos: s.Pos})
	return ent
}

// pressTerrain fires the button under e, if any.
func (g *Game) pressTerrain(e *Entity) {
	t := g.Field.Get(e.Pos)
	switch t {
	case GreenButton:
		g.Field.ToggleWalls()
	case RedButton:
		g.cloneAt(e.Pos)
	case BrownButton:
		if dest, ok := g.Field.ConnDest(e.Pos); ok {
			for _, trapped := range g.Ents.At(dest) {
				trapped.Trapped = false
			}
		}
	case BlueButton:
		for _, other := range g.Ents.All() {
			if other.Kind == Tank && other.live() {
				other.FaceDir = other.FaceDir.TurnAround()
				g.emit(Event{Kind: EventEntityFaceDir, Entity: other.Handle, Dir: other.FaceDir})
			}
		}
	default:
		return
	}
	g.emit(Event{Kind: EventButtonPressed, Button: t, Pos: e.Pos})
}

// cloneAt copies the first entity standing on the clone machine linked to the
// red button at pos. The clone starts moving in its facing direction.
func (g *Game) cloneAt(pos core.Vec) {
	dest, ok := g.Field.ConnDest(pos)
	if !ok {
		return
	}
	for _, tmpl := range g.Ents.At(dest) {
		if tmpl.Kind == Player {
			continue
		}
		clone := g.spawn(Spawn{Kind: tmpl.Kind, Pos: tmpl.Pos, Face: tmpl.FaceDir})
		clone.StepDir = tmpl.FaceDir
		clone.StepTime = g.Time
		return
	}
}
