package sim

import (
	"fmt"

	"github.com/vovakirdan/tui-chips/internal/core"
)

// EventKind identifies a state change reported to observers.
type EventKind uint8

const (
	EventEntityCreated EventKind = iota
	EventEntityRemoved
	EventEntityStep
	EventEntityFaceDir
	EventEntityTeleport
	EventEntityHidden
	EventPlayerAction
	EventPlayerHint
	EventItemPickup
	EventItemsThief
	EventSocketFilled
	EventLockRemoved
	EventWallBumped
	EventWallCleared
	EventWallRevealed
	EventRecessedWallRaised
	EventButtonPressed
	EventBombExplode
	EventGameWin
	EventGameOver
)

func (k EventKind) String() string {
	switch k {
	case EventEntityCreated:
		return "EntityCreated"
	case EventEntityRemoved:
		return "EntityRemoved"
	case EventEntityStep:
		return "EntityStep"
	case EventEntityFaceDir:
		return "EntityFaceDir"
	case EventEntityTeleport:
		return "EntityTeleport"
	case EventEntityHidden:
		return "EntityHidden"
	case EventPlayerAction:
		return "PlayerAction"
	case EventPlayerHint:
		return "PlayerHint"
	case EventItemPickup:
		return "ItemPickup"
	case EventItemsThief:
		return "ItemsThief"
	case EventSocketFilled:
		return "SocketFilled"
	case EventLockRemoved:
		return "LockRemoved"
	case EventWallBumped:
		return "WallBumped"
	case EventWallCleared:
		return "WallCleared"
	case EventWallRevealed:
		return "WallRevealed"
	case EventRecessedWallRaised:
		return "RecessedWallRaised"
	case EventButtonPressed:
		return "ButtonPressed"
	case EventBombExplode:
		return "BombExplode"
	case EventGameWin:
		return "GameWin"
	case EventGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// Event is one state change that happened during a tick. Only the fields
// relevant to Kind are set.
type Event struct {
	Kind       EventKind
	Entity     Handle
	EntityKind Kind // kind of Entity, for created/removed/pickup
	Pos        core.Vec
	Dir        core.Dir
	Key        KeyColor
	Button     Terrain
	Action     PlayerAction
	Hidden     bool
	Reason     string
}

// String renders the event on one stable line.
func (e Event) String() string {
	switch e.Kind {
	case EventEntityCreated, EventEntityRemoved:
		return fmt.Sprintf("%s #%d %s %v", e.Kind, e.Entity, e.EntityKind, e.Pos)
	case EventEntityStep:
		return fmt.Sprintf("%s #%d %v %s", e.Kind, e.Entity, e.Pos, e.Dir)
	case EventEntityFaceDir:
		return fmt.Sprintf("%s #%d %s", e.Kind, e.Entity, e.Dir)
	case EventEntityTeleport:
		return fmt.Sprintf("%s #%d %v", e.Kind, e.Entity, e.Pos)
	case EventEntityHidden:
		return fmt.Sprintf("%s #%d %t", e.Kind, e.Entity, e.Hidden)
	case EventPlayerAction:
		return fmt.Sprintf("%s #%d %s", e.Kind, e.Entity, e.Action)
	case EventPlayerHint, EventWallBumped, EventWallCleared, EventWallRevealed,
		EventRecessedWallRaised, EventBombExplode:
		return fmt.Sprintf("%s %v", e.Kind, e.Pos)
	case EventItemPickup:
		return fmt.Sprintf("%s #%d %s %v", e.Kind, e.Entity, e.EntityKind, e.Pos)
	case EventItemsThief, EventSocketFilled:
		return fmt.Sprintf("%s #%d %v", e.Kind, e.Entity, e.Pos)
	case EventLockRemoved:
		return fmt.Sprintf("%s %s %v", e.Kind, e.Key, e.Pos)
	case EventButtonPressed:
		return fmt.Sprintf("%s %s %v", e.Kind, e.Button, e.Pos)
	case EventGameWin:
		return e.Kind.String()
	case EventGameOver:
		return fmt.Sprintf("%s %s", e.Kind, e.Reason)
	default:
		return e.Kind.String()
	}
}

func (g *Game) emit(ev Event) {
	g.events = append(g.events, ev)
}
