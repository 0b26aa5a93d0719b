package sim

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-chips/internal/core"
)

// BaseSpeed is the step duration, in ticks, of a normal-speed entity.
const BaseSpeed = 12

// Handle identifies an entity. Handles are never reused; 0 means "none".
type Handle uint32

// Kind is the closed set of entity kinds.
type Kind uint8

const (
	Player Kind = iota
	Chip
	Socket
	Block
	Flippers
	FireBoots
	IceSkates
	SuctionBoots
	BlueKey
	RedKey
	GreenKey
	YellowKey
	Thief
	Bomb
	Bug
	FireBall
	PinkBall
	Tank
	Glider
	Teeth
	Walker
	Blob
	Paramecium

	kindCount
)

var kindNames = [kindCount]string{
	Player:       "Player",
	Chip:         "Chip",
	Socket:       "Socket",
	Block:        "Block",
	Flippers:     "Flippers",
	FireBoots:    "FireBoots",
	IceSkates:    "IceSkates",
	SuctionBoots: "SuctionBoots",
	BlueKey:      "BlueKey",
	RedKey:       "RedKey",
	GreenKey:     "GreenKey",
	YellowKey:    "YellowKey",
	Thief:        "Thief",
	Bomb:         "Bomb",
	Bug:          "Bug",
	FireBall:     "FireBall",
	PinkBall:     "PinkBall",
	Tank:         "Tank",
	Glider:       "Glider",
	Teeth:        "Teeth",
	Walker:       "Walker",
	Blob:         "Blob",
	Paramecium:   "Paramecium",
}

var kindByName = func() map[string]Kind {
	m := make(map[string]Kind, kindCount)
	for k, name := range kindNames {
		m[strings.ToLower(name)] = Kind(k)
	}
	return m
}()

func (k Kind) String() string {
	if k < kindCount {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// ParseKind parses an entity kind name (case-insensitive).
func ParseKind(name string) (Kind, error) {
	k, ok := kindByName[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, fmt.Errorf("%w: unknown entity kind %q", ErrInvalidLevel, name)
	}
	return k, nil
}

// Kinds returns every kind in declaration order.
func Kinds() []Kind {
	out := make([]Kind, kindCount)
	for i := range out {
		out[i] = Kind(i)
	}
	return out
}

// Speed returns the base step duration of a kind. Zero means immobile.
func (k Kind) Speed() int {
	switch k {
	case Teeth, Blob:
		return BaseSpeed * 2
	case Chip, Socket, Flippers, FireBoots, IceSkates, SuctionBoots,
		BlueKey, RedKey, GreenKey, YellowKey, Thief, Bomb:
		return 0
	default:
		return BaseSpeed
	}
}

// IsMonster reports whether the kind kills the Player on contact.
func (k Kind) IsMonster() bool {
	switch k {
	case Bug, FireBall, PinkBall, Tank, Glider, Teeth, Walker, Blob, Paramecium:
		return true
	}
	return false
}

// IsPickup reports whether the kind is collected by the Player on entry.
func (k Kind) IsPickup() bool {
	switch k {
	case Chip, Flippers, FireBoots, IceSkates, SuctionBoots,
		BlueKey, RedKey, GreenKey, YellowKey:
		return true
	}
	return false
}

// solid reports whether a creature may not step onto an entity of this kind.
func (k Kind) solid() bool {
	switch k {
	case Player, Bomb:
		return false
	default:
		return true
	}
}

// moveFlags returns the terrain passage flags a creature of this kind has.
func (k Kind) moveFlags() MoveFlags {
	switch k {
	case Player:
		return MoveFlags{Gravel: true, Fire: true, Dirt: true, Exit: true}
	case Block:
		return MoveFlags{Fire: true, Dirt: true}
	case FireBall:
		return MoveFlags{Fire: true}
	default:
		return MoveFlags{}
	}
}

// Entity is one object on the grid.
type Entity struct {
	Handle Handle
	Kind   Kind
	Pos    core.Vec
	Speed  int // base step duration; 0 = immobile

	FaceDir  core.Dir
	StepDir  core.Dir // direction of the step in progress, DirNone if none
	StepSpd  int      // duration of the current step
	StepTime int      // tick the current step started

	Trapped bool
	Hidden  bool
	Remove  bool

	fuse bool // bomb armed by contact
}

// Spawn describes an entity to create.
type Spawn struct {
	Kind Kind
	Pos  core.Vec
	Face core.Dir
}

// arrived reports whether the entity has stepped since it was created.
// Steps start at tick 1 or later, so a zero StepTime means it never moved.
func (e *Entity) arrived() bool {
	return e.StepTime > 0 || e.StepDir != core.DirNone
}

// stepDone reports whether the entity's current step has elapsed at time t.
func (e *Entity) stepDone(t int) bool {
	return t >= e.StepTime+e.StepSpd
}

// live reports whether the entity takes part in the simulation.
func (e *Entity) live() bool {
	return !e.Remove
}
