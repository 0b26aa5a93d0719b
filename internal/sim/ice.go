package sim

import "github.com/vovakirdan/tui-chips/internal/core"

type deflection struct {
	primary, fallback core.Dir
}

const (
	up    = core.DirUp
	left  = core.DirLeft
	down  = core.DirDown
	right = core.DirRight
)

// iceTable is indexed by ice variant (Ice, IceNW, IceNE, IceSW, IceSE) and
// incoming direction (Up, Left, Down, Right). Corner variants are named by
// their walled corner.
var iceTable = [5][4]deflection{
	// Ice
	{{up, down}, {left, right}, {down, up}, {right, left}},
	// IceNW
	{{right, down}, {down, right}, {down, right}, {right, down}},
	// IceNE
	{{left, down}, {left, down}, {down, left}, {down, left}},
	// IceSW
	{{up, right}, {up, right}, {right, up}, {right, up}},
	// IceSE
	{{up, left}, {left, up}, {left, up}, {up, left}},
}

// iceDeflect returns the direction an entity sliding in direction in should
// leave an ice tile t, plus the fallback if the primary is blocked.
func iceDeflect(t Terrain, in core.Dir) (primary, fallback core.Dir, ok bool) {
	if !t.IsIce() || !in.Valid() {
		return core.DirNone, core.DirNone, false
	}
	d := iceTable[t-Ice][in-core.DirUp]
	return d.primary, d.fallback, true
}
