package sim

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"

	"github.com/vovakirdan/tui-chips/internal/core"
)

// ReplayResult summarizes a headless run.
type ReplayResult struct {
	Ticks  int
	Action PlayerAction
	Chips  int
	Steps  int
	Hash   string // sha256 of the event log
}

// Replay runs the game for ticks ticks, feeding inputs[i] on tick i and no
// input once they run out. ticks <= 0 means len(inputs). The run stops early
// once the level ends. Every event is written to w as "<time> <event>", the
// same lines the hash covers; w may be nil.
func (g *Game) Replay(inputs []core.Input, ticks int, w io.Writer) ReplayResult {
	if ticks <= 0 {
		ticks = len(inputs)
	}
	h := sha256.New()
	out := io.Writer(h)
	if w != nil {
		out = io.MultiWriter(h, w)
	}

	for i := range ticks {
		if g.Over() {
			break
		}
		var in core.Input
		if i < len(inputs) {
			in = inputs[i]
		}
		g.Tick(in)
		for _, ev := range g.Events() {
			fmt.Fprintf(out, "%d %s\n", g.Time, ev)
		}
	}

	return ReplayResult{
		Ticks:  g.Time,
		Action: g.PS.Action,
		Chips:  g.PS.Chips,
		Steps:  g.PS.Steps,
		Hash:   hex.EncodeToString(h.Sum(nil)),
	}
}
