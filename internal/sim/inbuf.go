package sim

import "github.com/vovakirdan/tui-chips/internal/core"

const inputSlots = 4

type bufferedMove struct {
	dir  core.Dir
	seen bool
}

// InputBuffer queues directional presses between player steps so a tap
// shorter than a step is not lost, while a held key keeps repeating.
//
// New presses queue behind presses not yet read and ahead of moves that have
// already been read. A read move stays at the front until its key is
// released.
type InputBuffer struct {
	moves  [inputSlots]bufferedMove
	nmoves int
}

// Add records a fresh press of dir.
func (b *InputBuffer) Add(dir core.Dir) {
	i := 0
	for i < b.nmoves && i < inputSlots-1 && !b.moves[i].seen {
		i++
	}
	b.nmoves = min(b.nmoves+1, inputSlots)
	copy(b.moves[i+1:], b.moves[i:inputSlots-1])
	b.moves[i] = bufferedMove{dir: dir}
}

// Remove drops the front move when dir is released, but only if that move
// has already been read.
func (b *InputBuffer) Remove(dir core.Dir) {
	if b.nmoves == 0 {
		return
	}
	front := b.moves[0]
	if front.dir != dir || !front.seen {
		return
	}
	copy(b.moves[:], b.moves[1:])
	b.moves[inputSlots-1] = bufferedMove{}
	b.nmoves--
}

// Read returns the front move and marks it as read, without dequeuing.
func (b *InputBuffer) Read() core.Dir {
	if b.nmoves == 0 {
		return core.DirNone
	}
	b.moves[0].seen = true
	return b.moves[0].dir
}

// Handle feeds one direction's key state for this tick against the
// previous tick's.
func (b *InputBuffer) Handle(dir core.Dir, held, wasHeld bool) {
	if held && !wasHeld {
		b.Add(dir)
	}
	if !held {
		b.Remove(dir)
	}
}

// Len returns the number of buffered moves.
func (b *InputBuffer) Len() int {
	return b.nmoves
}

// Clear empties the buffer.
func (b *InputBuffer) Clear() {
	*b = InputBuffer{}
}
