package sim

import "github.com/vovakirdan/tui-chips/internal/core"

// Arena owns every entity. Lookups go through handles; iteration follows
// creation order. Entities are stored by pointer so a *Entity obtained from
// Get stays valid while other entities are created.
type Arena struct {
	next  Handle
	order []*Entity
	index map[Handle]int
}

// NewArena creates an empty arena.
func NewArena() *Arena {
	return &Arena{index: make(map[Handle]int)}
}

// Alloc reserves a fresh handle. The first handle is 1.
func (a *Arena) Alloc() Handle {
	a.next++
	return a.next
}

// Insert stores an entity under its own handle. An entity whose handle is
// already present replaces the old one in place.
func (a *Arena) Insert(e Entity) *Entity {
	p := &e
	if i, ok := a.index[e.Handle]; ok {
		a.order[i] = p
		return p
	}
	a.index[e.Handle] = len(a.order)
	a.order = append(a.order, p)
	return p
}

// Create allocates a handle, stores the entity and returns its handle.
func (a *Arena) Create(e Entity) Handle {
	e.Handle = a.Alloc()
	a.Insert(e)
	return e.Handle
}

// Get returns the entity for a handle.
func (a *Arena) Get(h Handle) (*Entity, bool) {
	i, ok := a.index[h]
	if !ok {
		return nil, false
	}
	return a.order[i], true
}

// Remove deletes an entity immediately. Use the Remove flag plus Reap while
// a tick is iterating.
func (a *Arena) Remove(h Handle) {
	i, ok := a.index[h]
	if !ok {
		return
	}
	a.order = append(a.order[:i], a.order[i+1:]...)
	a.reindex()
}

// Reap drops every entity flagged for removal and returns their handles in
// creation order.
func (a *Arena) Reap() []Handle {
	var removed []Handle
	kept := a.order[:0]
	for _, e := range a.order {
		if e.Remove {
			removed = append(removed, e.Handle)
			continue
		}
		kept = append(kept, e)
	}
	for i := len(kept); i < len(a.order); i++ {
		a.order[i] = nil
	}
	a.order = kept
	if len(removed) > 0 {
		a.reindex()
	}
	return removed
}

func (a *Arena) reindex() {
	clear(a.index)
	for i, e := range a.order {
		a.index[e.Handle] = i
	}
}

// Len returns the number of stored entities.
func (a *Arena) Len() int {
	return len(a.order)
}

// All returns the stored entities in creation order. The slice is shared;
// callers must not keep it across creations or reaps.
func (a *Arena) All() []*Entity {
	return a.order
}

// Handles returns a snapshot of all handles in creation order.
func (a *Arena) Handles() []Handle {
	hs := make([]Handle, len(a.order))
	for i, e := range a.order {
		hs[i] = e.Handle
	}
	return hs
}

// FindKind returns the first live entity of the given kind.
func (a *Arena) FindKind(k Kind) (Handle, bool) {
	for _, e := range a.order {
		if e.Kind == k && e.live() {
			return e.Handle, true
		}
	}
	return 0, false
}

// At returns the live entities standing on a tile, in creation order.
func (a *Arena) At(p core.Vec) []*Entity {
	var out []*Entity
	for _, e := range a.order {
		if e.Pos == p && e.live() {
			out = append(out, e)
		}
	}
	return out
}
