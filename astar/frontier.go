package astar

import "container/heap"

// entry is one frontier element: the arena index of its node, the state it
// represents, its path cost g and estimated total cost f, a monotonically
// increasing sequence number for deterministic tie-breaking, and its current
// position inside the heap (maintained by Swap, required for targeted
// removal in the decrease case).
type entry[S comparable] struct {
	node  int32
	state S
	g     float64
	f     float64
	seq   uint64
	pos   int
}

// entryHeap implements heap.Interface ordered by f ascending; ties break on
// insertion sequence, so extraction order never depends on wall-clock time
// or memory addresses.
type entryHeap[S comparable] []*entry[S]

// Len returns the number of entries in the heap.
func (h entryHeap[S]) Len() int { return len(h) }

// Less orders by estimated total cost f, then by insertion sequence.
func (h entryHeap[S]) Less(i, j int) bool {
	if h[i].f != h[j].f {
		return h[i].f < h[j].f
	}

	return h[i].seq < h[j].seq
}

// Swap swaps two entries and updates their recorded heap positions.
func (h entryHeap[S]) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].pos = i
	h[j].pos = j
}

// Push appends x; called by heap.Push.
func (h *entryHeap[S]) Push(x any) {
	e := x.(*entry[S])
	e.pos = len(*h)
	*h = append(*h, e)
}

// Pop removes and returns the last entry; called by heap.Pop.
func (h *entryHeap[S]) Pop() any {
	old := *h
	n := len(old)
	e := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]

	return e
}

// frontier is the set of generated-but-not-yet-expanded nodes, ordered for
// retrieval by estimated total cost. The membership index maps every state
// present in the heap to its single entry, whose g is the best known path
// cost to that state.
type frontier[S comparable] struct {
	heap  entryHeap[S]
	index map[S]*entry[S]
	seq   uint64
	peak  int
}

// newFrontier returns an empty frontier.
func newFrontier[S comparable]() *frontier[S] {
	return &frontier[S]{
		heap:  make(entryHeap[S], 0, 64),
		index: make(map[S]*entry[S], 64),
	}
}

// Len returns the number of live frontier entries.
func (fr *frontier[S]) Len() int { return len(fr.heap) }

// Peak returns the high-water mark of Len over the frontier's lifetime.
func (fr *frontier[S]) Peak() int { return fr.peak }

// insert adds an unconditional entry for state and updates the membership
// index. It reports whether the peak-size watermark advanced.
func (fr *frontier[S]) insert(state S, g, f float64, node int32) bool {
	e := &entry[S]{
		node:  node,
		state: state,
		g:     g,
		f:     f,
		seq:   fr.seq,
	}
	fr.seq++
	heap.Push(&fr.heap, e)
	fr.index[state] = e

	if len(fr.heap) > fr.peak {
		fr.peak = len(fr.heap)
		return true
	}

	return false
}

// extractMin removes and returns the entry with the lowest f, unregistering
// it from the membership index. Callers must check Len first.
func (fr *frontier[S]) extractMin() *entry[S] {
	e := heap.Pop(&fr.heap).(*entry[S])
	delete(fr.index, e.state)

	return e
}

// decreaseOrSkip implements the "replace if a cheaper path was found" rule:
//   - state absent from the frontier: insert unconditionally;
//   - state present with a strictly worse g: excise the stale entry via its
//     recorded heap position, then insert the replacement;
//   - state present with an equal-or-better g: do nothing.
//
// It reports whether the new entry was inserted.
func (fr *frontier[S]) decreaseOrSkip(state S, g, f float64, node int32) bool {
	old, ok := fr.index[state]
	if ok {
		if g >= old.g {
			return false
		}
		heap.Remove(&fr.heap, old.pos)
		delete(fr.index, state)
	}
	fr.insert(state, g, f, node)

	return true
}
