package astar

// noParent marks the root record in an arena.
const noParent int32 = -1

// nodeRec is one search-tree node: the state it wraps, the action that
// produced it from its parent, the parent's arena index (noParent for the
// root) and the accumulated path cost g. Records are created once and never
// mutated, so parent links can never form a cycle.
type nodeRec[S comparable, A any] struct {
	state  S
	action A
	parent int32
	g      float64
}

// arena owns every node created during one search, addressed by index.
// Storing parent indices instead of pointers keeps ownership trivial and
// makes path reconstruction a simple index walk.
type arena[S comparable, A any] struct {
	nodes []nodeRec[S, A]
}

// add appends a node record and returns its index.
func (ar *arena[S, A]) add(state S, parent int32, action A, g float64) int32 {
	ar.nodes = append(ar.nodes, nodeRec[S, A]{
		state:  state,
		action: action,
		parent: parent,
		g:      g,
	})

	return int32(len(ar.nodes) - 1)
}

// at returns the record stored at index i.
func (ar *arena[S, A]) at(i int32) *nodeRec[S, A] {
	return &ar.nodes[i]
}

// unwind walks parent links from the goal node up to the root and returns
// the root-to-goal sequences of states and actions. Both slices are always
// non-nil: a root that already satisfies the goal yields a one-state path
// and an empty action sequence.
func (ar *arena[S, A]) unwind(goal int32) ([]S, []A) {
	path := make([]S, 0, 8)
	actions := make([]A, 0, 8)

	for i := goal; i != noParent; {
		rec := ar.at(i)
		path = append(path, rec.state)
		if rec.parent != noParent {
			actions = append(actions, rec.action)
		}
		i = rec.parent
	}

	// Reverse both sequences: they were collected goal → root.
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	for i, j := 0, len(actions)-1; i < j; i, j = i+1, j-1 {
		actions[i], actions[j] = actions[j], actions[i]
	}

	return path, actions
}
