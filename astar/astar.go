// Package astar implements best-first graph search (A*) over an implicit,
// possibly infinite state graph described by a Problem contract.
//
// A* repeatedly extracts the frontier entry with the lowest estimated total
// cost f = g + h, tests it against the goal predicate, and otherwise expands
// it by feeding every successor back into the frontier. Expanded states
// enter an explored set and are never re-expanded or reopened, which bounds
// the worst case but forfeits optimality if the heuristic is inconsistent.
package astar

import (
	"fmt"
	"time"
)

// Solve runs A* on p under heuristic h, applying any number of functional
// Options.
//
// Outcomes:
//
//   - Success: a goal state was reached. Result.Path and Result.Actions hold
//     the root-to-goal state and action sequences; with an admissible,
//     consistent heuristic the plan cost is optimal.
//   - Exhausted: the frontier emptied without reaching a goal — provably no
//     solution within the modeled action set. Path and Actions are nil,
//     Metrics.Timeout is false, and err is nil.
//   - Timed out: the time budget expired or the context was cancelled. Path
//     and Actions are nil, Metrics.Timeout is true, and err is nil.
//
// Normal search failure is never an error; a non-nil error means invalid
// input (ErrNilProblem, ErrNilHeuristic, ErrOptionViolation) or a contract
// violation by the problem implementation (ErrApply, ErrNegativeStepCost,
// ErrNegativeEstimate), and in that case the Result is nil.
//
// Complexity: O(b^d) generated nodes in the worst case for branching factor
// b and solution depth d; each frontier operation costs O(log N).
func Solve[S comparable, A any](p Problem[S, A], h Heuristic[S], opts ...Option) (*Result[S, A], error) {
	// 1) Validate required inputs.
	if p == nil {
		return nil, ErrNilProblem
	}
	if h == nil {
		return nil, ErrNilHeuristic
	}

	// 2) Build options and catch any invalid ones immediately.
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// 3) Prepare the runner and seed it with the initial state.
	r := &runner[S, A]{
		problem:   p,
		heuristic: h,
		opts:      o,
		frontier:  newFrontier[S](),
		explored:  make(map[S]struct{}, 64),
		started:   time.Now(),
	}
	if err := r.init(); err != nil {
		return nil, err
	}

	// 4) Run the expansion loop until success, exhaustion or timeout.
	return r.search()
}

// runner holds the mutable state of a single Solve execution. One runner
// per search; runners share nothing, so concurrent searches need no locking.
type runner[S comparable, A any] struct {
	problem   Problem[S, A]
	heuristic Heuristic[S]
	opts      Options

	frontier *frontier[S]
	explored map[S]struct{}
	arena    arena[S, A]

	metrics     Metrics
	branchSum   int
	branchCount int

	started time.Time
}

// init creates the root node from the initial state and inserts it into the
// frontier, establishing the starting metrics watermarks.
func (r *runner[S, A]) init() error {
	root := r.problem.InitialState()

	h0 := r.heuristic(root)
	if h0 < 0 {
		return fmt.Errorf("%w: h(initial)=%v", ErrNegativeEstimate, h0)
	}

	var noAction A
	idx := r.arena.add(root, noParent, noAction, 0)
	r.frontier.insert(root, 0, h0, idx)

	r.metrics.NodesGenerated = 1
	r.metrics.MaxFrontierSize = 1
	r.metrics.MaxMemoryNodes = 1

	return nil
}

// search is the expansion loop: one iteration per extracted node, bounded by
// a single expansion, so the budget check at the top of each iteration is
// reached at bounded intervals.
func (r *runner[S, A]) search() (*Result[S, A], error) {
	for r.frontier.Len() > 0 {
		// 1) Budget check, once per iteration.
		if r.expired() {
			return r.finish(false, true, nil, nil), nil
		}

		// 2) Record the peak combined memory footprint.
		if mem := r.frontier.Len() + len(r.explored); mem > r.metrics.MaxMemoryNodes {
			r.metrics.MaxMemoryNodes = mem
		}

		// 3) Extract the minimum-f entry and test it against the goal.
		e := r.frontier.extractMin()
		r.metrics.NodesExpanded++
		if r.problem.IsGoal(e.state) {
			path, actions := r.arena.unwind(e.node)
			return r.finish(true, false, path, actions), nil
		}

		// 4) Close the state: it is never re-inserted or re-expanded.
		r.explored[e.state] = struct{}{}

		// 5) Generate successors and feed each back into the frontier.
		if err := r.expand(e); err != nil {
			return nil, err
		}
	}

	// Frontier emptied without reaching a goal: provably unsolvable.
	return r.finish(false, false, nil, nil), nil
}

// expand generates every successor of e's state, skipping explored states and
// applying the decrease-or-skip rule against the frontier membership index.
func (r *runner[S, A]) expand(e *entry[S]) error {
	actions := r.problem.Actions(e.state)
	r.branchSum += len(actions)
	r.branchCount++

	for _, a := range actions {
		next, cost, err := r.problem.Apply(e.state, a)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrApply, err)
		}
		if cost < 0 {
			return fmt.Errorf("%w: cost=%v", ErrNegativeStepCost, cost)
		}
		r.metrics.NodesGenerated++

		// No reopening: successors already closed are discarded outright,
		// even if this path to them is cheaper.
		if _, closed := r.explored[next]; closed {
			continue
		}

		g := e.g + cost
		hv := r.heuristic(next)
		if hv < 0 {
			return fmt.Errorf("%w: h=%v", ErrNegativeEstimate, hv)
		}

		idx := r.arena.add(next, e.node, a, g)
		r.frontier.decreaseOrSkip(next, g, g+hv, idx)
	}

	return nil
}

// expired reports whether the time budget ran out or the context was
// cancelled. Both map to the timeout outcome.
func (r *runner[S, A]) expired() bool {
	select {
	case <-r.opts.Ctx.Done():
		return true
	default:
	}

	return r.opts.Timeout > 0 && time.Since(r.started) > r.opts.Timeout
}

// finish freezes the metrics for the given outcome and assembles the Result.
func (r *runner[S, A]) finish(success, timeout bool, path []S, actions []A) *Result[S, A] {
	r.metrics.Success = success
	r.metrics.Timeout = timeout
	r.metrics.TotalTime = time.Since(r.started)
	r.metrics.MaxFrontierSize = r.frontier.Peak()
	r.metrics.SolutionLength = len(actions)
	if r.branchCount > 0 {
		r.metrics.AvgBranchingFactor = float64(r.branchSum) / float64(r.branchCount)
	}

	return &Result[S, A]{
		Path:    path,
		Actions: actions,
		Metrics: r.metrics,
	}
}
