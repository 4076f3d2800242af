// Package satplan formulates the puzzle as a bounded-horizon planning
// problem and delegates solving to a general-purpose combinatorial solver
// (gophersat). See doc.go for the boundary contract.
package satplan

import (
	"time"

	"github.com/crillab/gophersat/bf"

	"github.com/velzan/sokosearch/sokoban"
)

// Solve searches for an action sequence of at most maxSteps moves solving p,
// by encoding each horizon k = 0..maxSteps as a boolean formula and handing
// it to the external solver. The first satisfiable horizon yields the plan,
// which is therefore a shortest plan within the bound.
//
// Outcomes (err is non-nil only for invalid input):
//
//   - Success: Result.Actions holds the plan, Metrics.Horizon its length.
//   - Infeasible within the bound: every horizon proved unsatisfiable;
//     Actions nil, Metrics.Timeout false. This does NOT prove the instance
//     globally unsolvable — only that no plan of ≤ maxSteps moves exists.
//   - Timed out / cancelled: the budget expired while the question was
//     still open; Actions nil, Metrics.Timeout true.
//
// The external solver is not interruptible mid-call, so on timeout the
// in-flight solving goroutine is abandoned and its eventual result
// discarded; the budget is otherwise re-checked between horizons.
func Solve(p *sokoban.Problem, maxSteps int, opts ...Option) (*Result, error) {
	if p == nil {
		return nil, ErrNilProblem
	}
	if maxSteps < 0 {
		return nil, ErrNegativeBound
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	started := time.Now()
	res := &Result{}
	enc := newEncoder(p)

	// Horizon 0 needs no solver: it asks whether the initial state already
	// satisfies the goal predicate.
	if p.IsGoal(p.InitialState()) {
		res.Actions = []sokoban.Direction{}
		res.Metrics.Success = true
		res.Metrics.TotalTime = time.Since(started)
		return res, nil
	}

	for k := 1; k <= maxSteps; k++ {
		if expired(&o, started) {
			res.Metrics.Timeout = true
			break
		}

		encStart := time.Now()
		formula := enc.horizon(k)
		res.Metrics.EncodingTime += time.Since(encStart)
		res.Metrics.NumVariables = enc.numVariables(k)

		solveStart := time.Now()
		model, done := solveWithBudget(&o, started, formula)
		res.Metrics.SolvingTime += time.Since(solveStart)
		if !done {
			res.Metrics.Timeout = true
			break
		}
		if model == nil {
			// Unsatisfiable at this horizon; try a longer plan.
			continue
		}

		res.Actions = enc.plan(model, k)
		res.Metrics.Success = true
		res.Metrics.Horizon = k
		res.Metrics.SolutionLength = k
		break
	}

	res.Metrics.TotalTime = time.Since(started)

	return res, nil
}

// expired reports whether the budget ran out or the context was cancelled.
func expired(o *Options, started time.Time) bool {
	select {
	case <-o.Ctx.Done():
		return true
	default:
	}

	return o.Timeout > 0 && time.Since(started) > o.Timeout
}

// solveWithBudget runs the external solver against the remaining budget.
// done is false when the budget expired first, in which case the model is
// meaningless and the in-flight goroutine is abandoned.
func solveWithBudget(o *Options, started time.Time, f bf.Formula) (model map[string]bool, done bool) {
	ch := make(chan map[string]bool, 1)
	go func() { ch <- bf.Solve(f) }()

	if o.Timeout <= 0 {
		select {
		case m := <-ch:
			return m, true
		case <-o.Ctx.Done():
			return nil, false
		}
	}

	remaining := o.Timeout - time.Since(started)
	if remaining <= 0 {
		return nil, false
	}
	timer := time.NewTimer(remaining)
	defer timer.Stop()

	select {
	case m := <-ch:
		return m, true
	case <-o.Ctx.Done():
		return nil, false
	case <-timer.C:
		return nil, false
	}
}
