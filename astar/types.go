// Package astar defines the state-space contract, configuration options,
// sentinel errors and metrics for best-first (A*) search.
package astar

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Sentinel errors for A* execution.
var (
	// ErrNilProblem is returned if a nil Problem is passed to Solve.
	ErrNilProblem = errors.New("astar: problem is nil")

	// ErrNilHeuristic is returned if a nil Heuristic is passed to Solve.
	ErrNilHeuristic = errors.New("astar: heuristic is nil")

	// ErrNegativeStepCost is returned when Problem.Apply reports a negative
	// step cost. A* requires non-negative edge costs.
	ErrNegativeStepCost = errors.New("astar: negative step cost returned by problem")

	// ErrNegativeEstimate is returned when the heuristic reports a negative
	// estimate, which violates the admissibility contract.
	ErrNegativeEstimate = errors.New("astar: heuristic returned a negative estimate")

	// ErrApply wraps an error returned by Problem.Apply for an action the
	// same Problem just enumerated. This is a contract violation in the
	// problem implementation, not a search outcome.
	ErrApply = errors.New("astar: problem failed to apply its own action")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("astar: invalid option supplied")
)

// Problem is the state-space contract a search instance must implement.
//
// State type S must be comparable so it can key the explored set and the
// frontier membership index; two states compare equal iff they denote the
// same configuration of the world relevant to search.
//
// All four methods must be deterministic and side-effect free: calling them
// repeatedly with equal arguments must yield equal results, otherwise
// duplicate detection is unsound.
type Problem[S comparable, A any] interface {
	// InitialState returns the root configuration.
	InitialState() S

	// IsGoal reports whether s satisfies the goal condition.
	IsGoal(s S) bool

	// Actions returns the ordered sequence of actions applicable in s.
	// An empty slice marks a terminal or dead-end state.
	Actions(s S) []A

	// Apply returns the state reached by taking action a in s together
	// with the (non-negative) step cost. It returns an error only when a
	// has no transition defined in s, which Solve treats as fatal.
	Apply(s S, a A) (next S, cost float64, err error)
}

// Heuristic estimates the remaining cost from s to the nearest goal.
// It must be non-negative, return exactly 0 for goal states, and — for the
// engine's optimality guarantee — never overestimate the true remaining cost.
type Heuristic[S comparable] func(s S) float64

// Metrics summarizes a single Solve invocation. It is always populated,
// regardless of outcome.
type Metrics struct {
	// NodesExpanded counts states popped from the frontier.
	NodesExpanded int
	// NodesGenerated counts successors produced, including those later
	// discarded as already explored or not better than a frontier entry.
	NodesGenerated int
	// MaxFrontierSize is the peak number of entries in the frontier.
	MaxFrontierSize int
	// MaxMemoryNodes is the peak combined size of frontier and explored set.
	MaxMemoryNodes int
	// TotalTime is the wall-clock duration of the search.
	TotalTime time.Duration
	// SolutionLength is the number of actions in the returned plan (0 unless
	// Success).
	SolutionLength int
	// Success reports whether a goal state was reached.
	Success bool
	// Timeout reports whether the search stopped on an expired time budget
	// or a cancelled context rather than by exhausting the frontier.
	Timeout bool
	// AvgBranchingFactor is the mean number of applicable actions per
	// expanded state.
	AvgBranchingFactor float64
}

// Result carries the outcome of one search. Path and Actions are either both
// nil (no solution: timed out or exhausted) or both populated, with
// Path[0] == InitialState() and len(Path) == len(Actions)+1.
type Result[S comparable, A any] struct {
	Path    []S
	Actions []A
	Metrics Metrics
}

// Option configures Solve via functional arguments. An invalid Option is
// recorded internally and surfaced as ErrOptionViolation when Solve runs.
type Option func(*Options)

// Options holds parameters customizing a single search.
type Options struct {
	// Ctx allows external cancellation and deadlines. Cancellation is
	// observed once per expansion and reported as a timeout outcome.
	Ctx context.Context

	// Timeout caps the wall-clock search duration. Zero disables the cap.
	Timeout time.Duration

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults: Background context and
// no time budget.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		Timeout: 0,
		err:     nil,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithTimeout caps the wall-clock duration of the search.
//
//	d > 0:  stop with a timeout outcome once d has elapsed
//	d == 0: explicit "no budget"
//	d < 0:  invalid option → ErrOptionViolation
func WithTimeout(d time.Duration) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: Timeout cannot be negative (%v)", ErrOptionViolation, d)
			return
		}
		o.Timeout = d
	}
}
