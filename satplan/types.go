// Package satplan defines options, sentinel errors and metrics for the
// bounded-horizon SAT planner.
package satplan

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/velzan/sokosearch/sokoban"
)

// Sentinel errors for bounded plan search.
var (
	// ErrNilProblem is returned if a nil problem is passed to Solve.
	ErrNilProblem = errors.New("satplan: problem is nil")

	// ErrNegativeBound is returned for a negative step bound.
	ErrNegativeBound = errors.New("satplan: step bound cannot be negative")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("satplan: invalid option supplied")
)

// Metrics summarizes one bounded plan search. It is always populated.
type Metrics struct {
	// TotalTime is the wall-clock duration of the whole invocation.
	TotalTime time.Duration
	// EncodingTime is the cumulative time spent building formulas.
	EncodingTime time.Duration
	// SolvingTime is the cumulative time spent inside the external solver.
	SolvingTime time.Duration
	// NumVariables counts the propositional variables of the deepest
	// horizon that was encoded.
	NumVariables int
	// Horizon is the plan length at which a model was found (0 unless
	// Success).
	Horizon int
	// SolutionLength equals Horizon: every encoded step is a real move.
	SolutionLength int
	// Success reports whether a plan was found within the bound.
	Success bool
	// Timeout reports that the budget expired with the search still
	// undecided. A false Timeout on failure means every horizon up to the
	// bound was proven unsatisfiable — the two must never be conflated.
	Timeout bool
}

// Result carries the outcome of one bounded plan search. Actions is nil on
// failure (timed out or infeasible within the bound) and populated on
// success; Metrics distinguishes the two failure modes.
type Result struct {
	Actions []sokoban.Direction
	Metrics Metrics
}

// Option configures Solve via functional arguments.
type Option func(*Options)

// Options holds parameters customizing a bounded plan search.
type Options struct {
	// Ctx allows external cancellation, reported as a timeout outcome.
	Ctx context.Context

	// Timeout caps the wall-clock duration. Zero disables the cap.
	Timeout time.Duration

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with a Background context and no budget.
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

// WithTimeout caps the wall-clock duration of the search. Negative values
// are invalid and surface as ErrOptionViolation.
func WithTimeout(d time.Duration) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: Timeout cannot be negative (%v)", ErrOptionViolation, d)
			return
		}
		o.Timeout = d
	}
}
