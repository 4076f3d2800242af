// Package astar_test contains unit tests for the A* engine: input
// validation, success/exhausted/timeout outcomes, the decrease-or-skip
// frontier discipline, metric accounting and determinism.
package astar_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/velzan/sokosearch/astar"
)

// edge is one labeled transition of graphProblem.
type edge struct {
	to   string
	cost float64
}

// graphProblem is an explicit directed graph exposed through the state-space
// contract. Actions are the labels of outgoing edges.
type graphProblem struct {
	start string
	goal  string
	edges map[string][]edge
}

func (g *graphProblem) InitialState() string { return g.start }
func (g *graphProblem) IsGoal(s string) bool { return s == g.goal }

func (g *graphProblem) Actions(s string) []string {
	out := make([]string, 0, len(g.edges[s]))
	for _, e := range g.edges[s] {
		out = append(out, e.to)
	}

	return out
}

func (g *graphProblem) Apply(s, a string) (string, float64, error) {
	for _, e := range g.edges[s] {
		if e.to == a {
			return e.to, e.cost, nil
		}
	}

	return "", 0, fmt.Errorf("no edge %s->%s", s, a)
}

// zero is the trivial heuristic, under which A* degenerates to Dijkstra.
func zero(string) float64 { return 0 }

// ------------------------------------------------------------------------
// 1. Validation: invalid inputs are rejected before any search runs.
// ------------------------------------------------------------------------

func TestSolve_NilProblem(t *testing.T) {
	_, err := astar.Solve[string, string](nil, zero)
	if !errors.Is(err, astar.ErrNilProblem) {
		t.Fatalf("expected ErrNilProblem, got %v", err)
	}
}

func TestSolve_NilHeuristic(t *testing.T) {
	g := &graphProblem{start: "S", goal: "G"}
	_, err := astar.Solve[string, string](g, nil)
	if !errors.Is(err, astar.ErrNilHeuristic) {
		t.Fatalf("expected ErrNilHeuristic, got %v", err)
	}
}

func TestSolve_NegativeTimeout(t *testing.T) {
	g := &graphProblem{start: "S", goal: "G"}
	_, err := astar.Solve[string, string](g, zero, astar.WithTimeout(-time.Second))
	if !errors.Is(err, astar.ErrOptionViolation) {
		t.Fatalf("expected ErrOptionViolation, got %v", err)
	}
}

func TestSolve_NegativeHeuristic(t *testing.T) {
	g := &graphProblem{start: "S", goal: "G"}
	_, err := astar.Solve[string, string](g, func(string) float64 { return -1 })
	if !errors.Is(err, astar.ErrNegativeEstimate) {
		t.Fatalf("expected ErrNegativeEstimate, got %v", err)
	}
}

func TestSolve_NegativeStepCost(t *testing.T) {
	g := &graphProblem{
		start: "S",
		goal:  "G",
		edges: map[string][]edge{"S": {{to: "G", cost: -2}}},
	}
	_, err := astar.Solve[string, string](g, zero)
	if !errors.Is(err, astar.ErrNegativeStepCost) {
		t.Fatalf("expected ErrNegativeStepCost, got %v", err)
	}
}

// brokenProblem enumerates an action its Apply cannot map: a contract
// violation the engine must treat as fatal.
type brokenProblem struct{ graphProblem }

func (b *brokenProblem) Actions(string) []string { return []string{"ghost"} }

func TestSolve_ApplyContractViolation(t *testing.T) {
	b := &brokenProblem{graphProblem{start: "S", goal: "G"}}
	res, err := astar.Solve[string, string](b, zero)
	if !errors.Is(err, astar.ErrApply) {
		t.Fatalf("expected ErrApply, got %v", err)
	}
	if res != nil {
		t.Fatalf("expected nil result on fatal error, got %+v", res)
	}
}

// ------------------------------------------------------------------------
// 2. Outcomes: success, trivial goal, exhaustion, timeout.
// ------------------------------------------------------------------------

func TestSolve_TrivialGoal(t *testing.T) {
	// The initial state already satisfies the goal: success on the very
	// first iteration with an empty action sequence.
	g := &graphProblem{start: "G", goal: "G"}
	res, err := astar.Solve[string, string](g, zero)
	require.NoError(t, err)

	require.True(t, res.Metrics.Success)
	require.False(t, res.Metrics.Timeout)
	require.Equal(t, []string{"G"}, res.Path)
	require.Empty(t, res.Actions)
	require.Equal(t, 0, res.Metrics.SolutionLength)
	require.Equal(t, 1, res.Metrics.NodesExpanded)
	require.Equal(t, 1, res.Metrics.NodesGenerated)
}

func TestSolve_FindsCheapestPath(t *testing.T) {
	// Two routes to A: direct (cost 10) and via B (cost 2). The frontier
	// must replace the stale entry for A when the cheaper path shows up,
	// yielding the optimal S→B→A→G plan of cost 3.
	g := &graphProblem{
		start: "S",
		goal:  "G",
		edges: map[string][]edge{
			"S": {{to: "A", cost: 10}, {to: "B", cost: 1}},
			"B": {{to: "A", cost: 1}},
			"A": {{to: "G", cost: 1}},
		},
	}
	res, err := astar.Solve[string, string](g, zero)
	require.NoError(t, err)

	require.True(t, res.Metrics.Success)
	require.Equal(t, []string{"S", "B", "A", "G"}, res.Path)
	require.Equal(t, []string{"B", "A", "G"}, res.Actions)
	require.Equal(t, 3, res.Metrics.SolutionLength)
}

func TestSolve_Exhausted(t *testing.T) {
	// The goal is unreachable; the frontier must drain and report an
	// exhausted (not timed out) failure with nil path and nil error.
	g := &graphProblem{
		start: "S",
		goal:  "G",
		edges: map[string][]edge{
			"S": {{to: "A", cost: 1}},
			"A": {{to: "S", cost: 1}},
		},
	}
	res, err := astar.Solve[string, string](g, zero)
	require.NoError(t, err)

	require.False(t, res.Metrics.Success)
	require.False(t, res.Metrics.Timeout)
	require.Nil(t, res.Path)
	require.Nil(t, res.Actions)
	require.Equal(t, 2, res.Metrics.NodesExpanded)
}

// infiniteProblem is an unbounded binary tree with an unreachable goal,
// used to exercise the timeout path.
type infiniteProblem struct{}

func (infiniteProblem) InitialState() int   { return 0 }
func (infiniteProblem) IsGoal(int) bool     { return false }
func (infiniteProblem) Actions(s int) []int { return []int{2*s + 1, 2*s + 2} }
func (infiniteProblem) Apply(s, a int) (int, float64, error) {
	return a, 1, nil
}

func TestSolve_Timeout(t *testing.T) {
	res, err := astar.Solve[int, int](infiniteProblem{}, func(int) float64 { return 0 },
		astar.WithTimeout(time.Nanosecond))
	require.NoError(t, err)

	require.False(t, res.Metrics.Success)
	require.True(t, res.Metrics.Timeout)
	require.Nil(t, res.Path)
	require.Nil(t, res.Actions)
	require.Greater(t, res.Metrics.TotalTime, time.Duration(0))
}

func TestSolve_ContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := astar.Solve[int, int](infiniteProblem{}, func(int) float64 { return 0 },
		astar.WithContext(ctx))
	require.NoError(t, err)
	require.True(t, res.Metrics.Timeout)
	require.False(t, res.Metrics.Success)
}

// ------------------------------------------------------------------------
// 3. Metrics accounting and determinism.
// ------------------------------------------------------------------------

func TestSolve_MetricsAccounting(t *testing.T) {
	g := &graphProblem{
		start: "S",
		goal:  "G",
		edges: map[string][]edge{
			"S": {{to: "A", cost: 1}, {to: "B", cost: 2}},
			"A": {{to: "B", cost: 1}, {to: "G", cost: 5}},
			"B": {{to: "G", cost: 1}},
		},
	}
	res, err := astar.Solve[string, string](g, zero)
	require.NoError(t, err)

	m := res.Metrics
	require.True(t, m.Success)
	require.LessOrEqual(t, m.NodesExpanded, m.NodesGenerated)
	require.GreaterOrEqual(t, m.MaxMemoryNodes, m.MaxFrontierSize)
	require.Greater(t, m.AvgBranchingFactor, 0.0)
	// Two optimal plans of cost 3 exist (S→B→G and S→A→B→G); the equal-g
	// skip rule keeps the earlier frontier entry, so S→B→G wins.
	require.Equal(t, []string{"B", "G"}, res.Actions)
	require.Equal(t, 2, m.SolutionLength)
}

func TestSolve_Determinism(t *testing.T) {
	g := &graphProblem{
		start: "S",
		goal:  "G",
		edges: map[string][]edge{
			"S": {{to: "A", cost: 1}, {to: "B", cost: 1}},
			"A": {{to: "G", cost: 1}},
			"B": {{to: "G", cost: 1}},
		},
	}

	first, err := astar.Solve[string, string](g, zero)
	require.NoError(t, err)
	second, err := astar.Solve[string, string](g, zero)
	require.NoError(t, err)

	require.Equal(t, first.Path, second.Path)
	require.Equal(t, first.Actions, second.Actions)
	require.Equal(t, first.Metrics.NodesExpanded, second.Metrics.NodesExpanded)
	require.Equal(t, first.Metrics.NodesGenerated, second.Metrics.NodesGenerated)
}
