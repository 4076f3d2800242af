package sokoban

import (
	"fmt"

	"github.com/velzan/sokosearch/astar"
)

// Heuristic names accepted by NewHeuristic.
const (
	// HeuristicManhattan selects SumOfNearest.
	HeuristicManhattan = "manhattan"
	// HeuristicCount selects UnmetGoalCount.
	HeuristicCount = "count"
	// HeuristicMatching selects GreedyMatching.
	HeuristicMatching = "matching"
)

// NewHeuristic returns the named estimator bound to p's goal set, or
// ErrUnknownHeuristic for an unrecognized name.
func NewHeuristic(name string, p *Problem) (astar.Heuristic[State], error) {
	switch name {
	case HeuristicManhattan:
		return SumOfNearest(p), nil
	case HeuristicCount:
		return UnmetGoalCount(p), nil
	case HeuristicMatching:
		return GreedyMatching(p), nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownHeuristic, name)
}

// manhattan is the grid distance |Δrow| + |Δcol| between two cells.
func manhattan(a, b Pos) int {
	dr := a.Row - b.Row
	if dr < 0 {
		dr = -dr
	}
	dc := a.Col - b.Col
	if dc < 0 {
		dc = -dc
	}

	return dr + dc
}

// SumOfNearest estimates remaining cost as the sum, over boxes, of each
// box's Manhattan distance to its nearest goal cell. Admissible: it ignores
// walls and lets several boxes share one goal, so it never overestimates.
func SumOfNearest(p *Problem) astar.Heuristic[State] {
	goals := p.GoalPositions()

	return func(s State) float64 {
		total := 0
		for _, box := range s.Boxes.Positions() {
			best := -1
			for _, g := range goals {
				if d := manhattan(box, g); best < 0 || d < best {
					best = d
				}
			}
			if best > 0 {
				total += best
			}
		}

		return float64(total)
	}
}

// UnmetGoalCount estimates remaining cost as the number of boxes not
// currently on a goal cell. Weakly informed but strictly admissible, and
// O(boxes) per call.
func UnmetGoalCount(p *Problem) astar.Heuristic[State] {
	goals := p.Goals()

	return func(s State) float64 {
		unmet := 0
		for _, box := range s.Boxes.Positions() {
			if !goals.Contains(box) {
				unmet++
			}
		}

		return float64(unmet)
	}
}

// GreedyMatching matches boxes to distinct goals one at a time: each box,
// in canonical order, claims its currently-nearest unclaimed goal, and the
// claimed distances are summed. Usually tighter than SumOfNearest since no
// goal is counted twice, but the greedy assignment can overshoot the
// minimum-cost one, so admissibility is not guaranteed and plans found
// under it are best-effort rather than provably optimal.
func GreedyMatching(p *Problem) astar.Heuristic[State] {
	goals := p.GoalPositions()

	return func(s State) float64 {
		total := 0
		claimed := make(map[Pos]struct{}, len(goals))
		for _, box := range s.Boxes.Positions() {
			best := -1
			var bestGoal Pos
			for _, g := range goals {
				if _, taken := claimed[g]; taken {
					continue
				}
				if d := manhattan(box, g); best < 0 || d < best {
					best = d
					bestGoal = g
				}
			}
			if best >= 0 {
				claimed[bestGoal] = struct{}{}
				total += best
			}
		}

		return float64(total)
	}
}
