// Package sokoban models the sliding-block puzzle (boxes pushed by a player
// on a grid) as a state space for the astar engine.
//
// A Problem holds the fixed walls and goals of one level; a State holds the
// per-configuration player cell and box set. The goal predicate is exact
// equality between the box set and the goal set, so every goal is covered
// and no box sits off-goal. All moves have uniform step cost 1.
package sokoban

import "fmt"

// Problem is one puzzle instance. Walls and goals are fixed for the
// instance's lifetime, so a Problem is read-only after Parse and may be
// shared across concurrent searches over the same level.
type Problem struct {
	walls    map[Pos]struct{}
	goals    PosSet
	goalList []Pos
	rows     int
	cols     int
	initial  State
}

// InitialState returns the level's starting configuration.
func (p *Problem) InitialState() State { return p.initial }

// Goals returns the fixed goal cells as a canonical set.
func (p *Problem) Goals() PosSet { return p.goals }

// GoalPositions returns the fixed goal cells in canonical order. The
// returned slice is shared; callers must not mutate it.
func (p *Problem) GoalPositions() []Pos { return p.goalList }

// IsWall reports whether pos is a wall cell. Cells outside the parsed
// rows×cols extents count as walls, so the boundary is closed even on
// levels without an enclosing wall ring: nothing can move or be pushed off
// the grid, and every reachable cell stays within PosSet's coordinate range.
func (p *Problem) IsWall(pos Pos) bool {
	if pos.Row < 0 || pos.Row >= p.rows || pos.Col < 0 || pos.Col >= p.cols {
		return true
	}
	_, ok := p.walls[pos]

	return ok
}

// Size returns the grid extents (rows, columns) seen during parsing.
func (p *Problem) Size() (rows, cols int) { return p.rows, p.cols }

// IsGoal reports whether every box occupies a goal cell: the box set must
// equal the goal set in both cardinality and positions.
func (p *Problem) IsGoal(s State) bool {
	return s.Boxes == p.goals
}

// Actions enumerates the legal directions from s in the fixed order
// Up, Down, Left, Right. A direction is legal unless the player's
// destination is a wall, or it holds a box whose own destination (one
// further cell the same way) is a wall or another box.
func (p *Problem) Actions(s State) []Direction {
	legal := make([]Direction, 0, 4)
	for _, d := range Directions() {
		dr, dc := d.Delta()
		dest := Pos{Row: s.Player.Row + dr, Col: s.Player.Col + dc}
		if p.IsWall(dest) {
			continue
		}
		if s.Boxes.Contains(dest) {
			beyond := Pos{Row: dest.Row + dr, Col: dest.Col + dc}
			if p.IsWall(beyond) || s.Boxes.Contains(beyond) {
				continue
			}
		}
		legal = append(legal, d)
	}

	return legal
}

// Apply moves the player one cell in direction d; if the destination held a
// box, that box is pushed one cell further the same way. Step cost is
// always 1. Legality is Actions' concern — Apply trusts its input, except
// that a Direction outside the enumeration yields ErrUnknownAction.
func (p *Problem) Apply(s State, d Direction) (State, float64, error) {
	dr, dc := d.Delta()
	if dr == 0 && dc == 0 {
		return State{}, 0, fmt.Errorf("%w: %s", ErrUnknownAction, d)
	}

	dest := Pos{Row: s.Player.Row + dr, Col: s.Player.Col + dc}
	boxes := s.Boxes
	if boxes.Contains(dest) {
		boxes = boxes.Without(dest).With(Pos{Row: dest.Row + dr, Col: dest.Col + dc})
	}

	return State{Player: dest, Boxes: boxes}, 1, nil
}
