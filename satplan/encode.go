package satplan

import (
	"fmt"

	"github.com/crillab/gophersat/bf"

	"github.com/velzan/sokosearch/sokoban"
)

// encoder builds the propositional encoding of one puzzle instance for a
// fixed horizon. Variables, per time step t:
//
//	p_t_r_c — the player occupies floor cell (r,c) at step t
//	b_t_r_c — a box occupies floor cell (r,c) at step t
//	a_t_d   — the move taken between steps t and t+1 is direction d
//
// Every step is a real move, so a plan for horizon k has exactly k actions;
// iterating k upward therefore yields a shortest plan within the bound.
type encoder struct {
	problem *sokoban.Problem
	floors  []sokoban.Pos
	isFloor map[sokoban.Pos]bool
}

func newEncoder(p *sokoban.Problem) *encoder {
	rows, cols := p.Size()
	e := &encoder{
		problem: p,
		isFloor: make(map[sokoban.Pos]bool, rows*cols),
	}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			pos := sokoban.Pos{Row: r, Col: c}
			if !p.IsWall(pos) {
				e.floors = append(e.floors, pos)
				e.isFloor[pos] = true
			}
		}
	}

	return e
}

func playerVar(t int, p sokoban.Pos) string { return fmt.Sprintf("p_%d_%d_%d", t, p.Row, p.Col) }
func boxVar(t int, p sokoban.Pos) string    { return fmt.Sprintf("b_%d_%d_%d", t, p.Row, p.Col) }
func actVar(t int, d sokoban.Direction) string {
	return fmt.Sprintf("a_%d_%c", t, d.Letter())
}

// numVariables returns the count of distinct propositional variables the
// horizon-k encoding introduces (dummy variables created during CNF
// conversion excluded).
func (e *encoder) numVariables(k int) int {
	return 2*(k+1)*len(e.floors) + 4*k
}

// step advances a cell one unit in direction d.
func step(p sokoban.Pos, d sokoban.Direction) sokoban.Pos {
	dr, dc := d.Delta()

	return sokoban.Pos{Row: p.Row + dr, Col: p.Col + dc}
}

// horizon builds the conjunction of all constraints for a plan of exactly k
// moves.
func (e *encoder) horizon(k int) bf.Formula {
	var cons []bf.Formula

	cons = append(cons, e.initial()...)
	for t := 0; t <= k; t++ {
		cons = append(cons, e.stateAxioms(t)...)
	}
	for t := 0; t < k; t++ {
		cons = append(cons, e.transition(t)...)
	}
	cons = append(cons, e.goal(k)...)

	return bf.And(cons...)
}

// initial pins step 0 to the problem's initial state as unit literals.
func (e *encoder) initial() []bf.Formula {
	init := e.problem.InitialState()
	out := make([]bf.Formula, 0, 2*len(e.floors))
	for _, cell := range e.floors {
		pv := bf.Var(playerVar(0, cell))
		if cell == init.Player {
			out = append(out, pv)
		} else {
			out = append(out, bf.Not(pv))
		}
		bv := bf.Var(boxVar(0, cell))
		if init.Boxes.Contains(cell) {
			out = append(out, bv)
		} else {
			out = append(out, bf.Not(bv))
		}
	}

	return out
}

// stateAxioms holds per-step structural constraints: the player occupies
// exactly one floor cell, and never shares a cell with a box.
func (e *encoder) stateAxioms(t int) []bf.Formula {
	players := make([]string, len(e.floors))
	for i, cell := range e.floors {
		players[i] = playerVar(t, cell)
	}

	out := []bf.Formula{bf.Unique(players...)}
	for _, cell := range e.floors {
		out = append(out, bf.Or(
			bf.Not(bf.Var(playerVar(t, cell))),
			bf.Not(bf.Var(boxVar(t, cell))),
		))
	}

	return out
}

// transition encodes the move between steps t and t+1: exactly one action,
// its movement and push effects, and the box frame axioms.
func (e *encoder) transition(t int) []bf.Formula {
	acts := make([]string, 0, 4)
	for _, d := range sokoban.Directions() {
		acts = append(acts, actVar(t, d))
	}
	out := []bf.Formula{bf.Unique(acts...)}

	for _, d := range sokoban.Directions() {
		act := bf.Var(actVar(t, d))
		for _, u := range e.floors {
			pu := bf.Var(playerVar(t, u))
			v := step(u, d)
			if !e.isFloor[v] {
				// Moving into a wall is impossible.
				out = append(out, bf.Or(bf.Not(act), bf.Not(pu)))
				continue
			}
			// Movement effect: the player ends up on v.
			out = append(out, bf.Or(bf.Not(act), bf.Not(pu), bf.Var(playerVar(t+1, v))))

			bv := bf.Var(boxVar(t, v))
			w := step(v, d)
			if !e.isFloor[w] {
				// A box on v cannot be pushed off the floor.
				out = append(out, bf.Or(bf.Not(act), bf.Not(pu), bf.Not(bv)))
				continue
			}
			// Push preconditions and effects: the target cell w must be
			// free, the box lands on w and leaves v.
			out = append(out,
				bf.Or(bf.Not(act), bf.Not(pu), bf.Not(bv), bf.Not(bf.Var(boxVar(t, w)))),
				bf.Or(bf.Not(act), bf.Not(pu), bf.Not(bv), bf.Var(boxVar(t+1, w))),
				bf.Or(bf.Not(act), bf.Not(pu), bf.Not(bv), bf.Not(bf.Var(boxVar(t+1, v)))),
			)
		}
	}

	out = append(out, e.frameAxioms(t)...)

	return out
}

// frameAxioms forbids boxes from appearing or vanishing without a matching
// push: a box leaves cell c only if the player stepped onto c, and arrives
// on c only if the player pushed the box on c-d from c-2d.
func (e *encoder) frameAxioms(t int) []bf.Formula {
	out := make([]bf.Formula, 0, 2*len(e.floors))
	for _, c := range e.floors {
		b := bf.Var(boxVar(t, c))
		bNext := bf.Var(boxVar(t+1, c))

		var departures []bf.Formula
		var arrivals []bf.Formula
		for _, d := range sokoban.Directions() {
			// Reverse the step to find where the pusher came from.
			mid := step(c, opposite(d))
			from := step(mid, opposite(d))
			if e.isFloor[mid] {
				departures = append(departures, bf.And(
					bf.Var(actVar(t, d)),
					bf.Var(playerVar(t, mid)),
				))
			}
			if e.isFloor[mid] && e.isFloor[from] {
				arrivals = append(arrivals, bf.And(
					bf.Var(actVar(t, d)),
					bf.Var(playerVar(t, from)),
					bf.Var(boxVar(t, mid)),
				))
			}
		}

		if len(departures) == 0 {
			out = append(out, bf.Implies(b, bNext))
		} else {
			out = append(out, bf.Implies(bf.And(b, bf.Not(bNext)), bf.Or(departures...)))
		}
		if len(arrivals) == 0 {
			out = append(out, bf.Implies(bNext, b))
		} else {
			out = append(out, bf.Implies(bf.And(bf.Not(b), bNext), bf.Or(arrivals...)))
		}
	}

	return out
}

// goal pins the final step: a box on every goal cell and none anywhere else.
func (e *encoder) goal(k int) []bf.Formula {
	goals := e.problem.Goals()
	out := make([]bf.Formula, 0, len(e.floors))
	for _, cell := range e.floors {
		bv := bf.Var(boxVar(k, cell))
		if goals.Contains(cell) {
			out = append(out, bv)
		} else {
			out = append(out, bf.Not(bv))
		}
	}

	return out
}

// opposite returns the reverse of d.
func opposite(d sokoban.Direction) sokoban.Direction {
	switch d {
	case sokoban.Up:
		return sokoban.Down
	case sokoban.Down:
		return sokoban.Up
	case sokoban.Left:
		return sokoban.Right
	default:
		return sokoban.Left
	}
}

// plan reads the chosen action sequence back out of a satisfying model.
func (e *encoder) plan(model map[string]bool, k int) []sokoban.Direction {
	actions := make([]sokoban.Direction, 0, k)
	for t := 0; t < k; t++ {
		for _, d := range sokoban.Directions() {
			if model[actVar(t, d)] {
				actions = append(actions, d)
				break
			}
		}
	}

	return actions
}
