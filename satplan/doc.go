// Package satplan is the boundary to a delegated combinatorial solver: it
// formulates a puzzle instance as a bounded-horizon planning problem in
// propositional logic and hands solving to gophersat, a general-purpose
// SAT solver.
//
// Boundary contract:
//
//	Solve(problem, stepBound, options…) → (actions | nil, metrics)
//
//   - actions is a shortest plan of at most stepBound moves, or nil.
//   - metrics always reports how the attempt went. On failure the Timeout
//     flag separates "budget expired, still unknown" from "proven
//     infeasible within the bound" — the solver's unknown status is never
//     conflated with "no solution exists".
//
// Encoding sketch (per horizon k, all constraints conjoined):
//
//   - exactly one player cell and exactly one action per step (bf.Unique);
//   - boxes and the player never share a cell;
//   - movement and push effects per direction, with walls excluded by
//     omitting their variables entirely;
//   - frame axioms: a box vanishes from a cell only when the player steps
//     onto it, and appears only as the target of a push;
//   - final step: a box on every goal cell, none elsewhere.
//
// Horizons are tried in increasing order, so the first satisfiable one is a
// minimum-length plan within the bound. The underlying solver call is not
// interruptible; timeouts between horizons are exact, a timeout during a
// solve abandons that call.
//
// This package deliberately stays at the boundary: the search engine in
// package astar knows nothing about it, and nothing here reaches into the
// solver beyond the bf formula API.
package satplan
