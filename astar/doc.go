// Package astar provides a generic best-first (A*) search engine over
// implicit state graphs, finding a minimum-cost action sequence between a
// start configuration and a goal condition.
//
// Overview:
//
//   - The engine is generic over the state type S (comparable) and the
//     action type A. A problem plugs in through the Problem contract:
//     InitialState, IsGoal, Actions and Apply.
//   - Exploration is ordered by f = g + h, where g is the accumulated path
//     cost and h a caller-supplied Heuristic estimate of the remaining cost.
//   - Duplicate detection uses a frontier membership index plus an explored
//     set with a strict no-reopening policy: once a state has been expanded
//     it is never expanded again, even if a cheaper path to it turns up.
//
// Guarantees and caveats:
//
//   - With an admissible and consistent heuristic, the returned plan cost is
//     optimal.
//   - With an admissible but inconsistent heuristic, the no-reopening policy
//     may forfeit optimality; the search still terminates and returns a
//     valid plan when one is found.
//   - With an inadmissible heuristic no optimality claim is made.
//
// Outcomes:
//
//   - Success:   Result.Path and Result.Actions populated, Metrics.Success.
//   - Exhausted: frontier emptied, provably no solution; Path/Actions nil.
//   - Timed out: budget or context expired; Path/Actions nil and
//     Metrics.Timeout set. Neither failure is an error.
//
// Options:
//
//   - WithTimeout(d): cap the wall-clock search duration. The budget is
//     checked exactly once per expansion, so abort latency is bounded by one
//     branching factor's worth of successor generation.
//   - WithContext(ctx): external cancellation, folded into the timeout
//     outcome.
//
// Concurrency:
//
//   - One Solve call is single-threaded and self-contained. Concurrent
//     searches each get their own frontier, explored set and metrics, so
//     they share nothing and need no locking; a read-only Problem may be
//     shared freely between them.
//
// Complexity:
//
//   - Time:  O(b^d) generated nodes worst case (branching factor b, depth d),
//     with O(log N) per frontier operation.
//   - Space: O(N) for the node arena, frontier and explored set combined —
//     Metrics.MaxMemoryNodes reports the observed peak.
package astar
