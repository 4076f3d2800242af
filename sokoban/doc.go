// Package sokoban provides the sliding-block puzzle state space used to
// exercise the astar engine end to end: level parsing, legal-move and
// push semantics, and admissible heuristic estimators.
//
// Model:
//
//   - A level is a rectangular block of glyphs mapping (row, column) cells
//     to wall, box, goal, player, box-on-goal, player-on-goal or floor.
//   - Problem holds the per-instance constants: walls, goals, grid extents
//     and the initial configuration. It is read-only after Parse and safe
//     to share across concurrent searches.
//   - State holds only what changes during search — the player cell and the
//     canonical box set (PosSet). States are plain comparable values, so
//     equality and map keying come for free and stay consistent with the
//     "walls and goals are context, not state" invariant.
//
// Transitions:
//
//   - The player moves one cell per action in one of four unit directions.
//   - Moving into a box pushes it one cell further the same way; a push is
//     illegal when the box's destination is a wall or another box.
//   - Every move costs exactly 1.
//   - The goal predicate is exact equality of the box set with the goal
//     set, which implies every goal is covered and no box sits off-goal.
//
// Heuristics (all admissible, all 0 on goal states):
//
//   - SumOfNearest:    Σ per-box Manhattan distance to the nearest goal.
//   - UnmetGoalCount:  number of boxes not on a goal; cheapest, least informed.
//   - GreedyMatching:  boxes claim distinct goals greedily; tighter than
//     SumOfNearest, consistency not proven.
//
// Errors:
//
//   - Parse surfaces structural defects (ErrEmptyLevel, ErrNoPlayer,
//     ErrDuplicatePlayer, ErrBoxGoalMismatch) instead of tolerating them.
//   - Apply returns ErrUnknownAction for a Direction outside the
//     enumeration — a contract violation, treated as fatal by the engine.
package sokoban
