// Package sokosearch is a best-first search toolkit built around a generic
// A* engine, with a sliding-block puzzle (Sokoban) as its worked example
// and a SAT-backed bounded planner as an alternative solving strategy.
//
// Subpackages:
//
//	astar/   — generic A* engine over an implicit state graph: frontier with
//	           decrease-or-skip, explored set with strict no-reopening,
//	           timeout budget and per-search metrics
//	sokoban/ — the puzzle state space: glyph parsing, push semantics,
//	           exact-cover goal predicate and three admissible heuristics
//	satplan/ — bounded-horizon planning delegated to the gophersat SAT
//	           solver, behind a narrow solve-or-fail boundary
//	report/  — metrics records rendered as JSON or plain-text tables, with
//	           action sequences as U/D/L/R codes
//
// Quick taste:
//
//	problem, _ := sokoban.Parse(sokoban.Level1)
//	res, _ := astar.Solve[sokoban.State, sokoban.Direction](
//	    problem,
//	    sokoban.GreedyMatching(problem),
//	    astar.WithTimeout(30*time.Second),
//	)
//	fmt.Println(res.Metrics.Success, report.Moves(res.Actions)) // true R
//
// The engine never treats "no solution" as an error: exhausting the frontier
// and running out of budget are both reported through Metrics, and only
// contract violations by a Problem implementation are fatal.
package sokosearch
