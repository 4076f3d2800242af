package sokoban_test

import (
	"fmt"

	"github.com/velzan/sokosearch/astar"
	"github.com/velzan/sokosearch/sokoban"
)

// ExampleParse parses the minimal level, solves it with greedy matching and
// prints the resulting plan.
func ExampleParse() {
	problem, err := sokoban.Parse(sokoban.Level1)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	res, err := astar.Solve[sokoban.State, sokoban.Direction](
		problem,
		sokoban.GreedyMatching(problem),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("solved:", res.Metrics.Success)
	for _, a := range res.Actions {
		fmt.Println("move:", a)
	}
	// Output:
	// solved: true
	// move: RIGHT
}

// ExampleProblem_Render shows a state re-rendered after a push: the box
// lands on the goal and becomes '*'.
func ExampleProblem_Render() {
	problem, _ := sokoban.Parse(sokoban.Level1)
	next, _, _ := problem.Apply(problem.InitialState(), sokoban.Right)
	fmt.Println(problem.Render(next))
	// Output:
	// #####
	// # @*#
	// #####
}
