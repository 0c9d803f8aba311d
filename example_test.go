package shortestpaths_test

import (
	"fmt"

	"github.com/cegarflow/shortestpaths"
)

// ExampleEngine_chain demonstrates InitializeFromGoals and ExtractSolution
// on a simple three-vertex chain.
func ExampleEngine_chain() {
	e := shortestpaths.New([]uint32{5, 7})
	in := shortestpaths.Adjacency{
		{},
		{{Op: 0, Target: 0}},
		{{Op: 1, Target: 1}},
	}
	goals := shortestpaths.Goals{2: {}}

	e.InitializeFromGoals(in, goals)
	fmt.Println("dist[0] =", e.Decode(e.SPT().Dist(0)))

	path, _ := e.ExtractSolution(0, goals)
	fmt.Println("path length =", len(path))
	// Output:
	// dist[0] = 12
	// path length = 2
}

// ExampleEngine_zeroCostOperator shows how a zero-cost operator is handled
// transparently: decoded distances behave exactly as if costs were never
// scaled, even though vertex 1's internal distance is a lifted value.
func ExampleEngine_zeroCostOperator() {
	e := shortestpaths.New([]uint32{0, 1})
	in := shortestpaths.Adjacency{
		{},
		{{Op: 0, Target: 0}},
		{{Op: 1, Target: 1}},
	}
	goals := shortestpaths.Goals{2: {}}

	e.InitializeFromGoals(in, goals)
	fmt.Println(e.Decode(e.SPT().Dist(0)), e.Decode(e.SPT().Dist(1)), e.Decode(e.SPT().Dist(2)))
	// Output:
	// 1 1 0
}
