package shortestpaths_test

import (
	"testing"

	"github.com/cegarflow/shortestpaths"
	"github.com/stretchr/testify/require"
)

// TestVerify_AgreesAfterASplit exercises property 2 of the engine's
// contract: after a split, the maintained SPT agrees with a fresh
// recomputation on the new graph.
func TestVerify_AgreesAfterASplit(t *testing.T) {
	const (
		opZeroToOne shortestpaths.OperatorID = 0
		opOneToTwo  shortestpaths.OperatorID = 1
		opTwoToSplit shortestpaths.OperatorID = 2
	)
	e := shortestpaths.New([]uint32{3, 4, 2})

	in := shortestpaths.Adjacency{
		{},
		{{Op: opZeroToOne, Target: 0}},
		{{Op: opOneToTwo, Target: 1}},
	}
	goals := shortestpaths.Goals{2: {}}
	e.InitializeFromGoals(in, goals)

	out := shortestpaths.Adjacency{
		{{Op: opZeroToOne, Target: 1}},
		{{Op: opOneToTwo, Target: 2}},
		{},
	}
	require.True(t, e.Verify(in, out, goals))

	// Split vertex 1 into 1 (settled: keeps the inherited edge) and 3
	// (unsettled: no outgoing edges). Vertex 0 gains a cheaper edge into 3
	// that leads nowhere, so 0 keeps its route through 1.
	newIn := shortestpaths.Adjacency{
		{},
		{{Op: opZeroToOne, Target: 0}},
		{{Op: opOneToTwo, Target: 1}},
		{{Op: opTwoToSplit, Target: 0}},
	}
	newOut := shortestpaths.Adjacency{
		{{Op: opZeroToOne, Target: 1}, {Op: opTwoToSplit, Target: 3}},
		{{Op: opOneToTwo, Target: 2}},
		{},
		{},
	}

	e.ApplySplit(newIn, newOut, 1, 1, 3, true)
	require.True(t, e.Verify(newIn, newOut, goals))
}
