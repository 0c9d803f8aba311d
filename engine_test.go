package shortestpaths_test

import (
	"fmt"
	"testing"

	"github.com/cegarflow/shortestpaths"
	"github.com/stretchr/testify/require"
)

// TestWithTrace_CallbackFiresDuringInitializeAndApplySplit confirms the
// trace hook installed via WithTrace is actually invoked at the points
// documented on engine.go (InitializeFromGoals and ApplySplit), not just
// wired and silently unused.
func TestWithTrace_CallbackFiresDuringInitializeAndApplySplit(t *testing.T) {
	var messages []string
	e := shortestpaths.New([]uint32{3, 4, 4}, shortestpaths.WithTrace(func(format string, args ...any) {
		messages = append(messages, fmt.Sprintf(format, args...))
	}))

	const (
		opZeroToOne shortestpaths.OperatorID = 0
		opOneToTwo  shortestpaths.OperatorID = 1
		opOneToGoal shortestpaths.OperatorID = 2
	)

	in := shortestpaths.Adjacency{
		{},
		{{Op: opZeroToOne, Target: 0}},
		{{Op: opOneToTwo, Target: 1}},
	}
	goals := shortestpaths.Goals{2: {}}
	e.InitializeFromGoals(in, goals)
	require.NotEmpty(t, messages, "InitializeFromGoals must invoke the trace callback")
	afterInit := len(messages)

	newIn := shortestpaths.Adjacency{
		{},
		{{Op: opZeroToOne, Target: 0}},
		{},
		{{Op: opOneToGoal, Target: 1}},
	}
	newOut := shortestpaths.Adjacency{
		{{Op: opZeroToOne, Target: 1}},
		{},
		{},
		{{Op: opOneToTwo, Target: 2}},
	}
	e.ApplySplit(newIn, newOut, 1, 1, 3, true)

	require.Greater(t, len(messages), afterInit, "ApplySplit must invoke the trace callback at least once")
}

// TestWithTrace_NilRestoresDefaultNoop confirms passing nil to WithTrace
// falls back to the silent default rather than leaving the trace field
// unset.
func TestWithTrace_NilRestoresDefaultNoop(t *testing.T) {
	require.NotPanics(t, func() {
		e := shortestpaths.New([]uint32{1}, shortestpaths.WithTrace(nil))
		in := shortestpaths.Adjacency{
			{{Op: 0, Target: 1}},
			{},
		}
		e.InitializeFromGoals(in, shortestpaths.Goals{1: {}})
	})
}
