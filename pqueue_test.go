package shortestpaths

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPriorityQueue_PopsInAscendingOrder(t *testing.T) {
	q := newPriorityQueue()
	q.Push(5, 1)
	q.Push(1, 2)
	q.Push(3, 3)

	cost, v := q.Pop()
	require.Equal(t, Cost(1), cost)
	require.Equal(t, VertexID(2), v)

	cost, v = q.Pop()
	require.Equal(t, Cost(3), cost)
	require.Equal(t, VertexID(3), v)

	cost, v = q.Pop()
	require.Equal(t, Cost(5), cost)
	require.Equal(t, VertexID(1), v)

	require.True(t, q.Empty())
}

func TestPriorityQueue_AllowsDuplicateEntriesForOneVertex(t *testing.T) {
	q := newPriorityQueue()
	q.Push(10, 1)
	q.Push(2, 1) // caller relaxed to a better cost; stale entry detection is the caller's job

	_, v := q.Pop()
	require.Equal(t, VertexID(1), v)
	require.False(t, q.Empty())
	_, v = q.Pop()
	require.Equal(t, VertexID(1), v)
	require.True(t, q.Empty())
}

func TestPriorityQueue_ClearRetainsBackingArray(t *testing.T) {
	q := newPriorityQueue()
	q.Push(1, 1)
	q.Push(2, 2)
	q.Clear()
	require.True(t, q.Empty())
	q.Push(7, 9)
	cost, v := q.Pop()
	require.Equal(t, Cost(7), cost)
	require.Equal(t, VertexID(9), v)
}
