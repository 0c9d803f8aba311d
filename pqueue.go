// File: pqueue.go
// Role: PriorityQueue — addressable-by-push min-heap of (cost, vertex),
//       backed by container/heap exactly as lvlath's dijkstra.nodePQ and
//       prim_kruskal do. Two instances are retained as Engine fields
//       (openQueue, candidateQueue) and reused across calls; Clear resets
//       a queue for reuse without reallocating its backing array.
// AI-HINT (file):
//   - This is a "lazy decrease-key" queue: Push never looks for an existing
//     entry for v. Callers detect staleness at Pop time by comparing the
//     popped cost against the authoritative value in the SPT.

package shortestpaths

import "container/heap"

// pqItem is one entry of the heap: a candidate cost for reaching vertex v.
type pqItem struct {
	cost Cost
	v    VertexID
}

// minHeap implements heap.Interface over a slice of pqItem, ordered by
// ascending cost.
type minHeap []pqItem

func (h minHeap) Len() int            { return len(h) }
func (h minHeap) Less(i, j int) bool  { return h[i].cost < h[j].cost }
func (h minHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *minHeap) Push(x interface{}) { *h = append(*h, x.(pqItem)) }
func (h *minHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// priorityQueue is a binary min-heap of (cost, vertex), permitting multiple
// pushes for the same vertex; staleness is the caller's responsibility to
// detect (compare the popped cost against the current authoritative
// distance and skip if it no longer matches).
type priorityQueue struct {
	h minHeap
}

func newPriorityQueue() *priorityQueue {
	return &priorityQueue{h: make(minHeap, 0, 64)}
}

// Clear empties the queue, retaining its backing array for reuse.
func (q *priorityQueue) Clear() {
	q.h = q.h[:0]
}

// Empty reports whether the queue has no entries.
func (q *priorityQueue) Empty() bool {
	return len(q.h) == 0
}

// Push inserts (cost, v). Multiple entries for the same v are permitted.
func (q *priorityQueue) Push(cost Cost, v VertexID) {
	heap.Push(&q.h, pqItem{cost: cost, v: v})
}

// Pop removes and returns the minimum-cost entry.
func (q *priorityQueue) Pop() (Cost, VertexID) {
	item := heap.Pop(&q.h).(pqItem)
	return item.cost, item.v
}
