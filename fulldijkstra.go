// File: fulldijkstra.go
// Role: FullDijkstra — backward Dijkstra from the goal set over a borrowed
//       adjacency snapshot, establishing the initial SPT. Verify runs its
//       own copy of the same loop (recomputeFullDijkstra in verify.go).
// AI-HINT (file):
//   - "Backward" means we walk `in`, the predecessor adjacency: a goal
//     starts at distance 0 and relaxes its predecessors, precisely as
//     lvlath/dijkstra.Dijkstra relaxes *successors* of a forward source —
//     same algorithm, mirrored direction.

package shortestpaths

// InitializeFromGoals runs a full backward Dijkstra from goals over in (the
// backward-adjacency snapshot) and establishes dist/parent for every
// vertex. goals must be non-empty. in is borrowed for the duration of this
// call only.
func (e *Engine) InitializeFromGoals(in Adjacency, goals Goals) {
	if len(goals) == 0 {
		panic("shortestpaths: InitializeFromGoals requires a non-empty goal set")
	}

	n := len(in)
	e.spt.resetTo(n)
	e.openQueue.Clear()

	for g := range goals {
		e.spt.setGoal(g)
		e.openQueue.Push(0, g)
	}

	e.trace("full dijkstra: %d vertices, %d goals", n, len(goals))

	for !e.openQueue.Empty() {
		oldG, s := e.openQueue.Pop()
		g := e.spt.dist[s]
		if g < oldG {
			continue // stale heap entry; s was already relaxed to a better cost
		}

		for _, t := range in[s] {
			opCost := e.operatorCosts[t.Op]
			candidate := addSaturating(opCost, g)
			if candidate < e.spt.dist[t.Target] {
				e.spt.dist[t.Target] = candidate
				e.spt.setParent(t.Target, t.Op, s)
				e.openQueue.Push(candidate, t.Target)
			}
		}
	}
}
