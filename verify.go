// File: verify.go
// Role: Verifier — an expensive, debug/test-only cross-check that the
//       maintained SPT still agrees with a from-scratch recomputation.
// AI-HINT (file):
//   - Mirrors shortest_paths.cc's test_distances: (1) every non-goal vertex
//     with a finite distance has a parent edge that is both present in its
//     forward adjacency and arithmetically consistent, and (2) a completely
//     fresh backward Dijkstra agrees with the maintained distances for
//     every vertex. Never call this on a hot path; it is O((V+E) log V) on
//     top of whatever already ran.

package shortestpaths

// Verify cross-checks the engine's maintained SPT against a from-scratch
// recomputation over the given adjacency snapshots. It returns false (never
// panics) on a genuine mismatch, so a test can assert on the result; a
// caller that only wants a hard failure can wrap this in require.True. in
// and out must agree with whatever graph the engine's dist/parent currently
// describe. Verify never needs to be called in production use; it exists
// for tests and debug builds.
func (e *Engine) Verify(in, out Adjacency, goals Goals) bool {
	if len(e.spt.dirtyStates) != 0 {
		panic("shortestpaths: Verify called while a repair is in progress")
	}
	n := len(in)
	if len(out) != n {
		panic("shortestpaths: Verify: in/out adjacency length mismatch")
	}

	for v := 0; v < n; v++ {
		vid := VertexID(v)
		if _, isGoal := goals[vid]; isGoal {
			if e.spt.dist[vid] != 0 {
				return false
			}
			continue
		}
		d := e.spt.dist[vid]
		if d == InfCost {
			continue
		}
		t := e.spt.parent[vid]
		if !t.IsDefined() {
			return false
		}
		if !containsTransition(out[vid], t) {
			return false
		}
		want := addSaturating(e.operatorCosts[t.Op], e.spt.dist[t.Target])
		if want != d {
			return false
		}
	}

	fresh := e.recomputeFullDijkstra(in, goals)
	for v := 0; v < n; v++ {
		if fresh[v] != e.spt.dist[VertexID(v)] {
			return false
		}
	}

	return true
}

// recomputeFullDijkstra runs an independent backward Dijkstra from goals,
// writing results into a freshly allocated slice rather than the engine's
// own SPT, so Verify never mutates the state it is checking.
func (e *Engine) recomputeFullDijkstra(in Adjacency, goals Goals) []Cost {
	n := len(in)
	dist := make([]Cost, n)
	for i := range dist {
		dist[i] = InfCost
	}

	scratch := newPriorityQueue()
	for g := range goals {
		dist[g] = 0
		scratch.Push(0, g)
	}

	for !scratch.Empty() {
		oldG, s := scratch.Pop()
		g := dist[s]
		if g < oldG {
			continue
		}
		for _, t := range in[s] {
			candidate := addSaturating(e.operatorCosts[t.Op], g)
			if candidate < dist[t.Target] {
				dist[t.Target] = candidate
				scratch.Push(candidate, t.Target)
			}
		}
	}

	return dist
}
