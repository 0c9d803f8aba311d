// File: spt.go
// Role: SPT — the shortest-path tree aggregate (goal-distance array +
//       per-vertex parent edge) plus the dirty-vertex bookkeeping it owns.
//       Pure data and the handful of invariant-preserving mutators the rest
//       of the package builds on; no search logic lives here.
// AI-HINT (file):
//   - growTo extends in place, preserving existing entries (used when a
//     split appends v2). resetTo reinitializes every slot to INF/undefined
//     (used by a fresh FullDijkstra).
//   - markDirty must never be called on a vertex that is already dirty;
//     that would silently duplicate an entry in dirtyStates.

package shortestpaths

import "fmt"

// SPT is the shortest-path tree: for every vertex u, dist[u] is its goal
// distance and parent[u] is the transition u -> next on some goal-optimal
// path (undefined for goal vertices). dirtyStates tracks vertices currently
// marked DirtyCost; it is empty except during the body of ApplySplit.
type SPT struct {
	dist        []Cost
	parent      []Transition
	dirtyStates []VertexID
}

func newSPT() *SPT {
	return &SPT{}
}

// Len reports the number of vertices the SPT currently covers.
func (s *SPT) Len() int { return len(s.dist) }

// Dist returns the current goal distance of v. Only meaningful outside the
// body of ApplySplit, where no entry is DirtyCost.
func (s *SPT) Dist(v VertexID) Cost { return s.dist[v] }

// Parent returns the current SPT parent edge of v.
func (s *SPT) Parent(v VertexID) Transition { return s.parent[v] }

// resetTo reinitializes the SPT to cover exactly n vertices, all at
// InfCost with an undefined parent, and clears the dirty set. Used by a
// fresh FullDijkstra, which recomputes every distance from scratch.
func (s *SPT) resetTo(n int) {
	s.dist = make([]Cost, n)
	s.parent = make([]Transition, n)
	for i := range s.dist {
		s.dist[i] = InfCost
		s.parent[i] = UndefinedTransition
	}
	s.dirtyStates = s.dirtyStates[:0]
}

// growTo monotonically extends the SPT to cover n vertices if it does not
// already, leaving existing entries untouched and initializing any new
// slot to InfCost with an undefined parent. It never shrinks.
func (s *SPT) growTo(n int) {
	for len(s.dist) < n {
		s.dist = append(s.dist, InfCost)
		s.parent = append(s.parent, UndefinedTransition)
	}
}

// setGoal marks v as a goal vertex: distance zero, no parent.
func (s *SPT) setGoal(v VertexID) {
	s.dist[v] = 0
	s.parent[v] = UndefinedTransition
}

// setParent records that v's SPT edge is (op, target).
func (s *SPT) setParent(v VertexID, op OperatorID, target VertexID) {
	s.parent[v] = Transition{Op: op, Target: target}
}

// markDirty flags v as pending recomputation: dist[v] = DirtyCost,
// parent[v] cleared, v appended to dirtyStates. v must not already be
// dirty.
func (s *SPT) markDirty(v VertexID) {
	if s.dist[v] == DirtyCost {
		panic(fmt.Sprintf("shortestpaths: vertex %d marked dirty twice", v))
	}
	s.dist[v] = DirtyCost
	s.parent[v] = UndefinedTransition
	s.dirtyStates = append(s.dirtyStates, v)
}

// clearDirty empties the dirty-state list without touching dist/parent; the
// caller is responsible for having already assigned every dirty vertex a
// finite-or-InfCost distance before calling this.
func (s *SPT) clearDirty() {
	s.dirtyStates = s.dirtyStates[:0]
}
