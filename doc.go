// Package shortestpaths implements the incremental shortest-path engine at
// the heart of a Cartesian counterexample-guided abstraction refinement
// (CEGAR) planner.
//
// Given a finite directed weighted graph (an abstract transition system) and
// a non-empty goal set, the engine maintains the single-source-to-goal
// shortest-path tree (SPT) under a stream of vertex-splitting refinements.
// After each split it repairs distances and the tree incrementally instead
// of recomputing from scratch: the graph is refined thousands to millions
// of times during planning, and full recomputation would dominate cost.
//
// The core algorithm is "dijkstra-from-orphans": after a vertex v is split
// into v1 and v2, the engine identifies exactly the set of vertices whose
// distance may have changed ("orphans"), salvages those that can be
// reconnected to a settled neighbor at no extra cost, and runs a bounded
// Dijkstra over the remainder.
//
// Complexity:
//
//   - InitializeFromGoals: O((V + E) log V), a single backward Dijkstra
//     from the goal set.
//   - ApplySplit:           O((D + E_D) log V) where D is the number of
//     orphaned vertices and E_D the edges incident to them — far below a
//     full recomputation for small, local splits.
//
// Concurrency:
//
//   - An Engine is single-owner and not safe for concurrent use. Adjacency
//     snapshots passed to InitializeFromGoals/ApplySplit/Verify are borrowed
//     for the duration of that one call only.
//
// Out of scope (external collaborators, only their contracts appear here):
// the abstraction refinement loop that decides what to split, the
// transition-system storage itself, and everything upstream of it
// (plan search, heuristics assembly, cost partitioning, pattern generation,
// sampling, plugin/CLI wiring).
package shortestpaths
