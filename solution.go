// File: solution.go
// Role: SolutionExtract — walks the maintained SPT from a source vertex to
//       a goal, the read side of the engine's contract.
// AI-HINT (file):
//   - Mirrors shortest_paths.cc's extract_solution_from_shortest_path_tree:
//     follow parent[] until a goal vertex is reached, accumulating one
//     Transition per step. Unreachable means ok=false, never an error.

package shortestpaths

import "fmt"

// ExtractSolution walks the SPT from init to a goal, returning the sequence
// of transitions taken (path[0] leaves init, path[len-1] lands on a goal
// vertex) and ok=true, or ok=false if init has no finite distance to the
// goal set. If init is itself a goal, the solution is the empty sequence.
// The dirty set must be empty (i.e. no ApplySplit call may be in progress).
func (e *Engine) ExtractSolution(init VertexID, goals Goals) (path []Transition, ok bool) {
	if len(e.spt.dirtyStates) != 0 {
		panic("shortestpaths: ExtractSolution called while a repair is in progress")
	}
	if _, isGoal := goals[init]; isGoal {
		return nil, true
	}
	if e.spt.dist[init] == InfCost {
		return nil, false
	}

	current := init
	for {
		if _, isGoal := goals[current]; isGoal {
			return path, true
		}
		t := e.spt.parent[current]
		if !t.IsDefined() {
			panic(fmt.Sprintf("shortestpaths: ExtractSolution: vertex %d has finite distance but no SPT parent and is not a goal", current))
		}
		if t.Target == current {
			panic(fmt.Sprintf("shortestpaths: ExtractSolution: vertex %d has a self-loop SPT parent edge", current))
		}
		if e.spt.dist[t.Target] > e.spt.dist[current] {
			panic(fmt.Sprintf("shortestpaths: ExtractSolution: SPT parent edge %d->%d does not decrease distance (%d -> %d)", current, t.Target, e.spt.dist[current], e.spt.dist[t.Target]))
		}
		path = append(path, t)
		current = t.Target
	}
}
