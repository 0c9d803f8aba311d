// File: engine.go
// Role: Engine — the public facade (Construct/InitializeFromGoals/
//       ApplySplit/ExtractSolution/Verify) and the scratch state it owns
//       exclusively (SPT, both priority queues, the dirty-candidate
//       bitset). Functional options configure construction, following
//       lvlath's dijkstra.Option / builder.Option pattern.
// AI-HINT (file):
//   - An Engine is single-owner: never call two of its methods
//     concurrently, and never retain `in`/`out`/`goals` beyond the call
//     they were passed to.

package shortestpaths

import "github.com/bits-and-blooms/bitset"

// Engine owns the incremental shortest-path-tree state for one abstract
// transition system. It is constructed once via New and then driven by
// InitializeFromGoals followed by a stream of ApplySplit calls.
type Engine struct {
	arith         costArith
	operatorCosts []Cost // internal (encoded) costs, indexed by OperatorID

	spt *SPT

	// Scratch buffers retained across calls for allocation reuse. Every
	// method that touches them clears them on entry and leaves them empty
	// on exit.
	openQueue      *priorityQueue
	candidateQueue *priorityQueue
	dirtyCandidate *bitset.BitSet

	trace func(format string, args ...any)
}

// Option configures an Engine at construction time.
type Option func(*engineConfig)

type engineConfig struct {
	trace func(format string, args ...any)
}

func noopTrace(string, ...any) {}

func defaultConfig() engineConfig {
	return engineConfig{trace: noopTrace}
}

// WithTrace installs a callback invoked at key points of
// InitializeFromGoals and ApplySplit, mirroring the original planner's
// `if (debug) { cout << ... }` tracing. Passing nil restores the default
// (silent) no-op. Tracing is the engine's only avenue for diagnostic
// output; the core never logs, persists, or touches a CLI/network surface.
func WithTrace(fn func(format string, args ...any)) Option {
	return func(c *engineConfig) {
		if fn == nil {
			fn = noopTrace
		}
		c.trace = fn
	}
}

// New constructs an Engine from the operator-cost table (external 32-bit
// costs, indexed by OperatorID). No graph is attached yet; call
// InitializeFromGoals next. Operator costs are immutable for the engine's
// lifetime — cost partitioning is applied externally by constructing a new
// Engine with a different table.
func New(operatorCosts []Cost32, opts ...Option) *Engine {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	arith := newCostArith(operatorCosts)
	encoded := make([]Cost, len(operatorCosts))
	for i, c := range operatorCosts {
		encoded[i] = arith.encode(c)
	}

	return &Engine{
		arith:          arith,
		operatorCosts:  encoded,
		spt:            newSPT(),
		openQueue:      newPriorityQueue(),
		candidateQueue: newPriorityQueue(),
		trace:          cfg.trace,
	}
}

// Decode converts one of the engine's internal distances back to an
// external 32-bit cost, per the CostArith encoding rule. Exposed so callers
// can interpret SPT.Dist() values without reimplementing the
// epsilon-lifting rule.
func (e *Engine) Decode(c Cost) Cost32 {
	return e.arith.decode(c)
}

// SPT exposes the engine's maintained shortest-path tree for read-only
// inspection (Dist/Parent). The returned pointer aliases the engine's own
// state and must not be mutated by the caller.
func (e *Engine) SPT() *SPT {
	return e.spt
}
