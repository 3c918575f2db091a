package minflow

import (
	"github.com/katalvlaran/minflow/graph"
)

// Solver owns every per-node and per-arc array for the duration of a solve,
// and exclusively borrows its Topology for the lifetime of the Solver.
//
// A Solver is not safe for concurrent use by multiple goroutines; separate
// Solver instances share nothing and are independently safe.
type Solver struct {
	g    Topology
	opts Options

	numNodes int
	numArcs  int // direct arcs

	// Authoritative, caller-set data. Re-derived into the working arrays
	// below at the start of every Solve: a setter call always invalidates
	// any prior solution, so nothing here is warm-started across a mutation.
	arcCapacity []int64 // len numArcs
	arcUnitCost []int64 // len numArcs, unscaled
	supply      []int64 // len numNodes, "initial_supply"
	arcFlowSeed []int64 // len numArcs, optional SetArcFlow warm-start seed

	// feasibleSupply persists across Solve calls once computed by the
	// feasibility oracle; until then FeasibleSupply reports supply instead.
	feasibleSupply     []int64
	feasibilityChecked bool

	// Working arrays, values reset at the start of every Solve.
	residualCapacity []int64  // len 2*numArcs
	scaledUnitCost   []int64  // len 2*numArcs
	excess           []int64  // len numNodes
	potential        []int64  // len numNodes
	firstAdmissible  []int32  // len numNodes, cursor into g.IncidentArcs(v)
	activeStack      []graph.NodeIndex

	epsilon           int64
	costScalingFactor int64 // n+1

	numRelabelsSinceLastPriceUpdate int64
	priceUpdateInterval             int64

	status Status
	stats  Stats
}

// New allocates a Solver over g. Capacities, costs, and supplies all start
// at zero; call the setters before Solve.
func New(g Topology, opts Options) (*Solver, error) {
	n := g.NumNodes()
	m := g.NumArcs()

	if opts.Alpha <= 0 {
		opts.Alpha = 5
	}

	interval := opts.PriceUpdateInterval
	if interval <= 0 {
		interval = int64(n)
		if interval == 0 {
			interval = 1
		}
	}

	s := &Solver{
		g:        g,
		opts:     opts,
		numNodes: n,
		numArcs:  m,

		arcCapacity: make([]int64, m),
		arcUnitCost: make([]int64, m),
		supply:      make([]int64, n),
		arcFlowSeed: make([]int64, m),

		feasibleSupply: make([]int64, n),

		residualCapacity: make([]int64, 2*m),
		scaledUnitCost:   make([]int64, 2*m),
		excess:           make([]int64, n),
		potential:        make([]int64, n),
		firstAdmissible:  make([]int32, n),
		activeStack:      make([]graph.NodeIndex, 0, n),

		priceUpdateInterval: interval,

		status: NotSolved,
	}

	return s, nil
}

// SetNodeSupply sets the supply (positive) or demand (negative, as its
// additive inverse) at v. Invalidates any prior solution.
func (s *Solver) SetNodeSupply(v graph.NodeIndex, supply int64) error {
	if int(v) < 0 || int(v) >= s.numNodes {
		return ErrNodeOutOfRange
	}
	s.supply[v] = supply
	s.status = NotSolved

	return nil
}

// SetArcCapacity sets arc a's capacity. Invalidates any prior solution.
func (s *Solver) SetArcCapacity(a graph.ArcIndex, capacity int64) error {
	if int(a) < 0 || int(a) >= s.numArcs {
		return ErrArcOutOfRange
	}
	if capacity < 0 {
		return ErrNegativeCapacity
	}
	s.arcCapacity[a] = capacity
	s.status = NotSolved

	return nil
}

// SetArcUnitCost sets arc a's unscaled unit cost. Invalidates any prior
// solution.
func (s *Solver) SetArcUnitCost(a graph.ArcIndex, cost int64) error {
	if int(a) < 0 || int(a) >= s.numArcs {
		return ErrArcOutOfRange
	}
	s.arcUnitCost[a] = cost
	s.status = NotSolved

	return nil
}

// SetArcFlow seeds an initial pseudo-flow on arc a for the next Solve call
// only: flow must not exceed a's current capacity. This is not a warm start
// across mutations — any setter call after Solve starts the next Refine
// loop over from this seeded residual state, not from the previous
// solution.
func (s *Solver) SetArcFlow(a graph.ArcIndex, flow int64) error {
	if int(a) < 0 || int(a) >= s.numArcs {
		return ErrArcOutOfRange
	}
	if flow > s.arcCapacity[a] {
		return ErrFlowExceedsCapacity
	}
	s.arcFlowSeed[a] = flow
	s.status = NotSolved

	return nil
}

// Status returns the outcome of the last Solve call.
func (s *Solver) Status() Status { return s.status }

// Stats returns a snapshot of activity counters from the last Solve call.
func (s *Solver) Stats() Stats { return s.stats }
