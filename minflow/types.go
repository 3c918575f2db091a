package minflow

import (
	"github.com/rs/zerolog"

	"github.com/katalvlaran/minflow/graph"
)

// Topology is the capability set the solver needs from a graph: dense node
// and arc counts, endpoint and reverse-arc accessors, and a stable-order
// incidence iterator. graph.Graph satisfies it; nothing in this package
// depends on the concrete type.
type Topology interface {
	NumNodes() int
	NumArcs() int
	Head(a graph.ArcIndex) graph.NodeIndex
	Tail(a graph.ArcIndex) graph.NodeIndex
	Opposite(a graph.ArcIndex) graph.ArcIndex
	IsDirect(a graph.ArcIndex) bool
	IncidentArcs(v graph.NodeIndex) []graph.ArcIndex
}

// Status is the outcome of the last Solve call.
type Status int

const (
	// NotSolved is the status before the first successful Solve, and after
	// any setter call invalidates a prior solution.
	NotSolved Status = iota
	// Optimal means Solve found a minimum-cost flow.
	Optimal
	// Feasible is declared for interface completeness but never emitted by
	// this engine, which either finds an optimum or reports Infeasible.
	Feasible
	// Infeasible means the feasibility pre-check found supplies the network
	// cannot route; FeasibleSupply reports the closest feasible values.
	Infeasible
	// Unbalanced means the supplies do not sum to zero.
	Unbalanced
	// BadResult means post-solve validation found an epsilon-optimality
	// violation; this indicates an implementation bug and should never
	// happen in a correct build.
	BadResult
	// BadCostRange means scaling costs by (n+1) would overflow int64, or the
	// worst-case potential range would.
	BadCostRange
)

// String renders the status the way a log line or test failure wants it.
func (st Status) String() string {
	switch st {
	case NotSolved:
		return "NOT_SOLVED"
	case Optimal:
		return "OPTIMAL"
	case Feasible:
		return "FEASIBLE"
	case Infeasible:
		return "INFEASIBLE"
	case Unbalanced:
		return "UNBALANCED"
	case BadResult:
		return "BAD_RESULT"
	case BadCostRange:
		return "BAD_COST_RANGE"
	default:
		return "UNKNOWN"
	}
}

// Options configures a Solver.
//   - Alpha: epsilon is divided by Alpha (integer division, floored at 1)
//     before each refinement phase. Default 5; 2 gives the theoretical
//     complexity bound, larger values are empirically faster in practice.
//     Fixed for the life of a solve.
//   - UsePriceUpdate: enables the price-update heuristic (default true).
//     Purely a speed optimization; disabling it never changes the result.
//   - CheckFeasibility: runs the max-flow feasibility pre-check before
//     solving (default true). Disabling it trades a correctness guarantee
//     for speed: an infeasible instance can make the core loop spin forever.
//   - PriceUpdateInterval: run the price update after this many relabels since
//     the last one (default: NumNodes of the graph being solved, resolved
//     in New if left at zero).
//   - Logger: optional structured logger for phase-boundary and terminal
//     events; the zero value is zerolog's documented no-op logger.
//   - Debug: runs a post-solve epsilon-optimality scan over every residual
//     arc before reporting Optimal (default false). An implementation bug
//     would surface here as BadResult instead of a silently wrong cost; the
//     scan is O(arcs) and skipped by default since a correct build never
//     trips it.
type Options struct {
	Alpha               int64
	UsePriceUpdate      bool
	CheckFeasibility    bool
	Debug               bool
	PriceUpdateInterval int64
	Logger              zerolog.Logger
}

// DefaultOptions returns Alpha=5, price update and feasibility checking
// both enabled, PriceUpdateInterval left at 0 (resolved to NumNodes in New).
func DefaultOptions() Options {
	return Options{
		Alpha:            5,
		UsePriceUpdate:   true,
		CheckFeasibility: true,
	}
}

// Stats is a point-in-time snapshot of solver activity counters, reset at
// the start of every Solve call.
type Stats struct {
	Pushes       int64
	Relabels     int64
	PriceUpdates int64
	RefinePhases int64
}
