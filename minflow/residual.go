package minflow

import "github.com/katalvlaran/minflow/graph"

// This file is a thin accessor layer over the borrowed Topology plus this
// Solver's own residual-capacity and scaled-cost arrays. It never mutates
// topology, only the arrays it owns.

func (s *Solver) head(a graph.ArcIndex) graph.NodeIndex { return s.g.Head(a) }
func (s *Solver) tail(a graph.ArcIndex) graph.NodeIndex { return s.g.Tail(a) }
func (s *Solver) opposite(a graph.ArcIndex) graph.ArcIndex { return s.g.Opposite(a) }

// reducedCost returns c_p(a) = scaled_unit_cost[a] + potential[tail(a)] -
// potential[head(a)].
func (s *Solver) reducedCost(a graph.ArcIndex) int64 {
	return s.scaledUnitCost[a] + s.potential[s.tail(a)] - s.potential[s.head(a)]
}

// isAdmissible reports whether a carries residual capacity and its reduced
// cost is strictly negative.
func (s *Solver) isAdmissible(a graph.ArcIndex) bool {
	return s.residualCapacity[a] > 0 && s.reducedCost(a) < 0
}

// isActive reports whether v has positive excess.
func (s *Solver) isActive(v graph.NodeIndex) bool {
	return s.excess[v] > 0
}

// Flow returns the current flow on direct arc a (or, symmetrically, the
// negated flow if a reverse arc index is passed): flow[a] =
// residualCapacity[opposite(a)] for a direct arc, -residualCapacity[a] for
// a reverse arc.
func (s *Solver) Flow(a graph.ArcIndex) int64 {
	if s.g.IsDirect(a) {
		return s.residualCapacity[s.opposite(a)]
	}
	return -s.residualCapacity[a]
}

// FeasibleSupply returns the largest supply (if > 0) or largest demand in
// absolute value (if < 0) admissible at v, as determined by the feasibility
// oracle. Before feasibility has been checked, it returns v's currently set
// supply.
func (s *Solver) FeasibleSupply(v graph.NodeIndex) int64 {
	if !s.feasibilityChecked {
		return s.supply[v]
	}
	return s.feasibleSupply[v]
}

// OptimalCost returns the total flow cost using the original, unscaled
// costs. Only meaningful when Status() == Optimal.
func (s *Solver) OptimalCost() int64 {
	var total int64
	for a := 0; a < s.numArcs; a++ {
		total += s.Flow(graph.ArcIndex(a)) * s.arcUnitCost[a]
	}

	return total
}
