// Package minflow implements a cost-scaling push-relabel minimum-cost flow
// solver: given a directed graph (graph.Graph) with arc capacities, arc unit
// costs, and per-node supplies/demands, it computes a feasible flow of
// minimum total cost.
//
// The algorithm follows Goldberg and Tarjan's successive-approximation
// scheme: costs are scaled by (n+1) and an integer tolerance epsilon starts
// at the largest scaled cost; epsilon is divided by Alpha (default 5) before
// each Refine phase, which saturates admissible arcs, discharges every active
// node via push/relabel, and re-establishes epsilon-optimality; the last
// phase runs at epsilon 1, at which point any epsilon-optimal flow is exactly
// optimal for the original integer costs.
//
// Before solving, an optional feasibility pre-check builds a
// super-source/super-sink instance from the supplies and runs it through the
// maxflow package; this catches the one failure mode the core algorithm
// cannot detect on its own (a supply/demand the network's capacity cannot
// route) and can loop forever on otherwise.
//
// Steps:
//
//	g := graph.NewBuilder()...Build()
//	s, _ := minflow.New(g, minflow.DefaultOptions())
//	s.SetNodeSupply(...)
//	s.SetArcCapacity(...)
//	s.SetArcUnitCost(...)
//	status, err := s.Solve(context.Background())
package minflow
