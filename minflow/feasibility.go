package minflow

import (
	"context"

	"github.com/katalvlaran/minflow/graph"
	"github.com/katalvlaran/minflow/maxflow"
)

// This file adapts the max-flow feasibility oracle: it never computes a max
// flow itself, it only builds a super-source/super-sink instance over the
// caller's topology and supplies and hands it to the maxflow package.

type supplyArc struct {
	node     graph.NodeIndex
	arc      graph.ArcIndex
	fromSrc  bool // true: superSource->node, false: node->superSink
}

// checkFeasibility builds the super-source/super-sink instance, runs
// maxflow.Dinic over it, and records in feasibleSupply the largest supply
// (or demand, as a negative amount) that can actually be routed through the
// network at each node. It reports whether every node's full supply/demand
// was routable.
func (s *Solver) checkFeasibility(ctx context.Context) (feasible bool, err error) {
	builder := graph.NewBuilder()
	for a := 0; a < s.numArcs; a++ {
		builder.AddArc(s.tail(graph.ArcIndex(a)), s.head(graph.ArcIndex(a)))
	}

	superSource := graph.NodeIndex(s.numNodes)
	superSink := graph.NodeIndex(s.numNodes + 1)

	capacity := make([]int64, s.numArcs, s.numArcs+s.numNodes)
	copy(capacity, s.arcCapacity)

	var arcs []supplyArc
	var totalSupply int64
	for v := 0; v < s.numNodes; v++ {
		sup := s.supply[v]
		switch {
		case sup > 0:
			a := builder.AddArc(superSource, graph.NodeIndex(v))
			capacity = append(capacity, sup)
			arcs = append(arcs, supplyArc{node: graph.NodeIndex(v), arc: a, fromSrc: true})
			totalSupply += sup
		case sup < 0:
			a := builder.AddArc(graph.NodeIndex(v), superSink)
			capacity = append(capacity, -sup)
			arcs = append(arcs, supplyArc{node: graph.NodeIndex(v), arc: a, fromSrc: false})
		}
	}

	g2 := builder.Build()

	flowValue, residual, err := maxflow.Dinic(ctx, g2, capacity, superSource, superSink, maxflow.DefaultOptions())
	if err != nil {
		return false, err
	}

	s.feasibleSupply = make([]int64, s.numNodes)
	for _, sa := range arcs {
		routed := capacity[sa.arc] - residual[sa.arc]
		if sa.fromSrc {
			s.feasibleSupply[sa.node] = routed
		} else {
			s.feasibleSupply[sa.node] = -routed
		}
	}
	s.feasibilityChecked = true

	return flowValue == totalSupply, nil
}

// MakeFeasible overwrites every node's supply with the largest feasible
// value found by the last feasibility check, so a subsequent Solve runs on
// a balanced, routable instance. It fails with ErrFeasibilityNotChecked if
// feasibility was never checked.
func (s *Solver) MakeFeasible() error {
	if !s.feasibilityChecked {
		return ErrFeasibilityNotChecked
	}

	copy(s.supply, s.feasibleSupply)
	s.status = NotSolved

	return nil
}
