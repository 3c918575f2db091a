package minflow

import "github.com/katalvlaran/minflow/graph"

// This file is the optional price-update heuristic: a periodic bulk
// potential update that substitutes for many individual relabels. refine()
// calls it whenever UsePriceUpdate is set and enough relabels have happened
// since the last call.

// priceUpdate runs a multi-source breadth-first search, seeded at every node
// with a deficit, backward along arcs carrying residual capacity. An
// admissible arc keeps its tail in the same layer as its head; any other
// residual arc puts its tail one layer further out, and a node is re-queued
// whenever it is found at a smaller layer. Every node at layer d has its
// potential lowered by d*epsilon, which keeps every residual arc's reduced
// cost at or above -epsilon; nodes the search never reaches are treated as
// lying at the farthest layer found. This widens the set of admissible arcs
// toward the deficit nodes in one pass, instead of one relabel at a time.
func (s *Solver) priceUpdate() {
	const unreached = int32(-1)

	dist := make([]int32, s.numNodes)
	for v := range dist {
		dist[v] = unreached
	}

	queue := make([]graph.NodeIndex, 0, s.numNodes)
	for v := 0; v < s.numNodes; v++ {
		if s.excess[v] < 0 {
			dist[v] = 0
			queue = append(queue, graph.NodeIndex(v))
		}
	}

	var maxDist int32
	for i := 0; i < len(queue); i++ {
		y := queue[i]
		for _, b := range s.g.IncidentArcs(y) {
			// b runs y -> head(b); its opposite runs head(b) -> y, the
			// direction we need to walk backward from y.
			inArc := s.opposite(b)
			if s.residualCapacity[inArc] <= 0 {
				continue
			}

			x := s.head(b)
			d := dist[y] + 1
			if s.reducedCost(inArc) < 0 {
				d = dist[y]
			}
			if dist[x] != unreached && dist[x] <= d {
				continue
			}

			dist[x] = d
			if dist[x] > maxDist {
				maxDist = dist[x]
			}
			queue = append(queue, x)
		}
	}

	for v := 0; v < s.numNodes; v++ {
		d := dist[v]
		if d == unreached {
			d = maxDist
		}
		s.potential[v] -= int64(d) * s.epsilon
	}

	s.resetFirstAdmissibleArcs()
	s.numRelabelsSinceLastPriceUpdate = 0
	s.stats.PriceUpdates++
	s.opts.Logger.Debug().Int32("max_layer", maxDist).Msg("minflow: price update")
}
