package maxflow

import (
	"context"
	"math"

	"github.com/katalvlaran/minflow/graph"
)

// Dinic computes the maximum flow from source to sink in g, given a direct
// arc capacity array (capacity[a] for a in [0, g.NumArcs())); reverse-arc
// capacity starts at zero, matching the convention the rest of this module
// uses for residual capacities.
//
// Steps:
//  1. Copy capacity into a residual array sized 2*NumArcs() (O(m)).
//  2. Repeat until no more augmenting paths:
//     a. Check ctx for cancellation.
//     b. BFS from source to build level[] (O(n+m)).
//     c. If sink is unreached, stop.
//     d. DFS-based blocking flow with per-node arc cursors, optionally
//     rebuilding the level graph every LevelRebuildInterval augmentations.
//
// Returns the total flow value and the final residual-capacity array (same
// indexing as capacity, extended to reverse arcs); it does not rebuild a
// *graph.Graph since the topology never changes, only residual capacities
// do.
func Dinic(ctx context.Context, g *graph.Graph, capacity []int64, source, sink graph.NodeIndex, opts Options) (flowValue int64, residual []int64, err error) {
	if ctx == nil {
		ctx = context.Background()
	}

	if int(source) < 0 || int(source) >= g.NumNodes() {
		return 0, nil, ErrSourceOutOfRange
	}
	if int(sink) < 0 || int(sink) >= g.NumNodes() {
		return 0, nil, ErrSinkOutOfRange
	}

	numArcs := g.NumArcs()
	residual = make([]int64, 2*numArcs)
	for a := 0; a < numArcs; a++ {
		if capacity[a] < 0 {
			return 0, nil, ErrNegativeCapacity
		}
		residual[a] = capacity[a]
	}

	level := make([]int32, g.NumNodes())
	iter := make([]int, g.NumNodes())
	queue := make([]graph.NodeIndex, 0, g.NumNodes())

	for {
		if err = ctx.Err(); err != nil {
			return flowValue, nil, err
		}

		// BFS: assign levels from source, -1 means unreached.
		for v := range level {
			level[v] = -1
		}
		queue = queue[:0]
		level[source] = 0
		queue = append(queue, source)
		for i := 0; i < len(queue); i++ {
			u := queue[i]
			for _, a := range g.IncidentArcs(u) {
				if residual[a] <= 0 {
					continue
				}
				w := g.Head(a)
				if level[w] >= 0 {
					continue
				}
				level[w] = level[u] + 1
				queue = append(queue, w)
			}
		}
		if level[sink] < 0 {
			break
		}

		for v := range iter {
			iter[v] = 0
		}
		augmentCount := 0
		for {
			if err = ctx.Err(); err != nil {
				return flowValue, nil, err
			}
			pushed := dfsBlockingFlow(g, residual, level, iter, source, sink, math.MaxInt64)
			if pushed == 0 {
				break
			}
			flowValue += pushed
			augmentCount++
			if opts.LevelRebuildInterval > 0 && augmentCount%opts.LevelRebuildInterval == 0 {
				break
			}
		}
	}

	return flowValue, residual, nil
}

// dfsBlockingFlow pushes flow along the level graph from u towards sink,
// bounded by available, advancing each visited node's cursor past arcs it
// proves cannot carry flow this round so later calls skip them in O(1).
func dfsBlockingFlow(g *graph.Graph, residual []int64, level []int32, iter []int, u, sink graph.NodeIndex, available int64) int64 {
	if u == sink {
		return available
	}

	incident := g.IncidentArcs(u)
	for ; iter[u] < len(incident); iter[u]++ {
		a := incident[iter[u]]
		if residual[a] <= 0 {
			continue
		}
		w := g.Head(a)
		if level[w] != level[u]+1 {
			continue
		}

		send := available
		if residual[a] < send {
			send = residual[a]
		}
		pushed := dfsBlockingFlow(g, residual, level, iter, w, sink, send)
		if pushed > 0 {
			residual[a] -= pushed
			residual[g.Opposite(a)] += pushed
			return pushed
		}
		// No augmenting path past w this round at this level; leave the
		// cursor advanced so later calls from u skip it (dead end).
	}

	return 0
}
