// Package graph defines the static, reverse-arc directed graph consumed by
// the minflow cost-scaling solver and the maxflow feasibility oracle.
//
// A Graph is built once, via Builder, from a sequence of AddArc calls, and
// is immutable afterwards. Every added arc gets an implicit reverse arc: arc
// indices occupy a mirrored-halves space, direct arcs first (0..NumArcs()-1)
// then their reverses (NumArcs()..2*NumArcs()-1), so Opposite is an O(1)
// index transform and no reverse-arc bookkeeping is needed at query time.
//
// Graph carries topology only — no capacities, costs, or flow. Those arrays
// are owned by whatever algorithm consumes the graph (minflow.Solver,
// maxflow.Dinic), each keyed by the same ArcIndex/NodeIndex space.
package graph
