// Package maxflow computes maximum flow on a *graph.Graph using Dinic's
// algorithm (level graph + blocking flow), operating on dense int64
// capacity arrays keyed by graph.ArcIndex rather than on its own topology.
//
// It exists to serve as the feasibility oracle behind minflow's
// super-source/super-sink pre-check (see minflow's feasibility adapter); it
// is not used by minflow for anything else and has no dependency back on
// minflow.
package maxflow
