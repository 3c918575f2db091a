package graph

// NodeIndex is a dense, zero-based node identifier.
type NodeIndex int32

// ArcIndex is a dense, zero-based arc identifier. Direct arcs occupy
// [0, numArcs); their reverses occupy [numArcs, 2*numArcs).
type ArcIndex int32

// Graph is an immutable, static directed multigraph with explicit reverse
// arcs. It is built exclusively through Builder; once Build returns, a
// Graph never mutates.
type Graph struct {
	numNodes int
	numArcs  int // count of direct arcs only

	// tail/head are indexed over the full [0, 2*numArcs) arc space.
	tail []NodeIndex
	head []NodeIndex

	// incident[v] lists, in the order arcs were added (direct arcs) followed
	// by their reverses as they were discovered, every arc a with Tail(a)==v.
	// This single slice doubles as "outgoing arcs of v" (the direct arcs it
	// contains) and "reverse-of-incoming arcs of v" (the rest), which is
	// exactly the incidence view the residual graph needs.
	incident [][]ArcIndex
}

// NumNodes returns the number of nodes in the graph.
func (g *Graph) NumNodes() int { return g.numNodes }

// NumArcs returns the number of direct arcs (reverse arcs are not counted).
func (g *Graph) NumArcs() int { return g.numArcs }
