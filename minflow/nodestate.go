package minflow

import "github.com/katalvlaran/minflow/graph"

// This file holds the active-node stack and the first-admissible-arc
// cursor, both scoped to a single refinement phase.

// pushActive enqueues v onto the active-node stack. Double-enqueue is
// guarded at pop time (a node popped with non-positive excess is simply
// skipped) rather than at push time, since checking membership on push
// would cost an extra scan for no benefit.
func (s *Solver) pushActive(v graph.NodeIndex) {
	s.activeStack = append(s.activeStack, v)
}

// popActive pops and returns the next node to discharge, skipping any stale
// entries left over from a node that already became inactive since it was
// pushed. ok is false once the stack is exhausted.
func (s *Solver) popActive() (v graph.NodeIndex, ok bool) {
	for len(s.activeStack) > 0 {
		top := s.activeStack[len(s.activeStack)-1]
		s.activeStack = s.activeStack[:len(s.activeStack)-1]
		if s.isActive(top) {
			return top, true
		}
	}

	return 0, false
}

// resetFirstAdmissibleArcs resets every node's cursor to the start of its
// incidence list, done once at the start of each refinement phase (the
// cursor only needs incremental resets via Relabel in between).
func (s *Solver) resetFirstAdmissibleArcs() {
	for v := 0; v < s.numNodes; v++ {
		s.firstAdmissible[v] = 0
	}
}
