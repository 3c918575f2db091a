package minflow

import (
	"math"

	"github.com/katalvlaran/minflow/graph"
)

// This file drives one full epsilon-optimal pass over the residual graph:
// discharge, push, and relabel, gated by the lookAhead heuristic.

// refine saturates every currently admissible arc (which leaves every
// residual arc with a non-negative reduced cost), then discharges
// every active node until none remain. Potentials and excess persist across
// calls; only the admissible-arc cursor is reset at the top of each phase.
func (s *Solver) refine() {
	s.resetFirstAdmissibleArcs()
	s.saturateAdmissibleArcs()

	s.activeStack = s.activeStack[:0]
	for v := 0; v < s.numNodes; v++ {
		if s.isActive(graph.NodeIndex(v)) {
			s.pushActive(graph.NodeIndex(v))
		}
	}

	for {
		v, ok := s.popActive()
		if !ok {
			break
		}
		s.discharge(v)

		if s.opts.UsePriceUpdate && s.numRelabelsSinceLastPriceUpdate >= s.priceUpdateInterval {
			s.priceUpdate()
		}
	}
}

// saturateAdmissibleArcs pushes full residual capacity along every currently
// admissible arc, direct or reverse.
func (s *Solver) saturateAdmissibleArcs() {
	for a := 0; a < 2*s.numArcs; a++ {
		arc := graph.ArcIndex(a)
		if s.isAdmissible(arc) {
			s.pushFlow(s.residualCapacity[arc], arc)
		}
	}
}

// discharge pushes v's excess along admissible outgoing arcs approved by
// LookAhead, relabeling v whenever its cursor runs past its incidence list
// without finding one. It stops once v is no longer active, or once v turns
// out to have no residual-positive outgoing arc at all (relabel then reports
// false, which can only happen for a node that should never have gone active
// in the first place).
func (s *Solver) discharge(v graph.NodeIndex) {
	arcs := s.g.IncidentArcs(v)

	for s.isActive(v) {
		cursor := int(s.firstAdmissible[v])
		if cursor >= len(arcs) {
			if !s.relabel(v) {
				break
			}
			continue
		}

		a := arcs[cursor]
		if s.residualCapacity[a] > 0 && s.reducedCost(a) < 0 && s.lookAhead(a, s.head(a)) {
			delta := s.excess[v]
			if s.residualCapacity[a] < delta {
				delta = s.residualCapacity[a]
			}
			s.pushFlow(delta, a)

			continue
		}

		s.firstAdmissible[v] = int32(cursor + 1)
	}
}

// pushFlow moves delta units of flow along arc a, updating both halves of
// the mirrored residual capacity and the excess at both endpoints.
func (s *Solver) pushFlow(delta int64, a graph.ArcIndex) {
	if delta == 0 {
		return
	}

	s.residualCapacity[a] -= delta
	s.residualCapacity[s.opposite(a)] += delta

	s.excess[s.tail(a)] -= delta

	head := s.head(a)
	wasActive := s.isActive(head)
	s.excess[head] += delta
	if !wasActive && s.isActive(head) {
		s.pushActive(head)
	}

	s.stats.Pushes++
}

// relabel lowers potential[v] to epsilon below the largest
// potential[head(a)] - scaledUnitCost[a] over v's residual-positive outgoing
// arcs, which leaves the best such arc admissible with reduced cost
// -epsilon. It reports whether v had such an arc; when it has none, relabel
// lowers potential[v] by epsilon and reports false.
//
// This carries no excess[v]>0 precondition: lookAhead calls it directly on
// nodes that may well have zero excess, to see whether a push can be
// followed through.
func (s *Solver) relabel(v graph.NodeIndex) bool {
	newPotential, ok := s.wouldRelabelPotential(v)
	if !ok {
		s.potential[v] -= s.epsilon
		return false
	}

	s.potential[v] = newPotential
	s.firstAdmissible[v] = 0
	s.stats.Relabels++
	s.numRelabelsSinceLastPriceUpdate++

	return true
}

// wouldRelabelPotential computes the potential relabel(v) would assign,
// without mutating any state. ok is false when v has no residual-positive
// outgoing arc.
func (s *Solver) wouldRelabelPotential(v graph.NodeIndex) (newPotential int64, ok bool) {
	best := int64(math.MinInt64)
	for _, a := range s.g.IncidentArcs(v) {
		if s.residualCapacity[a] <= 0 {
			continue
		}
		if cand := s.potential[s.head(a)] - s.scaledUnitCost[a]; cand > best {
			best = cand
		}
	}

	if best == math.MinInt64 {
		return 0, false
	}

	return best - s.epsilon, true
}

// lookAhead approves pushing onto admissible arc a=(v,w): immediately, if w
// already has a deficit or already has some admissible outgoing arc of its
// own; otherwise only if w can actually be relabeled and a stays admissible
// from v's side afterward. This keeps discharge from stranding flow on a
// node that would just have to relabel and push it straight back; w's
// relabel, if it happens, is real and persists.
func (s *Solver) lookAhead(a graph.ArcIndex, w graph.NodeIndex) bool {
	if s.excess[w] < 0 {
		return true
	}

	for _, out := range s.g.IncidentArcs(w) {
		if s.isAdmissible(out) {
			return true
		}
	}

	if !s.relabel(w) {
		return false
	}

	return s.reducedCost(a) < 0
}
