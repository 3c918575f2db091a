package minflow

import (
	"context"

	"github.com/katalvlaran/minflow/graph"
)

// This file sequences balance validation, the optional feasibility
// pre-check, cost-range validation, and the cost-scaling loop, and is the
// only place that writes a Status other than NotSolved (the setters and
// MakeFeasible reset it to NotSolved).

// Solve runs the solver to completion and returns the resulting Status. It
// rebuilds every working array from the authoritative caller-set data on
// every call, so it is always safe to call again after further setter
// calls; a prior solution is never reused as a warm start across a
// mutation.
func (s *Solver) Solve(ctx context.Context) (Status, error) {
	s.stats = Stats{}

	var totalSupply int64
	for _, sup := range s.supply {
		totalSupply += sup
	}
	if totalSupply != 0 {
		s.status = Unbalanced
		s.opts.Logger.Warn().Int64("total_supply", totalSupply).Msg("minflow: supplies do not sum to zero")

		return s.status, nil
	}

	if s.opts.CheckFeasibility {
		feasible, err := s.checkFeasibility(ctx)
		if err != nil {
			return s.status, err
		}
		if !feasible {
			s.status = Infeasible
			s.opts.Logger.Warn().Msg("minflow: feasibility pre-check found unroutable supply")

			return s.status, nil
		}
	}

	maxAbsScaledCost, ok := s.checkCostRange()
	if !ok {
		s.status = BadCostRange
		s.opts.Logger.Warn().Msg("minflow: scaling costs would overflow")

		return s.status, nil
	}

	s.scaleCosts()
	s.resetWorkingArrays()

	if err := s.optimize(ctx, maxAbsScaledCost); err != nil {
		return s.status, err
	}

	if s.opts.Debug {
		if bad, ok := s.firstEpsilonOptimalityViolation(); !ok {
			s.status = BadResult
			s.opts.Logger.Error().Int32("arc", int32(bad)).Msg("minflow: post-solve epsilon-optimality check failed")

			return s.status, nil
		}
	}

	s.status = Optimal
	s.opts.Logger.Info().
		Int64("cost", s.OptimalCost()).
		Int64("pushes", s.stats.Pushes).
		Int64("relabels", s.stats.Relabels).
		Int64("refine_phases", s.stats.RefinePhases).
		Msg("minflow: solve finished")

	return s.status, nil
}

// firstEpsilonOptimalityViolation scans every arc, direct and reverse, for
// one with residual capacity left and a reduced cost below -epsilon: a
// residual arc an optimal flow must never leave admissible-and-unsaturated.
// ok is false and arc names the offender on the first such arc found.
func (s *Solver) firstEpsilonOptimalityViolation() (arc graph.ArcIndex, ok bool) {
	for a := 0; a < 2*s.numArcs; a++ {
		candidate := graph.ArcIndex(a)
		if s.residualCapacity[candidate] != 0 && s.reducedCost(candidate) < -s.epsilon {
			return candidate, false
		}
	}

	return 0, true
}

// resetWorkingArrays rebuilds excess, potential, and residualCapacity from
// the authoritative arcCapacity/supply/arcFlowSeed, applying any seeded
// pseudo-flow from SetArcFlow before the cost-scaling loop starts.
func (s *Solver) resetWorkingArrays() {
	for v := 0; v < s.numNodes; v++ {
		s.potential[v] = 0
		s.excess[v] = s.supply[v]
	}

	for a := 0; a < s.numArcs; a++ {
		seed := s.arcFlowSeed[a]
		s.residualCapacity[a] = s.arcCapacity[a] - seed
		s.residualCapacity[s.numArcs+a] = seed

		arc := graph.ArcIndex(a)
		s.excess[s.tail(arc)] -= seed
		s.excess[s.head(arc)] += seed
	}

	s.activeStack = s.activeStack[:0]
	s.numRelabelsSinceLastPriceUpdate = 0
}
