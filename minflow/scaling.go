package minflow

import (
	"context"
	"math"
)

// This file handles cost-range validation, cost scaling, and the outer
// epsilon loop that calls Refine.
//
// Unscaling for reporting is implicit: OptimalCost (residual.go) always
// sums Flow(a)*arcUnitCost[a] against the original, never-scaled cost
// array, so there is no separate array to divide back down after the loop.

// checkCostRange validates that scaling every cost by (n+1) fits in int64,
// and that the worst-case potential range (roughly 2*n*maxAbsCost*(n+1))
// does too. On success it returns the maximum absolute scaled cost, which
// seeds epsilon.
func (s *Solver) checkCostRange() (maxAbsScaledCost int64, ok bool) {
	n := int64(s.numNodes)
	factor := n + 1

	var maxAbsCost int64
	for _, c := range s.arcUnitCost {
		ac := c
		if ac < 0 {
			ac = -ac
		}
		if ac > maxAbsCost {
			maxAbsCost = ac
		}
	}

	if maxAbsCost != 0 && factor > math.MaxInt64/maxAbsCost {
		return 0, false
	}
	scaledMax := maxAbsCost * factor

	if scaledMax != 0 {
		bound := 2 * n
		if bound != 0 && scaledMax > math.MaxInt64/bound {
			return 0, false
		}
	}

	s.costScalingFactor = factor

	return scaledMax, true
}

// scaleCosts fills scaledUnitCost for every direct and reverse arc from
// arcUnitCost and the validated costScalingFactor.
func (s *Solver) scaleCosts() {
	for a := 0; a < s.numArcs; a++ {
		scaled := s.arcUnitCost[a] * s.costScalingFactor
		s.scaledUnitCost[a] = scaled
		s.scaledUnitCost[s.numArcs+a] = -scaled
	}
}

// optimize runs the outer cost-scaling loop: epsilon starts at the maximum
// absolute scaled cost, and each iteration divides it by Alpha (floored at
// 1) before calling Refine, guaranteeing at least one Refine call at
// epsilon=1 even when every cost is zero. It checks ctx before each phase,
// the same granularity maxflow.Dinic uses between BFS rounds.
func (s *Solver) optimize(ctx context.Context, maxAbsScaledCost int64) error {
	s.epsilon = maxAbsScaledCost
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		s.epsilon = s.epsilon / s.opts.Alpha
		if s.epsilon < 1 {
			s.epsilon = 1
		}
		s.opts.Logger.Debug().Int64("epsilon", s.epsilon).Msg("minflow: refine phase")
		s.refine()
		s.stats.RefinePhases++
		if s.epsilon == 1 {
			break
		}
	}

	return nil
}
