package minflow

import "errors"

// ErrArcOutOfRange indicates a graph.ArcIndex outside [0, 2*NumArcs()), or
// outside [0, NumArcs()) where only a direct arc makes sense (e.g.
// SetArcCapacity).
var ErrArcOutOfRange = errors.New("minflow: arc index out of range")

// ErrNodeOutOfRange indicates a graph.NodeIndex outside [0, NumNodes()).
var ErrNodeOutOfRange = errors.New("minflow: node index out of range")

// ErrNegativeCapacity indicates a negative value passed to SetArcCapacity.
var ErrNegativeCapacity = errors.New("minflow: arc capacity must be non-negative")

// ErrFlowExceedsCapacity indicates SetArcFlow was called with a flow greater
// than the arc's current capacity.
var ErrFlowExceedsCapacity = errors.New("minflow: arc flow exceeds capacity")

// ErrFeasibilityNotChecked indicates MakeFeasible was called before the
// feasibility pre-check ran (it runs inside Solve when CheckFeasibility is
// enabled).
var ErrFeasibilityNotChecked = errors.New("minflow: feasibility was not checked")
