package maxflow

import (
	"errors"
)

// ErrSourceOutOfRange indicates the requested source node is not in [0, g.NumNodes()).
var ErrSourceOutOfRange = errors.New("maxflow: source node out of range")

// ErrSinkOutOfRange indicates the requested sink node is not in [0, g.NumNodes()).
var ErrSinkOutOfRange = errors.New("maxflow: sink node out of range")

// ErrNegativeCapacity indicates a direct arc was given a negative capacity.
var ErrNegativeCapacity = errors.New("maxflow: negative arc capacity")

// Options configures Dinic.
//   - Verbose: accepted but not read; Dinic produces no log output.
//   - LevelRebuildInterval: rebuild the level graph every N augmentations
//     instead of only when a blocking flow is exhausted; 0 disables (only
//     rebuild when blocked).
type Options struct {
	Verbose              bool
	LevelRebuildInterval int
}

// DefaultOptions returns production-safe defaults: no logging, no forced
// level-graph rebuilds.
func DefaultOptions() Options {
	return Options{}
}
