// File: types.go
// Role: Sentinel errors, Options, Strategy and Result for ShortestPath.
//
// Options:
//
//	– FallbackRate: rate applied to edges absent from the snapshot (default 6).
//	– Strategy:     StrategyHeap (default) or StrategyLinearScan.
//
// Errors (sentinel):
//
//	– ErrNilGraph      if the provided graph pointer is nil.
//	– ErrNilSnapshot   if the provided snapshot pointer is nil.
//	– ErrUnknownNode   if source or destination is not in the graph.
//	– ErrInvalidRate   if a snapshot rate is below core.MinRate.
//	– ErrNoRoute       if the destination is unreachable from the source.

package dijkstra

import (
	"errors"
	"fmt"

	"github.com/Neha3-ai/final-ip-project/congestion"
	"github.com/Neha3-ai/final-ip-project/core"
)

// Sentinel errors returned by ShortestPath.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrNilSnapshot indicates that a nil *congestion.Snapshot was passed.
	ErrNilSnapshot = errors.New("dijkstra: snapshot is nil")

	// ErrUnknownNode indicates that the source or destination is not a node of the graph.
	// The query is rejected; the caller may retry with valid identities.
	ErrUnknownNode = errors.New("dijkstra: unknown node")

	// ErrInvalidRate indicates a snapshot rate below core.MinRate, which would
	// make an edge free or negative.
	ErrInvalidRate = errors.New("dijkstra: invalid congestion rate")

	// ErrNoRoute indicates that the destination cannot be reached from the source.
	ErrNoRoute = errors.New("dijkstra: no route found")
)

// Strategy selects how the next node to settle is found.
type Strategy int

const (
	// StrategyHeap uses a binary heap with lazy decrease-key: O((V + E) log V).
	StrategyHeap Strategy = iota

	// StrategyLinearScan scans all unsettled nodes for the minimum: O(V²).
	// It returns exactly the same results as StrategyHeap.
	StrategyLinearScan
)

// String returns the strategy name.
func (s Strategy) String() string {
	switch s {
	case StrategyHeap:
		return "heap"
	case StrategyLinearScan:
		return "linear"
	default:
		return "unknown"
	}
}

// ParseStrategy maps "heap" / "linear" to a Strategy.
func ParseStrategy(name string) (Strategy, error) {
	switch name {
	case "", "heap":
		return StrategyHeap, nil
	case "linear":
		return StrategyLinearScan, nil
	default:
		return 0, fmt.Errorf("dijkstra: unknown strategy %q", name)
	}
}

// Options configures ShortestPath.
type Options struct {
	// FallbackRate replaces a rate missing from the snapshot. Fixed for the
	// whole search so the weights never change mid-computation.
	FallbackRate int

	// Strategy picks the settle-order implementation.
	Strategy Strategy
}

// Option represents a functional option for configuring ShortestPath.
type Option func(*Options)

// DefaultOptions returns FallbackRate = congestion.DefaultFallbackRate and StrategyHeap.
func DefaultOptions() Options {
	return Options{
		FallbackRate: congestion.DefaultFallbackRate,
		Strategy:     StrategyHeap,
	}
}

// WithFallbackRate sets the rate used for edges missing from the snapshot.
// Panics unless core.MinRate ≤ rate ≤ core.MaxRate.
func WithFallbackRate(rate int) Option {
	if rate < core.MinRate || rate > core.MaxRate {
		panic(fmt.Sprintf("dijkstra: WithFallbackRate(%d) outside [%d,%d]", rate, core.MinRate, core.MaxRate))
	}
	return func(o *Options) { o.FallbackRate = rate }
}

// WithStrategy selects the settle-order implementation.
func WithStrategy(s Strategy) Option {
	return func(o *Options) { o.Strategy = s }
}

// Result is the minimum-cost route.
//
// Path runs from source to destination inclusive (length 1 iff source == destination).
// Cost is Σ distance × rate over the path.
type Result struct {
	Path []string
	Cost float64
}

// Hops returns the number of edges on the path.
func (r Result) Hops() int {
	if len(r.Path) == 0 {
		return 0
	}

	return len(r.Path) - 1
}
