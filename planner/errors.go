package planner

import (
	"errors"

	"github.com/Neha3-ai/final-ip-project/dijkstra"
)

// Query-time failures the caller is expected to branch on.
var (
	// ErrUnknownNode: source or destination is not a node of the graph.
	ErrUnknownNode = dijkstra.ErrUnknownNode

	// ErrNoRoute: destination is unreachable from source.
	ErrNoRoute = dijkstra.ErrNoRoute
)

var (
	// ErrNilGraph indicates New was given a nil graph.
	ErrNilGraph = errors.New("planner: graph is nil")

	// ErrGraphNotFrozen indicates New was given a graph that can still be mutated.
	ErrGraphNotFrozen = errors.New("planner: graph is not frozen")

	// ErrNilSampler indicates New was given a nil sampler.
	ErrNilSampler = errors.New("planner: sampler is nil")

	// ErrCostMismatch indicates the recomputed route cost disagrees with the
	// search cost. It signals a bug, never bad input.
	ErrCostMismatch = errors.New("planner: metrics cost does not match search cost")

	// ErrEmptyBatch indicates RouteBatch was called with no queries.
	ErrEmptyBatch = errors.New("planner: empty batch")

	// ErrBatchTooLarge indicates a batch above MaxBatchSize.
	ErrBatchTooLarge = errors.New("planner: batch too large")
)

// outcomeLabel classifies err for the queries_total counter.
func outcomeLabel(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrUnknownNode):
		return "unknown_node"
	case errors.Is(err, ErrNoRoute):
		return "no_route"
	case errors.Is(err, ErrCostMismatch):
		return "cost_mismatch"
	default:
		return "error"
	}
}
