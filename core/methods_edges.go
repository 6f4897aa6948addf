// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/Edges/EdgeBetween/EdgeCount.
// Determinism:
//   - Edges() returns edges in insertion order; Edge.Index equals the position.
// Concurrency:
//   - AddEdge is only legal before Freeze.

package core

import (
	"fmt"
	"math"
)

// AddEdge creates an undirected edge between two existing nodes.
//
// Steps:
//  1. Reject mutation after Freeze.
//  2. Validate IDs, distance, loops.
//  3. Resolve both endpoints (ErrNodeNotFound for dangling references).
//  4. Reject a second edge for the same unordered pair.
//  5. Store the edge and mirror it into both adjacency lists.
//
// region is the owning region for intra-region edges, "" for inter-region links.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, distanceKm float64, kind EdgeKind, region string) (*Edge, error) {
	// 1) Frozen graphs are read-only
	if g.frozen {
		return nil, ErrFrozen
	}

	// 2) Input validation
	if from == "" || to == "" {
		return nil, ErrEmptyNodeID
	}
	if distanceKm < 0 || math.IsNaN(distanceKm) || math.IsInf(distanceKm, 0) {
		return nil, fmt.Errorf("%w: %s–%s distance=%v", ErrNegativeDistance, from, to, distanceKm)
	}
	if from == to {
		return nil, fmt.Errorf("%w: %q", ErrLoopNotAllowed, from)
	}

	// 3) Endpoints must exist
	fi, ok := g.index[from]
	if !ok {
		return nil, fmt.Errorf("%w: %q (edge %s–%s)", ErrNodeNotFound, from, from, to)
	}
	ti, ok := g.index[to]
	if !ok {
		return nil, fmt.Errorf("%w: %q (edge %s–%s)", ErrNodeNotFound, to, from, to)
	}

	// 4) One edge per unordered pair
	key := NewPairKey(from, to)
	if _, dup := g.pairs[key]; dup {
		return nil, fmt.Errorf("%w: %s", ErrMultiEdgeNotAllowed, key)
	}

	// 5) Store and link adjacency both ways
	e := &Edge{
		Index:      len(g.edges),
		From:       from,
		To:         to,
		DistanceKm: distanceKm,
		Region:     region,
		Kind:       kind,
	}
	g.edges = append(g.edges, e)
	g.pairs[key] = e
	g.adjacency[fi] = append(g.adjacency[fi], Neighbor{To: to, ToIndex: ti, DistanceKm: distanceKm, Edge: e})
	g.adjacency[ti] = append(g.adjacency[ti], Neighbor{To: from, ToIndex: fi, DistanceKm: distanceKm, Edge: e})

	return e, nil
}

// Edges returns all edges in insertion order.
// The returned slice is a copy; the *Edge values are shared and must not be mutated.
func (g *Graph) Edges() []*Edge {
	out := make([]*Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// EdgeBetween returns the edge joining u and v in either direction.
// Errors: ErrEdgeNotFound.
// Complexity: O(1)
func (g *Graph) EdgeBetween(u, v string) (*Edge, error) {
	e, ok := g.pairs[NewPairKey(u, v)]
	if !ok {
		return nil, fmt.Errorf("%w: %s–%s", ErrEdgeNotFound, u, v)
	}

	return e, nil
}

// EdgeCount returns |E|.
func (g *Graph) EdgeCount() int { return len(g.edges) }
