// File: methods_adjacent.go
// Role: Neighborhood queries over the arena adjacency.
// Determinism:
//   - Neighbors() returns entries in edge insertion order.
//   - AdjacencyList() returns neighbor IDs sorted ascending.

package core

import (
	"fmt"
	"sort"
)

// Neighbors returns the adjacency entries of id.
// The slice is a copy; callers may reorder it freely.
//
// Errors: ErrNodeNotFound.
// Complexity: O(deg(id))
func (g *Graph) Neighbors(id string) ([]Neighbor, error) {
	i, ok := g.index[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNodeNotFound, id)
	}
	out := make([]Neighbor, len(g.adjacency[i]))
	copy(out, g.adjacency[i])

	return out, nil
}

// NeighborsAt returns the adjacency entries of the node at arena position i
// without copying. The slice must be treated as read-only.
func (g *Graph) NeighborsAt(i int) []Neighbor { return g.adjacency[i] }

// NodeAt returns the node stored at arena position i.
func (g *Graph) NodeAt(i int) *Node { return g.nodes[i] }

// NeighborIDs returns the sorted IDs adjacent to id.
// Errors: ErrNodeNotFound.
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	nbs, err := g.Neighbors(id)
	if err != nil {
		return nil, err
	}
	ids := make([]string, len(nbs))
	for k, nb := range nbs {
		ids[k] = nb.To
	}
	sort.Strings(ids)

	return ids, nil
}

// AdjacencyList returns a fresh map node ID → sorted neighbor IDs.
// Complexity: O(V + E log E)
func (g *Graph) AdjacencyList() map[string][]string {
	out := make(map[string][]string, len(g.nodes))
	for i, n := range g.nodes {
		ids := make([]string, len(g.adjacency[i]))
		for k, nb := range g.adjacency[i] {
			ids[k] = nb.To
		}
		sort.Strings(ids)
		out[n.ID] = ids
	}

	return out
}
