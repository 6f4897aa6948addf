// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Lifecycle switch (Freeze) and read-only summaries.
// Policy:
//   - No algorithms here.
//   - Every exported function documents complexity.

package core

// GraphStats is a compact, read-only summary of a Graph.
type GraphStats struct {
	Regions          int
	Nodes            int
	Edges            int
	IntraRegionEdges int
	InterRegionEdges int
	Frozen           bool
}

// Freeze ends the build phase. Every later AddRegion/AddNode/AddEdge returns
// ErrFrozen. Freezing twice is a no-op.
//
// Concurrency:
//   - After Freeze the Graph is immutable and readers need no synchronization.
//
// Complexity: O(1)
func (g *Graph) Freeze() { g.frozen = true }

// Frozen reports whether Freeze has been called.
func (g *Graph) Frozen() bool { return g.frozen }

// Stats returns counts by kind.
// Complexity: O(E)
func (g *Graph) Stats() GraphStats {
	s := GraphStats{
		Regions: len(g.regions),
		Nodes:   len(g.nodes),
		Edges:   len(g.edges),
		Frozen:  g.frozen,
	}
	for _, e := range g.edges {
		switch e.Kind {
		case KindIntraRegion:
			s.IntraRegionEdges++
		case KindInterRegion:
			s.InterRegionEdges++
		}
	}

	return s
}
