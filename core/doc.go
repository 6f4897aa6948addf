// Package core holds the road-network graph shared by every query.
//
// The network G = (V, E) is undirected and weighted by physical distance:
//
//   - Nodes belong to exactly one Region; each Region names a hub node and a
//     congestion-rate range [MinRate, MaxRate].
//   - Edges are either intra-region roads (Kind == KindIntraRegion, Region set)
//     or inter-region highway links between hubs (Kind == KindInterRegion).
//   - At most one edge per unordered node pair; no self-loops; distances are
//     finite and non-negative.
//
// Storage is an arena of nodes addressed by integer index, with per-node
// adjacency slices and a pair map for O(1) EdgeBetween lookups. IDs are only
// hashed at the API boundary.
//
// Lifecycle:
//
//	g := core.NewGraph()
//	_ = g.AddRegion("Hyderabad", 2, 7, false, "hyd_paradise")
//	_ = g.AddNode(core.Node{ID: "hyd_paradise", Region: "Hyderabad"})
//	...
//	g.Freeze() // read-only from here on; share freely across goroutines
//
// Use package builder to go from declarative region definitions to a frozen
// Graph with every configuration invariant checked.
package core
