// SPDX-License-Identifier: MIT
// Package: builder
//
// api.go - the public entry point: Build(regions, links, opts...).
//
// Design contract:
//   - Input types mirror the declarative network definition (regions + hub links).
//   - Validation runs in a fixed order so the first reported error is deterministic.
//   - The result is a frozen *core.Graph; nothing can be added afterwards.
//   - Never panic; every failure wraps ErrConfiguration.

package builder

import (
	"github.com/Neha3-ai/final-ip-project/bfs"
	"github.com/Neha3-ai/final-ip-project/core"
)

// NodeDef declares one node. X and Y are display coordinates passed through untouched.
type NodeDef struct {
	ID    string
	Label string
	X, Y  float64
}

// EdgeDef declares an intra-region road between two nodes of the same region.
type EdgeDef struct {
	From, To   string
	DistanceKm float64
}

// RegionDef declares a region: its rate range, heavy-traffic flag, nodes,
// intra-region edges and hub.
type RegionDef struct {
	Name            string
	CongestionRange [2]int
	HeavyTraffic    bool
	Nodes           []NodeDef
	Edges           []EdgeDef
	Hub             string
}

// LinkDef declares an inter-region highway between two hubs.
type LinkDef struct {
	FromHub, ToHub string
	DistanceKm     float64
}

// Build assembles the network graph from region definitions and hub links.
//
// Order of work (first failure wins):
//  1. At least one region.
//  2. Per region: name, congestion range in [core.MinRate, core.MaxRate] with
//     min ≤ max, at least one node, nodes registered, hub among its own nodes.
//  3. Per region: intra-region edges, both endpoints inside the region,
//     distance finite and ≥ 0, no loops or parallel edges.
//  4. Inter-region links: endpoints are hubs of two different regions.
//  5. Optional connectivity check (WithRequireConnected).
//
// Errors: every error matches ErrConfiguration and the specific cause.
//
// Complexity: O(V + E) plus O(V + E log Δ) for the optional connectivity check.
func Build(regions []RegionDef, links []LinkDef, opts ...Option) (*core.Graph, error) {
	cfg := newConfig(opts...)

	// 1) Something to build
	if len(regions) == 0 {
		return nil, configErrorf(ErrNoRegions, "Build")
	}

	g := core.NewGraph()

	// 2) Regions and nodes first, so every edge can be resolved afterwards
	for i := range regions {
		if err := addRegion(g, &regions[i]); err != nil {
			return nil, err
		}
	}

	// 3) Intra-region roads
	for i := range regions {
		if err := addRoads(g, &regions[i]); err != nil {
			return nil, err
		}
	}

	// 4) Inter-region highways
	for i, l := range links {
		if err := addLink(g, i, l); err != nil {
			return nil, err
		}
	}

	// 5) Connectivity
	if cfg.requireConnected {
		comps, err := bfs.Components(g)
		if err != nil {
			return nil, configErrorf(err, "connectivity check")
		}
		if len(comps) > 1 {
			return nil, configErrorf(ErrDisconnected, "%d components, first isolated group %v", len(comps), comps[1])
		}
	}

	g.Freeze()

	return g, nil
}

// addRegion registers r and its nodes, then checks the hub.
func addRegion(g *core.Graph, r *RegionDef) error {
	if err := validateRateRange(r.Name, r.CongestionRange); err != nil {
		return err
	}
	if len(r.Nodes) == 0 {
		return configErrorf(ErrEmptyRegion, "region %q", r.Name)
	}
	if err := g.AddRegion(r.Name, r.CongestionRange[0], r.CongestionRange[1], r.HeavyTraffic, r.Hub); err != nil {
		return configErrorf(err, "region %q", r.Name)
	}
	for _, n := range r.Nodes {
		node := core.Node{ID: n.ID, Label: n.Label, Region: r.Name, X: n.X, Y: n.Y}
		if err := g.AddNode(node); err != nil {
			return configErrorf(err, "region %q node %q", r.Name, n.ID)
		}
	}

	return validateHub(g, r)
}

// addRoads adds the intra-region edges of r.
func addRoads(g *core.Graph, r *RegionDef) error {
	for i, e := range r.Edges {
		if err := validateEndpointsInRegion(g, r.Name, i, e); err != nil {
			return err
		}
		if _, err := g.AddEdge(e.From, e.To, e.DistanceKm, core.KindIntraRegion, r.Name); err != nil {
			return configErrorf(err, "region %q edge #%d %s–%s", r.Name, i, e.From, e.To)
		}
	}

	return nil
}

// addLink adds one inter-region highway after checking both endpoints are hubs.
func addLink(g *core.Graph, i int, l LinkDef) error {
	if err := validateLink(g, i, l); err != nil {
		return err
	}
	if _, err := g.AddEdge(l.FromHub, l.ToHub, l.DistanceKm, core.KindInterRegion, ""); err != nil {
		return configErrorf(err, "inter-region link #%d %s–%s", i, l.FromHub, l.ToHub)
	}

	return nil
}
