// File: methods_nodes.go
// Role: Region and node lifecycle & queries.
// Determinism:
//   - Nodes() and Regions() return registration order.
//   - NodeIDs() returns IDs sorted ascending.
// Concurrency:
//   - Mutators are single-goroutine and only legal before Freeze.
//   - Readers are lock-free; safe for concurrent use once frozen.

package core

import (
	"fmt"
	"sort"
)

// AddRegion registers a region. Nodes are attached later with AddNode; the
// hub is recorded as given and checked by the caller (see builder).
//
// Errors: ErrFrozen, ErrEmptyRegionName, ErrDuplicateRegion.
// Complexity: O(1)
func (g *Graph) AddRegion(name string, minRate, maxRate int, heavy bool, hub string) error {
	if g.frozen {
		return ErrFrozen
	}
	if name == "" {
		return ErrEmptyRegionName
	}
	if _, ok := g.regionIndex[name]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateRegion, name)
	}

	g.regionIndex[name] = len(g.regions)
	g.regions = append(g.regions, &Region{
		Name:    name,
		MinRate: minRate,
		MaxRate: maxRate,
		Heavy:   heavy,
		Hub:     hub,
	})

	return nil
}

// AddNode registers a node inside an existing region.
//
// Errors: ErrFrozen, ErrEmptyNodeID, ErrRegionNotFound, ErrDuplicateNode.
// Complexity: O(1) amortized.
func (g *Graph) AddNode(n Node) error {
	if g.frozen {
		return ErrFrozen
	}
	if n.ID == "" {
		return ErrEmptyNodeID
	}
	ri, ok := g.regionIndex[n.Region]
	if !ok {
		return fmt.Errorf("%w: %q (node %q)", ErrRegionNotFound, n.Region, n.ID)
	}
	if _, dup := g.index[n.ID]; dup {
		return fmt.Errorf("%w: %q", ErrDuplicateNode, n.ID)
	}

	node := n
	g.index[n.ID] = len(g.nodes)
	g.nodes = append(g.nodes, &node)
	g.adjacency = append(g.adjacency, nil)
	g.regions[ri].Nodes = append(g.regions[ri].Nodes, n.ID)

	return nil
}

// HasNode reports whether id is a node of g.
// Complexity: O(1)
func (g *Graph) HasNode(id string) bool {
	_, ok := g.index[id]

	return ok
}

// Node returns the node with the given ID.
// Errors: ErrNodeNotFound.
func (g *Graph) Node(id string) (*Node, error) {
	i, ok := g.index[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNodeNotFound, id)
	}

	return g.nodes[i], nil
}

// Nodes returns all nodes in registration order.
// The returned slice is a copy; the *Node values are shared and must not be mutated.
func (g *Graph) Nodes() []*Node {
	out := make([]*Node, len(g.nodes))
	copy(out, g.nodes)

	return out
}

// NodeIDs returns all node IDs sorted ascending.
// Complexity: O(V log V)
func (g *Graph) NodeIDs() []string {
	ids := make([]string, len(g.nodes))
	for i, n := range g.nodes {
		ids[i] = n.ID
	}
	sort.Strings(ids)

	return ids
}

// NodeCount returns |V|.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// IndexOf returns the arena position of id, or -1 when absent.
func (g *Graph) IndexOf(id string) int {
	i, ok := g.index[id]
	if !ok {
		return -1
	}

	return i
}

// Region returns the region with the given name.
// Errors: ErrRegionNotFound.
func (g *Graph) Region(name string) (*Region, error) {
	i, ok := g.regionIndex[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrRegionNotFound, name)
	}

	return g.regions[i], nil
}

// Regions returns all regions in registration order.
func (g *Graph) Regions() []*Region {
	out := make([]*Region, len(g.regions))
	copy(out, g.regions)

	return out
}

// RegionOf returns the region owning the node id.
// Errors: ErrNodeNotFound.
func (g *Graph) RegionOf(id string) (*Region, error) {
	n, err := g.Node(id)
	if err != nil {
		return nil, err
	}

	return g.regions[g.regionIndex[n.Region]], nil
}
