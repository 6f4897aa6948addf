// File: types.go
// Role: Graph, Node, Region and Edge types plus sentinel errors.
//
// A Graph is assembled once (AddRegion / AddNode / AddEdge), then frozen.
// After Freeze every mutator fails with ErrFrozen and all readers are safe for
// concurrent use without locking: nothing is written after the freeze.
//
// Errors:
//
//	ErrEmptyNodeID         - node ID is the empty string.
//	ErrEmptyRegionName     - region name is the empty string.
//	ErrDuplicateNode       - a node with the same ID already exists.
//	ErrDuplicateRegion     - a region with the same name already exists.
//	ErrNodeNotFound        - requested node does not exist.
//	ErrRegionNotFound      - requested region does not exist.
//	ErrEdgeNotFound        - no edge joins the requested pair.
//	ErrNegativeDistance    - distance is negative, NaN or infinite.
//	ErrLoopNotAllowed      - edge from a node to itself.
//	ErrMultiEdgeNotAllowed - a second edge between the same pair.
//	ErrFrozen              - mutation attempted after Freeze.

package core

import "errors"

// Sentinel errors for core graph operations.
var (
	// ErrEmptyNodeID indicates that the provided node ID is empty.
	ErrEmptyNodeID = errors.New("core: node ID is empty")

	// ErrEmptyRegionName indicates that the provided region name is empty.
	ErrEmptyRegionName = errors.New("core: region name is empty")

	// ErrDuplicateNode indicates a node ID was registered twice.
	ErrDuplicateNode = errors.New("core: duplicate node")

	// ErrDuplicateRegion indicates a region name was registered twice.
	ErrDuplicateRegion = errors.New("core: duplicate region")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrRegionNotFound indicates an operation referenced a non-existent region.
	ErrRegionNotFound = errors.New("core: region not found")

	// ErrEdgeNotFound indicates that no edge joins the requested pair.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrNegativeDistance indicates a distance that is negative or not finite.
	ErrNegativeDistance = errors.New("core: distance must be finite and non-negative")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")

	// ErrFrozen indicates a mutation after Freeze.
	ErrFrozen = errors.New("core: graph is frozen")
)

// Congestion rates are positive integers in [MinRate, MaxRate].
const (
	MinRate = 1
	MaxRate = 10
)

// EdgeKind classifies an edge for congestion purposes.
type EdgeKind int

const (
	// KindIntraRegion is a road inside one region; it carries the region's rate range.
	KindIntraRegion EdgeKind = iota

	// KindInterRegion is a highway link between two region hubs.
	KindInterRegion
)

// String returns a stable lowercase name for the kind.
func (k EdgeKind) String() string {
	switch k {
	case KindIntraRegion:
		return "intra-region"
	case KindInterRegion:
		return "inter-region"
	default:
		return "unknown"
	}
}

// Node is a place in the network.
//
// X and Y are display coordinates; the core never interprets them and only
// passes them through to whatever renders the graph.
type Node struct {
	// ID uniquely identifies this Node within its Graph.
	ID string

	// Label is the human-readable name.
	Label string

	// Region is the name of the owning region.
	Region string

	// X, Y are opaque display coordinates.
	X, Y float64
}

// Region groups nodes sharing a congestion-rate range and a hub.
type Region struct {
	// Name uniquely identifies the region.
	Name string

	// MinRate and MaxRate bound the congestion rate of intra-region edges (inclusive).
	MinRate, MaxRate int

	// Heavy marks a heavy-traffic region; inter-region links touching it get a wider range.
	Heavy bool

	// Hub is the node ID used for inter-region links.
	Hub string

	// Nodes lists member node IDs in registration order.
	Nodes []string
}

// Edge is an undirected road segment between From and To.
type Edge struct {
	// Index is the position of the edge in Graph.Edges(); stable for the Graph's lifetime.
	Index int

	// From and To are the endpoint node IDs in definition order.
	From, To string

	// DistanceKm is the physical length in kilometers.
	DistanceKm float64

	// Region names the owning region for intra-region edges, "" for inter-region links.
	Region string

	// Kind is the congestion classification.
	Kind EdgeKind
}

// Key returns the canonical unordered pair of the edge endpoints.
func (e *Edge) Key() PairKey { return NewPairKey(e.From, e.To) }

// Other returns the endpoint opposite to id.
func (e *Edge) Other(id string) string {
	if e.From == id {
		return e.To
	}

	return e.From
}

// Neighbor is one adjacency entry: the node reached, the distance, and the edge used.
// ToIndex is the arena position of To, for index-based traversals.
type Neighbor struct {
	To         string
	ToIndex    int
	DistanceKm float64
	Edge       *Edge
}

// PairKey identifies an unordered node pair. A is always <= B.
type PairKey struct {
	A, B string
}

// NewPairKey builds the canonical key for the pair {u, v}.
func NewPairKey(u, v string) PairKey {
	if v < u {
		u, v = v, u
	}

	return PairKey{A: u, B: v}
}

// String renders the key as "a|b".
func (k PairKey) String() string { return k.A + "|" + k.B }

// Graph is the in-memory road network.
//
// Nodes live in an arena (nodes) addressed by integer index; index maps IDs to
// positions. adjacency[i] lists the neighbors of nodes[i] in edge insertion order,
// and every undirected edge appears in both endpoints' lists.
type Graph struct {
	frozen bool

	nodes     []*Node
	index     map[string]int
	edges     []*Edge
	adjacency [][]Neighbor
	pairs     map[PairKey]*Edge

	regions     []*Region
	regionIndex map[string]int
}

// NewGraph creates an empty, mutable Graph.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{
		index:       make(map[string]int),
		pairs:       make(map[PairKey]*Edge),
		regionIndex: make(map[string]int),
	}
}
