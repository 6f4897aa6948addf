package core_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Neha3-ai/final-ip-project/core"
)

// buildTwoRegions constructs a small fixture:
//
//	north: a–b (1.5), b–c (2.0), hub a
//	south: x–y (4.0), hub x
//	link:  a–x (100)
func buildTwoRegions(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	require.NoError(t, g.AddRegion("north", 2, 7, false, "a"))
	require.NoError(t, g.AddRegion("south", 5, 10, true, "x"))
	for _, n := range []core.Node{
		{ID: "a", Label: "A", Region: "north"},
		{ID: "b", Label: "B", Region: "north"},
		{ID: "c", Label: "C", Region: "north"},
		{ID: "x", Label: "X", Region: "south"},
		{ID: "y", Label: "Y", Region: "south"},
	} {
		require.NoError(t, g.AddNode(n))
	}
	_, err := g.AddEdge("a", "b", 1.5, core.KindIntraRegion, "north")
	require.NoError(t, err)
	_, err = g.AddEdge("b", "c", 2.0, core.KindIntraRegion, "north")
	require.NoError(t, err)
	_, err = g.AddEdge("x", "y", 4.0, core.KindIntraRegion, "south")
	require.NoError(t, err)
	_, err = g.AddEdge("a", "x", 100, core.KindInterRegion, "")
	require.NoError(t, err)

	return g
}

func TestAddNode_Validation(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddRegion("r", 1, 10, false, "a"))

	assert.ErrorIs(t, g.AddNode(core.Node{ID: "", Region: "r"}), core.ErrEmptyNodeID)
	assert.ErrorIs(t, g.AddNode(core.Node{ID: "a", Region: "missing"}), core.ErrRegionNotFound)
	require.NoError(t, g.AddNode(core.Node{ID: "a", Region: "r"}))
	assert.ErrorIs(t, g.AddNode(core.Node{ID: "a", Region: "r"}), core.ErrDuplicateNode)
}

func TestAddRegion_Validation(t *testing.T) {
	g := core.NewGraph()
	assert.ErrorIs(t, g.AddRegion("", 1, 2, false, "h"), core.ErrEmptyRegionName)
	require.NoError(t, g.AddRegion("r", 1, 2, false, "h"))
	assert.ErrorIs(t, g.AddRegion("r", 1, 2, false, "h"), core.ErrDuplicateRegion)
}

func TestAddEdge_Validation(t *testing.T) {
	g := buildTwoRegions(t)

	tests := []struct {
		name     string
		from, to string
		dist     float64
		want     error
	}{
		{"empty endpoint", "", "a", 1, core.ErrEmptyNodeID},
		{"dangling endpoint", "a", "ghost", 1, core.ErrNodeNotFound},
		{"negative distance", "a", "c", -1, core.ErrNegativeDistance},
		{"NaN distance", "a", "c", math.NaN(), core.ErrNegativeDistance},
		{"infinite distance", "a", "c", math.Inf(1), core.ErrNegativeDistance},
		{"self loop", "a", "a", 1, core.ErrLoopNotAllowed},
		{"parallel edge reversed", "b", "a", 1, core.ErrMultiEdgeNotAllowed},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := g.AddEdge(tc.from, tc.to, tc.dist, core.KindIntraRegion, "north")
			assert.ErrorIs(t, err, tc.want)
		})
	}
	assert.Equal(t, 4, g.EdgeCount(), "failed additions must not leave edges behind")
}

func TestAddEdge_ZeroDistanceAllowed(t *testing.T) {
	g := buildTwoRegions(t)
	e, err := g.AddEdge("a", "c", 0, core.KindIntraRegion, "north")
	require.NoError(t, err)
	assert.Zero(t, e.DistanceKm)
}

func TestNeighbors_Undirected(t *testing.T) {
	g := buildTwoRegions(t)

	// Every edge must appear in both endpoints' adjacency lists.
	for _, e := range g.Edges() {
		for _, end := range []string{e.From, e.To} {
			nbs, err := g.Neighbors(end)
			require.NoError(t, err)
			found := false
			for _, nb := range nbs {
				if nb.Edge == e {
					found = true
					assert.Equal(t, e.Other(end), nb.To)
					assert.Equal(t, e.DistanceKm, nb.DistanceKm)
				}
			}
			assert.Truef(t, found, "edge %s missing from %s adjacency", e.Key(), end)
		}
	}

	ids, err := g.NeighborIDs("a")
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "x"}, ids)

	_, err = g.Neighbors("ghost")
	assert.ErrorIs(t, err, core.ErrNodeNotFound)
}

func TestEdgeBetween(t *testing.T) {
	g := buildTwoRegions(t)

	e1, err := g.EdgeBetween("a", "b")
	require.NoError(t, err)
	e2, err := g.EdgeBetween("b", "a")
	require.NoError(t, err)
	assert.Same(t, e1, e2)

	_, err = g.EdgeBetween("a", "c")
	assert.ErrorIs(t, err, core.ErrEdgeNotFound)
}

func TestRegionQueries(t *testing.T) {
	g := buildTwoRegions(t)

	r, err := g.RegionOf("y")
	require.NoError(t, err)
	assert.Equal(t, "south", r.Name)
	assert.True(t, r.Heavy)
	assert.Equal(t, []string{"x", "y"}, r.Nodes)

	_, err = g.Region("east")
	assert.ErrorIs(t, err, core.ErrRegionNotFound)
	_, err = g.RegionOf("ghost")
	assert.ErrorIs(t, err, core.ErrNodeNotFound)

	assert.Len(t, g.Regions(), 2)
	assert.Equal(t, []string{"a", "b", "c", "x", "y"}, g.NodeIDs())
	assert.Equal(t, 3, g.IndexOf("x"))
	assert.Equal(t, -1, g.IndexOf("ghost"))
}

func TestFreeze(t *testing.T) {
	g := buildTwoRegions(t)
	g.Freeze()
	require.True(t, g.Frozen())

	assert.ErrorIs(t, g.AddRegion("east", 1, 2, false, "e"), core.ErrFrozen)
	assert.ErrorIs(t, g.AddNode(core.Node{ID: "d", Region: "north"}), core.ErrFrozen)
	_, err := g.AddEdge("a", "c", 1, core.KindIntraRegion, "north")
	assert.ErrorIs(t, err, core.ErrFrozen)

	s := g.Stats()
	assert.Equal(t, core.GraphStats{
		Regions:          2,
		Nodes:            5,
		Edges:            4,
		IntraRegionEdges: 3,
		InterRegionEdges: 1,
		Frozen:           true,
	}, s)
}

func TestPairKey(t *testing.T) {
	assert.Equal(t, core.NewPairKey("b", "a"), core.NewPairKey("a", "b"))
	assert.Equal(t, "a|b", core.NewPairKey("b", "a").String())
	assert.Equal(t, "inter-region", core.KindInterRegion.String())
}

func TestAccessorsReturnCopies(t *testing.T) {
	g := buildTwoRegions(t)
	nodes := g.Nodes()
	nodes[0] = nil
	assert.NotNil(t, g.Nodes()[0])

	edges := g.Edges()
	edges[0] = nil
	assert.NotNil(t, g.Edges()[0])
}
