package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Neha3-ai/final-ip-project/builder"
	"github.com/Neha3-ai/final-ip-project/core"
)

// hyderabad returns the Hyderabad region: 8 nodes, 9 roads, hub hyd_paradise.
func hyderabad() builder.RegionDef {
	return builder.RegionDef{
		Name:            "Hyderabad",
		CongestionRange: [2]int{2, 7},
		Nodes: []builder.NodeDef{
			{ID: "hyd_dilsukhnagar", Label: "Dilsukhnagar", X: 860, Y: 520},
			{ID: "hyd_chaitanyapuri", Label: "Chaitanyapuri", X: 780, Y: 480},
			{ID: "hyd_kothapet", Label: "Kothapet", X: 740, Y: 540},
			{ID: "hyd_lbnagar", Label: "L.B. Nagar", X: 940, Y: 540},
			{ID: "hyd_mehdipatnam", Label: "Mehdipatnam", X: 520, Y: 560},
			{ID: "hyd_paradise", Label: "Parade/Paradise", X: 610, Y: 360},
			{ID: "hyd_ameerpet", Label: "Ameerpet", X: 420, Y: 320},
			{ID: "hyd_jubileehills", Label: "Jubilee Hills", X: 520, Y: 260},
		},
		Edges: []builder.EdgeDef{
			{From: "hyd_dilsukhnagar", To: "hyd_chaitanyapuri", DistanceKm: 2.5},
			{From: "hyd_chaitanyapuri", To: "hyd_kothapet", DistanceKm: 3.2},
			{From: "hyd_kothapet", To: "hyd_lbnagar", DistanceKm: 4.0},
			{From: "hyd_dilsukhnagar", To: "hyd_lbnagar", DistanceKm: 6.0},
			{From: "hyd_mehdipatnam", To: "hyd_ameerpet", DistanceKm: 6.8},
			{From: "hyd_ameerpet", To: "hyd_jubileehills", DistanceKm: 4.2},
			{From: "hyd_jubileehills", To: "hyd_paradise", DistanceKm: 3.0},
			{From: "hyd_paradise", To: "hyd_ameerpet", DistanceKm: 4.5},
			{From: "hyd_paradise", To: "hyd_kothapet", DistanceKm: 12.0},
		},
		Hub: "hyd_paradise",
	}
}

// chennai returns a small Chennai region: 4 nodes, 3 roads, hub che_guindy.
func chennai() builder.RegionDef {
	return builder.RegionDef{
		Name:            "Chennai",
		CongestionRange: [2]int{3, 8},
		Nodes: []builder.NodeDef{
			{ID: "che_tnag", Label: "T. Nagar"},
			{ID: "che_guindy", Label: "Guindy"},
			{ID: "che_velachery", Label: "Velachery"},
			{ID: "che_marina", Label: "Marina Beach"},
		},
		Edges: []builder.EdgeDef{
			{From: "che_tnag", To: "che_guindy", DistanceKm: 6.0},
			{From: "che_guindy", To: "che_velachery", DistanceKm: 8.0},
			{From: "che_marina", To: "che_tnag", DistanceKm: 5.0},
		},
		Hub: "che_guindy",
	}
}

func TestBuild_TwoRegions(t *testing.T) {
	g, err := builder.Build(
		[]builder.RegionDef{hyderabad(), chennai()},
		[]builder.LinkDef{{FromHub: "hyd_paradise", ToHub: "che_guindy", DistanceKm: 630}},
		builder.WithRequireConnected(),
	)
	require.NoError(t, err)
	require.True(t, g.Frozen())

	assert.Equal(t, core.GraphStats{
		Regions:          2,
		Nodes:            12,
		Edges:            13,
		IntraRegionEdges: 12,
		InterRegionEdges: 1,
		Frozen:           true,
	}, g.Stats())

	// Build invariant: every edge endpoint is a node.
	for _, e := range g.Edges() {
		assert.True(t, g.HasNode(e.From), e.From)
		assert.True(t, g.HasNode(e.To), e.To)
	}

	link, err := g.EdgeBetween("che_guindy", "hyd_paradise")
	require.NoError(t, err)
	assert.Equal(t, core.KindInterRegion, link.Kind)
	assert.Empty(t, link.Region)

	road, err := g.EdgeBetween("hyd_lbnagar", "hyd_kothapet")
	require.NoError(t, err)
	assert.Equal(t, core.KindIntraRegion, road.Kind)
	assert.Equal(t, "Hyderabad", road.Region)

	n, err := g.Node("hyd_lbnagar")
	require.NoError(t, err)
	assert.Equal(t, core.Node{ID: "hyd_lbnagar", Label: "L.B. Nagar", Region: "Hyderabad", X: 940, Y: 540}, *n)
}

func TestBuild_ConfigurationErrors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(regions []builder.RegionDef, links []builder.LinkDef) ([]builder.RegionDef, []builder.LinkDef)
		opts    []builder.Option
		wantErr error
	}{
		{
			name: "no regions",
			mutate: func(_ []builder.RegionDef, l []builder.LinkDef) ([]builder.RegionDef, []builder.LinkDef) {
				return nil, l
			},
			wantErr: builder.ErrNoRegions,
		},
		{
			name: "dangling intra-region endpoint",
			mutate: func(r []builder.RegionDef, l []builder.LinkDef) ([]builder.RegionDef, []builder.LinkDef) {
				r[0].Edges = append(r[0].Edges, builder.EdgeDef{From: "hyd_paradise", To: "hyd_nowhere", DistanceKm: 1})
				return r, l
			},
			wantErr: core.ErrNodeNotFound,
		},
		{
			name: "dangling link endpoint",
			mutate: func(r []builder.RegionDef, l []builder.LinkDef) ([]builder.RegionDef, []builder.LinkDef) {
				return r, append(l, builder.LinkDef{FromHub: "hyd_paradise", ToHub: "mum_mumbaiCentral", DistanceKm: 710})
			},
			wantErr: core.ErrNodeNotFound,
		},
		{
			name: "hub outside its region",
			mutate: func(r []builder.RegionDef, l []builder.LinkDef) ([]builder.RegionDef, []builder.LinkDef) {
				r[1].Hub = "hyd_paradise"
				return r, l
			},
			wantErr: builder.ErrHubNotInRegion,
		},
		{
			name: "hub unknown",
			mutate: func(r []builder.RegionDef, l []builder.LinkDef) ([]builder.RegionDef, []builder.LinkDef) {
				r[0].Hub = "hyd_charminar"
				return r, l
			},
			wantErr: builder.ErrHubNotInRegion,
		},
		{
			name: "negative road distance",
			mutate: func(r []builder.RegionDef, l []builder.LinkDef) ([]builder.RegionDef, []builder.LinkDef) {
				r[0].Edges[0].DistanceKm = -2.5
				return r, l
			},
			wantErr: core.ErrNegativeDistance,
		},
		{
			name: "negative link distance",
			mutate: func(r []builder.RegionDef, l []builder.LinkDef) ([]builder.RegionDef, []builder.LinkDef) {
				l[0].DistanceKm = -630
				return r, l
			},
			wantErr: core.ErrNegativeDistance,
		},
		{
			name: "rate range inverted",
			mutate: func(r []builder.RegionDef, l []builder.LinkDef) ([]builder.RegionDef, []builder.LinkDef) {
				r[0].CongestionRange = [2]int{7, 2}
				return r, l
			},
			wantErr: builder.ErrBadRateRange,
		},
		{
			name: "rate range above ten",
			mutate: func(r []builder.RegionDef, l []builder.LinkDef) ([]builder.RegionDef, []builder.LinkDef) {
				r[0].CongestionRange = [2]int{5, 11}
				return r, l
			},
			wantErr: builder.ErrBadRateRange,
		},
		{
			name: "rate range zero",
			mutate: func(r []builder.RegionDef, l []builder.LinkDef) ([]builder.RegionDef, []builder.LinkDef) {
				r[0].CongestionRange = [2]int{0, 3}
				return r, l
			},
			wantErr: builder.ErrBadRateRange,
		},
		{
			name: "empty region",
			mutate: func(r []builder.RegionDef, l []builder.LinkDef) ([]builder.RegionDef, []builder.LinkDef) {
				r[1].Nodes, r[1].Edges = nil, nil
				return r, l
			},
			wantErr: builder.ErrEmptyRegion,
		},
		{
			name: "duplicate node across regions",
			mutate: func(r []builder.RegionDef, l []builder.LinkDef) ([]builder.RegionDef, []builder.LinkDef) {
				r[1].Nodes = append(r[1].Nodes, builder.NodeDef{ID: "hyd_paradise"})
				return r, l
			},
			wantErr: core.ErrDuplicateNode,
		},
		{
			name: "duplicate region name",
			mutate: func(r []builder.RegionDef, l []builder.LinkDef) ([]builder.RegionDef, []builder.LinkDef) {
				r[1].Name = "Hyderabad"
				return r, l
			},
			wantErr: core.ErrDuplicateRegion,
		},
		{
			name: "road into another region",
			mutate: func(r []builder.RegionDef, l []builder.LinkDef) ([]builder.RegionDef, []builder.LinkDef) {
				r[0].Edges = append(r[0].Edges, builder.EdgeDef{From: "hyd_lbnagar", To: "che_tnag", DistanceKm: 600})
				return r, l
			},
			wantErr: builder.ErrForeignEndpoint,
		},
		{
			name: "link from a non-hub",
			mutate: func(r []builder.RegionDef, l []builder.LinkDef) ([]builder.RegionDef, []builder.LinkDef) {
				l[0].FromHub = "hyd_lbnagar"
				return r, l
			},
			wantErr: builder.ErrNotHub,
		},
		{
			name: "link within one region",
			mutate: func(r []builder.RegionDef, l []builder.LinkDef) ([]builder.RegionDef, []builder.LinkDef) {
				return r, append(l, builder.LinkDef{FromHub: "che_guindy", ToHub: "che_guindy", DistanceKm: 1})
			},
			wantErr: builder.ErrSameRegionLink,
		},
		{
			name: "duplicate link",
			mutate: func(r []builder.RegionDef, l []builder.LinkDef) ([]builder.RegionDef, []builder.LinkDef) {
				return r, append(l, builder.LinkDef{FromHub: "che_guindy", ToHub: "hyd_paradise", DistanceKm: 640})
			},
			wantErr: core.ErrMultiEdgeNotAllowed,
		},
		{
			name: "disconnected when required",
			mutate: func(r []builder.RegionDef, _ []builder.LinkDef) ([]builder.RegionDef, []builder.LinkDef) {
				return r, nil
			},
			opts:    []builder.Option{builder.WithRequireConnected()},
			wantErr: builder.ErrDisconnected,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			regions, links := tc.mutate(
				[]builder.RegionDef{hyderabad(), chennai()},
				[]builder.LinkDef{{FromHub: "hyd_paradise", ToHub: "che_guindy", DistanceKm: 630}},
			)
			g, err := builder.Build(regions, links, tc.opts...)
			assert.Nil(t, g)
			assert.ErrorIs(t, err, builder.ErrConfiguration)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestBuild_DisconnectedAllowedByDefault(t *testing.T) {
	g, err := builder.Build([]builder.RegionDef{hyderabad(), chennai()}, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, g.Stats().InterRegionEdges)
}

func TestBuild_ZeroDistanceIsLegal(t *testing.T) {
	r := chennai()
	r.Edges[0].DistanceKm = 0
	_, err := builder.Build([]builder.RegionDef{r}, nil)
	assert.NoError(t, err)
}
