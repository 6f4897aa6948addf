package config_test

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Neha3-ai/final-ip-project/builder"
	"github.com/Neha3-ai/final-ip-project/config"
	"github.com/Neha3-ai/final-ip-project/congestion"
	"github.com/Neha3-ai/final-ip-project/core"
	"github.com/Neha3-ai/final-ip-project/dijkstra"
)

const minimal = `
regions:
  - name: Town
    congestion_range: [2, 4]
    hub: a
    nodes:
      - { id: a }
      - { id: b, label: Bee }
    edges:
      - { from: a, to: b, distance_km: 3 }
`

func TestDefault_FiveCities(t *testing.T) {
	cfg, err := config.Default()
	require.NoError(t, err)
	assert.True(t, cfg.RequireConnected)
	require.Len(t, cfg.Regions, 5)

	g, err := cfg.Build()
	require.NoError(t, err)
	assert.Equal(t, core.GraphStats{
		Regions:          5,
		Nodes:            25,
		Edges:            33,
		IntraRegionEdges: 23,
		InterRegionEdges: 10,
		Frozen:           true,
	}, g.Stats())

	heavy := map[string]bool{}
	for _, r := range g.Regions() {
		heavy[r.Name] = r.Heavy
	}
	assert.Equal(t, map[string]bool{
		"Hyderabad": false, "Mumbai": true, "Chennai": false, "Delhi": true, "Bangalore": true,
	}, heavy)

	n, err := g.Node("blr_mgroad")
	require.NoError(t, err)
	assert.Equal(t, "MG Road", n.Label)
	assert.Equal(t, "Bangalore", n.Region)
}

func TestDefault_Settings(t *testing.T) {
	cfg, err := config.Default()
	require.NoError(t, err)
	assert.Equal(t, [2]int{2, 7}, cfg.Congestion.InterRegionRange)
	assert.Equal(t, 9, cfg.Congestion.HeavyMax)
	assert.Equal(t, congestion.DefaultFallbackRate, cfg.Congestion.FallbackRate)
	assert.Equal(t, dijkstra.StrategyHeap, cfg.Strategy())
	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Nil(t, cfg.Congestion.Seed)
}

func TestParse_AppliesDefaults(t *testing.T) {
	cfg, err := config.Parse([]byte(minimal))
	require.NoError(t, err)
	assert.False(t, cfg.RequireConnected)
	assert.Equal(t, [2]int{congestion.DefaultInterRegionMin, congestion.DefaultInterRegionMax}, cfg.Congestion.InterRegionRange)
	assert.Equal(t, congestion.DefaultHeavyMax, cfg.Congestion.HeavyMax)
	assert.Equal(t, config.DefaultAddr, cfg.Server.Addr)
	assert.Equal(t, "text", cfg.Log.Format)

	g, err := cfg.Build()
	require.NoError(t, err)
	assert.Equal(t, 2, g.NodeCount())
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"malformed", "regions: [\n"},
		{"unknown field", minimal + "colour: blue\n"},
		{"no regions", "log: { level: info }\n"},
		{"range out of bounds", `
regions:
  - { name: X, congestion_range: [0, 4], hub: a, nodes: [{ id: a }] }
`},
		{"range inverted", `
regions:
  - { name: X, congestion_range: [6, 4], hub: a, nodes: [{ id: a }] }
`},
		{"missing hub", `
regions:
  - { name: X, congestion_range: [2, 4], nodes: [{ id: a }] }
`},
		{"no nodes", `
regions:
  - { name: X, congestion_range: [2, 4], hub: a }
`},
		{"negative distance", `
regions:
  - name: X
    congestion_range: [2, 4]
    hub: a
    nodes: [{ id: a }, { id: b }]
    edges: [{ from: a, to: b, distance_km: -1 }]
`},
		{"self loop", `
regions:
  - name: X
    congestion_range: [2, 4]
    hub: a
    nodes: [{ id: a }]
    edges: [{ from: a, to: a, distance_km: 1 }]
`},
		{"bad strategy", minimal + "congestion: { strategy: astar }\n"},
		{"bad heavy max", minimal + "congestion: { heavy_max: 12 }\n"},
		{"bad log level", minimal + "log: { level: loud }\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := config.Parse([]byte(tc.yaml))
			assert.ErrorIs(t, err, config.ErrInvalid)
		})
	}
}

func TestBuild_GraphErrorsAreConfigurationErrors(t *testing.T) {
	cfg, err := config.Parse([]byte(`
regions:
  - name: X
    congestion_range: [2, 4]
    hub: a
    nodes: [{ id: a }]
    edges: [{ from: a, to: ghost, distance_km: 1 }]
`))
	require.NoError(t, err, "shape is valid; the dangling reference is a graph error")

	_, err = cfg.Build()
	assert.ErrorIs(t, err, builder.ErrConfiguration)
}

func TestBuild_RequireConnected(t *testing.T) {
	cfg, err := config.Parse([]byte(minimal + `
  - name: Island
    congestion_range: [1, 2]
    hub: i
    nodes: [{ id: i }]
require_connected: true
`))
	require.NoError(t, err)
	_, err = cfg.Build()
	assert.ErrorIs(t, err, builder.ErrDisconnected)
}

func TestLoad(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Len(t, cfg.Regions, 5)

	path := filepath.Join(t.TempDir(), "net.yaml")
	require.NoError(t, os.WriteFile(path, []byte(minimal+"congestion: { seed: 42, strategy: linear }\n"), 0o600))
	cfg, err = config.Load(path)
	require.NoError(t, err)
	require.NotNil(t, cfg.Congestion.Seed)
	assert.EqualValues(t, 42, *cfg.Congestion.Seed)
	assert.Equal(t, dijkstra.StrategyLinearScan, cfg.Strategy())

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestSamplerOptions_SeedIsReproducible(t *testing.T) {
	cfg, err := config.Parse([]byte(minimal + "congestion: { seed: 7 }\n"))
	require.NoError(t, err)
	g, err := cfg.Build()
	require.NoError(t, err)

	a, err := congestion.NewSampler(cfg.SamplerOptions()...).Sample(g)
	require.NoError(t, err)
	b, err := congestion.NewSampler(cfg.SamplerOptions()...).Sample(g)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestLogger_JSON(t *testing.T) {
	var buf bytes.Buffer
	l := config.NewLogger("debug", "json", &buf)
	l.DebugContext(context.Background(), "hello", "k", 1)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "hello", rec["msg"])
	assert.Equal(t, "DEBUG", rec["level"])

	buf.Reset()
	config.NewLogger("warn", "text", &buf).Info("dropped")
	assert.Empty(t, buf.String())
}
