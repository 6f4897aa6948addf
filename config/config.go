// Package config loads the road network and runtime settings from YAML.
//
// Loading runs in three stages:
//  1. Decode (gopkg.in/yaml.v3, unknown fields rejected).
//  2. Fill defaults for omitted settings.
//  3. Validate field shapes with struct tags; graph invariants (hubs, dangling
//     references, duplicate nodes) are left to builder.Build.
//
// An empty path selects the embedded five-city network.
package config

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/Neha3-ai/final-ip-project/builder"
	"github.com/Neha3-ai/final-ip-project/congestion"
	"github.com/Neha3-ai/final-ip-project/core"
	"github.com/Neha3-ai/final-ip-project/dijkstra"
)

//go:embed network.yaml
var defaultNetwork []byte

// DefaultAddr is the HTTP listen address used when server.addr is omitted.
const DefaultAddr = ":8080"

// ErrInvalid wraps every decode or validation failure.
var ErrInvalid = errors.New("config: invalid configuration")

// Config is the whole file.
type Config struct {
	RequireConnected bool             `yaml:"require_connected"`
	Regions          []RegionConfig   `yaml:"regions" validate:"required,min=1,dive"`
	InterRegion      []LinkConfig     `yaml:"inter_region" validate:"dive"`
	Congestion       CongestionConfig `yaml:"congestion"`
	Server           ServerConfig     `yaml:"server"`
	Log              LogConfig        `yaml:"log"`
}

// RegionConfig declares one region.
type RegionConfig struct {
	Name            string       `yaml:"name" validate:"required"`
	CongestionRange [2]int       `yaml:"congestion_range" validate:"rate_range"`
	HeavyTraffic    bool         `yaml:"heavy_traffic"`
	Hub             string       `yaml:"hub" validate:"required"`
	Nodes           []NodeConfig `yaml:"nodes" validate:"required,min=1,dive"`
	Edges           []EdgeConfig `yaml:"edges" validate:"dive"`
}

// NodeConfig declares one node; x and y are display coordinates.
type NodeConfig struct {
	ID    string  `yaml:"id" validate:"required"`
	Label string  `yaml:"label"`
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`
}

// EdgeConfig declares an intra-region road.
type EdgeConfig struct {
	From       string  `yaml:"from" validate:"required"`
	To         string  `yaml:"to" validate:"required,nefield=From"`
	DistanceKm float64 `yaml:"distance_km" validate:"gte=0"`
}

// LinkConfig declares a hub-to-hub highway.
type LinkConfig struct {
	FromHub    string  `yaml:"from_hub" validate:"required"`
	ToHub      string  `yaml:"to_hub" validate:"required,nefield=FromHub"`
	DistanceKm float64 `yaml:"distance_km" validate:"gte=0"`
}

// CongestionConfig tunes the sampler and the search.
type CongestionConfig struct {
	InterRegionRange [2]int `yaml:"inter_region_range" validate:"rate_range"`
	HeavyMax         int    `yaml:"heavy_max" validate:"min=1,max=10"`
	FallbackRate     int    `yaml:"fallback_rate" validate:"min=1,max=10"`
	Strategy         string `yaml:"strategy" validate:"oneof=heap linear"`
	// Seed pins the sampler; nil draws a time-based seed.
	Seed *int64 `yaml:"seed"`
}

// ServerConfig configures the HTTP server.
type ServerConfig struct {
	Addr string `yaml:"addr" validate:"required"`
	// CORSOrigins lists browser origins allowed to call the API; "*" allows any.
	CORSOrigins []string `yaml:"cors_origins" validate:"dive,required"`
}

// LogConfig configures the structured logger.
type LogConfig struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" validate:"oneof=text json"`
}

var validate *validator.Validate

func init() {
	validate = validator.New()
	_ = validate.RegisterValidation("rate_range", validateRateRange)
}

// validateRateRange accepts [lo, hi] with core.MinRate ≤ lo ≤ hi ≤ core.MaxRate.
func validateRateRange(fl validator.FieldLevel) bool {
	r, ok := fl.Field().Interface().([2]int)
	if !ok {
		return false
	}

	return r[0] >= core.MinRate && r[0] <= r[1] && r[1] <= core.MaxRate
}

// Default returns the embedded five-city network with default settings.
func Default() (*Config, error) {
	return Parse(defaultNetwork)
}

// Load reads path, or returns Default when path is empty.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Parse decodes, defaults and validates a YAML document.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("%w: decode: %w", ErrInvalid, err)
	}
	cfg.applyDefaults()
	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Congestion.InterRegionRange == [2]int{} {
		c.Congestion.InterRegionRange = [2]int{congestion.DefaultInterRegionMin, congestion.DefaultInterRegionMax}
	}
	if c.Congestion.HeavyMax == 0 {
		c.Congestion.HeavyMax = congestion.DefaultHeavyMax
	}
	if c.Congestion.FallbackRate == 0 {
		c.Congestion.FallbackRate = congestion.DefaultFallbackRate
	}
	if c.Congestion.Strategy == "" {
		c.Congestion.Strategy = dijkstra.StrategyHeap.String()
	}
	if c.Server.Addr == "" {
		c.Server.Addr = DefaultAddr
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
}

// Build turns the network section into a frozen graph.
// Errors match builder.ErrConfiguration.
func (c *Config) Build() (*core.Graph, error) {
	regions := make([]builder.RegionDef, len(c.Regions))
	for i, r := range c.Regions {
		def := builder.RegionDef{
			Name:            r.Name,
			CongestionRange: r.CongestionRange,
			HeavyTraffic:    r.HeavyTraffic,
			Hub:             r.Hub,
			Nodes:           make([]builder.NodeDef, len(r.Nodes)),
			Edges:           make([]builder.EdgeDef, len(r.Edges)),
		}
		for j, n := range r.Nodes {
			def.Nodes[j] = builder.NodeDef{ID: n.ID, Label: n.Label, X: n.X, Y: n.Y}
		}
		for j, e := range r.Edges {
			def.Edges[j] = builder.EdgeDef{From: e.From, To: e.To, DistanceKm: e.DistanceKm}
		}
		regions[i] = def
	}

	links := make([]builder.LinkDef, len(c.InterRegion))
	for i, l := range c.InterRegion {
		links[i] = builder.LinkDef{FromHub: l.FromHub, ToHub: l.ToHub, DistanceKm: l.DistanceKm}
	}

	var opts []builder.Option
	if c.RequireConnected {
		opts = append(opts, builder.WithRequireConnected())
	}

	return builder.Build(regions, links, opts...)
}

// SamplerOptions returns the congestion sampler settings.
func (c *Config) SamplerOptions() []congestion.Option {
	opts := []congestion.Option{
		congestion.WithInterRegionRange(c.Congestion.InterRegionRange[0], c.Congestion.InterRegionRange[1]),
		congestion.WithHeavyMax(c.Congestion.HeavyMax),
	}
	if c.Congestion.Seed != nil {
		opts = append(opts, congestion.WithSeed(*c.Congestion.Seed))
	}

	return opts
}

// Strategy returns the configured search strategy.
func (c *Config) Strategy() dijkstra.Strategy {
	s, err := dijkstra.ParseStrategy(c.Congestion.Strategy)
	if err != nil {
		// Unreachable after validation.
		return dijkstra.StrategyHeap
	}

	return s
}
