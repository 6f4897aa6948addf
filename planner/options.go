package planner

import (
	"fmt"
	"log/slog"

	"github.com/Neha3-ai/final-ip-project/congestion"
	"github.com/Neha3-ai/final-ip-project/core"
	"github.com/Neha3-ai/final-ip-project/dijkstra"
)

const (
	// DefaultBatchLimit bounds the goroutines RouteBatch runs at once.
	DefaultBatchLimit = 8

	// MaxBatchSize is the largest batch RouteBatch accepts.
	MaxBatchSize = 64
)

// Option configures a Planner.
type Option func(*config)

type config struct {
	logger       *slog.Logger
	fallbackRate int
	strategy     dijkstra.Strategy
	batchLimit   int
}

func newConfig(opts ...Option) config {
	c := config{
		logger:       slog.Default(),
		fallbackRate: congestion.DefaultFallbackRate,
		strategy:     dijkstra.StrategyHeap,
		batchLimit:   DefaultBatchLimit,
	}
	for _, opt := range opts {
		opt(&c)
	}

	return c
}

// WithLogger sets the structured logger. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("planner: WithLogger(nil)")
	}
	return func(c *config) { c.logger = l }
}

// WithFallbackRate sets the rate used for edges missing from a snapshot,
// for both the search and the metrics recomputation.
// Panics unless core.MinRate ≤ rate ≤ core.MaxRate.
func WithFallbackRate(rate int) Option {
	if rate < core.MinRate || rate > core.MaxRate {
		panic(fmt.Sprintf("planner: WithFallbackRate(%d) outside [%d,%d]", rate, core.MinRate, core.MaxRate))
	}
	return func(c *config) { c.fallbackRate = rate }
}

// WithStrategy selects the search strategy.
func WithStrategy(s dijkstra.Strategy) Option {
	return func(c *config) { c.strategy = s }
}

// WithBatchLimit bounds RouteBatch concurrency. Panics if n < 1.
func WithBatchLimit(n int) Option {
	if n < 1 {
		panic(fmt.Sprintf("planner: WithBatchLimit(%d) must be ≥ 1", n))
	}
	return func(c *config) { c.batchLimit = n }
}
