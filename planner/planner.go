// Package planner runs route queries end to end: sample a congestion
// snapshot, search the cheapest path, derive its metrics and check that both
// agree on the cost.
//
// A Planner holds only the frozen graph, a sampler and immutable settings, so
// one instance serves any number of concurrent queries. Each query owns its
// snapshot and result.
package planner

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/Neha3-ai/final-ip-project/congestion"
	"github.com/Neha3-ai/final-ip-project/core"
	"github.com/Neha3-ai/final-ip-project/dijkstra"
	"github.com/Neha3-ai/final-ip-project/metrics"
)

// Sampler produces one congestion snapshot per call.
// *congestion.Sampler satisfies it.
type Sampler interface {
	Sample(g *core.Graph) (*congestion.Snapshot, error)
}

// Query asks for a route between two nodes. ID is optional; a UUID is
// assigned when empty.
type Query struct {
	ID          string `json:"id,omitempty"`
	Source      string `json:"source"`
	Destination string `json:"destination"`
}

// Outcome is a planned route with its metrics.
type Outcome struct {
	QueryID           string        `json:"query_id"`
	Source            string        `json:"source"`
	Destination       string        `json:"destination"`
	Path              []string      `json:"path"`
	Labels            []string      `json:"labels"`
	Legs              []metrics.Leg `json:"legs"`
	TotalCost         float64       `json:"total_cost"`
	TotalDistanceKm   float64       `json:"total_distance_km"`
	EstimatedTimeMin  int           `json:"estimated_time_min"`
	AverageCongestion float64       `json:"average_congestion"`
}

// Hops returns the number of edges on the route.
func (o Outcome) Hops() int {
	if len(o.Path) == 0 {
		return 0
	}

	return len(o.Path) - 1
}

// BatchResult pairs a batch query with its outcome or failure.
type BatchResult struct {
	Query   Query
	Outcome Outcome
	Err     error
}

// Planner answers route queries over one frozen graph.
type Planner struct {
	g       *core.Graph
	sampler Sampler
	cfg     config
}

// New returns a Planner over g. The graph must be frozen.
func New(g *core.Graph, sampler Sampler, opts ...Option) (*Planner, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.Frozen() {
		return nil, ErrGraphNotFrozen
	}
	if sampler == nil {
		return nil, ErrNilSampler
	}

	return &Planner{g: g, sampler: sampler, cfg: newConfig(opts...)}, nil
}

// Graph returns the graph the planner searches.
func (p *Planner) Graph() *core.Graph { return p.g }

// Route samples a fresh snapshot and plans q under it.
//
// Errors: ErrUnknownNode, ErrNoRoute, ErrCostMismatch, ctx.Err(), or a sampler failure.
func (p *Planner) Route(ctx context.Context, q Query) (Outcome, error) {
	if err := ctx.Err(); err != nil {
		return Outcome{}, err
	}

	snap, err := p.sampler.Sample(p.g)
	if err != nil {
		return Outcome{}, fmt.Errorf("planner: sample congestion: %w", err)
	}
	p.cfg.logger.Debug("congestion sampled", slog.Int("edges", snap.Len()))

	return p.RouteWithSnapshot(ctx, q, snap)
}

// RouteWithSnapshot plans q under a caller-provided snapshot.
//
// Steps:
//  1. Assign a query ID if missing.
//  2. Search the minimum-cost path.
//  3. Recompute cost, distance, time and congestion along it.
//  4. Reject a cost disagreement beyond 1e-9 × max(1, cost).
func (p *Planner) RouteWithSnapshot(ctx context.Context, q Query, snap *congestion.Snapshot) (out Outcome, err error) {
	start := time.Now()
	if q.ID == "" {
		q.ID = uuid.NewString()
	}
	defer func() { p.observe(q, out, err, time.Since(start)) }()

	if err = ctx.Err(); err != nil {
		return Outcome{}, err
	}

	// 2) Search
	res, err := dijkstra.ShortestPath(p.g, q.Source, q.Destination, snap,
		dijkstra.WithFallbackRate(p.cfg.fallbackRate),
		dijkstra.WithStrategy(p.cfg.strategy),
	)
	if err != nil {
		return Outcome{}, err
	}

	// 3) Metrics
	m, err := metrics.Compute(p.g, res.Path, snap, metrics.WithFallbackRate(p.cfg.fallbackRate))
	if err != nil {
		return Outcome{}, fmt.Errorf("planner: metrics: %w", err)
	}

	// 4) Consistency
	if math.Abs(m.TotalCost-res.Cost) > 1e-9*math.Max(1, res.Cost) {
		return Outcome{}, fmt.Errorf("%w: search=%v metrics=%v", ErrCostMismatch, res.Cost, m.TotalCost)
	}

	return Outcome{
		QueryID:           q.ID,
		Source:            q.Source,
		Destination:       q.Destination,
		Path:              res.Path,
		Labels:            p.labels(res.Path),
		Legs:              m.Legs,
		TotalCost:         res.Cost,
		TotalDistanceKm:   m.TotalDistanceKm,
		EstimatedTimeMin:  m.EstimatedTimeMin,
		AverageCongestion: m.AverageCongestion,
	}, nil
}

// RouteBatch plans every query concurrently, at most WithBatchLimit at a
// time. Per-query failures land in BatchResult.Err; only context
// cancellation aborts the batch. Results keep the order of qs.
func (p *Planner) RouteBatch(ctx context.Context, qs []Query) ([]BatchResult, error) {
	if len(qs) == 0 {
		return nil, ErrEmptyBatch
	}
	if len(qs) > MaxBatchSize {
		return nil, fmt.Errorf("%w: %d > %d", ErrBatchTooLarge, len(qs), MaxBatchSize)
	}

	results := make([]BatchResult, len(qs))
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(p.cfg.batchLimit)
	for i, q := range qs {
		i, q := i, q
		eg.Go(func() error {
			out, err := p.Route(egCtx, q)
			if ctxErr := egCtx.Err(); ctxErr != nil {
				return ctxErr
			}
			results[i] = BatchResult{Query: q, Outcome: out, Err: err}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

// labels maps node IDs to display labels, falling back to the ID.
func (p *Planner) labels(path []string) []string {
	out := make([]string, len(path))
	for i, id := range path {
		out[i] = id
		if n, err := p.g.Node(id); err == nil && n.Label != "" {
			out[i] = n.Label
		}
	}

	return out
}

// observe records one finished query in logs and Prometheus.
func (p *Planner) observe(q Query, out Outcome, err error, took time.Duration) {
	outcome := outcomeLabel(err)
	queriesTotal.WithLabelValues(outcome).Inc()
	queryDuration.Observe(took.Seconds())

	attrs := []any{
		slog.String("query_id", q.ID),
		slog.String("source", q.Source),
		slog.String("destination", q.Destination),
		slog.String("outcome", outcome),
		slog.Duration("took", took),
	}
	switch outcome {
	case "ok":
		pathHops.Observe(float64(out.Hops()))
		p.cfg.logger.Info("route planned", append(attrs,
			slog.Float64("cost", out.TotalCost),
			slog.Int("hops", out.Hops()),
		)...)
	case "unknown_node", "no_route":
		p.cfg.logger.Info("route rejected", append(attrs, slog.String("error", err.Error()))...)
	default:
		p.cfg.logger.Error("route failed", append(attrs, slog.String("error", err.Error()))...)
	}
}
