package congestion

import (
	"fmt"
	"sync"

	"github.com/Neha3-ai/final-ip-project/core"
)

// Sampler draws congestion snapshots.
//
//   - Intra-region edge: uniform in the owning region's [MinRate, MaxRate].
//   - Inter-region link: uniform in [InterMin, InterMax]; if either endpoint's
//     region is heavy, the upper bound becomes max(InterMax, HeavyMax).
//
// Draws are independent per edge and per call. A Sampler may be shared by
// concurrent queries: access to the Source is serialized.
type Sampler struct {
	mu   sync.Mutex
	opts Options
}

// NewSampler builds a Sampler from options over DefaultOptions.
func NewSampler(opts ...Option) *Sampler {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.Source == nil {
		o.Source = timeSeeded()
	}

	return &Sampler{opts: o}
}

// Options returns the resolved sampler options (Source included).
func (s *Sampler) Options() Options { return s.opts }

// Bounds returns the inclusive rate range that applies to e in g.
// Errors: core.ErrNodeNotFound or core.ErrRegionNotFound for edges not in g.
func (s *Sampler) Bounds(g *core.Graph, e *core.Edge) (lo, hi int, err error) {
	if e.Kind == core.KindIntraRegion {
		r, err := g.Region(e.Region)
		if err != nil {
			return 0, 0, fmt.Errorf("congestion: edge %s: %w", e.Key(), err)
		}
		return r.MinRate, r.MaxRate, nil
	}

	lo, hi = s.opts.InterMin, s.opts.InterMax
	for _, id := range []string{e.From, e.To} {
		r, err := g.RegionOf(id)
		if err != nil {
			return 0, 0, fmt.Errorf("congestion: edge %s: %w", e.Key(), err)
		}
		if r.Heavy && s.opts.HeavyMax > hi {
			hi = s.opts.HeavyMax
		}
	}

	return lo, hi, nil
}

// Sample draws a fresh snapshot covering every edge of g, in edge order.
//
// Errors: ErrNilGraph, or a lookup error for an edge whose region is unknown.
// Complexity: O(E)
func (s *Sampler) Sample(g *core.Graph) (*Snapshot, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	// Resolve bounds before taking the lock so the critical section only draws.
	edges := g.Edges()
	bounds := make([][2]int, len(edges))
	for i, e := range edges {
		lo, hi, err := s.Bounds(g, e)
		if err != nil {
			return nil, err
		}
		bounds[i] = [2]int{lo, hi}
	}

	snap := NewSnapshot(len(edges))
	s.mu.Lock()
	for i, e := range edges {
		lo, hi := bounds[i][0], bounds[i][1]
		snap.Set(e.From, e.To, lo+s.opts.Source.Intn(hi-lo+1))
	}
	s.mu.Unlock()

	return snap, nil
}
