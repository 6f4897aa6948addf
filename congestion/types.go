// Package congestion defines the per-query congestion snapshot and the
// sampler that draws it.
package congestion

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"
	"time"

	"github.com/Neha3-ai/final-ip-project/core"
)

// DefaultFallbackRate is the rate applied to an edge missing from a snapshot:
// the midpoint of [2,10]. Searches and metrics use it consistently and never
// draw a fresh value mid-computation.
const DefaultFallbackRate = 6

// Default inter-region range and heavy-traffic upper bound.
const (
	DefaultInterRegionMin = 2
	DefaultInterRegionMax = 7
	DefaultHeavyMax       = 9
)

// ErrNilGraph is returned when Sample receives a nil graph.
var ErrNilGraph = errors.New("congestion: graph is nil")

// Source is the randomness the sampler draws from. *math/rand.Rand satisfies it.
// Intn returns a uniform integer in [0, n) and must not be called with n <= 0.
type Source interface {
	Intn(n int) int
}

// Option configures a Sampler.
type Option func(*Options)

// Options holds the sampler knobs.
type Options struct {
	// Source supplies randomness; nil resolves to a time-seeded *rand.Rand.
	Source Source

	// InterMin and InterMax bound inter-region links (inclusive).
	InterMin, InterMax int

	// HeavyMax is the upper bound used when either endpoint's region is heavy.
	// The effective bound is max(InterMax, HeavyMax).
	HeavyMax int
}

// DefaultOptions returns [2,7] for links, 9 for heavy links, no source.
func DefaultOptions() Options {
	return Options{
		InterMin: DefaultInterRegionMin,
		InterMax: DefaultInterRegionMax,
		HeavyMax: DefaultHeavyMax,
	}
}

// WithSource injects the randomness. Panics on nil.
func WithSource(src Source) Option {
	if src == nil {
		panic("congestion: WithSource(nil)")
	}
	return func(o *Options) { o.Source = src }
}

// WithSeed uses a *rand.Rand seeded with seed (reproducible snapshots).
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Source = rand.New(rand.NewSource(seed)) }
}

// WithInterRegionRange overrides the inter-region range. Panics unless
// core.MinRate ≤ lo ≤ hi ≤ core.MaxRate.
func WithInterRegionRange(lo, hi int) Option {
	if lo < core.MinRate || hi > core.MaxRate || lo > hi {
		panic(fmt.Sprintf("congestion: WithInterRegionRange(%d, %d) outside [%d,%d]", lo, hi, core.MinRate, core.MaxRate))
	}
	return func(o *Options) { o.InterMin, o.InterMax = lo, hi }
}

// WithHeavyMax overrides the heavy-traffic upper bound. Panics outside [core.MinRate, core.MaxRate].
func WithHeavyMax(hi int) Option {
	if hi < core.MinRate || hi > core.MaxRate {
		panic(fmt.Sprintf("congestion: WithHeavyMax(%d) outside [%d,%d]", hi, core.MinRate, core.MaxRate))
	}
	return func(o *Options) { o.HeavyMax = hi }
}

// timeSeeded returns a fresh source seeded from the wall clock.
func timeSeeded() Source {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

// Snapshot assigns one integer rate to each edge, keyed by unordered node pair.
// A snapshot belongs to a single query; it is not safe for concurrent writes.
type Snapshot struct {
	rates map[core.PairKey]int
}

// NewSnapshot returns an empty snapshot with room for n edges.
func NewSnapshot(n int) *Snapshot {
	return &Snapshot{rates: make(map[core.PairKey]int, n)}
}

// Set records rate for the pair {u, v}.
func (s *Snapshot) Set(u, v string, rate int) {
	s.rates[core.NewPairKey(u, v)] = rate
}

// Rate returns the rate of {u, v} and whether it is present.
func (s *Snapshot) Rate(u, v string) (int, bool) {
	r, ok := s.rates[core.NewPairKey(u, v)]

	return r, ok
}

// RateOr returns the rate of {u, v}, or fallback when it is absent.
func (s *Snapshot) RateOr(u, v string, fallback int) int {
	if r, ok := s.Rate(u, v); ok {
		return r
	}

	return fallback
}

// Len returns the number of rated pairs.
func (s *Snapshot) Len() int { return len(s.rates) }

// Each calls fn for every pair in ascending key order.
func (s *Snapshot) Each(fn func(key core.PairKey, rate int)) {
	keys := make([]core.PairKey, 0, len(s.rates))
	for k := range s.rates {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].A != keys[j].A {
			return keys[i].A < keys[j].A
		}
		return keys[i].B < keys[j].B
	})
	for _, k := range keys {
		fn(k, s.rates[k])
	}
}

// Clone returns an independent copy.
func (s *Snapshot) Clone() *Snapshot {
	out := NewSnapshot(len(s.rates))
	for k, v := range s.rates {
		out.rates[k] = v
	}

	return out
}
