// Package metrics derives the reporting figures for a planned route: total
// distance, recomputed cost, average congestion and estimated travel time.
//
// Speed model:
//
//	speed(rate)  = max(40 − 3·rate, 25) km/h
//	minutes(leg) = distance / speed × 60
//
// Rounding happens on the totals only: EstimatedTimeMin to the nearest minute,
// AverageCongestion to one decimal, TotalDistanceKm to two decimals. TotalCost
// is left unrounded so callers can compare it with the search cost.
//
// A single-node path yields all-zero Metrics with no legs.
package metrics

import (
	"errors"
	"fmt"

	"github.com/Neha3-ai/final-ip-project/congestion"
	"github.com/Neha3-ai/final-ip-project/core"
)

const (
	// BaseSpeedKmh is the free-flow speed before congestion slows traffic.
	BaseSpeedKmh = 40.0
	// SlowdownPerRate is the km/h lost per congestion point.
	SlowdownPerRate = 3.0
	// MinSpeedKmh floors the speed so heavy congestion never stalls a leg.
	MinSpeedKmh = 25.0
)

var (
	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = errors.New("metrics: graph is nil")
	// ErrNilSnapshot indicates that a nil *congestion.Snapshot was passed.
	ErrNilSnapshot = errors.New("metrics: snapshot is nil")
	// ErrEmptyPath indicates a path with no nodes.
	ErrEmptyPath = errors.New("metrics: empty path")
	// ErrBrokenPath indicates consecutive path nodes that are not joined by an edge.
	ErrBrokenPath = errors.New("metrics: consecutive nodes are not adjacent")
	// ErrInvalidRate indicates a snapshot rate below core.MinRate.
	ErrInvalidRate = errors.New("metrics: invalid congestion rate")
)

// Options configures Compute.
type Options struct {
	// FallbackRate replaces a rate missing from the snapshot.
	FallbackRate int
}

// Option is a functional option for Compute.
type Option func(*Options)

// DefaultOptions returns FallbackRate = congestion.DefaultFallbackRate.
func DefaultOptions() Options {
	return Options{FallbackRate: congestion.DefaultFallbackRate}
}

// WithFallbackRate sets the rate used for edges missing from the snapshot.
// Panics unless core.MinRate ≤ rate ≤ core.MaxRate.
func WithFallbackRate(rate int) Option {
	if rate < core.MinRate || rate > core.MaxRate {
		panic(fmt.Sprintf("metrics: WithFallbackRate(%d) outside [%d,%d]", rate, core.MinRate, core.MaxRate))
	}
	return func(o *Options) { o.FallbackRate = rate }
}

// Leg is one edge of the route, in travel order.
type Leg struct {
	From       string  `json:"from"`
	To         string  `json:"to"`
	DistanceKm float64 `json:"distance_km"`
	Rate       int     `json:"rate"`
	Cost       float64 `json:"cost"`
	SpeedKmh   float64 `json:"speed_kmh"`
	Minutes    float64 `json:"minutes"`
	// InterRegion is true for hub-to-hub links.
	InterRegion bool `json:"inter_region"`
}

// Metrics summarizes a route.
type Metrics struct {
	Legs              []Leg   `json:"legs"`
	TotalDistanceKm   float64 `json:"total_distance_km"`
	TotalCost         float64 `json:"total_cost"`
	EstimatedTimeMin  int     `json:"estimated_time_min"`
	AverageCongestion float64 `json:"average_congestion"`
}
