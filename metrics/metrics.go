package metrics

import (
	"fmt"
	"math"

	"github.com/Neha3-ai/final-ip-project/congestion"
	"github.com/Neha3-ai/final-ip-project/core"
)

// Speed returns the travel speed in km/h for a congestion rate.
func Speed(rate int) float64 {
	return math.Max(BaseSpeedKmh-SlowdownPerRate*float64(rate), MinSpeedKmh)
}

// Compute walks path under snap and returns its Metrics.
//
// Steps:
//  1. Validate graph, snapshot and path length.
//  2. Resolve each leg's edge (ErrBrokenPath when missing) and rate.
//  3. Accumulate distance, cost, rate and minutes.
//  4. Round the totals.
//
// Complexity: O(len(path)).
func Compute(g *core.Graph, path []string, snap *congestion.Snapshot, opts ...Option) (Metrics, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 1) Validate
	if g == nil {
		return Metrics{}, ErrNilGraph
	}
	if snap == nil {
		return Metrics{}, ErrNilSnapshot
	}
	if len(path) == 0 {
		return Metrics{}, ErrEmptyPath
	}
	if len(path) == 1 {
		if !g.HasNode(path[0]) {
			return Metrics{}, fmt.Errorf("%w: %w", ErrBrokenPath, core.ErrNodeNotFound)
		}
		return Metrics{Legs: []Leg{}}, nil
	}

	// 2–3) Walk legs
	legs := make([]Leg, 0, len(path)-1)
	var dist, cost, minutes float64
	var rateSum int
	for i := 1; i < len(path); i++ {
		from, to := path[i-1], path[i]
		e, err := g.EdgeBetween(from, to)
		if err != nil {
			return Metrics{}, fmt.Errorf("%w: leg %d: %w", ErrBrokenPath, i, err)
		}
		rate := snap.RateOr(from, to, cfg.FallbackRate)
		if rate < core.MinRate {
			return Metrics{}, fmt.Errorf("%w: edge %s rate=%d", ErrInvalidRate, e.Key(), rate)
		}

		speed := Speed(rate)
		leg := Leg{
			From:        from,
			To:          to,
			DistanceKm:  e.DistanceKm,
			Rate:        rate,
			Cost:        e.DistanceKm * float64(rate),
			SpeedKmh:    speed,
			Minutes:     e.DistanceKm / speed * 60,
			InterRegion: e.Kind == core.KindInterRegion,
		}
		legs = append(legs, leg)

		dist += leg.DistanceKm
		cost += leg.Cost
		minutes += leg.Minutes
		rateSum += rate
	}

	// 4) Totals
	return Metrics{
		Legs:              legs,
		TotalDistanceKm:   roundTo(dist, 2),
		TotalCost:         cost,
		EstimatedTimeMin:  int(math.Round(minutes)),
		AverageCongestion: roundTo(float64(rateSum)/float64(len(legs)), 1),
	}, nil
}

// roundTo rounds x to the given number of decimal places.
func roundTo(x float64, places int) float64 {
	p := math.Pow(10, float64(places))

	return math.Round(x*p) / p
}
