package planner

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// queriesTotal counts route queries.
	// Labels: outcome (ok, unknown_node, no_route, cost_mismatch, error)
	queriesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "routeplanner",
		Name:      "queries_total",
		Help:      "Route queries by outcome",
	}, []string{"outcome"})

	// queryDuration measures sample + search + metrics time per query.
	queryDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "routeplanner",
		Name:      "query_duration_seconds",
		Help:      "Route query latency in seconds",
		Buckets:   []float64{0.00005, 0.0001, 0.00025, 0.0005, 0.001, 0.0025, 0.005, 0.01, 0.05},
	})

	// pathHops tracks the number of edges on successful routes.
	pathHops = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "routeplanner",
		Name:      "path_hops",
		Help:      "Edges per planned route",
		Buckets:   prometheus.LinearBuckets(0, 2, 10),
	})
)
