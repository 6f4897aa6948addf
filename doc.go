// Package routeplanner plans the cheapest road route across a network of
// cities whose traffic changes from one query to the next.
//
// What it does
//
//	A network is a set of regions (cities). Each region owns its nodes,
//	its roads and one hub; highways join hubs of different regions. Every
//	query draws a fresh congestion rate for each road, then finds the path
//	minimizing Σ distance × rate and reports distance, cost, average
//	congestion and an estimated travel time.
//
// Packages
//
//	core/       - Node, Region, Edge, Graph: arena adjacency, frozen after build
//	builder/    - region + highway definitions → validated, frozen Graph
//	bfs/        - reachability and connected components (build-time checks)
//	congestion/ - per-query Snapshot and the Sampler that draws it
//	dijkstra/   - congestion-weighted shortest path (heap or linear scan)
//	metrics/    - per-leg and total distance, cost, time, congestion
//	planner/    - query orchestration, logging, Prometheus, batch queries
//	config/     - YAML network + settings, embedded five-city default
//	server/     - HTTP API (gin)
//	cmd/routeplanner - CLI: route, regions, serve
//
// Quick start
//
//	routeplanner route --from hyd_dilsukhnagar --to che_marina
//	routeplanner serve --addr :8080
package routeplanner
