// Package builder turns declarative region definitions into a frozen
// core.Graph, checking every configuration invariant on the way.
//
// Inputs:
//
//   - RegionDef: name, congestion range [min,max] ⊆ [1,10], heavy-traffic flag,
//     nodes, intra-region edges (from, to, km) and a hub node.
//   - LinkDef: an inter-region highway (fromHub, toHub, km).
//
// Guarantees on success:
//
//   - Every edge endpoint exists in the node set.
//   - Each region's hub is one of its own nodes.
//   - Intra-region edges stay inside their region; links join hubs of two
//     different regions.
//   - Distances are finite and non-negative; no loops, no parallel edges.
//   - The returned graph is frozen and safe to share across goroutines.
//
// Failures are startup-time and fatal. Each error matches ErrConfiguration
// plus the specific cause, so callers can do either:
//
//	if errors.Is(err, builder.ErrConfiguration) { log.Fatal(err) }
//	if errors.Is(err, core.ErrNodeNotFound)     { /* dangling reference */ }
package builder
