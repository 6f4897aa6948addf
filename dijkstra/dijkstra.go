// Package dijkstra implements the congestion-weighted shortest-path search.
//
// The weight of edge (u,v) under a snapshot is distance(u,v) × rate(u,v).
// Weights are resolved once per search, before the first node is settled; a
// rate missing from the snapshot takes Options.FallbackRate for the whole run.
//
// Complexity:
//
//   - StrategyHeap:       O((V + E) log V) time, O(V + E) space (lazy decrease-key).
//   - StrategyLinearScan: O(V² + E) time, O(V + E) space.
//
// Tie-breaking:
//
//   - Among unsettled nodes with equal tentative cost, the lexicographically
//     smallest node ID is settled first.
//   - A predecessor is replaced only by a strictly cheaper path.
//
// Both strategies settle nodes in exactly the same order and therefore report
// identical paths and costs.
package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/Neha3-ai/final-ip-project/congestion"
	"github.com/Neha3-ai/final-ip-project/core"
)

// ShortestPath returns the minimum-cost route from source to dest under snap.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. snap must be non-nil (ErrNilSnapshot).
//  3. source and dest must be nodes of g (ErrUnknownNode).
//  4. source == dest returns Path [source], Cost 0 without searching.
//  5. Every snapshot rate must be ≥ core.MinRate (ErrInvalidRate).
//
// Returns ErrNoRoute if dest is unreachable.
func ShortestPath(g *core.Graph, source, dest string, snap *congestion.Snapshot, opts ...Option) (Result, error) {
	// 1) Build Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate inputs
	if g == nil {
		return Result{}, ErrNilGraph
	}
	if snap == nil {
		return Result{}, ErrNilSnapshot
	}
	src := g.IndexOf(source)
	if src < 0 {
		return Result{}, fmt.Errorf("%w: source %q", ErrUnknownNode, source)
	}
	dst := g.IndexOf(dest)
	if dst < 0 {
		return Result{}, fmt.Errorf("%w: destination %q", ErrUnknownNode, dest)
	}

	// 3) Trivial route
	if src == dst {
		return Result{Path: []string{source}, Cost: 0}, nil
	}

	// 4) Resolve every edge weight once
	weights, err := resolveWeights(g, snap, cfg.FallbackRate)
	if err != nil {
		return Result{}, err
	}

	// 5) Search
	r := newRunner(g, weights, src, dst)
	switch cfg.Strategy {
	case StrategyLinearScan:
		r.runLinear()
	default:
		r.runHeap()
	}

	if !r.settled[dst] {
		return Result{}, fmt.Errorf("%w: %q → %q", ErrNoRoute, source, dest)
	}

	return Result{Path: r.path(), Cost: r.dist[dst]}, nil
}

// resolveWeights maps edge index → distance × rate for the whole graph.
func resolveWeights(g *core.Graph, snap *congestion.Snapshot, fallback int) ([]float64, error) {
	edges := g.Edges()
	w := make([]float64, len(edges))
	for _, e := range edges {
		rate := snap.RateOr(e.From, e.To, fallback)
		if rate < core.MinRate {
			return nil, fmt.Errorf("%w: edge %s rate=%d", ErrInvalidRate, e.Key(), rate)
		}
		w[e.Index] = e.DistanceKm * float64(rate)
	}

	return w, nil
}

// runner holds the mutable state for a single search. All slices are indexed
// by node arena position.
type runner struct {
	g        *core.Graph
	weights  []float64 // edge index → cost
	src, dst int
	dist     []float64 // best known cost from src
	prev     []int     // predecessor on the best path, -1 if none
	settled  []bool    // cost is final
}

func newRunner(g *core.Graph, weights []float64, src, dst int) *runner {
	n := g.NodeCount()
	r := &runner{
		g:       g,
		weights: weights,
		src:     src,
		dst:     dst,
		dist:    make([]float64, n),
		prev:    make([]int, n),
		settled: make([]bool, n),
	}
	for i := range r.dist {
		r.dist[i] = math.Inf(1)
		r.prev[i] = -1
	}
	r.dist[src] = 0

	return r
}

// before reports whether node i should be settled before node j.
func (r *runner) before(i, j int) bool {
	if r.dist[i] != r.dist[j] {
		return r.dist[i] < r.dist[j]
	}

	return r.g.NodeAt(i).ID < r.g.NodeAt(j).ID
}

// runHeap settles nodes using a min-heap with lazy decrease-key: improved
// nodes are pushed again and stale entries are skipped on pop.
func (r *runner) runHeap() {
	pq := make(nodePQ, 0, r.g.NodeCount())
	heap.Push(&pq, &nodeItem{index: r.src, id: r.g.NodeAt(r.src).ID, dist: 0})

	for pq.Len() > 0 {
		item := heap.Pop(&pq).(*nodeItem)
		u := item.index
		if r.settled[u] || item.dist > r.dist[u] {
			continue
		}
		r.settled[u] = true
		if u == r.dst {
			return
		}
		for _, v := range r.relax(u) {
			heap.Push(&pq, &nodeItem{index: v, id: r.g.NodeAt(v).ID, dist: r.dist[v]})
		}
	}
}

// runLinear settles nodes by scanning every unsettled, reached node for the minimum.
func (r *runner) runLinear() {
	for {
		u := -1
		for i := range r.dist {
			if r.settled[i] || math.IsInf(r.dist[i], 1) {
				continue
			}
			if u < 0 || r.before(i, u) {
				u = i
			}
		}
		if u < 0 {
			return
		}
		r.settled[u] = true
		if u == r.dst {
			return
		}
		r.relax(u)
	}
}

// relax improves the neighbors of u and returns those whose cost dropped.
func (r *runner) relax(u int) []int {
	var improved []int
	for _, nb := range r.g.NeighborsAt(u) {
		v := nb.ToIndex
		if r.settled[v] {
			continue
		}
		nd := r.dist[u] + r.weights[nb.Edge.Index]
		if nd >= r.dist[v] {
			continue
		}
		r.dist[v] = nd
		r.prev[v] = u
		improved = append(improved, v)
	}

	return improved
}

// path walks predecessors back from dst.
func (r *runner) path() []string {
	var rev []string
	for cur := r.dst; cur >= 0; cur = r.prev[cur] {
		rev = append(rev, r.g.NodeAt(cur).ID)
		if cur == r.src {
			break
		}
	}
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}

	return rev
}

// nodeItem is a heap entry: a node and the cost it had when pushed.
type nodeItem struct {
	index int
	id    string
	dist  float64
}

// nodePQ is a min-heap ordered by (dist, id) ascending.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	return pq[i].id < pq[j].id
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
