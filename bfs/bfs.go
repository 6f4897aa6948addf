// Package bfs provides breadth-first search over a core.Graph, returning
// hop distances, parent links and visit order, plus connected components.
//
// Distances are ignored: BFS answers "is it reachable, and in how many hops".
// The builder uses Components to reject disconnected networks on request.
package bfs

import (
	"fmt"
	"sort"

	"github.com/Neha3-ai/final-ip-project/core"
)

// queueItem pairs a node ID with its BFS depth and its parent's ID.
type queueItem struct {
	id     string
	depth  int
	parent string // empty for root
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph   *core.Graph
	opts    Options
	queue   []queueItem
	visited map[string]bool
	res     *Result
}

// BFS runs breadth-first search on g starting from startID.
// Neighbors are expanded in ascending ID order so Order is deterministic.
// Returns ErrGraphNil, ErrStartNodeNotFound or ErrOptionViolation for invalid input.
//
// Complexity: O(V + E log Δ) where Δ is the maximum degree.
func BFS(g *core.Graph, startID string, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasNode(startID) {
		return nil, fmt.Errorf("%w: %q", ErrStartNodeNotFound, startID)
	}

	n := g.NodeCount()
	w := &walker{
		graph:   g,
		opts:    o,
		queue:   make([]queueItem, 0, n),
		visited: make(map[string]bool, n),
		res: &Result{
			Order:  make([]string, 0, n),
			Depth:  make(map[string]int, n),
			Parent: make(map[string]string, n),
		},
	}

	w.enqueue(startID, 0, "")

	return w.res, w.loop()
}

// enqueue marks id visited at depth d, records its parent, and adds it to the queue.
func (w *walker) enqueue(id string, d int, parent string) {
	w.visited[id] = true
	w.res.Depth[id] = d
	if parent != "" {
		w.res.Parent[id] = parent
	}
	w.queue = append(w.queue, queueItem{id: id, depth: d, parent: parent})
}

// loop processes the queue until empty.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		item := w.queue[0]
		w.queue = w.queue[1:]
		w.res.Order = append(w.res.Order, item.id)

		nextDepth := item.depth + 1
		if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
			continue
		}
		neighbors, err := w.graph.NeighborIDs(item.id)
		if err != nil {
			return fmt.Errorf("bfs: neighbors of %q: %w", item.id, err)
		}
		for _, nbr := range neighbors {
			if !w.visited[nbr] {
				w.enqueue(nbr, nextDepth, item.id)
			}
		}
	}

	return nil
}

// Components partitions the nodes of g into connected components.
// Each component is sorted ascending; components are ordered by their first ID.
//
// Complexity: O(V + E log Δ)
func Components(g *core.Graph) ([][]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	seen := make(map[string]bool, g.NodeCount())
	var out [][]string
	for _, id := range g.NodeIDs() {
		if seen[id] {
			continue
		}
		res, err := BFS(g, id)
		if err != nil {
			return nil, err
		}
		comp := make([]string, len(res.Order))
		copy(comp, res.Order)
		sort.Strings(comp)
		for _, v := range comp {
			seen[v] = true
		}
		out = append(out, comp)
	}

	return out, nil
}
