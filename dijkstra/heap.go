// SPDX-License-Identifier: MIT
package dijkstra

import (
	"container/heap"
	"fmt"
)

// arc is one traversable direction of an edge.
type arc struct {
	to     int
	weight int64
}

// adjacency builds per-vertex arcs from the edge list, so the heap strategy
// does not depend on how edges were attached to incident sets.
func (r *runner) adjacency() [][]arc {
	adj := make([][]arc, len(r.vertices))
	for _, e := range r.edges {
		f, s := e.First().Index(), e.Second().Index()
		adj[f] = append(adj[f], arc{to: s, weight: e.Weight()})
		if !r.opts.LegacyOrientation && f != s {
			adj[s] = append(adj[s], arc{to: f, weight: e.Weight()})
		}
	}

	return adj
}

// runHeap settles vertices in order of increasing tentative distance using a
// lazy-decrease-key min-heap: improved distances push a new entry and stale
// entries are skipped when popped.
func (r *runner) runHeap(src int) error {
	adj := r.adjacency()
	pq := make(nodePQ, 0, len(r.vertices))
	heap.Init(&pq)

	r.overflow = make([]bool, len(r.vertices))
	r.relax(&pq, adj, src)

	var rounds int
	for pq.Len() > 0 {
		if err := r.opts.Ctx.Err(); err != nil {
			return fmt.Errorf("dijkstra: round %d: %w", rounds, err)
		}

		// 1) Pop the closest entry; skip stale ones.
		item := heap.Pop(&pq).(*nodeItem)
		if r.settled[item.index] {
			continue
		}
		if r.opts.MaxRounds > 0 && rounds >= r.opts.MaxRounds {
			return fmt.Errorf("%w: %d settled, %d pending", ErrRoundLimit, len(r.order), len(r.vertices)-len(r.order))
		}

		// 2) Its distance is now final.
		r.settle(item.index, item.dist)
		rounds++

		// 3) Relax outgoing arcs.
		r.relax(&pq, adj, item.index)
	}

	// A vertex reached only through overflowing arcs has a shortest distance
	// beyond int64.
	for i, over := range r.overflow {
		if over && !r.settled[i] {
			return fmt.Errorf("%w: vertex %d", ErrOverflow, r.vertices[i].Label())
		}
	}

	return nil
}

// relax improves tentative distances of the unsettled neighbors of u.
// Overflowing arcs are skipped and flagged on their target.
func (r *runner) relax(pq *nodePQ, adj [][]arc, u int) {
	for _, a := range adj[u] {
		if r.settled[a.to] {
			continue
		}
		nd, err := addDistance(r.dist[u].Value, a.weight)
		if err != nil {
			r.overflow[a.to] = true
			continue
		}
		if r.dist[a.to].Reachable && nd >= r.dist[a.to].Value {
			continue
		}
		r.dist[a.to] = Reached(nd)
		heap.Push(pq, &nodeItem{index: a.to, dist: nd})
	}
}

// nodeItem is a heap entry: a dense vertex index and its tentative distance.
type nodeItem struct {
	index int
	dist  int64
}

// nodePQ is a min-heap ordered by dist, then by dense index so that equal
// distances settle deterministically.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].index < pq[j].index
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push is called by heap.Push; x must be a *nodeItem.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop is called by heap.Pop.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
