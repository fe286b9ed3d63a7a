// SPDX-License-Identifier: MIT
package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/settle/core"
)

// queueItem pairs a vertex with its BFS depth.
type queueItem struct {
	v     *core.Vertex
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	opts    BFSOptions
	ctx     context.Context
	adj     [][]*core.Vertex
	queue   []queueItem
	visited []bool
	res     *BFSResult
}

// BFS runs breadth-first search on g from the vertex labelled start.
// Edge weights are ignored; Depth counts edges.
// Returns ErrGraphNil, ErrStartVertexNotFound, ErrOptionViolation, the
// context error, or any OnVisit error.
func BFS(g *core.Graph, start int, opts ...Option) (*BFSResult, error) {
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

	src, err := g.Vertex(start)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStartVertexNotFound, err)
	}

	n := g.VertexCount()
	w := &walker{
		opts:    o,
		ctx:     o.Ctx,
		adj:     neighbors(g, n, o.LegacyOrientation),
		queue:   make([]queueItem, 0, n),
		visited: make([]bool, n),
		res: &BFSResult{
			Order:  make([]int, 0, n),
			Depth:  make(map[int]int, n),
			Parent: make(map[int]int, n),
		},
	}

	w.enqueue(src, 0, nil)

	return w.res, w.loop()
}

// neighbors builds dense-index adjacency from the edge list, so the walk does
// not depend on how edges were attached to their vertices.
func neighbors(g *core.Graph, n int, legacy bool) [][]*core.Vertex {
	adj := make([][]*core.Vertex, n)
	for e := range g.Edges() {
		f, s := e.First(), e.Second()
		adj[f.Index()] = append(adj[f.Index()], s)
		if !legacy && f != s {
			adj[s.Index()] = append(adj[s.Index()], f)
		}
	}

	return adj
}

// enqueue marks v visited at depth d and records its parent.
func (w *walker) enqueue(v *core.Vertex, d int, parent *core.Vertex) {
	w.visited[v.Index()] = true
	w.res.Depth[v.Label()] = d
	if parent != nil {
		w.res.Parent[v.Label()] = parent.Label()
	}
	w.queue = append(w.queue, queueItem{v: v, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]

		w.res.Order = append(w.res.Order, item.v.Label())
		if err := w.opts.OnVisit(item.v.Label(), item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %d: %w", item.v.Label(), err)
		}

		next := item.depth + 1
		if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
			continue
		}
		for _, nbr := range w.adj[item.v.Index()] {
			if !w.visited[nbr.Index()] {
				w.enqueue(nbr, next, item.v)
			}
		}
	}

	return nil
}
