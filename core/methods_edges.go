// SPDX-License-Identifier: MIT
// File: methods_edges.go
// Role: Edge construction, edge arena and the Connect composite.
//
// Determinism:
//   - Edges() yields insertion order; duplicates are preserved.
//
// Concurrency:
//   - Edge arena protected by Graph.mu. Edges themselves are immutable.
package core

import (
	"fmt"
	"iter"

	"golang.org/x/exp/slices"
)

// NewEdge constructs an immutable edge between first and second.
//
// Errors:
//   - ErrInvalidArgument: first or second is nil, or weight < 0.
func NewEdge(first, second *Vertex, weight int64) (*Edge, error) {
	if first == nil || second == nil {
		return nil, fmt.Errorf("new edge: both vertices are required: %w", ErrInvalidArgument)
	}
	if weight < 0 {
		return nil, fmt.Errorf("new edge (%d,%d): negative weight %d: %w",
			first.label, second.label, weight, ErrInvalidArgument)
	}

	return &Edge{first: first, second: second, weight: weight}, nil
}

// First returns the first end of the edge.
func (e *Edge) First() *Vertex { return e.first }

// Second returns the second end of the edge.
func (e *Edge) Second() *Vertex { return e.second }

// Weight returns the non-negative edge weight.
func (e *Edge) Weight() int64 { return e.weight }

// Other returns the end of e opposite to v, or nil if e does not touch v.
// For a self-loop both ends are v.
func (e *Edge) Other(v *Vertex) *Vertex {
	switch v {
	case e.first:
		return e.second
	case e.second:
		return e.first
	default:
		return nil
	}
}

// String implements fmt.Stringer.
func (e *Edge) String() string {
	return fmt.Sprintf("(%d,%d) with distance = %d", e.first.label, e.second.label, e.weight)
}

// AddEdge appends e to the edge arena. It does not touch incident sets.
//
// Errors:
//   - ErrInvalidArgument: e is nil.
//   - ErrVertexNotFound: an endpoint is not registered in g.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(e *Edge) error {
	if e == nil {
		return fmt.Errorf("add edge: nil edge: %w", ErrInvalidArgument)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.owns(e.first) || !g.owns(e.second) {
		return fmt.Errorf("add edge %s: endpoint not in graph: %w", e, ErrVertexNotFound)
	}
	g.edges = append(g.edges, e)

	return nil
}

// Connect is the loader's composite step: it registers both labels, builds the
// edge, appends it to the arena and attaches it according to mode.
//
// Implementation:
//   - Stage 1: Reject a negative weight before any vertex is created.
//   - Stage 2: GetOrCreateVertex for both labels.
//   - Stage 3: NewEdge + AddEdge.
//   - Stage 4: Attach to the first end, and to the second end unless mode is AttachFirst.
//
// Errors:
//   - ErrInvalidArgument: weight < 0 or unknown mode.
func (g *Graph) Connect(first, second int, weight int64, mode Attach) (*Edge, error) {
	if weight < 0 {
		return nil, fmt.Errorf("connect (%d,%d): negative weight %d: %w", first, second, weight, ErrInvalidArgument)
	}
	if mode != AttachBoth && mode != AttachFirst {
		return nil, fmt.Errorf("connect (%d,%d): unknown attach mode %s: %w", first, second, mode, ErrInvalidArgument)
	}

	v1 := g.GetOrCreateVertex(first)
	v2 := g.GetOrCreateVertex(second)

	e, err := NewEdge(v1, v2, weight)
	if err != nil {
		return nil, err
	}
	if err = g.AddEdge(e); err != nil {
		return nil, err
	}

	if err = v1.Attach(e); err != nil {
		return nil, err
	}
	if mode == AttachBoth {
		if err = v2.Attach(e); err != nil {
			return nil, err
		}
	}

	return e, nil
}

// EdgeCount returns |E|, counting duplicates.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// Edges returns a restartable sequence over a snapshot of the edge arena in
// insertion order.
func (g *Graph) Edges() iter.Seq[*Edge] {
	g.mu.RLock()
	snapshot := slices.Clone(g.edges)
	g.mu.RUnlock()

	return func(yield func(*Edge) bool) {
		for _, e := range snapshot {
			if !yield(e) {
				return
			}
		}
	}
}
