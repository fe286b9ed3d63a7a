// SPDX-License-Identifier: MIT
// File: methods_vertices.go
// Role: Vertex lifecycle, lookups and incident-set maintenance.
//
// Determinism:
//   - Vertices() yields insertion order; Labels() is sorted ascending.
//
// Concurrency:
//   - Vertex arena protected by Graph.mu.
//   - Each Vertex guards its own incident set with Vertex.mu.
package core

import (
	"fmt"
	"iter"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Label returns the caller-supplied identity of the vertex.
func (v *Vertex) Label() int { return v.label }

// Index returns the dense arena position of the vertex inside its Graph.
func (v *Vertex) Index() int { return v.index }

// Attach records e in the incident set of v.
//
// Behavior highlights:
//   - Idempotent: attaching the same edge twice keeps a single entry.
//   - e must touch v (either end); otherwise ErrInvalidArgument.
//
// Complexity: O(1) amortized.
func (v *Vertex) Attach(e *Edge) error {
	if e == nil {
		return fmt.Errorf("attach to vertex %d: nil edge: %w", v.label, ErrInvalidArgument)
	}
	if e.first != v && e.second != v {
		return fmt.Errorf("attach %s to vertex %d: edge does not touch vertex: %w", e, v.label, ErrInvalidArgument)
	}

	v.mu.Lock()
	defer v.mu.Unlock()

	if _, ok := v.member[e]; ok {
		return nil
	}
	if v.member == nil {
		v.member = make(map[*Edge]struct{})
	}
	v.member[e] = struct{}{}
	v.incident = append(v.incident, e)

	return nil
}

// Incident returns a copy of the incident-edge set in attachment order.
func (v *Vertex) Incident() []*Edge {
	v.mu.RLock()
	defer v.mu.RUnlock()

	out := make([]*Edge, len(v.incident))
	copy(out, v.incident)

	return out
}

// Degree returns the size of the incident-edge set.
func (v *Vertex) Degree() int {
	v.mu.RLock()
	defer v.mu.RUnlock()

	return len(v.incident)
}

// String implements fmt.Stringer.
func (v *Vertex) String() string {
	return fmt.Sprintf("Vertex %d", v.label)
}

// GetOrCreateVertex returns the vertex labelled label, registering a new one
// if it is missing.
//
// Implementation:
//   - Stage 1: Fast path under the read lock.
//   - Stage 2: Re-check under the write lock, then append to the arena.
//
// Complexity: O(1) amortized.
func (g *Graph) GetOrCreateVertex(label int) *Vertex {
	g.mu.RLock()
	if i, ok := g.index[label]; ok {
		v := g.vertices[i]
		g.mu.RUnlock()

		return v
	}
	g.mu.RUnlock()

	g.mu.Lock()
	defer g.mu.Unlock()

	// Another writer may have won the race between the two locks.
	if i, ok := g.index[label]; ok {
		return g.vertices[i]
	}

	v := &Vertex{label: label, index: len(g.vertices)}
	g.vertices = append(g.vertices, v)
	g.index[label] = v.index

	return v
}

// Vertex returns the vertex labelled label, or ErrVertexNotFound.
func (g *Graph) Vertex(label int) (*Vertex, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	i, ok := g.index[label]
	if !ok {
		return nil, fmt.Errorf("label %d: %w", label, ErrVertexNotFound)
	}

	return g.vertices[i], nil
}

// HasVertex reports whether label is registered.
func (g *Graph) HasVertex(label int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.index[label]

	return ok
}

// VertexCount returns |V|.
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}

// Vertices returns a restartable sequence over a snapshot of the vertex arena,
// in insertion order (dense index ascending).
//
// The snapshot is taken when Vertices is called; vertices registered later are
// not observed by the returned sequence.
func (g *Graph) Vertices() iter.Seq[*Vertex] {
	g.mu.RLock()
	snapshot := slices.Clone(g.vertices)
	g.mu.RUnlock()

	return func(yield func(*Vertex) bool) {
		for _, v := range snapshot {
			if !yield(v) {
				return
			}
		}
	}
}

// Labels returns every registered label sorted ascending.
func (g *Graph) Labels() []int {
	g.mu.RLock()
	labels := maps.Keys(g.index)
	g.mu.RUnlock()

	slices.Sort(labels)

	return labels
}

// owns reports whether v is the vertex registered at v.index.
// Caller must hold g.mu.
func (g *Graph) owns(v *Vertex) bool {
	return v != nil && v.index < len(g.vertices) && g.vertices[v.index] == v
}
