// SPDX-License-Identifier: MIT
// Package core provides the in-memory graph store used by the shortest-path
// engine: integer-labelled vertices, immutable weighted edges, and a Graph that
// owns both.
//
// The Graph G = (V,E) is undirected with non-negative int64 weights:
//
//   - Vertices live in an arena indexed by a dense internal index (0..V-1),
//     assigned in insertion order, plus a label → index map.
//   - Edges live in an arena in insertion order; parallel edges are kept as-is.
//   - Each Vertex keeps its own incident-edge set (no duplicates, insertion order).
//   - A single sync.RWMutex guards the arenas; the graph is built once and
//     queried read-only afterwards.
//
// Why arenas instead of hash sets?
//
//   - Deterministic iteration: Vertices() and Edges() always yield insertion
//     order, which the greedy tie-break of the engine depends on.
//   - Dense indices let algorithms keep per-vertex state in plain slices.
//
// Core Methods:
//
//	// Vertex lifecycle
//	GetOrCreateVertex(label int) *Vertex    // O(1), idempotent
//	Vertex(label int) (*Vertex, error)      // O(1), ErrVertexNotFound
//	HasVertex(label int) bool               // O(1)
//
//	// Edge lifecycle
//	NewEdge(first, second *Vertex, weight int64) (*Edge, error) // ErrInvalidArgument
//	AddEdge(e *Edge) error                                      // append only
//	Connect(first, second int, weight int64, mode Attach) (*Edge, error)
//
//	// Enumeration
//	Vertices() iter.Seq[*Vertex]   // insertion order, snapshot
//	Edges() iter.Seq[*Edge]        // insertion order, snapshot
//	Labels() []int                 // ascending
//
// Attachment:
//
// AddEdge only appends to the edge arena. Attaching an edge to the incident sets
// of its endpoints is the caller's job (Vertex.Attach), or Connect does both
// according to an Attach mode: AttachBoth (default) records the edge on both
// endpoints; AttachFirst records it only on the first end, matching the legacy
// loader behavior. The engine scans the global edge list, so distances do not
// depend on the mode.
//
// Errors:
//
//	ErrInvalidArgument - nil endpoint, negative weight, nil edge, foreign edge.
//	ErrVertexNotFound  - label absent from the graph, or edge endpoint not registered.
package core
