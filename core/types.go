// SPDX-License-Identifier: MIT
// Package core declares Vertex, Edge, Graph, GraphOption, Attach,
// sentinel errors, and the NewGraph constructor.
package core

import (
	"errors"
	"fmt"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrInvalidArgument indicates a malformed edge: a nil endpoint, a negative
	// weight, a nil edge, or an edge attached to a vertex it does not touch.
	ErrInvalidArgument = errors.New("core: invalid argument")

	// ErrVertexNotFound indicates an operation referenced a label (or vertex)
	// that is not registered in the graph.
	ErrVertexNotFound = errors.New("core: vertex not found")
)

// Attach selects which endpoints record a new edge in their incident sets.
type Attach int

const (
	// AttachBoth records the edge on both endpoints.
	AttachBoth Attach = iota

	// AttachFirst records the edge only on its first end.
	AttachFirst
)

// String implements fmt.Stringer.
func (a Attach) String() string {
	switch a {
	case AttachBoth:
		return "both"
	case AttachFirst:
		return "first"
	default:
		return fmt.Sprintf("Attach(%d)", int(a))
	}
}

// Vertex is a node of the graph.
//
// label is the caller-supplied identity; index is the dense arena position
// assigned by the owning Graph. incident holds edges touching this vertex in
// attachment order; member guards against duplicates.
type Vertex struct {
	label int
	index int

	mu       sync.RWMutex
	incident []*Edge
	member   map[*Edge]struct{}
}

// Edge is an immutable unordered pair of vertices with a non-negative weight.
//
// The pair is stored as (first, second) to keep the input orientation around
// for dumps and for the legacy one-sided attachment.
type Edge struct {
	first  *Vertex
	second *Vertex
	weight int64
}

// GraphOption configures a Graph before first use.
type GraphOption func(g *Graph)

// WithCapacity preallocates the vertex and edge arenas.
func WithCapacity(vertices, edges int) GraphOption {
	return func(g *Graph) {
		if vertices > 0 {
			g.vertices = make([]*Vertex, 0, vertices)
			g.index = make(map[int]int, vertices)
		}
		if edges > 0 {
			g.edges = make([]*Edge, 0, edges)
		}
	}
}

// Graph owns the vertex and edge arenas.
//
// vertices[i].index == i for every i; index maps label → arena position.
// Every edge in edges has both endpoints registered in vertices.
type Graph struct {
	mu sync.RWMutex

	vertices []*Vertex
	index    map[int]int
	edges    []*Edge
}

// NewGraph creates an empty Graph.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		index: make(map[int]int),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
