// SPDX-License-Identifier: MIT
package dijkstra

import (
	"fmt"

	"golang.org/x/exp/slices"

	"github.com/katalvlaran/settle/core"
)

// Table is the result of one ShortestPaths call: a distance per vertex plus
// the order in which vertices were settled. A Table is immutable.
type Table struct {
	source int
	labels []int      // dense index → label
	dist   []Distance // dense index → distance
	index  map[int]int
	order  []int // settled labels, source first
}

// Source returns the label the distances are measured from.
func (t *Table) Source() int { return t.source }

// Len returns the number of vertices covered by the table.
func (t *Table) Len() int { return len(t.labels) }

// Distance returns the distance to label.
//
// Errors:
//   - core.ErrVertexNotFound if label was not in the graph.
func (t *Table) Distance(label int) (Distance, error) {
	i, ok := t.index[label]
	if !ok {
		return Unreachable, fmt.Errorf("distance to %d: %w", label, core.ErrVertexNotFound)
	}

	return t.dist[i], nil
}

// Reachable reports whether label is in the table and has a path from the source.
func (t *Table) Reachable(label int) bool {
	i, ok := t.index[label]

	return ok && t.dist[i].Reachable
}

// Labels returns every label covered by the table, ascending.
func (t *Table) Labels() []int {
	out := slices.Clone(t.labels)
	slices.Sort(out)

	return out
}

// Order returns the settled labels in settlement order. Unreachable vertices
// are absent.
func (t *Table) Order() []int { return slices.Clone(t.order) }

// Map returns label → rendered distance ("unreachable" for no path).
func (t *Table) Map() map[int]string {
	out := make(map[int]string, len(t.labels))
	for i, l := range t.labels {
		out[l] = t.dist[i].String()
	}

	return out
}

// Equal reports whether both tables hold the same distance for every label.
// Settlement order is not compared.
func (t *Table) Equal(other *Table) bool {
	if t == nil || other == nil {
		return t == other
	}
	if t.source != other.source || len(t.labels) != len(other.labels) {
		return false
	}
	for i, l := range t.labels {
		j, ok := other.index[l]
		if !ok || other.dist[j] != t.dist[i] {
			return false
		}
	}

	return true
}
