// SPDX-License-Identifier: MIT
// Package apsp computes all-pairs shortest distances on a core.Graph with
// Floyd–Warshall. It is the brute-force reference the single-source engine
// is cross-checked against.
//
// Contract:
//   - Undirected: every edge relaxes both directions; parallel edges keep the lightest.
//   - "No path" is an explicit flag, not an infinity value.
//   - Loop order is fixed (k → i → j); only strict improvements are written.
//
// Complexity: Time O(V³ + E), Space O(V²).
package apsp

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/settle/core"
)

// Sentinel errors for apsp.
var (
	// ErrNilGraph indicates that a nil graph was passed.
	ErrNilGraph = errors.New("apsp: graph is nil")

	// ErrOverflow indicates that a shortest distance does not fit in int64.
	ErrOverflow = errors.New("apsp: distance overflows int64")
)

// Matrix is a dense V×V distance matrix over the dense vertex indices of the
// graph it was computed from.
type Matrix struct {
	n     int
	index  map[int]int // label → dense index
	labels []int       // dense index → label
	dist  []int64     // row-major
	ok    []bool      // row-major; false means no path
}

// FloydWarshall computes every pairwise distance of g.
func FloydWarshall(g *core.Graph) (*Matrix, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	// 1) Snapshot labels in dense order.
	m := &Matrix{index: make(map[int]int)}
	for v := range g.Vertices() {
		m.index[v.Label()] = v.Index()
		m.labels = append(m.labels, v.Label())
	}
	m.n = len(m.index)
	m.dist = make([]int64, m.n*m.n)
	m.ok = make([]bool, m.n*m.n)
	over := make([]bool, m.n*m.n) // a relaxation into (i,j) overflowed

	// 2) Diagonal is zero; each edge sets both directions to its lightest weight.
	for i := 0; i < m.n; i++ {
		m.ok[i*m.n+i] = true
	}
	for e := range g.Edges() {
		a, b := e.First().Index(), e.Second().Index()
		m.lower(a, b, e.Weight())
		m.lower(b, a, e.Weight())
	}

	// 3) Closure with fixed loop order.
	var (
		k, i, j      int
		baseK, baseI int
		ik, cand     int64
	)
	for k = 0; k < m.n; k++ {
		baseK = k * m.n
		for i = 0; i < m.n; i++ {
			if !m.ok[i*m.n+k] {
				continue // i cannot reach k
			}
			ik = m.dist[i*m.n+k]
			baseI = i * m.n
			for j = 0; j < m.n; j++ {
				if !m.ok[baseK+j] {
					continue
				}
				// an overflowing sum is longer than any representable path
				if ik > math.MaxInt64-m.dist[baseK+j] {
					over[baseI+j] = true
					continue
				}
				cand = ik + m.dist[baseK+j]
				if !m.ok[baseI+j] || cand < m.dist[baseI+j] {
					m.dist[baseI+j] = cand
					m.ok[baseI+j] = true
				}
			}
		}
	}

	// 4) A pair reached only through overflowing sums has no int64 distance.
	for p, o := range over {
		if o && !m.ok[p] {
			return nil, fmt.Errorf("%w: from %d to %d", ErrOverflow, m.labels[p/m.n], m.labels[p%m.n])
		}
	}

	return m, nil
}

// lower sets (i,j) to w if it has no value yet or w is smaller.
func (m *Matrix) lower(i, j int, w int64) {
	p := i*m.n + j
	if !m.ok[p] || w < m.dist[p] {
		m.dist[p] = w
		m.ok[p] = true
	}
}

// Size returns V.
func (m *Matrix) Size() int { return m.n }

// Distance returns the shortest distance between two labels and whether a
// path exists.
//
// Errors:
//   - core.ErrVertexNotFound if either label is not in the graph.
func (m *Matrix) Distance(from, to int) (int64, bool, error) {
	i, ok := m.index[from]
	if !ok {
		return 0, false, fmt.Errorf("apsp: label %d: %w", from, core.ErrVertexNotFound)
	}
	j, ok := m.index[to]
	if !ok {
		return 0, false, fmt.Errorf("apsp: label %d: %w", to, core.ErrVertexNotFound)
	}
	p := i*m.n + j

	return m.dist[p], m.ok[p], nil
}
