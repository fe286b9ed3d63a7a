// SPDX-License-Identifier: MIT
package dijkstra

import (
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/settle/core"
)

// ShortestPaths computes the shortest distance from source to every vertex of g.
//
// Preconditions and validation (in order):
//  1. Options must be in domain (ErrBadOption).
//  2. g must be non-nil (ErrNilGraph).
//  3. g must contain source (ErrVertexNotFound, also matching core.ErrVertexNotFound).
//
// Returns:
//
//   - A fresh *Table; vertices with no path from source are Unreachable.
//   - ErrOverflow if a reachable vertex's shortest distance does not fit in
//     int64. Longer sums that overflow are ignored, never reported.
//   - ErrRoundLimit or the context error if the run is aborted.
//
// Orientation: by default an edge extends the frontier from either end, so
// an input that declares an edge only under one of its ends still links both.
// WithLegacyOrientation restores the one-sided first→second rule.
//
// Complexity:
//
//   - StrategyScan: Time O(V·E), Space O(V).
//   - StrategyHeap: Time O((V + E) log V), Space O(V + E).
func ShortestPaths(g *core.Graph, source int, opts ...Option) (*Table, error) {
	// 1) Build and validate Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	// 2) Validate graph and source
	if g == nil {
		return nil, ErrNilGraph
	}
	src, err := g.Vertex(source)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrVertexNotFound, err)
	}

	// 3) Snapshot the arenas. Edges go first: every edge's endpoints were
	//    registered before the edge, so the later vertex snapshot covers them.
	r := newRunner(g, cfg)
	r.settle(src.Index(), 0)

	// 4) Expand the frontier.
	switch cfg.Strategy {
	case StrategyHeap:
		err = r.runHeap(src.Index())
	default:
		err = r.runScan()
	}
	if err != nil {
		return nil, err
	}

	return r.table(source), nil
}

// runner holds the mutable state of a single ShortestPaths call.
type runner struct {
	opts     Options
	vertices []*core.Vertex // dense index → vertex
	edges    []*core.Edge   // edge-list order
	dist     []Distance     // dense index → final (or, for heap, tentative) distance
	settled  []bool         // dense index → settled flag
	overflow []bool         // dense index → an arc into it overflowed (heap)
	order    []int          // settled labels in settlement order
}

// candidate is the best frontier edge found by a scan.
// edge < 0 means no edge crosses the frontier.
type candidate struct {
	edge   int   // position in the edge list
	vertex int   // dense index of the unsettled end
	value  int64 // tentative distance through this edge
}

var noCandidate = candidate{edge: -1}

func newRunner(g *core.Graph, cfg Options) *runner {
	r := &runner{opts: cfg}
	for e := range g.Edges() {
		r.edges = append(r.edges, e)
	}
	for v := range g.Vertices() {
		r.vertices = append(r.vertices, v)
	}
	r.dist = make([]Distance, len(r.vertices))
	r.settled = make([]bool, len(r.vertices))
	r.order = make([]int, 0, len(r.vertices))

	return r
}

// settle finalizes vertex i at distance value.
func (r *runner) settle(i int, value int64) {
	r.settled[i] = true
	r.dist[i] = Reached(value)
	r.order = append(r.order, r.vertices[i].Label())
}

// runScan is the round-based frontier expansion.
//
// Loop termination conditions:
//
//   - Every vertex is settled.
//   - No edge crosses the frontier: the rest is unreachable.
func (r *runner) runScan() error {
	var rounds int
	for len(r.order) < len(r.vertices) {
		if err := r.opts.Ctx.Err(); err != nil {
			return fmt.Errorf("dijkstra: round %d: %w", rounds, err)
		}

		best, err := r.frontier()
		if err != nil {
			return err
		}
		if best.edge < 0 {
			return nil
		}
		if r.opts.MaxRounds > 0 && rounds >= r.opts.MaxRounds {
			return fmt.Errorf("%w: %d settled, %d pending", ErrRoundLimit, len(r.order), len(r.vertices)-len(r.order))
		}

		r.settle(best.vertex, best.value)
		rounds++
	}

	return nil
}

// frontier returns the minimum crossing edge of the current round.
//
// A crossing edge whose sum overflows int64 is not a candidate: it is longer
// than any representable distance. Only when such edges are all that cross
// the frontier is the next distance unrepresentable, and ErrOverflow returned.
func (r *runner) frontier() (candidate, error) {
	var (
		best     candidate
		overflow bool
		err      error
	)
	if r.opts.Workers <= 1 || len(r.edges) < 2*r.opts.Workers {
		best, overflow = r.scanRange(0, len(r.edges))
	} else if best, overflow, err = r.scanSharded(); err != nil {
		return noCandidate, err
	}
	if best.edge < 0 && overflow {
		return noCandidate, fmt.Errorf("%w: %d settled, %d pending", ErrOverflow, len(r.order), len(r.vertices)-len(r.order))
	}

	return best, nil
}

// scanRange scans edges[lo:hi] and returns the first edge with the smallest
// tentative distance, and whether any crossing edge overflowed.
func (r *runner) scanRange(lo, hi int) (candidate, bool) {
	best := noCandidate
	var overflow bool
	for i := lo; i < hi; i++ {
		e := r.edges[i]
		from, to, ok := r.crossing(e)
		if !ok {
			continue
		}
		value, err := addDistance(r.dist[from].Value, e.Weight())
		if err != nil {
			overflow = true
			continue
		}
		// strict "<": the earliest edge keeps a tie
		if best.edge < 0 || value < best.value {
			best = candidate{edge: i, vertex: to, value: value}
		}
	}

	return best, overflow
}

// scanSharded splits the edge list into contiguous shards, scans them
// concurrently and reduces the shard winners. The settled set is read-only
// until Wait returns.
func (r *runner) scanSharded() (candidate, bool, error) {
	n := r.opts.Workers
	size := (len(r.edges) + n - 1) / n
	results := make([]candidate, n)
	overflows := make([]bool, n)

	grp, _ := errgroup.WithContext(r.opts.Ctx)
	for w := 0; w < n; w++ {
		results[w] = noCandidate
		lo := w * size
		hi := min(lo+size, len(r.edges))
		if lo >= hi {
			continue
		}
		grp.Go(func() error {
			results[w], overflows[w] = r.scanRange(lo, hi)
			return nil
		})
	}
	if err := grp.Wait(); err != nil {
		return noCandidate, false, err
	}

	best := noCandidate
	var overflow bool
	for w, c := range results {
		overflow = overflow || overflows[w]
		if better(c, best) {
			best = c
		}
	}

	return best, overflow, nil
}

// better reports whether a beats b: smaller value, then smaller edge position.
func better(a, b candidate) bool {
	switch {
	case a.edge < 0:
		return false
	case b.edge < 0:
		return true
	case a.value != b.value:
		return a.value < b.value
	default:
		return a.edge < b.edge
	}
}

// crossing reports whether e leads from a settled vertex to an unsettled one,
// returning the dense indices oriented settled → unsettled.
func (r *runner) crossing(e *core.Edge) (from, to int, ok bool) {
	f, s := e.First().Index(), e.Second().Index()
	switch {
	case r.settled[f] && !r.settled[s]:
		return f, s, true
	case !r.opts.LegacyOrientation && r.settled[s] && !r.settled[f]:
		return s, f, true
	default:
		return 0, 0, false
	}
}

// table freezes the runner state into a Table.
func (r *runner) table(source int) *Table {
	t := &Table{
		source: source,
		labels: make([]int, len(r.vertices)),
		dist:   make([]Distance, len(r.vertices)),
		index:  make(map[int]int, len(r.vertices)),
		order:  r.order,
	}
	for i, v := range r.vertices {
		t.labels[i] = v.Label()
		t.index[v.Label()] = i
		if r.settled[i] {
			t.dist[i] = r.dist[i]
		}
	}

	return t
}

// addDistance returns d + w, or ErrOverflow. w is non-negative by construction.
func addDistance(d, w int64) (int64, error) {
	if d > math.MaxInt64-w {
		return 0, ErrOverflow
	}

	return d + w, nil
}
