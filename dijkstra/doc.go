// SPDX-License-Identifier: MIT
// Package dijkstra computes single-source shortest distances on a core.Graph
// with Dijkstra's greedy frontier expansion.
//
// Overview:
//
//   - The settled set starts as {source}. Each round scans every edge once,
//     looks at the edges crossing from a settled to an unsettled vertex, and
//     settles the far end of the edge with the smallest tentative distance.
//   - Ties are broken by edge-list order: the first qualifying edge wins, so a
//     fixed input always yields the same settlement order.
//   - When no edge crosses the frontier the remaining vertices are reported as
//     unreachable and the computation stops. There is no infinity sentinel; a
//     Distance carries an explicit Reachable flag.
//
// Strategies:
//
//   - StrategyScan (default): the round-based edge scan described above.
//     O(V·E) time, O(V) extra space.
//   - StrategyHeap: lazy-decrease-key binary heap over per-vertex adjacency
//     built from the edge list. O((V + E) log V). Same distances; on equal
//     distances vertices settle by ascending dense index.
//
// Options:
//
//   - WithStrategy(s)      select the strategy.
//   - WithWorkers(n)       shard each scan round over n goroutines (scan only).
//     The reduction keeps the edge-order tie-break, so the
//     settlement order equals the sequential scan.
//   - WithMaxRounds(n)     fail with ErrRoundLimit after n settlements.
//   - WithContext(ctx)     cancellation, checked once per round.
//   - WithLegacyOrientation() only consider an edge from its first end to its
//     second end (one-directional scan).
//
// Error handling (sentinel errors):
//
//   - ErrNilGraph:       graph pointer is nil.
//   - ErrVertexNotFound: source label is absent. Also matches core.ErrVertexNotFound.
//   - ErrBadOption:      invalid option value (workers < 1, rounds < 0, unknown strategy).
//   - ErrRoundLimit:     MaxRounds settlements done and vertices are still reachable.
//   - ErrOverflow:       a reachable shortest distance does not fit in int64.
//
// Example:
//
//	g := core.NewGraph()
//	_, _ = g.Connect(1, 2, 4, core.AttachBoth)
//	_, _ = g.Connect(1, 3, 1, core.AttachBoth)
//	_, _ = g.Connect(3, 2, 1, core.AttachBoth)
//
//	t, err := dijkstra.ShortestPaths(g, 1)
//	if err != nil {
//	    return err
//	}
//	d, _ := t.Distance(2) // 2, via 1→3→2
package dijkstra
