// SPDX-License-Identifier: MIT
// Package dijkstra_test contains unit tests for the shortest-path engine:
// validation, concrete scenarios, greedy invariants, strategy agreement and
// cross-validation against Floyd–Warshall.
package dijkstra_test

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/settle/apsp"
	"github.com/katalvlaran/settle/builder"
	"github.com/katalvlaran/settle/core"
	"github.com/katalvlaran/settle/dijkstra"
)

// triangle returns 1-2(4), 1-3(1), 3-2(1).
func triangle(t testing.TB) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, e := range [][3]int64{{1, 2, 4}, {1, 3, 1}, {3, 2, 1}} {
		_, err := g.Connect(int(e[0]), int(e[1]), e[2], core.AttachBoth)
		require.NoError(t, err)
	}

	return g
}

// mustDistance fetches a distance or fails the test.
func mustDistance(t *testing.T, tab *dijkstra.Table, label int) dijkstra.Distance {
	t.Helper()
	d, err := tab.Distance(label)
	require.NoError(t, err)

	return d
}

// bothStrategies runs fn once per strategy as subtests.
func bothStrategies(t *testing.T, fn func(t *testing.T, s dijkstra.Strategy)) {
	for _, s := range []dijkstra.Strategy{dijkstra.StrategyScan, dijkstra.StrategyHeap} {
		t.Run(s.String(), func(t *testing.T) { fn(t, s) })
	}
}

// ------------------------------------------------------------------------
// 1. Validation
// ------------------------------------------------------------------------

func TestShortestPaths_NilGraph(t *testing.T) {
	_, err := dijkstra.ShortestPaths(nil, 1)
	require.ErrorIs(t, err, dijkstra.ErrNilGraph)
}

func TestShortestPaths_SourceNotFound(t *testing.T) {
	g := triangle(t)
	_, err := dijkstra.ShortestPaths(g, 42)
	require.ErrorIs(t, err, dijkstra.ErrVertexNotFound)
	require.ErrorIs(t, err, core.ErrVertexNotFound)
	assert.Contains(t, err.Error(), "42")
}

func TestShortestPaths_BadOptions(t *testing.T) {
	g := triangle(t)
	cases := map[string]dijkstra.Option{
		"workers":  dijkstra.WithWorkers(0),
		"rounds":   dijkstra.WithMaxRounds(-1),
		"strategy": dijkstra.WithStrategy(dijkstra.Strategy(9)),
	}
	for name, opt := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := dijkstra.ShortestPaths(g, 1, opt)
			require.ErrorIs(t, err, dijkstra.ErrBadOption)
		})
	}
}

func TestParseStrategy(t *testing.T) {
	s, err := dijkstra.ParseStrategy("heap")
	require.NoError(t, err)
	assert.Equal(t, dijkstra.StrategyHeap, s)

	s, err = dijkstra.ParseStrategy("")
	require.NoError(t, err)
	assert.Equal(t, dijkstra.StrategyScan, s)

	_, err = dijkstra.ParseStrategy("bellman-ford")
	require.ErrorIs(t, err, dijkstra.ErrBadOption)
}

// ------------------------------------------------------------------------
// 2. Scenarios
// ------------------------------------------------------------------------

func TestShortestPaths_Triangle(t *testing.T) {
	bothStrategies(t, func(t *testing.T, s dijkstra.Strategy) {
		tab, err := dijkstra.ShortestPaths(triangle(t), 1, dijkstra.WithStrategy(s))
		require.NoError(t, err)

		assert.Equal(t, dijkstra.Reached(0), mustDistance(t, tab, 1))
		assert.Equal(t, dijkstra.Reached(2), mustDistance(t, tab, 2))
		assert.Equal(t, dijkstra.Reached(1), mustDistance(t, tab, 3))
		assert.Equal(t, []int{1, 3, 2}, tab.Order())
		assert.Equal(t, 1, tab.Source())
		assert.Equal(t, 3, tab.Len())
	})
}

func TestShortestPaths_SingleVertex(t *testing.T) {
	bothStrategies(t, func(t *testing.T, s dijkstra.Strategy) {
		g := core.NewGraph()
		g.GetOrCreateVertex(7)

		tab, err := dijkstra.ShortestPaths(g, 7, dijkstra.WithStrategy(s))
		require.NoError(t, err)
		assert.Equal(t, 1, tab.Len())
		assert.Equal(t, []int{7}, tab.Labels())
		assert.Equal(t, dijkstra.Reached(0), mustDistance(t, tab, 7))
	})
}

func TestShortestPaths_Disconnected(t *testing.T) {
	bothStrategies(t, func(t *testing.T, s dijkstra.Strategy) {
		g := core.NewGraph()
		_, _ = g.Connect(1, 2, 1, core.AttachBoth)
		_, _ = g.Connect(3, 4, 1, core.AttachBoth)

		tab, err := dijkstra.ShortestPaths(g, 1, dijkstra.WithStrategy(s))
		require.NoError(t, err)

		assert.True(t, tab.Reachable(2))
		for _, l := range []int{3, 4} {
			d := mustDistance(t, tab, l)
			assert.False(t, d.Reachable, "vertex %d", l)
			assert.Equal(t, dijkstra.Unreachable, d)
			assert.Equal(t, "unreachable", d.String())
		}
		assert.Equal(t, []int{1, 2}, tab.Order())
		assert.Equal(t, map[int]string{1: "0", 2: "1", 3: "unreachable", 4: "unreachable"}, tab.Map())
	})
}

func TestShortestPaths_ZeroWeightAndParallelEdges(t *testing.T) {
	bothStrategies(t, func(t *testing.T, s dijkstra.Strategy) {
		g := core.NewGraph()
		_, _ = g.Connect(1, 2, 5, core.AttachBoth)
		_, _ = g.Connect(1, 2, 3, core.AttachBoth)
		_, _ = g.Connect(2, 3, 0, core.AttachBoth)
		_, _ = g.Connect(3, 3, 2, core.AttachBoth)

		tab, err := dijkstra.ShortestPaths(g, 1, dijkstra.WithStrategy(s))
		require.NoError(t, err)
		assert.Equal(t, dijkstra.Reached(3), mustDistance(t, tab, 2))
		assert.Equal(t, dijkstra.Reached(3), mustDistance(t, tab, 3))
	})
}

// The second end of an edge can reach the first: the graph is undirected.
func TestShortestPaths_ReverseDirection(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.Connect(2, 1, 5, core.AttachBoth)

	tab, err := dijkstra.ShortestPaths(g, 1)
	require.NoError(t, err)
	assert.Equal(t, dijkstra.Reached(5), mustDistance(t, tab, 2))
}

func TestShortestPaths_LegacyOrientation(t *testing.T) {
	bothStrategies(t, func(t *testing.T, s dijkstra.Strategy) {
		g := core.NewGraph()
		_, _ = g.Connect(2, 1, 5, core.AttachFirst)
		_, _ = g.Connect(1, 3, 2, core.AttachFirst)

		tab, err := dijkstra.ShortestPaths(g, 1, dijkstra.WithStrategy(s), dijkstra.WithLegacyOrientation())
		require.NoError(t, err)
		assert.False(t, tab.Reachable(2))
		assert.Equal(t, dijkstra.Reached(2), mustDistance(t, tab, 3))
	})
}

// Ties go to the edge that comes first in the edge list.
func TestShortestPaths_TieBreakFollowsEdgeOrder(t *testing.T) {
	a := core.NewGraph()
	_, _ = a.Connect(1, 2, 1, core.AttachBoth)
	_, _ = a.Connect(1, 3, 1, core.AttachBoth)

	b := core.NewGraph()
	b.GetOrCreateVertex(1)
	b.GetOrCreateVertex(2)
	_, _ = b.Connect(1, 3, 1, core.AttachBoth)
	_, _ = b.Connect(1, 2, 1, core.AttachBoth)

	ta, err := dijkstra.ShortestPaths(a, 1)
	require.NoError(t, err)
	tb, err := dijkstra.ShortestPaths(b, 1)
	require.NoError(t, err)

	assert.Equal(t, []int{1, 2, 3}, ta.Order())
	assert.Equal(t, []int{1, 3, 2}, tb.Order())
	assert.True(t, ta.Equal(tb))
}

func TestTable_UnknownLabel(t *testing.T) {
	tab, err := dijkstra.ShortestPaths(triangle(t), 1)
	require.NoError(t, err)

	_, err = tab.Distance(99)
	require.ErrorIs(t, err, core.ErrVertexNotFound)
	assert.False(t, tab.Reachable(99))
}

// ------------------------------------------------------------------------
// 3. Guards
// ------------------------------------------------------------------------

func TestShortestPaths_MaxRounds(t *testing.T) {
	bothStrategies(t, func(t *testing.T, s dijkstra.Strategy) {
		g := core.NewGraph()
		_, _ = g.Connect(1, 2, 1, core.AttachBoth)
		_, _ = g.Connect(2, 3, 1, core.AttachBoth)

		_, err := dijkstra.ShortestPaths(g, 1, dijkstra.WithStrategy(s), dijkstra.WithMaxRounds(1))
		require.ErrorIs(t, err, dijkstra.ErrRoundLimit)

		tab, err := dijkstra.ShortestPaths(g, 1, dijkstra.WithStrategy(s), dijkstra.WithMaxRounds(2))
		require.NoError(t, err)
		assert.Equal(t, dijkstra.Reached(2), mustDistance(t, tab, 3))
	})
}

// An exhausted frontier is not a round-limit failure.
func TestShortestPaths_MaxRoundsWithUnreachable(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.Connect(1, 2, 1, core.AttachBoth)
	g.GetOrCreateVertex(3)

	tab, err := dijkstra.ShortestPaths(g, 1, dijkstra.WithMaxRounds(1))
	require.NoError(t, err)
	assert.False(t, tab.Reachable(3))
}

func TestShortestPaths_Canceled(t *testing.T) {
	bothStrategies(t, func(t *testing.T, s dijkstra.Strategy) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := dijkstra.ShortestPaths(triangle(t), 1, dijkstra.WithStrategy(s), dijkstra.WithContext(ctx))
		require.ErrorIs(t, err, context.Canceled)
	})
}

// The shortest distance of 3 is MaxInt64+1.
func TestShortestPaths_Overflow(t *testing.T) {
	bothStrategies(t, func(t *testing.T, s dijkstra.Strategy) {
		g := core.NewGraph()
		_, _ = g.Connect(1, 2, math.MaxInt64, core.AttachBoth)
		_, _ = g.Connect(2, 3, 1, core.AttachBoth)

		_, err := dijkstra.ShortestPaths(g, 1, dijkstra.WithStrategy(s))
		require.ErrorIs(t, err, dijkstra.ErrOverflow)
	})
}

// An overflowing sum through a heavy edge never beats a representable one.
func TestShortestPaths_OverflowingDetour(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.Connect(1, 3, 1, core.AttachBoth)
	_, _ = g.Connect(3, 2, math.MaxInt64, core.AttachBoth)
	_, _ = g.Connect(1, 2, 1, core.AttachBoth)
	want := map[int]string{1: "0", 2: "1", 3: "1"}

	bothStrategies(t, func(t *testing.T, s dijkstra.Strategy) {
		tab, err := dijkstra.ShortestPaths(g, 1, dijkstra.WithStrategy(s))
		require.NoError(t, err)
		assert.Equal(t, want, tab.Map())
	})

	// heavy edge listed first, so every shard sees overflowing candidates
	h := core.NewGraph()
	_, _ = h.Connect(3, 2, math.MaxInt64, core.AttachBoth)
	_, _ = h.Connect(1, 3, 1, core.AttachBoth)
	_, _ = h.Connect(2, 3, math.MaxInt64, core.AttachBoth)
	_, _ = h.Connect(1, 2, 1, core.AttachBoth)
	tab, err := dijkstra.ShortestPaths(h, 1, dijkstra.WithWorkers(2))
	require.NoError(t, err)
	assert.Equal(t, want, tab.Map())
}

// ------------------------------------------------------------------------
// 4. Properties on random graphs
// ------------------------------------------------------------------------

// randomGraph builds a reproducible graph with some unreachable vertices.
func randomGraph(t testing.TB, seed int64, opts ...builder.Option) *core.Graph {
	t.Helper()
	base := []builder.Option{
		builder.WithSeed(seed),
		builder.WithExtraEdges(40),
		builder.WithIsolated(2),
		builder.WithWeightRange(0, 20),
	}
	g, err := builder.Random(25, append(base, opts...)...)
	require.NoError(t, err)

	return g
}

func TestShortestPaths_MatchesFloydWarshall(t *testing.T) {
	for seed := int64(1); seed <= 12; seed++ {
		g := randomGraph(t, seed)
		m, err := apsp.FloydWarshall(g)
		require.NoError(t, err)

		for _, s := range []dijkstra.Strategy{dijkstra.StrategyScan, dijkstra.StrategyHeap} {
			tab, err := dijkstra.ShortestPaths(g, 1, dijkstra.WithStrategy(s))
			require.NoError(t, err)

			for _, label := range g.Labels() {
				want, ok, err := m.Distance(1, label)
				require.NoError(t, err)
				got := mustDistance(t, tab, label)
				require.Equal(t, ok, got.Reachable, "seed %d %s vertex %d", seed, s, label)
				if ok {
					require.Equal(t, want, got.Value, "seed %d %s vertex %d", seed, s, label)
				}
			}
		}
	}
}

// Distances never decrease along the settlement order, and each settled
// vertex is explained by an edge from a vertex settled before it.
func TestShortestPaths_GreedyInvariants(t *testing.T) {
	for seed := int64(1); seed <= 8; seed++ {
		g := randomGraph(t, seed)
		tab, err := dijkstra.ShortestPaths(g, 1)
		require.NoError(t, err)

		order := tab.Order()
		pos := make(map[int]int, len(order))
		for i, l := range order {
			pos[l] = i
		}

		var prev int64
		for i, l := range order {
			d := mustDistance(t, tab, l)
			require.True(t, d.Reachable)
			require.GreaterOrEqual(t, d.Value, prev, "seed %d: order not monotone at %d", seed, i)
			prev = d.Value
		}

		for _, l := range order[1:] {
			best := int64(-1)
			for e := range g.Edges() {
				for _, end := range [][2]*core.Vertex{{e.First(), e.Second()}, {e.Second(), e.First()}} {
					u, v := end[0].Label(), end[1].Label()
					if v != l {
						continue
					}
					pu, settled := pos[u]
					if !settled || pu >= pos[l] {
						continue
					}
					c := mustDistance(t, tab, u).Value + e.Weight()
					if best < 0 || c < best {
						best = c
					}
				}
			}
			require.Equal(t, best, mustDistance(t, tab, l).Value, "seed %d vertex %d", seed, l)
		}
	}
}

func TestShortestPaths_Idempotent(t *testing.T) {
	g := randomGraph(t, 3)
	a, err := dijkstra.ShortestPaths(g, 1)
	require.NoError(t, err)
	b, err := dijkstra.ShortestPaths(g, 1)
	require.NoError(t, err)

	assert.True(t, a.Equal(b))
	assert.Equal(t, a.Order(), b.Order())
	assert.Equal(t, a.Map(), b.Map())
}

// Attaching edges to one or both ends does not change the result.
func TestShortestPaths_AttachmentInvariant(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		both := randomGraph(t, seed)
		first := randomGraph(t, seed, builder.WithAttach(core.AttachFirst))

		for _, s := range []dijkstra.Strategy{dijkstra.StrategyScan, dijkstra.StrategyHeap} {
			tb, err := dijkstra.ShortestPaths(both, 1, dijkstra.WithStrategy(s))
			require.NoError(t, err)
			tf, err := dijkstra.ShortestPaths(first, 1, dijkstra.WithStrategy(s))
			require.NoError(t, err)

			assert.Equal(t, tb.Map(), tf.Map(), "seed %d %s", seed, s)
			assert.Equal(t, tb.Order(), tf.Order(), "seed %d %s", seed, s)
		}
	}
}

// Sharded scans settle the same vertices in the same order, even with many ties.
func TestShortestPaths_ShardedMatchesSequential(t *testing.T) {
	for seed := int64(1); seed <= 6; seed++ {
		g, err := builder.Random(60,
			builder.WithSeed(seed),
			builder.WithExtraEdges(200),
			builder.WithWeightRange(0, 3),
		)
		require.NoError(t, err)

		seq, err := dijkstra.ShortestPaths(g, 1)
		require.NoError(t, err)
		for _, workers := range []int{2, 3, 8} {
			par, err := dijkstra.ShortestPaths(g, 1, dijkstra.WithWorkers(workers))
			require.NoError(t, err)
			assert.Equal(t, seq.Order(), par.Order(), "seed %d workers %d", seed, workers)
			assert.True(t, seq.Equal(par))
		}
	}
}

func TestTable_Equal(t *testing.T) {
	a, err := dijkstra.ShortestPaths(triangle(t), 1)
	require.NoError(t, err)
	b, err := dijkstra.ShortestPaths(triangle(t), 2)
	require.NoError(t, err)

	assert.True(t, a.Equal(a))
	assert.False(t, a.Equal(b))
	assert.False(t, a.Equal(nil))
	assert.True(t, (*dijkstra.Table)(nil).Equal(nil))
}
