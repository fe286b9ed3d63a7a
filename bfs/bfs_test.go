// SPDX-License-Identifier: MIT
package bfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/settle/bfs"
	"github.com/katalvlaran/settle/builder"
	"github.com/katalvlaran/settle/core"
	"github.com/katalvlaran/settle/dijkstra"
)

// path builds 1-2-3-4 plus isolated 5, attached only via the first end.
func path(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, e := range [][2]int{{1, 2}, {2, 3}, {3, 4}} {
		_, err := g.Connect(e[0], e[1], 7, core.AttachFirst)
		require.NoError(t, err)
	}
	g.GetOrCreateVertex(5)

	return g
}

func TestBFS_Errors(t *testing.T) {
	_, err := bfs.BFS(nil, 1)
	assert.ErrorIs(t, err, bfs.ErrGraphNil)

	g := path(t)
	_, err = bfs.BFS(g, 9)
	assert.ErrorIs(t, err, bfs.ErrStartVertexNotFound)
	assert.ErrorIs(t, err, core.ErrVertexNotFound)

	_, err = bfs.BFS(g, 1, bfs.WithMaxDepth(-1))
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)
}

func TestBFS_Depths(t *testing.T) {
	res, err := bfs.BFS(path(t), 2)
	require.NoError(t, err)

	assert.Equal(t, []int{2, 1, 3, 4}, res.Order)
	assert.Equal(t, map[int]int{1: 1, 2: 0, 3: 1, 4: 2}, res.Depth)
	assert.False(t, res.Reached(5))

	p, err := res.PathTo(4)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3, 4}, p)

	_, err = res.PathTo(5)
	assert.Error(t, err)
}

func TestBFS_LegacyOrientation(t *testing.T) {
	res, err := bfs.BFS(path(t), 2, bfs.WithLegacyOrientation())
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3, 4}, res.Order)
	assert.False(t, res.Reached(1))
}

func TestBFS_MaxDepth(t *testing.T) {
	res, err := bfs.BFS(path(t), 1, bfs.WithMaxDepth(2))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, res.Order)
}

func TestBFS_OnVisitAbort(t *testing.T) {
	stop := errors.New("stop")
	var seen []int
	_, err := bfs.BFS(path(t), 1, bfs.WithOnVisit(func(label, _ int) error {
		seen = append(seen, label)
		if label == 3 {
			return stop
		}
		return nil
	}))
	assert.ErrorIs(t, err, stop)
	assert.Equal(t, []int{1, 2, 3}, seen)
}

func TestBFS_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := bfs.BFS(path(t), 1, bfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

// BFS reaches exactly the vertices the engine marks reachable.
func TestBFS_MatchesEngineReachability(t *testing.T) {
	for seed := int64(1); seed <= 8; seed++ {
		g, err := builder.Random(25, builder.WithSeed(seed), builder.WithExtraEdges(10),
			builder.WithoutSpanningTree(), builder.WithIsolated(2))
		require.NoError(t, err)

		res, err := bfs.BFS(g, 1)
		require.NoError(t, err)
		tab, err := dijkstra.ShortestPaths(g, 1)
		require.NoError(t, err)

		for _, l := range g.Labels() {
			assert.Equal(t, tab.Reachable(l), res.Reached(l), "seed %d label %d", seed, l)
		}
	}
}
