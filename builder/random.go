// SPDX-License-Identifier: MIT
// Package builder generates seeded random graphs for tests, benchmarks and the
// `settle gen` command.
//
// Canonical model:
//   - Vertices are labelled 1..n in ascending order, then n+1..n+isolated.
//   - Spanning tree (default): vertex i (i ≥ 2) links to a parent drawn
//     uniformly from 1..i-1, so every labelled vertex up to n is reachable from 1.
//   - Extra edges: both ends drawn uniformly from 1..n, self-loops redrawn.
//   - Weights: uniform in [minWeight, maxWeight].
//
// Determinism:
//   - Draws happen in a fixed order (tree, then extras) from a generator seeded
//     once per call; the shared generator is serialized by a package mutex.
package builder

import (
	"errors"
	"fmt"
	"sync"

	"github.com/brianvoe/gofakeit"

	"github.com/katalvlaran/settle/core"
)

// ErrTooFewVertices indicates n < 1.
var ErrTooFewVertices = errors.New("builder: parameter too small")

const methodRandom = "Random"

// fakeLock serializes access to gofakeit's package-level generator.
var fakeLock sync.Mutex

// Random builds a random undirected graph over n labelled vertices.
//
// Complexity: O(n + extra) expected.
func Random(n int, opts ...Option) (*core.Graph, error) {
	if n < 1 {
		return nil, fmt.Errorf("%s: n=%d < 1: %w", methodRandom, n, ErrTooFewVertices)
	}
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	fakeLock.Lock()
	defer fakeLock.Unlock()

	// Seed with the option to make it reproducible.
	gofakeit.Seed(cfg.seed)

	g := core.NewGraph(core.WithCapacity(n+cfg.isolated, n-1+cfg.extra))

	// 1) Register labels in ascending order so dense indices follow labels.
	for label := 1; label <= n+cfg.isolated; label++ {
		g.GetOrCreateVertex(label)
	}

	// 2) Spanning tree rooted at 1.
	if cfg.connected {
		for child := 2; child <= n; child++ {
			parent := gofakeit.Number(1, child-1)
			if err := connect(g, parent, child, cfg); err != nil {
				return nil, err
			}
		}
	}

	// 3) Extra edges; a single vertex admits none without loops.
	if n > 1 {
		for i := 0; i < cfg.extra; i++ {
			u := gofakeit.Number(1, n)
			v := gofakeit.Number(1, n)
			for v == u {
				v = gofakeit.Number(1, n)
			}
			if err := connect(g, u, v, cfg); err != nil {
				return nil, err
			}
		}
	}

	return g, nil
}

// connect draws a weight and links u-v.
func connect(g *core.Graph, u, v int, cfg config) error {
	w := gofakeit.Number(cfg.minWeight, cfg.maxWeight)
	if _, err := g.Connect(u, v, int64(w), cfg.attach); err != nil {
		return fmt.Errorf("%s: Connect(%d,%d,w=%d): %w", methodRandom, u, v, w, err)
	}

	return nil
}
