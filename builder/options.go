// SPDX-License-Identifier: MIT
// Package: settle/builder
//
// options.go: functional options for the random graph builder.
//
// Contract:
//   - Options are functional (type Option func(*config)).
//   - Option constructors validate and panic on meaningless inputs;
//     Random itself never panics.
//   - Determinism is explicit: the same seed and options yield the same graph.
package builder

import (
	"fmt"

	"github.com/katalvlaran/settle/core"
)

// Default builder parameters.
const (
	DefaultSeed      int64 = 1
	DefaultMinWeight       = 0
	DefaultMaxWeight       = 10
)

// config is the resolved option set of one Random call.
type config struct {
	seed      int64
	extra     int
	minWeight int
	maxWeight int
	connected bool
	isolated  int
	attach    core.Attach
}

func defaultConfig() config {
	return config{
		seed:      DefaultSeed,
		minWeight: DefaultMinWeight,
		maxWeight: DefaultMaxWeight,
		connected: true,
		attach:    core.AttachBoth,
	}
}

// Option customizes Random.
type Option func(*config)

// WithSeed fixes the random seed. A zero seed is replaced by DefaultSeed so
// that runs stay reproducible.
func WithSeed(seed int64) Option {
	return func(c *config) {
		if seed == 0 {
			seed = DefaultSeed
		}
		c.seed = seed
	}
}

// WithExtraEdges adds n random edges on top of the spanning tree. Panics if n < 0.
func WithExtraEdges(n int) Option {
	if n < 0 {
		panic(fmt.Sprintf("builder: WithExtraEdges(%d)", n))
	}

	return func(c *config) { c.extra = n }
}

// WithWeightRange draws weights uniformly from [lo, hi]. Panics if lo < 0 or lo > hi.
func WithWeightRange(lo, hi int) Option {
	if lo < 0 || lo > hi {
		panic(fmt.Sprintf("builder: WithWeightRange(%d, %d)", lo, hi))
	}

	return func(c *config) {
		c.minWeight = lo
		c.maxWeight = hi
	}
}

// WithoutSpanningTree skips the spanning tree; only random edges are added and
// the graph is usually disconnected.
func WithoutSpanningTree() Option {
	return func(c *config) { c.connected = false }
}

// WithIsolated appends n vertices without any edge. Panics if n < 0.
func WithIsolated(n int) Option {
	if n < 0 {
		panic(fmt.Sprintf("builder: WithIsolated(%d)", n))
	}

	return func(c *config) { c.isolated = n }
}

// WithAttach selects the attachment mode used for every edge.
func WithAttach(mode core.Attach) Option {
	return func(c *config) { c.attach = mode }
}
