// SPDX-License-Identifier: MIT
// Package dijkstra defines errors, the Distance value, strategies and the
// functional options of the shortest-path engine.
package dijkstra

import (
	"context"
	"errors"
	"fmt"
	"strconv"
)

// Sentinel errors returned by ShortestPaths.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexNotFound indicates that the source label does not exist in the graph.
	// Returned errors also wrap core.ErrVertexNotFound.
	ErrVertexNotFound = errors.New("dijkstra: source vertex not found in graph")

	// ErrBadOption indicates an option value outside its domain.
	ErrBadOption = errors.New("dijkstra: invalid option")

	// ErrRoundLimit indicates MaxRounds settlements were made while the frontier
	// still had candidates.
	ErrRoundLimit = errors.New("dijkstra: round limit reached")

	// ErrOverflow indicates that a shortest distance does not fit in int64.
	ErrOverflow = errors.New("dijkstra: distance overflows int64")
)

// Distance is the shortest distance to a vertex. The zero value is unreachable.
type Distance struct {
	// Value is the path cost; meaningful only when Reachable is true.
	Value int64

	// Reachable reports whether a path from the source exists.
	Reachable bool
}

// Unreachable is the Distance of a vertex with no path from the source.
var Unreachable = Distance{}

// Reached returns a reachable Distance of value v.
func Reached(v int64) Distance { return Distance{Value: v, Reachable: true} }

// String renders the value, or "unreachable".
func (d Distance) String() string {
	if !d.Reachable {
		return "unreachable"
	}

	return strconv.FormatInt(d.Value, 10)
}

// Strategy selects how the next vertex to settle is found.
type Strategy int

const (
	// StrategyScan scans the whole edge list once per settlement. O(V·E).
	StrategyScan Strategy = iota

	// StrategyHeap uses a binary heap with lazy decrease-key. O((V+E) log V).
	StrategyHeap
)

// String implements fmt.Stringer.
func (s Strategy) String() string {
	switch s {
	case StrategyScan:
		return "scan"
	case StrategyHeap:
		return "heap"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// ParseStrategy maps "scan" and "heap" to their Strategy.
func ParseStrategy(name string) (Strategy, error) {
	switch name {
	case "scan", "":
		return StrategyScan, nil
	case "heap":
		return StrategyHeap, nil
	default:
		return 0, fmt.Errorf("%w: unknown strategy %q", ErrBadOption, name)
	}
}

// Options configures ShortestPaths.
//
// Strategy           – StrategyScan (default) or StrategyHeap.
// Workers            – goroutines sharing each scan round; 1 means sequential.
// MaxRounds          – settlement budget; 0 means unlimited.
// Ctx                – cancellation, checked once per round.
// LegacyOrientation  – consider edges only from first end to second end.
type Options struct {
	Strategy          Strategy
	Workers           int
	MaxRounds         int
	Ctx               context.Context
	LegacyOrientation bool
}

// Option represents a functional option for configuring ShortestPaths.
type Option func(*Options)

// WithStrategy selects the settlement strategy.
func WithStrategy(s Strategy) Option {
	return func(o *Options) { o.Strategy = s }
}

// WithWorkers shards every scan round over n goroutines. n must be ≥ 1.
// Ignored by StrategyHeap.
func WithWorkers(n int) Option {
	return func(o *Options) { o.Workers = n }
}

// WithMaxRounds bounds the number of settlements after the source. n must be ≥ 0.
func WithMaxRounds(n int) Option {
	return func(o *Options) { o.MaxRounds = n }
}

// WithContext sets a context for cancellation. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithLegacyOrientation restricts every edge to its first→second direction.
//
// The input encoding declares edges from the line's vertex to its neighbors;
// with this option an edge only extends the frontier from the vertex that
// declared it. Use it to reproduce results computed that way.
func WithLegacyOrientation() Option {
	return func(o *Options) { o.LegacyOrientation = true }
}

// DefaultOptions returns the defaults: sequential scan, no round limit,
// context.Background(), undirected orientation.
func DefaultOptions() Options {
	return Options{
		Strategy:  StrategyScan,
		Workers:   1,
		MaxRounds: 0,
		Ctx:       context.Background(),
	}
}

// validate checks option domains.
func (o Options) validate() error {
	if o.Strategy != StrategyScan && o.Strategy != StrategyHeap {
		return fmt.Errorf("%w: unknown strategy %s", ErrBadOption, o.Strategy)
	}
	if o.Workers < 1 {
		return fmt.Errorf("%w: workers=%d < 1", ErrBadOption, o.Workers)
	}
	if o.MaxRounds < 0 {
		return fmt.Errorf("%w: max rounds=%d < 0", ErrBadOption, o.MaxRounds)
	}

	return nil
}
