// SPDX-License-Identifier: MIT
package main

import (
	"errors"
	"fmt"

	"github.com/r3labs/diff/v3"
	"github.com/safing/portbase/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/settle/apsp"
	"github.com/katalvlaran/settle/bfs"
	"github.com/katalvlaran/settle/core"
	"github.com/katalvlaran/settle/dijkstra"
)

// errMismatch is returned when two strategies disagree on any distance.
var errMismatch = errors.New("distance tables differ")

func newVerifyCmd(cfg *Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Cross-check scan, heap, Floyd-Warshall and BFS reachability",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return verify(cmd, *cfg)
		},
	}
	addGraphFlags(cmd, cfg)

	return cmd
}

func verify(cmd *cobra.Command, cfg Config) error {
	g, err := loadGraph(cfg)
	if err != nil {
		return err
	}

	tables := make(map[string]map[int]string, 3)
	for _, s := range []dijkstra.Strategy{dijkstra.StrategyScan, dijkstra.StrategyHeap} {
		opts := []dijkstra.Option{dijkstra.WithStrategy(s), dijkstra.WithContext(cmd.Context())}
		if cfg.Legacy {
			opts = append(opts, dijkstra.WithLegacyOrientation())
		}
		t, err := dijkstra.ShortestPaths(g, cfg.Source, opts...)
		if err != nil {
			return fmt.Errorf("%s: %w", s, err)
		}
		tables[s.String()] = t.Map()
	}

	// Floyd-Warshall treats every edge as undirected; it is only comparable
	// when both orientations are followed.
	if !cfg.Legacy {
		row, err := floydWarshallRow(g, cfg.Source)
		if err != nil {
			return err
		}
		tables["floyd-warshall"] = row
	}

	base := tables[dijkstra.StrategyScan.String()]
	mismatch, err := checkReach(cmd, g, cfg, base)
	if err != nil {
		return err
	}
	for name, other := range tables {
		if name == dijkstra.StrategyScan.String() {
			continue
		}
		changes, err := diff.Diff(base, other)
		if err != nil {
			return fmt.Errorf("compare scan with %s: %w", name, err)
		}
		for _, c := range changes {
			mismatch = true
			fmt.Fprintf(cmd.OutOrStdout(), "vertex %v: scan=%v %s=%v\n", c.Path, c.From, name, c.To)
		}
		log.Debugf("settle: scan vs %s: %d differences", name, len(changes))
	}
	if mismatch {
		return errMismatch
	}
	fmt.Fprintf(cmd.OutOrStdout(), "ok: %d vertices agree across %d methods\n", len(base), len(tables))

	return nil
}

// checkReach compares the reachable set of a BFS walk with the distance
// table and reports every label where they disagree.
func checkReach(cmd *cobra.Command, g *core.Graph, cfg Config, table map[int]string) (bool, error) {
	opts := []bfs.Option{bfs.WithContext(cmd.Context())}
	if cfg.Legacy {
		opts = append(opts, bfs.WithLegacyOrientation())
	}
	res, err := bfs.BFS(g, cfg.Source, opts...)
	if err != nil {
		return false, err
	}

	var mismatch bool
	unreachable := dijkstra.Unreachable.String()
	for _, label := range g.Labels() {
		if res.Reached(label) != (table[label] != unreachable) {
			mismatch = true
			fmt.Fprintf(cmd.OutOrStdout(), "vertex %d: scan=%s bfs reached=%t\n", label, table[label], res.Reached(label))
		}
	}

	return mismatch, nil
}

// floydWarshallRow returns the source row of the all-pairs matrix in the
// same rendering as dijkstra.Table.Map.
func floydWarshallRow(g *core.Graph, source int) (map[int]string, error) {
	m, err := apsp.FloydWarshall(g)
	if err != nil {
		return nil, err
	}
	row := make(map[int]string, m.Size())
	for _, label := range g.Labels() {
		v, ok, err := m.Distance(source, label)
		if err != nil {
			return nil, err
		}
		d := dijkstra.Unreachable
		if ok {
			d = dijkstra.Reached(v)
		}
		row[label] = d.String()
	}

	return row, nil
}
