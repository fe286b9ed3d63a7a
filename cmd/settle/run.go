// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"io"
	"time"

	"github.com/safing/portbase/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/settle/adjlist"
	"github.com/katalvlaran/settle/core"
	"github.com/katalvlaran/settle/dijkstra"
	"github.com/katalvlaran/settle/report"
)

func newRunCmd(cfg *Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Compute shortest distances from the source vertex",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSettle(cmd, *cfg)
		},
	}
	addGraphFlags(cmd, cfg)
	cmd.Flags().StringVar(&cfg.Strategy, flagStrategy, cfg.Strategy, "selection strategy [scan|heap]")
	cmd.Flags().IntVarP(&cfg.Workers, flagWorkers, "w", cfg.Workers, "parallel workers for the scan strategy")
	cmd.Flags().StringVarP(&cfg.Format, flagFormat, "f", cfg.Format, "output format [text|dot]")
	cmd.Flags().BoolVar(&cfg.Dump, flagDump, cfg.Dump, "print the graph before the distances")

	return cmd
}

func runSettle(cmd *cobra.Command, cfg Config) error {
	g, err := loadGraph(cfg)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	if cfg.Dump {
		if err = report.WriteGraph(out, g); err != nil {
			return err
		}
	}

	opts, err := cfg.engineOptions()
	if err != nil {
		return err
	}
	opts = append(opts, dijkstra.WithContext(cmd.Context()))

	start := time.Now()
	t, err := dijkstra.ShortestPaths(g, cfg.Source, opts...)
	if err != nil {
		return err
	}
	log.Debugf("settle: settled %d of %d vertices in %s using %s", len(t.Order()), t.Len(), time.Since(start), cfg.Strategy)

	return writeTable(out, g, t, cfg.Format)
}

// loadGraph reads the configured input file.
func loadGraph(cfg Config) (*core.Graph, error) {
	if cfg.Input == "" {
		return nil, fmt.Errorf("no input file given (use --%s or the config file)", flagInput)
	}
	g, err := adjlist.Load(cfg.Input, adjlist.WithAttach(cfg.attach()))
	if err != nil {
		return nil, err
	}
	log.Infof("settle: loaded %d vertices and %d edges from %s", g.VertexCount(), g.EdgeCount(), cfg.Input)

	return g, nil
}

func writeTable(w io.Writer, g *core.Graph, t *dijkstra.Table, format string) error {
	if format == formatDOT {
		src, err := report.DOT(g, t)
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, src)

		return err
	}

	return report.WriteDistances(w, t)
}
