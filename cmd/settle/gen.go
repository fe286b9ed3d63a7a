// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"os"

	"github.com/safing/portbase/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/settle/adjlist"
	"github.com/katalvlaran/settle/builder"
)

type genOptions struct {
	vertices     int
	extra        int
	isolated     int
	seed         int64
	minWeight    int
	maxWeight    int
	disconnected bool
	output       string
}

func newGenCmd() *cobra.Command {
	o := genOptions{
		vertices:  10,
		seed:      builder.DefaultSeed,
		minWeight: builder.DefaultMinWeight,
		maxWeight: builder.DefaultMaxWeight,
	}
	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate a random weighted graph in adjacency-list format",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return o.run(cmd)
		},
	}
	f := cmd.Flags()
	f.IntVarP(&o.vertices, "vertices", "n", o.vertices, "number of connected vertices")
	f.IntVarP(&o.extra, "extra", "e", o.extra, "random edges added on top of the spanning tree")
	f.IntVar(&o.isolated, "isolated", o.isolated, "vertices without any edge")
	f.Int64Var(&o.seed, "seed", o.seed, "random seed")
	f.IntVar(&o.minWeight, "min-weight", o.minWeight, "smallest edge weight")
	f.IntVar(&o.maxWeight, "max-weight", o.maxWeight, "largest edge weight")
	f.BoolVar(&o.disconnected, "disconnected", o.disconnected, "skip the spanning tree")
	f.StringVarP(&o.output, "output", "o", "", "write to file instead of stdout")

	return cmd
}

func (o genOptions) validate() error {
	switch {
	case o.extra < 0:
		return fmt.Errorf("extra must not be negative, got %d", o.extra)
	case o.isolated < 0:
		return fmt.Errorf("isolated must not be negative, got %d", o.isolated)
	case o.minWeight < 0 || o.minWeight > o.maxWeight:
		return fmt.Errorf("invalid weight range [%d, %d]", o.minWeight, o.maxWeight)
	}

	return nil
}

func (o genOptions) run(cmd *cobra.Command) (err error) {
	if err = o.validate(); err != nil {
		return err
	}
	opts := []builder.Option{
		builder.WithSeed(o.seed),
		builder.WithExtraEdges(o.extra),
		builder.WithIsolated(o.isolated),
		builder.WithWeightRange(o.minWeight, o.maxWeight),
	}
	if o.disconnected {
		opts = append(opts, builder.WithoutSpanningTree())
	}

	g, err := builder.Random(o.vertices, opts...)
	if err != nil {
		return err
	}
	log.Infof("settle: generated %d vertices and %d edges (seed %d)", g.VertexCount(), g.EdgeCount(), o.seed)

	if o.output == "" {
		return adjlist.Encode(cmd.OutOrStdout(), g)
	}

	f, err := os.Create(o.output)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	return adjlist.Encode(f, g)
}
