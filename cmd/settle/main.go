// SPDX-License-Identifier: MIT
// Command settle computes single-source shortest distances on a graph read
// from a tab/comma adjacency-list file.
//
// Usage:
//
//	settle run --input dijkstra.txt [--source 1] [--strategy scan|heap] [--workers N] [--format text|dot] [--dump]
//	settle verify --input dijkstra.txt [--source 1]
//	settle gen --vertices 50 --extra 100 --seed 7 > graph.txt
//
// Global flags: --config FILE (YAML), --log LEVEL, --legacy.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/safing/portbase/log"
	"github.com/spf13/cobra"
)

// Flag names shared by commands and the config merge.
const (
	flagConfig   = "config"
	flagInput    = "input"
	flagSource   = "source"
	flagStrategy = "strategy"
	flagWorkers  = "workers"
	flagFormat   = "format"
	flagDump     = "dump"
	flagLegacy   = "legacy"
	flagLog      = "log"
)

func main() {
	os.Exit(run())
}

func run() int {
	if err := log.Start(); err != nil {
		fmt.Fprintf(os.Stderr, "settle: failed to start logging: %s\n", err)
		return 1
	}
	defer log.Shutdown()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		log.Errorf("settle: %s", err)
		return 1
	}

	return 0
}

// newRootCmd wires all subcommands around one shared Config.
func newRootCmd() *cobra.Command {
	cfg := defaultConfig()
	var configPath string

	root := &cobra.Command{
		Use:           "settle",
		Short:         "Greedy single-source shortest paths on adjacency-list graphs",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if configPath != "" {
				file, err := loadConfigFile(configPath)
				if err != nil {
					return err
				}
				cfg.merge(file, cmd.Flags().Changed)
			}
			if err := cfg.validate(); err != nil {
				return err
			}
			log.SetLogLevel(log.ParseLevel(cfg.Log))

			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&configPath, flagConfig, "", "YAML config file")
	pf.StringVar(&cfg.Log, flagLog, cfg.Log, "log level [trace|debug|info|warning|error|critical]")
	pf.BoolVar(&cfg.Legacy, flagLegacy, cfg.Legacy, "attach and follow edges only from the vertex that declares them")

	root.AddCommand(
		newRunCmd(&cfg),
		newVerifyCmd(&cfg),
		newGenCmd(),
	)

	return root
}

// addGraphFlags registers the flags of commands that read an input graph.
func addGraphFlags(cmd *cobra.Command, cfg *Config) {
	cmd.Flags().StringVarP(&cfg.Input, flagInput, "i", cfg.Input, "adjacency-list input file")
	cmd.Flags().IntVarP(&cfg.Source, flagSource, "s", cfg.Source, "source vertex label")
}
