// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"os"

	"github.com/ghodss/yaml"
	"github.com/safing/portbase/log"

	"github.com/katalvlaran/settle/core"
	"github.com/katalvlaran/settle/dijkstra"
)

// Config holds every setting of a settle invocation. It can be read from a
// YAML file; command-line flags win over file values.
type Config struct {
	Input    string `json:"input"`
	Source   int    `json:"source"`
	Strategy string `json:"strategy"`
	Workers  int    `json:"workers"`
	Format   string `json:"format"`
	Dump     bool   `json:"dump"`
	Legacy   bool   `json:"legacy"`
	Log      string `json:"log"`
}

// fileConfig is Config as read from YAML. Source is a pointer because any
// integer, 0 included, is a valid label; nil means the key is absent.
type fileConfig struct {
	Config
	Source *int `json:"source"`
}

// Output formats of the run command.
const (
	formatText = "text"
	formatDOT  = "dot"
)

func defaultConfig() Config {
	return Config{
		Source:   1,
		Strategy: dijkstra.StrategyScan.String(),
		Workers:  1,
		Format:   formatText,
		Log:      "warning",
	}
}

// loadConfigFile reads a YAML config file.
func loadConfigFile(path string) (fileConfig, error) {
	var cfg fileConfig
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err = yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}

	return cfg, nil
}

// merge copies non-zero file values into c for every setting whose flag was
// not set explicitly.
func (c *Config) merge(file fileConfig, changed func(name string) bool) {
	if !changed(flagInput) && file.Input != "" {
		c.Input = file.Input
	}
	if !changed(flagSource) && file.Source != nil {
		c.Source = *file.Source
	}
	if !changed(flagStrategy) && file.Strategy != "" {
		c.Strategy = file.Strategy
	}
	if !changed(flagWorkers) && file.Workers != 0 {
		c.Workers = file.Workers
	}
	if !changed(flagFormat) && file.Format != "" {
		c.Format = file.Format
	}
	if !changed(flagDump) && file.Dump {
		c.Dump = true
	}
	if !changed(flagLegacy) && file.Legacy {
		c.Legacy = true
	}
	if !changed(flagLog) && file.Log != "" {
		c.Log = file.Log
	}
}

// validate checks the settings shared by all commands.
func (c Config) validate() error {
	if log.ParseLevel(c.Log) == 0 {
		return fmt.Errorf("unknown log level %q", c.Log)
	}
	if _, err := dijkstra.ParseStrategy(c.Strategy); err != nil {
		return err
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", c.Workers)
	}
	switch c.Format {
	case formatText, formatDOT:
	default:
		return fmt.Errorf("unknown format %q", c.Format)
	}

	return nil
}

// attach returns the attachment mode the loader should use.
func (c Config) attach() core.Attach {
	if c.Legacy {
		return core.AttachFirst
	}

	return core.AttachBoth
}

// engineOptions translates the config into engine options.
func (c Config) engineOptions() ([]dijkstra.Option, error) {
	strategy, err := dijkstra.ParseStrategy(c.Strategy)
	if err != nil {
		return nil, err
	}
	opts := []dijkstra.Option{
		dijkstra.WithStrategy(strategy),
		dijkstra.WithWorkers(c.Workers),
	}
	if c.Legacy {
		opts = append(opts, dijkstra.WithLegacyOrientation())
	}

	return opts, nil
}
