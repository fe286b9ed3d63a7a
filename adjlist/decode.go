// SPDX-License-Identifier: MIT
// Package adjlist reads and writes the tab/comma adjacency-list encoding:
//
//	<label>\t<neighbor>,<weight>\t<neighbor>,<weight>...
//
// One line per vertex. The first field is the vertex label; every further field
// declares one edge from that vertex to neighbor with a non-negative integer
// weight. A line with only a label declares the vertex and nothing else.
// Blank lines are skipped and a trailing carriage return is ignored.
//
// Decoding never stops at the first bad line: every malformed line is reported,
// with its line number, in one aggregated error, and no graph is returned.
package adjlist

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/hashicorp/go-multierror"

	"github.com/katalvlaran/settle/core"
)

// Field separators of the encoding.
const (
	FieldSeparator  = "\t"
	WeightSeparator = ","
)

// maxLineBytes bounds a single input line.
const maxLineBytes = 1 << 20

// ErrMalformedInput indicates an unparsable label, neighbor or weight, or a
// neighbor field that is not exactly "<neighbor>,<weight>".
var ErrMalformedInput = errors.New("adjlist: malformed input")

// options configures Decode.
type options struct {
	attach core.Attach
}

// Option customizes Decode.
type Option func(*options)

// WithAttach selects how decoded edges are attached to their endpoints.
// The default is core.AttachBoth.
func WithAttach(mode core.Attach) Option {
	return func(o *options) { o.attach = mode }
}

// Load opens path and decodes it.
func Load(path string, opts ...Option) (*core.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("adjlist: open %s: %w", path, err)
	}
	defer f.Close()

	g, err := Decode(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("adjlist: load %s: %w", path, err)
	}

	return g, nil
}

// Decode reads the whole encoding from r and builds a graph.
//
// Errors (aggregated, test with errors.Is):
//   - ErrMalformedInput: syntax errors.
//   - core.ErrInvalidArgument: negative weight.
//   - I/O errors from r.
func Decode(r io.Reader, opts ...Option) (*core.Graph, error) {
	cfg := options{attach: core.AttachBoth}
	for _, opt := range opts {
		opt(&cfg)
	}

	g := core.NewGraph()
	var result *multierror.Error

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	for line := 1; sc.Scan(); line++ {
		text := strings.TrimSuffix(sc.Text(), "\r")
		if strings.TrimSpace(text) == "" {
			continue
		}
		if err := decodeLine(g, text, cfg); err != nil {
			result = multierror.Append(result, fmt.Errorf("line %d: %w", line, err))
		}
	}
	if err := sc.Err(); err != nil {
		result = multierror.Append(result, fmt.Errorf("adjlist: read: %w", err))
	}

	if err := result.ErrorOrNil(); err != nil {
		return nil, err
	}

	return g, nil
}

// decodeLine registers the line's vertex and connects every neighbor field.
// Fields after a bad one are still checked.
func decodeLine(g *core.Graph, text string, cfg options) error {
	fields := strings.Split(text, FieldSeparator)

	label, err := strconv.Atoi(strings.TrimSpace(fields[0]))
	if err != nil {
		return fmt.Errorf("%w: vertex label %q", ErrMalformedInput, fields[0])
	}
	g.GetOrCreateVertex(label)

	var errs *multierror.Error
	for i, field := range fields[1:] {
		if strings.TrimSpace(field) == "" {
			// tolerate a trailing tab
			continue
		}
		neighbor, weight, err := parseNeighbor(field)
		if err != nil {
			errs = multierror.Append(errs, fmt.Errorf("field %d: %w", i+2, err))
			continue
		}
		if _, err = g.Connect(label, neighbor, weight, cfg.attach); err != nil {
			errs = multierror.Append(errs, fmt.Errorf("field %d: %w", i+2, err))
		}
	}

	return errs.ErrorOrNil()
}

// parseNeighbor parses "<neighbor>,<weight>".
func parseNeighbor(field string) (int, int64, error) {
	parts := strings.Split(field, WeightSeparator)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("%w: %q is not <neighbor>,<weight>", ErrMalformedInput, field)
	}
	neighbor, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, fmt.Errorf("%w: neighbor %q", ErrMalformedInput, parts[0])
	}
	weight, err := strconv.ParseInt(strings.TrimSpace(parts[1]), 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: weight %q", ErrMalformedInput, parts[1])
	}

	return neighbor, weight, nil
}
