// SPDX-License-Identifier: MIT
// Package report renders shortest-path results and graph dumps.
//
// Formats:
//
//   - WriteDistances: "Shorpath for vertex <label> = <distance>" per vertex,
//     ascending by label, followed by a blank line. Unreachable vertices print
//     "unreachable".
//   - WriteGraph: debug dump of every vertex with its incident edges, then the
//     edge list in input order.
//   - DOT: Graphviz source of the graph, annotated with distances.
package report

import (
	"bufio"
	"fmt"
	"io"

	"github.com/katalvlaran/settle/core"
	"github.com/katalvlaran/settle/dijkstra"
)

// WriteDistances writes one line per vertex of t, ascending by label.
func WriteDistances(w io.Writer, t *dijkstra.Table) error {
	bw := bufio.NewWriter(w)
	for _, label := range t.Labels() {
		d, err := t.Distance(label)
		if err != nil {
			return err
		}
		if _, err = fmt.Fprintf(bw, "Shorpath for vertex %d = %s\n", label, d); err != nil {
			return fmt.Errorf("report: write distance of %d: %w", label, err)
		}
	}
	if err := bw.WriteByte('\n'); err != nil {
		return fmt.Errorf("report: write distances: %w", err)
	}

	return bw.Flush()
}

// WriteGraph writes the debug representation of g.
func WriteGraph(w io.Writer, g *core.Graph) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, "The representation of the graph read is:")
	fmt.Fprintln(bw)
	for v := range g.Vertices() {
		incident := v.Incident()
		if len(incident) == 0 {
			fmt.Fprintf(bw, "%s has no edges.\n", v)
			continue
		}
		fmt.Fprintf(bw, "%s has edges:\n", v)
		for _, e := range incident {
			fmt.Fprintf(bw, "  %s\n", e)
		}
	}

	fmt.Fprintln(bw)
	fmt.Fprintln(bw, "The edges of the graph are:")
	fmt.Fprintln(bw)
	for e := range g.Edges() {
		fmt.Fprintln(bw, e)
	}
	fmt.Fprintln(bw)

	// bufio.Writer keeps the first write error; Flush reports it.
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("report: write graph: %w", err)
	}

	return nil
}
