// SPDX-License-Identifier: MIT
package adjlist

import (
	"bufio"
	"fmt"
	"io"

	"github.com/katalvlaran/settle/core"
)

// Encode writes g in the adjacency-list encoding: one line per vertex in
// insertion order, each edge listed once under its first end, in edge-list
// order. Decoding the output yields the same vertices and the same multiset of
// edges; vertex insertion order may change when a neighbor is declared before
// its own line.
func Encode(w io.Writer, g *core.Graph) error {
	// Group edges under their first end, keeping edge-list order.
	byFirst := make(map[*core.Vertex][]*core.Edge)
	for e := range g.Edges() {
		byFirst[e.First()] = append(byFirst[e.First()], e)
	}

	bw := bufio.NewWriter(w)
	for v := range g.Vertices() {
		if _, err := fmt.Fprintf(bw, "%d", v.Label()); err != nil {
			return fmt.Errorf("adjlist: encode vertex %d: %w", v.Label(), err)
		}
		for _, e := range byFirst[v] {
			if _, err := fmt.Fprintf(bw, "%s%d%s%d", FieldSeparator, e.Second().Label(), WeightSeparator, e.Weight()); err != nil {
				return fmt.Errorf("adjlist: encode %s: %w", e, err)
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return fmt.Errorf("adjlist: encode vertex %d: %w", v.Label(), err)
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("adjlist: flush: %w", err)
	}

	return nil
}
