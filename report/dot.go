// SPDX-License-Identifier: MIT
package report

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/awalterschulze/gographviz"

	"github.com/katalvlaran/settle/core"
	"github.com/katalvlaran/settle/dijkstra"
)

// dotGraphName is the name of the rendered graph.
const dotGraphName = "settle"

// DOT renders g as an undirected Graphviz graph. When t is non-nil every node
// label carries its distance, the source is drawn as a double circle and
// unreachable vertices are dashed.
func DOT(g *core.Graph, t *dijkstra.Table) (string, error) {
	graph := gographviz.NewGraph()
	if err := graph.SetName(dotGraphName); err != nil {
		return "", fmt.Errorf("report: dot name: %w", err)
	}
	if err := graph.SetDir(false); err != nil {
		return "", fmt.Errorf("report: dot direction: %w", err)
	}
	for attr, value := range map[string]string{
		"rankdir": "LR",
		"nodesep": "0.5",
		"center":  "true",
	} {
		if err := graph.AddAttr(dotGraphName, attr, value); err != nil {
			return "", fmt.Errorf("report: dot attribute %s: %w", attr, err)
		}
	}

	for v := range g.Vertices() {
		if err := graph.AddNode(dotGraphName, dotNodeID(v), dotNodeAttrs(v, t)); err != nil {
			return "", fmt.Errorf("report: dot %s: %w", v, err)
		}
	}
	for e := range g.Edges() {
		attrs := map[string]string{
			"label": fmt.Sprintf(`"%d"`, e.Weight()),
		}
		if err := graph.AddEdge(dotNodeID(e.First()), dotNodeID(e.Second()), false, attrs); err != nil {
			return "", fmt.Errorf("report: dot %s: %w", e, err)
		}
	}

	return graph.String(), nil
}

// dotNodeID returns a bare DOT identifier for v; a minus sign is not allowed
// inside one, so label -3 becomes "vm3".
func dotNodeID(v *core.Vertex) string {
	return "v" + strings.Replace(strconv.Itoa(v.Label()), "-", "m", 1)
}

func dotNodeAttrs(v *core.Vertex, t *dijkstra.Table) map[string]string {
	attrs := map[string]string{
		"shape": "circle",
		"label": fmt.Sprintf(`"%d"`, v.Label()),
	}
	if t == nil {
		return attrs
	}

	d, err := t.Distance(v.Label())
	if err != nil {
		// vertex added after the table was computed
		d = dijkstra.Unreachable
	}
	attrs["label"] = fmt.Sprintf(`"%d\n%s"`, v.Label(), d)
	switch {
	case v.Label() == t.Source():
		attrs["shape"] = "doublecircle"
	case !d.Reachable:
		attrs["style"] = "dashed"
	}

	return attrs
}
