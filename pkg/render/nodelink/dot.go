package nodelink

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/evoviz/evoviz/pkg/graph"
)

// Options configures node-link diagram generation.
type Options struct {
	// Detailed includes rank, fitness and state in node labels.
	// When false, only the node label is shown.
	Detailed bool

	// LeftToRight lays ranks out horizontally (lineage orientation)
	// instead of top to bottom.
	LeftToRight bool
}

// fill colors per visual kind (strategy graphs) and state (lineage
// graphs).
var (
	kindFill = map[string]string{
		"data":    "lightblue",
		"feature": "palegreen",
		"logic":   "khaki",
		"signal":  "lightsalmon",
		"risk":    "plum",
		"other":   "white",
	}
	stateFill = map[string]string{
		graph.StateAlive:   "palegreen",
		graph.StateDead:    "lightgrey",
		graph.StateElite:   "gold",
		graph.StateTesting: "lightyellow",
	}
)

// ToDOT converts a renderable graph to Graphviz DOT format. Nodes sharing
// a rank are pinned to the same Graphviz rank so the diagram preserves
// the engine's layering. The resulting string can be rendered with
// [RenderSVG] or [RenderPNG].
func ToDOT(r graph.Renderable, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	if opts.LeftToRight {
		buf.WriteString("  rankdir=LR;\n")
	} else {
		buf.WriteString("  rankdir=TB;\n")
	}
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.5;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	for _, n := range r.Nodes {
		label := fmtLabel(n, opts.Detailed)
		attrs := fmtAttrs(n, label)
		fmt.Fprintf(&buf, "  %q [%s];\n", n.ID, strings.Join(attrs, ", "))
	}

	buf.WriteString("\n")
	for _, row := range r.Rows {
		if len(row.NodeIDs) < 2 {
			continue
		}
		buf.WriteString("  { rank=same;")
		for _, id := range row.NodeIDs {
			fmt.Fprintf(&buf, " %q;", id)
		}
		buf.WriteString(" }\n")
	}

	buf.WriteString("\n")
	for _, e := range r.Edges {
		if e.Label != "" {
			fmt.Fprintf(&buf, "  %q -> %q [label=%q];\n", e.Source, e.Target, e.Label)
		} else {
			fmt.Fprintf(&buf, "  %q -> %q;\n", e.Source, e.Target)
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func fmtLabel(n graph.Node, detailed bool) string {
	label := n.Data.Label
	if label == "" {
		label = n.ID
	}
	if !detailed {
		return label
	}

	parts := []string{fmt.Sprintf("rank: %d", n.Data.Rank)}
	if n.Data.Kind != "" {
		parts = append(parts, "kind: "+n.Data.Kind)
	}
	if n.Data.State != "" {
		parts = append(parts, "state: "+n.Data.State)
		parts = append(parts, fmt.Sprintf("fitness: %.3f", n.Data.Fitness))
	}
	return label + "\n" + strings.Join(parts, "\n")
}

func fmtAttrs(n graph.Node, label string) []string {
	attrs := []string{fmt.Sprintf("label=%q", label)}
	if fill, ok := stateFill[n.Data.State]; ok {
		attrs = append(attrs, fmt.Sprintf("fillcolor=%q", fill))
	} else if fill, ok := kindFill[n.Data.Kind]; ok {
		attrs = append(attrs, fmt.Sprintf("fillcolor=%q", fill))
	}
	if n.Data.State == graph.StateDead {
		attrs = append(attrs, "style=\"rounded,filled,dashed\"", "fontcolor=gray40")
	}
	return attrs
}
