package render

import (
	"fmt"
	"strings"

	"github.com/zinrai/ansinv/inventory"
)

var colors = map[string]string{
	"group":     "#98FB98", // Pale green
	"ungrouped": "#DCDCDC", // Gainsboro
	"missing":   "#FFB6C1", // Light pink, child listed but not serialized
	"host":      "#87CEEB", // Sky blue
}

// DOT renders the serialized inventory as a Graphviz digraph. Groups point at
// their child groups and member hosts.
func DOT(out inventory.Output, opts ...Option) string {
	c := newConfig(opts)

	var builder strings.Builder
	builder.WriteString("digraph inventory {\n")
	builder.WriteString("  rankdir = LR;\n\n")

	writeNodeStyles(&builder)
	writeGroupNodes(&builder, out, c)
	writeHostNodes(&builder, out)
	writeMemberships(&builder, out)

	builder.WriteString("}\n")
	return builder.String()
}

func writeNodeStyles(builder *strings.Builder) {
	builder.WriteString("  // Node styles\n")
	builder.WriteString("  node [shape=box, style=\"filled,rounded\"];\n\n")
}

func writeGroupNodes(builder *strings.Builder, out inventory.Output, c *config) {
	builder.WriteString("  // Groups\n")
	declared := make(map[string]bool)
	if len(out.Ungrouped) > 0 {
		declared["ungrouped"] = true
		writeGroupNode(builder, "ungrouped", colors["ungrouped"])
	}

	for _, g := range out.Groups {
		if declared[g.Name] {
			continue
		}
		declared[g.Name] = true
		writeGroupNode(builder, g.Name, colors["group"])
	}

	// Children that were left out of the output still get a node so edges
	// have somewhere to land.
	for _, g := range out.Groups {
		for _, child := range g.Children {
			if declared[child] {
				continue
			}
			declared[child] = true
			c.log.V(1).Info("Child group has no entry", "group", g.Name, "child", child)
			writeGroupNode(builder, child, colors["missing"])
		}
	}
}

func writeGroupNode(builder *strings.Builder, name, color string) {
	builder.WriteString(fmt.Sprintf("  %s [label=%s, fillcolor=\"%s\"];\n",
		quote(groupNodeID(name)), quote("@"+name), color))
}

func writeHostNodes(builder *strings.Builder, out inventory.Output) {
	builder.WriteString("\n  // Hosts\n")
	for _, hostname := range out.Hostnames() {
		builder.WriteString(fmt.Sprintf("  %s [label=%s, shape=ellipse, fillcolor=\"%s\"];\n",
			quote(hostNodeID(hostname)), quote(hostname), colors["host"]))
	}
}

func writeMemberships(builder *strings.Builder, out inventory.Output) {
	builder.WriteString("\n  // Membership\n")
	for _, hostname := range out.Ungrouped {
		writeEdge(builder, groupNodeID("ungrouped"), hostNodeID(hostname), "dashed")
	}
	for _, g := range out.Groups {
		for _, child := range g.Children {
			writeEdge(builder, groupNodeID(g.Name), groupNodeID(child), "solid")
		}
		for _, hostname := range g.Hosts {
			writeEdge(builder, groupNodeID(g.Name), hostNodeID(hostname), "dashed")
		}
	}
}

func writeEdge(builder *strings.Builder, from, to, style string) {
	builder.WriteString(fmt.Sprintf("  %s -> %s [style=%s];\n", quote(from), quote(to), style))
}

func groupNodeID(name string) string {
	return "group:" + name
}

func hostNodeID(hostname string) string {
	return "host:" + hostname
}

func quote(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return `"` + strings.ReplaceAll(s, `"`, `\"`) + `"`
}
