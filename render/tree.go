package render

import (
	"strings"

	"github.com/zinrai/ansinv/inventory"
)

type treeWriter struct {
	builder strings.Builder
	groups  map[string]inventory.GroupOutput
	visited map[string]bool
	config  *config
}

// Tree renders the serialized inventory the way `ansible-inventory --graph`
// does:
//
//	@all:
//	  |--@ungrouped:
//	  |  |--bastion
//	  |--@web:
//	  |  |--@db:
//	  |  |  |--db1
//	  |  |--h1
//
// Child groups come before hosts. A group that is already on the current path
// is printed but not descended into, so cyclic children terminate. A child
// shared by several parents is expanded again under each of them, so a dense
// hierarchy can grow quickly up to the WithMaxDepth limit.
func Tree(out inventory.Output, opts ...Option) string {
	w := &treeWriter{
		groups:  make(map[string]inventory.GroupOutput, len(out.Groups)),
		visited: make(map[string]bool),
		config:  newConfig(opts),
	}
	isChild := make(map[string]bool)
	for _, g := range out.Groups {
		if _, exists := w.groups[g.Name]; !exists {
			w.groups[g.Name] = g
		}
		for _, child := range g.Children {
			isChild[child] = true
		}
	}

	w.builder.WriteString("@all:\n")
	w.writeLine("@ungrouped:", 1)
	for _, hostname := range out.Ungrouped {
		w.writeLine(hostname, 2)
	}

	for _, g := range out.Groups {
		if !isChild[g.Name] && !w.visited[g.Name] {
			w.traverseGroup(g.Name, 1, make(map[string]bool))
		}
	}
	// Groups reachable only through a cycle have no root of their own.
	for _, g := range out.Groups {
		if !w.visited[g.Name] {
			w.traverseGroup(g.Name, 1, make(map[string]bool))
		}
	}

	return w.builder.String()
}

func (w *treeWriter) traverseGroup(name string, depth int, path map[string]bool) {
	w.writeLine("@"+name+":", depth)
	w.visited[name] = true

	if path[name] {
		w.config.log.V(1).Info("Cycle in group children", "group", name, "depth", depth)
		return
	}
	if depth >= w.config.maxDepth {
		w.config.log.V(1).Info("Maximum depth reached", "group", name, "depth", depth)
		return
	}

	g, found := w.groups[name]
	if !found {
		return
	}

	path[name] = true
	for _, child := range g.Children {
		w.traverseGroup(child, depth+1, path)
	}
	for _, hostname := range g.Hosts {
		w.writeLine(hostname, depth+1)
	}
	delete(path, name)
}

func (w *treeWriter) writeLine(name string, depth int) {
	w.builder.WriteString(strings.Repeat("  |", depth))
	w.builder.WriteString("--")
	w.builder.WriteString(name)
	w.builder.WriteString("\n")
}
