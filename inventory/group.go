package inventory

// Group is a named collection of hosts and child groups with its own group_vars.
//
// Hosts are unique by identity. Children are not checked at all: the same
// child may be added twice and cycles are allowed.
type Group struct {
	name      string
	variables Vars
	hosts     []*Host
	children  []*Group
}

// NewGroup creates an empty group. A nil vars gets its own empty map.
func NewGroup(name string, vars Vars) *Group {
	if vars == nil {
		vars = Vars{}
	}
	return &Group{name: name, variables: vars}
}

func (g *Group) Name() string {
	return g.name
}

// Variables returns the group_vars map itself, not a copy.
func (g *Group) Variables() Vars {
	return g.variables
}

func (g *Group) HasChildren() bool {
	return len(g.children) > 0
}

// ContainsChild reports whether this exact group is a child.
func (g *Group) ContainsChild(child *Group) bool {
	for _, c := range g.children {
		if c == child {
			return true
		}
	}
	return false
}

// Children returns the live children slice.
func (g *Group) Children() []*Group {
	return g.children
}

// AddChild appends child without any duplicate or cycle check.
func (g *Group) AddChild(child *Group) {
	g.children = append(g.children, child)
}

func (g *Group) HasHosts() bool {
	return len(g.hosts) > 0
}

// ContainsHost reports whether this exact host is a member.
func (g *Group) ContainsHost(host *Host) bool {
	for _, h := range g.hosts {
		if h == host {
			return true
		}
	}
	return false
}

// Hosts returns the live hosts slice.
func (g *Group) Hosts() []*Host {
	return g.hosts
}

// AddHost appends host unless it is already a member. It returns false for a
// duplicate and leaves the group unchanged.
func (g *Group) AddHost(host *Host) bool {
	if g.ContainsHost(host) {
		return false
	}
	g.hosts = append(g.hosts, host)
	return true
}
