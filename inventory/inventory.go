package inventory

import "github.com/go-logr/logr"

const (
	ungroupedKey = "ungrouped"
	metaKey      = "_meta"
)

// Inventory is the root container of groups and ungrouped hosts for one
// environment.
//
//	group := inventory.NewGroup("mygroup", nil)
//	group.AddHost(inventory.NewHost("myhost", inventory.Vars{"key": "value"}))
//
//	inv := inventory.NewInventory("myInventory")
//	inv.AddGroup(group)
//	inv.AddHost(inventory.NewHost("ungrouped_host", nil))
//	b, err := json.Marshal(inv.Serialize())
//
// A host may sit in a group and in the ungrouped list at the same time; the
// two are never reconciled. Inventory does no locking.
type Inventory struct {
	name   string
	groups []*Group
	hosts  []*Host
	log    logr.Logger
}

func NewInventory(name string, opts ...Option) *Inventory {
	inv := &Inventory{
		name: name,
		log:  logr.Discard(),
	}
	for _, opt := range opts {
		opt(inv)
	}
	inv.log = inv.log.WithValues("inventory", name)
	return inv
}

func (inv *Inventory) Name() string {
	return inv.name
}

// Groups returns the live slice of top-level groups.
func (inv *Inventory) Groups() []*Group {
	return inv.groups
}

// Hosts returns the live slice of ungrouped hosts.
func (inv *Inventory) Hosts() []*Host {
	return inv.hosts
}

// FindGroup returns the first group added under name.
func (inv *Inventory) FindGroup(name string) (*Group, bool) {
	for _, g := range inv.groups {
		if g.name == name {
			return g, true
		}
	}
	return nil, false
}

// FindHost looks up an ungrouped host. Hosts reachable only through groups
// are not searched.
func (inv *Inventory) FindHost(hostname string) (*Host, bool) {
	for _, h := range inv.hosts {
		if h.hostname == hostname {
			return h, true
		}
	}
	return nil, false
}

// AddGroup registers group unless a group with the same name exists. The
// duplicate is dropped, not merged.
func (inv *Inventory) AddGroup(group *Group) {
	if _, found := inv.FindGroup(group.name); found {
		inv.log.V(1).Info("Dropping duplicate group", "group", group.name)
		return
	}
	inv.groups = append(inv.groups, group)
}

// AddHost registers an ungrouped host unless one with the same hostname
// exists.
func (inv *Inventory) AddHost(host *Host) {
	if _, found := inv.FindHost(host.hostname); found {
		inv.log.V(1).Info("Dropping duplicate host", "host", host.hostname)
		return
	}
	inv.hosts = append(inv.hosts, host)
}

// EmptyShape returns the structure every serialization starts from.
func (inv *Inventory) EmptyShape() Output {
	return Output{
		Ungrouped: []string{},
		Meta: Meta{
			HostVars: map[string]Vars{},
		},
	}
}

// Serialize flattens the inventory into the dynamic-inventory structure.
//
// Groups without hosts and children are left out. Host variables land in
// Meta.HostVars keyed by hostname; when a hostname shows up more than once
// the last one wins, walking groups in insertion order and then the
// ungrouped hosts. Variable maps are shared with the model, not copied.
//
// A group named "ungrouped" folds its hosts into Ungrouped and a group named
// "_meta" gets no entry of its own; the hostvars of their members are still
// recorded.
func (inv *Inventory) Serialize() Output {
	out := inv.EmptyShape()
	ungrouped := make(map[string]bool)
	addUngrouped := func(hostname string) {
		if !ungrouped[hostname] {
			ungrouped[hostname] = true
			out.Ungrouped = append(out.Ungrouped, hostname)
		}
	}

	for _, group := range inv.groups {
		if !group.HasHosts() && !group.HasChildren() {
			continue
		}

		switch group.name {
		case ungroupedKey:
			inv.log.V(1).Info("Folding group into ungrouped hosts", "group", group.name)
			for _, host := range group.hosts {
				addUngrouped(host.hostname)
				out.Meta.HostVars[host.hostname] = host.variables
			}
			continue
		case metaKey:
			inv.log.V(1).Info("Skipping entry for group with reserved name", "group", group.name)
			for _, host := range group.hosts {
				out.Meta.HostVars[host.hostname] = host.variables
			}
			continue
		}

		entry := GroupOutput{
			Name:     group.name,
			Hosts:    make([]string, 0, len(group.hosts)),
			Vars:     group.variables,
			Children: make([]string, 0, len(group.children)),
		}
		for _, host := range group.hosts {
			entry.Hosts = append(entry.Hosts, host.hostname)
			out.Meta.HostVars[host.hostname] = host.variables
		}
		for _, child := range group.children {
			entry.Children = append(entry.Children, child.name)
		}
		out.Groups = append(out.Groups, entry)
	}

	for _, host := range inv.hosts {
		addUngrouped(host.hostname)
		out.Meta.HostVars[host.hostname] = host.variables
	}

	return out
}
