package inventory

// Vars holds host_vars or group_vars keyed by variable name
type Vars map[string]any

// GroupOutput is one group entry of the serialized inventory
type GroupOutput struct {
	Name     string   `json:"-"`
	Hosts    []string `json:"hosts"`
	Vars     Vars     `json:"vars"`
	Children []string `json:"children"`
}

// Meta carries the per-host variable side table
type Meta struct {
	HostVars map[string]Vars `json:"hostvars"`
}

// Output is the dynamic-inventory structure produced by Serialize.
// Groups keeps the order the groups were added to the inventory.
type Output struct {
	Ungrouped []string
	Meta      Meta
	Groups    []GroupOutput
}
