package inventory

// Host is a single managed node.
//
//	host := inventory.NewHost("my_host", inventory.Vars{"key": "val"})
type Host struct {
	hostname  string
	variables Vars
}

// NewHost creates a host. A nil vars gets its own empty map; a non-nil one is
// stored as is, so later changes by the caller show through.
func NewHost(hostname string, vars Vars) *Host {
	if vars == nil {
		vars = Vars{}
	}
	return &Host{hostname: hostname, variables: vars}
}

func (h *Host) Hostname() string {
	return h.hostname
}

// Variables returns the host_vars map itself, not a copy.
func (h *Host) Variables() Vars {
	return h.variables
}
