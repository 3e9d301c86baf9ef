package inventory

import "github.com/go-logr/logr"

// Option configures an Inventory.
type Option func(*Inventory)

// WithLogger sets the logger used for debug traces. Without it the inventory
// logs nothing.
func WithLogger(logger logr.Logger) Option {
	return func(inv *Inventory) {
		inv.log = logger
	}
}
