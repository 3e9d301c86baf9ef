package render

import (
	"testing"

	"github.com/go-logr/logr/testr"

	"github.com/zinrai/ansinv/inventory"
)

// sampleOutput serializes:
//
//	web (h1) -> db (db1)
//	ungrouped: bastion
func sampleOutput(t *testing.T) inventory.Output {
	t.Helper()

	inv := inventory.NewInventory("sample")
	db := inventory.NewGroup("db", inventory.Vars{"port": 5432})
	db.AddHost(inventory.NewHost("db1", inventory.Vars{"primary": true}))
	web := inventory.NewGroup("web", nil)
	web.AddHost(inventory.NewHost("h1", inventory.Vars{"x": 1}))
	web.AddChild(db)
	inv.AddGroup(db)
	inv.AddGroup(web)
	inv.AddHost(inventory.NewHost("bastion", nil))

	return inv.Serialize()
}

func testLogger(t *testing.T) Option {
	return WithLogger(testr.NewWithOptions(t, testr.Options{Verbosity: 1}))
}
