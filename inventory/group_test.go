package inventory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGroupIsEmpty(t *testing.T) {
	g := NewGroup("web", nil)

	assert.Equal(t, "web", g.Name())
	assert.False(t, g.HasHosts())
	assert.False(t, g.HasChildren())
	assert.Empty(t, g.Hosts())
	assert.Empty(t, g.Children())
	assert.NotNil(t, g.Variables())
}

func TestNewGroupGetsOwnVars(t *testing.T) {
	a := NewGroup("a", nil)
	b := NewGroup("b", nil)

	a.Variables()["key"] = 1

	assert.Empty(t, b.Variables())
}

func TestGroupAddHostRejectsSameHost(t *testing.T) {
	g := NewGroup("web", nil)
	h := NewHost("h1", nil)

	require.True(t, g.AddHost(h))
	require.False(t, g.AddHost(h))

	assert.Equal(t, []*Host{h}, g.Hosts())
	assert.True(t, g.HasHosts())
	assert.True(t, g.ContainsHost(h))
}

func TestGroupAddHostComparesByIdentity(t *testing.T) {
	g := NewGroup("web", nil)
	first := NewHost("h1", nil)
	second := NewHost("h1", nil)

	assert.True(t, g.AddHost(first))
	assert.True(t, g.AddHost(second))
	assert.Len(t, g.Hosts(), 2)
	assert.False(t, g.ContainsHost(NewHost("h1", nil)))
}

func TestGroupAddChildAllowsDuplicatesAndCycles(t *testing.T) {
	parent := NewGroup("parent", nil)
	child := NewGroup("child", nil)

	parent.AddChild(child)
	parent.AddChild(child)
	child.AddChild(parent)

	assert.Equal(t, []*Group{child, child}, parent.Children())
	assert.True(t, parent.HasChildren())
	assert.True(t, parent.ContainsChild(child))
	assert.True(t, child.ContainsChild(parent))
	assert.False(t, child.ContainsChild(NewGroup("parent", nil)))
}

func TestGroupSlicesAreLive(t *testing.T) {
	g := NewGroup("web", nil)
	g.AddHost(NewHost("h1", nil))

	hosts := g.Hosts()
	hosts[0] = NewHost("replaced", nil)

	assert.Equal(t, "replaced", g.Hosts()[0].Hostname())
}
