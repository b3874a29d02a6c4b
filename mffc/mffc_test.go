package mffc_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aigopt/aig"
	"github.com/katalvlaran/aigopt/mffc"
)

func TestCollect_IncludesExclusiveInteriorNode(t *testing.T) {
	g := aig.New()
	a := g.CreateInput()
	b := g.CreateInput()
	c := g.CreateInput()
	ab := g.CreateAnd(a, b)
	abc := g.CreateAnd(ab, c)

	nodes := mffc.Collect(g, abc.Node(), []uint32{a.Node(), b.Node(), c.Node()})
	require.ElementsMatch(t, []uint32{abc.Node(), ab.Node()}, nodes)
	require.Equal(t, 2, mffc.Label(g, abc.Node(), []uint32{a.Node(), b.Node(), c.Node()}))
}

func TestCollect_ExcludesSharedInteriorNode(t *testing.T) {
	g := aig.New()
	a := g.CreateInput()
	b := g.CreateInput()
	c := g.CreateInput()
	ab := g.CreateAnd(a, b)
	abc := g.CreateAnd(ab, c)
	g.AddOutput("extra", ab) // ab now has an external consumer too

	nodes := mffc.Collect(g, abc.Node(), []uint32{a.Node(), b.Node(), c.Node()})
	require.ElementsMatch(t, []uint32{abc.Node()}, nodes, "ab has fanout outside the cone, must not be swept")
}

func TestCollect_NeverTraversesPastLeaves(t *testing.T) {
	g := aig.New()
	a := g.CreateInput()
	b := g.CreateInput()
	ab := g.CreateAnd(a, b)

	nodes := mffc.Collect(g, ab.Node(), []uint32{ab.Node()})
	require.Equal(t, []uint32{ab.Node()}, nodes, "ab is its own leaf here, nothing beyond it is visited")
}

func TestCollect_LeavesFanoutCountsUnchanged(t *testing.T) {
	g := aig.New()
	a := g.CreateInput()
	b := g.CreateInput()
	c := g.CreateInput()
	ab := g.CreateAnd(a, b)
	abc := g.CreateAnd(ab, c)

	before := g.Node(ab.Node()).FanoutCount()
	_ = mffc.Collect(g, abc.Node(), []uint32{a.Node(), b.Node(), c.Node()})
	after := g.Node(ab.Node()).FanoutCount()
	require.Equal(t, before, after)
}
