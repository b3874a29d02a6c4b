package netupdate_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aigopt/aig"
	"github.com/katalvlaran/aigopt/cut"
	"github.com/katalvlaran/aigopt/decomp"
	"github.com/katalvlaran/aigopt/netupdate"
	"github.com/katalvlaran/aigopt/npn"
	"github.com/katalvlaran/aigopt/rewrite"
)

func buildAnd4Graph(t *testing.T) (*aig.Graph, uint32) {
	t.Helper()
	g := aig.New()
	a := g.CreateInput()
	b := g.CreateInput()
	c := g.CreateInput()
	d := g.CreateInput()
	ab := g.CreateAnd(a, b)
	cd := g.CreateAnd(c, d)
	root := g.CreateAnd(ab, cd)
	g.AddOutput("o", root)
	g.AddOutput("extra_a", a)
	g.AddOutput("extra_b", b)
	return g, root.Node()
}

func TestApply_CommitsProposalAndMatchesGain(t *testing.T) {
	g, root := buildAnd4Graph(t)
	eng := cut.NewEngine(g, 4, 250)
	lib := npn.DefaultLibrary()

	proposal, ok := rewrite.Transform(g, root, eng, lib)
	require.True(t, ok)

	err := netupdate.Apply(g, root, proposal)
	require.NoError(t, err)
	require.Nil(t, g.Node(root), "root must have been replaced/removed")
	require.NoError(t, g.CheckInvariants())
}

func TestApply_ReportsGainMismatch(t *testing.T) {
	g := aig.New()
	a := g.CreateInput()
	b := g.CreateInput()
	ab := g.CreateAnd(a, b)
	g.AddOutput("o", ab)

	dg := decomp.NewGraph()
	x := dg.AddInput(0)
	y := dg.AddInput(1)
	dg.SetRoot(dg.AddAnd(x, y))

	p := &decomp.Proposal{
		Graph:     dg,
		LeafEdges: []aig.Edge{a, b},
		Gain:      99, // deliberately wrong: replacing ab with an equivalent AND should cost 0 net.
	}
	err := netupdate.Apply(g, ab.Node(), p)
	require.ErrorIs(t, err, netupdate.ErrGainMismatch)
}
