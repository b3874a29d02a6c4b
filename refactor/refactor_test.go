package refactor_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aigopt/aig"
	"github.com/katalvlaran/aigopt/decomp"
	"github.com/katalvlaran/aigopt/netupdate"
	"github.com/katalvlaran/aigopt/refactor"
	"github.com/katalvlaran/aigopt/simulate"
)

func TestTransform_CollapsesConstantZeroFunction(t *testing.T) {
	g := aig.New()
	a := g.CreateInput()
	b := g.CreateInput()
	p := g.CreateAnd(a, b)       // a & b
	q := g.CreateAnd(a, b.Not()) // a & ~b
	v := g.CreateAnd(p, q)       // (a&b)&(a&~b) == 0 for every assignment
	g.AddOutput("v_out", v)

	proposal, ok := refactor.Transform(g, v.Node(), 10, nil)
	require.True(t, ok, "v's function over {a,b} is constantly 0")
	require.Equal(t, 3, proposal.Gain, "v, p and q all disappear")

	err := netupdate.Apply(g, v.Node(), proposal)
	require.NoError(t, err)
	require.Nil(t, g.Node(v.Node()))
	require.Nil(t, g.Node(p.Node()), "p has no other consumer and must be collected")
	require.Nil(t, g.Node(q.Node()), "q has no other consumer and must be collected")
	require.NoError(t, g.CheckInvariants())
}

func TestTransform_NoGainOnPrimaryInput(t *testing.T) {
	g := aig.New()
	a := g.CreateInput()
	_, ok := refactor.Transform(g, a.Node(), 10, nil)
	require.False(t, ok, "a primary input is not an and-node")
}

func TestTransform_UsesSuppliedFactorer(t *testing.T) {
	g := aig.New()
	a := g.CreateInput()
	b := g.CreateInput()
	v := g.CreateAnd(a, b)
	g.AddOutput("o", v)

	called := false
	_, ok := refactor.Transform(g, v.Node(), 10, func(truth simulate.Row, nvars int) (*decomp.Graph, bool) {
		called = true
		return nil, false
	})
	require.False(t, ok, "a factorer declining to produce a candidate yields no proposal")
	require.True(t, called, "a non-const function must reach the factorer")
}
