package rewrite_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aigopt/aig"
	"github.com/katalvlaran/aigopt/cut"
	"github.com/katalvlaran/aigopt/npn"
	"github.com/katalvlaran/aigopt/rewrite"
)

func TestTransform_MatchesAnd4OverItsNaturalFourLeafCut(t *testing.T) {
	g := aig.New()
	a := g.CreateInput()
	b := g.CreateInput()
	c := g.CreateInput()
	d := g.CreateInput()
	ab := g.CreateAnd(a, b)
	cd := g.CreateAnd(c, d)
	root := g.CreateAnd(ab, cd)
	g.AddOutput("o", root)
	// Give a and b a second consumer so at most two (c, d) of the
	// natural cut's leaves have fanout count 1 — otherwise the
	// cascading-deletion heuristic would skip this cut entirely.
	g.AddOutput("extra_a", a)
	g.AddOutput("extra_b", b)

	eng := cut.NewEngine(g, 4, 250)
	lib := npn.DefaultLibrary()

	proposal, ok := rewrite.Transform(g, root.Node(), eng, lib)
	require.True(t, ok, "root's natural 4-leaf cut {a,b,c,d} realizes AND4, seeded in the default library")
	require.NotNil(t, proposal)
	require.GreaterOrEqual(t, proposal.Gain, 0)
}

func TestTransform_NoGainOnPrimaryInput(t *testing.T) {
	g := aig.New()
	a := g.CreateInput()
	eng := cut.NewEngine(g, 4, 250)
	lib := npn.DefaultLibrary()
	_, ok := rewrite.Transform(g, a.Node(), eng, lib)
	require.False(t, ok, "a primary input is not an and-node and has no candidate")
}

func TestTransform_SkipsCutsSmallerThanFour(t *testing.T) {
	g := aig.New()
	a := g.CreateInput()
	b := g.CreateInput()
	ab := g.CreateAnd(a, b)
	g.AddOutput("o", ab)

	eng := cut.NewEngine(g, 4, 250)
	lib := npn.DefaultLibrary()
	_, ok := rewrite.Transform(g, ab.Node(), eng, lib)
	require.False(t, ok, "a 2-leaf node has no 4-leaf cut to match against the 4-input library")
}
