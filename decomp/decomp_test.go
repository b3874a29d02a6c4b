package decomp_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aigopt/aig"
	"github.com/katalvlaran/aigopt/decomp"
)

func TestMaterialize_ReusesExistingAnd(t *testing.T) {
	ag := aig.New()
	a := ag.CreateInput()
	b := ag.CreateInput()
	existing := ag.CreateAnd(a, b)

	g := decomp.NewGraph()
	x := g.AddInput(0)
	y := g.AddInput(1)
	root := g.AddAnd(x, y)
	g.SetRoot(root)

	before := ag.NumLiveAndNodes()
	got := g.Materialize(ag, []aig.Edge{a, b})
	require.Equal(t, existing, got, "materializing an already-present AND must reuse it")
	require.Equal(t, before, ag.NumLiveAndNodes(), "reuse must not add a node")
}

func TestEvaluateNodeCount_CountsOnlyNewNodes(t *testing.T) {
	ag := aig.New()
	a := ag.CreateInput()
	b := ag.CreateInput()
	c := ag.CreateInput()
	ab := ag.CreateAnd(a, b)

	g := decomp.NewGraph()
	x := g.AddInput(0)
	y := g.AddInput(1)
	z := g.AddInput(2)
	inner := g.AddAnd(x, y) // already exists as ab
	outer := g.AddAnd(inner, z) // new
	g.SetRoot(outer)

	added, reason := g.EvaluateNodeCount(ag, nil, []aig.Edge{a, b, c}, 10, -1)
	require.Equal(t, decomp.RejectNone, reason)
	require.Equal(t, 1, added)
	_ = ab
}

func TestEvaluateNodeCount_ExcludedFromReuse(t *testing.T) {
	ag := aig.New()
	a := ag.CreateInput()
	b := ag.CreateInput()
	ab := ag.CreateAnd(a, b)

	g := decomp.NewGraph()
	x := g.AddInput(0)
	y := g.AddInput(1)
	root := g.AddAnd(x, y)
	g.SetRoot(root)

	excluded := map[uint32]bool{ab.Node(): true}
	added, reason := g.EvaluateNodeCount(ag, excluded, []aig.Edge{a, b}, 10, -1)
	require.Equal(t, decomp.RejectNone, reason)
	require.Equal(t, 1, added, "excluded node must not count as reuse")
}

func TestEvaluateNodeCount_RejectsOverBudget(t *testing.T) {
	ag := aig.New()
	a := ag.CreateInput()
	b := ag.CreateInput()

	g := decomp.NewGraph()
	x := g.AddInput(0)
	y := g.AddInput(1)
	root := g.AddAnd(x, y)
	g.SetRoot(root)

	_, reason := g.EvaluateNodeCount(ag, nil, []aig.Edge{a, b}, 0, -1)
	require.Equal(t, decomp.RejectNodeBudget, reason)
}

func TestEvaluateNodeCount_RejectsOverLevel(t *testing.T) {
	ag := aig.New()
	a := ag.CreateInput()
	b := ag.CreateInput()
	c := ag.CreateInput()

	g := decomp.NewGraph()
	x := g.AddInput(0)
	y := g.AddInput(1)
	z := g.AddInput(2)
	inner := g.AddAnd(x, y)
	outer := g.AddAnd(inner, z)
	g.SetRoot(outer)

	_, reason := g.EvaluateNodeCount(ag, nil, []aig.Edge{a, b, c}, 10, 1)
	require.Equal(t, decomp.RejectLevelBudget, reason)
}
