package factoring_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aigopt/aig"
	"github.com/katalvlaran/aigopt/factoring"
	"github.com/katalvlaran/aigopt/simulate"
)

func and3Row() simulate.Row {
	nodes := []simulate.Node{
		{IsLeaf: true}, {IsLeaf: true}, {IsLeaf: true},
		{In0: 0, In1: 1},
		{In0: 3, In1: 2},
	}
	rows, _ := simulate.Simulate(nodes, 3)
	return rows[len(rows)-1]
}

func TestDefault_RejectsEmptyInput(t *testing.T) {
	_, ok := factoring.Default(nil, 3)
	require.False(t, ok)

	_, ok = factoring.Default(simulate.Row{0}, 0)
	require.False(t, ok)
}

func TestDefault_SynthesizesMatchingFunction(t *testing.T) {
	truth := and3Row()
	g, ok := factoring.Default(truth, 3)
	require.True(t, ok)
	require.NotNil(t, g)

	scratch := aig.New()
	leaves := []aig.Edge{scratch.CreateInput(), scratch.CreateInput(), scratch.CreateInput()}
	root := g.Materialize(scratch, leaves)

	for m := 0; m < 8; m++ {
		want := m&1 == 1 && (m>>1)&1 == 1 && (m>>2)&1 == 1
		got := evalEdge(scratch, root, leaves, m)
		require.Equal(t, want, got, "mismatch at assignment %d", m)
	}
}

// evalEdge evaluates a materialized AIG edge at one domain point by
// walking fanins directly (the package under test has no simulator of its
// own; this is test-only plumbing).
func evalEdge(g *aig.Graph, e aig.Edge, leaves []aig.Edge, m int) bool {
	memo := make(map[uint32]bool)
	var walk func(edge aig.Edge) bool
	walk = func(edge aig.Edge) bool {
		id := edge.Node()
		if id == aig.Const0.Node() {
			val := false
			if edge.IsInverted() {
				return !val
			}
			return val
		}
		for i, l := range leaves {
			if l.Node() == id {
				bit := (m>>uint(i))&1 == 1
				if edge.IsInverted() {
					return !bit
				}
				return bit
			}
		}
		if v, ok := memo[id]; ok {
			if edge.IsInverted() {
				return !v
			}
			return v
		}
		nd := g.Node(id)
		val := walk(nd.Fanin0) && walk(nd.Fanin1)
		memo[id] = val
		if edge.IsInverted() {
			return !val
		}
		return val
	}
	return walk(e)
}
