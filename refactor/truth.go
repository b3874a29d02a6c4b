package refactor

import (
	"sort"

	"github.com/katalvlaran/aigopt/aig"
	"github.com/katalvlaran/aigopt/simulate"
)

func toSet(ids []uint32) map[uint32]bool {
	m := make(map[uint32]bool, len(ids))
	for _, id := range ids {
		m[id] = true
	}
	return m
}

// coneNodes returns v and every and-node below it down to (but not
// including) leafSet, ascending by id so v itself (the largest id in its own fan-in cone)
// always comes last — the same bottom-up order simulate.Simulate needs.
func coneNodes(g *aig.Graph, v uint32, leafSet map[uint32]bool) []uint32 {
	visited := make(map[uint32]bool)
	var nodes []uint32
	var walk func(id uint32)
	walk = func(id uint32) {
		if visited[id] || leafSet[id] {
			return
		}
		visited[id] = true
		nd := g.Node(id)
		if nd == nil || nd.Kind != aig.KindAnd {
			return
		}
		nodes = append(nodes, id)
		walk(nd.Fanin0.Node())
		walk(nd.Fanin1.Node())
	}
	walk(v)
	sort.Slice(nodes, func(i, j int) bool { return nodes[i] < nodes[j] })
	return nodes
}

// truthOf simulates v's exact function over leaves, returning the
// normalized row and its phase exactly as resub's divisor rows are
// kept: row is v's function with domain point 0 forced to 0, and phase
// records whether that forcing actually complemented it. The real
// function is row XOR phase, same identity resub relies on.
func truthOf(g *aig.Graph, v uint32, leaves []uint32) (simulate.Row, bool, bool) {
	leafSet := toSet(leaves)
	cone := coneNodes(g, v, leafSet)
	if len(cone) == 0 {
		return nil, false, false
	}

	k := len(leaves)
	idx := make(map[uint32]int, len(leaves)+len(cone))
	nodes := make([]simulate.Node, 0, len(leaves)+len(cone))
	for i, l := range leaves {
		idx[l] = i
		nodes = append(nodes, simulate.Node{IsLeaf: true})
	}
	for _, id := range cone {
		nd := g.Node(id)
		in0, neg0 := idx[nd.Fanin0.Node()], nd.Fanin0.IsInverted()
		in1, neg1 := idx[nd.Fanin1.Node()], nd.Fanin1.IsInverted()
		idx[id] = len(nodes)
		nodes = append(nodes, simulate.Node{In0: in0, In1: in1, Neg0: neg0, Neg1: neg1})
	}

	rows, phase := simulate.Simulate(nodes, k)
	last := len(rows) - 1
	return rows[last], phase[last], true
}
