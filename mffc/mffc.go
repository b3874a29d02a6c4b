package mffc

import "github.com/katalvlaran/aigopt/aig"

func toSet(ids []uint32) map[uint32]bool {
	set := make(map[uint32]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set
}

// Collect returns v together with every and-node that becomes
// unreachable (would have zero remaining fanout) once v is removed,
// treating cutLeaves as a boundary the search never walks past. v is
// always the first element.
func Collect(g *aig.Graph, v uint32, cutLeaves []uint32) []uint32 {
	leafSet := toSet(cutLeaves)
	scratch := make(map[uint32]int)

	ref := func(id uint32) int {
		if r, ok := scratch[id]; ok {
			return r
		}
		r := 0
		if nd := g.Node(id); nd != nil {
			r = nd.FanoutCount()
		}
		scratch[id] = r
		return r
	}

	nodes := []uint32{v}

	var deref func(id uint32)
	deref = func(id uint32) {
		nd := g.Node(id)
		if nd == nil || nd.Kind != aig.KindAnd || leafSet[id] {
			return
		}
		for _, f := range [2]uint32{nd.Fanin0.Node(), nd.Fanin1.Node()} {
			r := ref(f) - 1
			scratch[f] = r
			if r != 0 || leafSet[f] {
				continue
			}
			if fnd := g.Node(f); fnd != nil && fnd.Kind == aig.KindAnd {
				nodes = append(nodes, f)
				deref(f)
			}
		}
	}
	deref(v)
	return nodes
}

// Label returns only the MFFC's size, without building the node list.
func Label(g *aig.Graph, v uint32, cutLeaves []uint32) int {
	return len(Collect(g, v, cutLeaves))
}
