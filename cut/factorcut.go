package cut

import "github.com/katalvlaran/aigopt/aig"

// DefaultFactorCutMax is refactoring's default leaf limit (nNodeSizeMax).
const DefaultFactorCutMax = 10

// naturalCone returns the leaves of id's maximal single-output cone: it
// descends through and-nodes with fanout count 1, stopping at any node
// that is not an and-node or (when id is not the walk's root) is itself
// shared by more than one parent — a factor boundary.
func naturalCone(g *aig.Graph, id uint32, isRoot bool) []uint32 {
	nd := g.Node(id)
	if nd == nil || nd.Kind != aig.KindAnd {
		return []uint32{id}
	}
	if !isRoot && nd.FanoutCount() > 1 {
		return []uint32{id}
	}
	left := naturalCone(g, nd.Fanin0.Node(), false)
	right := naturalCone(g, nd.Fanin1.Node(), false)
	return dedupSorted(sortedUint32(unionSorted(sortedUint32(left), sortedUint32(right))))
}

// FactorCut grows a factor-boundary cut for v: starting from the maximal
// single-output cone rooted at v, it repeatedly expands the boundary leaf
// whose own cone shares the most leaves with the current cut (i.e. whose
// expansion adds the fewest new leaves), until no expansion fits
// maxLeaves or every remaining leaf is a primary input/latch/constant.
func FactorCut(g *aig.Graph, v uint32, maxLeaves int) []uint32 {
	if maxLeaves <= 0 {
		maxLeaves = DefaultFactorCutMax
	}
	leaves := naturalCone(g, v, true)

	for {
		bestNet := 1 << 30
		bestID := uint32(0)
		found := false
		var bestCandidate []uint32
		for _, l := range leaves {
			nd := g.Node(l)
			if nd == nil || nd.Kind != aig.KindAnd {
				continue
			}
			expansion := naturalCone(g, l, true)
			without := make([]uint32, 0, len(leaves))
			for _, x := range leaves {
				if x != l {
					without = append(without, x)
				}
			}
			candidate := dedupSorted(sortedUint32(unionSorted(sortedUint32(without), sortedUint32(expansion))))
			if len(candidate) > maxLeaves {
				continue
			}
			net := len(candidate) - len(leaves)
			if !found || net < bestNet || (net == bestNet && l < bestID) {
				bestNet = net
				bestID = l
				bestCandidate = candidate
				found = true
			}
		}
		if !found {
			break
		}
		leaves = bestCandidate
	}
	return leaves
}
