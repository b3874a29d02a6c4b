package cut

import (
	"sort"

	"github.com/katalvlaran/aigopt/aig"
)

// DefaultReconvergenceMax is resubstitution's default cut leaf limit
// (nCutMax).
const DefaultReconvergenceMax = 8

func sortedUint32(s []uint32) []uint32 {
	out := append([]uint32(nil), s...)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func dedupSorted(s []uint32) []uint32 {
	out := s[:0]
	var last uint32
	first := true
	for _, v := range s {
		if first || v != last {
			out = append(out, v)
			last = v
			first = false
		}
	}
	return out
}

func withoutAndPlus(leaves []uint32, remove uint32, add0, add1 uint32) []uint32 {
	next := make([]uint32, 0, len(leaves)+2)
	for _, l := range leaves {
		if l != remove {
			next = append(next, l)
		}
	}
	next = append(next, add0, add1)
	next = sortedUint32(next)
	return dedupSorted(next)
}

// ReconvergenceCut grows a leaf set starting from v's fanins, repeatedly
// replacing the leaf whose own fanins add the fewest genuinely new nodes
// (reconvergent fanins — already present elsewhere in the frontier — are
// preferred, ties broken by lower node id), until no replacement fits
// within maxLeaves or every remaining leaf is a primary input, latch or
// constant (no longer expandable).
//
// Unlike the k-feasible engine this never backtracks and caches nothing:
// it is recomputed fresh per resubstitution call against the live graph.
func ReconvergenceCut(g *aig.Graph, v uint32, maxLeaves int) []uint32 {
	if maxLeaves <= 0 {
		maxLeaves = DefaultReconvergenceMax
	}
	nd := g.Node(v)
	if nd == nil || nd.Kind != aig.KindAnd {
		return []uint32{v}
	}
	leaves := dedupSorted(sortedUint32([]uint32{nd.Fanin0.Node(), nd.Fanin1.Node()}))

	for {
		bestNet := 1 << 30
		bestIdx := -1
		var bestCandidate []uint32
		for _, l := range leaves {
			lnd := g.Node(l)
			if lnd == nil || lnd.Kind != aig.KindAnd {
				continue
			}
			candidate := withoutAndPlus(leaves, l, lnd.Fanin0.Node(), lnd.Fanin1.Node())
			if len(candidate) > maxLeaves {
				continue
			}
			net := len(candidate) - len(leaves)
			if net < bestNet || (net == bestNet && (bestIdx == -1 || l < leaves[bestIdx])) {
				bestNet = net
				bestIdx = indexOf(leaves, l)
				bestCandidate = candidate
			}
		}
		if bestIdx == -1 {
			break
		}
		leaves = bestCandidate
	}
	return leaves
}

func indexOf(s []uint32, v uint32) int {
	for i, x := range s {
		if x == v {
			return i
		}
	}
	return -1
}
