package rewrite

import (
	"github.com/katalvlaran/aigopt/aig"
	"github.com/katalvlaran/aigopt/cut"
	"github.com/katalvlaran/aigopt/decomp"
	"github.com/katalvlaran/aigopt/mffc"
	"github.com/katalvlaran/aigopt/npn"
)

// maxFanout1Leaves bounds how many of a cut's regular leaves may have
// fanout count exactly 1 before the cut is skipped — past that point the
// candidate would cascade deletions through fragile single-use chains.
const maxFanout1Leaves = 2

func toSet(ids []uint32) map[uint32]bool {
	set := make(map[uint32]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set
}

func requiredLevelBudget(g *aig.Graph, v uint32) int {
	lvl := g.RequiredLevel(v)
	if lvl == aig.NoLevelLimit {
		return -1
	}
	return int(lvl)
}

// Transform evaluates every 4-feasible cut of v against lib and returns
// the best-gaining candidate found, or ok=false if none fits within its
// cut's MFFC-sized node budget.
func Transform(g *aig.Graph, v uint32, eng *cut.Engine, lib *npn.Library) (proposal *decomp.Proposal, ok bool) {
	nd := g.Node(v)
	if nd == nil || nd.Kind != aig.KindAnd {
		return nil, false
	}
	maxLevel := requiredLevelBudget(g, v)
	bestGain := 0
	found := false

	for _, c := range eng.CutsOf(v) {
		if len(c.Leaves) != 4 {
			continue
		}
		fanout1 := 0
		for _, leaf := range c.Leaves {
			if lnd := g.Node(leaf); lnd != nil && lnd.FanoutCount() == 1 {
				fanout1++
			}
		}
		if fanout1 > maxFanout1Leaves {
			continue
		}

		canon, sig := npn.Canonicalize(c.Truth)
		cls := lib.Lookup(canon)
		if cls == nil {
			continue
		}

		leafEdges := make([]aig.Edge, npn.NumVars)
		stale := false
		for i := 0; i < npn.NumVars; i++ {
			src := c.Leaves[sig.Perm[i]]
			if g.Node(src) == nil {
				stale = true
				break
			}
			inv := (sig.InputNegate>>uint(i))&1 == 1
			leafEdges[i] = aig.MakeEdge(src, inv)
		}
		if stale {
			continue
		}

		mffcNodes := mffc.Collect(g, v, c.Leaves)
		mffcSize := len(mffcNodes)
		excluded := toSet(mffcNodes)

		for _, cand := range cls.Candidates {
			added, reason := cand.Graph.EvaluateNodeCount(g, excluded, leafEdges, mffcSize, maxLevel)
			if reason != decomp.RejectNone {
				continue
			}
			gain := mffcSize - added
			if !found || gain > bestGain {
				found = true
				bestGain = gain
				proposal = &decomp.Proposal{
					Graph:      cand.Graph,
					LeafEdges:  append([]aig.Edge(nil), leafEdges...),
					Complement: sig.OutputNegate,
					Gain:       gain,
				}
			}
		}
	}
	return proposal, found
}
