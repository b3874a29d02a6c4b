package refactor

import (
	"github.com/katalvlaran/aigopt/aig"
	"github.com/katalvlaran/aigopt/cut"
	"github.com/katalvlaran/aigopt/decomp"
	"github.com/katalvlaran/aigopt/factoring"
	"github.com/katalvlaran/aigopt/mffc"
	"github.com/katalvlaran/aigopt/simulate"
)

func requiredLevelBudget(g *aig.Graph, v uint32) int {
	lvl := g.RequiredLevel(v)
	if lvl == aig.NoLevelLimit {
		return -1
	}
	return int(lvl)
}

// Transform derives v's exact function over its factor cut and asks
// factorer to rebuild it from scratch. It proposes the rebuilt form
// whenever it fits within v's MFFC node budget and required-level
// bound, including at zero gain — like rewrite, refactor leaves the
// gain==0 accept/reject decision to the orchestrator's fUseZeros flag
// rather than gating on it internally the way resub does.
//
// Pass nil for factorer to use factoring.Default.
func Transform(g *aig.Graph, v uint32, cutMax int, factorer factoring.Factorer) (*decomp.Proposal, bool) {
	nd := g.Node(v)
	if nd == nil || nd.Kind != aig.KindAnd {
		return nil, false
	}
	if factorer == nil {
		factorer = factoring.Default
	}

	leaves := cut.FactorCut(g, v, cutMax)
	row, phase, ok := truthOf(g, v, leaves)
	if !ok {
		return nil, false
	}

	mffcNodes := mffc.Collect(g, v, leaves)
	mffcSize := len(mffcNodes)
	if mffcSize == 0 {
		return nil, false
	}

	if val, isConst := simulate.IsConst(row, simulate.AllOnesCare(len(leaves))); isConst {
		cg := decomp.NewGraph()
		cg.SetRoot(cg.AddConst(val))
		return &decomp.Proposal{Graph: cg, LeafEdges: nil, Complement: phase, Gain: mffcSize}, true
	}

	cand, ok := factorer(row, len(leaves))
	if !ok {
		return nil, false
	}

	leafEdges := make([]aig.Edge, len(leaves))
	for i, l := range leaves {
		leafEdges[i] = aig.MakeEdge(l, false)
	}

	maxLevel := requiredLevelBudget(g, v)
	excluded := toSet(mffcNodes)
	added, reason := cand.EvaluateNodeCount(g, excluded, leafEdges, mffcSize, maxLevel)
	if reason != decomp.RejectNone {
		return nil, false
	}

	gain := mffcSize - added
	return &decomp.Proposal{
		Graph:      cand,
		LeafEdges:  leafEdges,
		Complement: phase,
		Gain:       gain,
	}, true
}
