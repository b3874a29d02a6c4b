package resub

import (
	"github.com/katalvlaran/aigopt/aig"
	"github.com/katalvlaran/aigopt/cut"
	"github.com/katalvlaran/aigopt/decomp"
	"github.com/katalvlaran/aigopt/dontcare"
	"github.com/katalvlaran/aigopt/simulate"
)

func requiredLevelBudget(g *aig.Graph, v uint32) int {
	lvl := g.RequiredLevel(v)
	if lvl == aig.NoLevelLimit {
		return -1
	}
	return int(lvl)
}

// Transform attempts to resubstitute v's MFFC as a function of existing
// divisors in its reconvergence-driven cut. nSteps bounds how far the
// search escalates (0: const/equal only, 1: +single, 2: +triple/double,
// 3: +quad), mirroring the orchestrator's n_steps knob. oracle narrows the
// care set beyond "every assignment matters"; pass nil for dontcare.AllCared.
// divsMax bounds the divisor set (leaves plus cone and-nodes); pass <= 0
// for DefaultDivsMax.
//
// Unlike rewrite, a resub proposal is only ever returned when it strictly
// shrinks the network (gain > 0) — the caller never needs to separately
// gate on fUseZeros for this transform.
func Transform(g *aig.Graph, v uint32, nSteps int, cutMax int, divsMax int, oracle dontcare.Oracle) (*decomp.Proposal, bool) {
	nd := g.Node(v)
	if nd == nil || nd.Kind != aig.KindAnd {
		return nil, false
	}

	leaves := cut.ReconvergenceCut(g, v, cutMax)
	if len(leaves) == 0 {
		return nil, false
	}

	careRow := computeCare(g, v, leaves, oracle)

	divs, ok := buildDivisors(g, v, leaves, divsMax, careRow, requiredLevelBudget(g, v))
	if !ok {
		return nil, false
	}

	if p, ok := divs.searchConst(); ok {
		return qualify(p)
	}
	if p, ok := divs.searchEqual(); ok {
		return qualify(p)
	}
	if nSteps >= 1 {
		if p, ok := divs.searchSingle(); ok {
			return qualify(p)
		}
	}
	if nSteps >= 2 {
		if p, ok := divs.searchTriple(); ok {
			return qualify(p)
		}
		if p, ok := divs.searchDouble(); ok {
			return qualify(p)
		}
	}
	if nSteps >= 3 {
		if p, ok := divs.searchQuad(); ok {
			return qualify(p)
		}
	}
	return nil, false
}

// qualify enforces resub's strict-positive-gain acceptance rule.
func qualify(p *decomp.Proposal) (*decomp.Proposal, bool) {
	if p.Gain <= 0 {
		return nil, false
	}
	return p, true
}

func computeCare(g *aig.Graph, v uint32, leaves []uint32, oracle dontcare.Oracle) simulate.Row {
	if oracle == nil {
		oracle = dontcare.AllCared
	}
	return oracle(g, v, leaves)
}
