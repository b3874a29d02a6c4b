package orchestrate

import (
	"fmt"

	"github.com/katalvlaran/aigopt/aig"
	"github.com/katalvlaran/aigopt/cut"
	"github.com/katalvlaran/aigopt/decomp"
	"github.com/katalvlaran/aigopt/dontcare"
	"github.com/katalvlaran/aigopt/netupdate"
	"github.com/katalvlaran/aigopt/npn"
	"github.com/katalvlaran/aigopt/refactor"
	"github.com/katalvlaran/aigopt/resub"
	"github.com/katalvlaran/aigopt/rewrite"
)

// NodeStats records what each transform reported for one node, whether
// or not it ended up winning — the per-transform out-parameter vectors
// the CLI surface exposes, and the raw material gnnexport's feature
// file is built from. Gain is -1 for a transform that found nothing
// (mirroring the gnnexport sentinel), never a real negative gain —
// every transform only ever returns ok=true alongside gain >= 0.
type NodeStats struct {
	RewriteOK    bool
	RewriteGain  int
	ResubOK      bool
	ResubGain    int
	RefactorOK   bool
	RefactorGain int
}

// Result is everything one Run call produced: the decision log, the
// per-node per-transform stats, and pass-level counters.
type Result struct {
	Log   *Log
	Stats map[uint32]NodeStats
	Applied struct {
		Rewrite, Resub, Refactor, NoOp, Skipped int
	}
	NodeCountBefore, NodeCountAfter int
}

func gainOrSentinel(p *decomp.Proposal, ok bool) int {
	if !ok || p == nil {
		return -1
	}
	return p.Gain
}

// Run executes one optimization pass over g per cfg, in topological
// order by id at pass start. It mutates g in place and returns the pass
// record, or an error for the two fatal error kinds the network updater
// can raise: a committed gain mismatch (update failure) or a violated
// post-pass invariant.
func Run(g *aig.Graph, cfg *Config) (*Result, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	g.ClearScratch()
	defer g.ClearScratch()

	eng := cut.NewEngine(g, cut.DefaultK, cut.DefaultMaxCutsPerNode)
	lib := npn.DefaultLibrary()
	rnd := newRNG(cfg.Seed)

	res := &Result{
		Log:             newLog(),
		Stats:           make(map[uint32]NodeStats),
		NodeCountBefore: g.NumLiveAndNodes(),
	}

	var oracle dontcare.Oracle
	if cfg.UseDCs {
		oracle = cfg.Oracle
	}

	for _, id := range g.TopoOrder() {
		nd := g.Node(id)
		if nd == nil {
			continue // collected by an earlier commit this same pass
		}
		if nd.Persistent || nd.FanoutCount() > FanoutCap {
			res.Log.record(id, DecisionSkipped)
			res.Applied.Skipped++
			continue
		}

		rwrP, rwrOK := rewrite.Transform(g, id, eng, lib)
		resP, resOK := resub.Transform(g, id, cfg.NSteps, cfg.ReconvergenceCutMax, cfg.ResubDivsMax, oracle)
		refP, refOK := refactor.Transform(g, id, cfg.FactorCutMax, cfg.Factorer)

		res.Stats[id] = NodeStats{
			RewriteOK:    rwrOK,
			RewriteGain:  gainOrSentinel(rwrP, rwrOK),
			ResubOK:      resOK,
			ResubGain:    gainOrSentinel(resP, resOK),
			RefactorOK:   refOK,
			RefactorGain: gainOrSentinel(refP, refOK),
		}

		var cands [3]candidate
		cands[Rewrite] = candidate{Rewrite, gainOrSentinel(rwrP, rwrOK), rwrOK, false}
		cands[Resub] = candidate{Resub, gainOrSentinel(resP, resOK), resOK, false}
		cands[Refactor] = candidate{Refactor, gainOrSentinel(refP, refOK), refOK, false}
		for t := range cands {
			cands[t].qualifies = qualifies(Transform(t), cands[t].gain, cands[t].ok, cfg)
		}

		winner, ok := selectWinner(cfg, id, cands, rnd)
		if !ok {
			res.Log.record(id, DecisionNone)
			res.Applied.NoOp++
			continue
		}

		var proposal *decomp.Proposal
		switch winner {
		case Rewrite:
			proposal = rwrP
		case Resub:
			proposal = resP
		case Refactor:
			proposal = refP
		}

		if err := netupdate.Apply(g, id, proposal); err != nil {
			return nil, fmt.Errorf("orchestrate: pass aborted: %w", err)
		}
		eng.InvalidateAll()

		res.Log.record(id, decisionFor(winner))
		switch winner {
		case Rewrite:
			res.Applied.Rewrite++
		case Resub:
			res.Applied.Resub++
		case Refactor:
			res.Applied.Refactor++
		}
	}

	if cfg.UpdateLevel {
		g.RebuildLevels()
		g.RebuildRequiredLevels()
	}
	remap := g.Compact()
	remapped := make(map[uint32]NodeStats, len(res.Stats))
	for id, st := range res.Stats {
		newID, ok := remap[id]
		if !ok {
			continue // node was removed this pass; its stats die with it
		}
		remapped[newID] = st
	}
	res.Stats = remapped
	if err := g.CheckInvariants(); err != nil {
		return nil, err
	}

	res.NodeCountAfter = g.NumLiveAndNodes()
	return res, nil
}
