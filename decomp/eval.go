package decomp

import "github.com/katalvlaran/aigopt/aig"

// RejectNodeBudget and RejectLevelBudget are the specific reasons
// EvaluateNodeCount can fail, exposed so callers can log which bound
// tripped.
type RejectReason uint8

const (
	RejectNone RejectReason = iota
	RejectNodeBudget
	RejectLevelBudget
)

// EvaluateNodeCount walks g bottom-up against aigGraph and reports how
// many *new* and-nodes committing g would add.
//
//   - excludedFromReuse marks nodes that, although currently live in
//     aigGraph, are about to be deleted as part of the replaced MFFC: a
//     structural-hash hit on one of them must not be treated as reuse.
//   - leafEdges binds each pin index (see PinCount) to a concrete AIG
//     edge.
//   - maxNodes/maxLevel are the node-count and level budgets; pass a
//     negative maxLevel to disable the level check.
//
// A 2-input XOR never matches an existing AIG node (the AIG stores only
// AND nodes): it is costed as the three ANDs its AND/NOT expansion always
// requires, deliberately never counted as "reused", and its level is two
// more than its deepest operand, matching the two AND levels the
// expansion introduces.
//
// An AND with a constant operand costs nothing, since CreateAnd folds it
// (x∧0 = 0, x∧1 = x).
//
// When either bound is violated added is 0 and reason names the bound
// (RejectNodeBudget / RejectLevelBudget); otherwise reason is RejectNone.
func (g *Graph) EvaluateNodeCount(aigGraph *aig.Graph, excludedFromReuse map[uint32]bool, leafEdges []aig.Edge, maxNodes int, maxLevel int) (added int, reason RejectReason) {
	n := len(g.nodes)
	isReal := make([]bool, n)
	real := make([]aig.Edge, n)
	level := make([]uint32, n)
	totalAdded := 0

	levelOf := func(e Edge) uint32 { return level[e.Index()] }

	for i, nd := range g.nodes {
		switch nd.kind {
		case KindLeaf:
			real[i] = leafEdges[nd.pin]
			isReal[i] = true
			level[i] = aigGraph.LevelOf(real[i].Node())
		case KindConst:
			real[i] = aig.Const0
			if nd.constVal {
				real[i] = aig.Const1
			}
			isReal[i] = true
			level[i] = 0
		case KindXor:
			totalAdded += 3
			level[i] = 2 + max32(levelOf(nd.in0), levelOf(nd.in1))
			isReal[i] = false
		case KindAnd:
			lvl := 1 + max32(levelOf(nd.in0), levelOf(nd.in1))
			level[i] = lvl
			if isReal[nd.in0.Index()] && isReal[nd.in1.Index()] {
				x := withPolarity(real[nd.in0.Index()], nd.in0)
				y := withPolarity(real[nd.in1.Index()], nd.in1)
				if found, ok := aigGraph.LookupAnd(x, y); ok && !excludedFromReuse[found.Node()] {
					real[i] = found
					isReal[i] = true
					level[i] = aigGraph.LevelOf(found.Node())
					continue
				}
			}
			if r0, r1 := isReal[nd.in0.Index()], isReal[nd.in1.Index()]; r0 != r1 {
				c, other := nd.in0, nd.in1
				if r1 {
					c, other = other, c
				}
				switch withPolarity(real[c.Index()], c) {
				case aig.Const0:
					real[i], isReal[i], level[i] = aig.Const0, true, 0
					continue
				case aig.Const1:
					level[i] = levelOf(other)
					continue
				}
			}
			totalAdded++
			isReal[i] = false
		}
		if maxLevel >= 0 && int(level[i]) > maxLevel {
			return 0, RejectLevelBudget
		}
	}

	rootLevel := level[g.root.Index()]
	if g.root.Inverted() {
		// Complementing the root is free (a polarity bit), level unchanged.
	}
	if maxLevel >= 0 && int(rootLevel) > maxLevel {
		return 0, RejectLevelBudget
	}
	if totalAdded > maxNodes {
		return 0, RejectNodeBudget
	}
	return totalAdded, RejectNone
}

func withPolarity(real aig.Edge, local Edge) aig.Edge {
	if local.Inverted() {
		return real.Not()
	}
	return real
}

func max32(a, b uint32) uint32 {
	if a > b {
		return a
	}
	return b
}
