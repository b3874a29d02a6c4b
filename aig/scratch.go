package aig

// ClearScratch nils every node's Scratch field and clears MarkA/B/C. The
// orchestrator calls this at the start and end of a pass per the shared
// mutable state policy (§5): scratch pointers and mark bits must never
// leak between unrelated operations.
func (g *Graph) ClearScratch() {
	for _, nd := range g.nodes {
		nd.Scratch = nil
		nd.MarkA, nd.MarkB, nd.MarkC = false, false, false
	}
}

// CheckInvariants verifies (P1)-(P3): every and-node's fanins exist and
// have smaller ids (I2), the structural-hash table is injective (I1/P2),
// and every actual and-node fanin reference is recorded in the child's
// fanout multiset (I3/P3). The fanout check is one-directional: a fanout
// entry that no fanin references (a stale or overcounted referrer) is
// not reported. It returns the first violation found, or nil.
func (g *Graph) CheckInvariants() error {
	seenPairs := make(map[uint64]uint32, len(g.nodes))
	counted := make(map[uint32]map[ParentRef]int)
	for _, nd := range g.nodes {
		if nd.Kind != KindAnd {
			continue
		}
		if nd.Fanin0.Node() >= nd.ID || nd.Fanin1.Node() >= nd.ID {
			return errInvariant("P1: fanin id not less than own id", nd.ID)
		}
		if g.Node(nd.Fanin0.Node()) == nil || g.Node(nd.Fanin1.Node()) == nil {
			return errInvariant("P1: fanin does not exist", nd.ID)
		}
		key := pairKey(nd.Fanin0, nd.Fanin1)
		if prev, ok := seenPairs[key]; ok && prev != nd.ID {
			return errInvariant("P2: duplicate structural-hash pair", nd.ID)
		}
		seenPairs[key] = nd.ID

		for _, child := range [2]uint32{nd.Fanin0.Node(), nd.Fanin1.Node()} {
			if counted[child] == nil {
				counted[child] = make(map[ParentRef]int)
			}
			counted[child][ParentRef{ID: nd.ID}]++
		}
	}
	for _, out := range g.outputs {
		child := out.Fanin.Node()
		if g.Node(child) == nil {
			return errInvariant("P1: output fanin does not exist", child)
		}
	}
	for id, want := range counted {
		nd := g.Node(id)
		if nd == nil {
			return errInvariant("P3: fanout recorded on dead node", id)
		}
		for ref, wantMult := range want {
			if nd.fanout[ref] < wantMult {
				return errInvariant("P3: fanout undercounts actual referrer", id)
			}
		}
	}
	return nil
}

type invariantError struct {
	msg string
	id  uint32
}

func (e *invariantError) Error() string { return e.msg }

func errInvariant(msg string, id uint32) error { return &invariantError{msg: msg, id: id} }
