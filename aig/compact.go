package aig

// Compact drops every tombstoned (KindDead) node and renumbers the
// survivors densely from 0, preserving their relative order — which is
// also a valid topological order, since removing slots from an
// id-ascending sequence cannot reorder the remainder. It returns the
// old-id → new-id mapping.
//
// This is the "reassign node ids in topological order" step the
// orchestrator runs after a pass (§4.10); property (R1) requires this
// renumbering to be order-preserving for the ids that survive.
func (g *Graph) Compact() map[uint32]uint32 {
	remap := make(map[uint32]uint32, len(g.nodes))
	kept := make([]*Node, 0, len(g.nodes))
	for _, nd := range g.nodes {
		if nd.Kind == KindDead {
			continue
		}
		newID := uint32(len(kept))
		remap[nd.ID] = newID
		nd.ID = newID
		kept = append(kept, nd)
	}
	g.nodes = kept

	g.hash = make(map[uint64]uint32, len(g.nodes))
	for _, nd := range g.nodes {
		if nd.Kind != KindAnd {
			continue
		}
		nd.Fanin0 = remapEdge(nd.Fanin0, remap)
		nd.Fanin1 = remapEdge(nd.Fanin1, remap)
		g.hash[pairKey(nd.Fanin0, nd.Fanin1)] = nd.ID
	}
	for _, nd := range g.nodes {
		if len(nd.fanout) == 0 {
			continue
		}
		remapped := make(map[ParentRef]int, len(nd.fanout))
		for ref, mult := range nd.fanout {
			if !ref.IsPO {
				ref.ID = remap[ref.ID]
			}
			remapped[ref] += mult
		}
		nd.fanout = remapped
	}
	for i, id := range g.inputs {
		g.inputs[i] = remap[id]
	}
	for _, out := range g.outputs {
		out.Fanin = remapEdge(out.Fanin, remap)
	}
	for _, lt := range g.latches {
		lt.NodeID = remap[lt.NodeID]
		lt.Input = remapEdge(lt.Input, remap)
	}
	return remap
}

func remapEdge(e Edge, remap map[uint32]uint32) Edge {
	return MakeEdge(remap[e.Node()], e.IsInverted())
}
