package aig

// Pin bumps a node's fanout count by one synthetic reference, protecting
// it from garbage collection while a transform computes an MFFC or a
// commit temporarily needs a leaf to look "still used". Unpin reverses it.
// The synthetic referrer uses a PO-shaped ParentRef with a reserved index
// so it can never collide with a real output.
const pinnedRef = ^uint32(0)

// Pin protects id from garbage collection by adding one synthetic
// reference. Must be paired with a later Unpin.
func (g *Graph) Pin(id uint32) {
	g.addFanout(id, ParentRef{IsPO: true, ID: pinnedRef})
}

// Unpin removes one synthetic reference previously added by Pin.
func (g *Graph) Unpin(id uint32) {
	g.removeFanout(id, ParentRef{IsPO: true, ID: pinnedRef})
}

// composeEdge rewrites e if it points at fromID: the new edge is to's
// node, XORed with e's own polarity so e's "is this complemented" bit is
// preserved relative to the substitution.
func composeEdge(e Edge, fromID uint32, to Edge) Edge {
	if e.Node() != fromID {
		return e
	}
	if e.IsInverted() {
		return to.Not()
	}
	return to
}

// Replace substitutes every use of oldID with newEdge throughout the
// graph, propagating the substitution upward through any ancestor whose
// fanin pair actually changes as a result (re-striking it through
// CreateAnd, which may reuse an existing node), and garbage collects any
// node left with zero fanout that is not Persistent.
//
// This is the network-updater commit primitive (C11 §4.11, design note
// "replaced by an explicit work stack" in place of the source's
// recursive fanout walk): a node whose ancestors are unaffected (no
// fanin pair changes) stops the propagation immediately, matching
// "recursively through fanouts until a structurally unchanged fanout is
// reached".
func (g *Graph) Replace(oldID uint32, newEdge Edge) {
	sub := map[uint32]Edge{oldID: newEdge}
	queue := []uint32{oldID}
	touched := map[uint32]bool{oldID: true}

	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		repl := sub[id]
		nd := g.Node(id)
		if nd == nil {
			continue
		}
		refs := nd.FanoutRefs() // defensive copy: Replace mutates fanout as it iterates
		for _, ref := range refs {
			if ref.IsPO {
				if ref.ID == pinnedRef {
					continue // synthetic pin, nothing to rewire
				}
				out := g.outputs[ref.ID]
				newFanin := composeEdge(out.Fanin, id, repl)
				if newFanin == out.Fanin {
					continue
				}
				g.removeFanout(id, ref)
				out.Fanin = newFanin
				g.addFanout(newFanin.Node(), ref)
				continue
			}
			parent := g.Node(ref.ID)
			if parent == nil {
				continue
			}
			newFanin0 := composeEdge(parent.Fanin0, id, repl)
			newFanin1 := composeEdge(parent.Fanin1, id, repl)
			if newFanin0 == parent.Fanin0 && newFanin1 == parent.Fanin1 {
				continue // this referrer is structurally unaffected
			}
			// Detach the parent from both of its current fanins before
			// re-striking it: it is about to be superseded either by an
			// existing node (reused) or a freshly minted one.
			g.removeFanout(parent.Fanin0.Node(), ParentRef{ID: parent.ID})
			g.removeFanout(parent.Fanin1.Node(), ParentRef{ID: parent.ID})
			newParentEdge := g.CreateAnd(newFanin0, newFanin1)

			sub[parent.ID] = newParentEdge
			touched[parent.ID] = true
			queue = append(queue, parent.ID)
		}
	}

	seeds := make([]uint32, 0, len(touched))
	for id := range touched {
		seeds = append(seeds, id)
	}
	g.collectGarbage(seeds)
}

// collectGarbage tombstones every and-node reachable (fanin-ward) from
// seeds whose fanout has dropped to zero and which is not Persistent,
// cascading the check to its fanins once it is removed.
func (g *Graph) collectGarbage(seeds []uint32) {
	queue := append([]uint32(nil), seeds...)
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		nd := g.Node(id)
		if nd == nil || nd.Kind != KindAnd || nd.Persistent {
			continue
		}
		if nd.FanoutCount() != 0 {
			continue
		}
		f0, f1 := nd.Fanin0.Node(), nd.Fanin1.Node()
		g.removeFanout(f0, ParentRef{ID: nd.ID})
		g.removeFanout(f1, ParentRef{ID: nd.ID})
		// Tombstone: retire the id and its hash-table entry so it can
		// never again be produced by CreateAnd or referenced live.
		key := pairKey(nd.Fanin0, nd.Fanin1)
		if g.hash[key] == nd.ID {
			delete(g.hash, key)
		}
		nd.Kind = KindDead
		nd.Fanin0, nd.Fanin1 = Const0, Const0
		queue = append(queue, f0, f1)
	}
}
