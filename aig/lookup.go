package aig

// LevelOf returns the level of node id (0 for inputs/const/latches, or
// the longest-path depth for and-nodes). Unlike RequiredLevel this is the
// forward level computed from fanins, not a reverse bound.
func (g *Graph) LevelOf(id uint32) uint32 { return g.levelOf(id) }

// LookupAnd is the read-only counterpart of CreateAnd: it applies the same
// trivial simplifications and structural-hash lookup, but never inserts a
// new node. ok is false when realizing x∧y would require allocating a node
// that does not exist yet.
//
// Used by the decomposition graph's cost evaluator (C2) to ask "does this
// AND already exist" without mutating the graph.
func (g *Graph) LookupAnd(x, y Edge) (Edge, bool) {
	if x == Const0 || y == Const0 {
		return Const0, true
	}
	if x == Const1 {
		return y, true
	}
	if y == Const1 {
		return x, true
	}
	if x.Node() == y.Node() {
		if x == y {
			return x, true
		}
		return Const0, true
	}
	if x.Node() > y.Node() {
		x, y = y, x
	}
	if id, ok := g.hash[pairKey(x, y)]; ok {
		return MakeEdge(id, false), true
	}
	return 0, false
}
