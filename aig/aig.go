package aig

// Output is a primary output: a named root edge into the node table.
type Output struct {
	Name  string
	Fanin Edge
}

// LatchInfo records a sequential element. The latch's *output* is a node
// of KindLatch (usable as a fanin like any input); Input is the edge that
// drives it on the next clock edge. Latches are preserved but never
// rewritten: transforms never propose a replacement cone that crosses a
// latch boundary.
type LatchInfo struct {
	NodeID uint32
	Input  Edge
	Init   int8 // 0, 1, or 2 for "don't care" / unknown reset value
}

// Graph is the in-memory And-Inverter Graph: a dense node table, a
// structural-hash table enforcing invariant I1, primary outputs and
// latches.
//
// Graph is not safe for concurrent mutation: per §5 of the design, a
// single orchestrator loop owns all mutation and no transform runs
// concurrently with another against the same graph.
type Graph struct {
	nodes []*Node
	hash  map[uint64]uint32 // (fanin0<<32|fanin1) -> node id

	inputs  []uint32
	outputs []*Output
	latches []*LatchInfo

	travCounter uint64
}

// New returns an empty Graph containing only the constant-0 node.
func New() *Graph {
	g := &Graph{
		hash: make(map[uint64]uint32),
	}
	const0 := &Node{ID: 0, Kind: KindConst, Level: 0, ReqLevel: NoLevelLimit, Persistent: true}
	g.nodes = append(g.nodes, const0)
	return g
}

// NumNodes returns the size of the dense node table, including tombstoned
// (KindDead) entries. Use NumLiveAndNodes for a count that matches the
// optimization metric node_count.
func (g *Graph) NumNodes() int { return len(g.nodes) }

// NumLiveAndNodes returns the number of and-nodes that have not been
// garbage collected. This is the "node count" the orchestrator's gain
// accounting and property (P5) refer to.
func (g *Graph) NumLiveAndNodes() int {
	n := 0
	for _, nd := range g.nodes {
		if nd.Kind == KindAnd {
			n++
		}
	}
	return n
}

// Node returns the node at id, or nil if id is out of range or dead.
func (g *Graph) Node(id uint32) *Node {
	if int(id) >= len(g.nodes) {
		return nil
	}
	nd := g.nodes[id]
	if nd == nil || nd.Kind == KindDead {
		return nil
	}
	return nd
}

// Inputs returns the ids of every primary input, in creation order.
func (g *Graph) Inputs() []uint32 { return append([]uint32(nil), g.inputs...) }

// Outputs returns the primary outputs, in creation order. The returned
// slice aliases Graph state and must not be mutated.
func (g *Graph) Outputs() []*Output { return g.outputs }

// Latches returns every latch, in creation order.
func (g *Graph) Latches() []*LatchInfo { return g.latches }

// CreateInput allocates a fresh primary input and returns its (regular)
// edge.
func (g *Graph) CreateInput() Edge {
	id := uint32(len(g.nodes))
	nd := &Node{ID: id, Kind: KindInput, Level: 0, ReqLevel: NoLevelLimit, Persistent: true}
	g.nodes = append(g.nodes, nd)
	g.inputs = append(g.inputs, id)
	return MakeEdge(id, false)
}

// CreateLatch allocates a fresh latch. Its output behaves like a primary
// input (usable as any and-node's fanin); input is the edge that feeds it.
func (g *Graph) CreateLatch(input Edge, init int8) Edge {
	id := uint32(len(g.nodes))
	nd := &Node{ID: id, Kind: KindLatch, Level: 0, ReqLevel: NoLevelLimit, Persistent: true}
	g.nodes = append(g.nodes, nd)
	lt := &LatchInfo{NodeID: id, Input: input, Init: init}
	g.latches = append(g.latches, lt)
	g.addFanout(input.Node(), ParentRef{IsPO: false, ID: id})
	return MakeEdge(id, false)
}

// AddOutput registers a new primary output rooted at edge e and pins e's
// node so Replace/garbage-collection never removes it while the output
// exists.
func (g *Graph) AddOutput(name string, e Edge) *Output {
	out := &Output{Name: name, Fanin: e}
	idx := uint32(len(g.outputs))
	g.outputs = append(g.outputs, out)
	g.addFanout(e.Node(), ParentRef{IsPO: true, ID: idx})
	return out
}

// pairKey builds the structural-hash key for a canonicalized (x, y) pair.
func pairKey(x, y Edge) uint64 { return uint64(x)<<32 | uint64(y) }

// CreateAnd returns the edge realizing x∧y, reusing an existing node when
// the (ordered, canonicalized) pair is already structurally hashed and
// otherwise allocating one. Trivial simplifications (constant/self/
// complement absorption) never reach the hash table.
//
// Complexity: O(1) expected.
func (g *Graph) CreateAnd(x, y Edge) Edge {
	// 1. Constant absorption: a∧0 = 0, a∧1 = a.
	if x == Const0 || y == Const0 {
		return Const0
	}
	if x == Const1 {
		return y
	}
	if y == Const1 {
		return x
	}
	// 2. Self/complement absorption on the same node.
	if x.Node() == y.Node() {
		if x == y {
			return x // a∧a = a
		}
		return Const0 // a∧¬a = 0
	}
	// 3. Canonical order: smaller node id first.
	if x.Node() > y.Node() {
		x, y = y, x
	}
	// 4. Structural-hash lookup.
	key := pairKey(x, y)
	if id, ok := g.hash[key]; ok {
		return MakeEdge(id, false)
	}
	// 5. Miss: allocate a new and-node, link fanouts, set level.
	id := uint32(len(g.nodes))
	lvl := 1 + max32(g.levelOf(x.Node()), g.levelOf(y.Node()))
	nd := &Node{
		ID: id, Kind: KindAnd,
		Fanin0: x, Fanin1: y,
		Level: lvl, ReqLevel: NoLevelLimit,
	}
	g.nodes = append(g.nodes, nd)
	g.hash[key] = id
	g.addFanout(x.Node(), ParentRef{ID: id})
	g.addFanout(y.Node(), ParentRef{ID: id})
	return MakeEdge(id, false)
}

func (g *Graph) levelOf(id uint32) uint32 {
	if nd := g.Node(id); nd != nil {
		return nd.Level
	}
	return 0
}

func max32(a, b uint32) uint32 {
	if a > b {
		return a
	}
	return b
}

func (g *Graph) addFanout(childID uint32, ref ParentRef) {
	if nd := g.Node(childID); nd != nil {
		nd.addFanout(ref)
	}
}

func (g *Graph) removeFanout(childID uint32, ref ParentRef) {
	if nd := g.Node(childID); nd != nil {
		nd.removeFanout(ref)
	}
}

// RequiredLevel returns v's cached reverse-level bound, or NoLevelLimit
// when no bound is in effect for v.
func (g *Graph) RequiredLevel(v uint32) uint32 {
	if nd := g.Node(v); nd != nil {
		return nd.ReqLevel
	}
	return NoLevelLimit
}

// NewTravID returns a fresh traversal id. All previously recorded TravID
// marks become stale in O(1): callers test membership with
// node.TravID == travID rather than clearing per-node flags.
func (g *Graph) NewTravID() uint64 {
	g.travCounter++
	return g.travCounter
}

// Visited reports whether n was already stamped with the current
// traversal id.
func Visited(n *Node, travID uint64) bool { return n.TravID == travID }

// Visit stamps n with the given traversal id.
func Visit(n *Node, travID uint64) { n.TravID = travID }

// TopoOrder returns every live and-node id in ascending id order, which is
// a valid topological order because of invariant I2 (fanin ids < own id).
func (g *Graph) TopoOrder() []uint32 {
	order := make([]uint32, 0, len(g.nodes))
	for _, nd := range g.nodes {
		if nd.Kind == KindAnd {
			order = append(order, nd.ID)
		}
	}
	return order
}

// RebuildLevels recomputes every and-node's Level from its fanins, in
// ascending id order. Called by the orchestrator after a pass when level
// update is enabled and structural changes may have stacked up.
func (g *Graph) RebuildLevels() {
	for _, nd := range g.nodes {
		if nd.Kind != KindAnd {
			continue
		}
		nd.Level = 1 + max32(g.levelOf(nd.Fanin0.Node()), g.levelOf(nd.Fanin1.Node()))
	}
}

// RebuildRequiredLevels recomputes every node's reverse-level (ReqLevel)
// from the current forward levels, in descending id order (a valid reverse
// topological order under I2). A node with no and-node fanout keeps the
// network's overall depth as its bound, since nothing downstream demands
// less; every other node's bound tightens to one less than the smallest
// bound among its parents. Call after RebuildLevels, whenever forward
// levels may have changed and callers (rewrite's/refactor's node-budget
// check, resub's single/triple steps) need a live required_level(v).
func (g *Graph) RebuildRequiredLevels() {
	maxLevel := uint32(0)
	for _, nd := range g.nodes {
		if nd.Kind == KindAnd && nd.Level > maxLevel {
			maxLevel = nd.Level
		}
	}
	for _, nd := range g.nodes {
		if nd.Kind == KindDead {
			continue
		}
		nd.ReqLevel = maxLevel
	}
	for i := len(g.nodes) - 1; i >= 0; i-- {
		nd := g.nodes[i]
		if nd.Kind != KindAnd {
			continue
		}
		childReq := nd.ReqLevel
		if childReq > 0 {
			childReq--
		}
		if c := g.Node(nd.Fanin0.Node()); c != nil && childReq < c.ReqLevel {
			c.ReqLevel = childReq
		}
		if c := g.Node(nd.Fanin1.Node()); c != nil && childReq < c.ReqLevel {
			c.ReqLevel = childReq
		}
	}
}
