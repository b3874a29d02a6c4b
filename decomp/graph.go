package decomp

import "github.com/katalvlaran/aigopt/aig"

// Kind identifies the role of one Graph node.
type Kind uint8

const (
	KindLeaf Kind = iota
	KindConst
	KindAnd
	KindXor
)

// Edge is a reference to a Graph node: the low bit is the inversion bit,
// the rest is the node's index in Graph.nodes. It is local to one
// decomposition graph and unrelated to aig.Edge, though it is encoded the
// same way for familiarity.
type Edge uint32

func makeEdge(idx int, inverted bool) Edge {
	e := Edge(idx) << 1
	if inverted {
		e |= 1
	}
	return e
}

// Index returns the referenced node's position in Graph.nodes.
func (e Edge) Index() int { return int(e >> 1) }

// Inverted reports the edge's polarity.
func (e Edge) Inverted() bool { return e&1 == 1 }

// Not returns the complemented edge.
func (e Edge) Not() Edge { return e ^ 1 }

type node struct {
	kind Kind
	// KindLeaf
	pin int
	// KindConst
	constVal bool
	// KindAnd / KindXor
	in0, in1 Edge
}

// Graph is the decomposition DAG: a dense, append-only node table plus a
// designated root edge. Nodes are added in dependency order, so every
// in0/in1 index is strictly less than its own index — the same
// topological invariant the AIG itself keeps.
type Graph struct {
	nodes []node
	root  Edge
	rootSet bool
}

// NewGraph returns an empty decomposition graph.
func NewGraph() *Graph { return &Graph{} }

// AddInput registers a leaf bound to the pinIdx-th input of whatever
// cut/cone this decomposition graph will eventually be matched against.
// The same pinIdx may be added more than once if a candidate reuses a
// variable; each call allocates a distinct graph node.
func (g *Graph) AddInput(pinIdx int) Edge {
	g.nodes = append(g.nodes, node{kind: KindLeaf, pin: pinIdx})
	return makeEdge(len(g.nodes)-1, false)
}

// AddConst allocates a constant leaf (0 or 1 per bit).
func (g *Graph) AddConst(bit bool) Edge {
	g.nodes = append(g.nodes, node{kind: KindConst, constVal: bit})
	return makeEdge(len(g.nodes)-1, false)
}

// AddAnd allocates an internal 2-input AND over two previously returned
// edges.
func (g *Graph) AddAnd(x, y Edge) Edge {
	g.nodes = append(g.nodes, node{kind: KindAnd, in0: x, in1: y})
	return makeEdge(len(g.nodes)-1, false)
}

// AddXor allocates an internal 2-input XOR over two previously returned
// edges.
func (g *Graph) AddXor(x, y Edge) Edge {
	g.nodes = append(g.nodes, node{kind: KindXor, in0: x, in1: y})
	return makeEdge(len(g.nodes)-1, false)
}

// SetRoot designates e as the edge realizing the target function.
func (g *Graph) SetRoot(e Edge) {
	g.root = e
	g.rootSet = true
}

// Root returns the current root edge.
func (g *Graph) Root() Edge { return g.root }

// Complement flips the root's polarity in place.
func (g *Graph) Complement() { g.root = g.root.Not() }

// NumNodes returns the number of internal+leaf nodes (not counting any
// sharing collapse the target AIG might later perform).
func (g *Graph) NumNodes() int { return len(g.nodes) }

// PinCount returns one past the highest pin index referenced by a leaf,
// i.e. how many leaf-edge slots Materialize/EvaluateNodeCount expect.
func (g *Graph) PinCount() int {
	max := -1
	for _, n := range g.nodes {
		if n.kind == KindLeaf && n.pin > max {
			max = n.pin
		}
	}
	return max + 1
}

// Materialize walks the graph bottom-up and inserts it into aigGraph via
// CreateAnd (XOR nodes are expanded through their AND/NOT decomposition),
// binding each leaf to leafEdges[pin]. It returns the AIG edge realizing
// Graph's root (including the root's own complement bit).
//
// This is the "materialize g into the AIG" step of the network-updater
// contract (C11 §4.11 step 2): structural hashing transparently reuses
// any existing node, so committing a candidate that overlaps the live
// graph never creates duplicates.
func (g *Graph) Materialize(aigGraph *aig.Graph, leafEdges []aig.Edge) aig.Edge {
	resolved := make([]aig.Edge, len(g.nodes))
	for i, n := range g.nodes {
		switch n.kind {
		case KindLeaf:
			resolved[i] = leafEdges[n.pin]
		case KindConst:
			if n.constVal {
				resolved[i] = aig.Const1
			} else {
				resolved[i] = aig.Const0
			}
		case KindAnd:
			x := resolveEdge(resolved, n.in0)
			y := resolveEdge(resolved, n.in1)
			resolved[i] = aigGraph.CreateAnd(x, y)
		case KindXor:
			x := resolveEdge(resolved, n.in0)
			y := resolveEdge(resolved, n.in1)
			resolved[i] = materializeXor(aigGraph, x, y)
		}
	}
	return resolveEdge(resolved, g.root)
}

func resolveEdge(resolved []aig.Edge, e Edge) aig.Edge {
	v := resolved[e.Index()]
	if e.Inverted() {
		return v.Not()
	}
	return v
}

// materializeXor expands x⊕y into AND/NOT gates: ¬(¬(x∧¬y) ∧ ¬(¬x∧y)).
// This keeps the AIG itself strictly AND-inverter (XOR is a C2-only
// convenience for transforms that think in terms of XOR divisors).
func materializeXor(aigGraph *aig.Graph, x, y aig.Edge) aig.Edge {
	left := aigGraph.CreateAnd(x, y.Not())
	right := aigGraph.CreateAnd(x.Not(), y)
	return aigGraph.CreateAnd(left.Not(), right.Not()).Not()
}
