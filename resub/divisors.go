package resub

import (
	"sort"

	"github.com/katalvlaran/aigopt/aig"
	"github.com/katalvlaran/aigopt/mffc"
	"github.com/katalvlaran/aigopt/simulate"
)

// DefaultDivsMax is nDivsMax: the bound on how many divisors (leaves plus
// cone and-nodes) a single resubstitution attempt will simulate.
const DefaultDivsMax = 150

// divisorSet is the simulated fan-in cone of one node, ready for the
// candidate search: rows[i]/phase[i] describe divisor i, and the last
// entry is always the node itself (the search target), so every candidate
// is built and compared purely in "normalized row space" — the final
// decomp.Proposal.Complement flag (phase[target]) is what reconciles that
// space back to the node's real, unnormalized function.
type divisorSet struct {
	k          int
	leaves     []uint32
	ids        []uint32 // ids[i] is the real aig node id backing rows[i], for i >= len(leaves)
	rows       []simulate.Row
	phase      []bool
	care       simulate.Row
	mffcSize   int
	target     int     // index of v's own row, always len(rows)-1
	candidates []int   // indices eligible as divisor operands: leaves plus cone nodes outside v's own MFFC
	levels     []uint32 // levels[i] is the real aig level backing rows[i]
	maxLevel   int     // required_level(v), or -1 when no bound is in effect
}

func toSet(ids []uint32) map[uint32]bool {
	m := make(map[uint32]bool, len(ids))
	for _, id := range ids {
		m[id] = true
	}
	return m
}

// coneNodes returns every and-node on v's side of leafSet, ordered
// ascending by id (and therefore bottom-up: every and-node's fanins
// precede it, and v itself — having the largest id in its own fan-in cone
// — comes last). Structural hashing guarantees a live and-node never has a
// constant fanin, so traversal only ever needs to stop at leaves or
// non-and nodes.
func coneNodes(g *aig.Graph, v uint32, leafSet map[uint32]bool) []uint32 {
	visited := make(map[uint32]bool)
	var nodes []uint32
	var walk func(id uint32)
	walk = func(id uint32) {
		if visited[id] || leafSet[id] {
			return
		}
		visited[id] = true
		nd := g.Node(id)
		if nd == nil || nd.Kind != aig.KindAnd {
			return
		}
		nodes = append(nodes, id)
		walk(nd.Fanin0.Node())
		walk(nd.Fanin1.Node())
	}
	walk(v)
	sort.Slice(nodes, func(i, j int) bool { return nodes[i] < nodes[j] })
	return nodes
}

// buildDivisors simulates v's reconvergence cut: leaves first (elementary
// rows), then every cone and-node in ascending-id order, ending with v
// itself as the last ("target") entry. Returns ok=false if the combined
// divisor count would exceed maxDivs or the cone's own mffc is empty.
func buildDivisors(g *aig.Graph, v uint32, leaves []uint32, maxDivs int, care simulate.Row, maxLevel int) (*divisorSet, bool) {
	if maxDivs <= 0 {
		maxDivs = DefaultDivsMax
	}
	leafSet := toSet(leaves)
	cone := coneNodes(g, v, leafSet)
	if len(cone) == 0 {
		return nil, false
	}
	if len(leaves)+len(cone) > maxDivs {
		return nil, false
	}

	mffcNodes := mffc.Collect(g, v, leaves)
	if len(mffcNodes) == 0 {
		return nil, false
	}
	inMFFC := toSet(mffcNodes)

	k := len(leaves)
	idx := make(map[uint32]int, len(leaves)+len(cone))
	nodes := make([]simulate.Node, 0, len(leaves)+len(cone))
	ids := make([]uint32, 0, len(cone))
	candidates := make([]int, 0, len(leaves)+len(cone))
	levels := make([]uint32, 0, len(leaves)+len(cone)+1)
	for i, l := range leaves {
		idx[l] = i
		nodes = append(nodes, simulate.Node{IsLeaf: true})
		candidates = append(candidates, i) // leaves are always outside the MFFC
		levels = append(levels, g.Node(l).Level)
	}
	for _, id := range cone {
		nd := g.Node(id)
		in0, neg0 := idx[nd.Fanin0.Node()], nd.Fanin0.IsInverted()
		in1, neg1 := idx[nd.Fanin1.Node()], nd.Fanin1.IsInverted()
		pos := len(nodes)
		idx[id] = pos
		ids = append(ids, id)
		nodes = append(nodes, simulate.Node{In0: in0, In1: in1, Neg0: neg0, Neg1: neg1})
		levels = append(levels, nd.Level)
		// A node inside v's own MFFC (v included) is replaced, not reused as
		// an operand: netupdate.Apply expects the MFFC's count to vanish
		// entirely, and picking one of its nodes as a divisor would keep it
		// (and its fanin sub-cone) alive, understating the actual node-count
		// delta against the reported gain.
		if !inMFFC[id] {
			candidates = append(candidates, pos)
		}
	}

	rows, phase := simulate.Simulate(nodes, k)
	if care == nil {
		care = simulate.AllOnesCare(k)
	}
	return &divisorSet{
		k:          k,
		leaves:     leaves,
		ids:        ids,
		rows:       rows,
		phase:      phase,
		care:       care,
		mffcSize:   len(mffcNodes),
		target:     len(rows) - 1,
		candidates: candidates,
		levels:     levels,
		maxLevel:   maxLevel,
	}, true
}

// edgeOf returns the real aig edge whose function equals rows[i] exactly
// (the node's natural edge complemented by its own stored phase, which
// undoes exactly the flip normalize applied while simulating).
func (d *divisorSet) edgeOf(i int) aig.Edge {
	if i < len(d.leaves) {
		return aig.MakeEdge(d.leaves[i], false)
	}
	nodeIdx := i - len(d.leaves)
	return aig.MakeEdge(d.ids[nodeIdx], d.phase[i])
}

